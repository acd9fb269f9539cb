package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/middleware"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler turns any error returned by a handler into the
// {detail, error_code} envelope. Server errors are logged and reported;
// their cause never reaches the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	appErr := classify(err)

	if appErr.Status >= fiber.StatusInternalServerError {
		attrs := []any{
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		}
		if user := middleware.CurrentUser(c); user != nil {
			attrs = append(attrs, "user_id", user.ID.String())
		}
		slog.Error("request failed", attrs...)

		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}

	return c.Status(appErr.Status).JSON(dto.ErrorResponse{
		Detail:    appErr.Message,
		ErrorCode: appErr.Code,
		Errors:    appErr.Fields,
	})
}

func classify(err error) *apperr.Error {
	if appErr, ok := apperr.As(err); ok {
		return appErr
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			return apperr.NotFound(fe.Message)
		case fe.Code == fiber.StatusUnauthorized:
			return apperr.Authentication(fe.Message)
		case fe.Code == fiber.StatusForbidden:
			return apperr.Authorization(fe.Message)
		case fe.Code < fiber.StatusInternalServerError:
			return &apperr.Error{Code: apperr.CodeBadRequest, Status: fe.Code, Message: fe.Message}
		}
	}
	return apperr.Internal(err)
}
