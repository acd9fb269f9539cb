package handlers

import (
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	return nil
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid " + name)
	}
	return id, nil
}

// statusParams reads status and notes from the query string, falling back
// to a JSON body when the query carries no status.
func statusParams(c *fiber.Ctx) (*dto.StatusRequest, error) {
	var req dto.StatusRequest
	if err := c.QueryParser(&req); err != nil {
		return nil, apperr.BadRequest("Invalid query parameters")
	}
	if req.Status == "" && len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return nil, err
		}
	}
	return &req, nil
}
