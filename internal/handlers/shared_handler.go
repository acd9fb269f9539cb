package handlers

import (
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SharedHandler serves routes open to any authenticated user.
type SharedHandler struct {
	jobs       *services.JobService
	candidates *services.CandidateService
	audit      *services.AuditTrail

	// strictStatus applies the HR ownership check on the shared status route.
	strictStatus bool
}

func NewSharedHandler(jobs *services.JobService, candidates *services.CandidateService, audit *services.AuditTrail, strictStatus bool) *SharedHandler {
	return &SharedHandler{jobs: jobs, candidates: candidates, audit: audit, strictStatus: strictStatus}
}

func (h *SharedHandler) GetJob(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	job, err := h.jobs.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(job)
}

func (h *SharedHandler) GetCandidate(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	candidate, err := h.candidates.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(candidate)
}

func (h *SharedHandler) CreateCandidate(c *fiber.Ctx) error {
	var req dto.CreateCandidateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	candidate, err := h.candidates.Create(c.UserContext(), &req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateCandidateResponse{
		Message:   "Candidate added successfully",
		Candidate: candidate,
	})
}

func (h *SharedHandler) UpdateCandidate(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var patch dto.CandidatePatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	candidate, err := h.candidates.Update(c.UserContext(), id, patch, middleware.CurrentUser(c), h.strictStatus)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Candidate updated successfully", "candidate": candidate})
}

func (h *SharedHandler) SetCandidateStatus(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	req, err := statusParams(c)
	if err != nil {
		return err
	}
	if err := h.candidates.SetStatus(c.UserContext(), id, req.Status, req.Notes, middleware.CurrentUser(c), h.strictStatus); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Candidate status updated successfully"})
}

func (h *SharedHandler) History(c *fiber.Ctx) error {
	id, err := uuidParam(c, "candidate_id")
	if err != nil {
		return err
	}
	entries, err := h.audit.ListByCandidate(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(entries)
}
