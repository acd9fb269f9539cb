package handlers

import (
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

// HRHandler serves the routes of an HR user working on their own jobs.
type HRHandler struct {
	jobs       *services.JobService
	candidates *services.CandidateService
	dashboard  *services.DashboardService
}

func NewHRHandler(jobs *services.JobService, candidates *services.CandidateService, dashboard *services.DashboardService) *HRHandler {
	return &HRHandler{jobs: jobs, candidates: candidates, dashboard: dashboard}
}

func (h *HRHandler) ListJobs(c *fiber.Ctx) error {
	filter := dto.JobFilter{Status: c.Query("status")}
	jobs, err := h.jobs.List(c.UserContext(), &filter, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

func (h *HRHandler) SetJobStatus(c *fiber.Ctx) error {
	req, err := statusParams(c)
	if err != nil {
		return err
	}
	if _, err := h.jobs.SetStatus(c.UserContext(), c.Params("code"), req.Status, middleware.CurrentUser(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Job status updated successfully"})
}

func (h *HRHandler) CandidatesForJob(c *fiber.Ctx) error {
	list, err := h.candidates.ListForJob(c.UserContext(), c.Params("job_code"), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// SetCandidateStatus always requires the candidate's job to be allocated to
// the caller.
func (h *HRHandler) SetCandidateStatus(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	req, err := statusParams(c)
	if err != nil {
		return err
	}
	if err := h.candidates.SetStatus(c.UserContext(), id, req.Status, req.Notes, middleware.CurrentUser(c), true); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Candidate status updated successfully"})
}

func (h *HRHandler) ListCandidates(c *fiber.Ctx) error {
	list, err := h.candidates.List(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *HRHandler) Dashboard(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperr.Authentication("Could not validate credentials")
	}
	resp, err := h.dashboard.HR(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
