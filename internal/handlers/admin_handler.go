package handlers

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	jobs       *services.JobService
	candidates *services.CandidateService
	users      *services.UserService
	dashboard  *services.DashboardService
}

func NewAdminHandler(
	jobs *services.JobService,
	candidates *services.CandidateService,
	users *services.UserService,
	dashboard *services.DashboardService,
) *AdminHandler {
	return &AdminHandler{jobs: jobs, candidates: candidates, users: users, dashboard: dashboard}
}

func (h *AdminHandler) AddJob(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	job, err := h.jobs.Create(c.UserContext(), &req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateJobResponse{
		Message: "Job added successfully",
		JobCode: job.Code,
		Job:     job,
	})
}

func (h *AdminHandler) AddJobsBulk(c *fiber.Ctx) error {
	var reqs []dto.CreateJobRequest
	if err := parseBody(c, &reqs); err != nil {
		return err
	}
	added, err := h.jobs.BulkCreate(c.UserContext(), reqs, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.BulkCreateResponse{
		Message:   fmt.Sprintf("Successfully added %d jobs", added),
		JobsAdded: added,
	})
}

func (h *AdminHandler) UploadCSV(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return apperr.BadRequest("CSV file is required")
	}
	file, err := header.Open()
	if err != nil {
		return apperr.BadRequest("Error processing CSV: " + err.Error())
	}
	defer file.Close()

	reqs, err := services.ParseJobsCSV(header.Filename, file)
	if err != nil {
		return err
	}
	added, err := h.jobs.BulkCreate(c.UserContext(), reqs, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.BulkCreateResponse{
		Message:   fmt.Sprintf("Successfully uploaded %d jobs", added),
		JobsAdded: added,
	})
}

func (h *AdminHandler) UpdateJob(c *fiber.Ctx) error {
	var patch dto.JobPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	job, err := h.jobs.Update(c.UserContext(), c.Params("code"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job updated successfully", "job": job})
}

func (h *AdminHandler) ListJobs(c *fiber.Ctx) error {
	var filter dto.JobFilter
	if err := c.QueryParser(&filter); err != nil {
		return apperr.BadRequest("Invalid query parameters")
	}
	jobs, err := h.jobs.List(c.UserContext(), &filter, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

func (h *AdminHandler) AllocateJob(c *fiber.Ctx) error {
	hrID, err := uuid.Parse(c.Query("hr_id"))
	if err != nil {
		return apperr.BadRequest("Invalid hr_id")
	}
	job, err := h.jobs.Allocate(c.UserContext(), c.Params("code"), hrID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job allocated successfully", "job": job})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListHR(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.users.CreateHR(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "HR user created successfully", "user": user})
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var patch dto.UserPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	user, err := h.users.UpdateHR(c.UserContext(), id, &patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "HR user updated successfully", "user": user})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.users.DeleteHR(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "HR user deleted successfully"})
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.dashboard.Admin(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *AdminHandler) ListCandidates(c *fiber.Ctx) error {
	list, err := h.candidates.List(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(list)
}
