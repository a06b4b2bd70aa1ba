package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nilanjanc/ai-interviewer/internal/models"
	"nilanjanc/ai-interviewer/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{
		jobRepo: jobRepo,
	}
}

// HandleCreateJob handles POST /jobs
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.JobRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" || req.Description == "" || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: title, description, date",
		})
	}

	if len(req.Title) < 3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title must be at least 3 characters long",
		})
	}

	job := &models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		PostingDate: req.Date,
		Status:      models.JobStatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully",
		"job_id":  job.ID.String(),
	})
}

// HandleListJobs handles GET /jobs
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list jobs",
		})
	}

	responses := make([]models.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, toJobResponse(&job))
	}

	return c.JSON(responses)
}

// HandleGetJob handles GET /jobs/:id
func (h *JobHandler) HandleGetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	return c.JSON(fiber.Map{
		"job": toJobResponse(job),
	})
}

// HandleUpdateJob handles PUT /jobs/:id
func (h *JobHandler) HandleUpdateJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	var req models.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" || req.Description == "" || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: title, description, date",
		})
	}

	if len(req.Title) < 3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title must be at least 3 characters long",
		})
	}

	data := &repositories.JobUpdateData{
		Title:       req.Title,
		Description: req.Description,
		PostingDate: req.Date,
	}

	if err := h.jobRepo.Update(id, data); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Job updated successfully",
	})
}

// HandleDeleteJob handles DELETE /jobs/:id
func (h *JobHandler) HandleDeleteJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if err := h.jobRepo.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Job deleted successfully",
		"job_id":  id.String(),
	})
}

func toJobResponse(job *models.Job) models.JobResponse {
	return models.JobResponse{
		ID:          job.ID.String(),
		Title:       job.Title,
		Description: job.Description,
		PostingDate: job.PostingDate,
		Status:      string(job.Status),
	}
}
