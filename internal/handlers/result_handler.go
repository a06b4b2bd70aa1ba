package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nilanjanc/ai-interviewer/internal/models"
	"nilanjanc/ai-interviewer/internal/repositories"
)

type ResultHandler struct {
	resultRepo repositories.ResultRepository
	jobRepo    repositories.JobRepository
}

func NewResultHandler(
	resultRepo repositories.ResultRepository,
	jobRepo repositories.JobRepository,
) *ResultHandler {
	return &ResultHandler{
		resultRepo: resultRepo,
		jobRepo:    jobRepo,
	}
}

// HandleSaveResult handles POST /results. Fire-and-forget write of one
// candidate's score; nothing in the pipeline ever reads it back.
func (h *ResultHandler) HandleSaveResult(c *fiber.Ctx) error {
	var req models.SaveResultRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobID == "" || req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: job_id, name, email",
		})
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	record := &models.ScoreRecord{
		ID:             uuid.New(),
		JobID:          jobID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CreatedAt:      time.Now(),
	}

	if err := h.resultRepo.Create(record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred while saving results",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SaveResultResponse{
		ID:      record.ID.String(),
		Message: "Results saved successfully",
	})
}

// HandleListResults handles GET /jobs/:id/results
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	records, err := h.resultRepo.FindByJobID(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list results",
		})
	}

	return c.JSON(fiber.Map{
		"results": records,
	})
}
