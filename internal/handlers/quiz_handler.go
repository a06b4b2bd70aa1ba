package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nilanjanc/ai-interviewer/internal/models"
	"nilanjanc/ai-interviewer/internal/repositories"
	"nilanjanc/ai-interviewer/internal/services"
)

type QuizHandler struct {
	jobRepo        repositories.JobRepository
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	assessor       services.AssessmentService
	maxFileSize    int64
}

func NewQuizHandler(
	jobRepo repositories.JobRepository,
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	assessor services.AssessmentService,
	maxFileSize int64,
) *QuizHandler {
	return &QuizHandler{
		jobRepo:        jobRepo,
		docRepo:        docRepo,
		storageService: storageService,
		assessor:       assessor,
		maxFileSize:    maxFileSize,
	}
}

// HandleGenerateQuiz handles POST /quiz. Multipart form: a "resume" file
// plus either a "job_description" text field or a "job_id" referencing a
// stored posting. Responds with the validated AssessmentResult, or a
// classified error: client error for bad input, server error when the
// model misbehaves.
func (h *QuizHandler) HandleGenerateQuiz(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file provided",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		if jobID := c.FormValue("job_id"); jobID != "" {
			id, err := uuid.Parse(jobID)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid job_id format",
				})
			}

			job, err := h.jobRepo.FindByID(id)
			if err != nil {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Job not found",
				})
			}
			jobDescription = job.Description
		}
	}

	// Checked before the upload is persisted: a request with no job
	// description is doomed, so don't leave a file behind for it
	if strings.TrimSpace(jobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: services.ErrMissingJobDescription.Error(),
			Code:  fiber.StatusBadRequest,
		})
	}

	// Save the upload; the extractor works from a file path
	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": services.ErrUnsupportedFormat.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		if delErr := h.storageService.DeleteFile(filename); delErr != nil {
			log.Printf("⚠️ Failed to clean up upload %s: %v", filename, delErr)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save resume record",
		})
	}

	result, err := h.assessor.Assess(c.UserContext(), filePath, jobDescription)
	if err != nil {
		code := fiber.StatusBadGateway
		if services.IsInputError(err) {
			code = fiber.StatusBadRequest
		}
		return c.Status(code).JSON(models.ErrorResponse{
			Error: err.Error(),
			Code:  code,
		})
	}

	return c.JSON(result)
}
