package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nilanjanc/ai-interviewer/internal/models"
)

type AssessmentService interface {
	Assess(ctx context.Context, resumePath, jobDescription string) (*models.AssessmentResult, error)
}

// assessmentService runs the resume-versus-job-description pipeline:
// extract text, build the instruction prompt, call the model, validate
// the response. Strictly linear and single-pass; no step is retried and
// nothing is cached between invocations.
type assessmentService struct {
	extractor         DocumentExtractor
	geminiService     GeminiService
	promptBuilder     *PromptBuilder
	validator         *ResponseValidator
	generationTimeout time.Duration
}

func NewAssessmentService(
	extractor DocumentExtractor,
	geminiService GeminiService,
	generationTimeout time.Duration,
) AssessmentService {
	return &assessmentService{
		extractor:         extractor,
		geminiService:     geminiService,
		promptBuilder:     NewPromptBuilder(),
		validator:         NewResponseValidator(),
		generationTimeout: generationTimeout,
	}
}

func (s *assessmentService) Assess(ctx context.Context, resumePath, jobDescription string) (*models.AssessmentResult, error) {
	// Cheapest precondition first: no point extracting a document for a
	// job description that isn't there.
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrMissingJobDescription
	}

	log.Println("📄 Extracting resume text...")
	resumeText, err := s.extractor.ExtractText(resumePath)
	if err != nil {
		return nil, err
	}

	resumeText = CleanText(resumeText)
	if resumeText == "" {
		return nil, ErrEmptyExtraction
	}

	prompt := s.promptBuilder.BuildAssessmentPrompt(jobDescription, resumeText)
	log.Printf("📝 Assessment prompt length: %d characters", len(prompt))

	log.Println("🤖 Generating quiz with LLM...")
	genCtx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()

	response, err := s.geminiService.GenerateText(genCtx, prompt, 0.3)
	if err != nil {
		log.Printf("❌ Quiz generation failed: %v", err)
		return nil, err
	}

	log.Printf("✅ Model response received: %d characters", len(response))

	result, err := s.validator.Validate(response)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			// The field path is the signal for prompt tuning
			log.Printf("❌ Schema violation at %s: %s", schemaErr.Path, schemaErr.Reason)
		}
		return nil, fmt.Errorf("failed to validate model response: %w", err)
	}

	log.Printf("✅ Quiz validated: %d questions for %s-level candidate",
		len(result.Questions), result.CandidateDetails.ExperienceLevel)

	return result, nil
}
