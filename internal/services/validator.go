package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"nilanjanc/ai-interviewer/internal/models"
)

const (
	minQuestions = 10
	maxQuestions = 20
)

// ResponseValidator turns the model's raw text into a validated
// AssessmentResult. Pure: no I/O, fully testable from JSON fixtures.
type ResponseValidator struct{}

func NewResponseValidator() *ResponseValidator {
	return &ResponseValidator{}
}

// StripCodeFences removes the markdown code fences the model sometimes
// wraps its JSON in, despite being told not to. Kept as its own step so
// the normalization stays independently verifiable.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Validate parses and structurally verifies one model response.
// Failures are either a MalformedResponseError (not JSON at all) or a
// SchemaError naming the field path that broke the contract.
func (v *ResponseValidator) Validate(raw string) (*models.AssessmentResult, error) {
	clean := StripCodeFences(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &top); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	for key := range top {
		if key != "candidate_details" && key != "questions" {
			return nil, &SchemaError{Path: key, Reason: "unexpected top-level key"}
		}
	}

	rawDetails, ok := top["candidate_details"]
	if !ok {
		return nil, &SchemaError{Path: "candidate_details", Reason: "missing required key"}
	}

	rawQuestions, ok := top["questions"]
	if !ok {
		return nil, &SchemaError{Path: "questions", Reason: "missing required key"}
	}

	profile, err := v.validateProfile(rawDetails)
	if err != nil {
		return nil, err
	}

	questions, err := v.validateQuestions(rawQuestions)
	if err != nil {
		return nil, err
	}

	return &models.AssessmentResult{
		CandidateDetails: *profile,
		Questions:        questions,
	}, nil
}

func (v *ResponseValidator) validateProfile(raw json.RawMessage) (*models.CandidateProfile, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &SchemaError{Path: "candidate_details", Reason: "expected an object"}
	}

	name, err := stringField(fields, "candidate_details", "name")
	if err != nil {
		return nil, err
	}

	email, err := stringField(fields, "candidate_details", "email")
	if err != nil {
		return nil, err
	}

	phone, err := stringField(fields, "candidate_details", "phone")
	if err != nil {
		return nil, err
	}

	totalExperience, err := textField(fields, "candidate_details", "total_experience")
	if err != nil {
		return nil, err
	}

	level, err := stringField(fields, "candidate_details", "experience_level")
	if err != nil {
		return nil, err
	}

	// The model occasionally misspells or pads the tier name. Rather
	// than rejecting the whole quiz, clamp to the tier the stated
	// experience implies.
	tier, ok := models.ParseTier(level)
	if !ok {
		tier = models.TierFromYears(models.ParseExperienceYears(totalExperience))
	}

	return &models.CandidateProfile{
		Name:            name,
		Email:           email,
		Phone:           phone,
		TotalExperience: totalExperience,
		ExperienceLevel: tier,
	}, nil
}

func (v *ResponseValidator) validateQuestions(raw json.RawMessage) ([]models.QuizQuestion, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &SchemaError{Path: "questions", Reason: "expected an array"}
	}

	if len(items) < minQuestions || len(items) > maxQuestions {
		return nil, &SchemaError{
			Path:   "questions",
			Reason: fmt.Sprintf("expected between %d and %d questions, got %d", minQuestions, maxQuestions, len(items)),
		}
	}

	questions := make([]models.QuizQuestion, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("questions[%d]", i)

		var q models.QuizQuestion
		if err := json.Unmarshal(item, &q); err != nil {
			return nil, &SchemaError{Path: path, Reason: fmt.Sprintf("malformed question object: %v", err)}
		}

		if strings.TrimSpace(q.Question) == "" {
			return nil, &SchemaError{Path: path + ".question", Reason: "must be a non-empty string"}
		}

		if len(q.Options) != len(models.OptionLabels) {
			return nil, &SchemaError{
				Path:   path + ".options",
				Reason: fmt.Sprintf("expected exactly %d options, got %d", len(models.OptionLabels), len(q.Options)),
			}
		}

		for _, label := range models.OptionLabels {
			if _, ok := q.Options[label]; !ok {
				return nil, &SchemaError{Path: path + ".options", Reason: fmt.Sprintf("missing option %q", label)}
			}
		}

		// Matched verbatim: the only sanctioned normalizations are the
		// fence strip and the tier clamp
		if _, ok := q.Options[q.CorrectAnswer]; !ok {
			return nil, &SchemaError{
				Path:   path + ".correct_answer",
				Reason: fmt.Sprintf("%q is not one of the question's option labels", q.CorrectAnswer),
			}
		}

		questions = append(questions, q)
	}

	return questions, nil
}

func stringField(fields map[string]json.RawMessage, parent, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", &SchemaError{Path: parent + "." + name, Reason: "missing required field"}
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &SchemaError{Path: parent + "." + name, Reason: "expected a string"}
	}

	return value, nil
}

// textField is stringField with one normalization: a bare JSON number is
// accepted and rendered as text, since the model sometimes answers
// "total_experience": 4 instead of "4 years".
func textField(fields map[string]json.RawMessage, parent, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", &SchemaError{Path: parent + "." + name, Reason: "missing required field"}
	}

	var value string
	if err := json.Unmarshal(raw, &value); err == nil {
		return value, nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return strconv.FormatFloat(number, 'f', -1, 64) + " years", nil
	}

	return "", &SchemaError{Path: parent + "." + name, Reason: "expected a string or number"}
}
