package services

import (
	"errors"
	"fmt"
)

// Input errors. These are caller-correctable: a different file or a
// filled-in job description fixes them.
var (
	ErrUnsupportedFormat     = errors.New("unsupported file format, please upload PDF or DOCX")
	ErrCorruptDocument       = errors.New("file could not be parsed")
	ErrEmptyExtraction       = errors.New("no text content found in resume")
	ErrMissingJobDescription = errors.New("job description is required")
)

// GenerationError classifies any failure of the model call: transport,
// authentication, timeout, or an empty response.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("quiz generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means the model's output was not parseable as
// JSON even after fence stripping.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("model returned malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// SchemaError means the model's JSON parsed but does not conform to the
// quiz schema. Path points at the offending field for prompt-tuning
// diagnosis, e.g. "questions[3].correct_answer".
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Reason)
}

// IsInputError reports whether err belongs to the caller-correctable
// class of the taxonomy.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrCorruptDocument) ||
		errors.Is(err, ErrEmptyExtraction) ||
		errors.Is(err, ErrMissingJobDescription)
}
