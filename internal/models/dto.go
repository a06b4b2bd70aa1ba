package models

type JobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

type JobResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PostingDate string `json:"posting_date"`
	Status      string `json:"status"`
}

type SaveResultRequest struct {
	JobID          string `json:"job_id" validate:"required,uuid"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}

type SaveResultResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
