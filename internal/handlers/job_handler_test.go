package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nilanjanc/ai-interviewer/internal/models"
)

func newJobApp(jobRepo *fakeJobRepo) *fiber.App {
	h := NewJobHandler(jobRepo)

	app := fiber.New()
	app.Post("/api/v1/jobs", h.HandleCreateJob)
	app.Get("/api/v1/jobs", h.HandleListJobs)
	app.Get("/api/v1/jobs/:id", h.HandleGetJob)
	app.Put("/api/v1/jobs/:id", h.HandleUpdateJob)
	app.Delete("/api/v1/jobs/:id", h.HandleDeleteJob)
	return app
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleCreateJob(t *testing.T) {
	jobRepo := newFakeJobRepo()
	app := newJobApp(jobRepo)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/jobs", models.JobRequest{
		Title:       "Backend Engineer",
		Description: "Go, Postgres, distributed systems",
		Date:        "2026-08-01",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Len(t, jobRepo.jobs, 1)
}

func TestHandleCreateJob_Validation(t *testing.T) {
	cases := []struct {
		name string
		req  models.JobRequest
	}{
		{"missing title", models.JobRequest{Description: "d", Date: "2026-08-01"}},
		{"missing description", models.JobRequest{Title: "Backend Engineer", Date: "2026-08-01"}},
		{"missing date", models.JobRequest{Title: "Backend Engineer", Description: "d"}},
		{"short title", models.JobRequest{Title: "Go", Description: "d", Date: "2026-08-01"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newJobApp(newFakeJobRepo())
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/jobs", tc.req), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleGetJob(t *testing.T) {
	jobRepo := newFakeJobRepo()
	job := &models.Job{ID: uuid.New(), Title: "Backend Engineer", Description: "d"}
	require.NoError(t, jobRepo.Create(job))
	app := newJobApp(jobRepo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+job.ID.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+uuid.New().String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/jobs/not-a-uuid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleUpdateJob(t *testing.T) {
	jobRepo := newFakeJobRepo()
	job := &models.Job{ID: uuid.New(), Title: "Backend Engineer", Description: "d"}
	require.NoError(t, jobRepo.Create(job))
	app := newJobApp(jobRepo)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID.String(), models.JobRequest{
		Title:       "Senior Backend Engineer",
		Description: "more of everything",
		Date:        "2026-09-01",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Senior Backend Engineer", jobRepo.jobs[job.ID].Title)
}

func TestHandleDeleteJob(t *testing.T) {
	jobRepo := newFakeJobRepo()
	job := &models.Job{ID: uuid.New(), Title: "Backend Engineer", Description: "d"}
	require.NoError(t, jobRepo.Create(job))
	app := newJobApp(jobRepo)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/jobs/"+job.ID.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, jobRepo.jobs)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/jobs/"+job.ID.String(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
