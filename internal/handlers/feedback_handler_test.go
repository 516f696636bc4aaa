package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-analyzer/internal/services"
)

func newFeedbackTestApp(t *testing.T) *fiber.App {
	t.Helper()

	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	handler := NewFeedbackHandler(storage, services.NewDocumentExtractor(), nil, nil, testMaxFileSize)

	app := fiber.New()
	app.Post("/api/v1/optimize-skills", handler.HandleOptimizeSkills)
	app.Post("/api/v1/optimize_structure_feedback", handler.HandleStructureFeedback)
	app.Post("/api/v1/optimize_content_feedback", handler.HandleContentFeedback)
	app.Post("/api/v1/optimize_tone_style_feedback", handler.HandleToneStyleFeedback)
	return app
}

func TestHandleOptimizeSkills_RequiresJobFields(t *testing.T) {
	app := newFeedbackTestApp(t)

	req := multipartRequest(t, "/api/v1/optimize-skills",
		map[string]string{"job_title": "Backend Engineer"},
		"resume.pdf", []byte("%PDF-1.4"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = multipartRequest(t, "/api/v1/optimize-skills",
		map[string]string{"job_description": "We need a Go engineer."},
		"resume.pdf", []byte("%PDF-1.4"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFeedbackEndpoints_RequireResumeFile(t *testing.T) {
	app := newFeedbackTestApp(t)

	paths := []string{
		"/api/v1/optimize_structure_feedback",
		"/api/v1/optimize_content_feedback",
		"/api/v1/optimize_tone_style_feedback",
	}

	for _, path := range paths {
		req := multipartRequest(t, path, nil, "", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "missing file on %s", path)
	}
}

func TestFeedbackEndpoints_RejectUnsupportedFileType(t *testing.T) {
	app := newFeedbackTestApp(t)

	req := multipartRequest(t, "/api/v1/optimize_structure_feedback",
		nil, "resume.md", []byte("# resume"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetAnalysis_InvalidID(t *testing.T) {
	handler := NewAnalysisHandler(nil, nil, nil, nil, nil)

	app := fiber.New()
	app.Get("/api/v1/analyses/:id", handler.HandleGetAnalysis)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/analyses/not-a-uuid", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleFindSimilar_InvalidID(t *testing.T) {
	handler := NewAnalysisHandler(nil, nil, nil, nil, nil)

	app := fiber.New()
	app.Get("/api/v1/analyses/:id/similar", handler.HandleFindSimilar)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/analyses/not-a-uuid/similar", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
