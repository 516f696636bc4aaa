package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-analyzer/internal/services"
)

const testMaxFileSize int64 = 10 * 1024 * 1024

// multipartRequest builds a multipart form request for path with the given
// fields and, when filename is non-empty, a "resume" file part.
func multipartRequest(t *testing.T, path string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newAnalyzeTestApp(t *testing.T) *fiber.App {
	t.Helper()

	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	// Downstream services stay nil: every request in these tests must be
	// rejected before the scoring pipeline is reached.
	handler := NewAnalyzeHandler(nil, nil, storage, services.NewDocumentExtractor(), nil, nil, testMaxFileSize)

	app := fiber.New()
	app.Post("/api/v1/analyze_resume", handler.HandleAnalyzeResume)
	return app
}

func TestHandleAnalyzeResume_RequiresJobDescription(t *testing.T) {
	app := newAnalyzeTestApp(t)

	req := multipartRequest(t, "/api/v1/analyze_resume",
		map[string]string{"job_title": "Backend Engineer"},
		"resume.pdf", []byte("%PDF-1.4"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeResume_RequiresJobTitle(t *testing.T) {
	app := newAnalyzeTestApp(t)

	req := multipartRequest(t, "/api/v1/analyze_resume",
		map[string]string{"job_description": "We need a Go engineer."},
		"resume.pdf", []byte("%PDF-1.4"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeResume_RequiresResumeFile(t *testing.T) {
	app := newAnalyzeTestApp(t)

	req := multipartRequest(t, "/api/v1/analyze_resume", map[string]string{
		"job_description": "We need a Go engineer.",
		"job_title":       "Backend Engineer",
	}, "", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeResume_RejectsUnsupportedFileType(t *testing.T) {
	app := newAnalyzeTestApp(t)

	req := multipartRequest(t, "/api/v1/analyze_resume", map[string]string{
		"job_description": "We need a Go engineer.",
		"job_title":       "Backend Engineer",
	}, "resume.txt", []byte("plain text resume"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "unsupported file format")
}

func TestHandleAnalyzeResume_RejectsOversizedFile(t *testing.T) {
	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())
	handler := NewAnalyzeHandler(nil, nil, storage, services.NewDocumentExtractor(), nil, nil, 16)

	app := fiber.New()
	app.Post("/api/v1/analyze_resume", handler.HandleAnalyzeResume)

	req := multipartRequest(t, "/api/v1/analyze_resume", map[string]string{
		"job_description": "We need a Go engineer.",
		"job_title":       "Backend Engineer",
	}, "resume.pdf", bytes.Repeat([]byte("a"), 64))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
