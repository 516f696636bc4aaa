package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"ai-resume-analyzer/internal/services"
)

// resumeFormFile pulls the uploaded resume out of the multipart form and
// enforces the size limit before anything touches the file contents.
func resumeFormFile(c *fiber.Ctx, maxFileSize int64) (*multipart.FileHeader, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}

	if file.Size > maxFileSize {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("resume file too large. Max size: %d bytes", maxFileSize))
	}

	return file, nil
}

// extractUploadedResume saves the upload to a scratch file, extracts its
// text, and always removes the scratch file again. Unsupported formats and
// empty documents are rejected before any model or embedding call happens.
func extractUploadedResume(
	c *fiber.Ctx,
	storage services.StorageService,
	extractor services.DocumentExtractor,
	maxFileSize int64,
) (string, error) {
	file, err := resumeFormFile(c, maxFileSize)
	if err != nil {
		return "", err
	}

	filename, filePath, err := storage.SaveFile(file, "tmp")
	if err != nil {
		return "", inputOrServerError(err)
	}
	defer storage.DeleteFile(filename)

	text, err := extractor.ExtractText(filePath)
	if err != nil {
		return "", inputOrServerError(err)
	}

	return text, nil
}

// inputOrServerError maps the input-error sentinels to 400 and everything
// else to 500.
func inputOrServerError(err error) error {
	if errors.Is(err, services.ErrUnsupportedFileType) || errors.Is(err, services.ErrEmptyDocument) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
