package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_RejectsUnsupportedFormats(t *testing.T) {
	dir := t.TempDir()
	extractor := NewDocumentExtractor()

	for _, name := range []string{"resume.txt", "resume.csv", "resume.png", "resume"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("some resume content"), 0o644))

		_, err := extractor.ExtractText(path)
		assert.ErrorIs(t, err, ErrUnsupportedFileType, "extension of %q must be rejected", name)
	}
}

func TestExtractText_RejectionHappensBeforeReadingTheFile(t *testing.T) {
	extractor := NewDocumentExtractor()

	// The file does not exist, so a read attempt would surface a different
	// error. The extension check must fire first.
	_, err := extractor.ExtractText("/nonexistent/resume.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExtractText_MissingPDF(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExtractText_CorruptDOCX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	extractor := NewDocumentExtractor()
	_, err := extractor.ExtractText(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFileType)
}

func TestCleanText(t *testing.T) {
	input := "  John Doe  \n\n\n  Backend Engineer\t\n\n   \nGo, SQL  "
	assert.Equal(t, "John Doe\nBackend Engineer\nGo, SQL", CleanText(input))

	assert.Equal(t, "", CleanText("   \n \t \n  "))
	assert.Equal(t, "single line", CleanText("single line"))
}
