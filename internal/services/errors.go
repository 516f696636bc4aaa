package services

import "errors"

// Input errors. Handlers map these to 400 responses; they are never retried.
var (
	ErrUnsupportedFileType = errors.New("unsupported file format: please upload .pdf or .docx")
	ErrEmptyDocument       = errors.New("could not extract text from file or file is empty")
)
