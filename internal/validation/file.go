package validation

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

var ErrFileTooLarge = errors.New("file too large")

// FileConstraints defines validation rules for file uploads
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// PlanConstraints accepts markdown plans up to 1 MB.
var PlanConstraints = FileConstraints{
	AllowedMimeTypes: map[string]bool{
		"text/plain; charset=utf-8": true,
	},
	AllowedExtensions: map[string]bool{
		".md":       true,
		".markdown": true,
		".txt":      true,
	},
	MaxSize: 1 << 20,
}

// ValidateFile checks an upload against the constraints. Oversized files
// return ErrFileTooLarge, anything else a *ValidationError.
func ValidateFile(field string, header *multipart.FileHeader, constraints FileConstraints) error {
	// Check file size first (before reading content)
	if header.Size > constraints.MaxSize {
		return fmt.Errorf("%w: maximum size is %d KB", ErrFileTooLarge, constraints.MaxSize>>10)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return &ValidationError{Field: field, Message: fmt.Sprintf("has an unsupported extension %q", ext)}
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads max 512 bytes to determine MIME type
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	detectedType := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detectedType] {
		return &ValidationError{Field: field, Message: fmt.Sprintf("is not a text file (detected %s)", detectedType)}
	}

	return nil
}
