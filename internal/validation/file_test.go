package validation

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("plan", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["plan"][0]
}

func TestValidateFile(t *testing.T) {
	plan := []byte("# Learn X\n\n- [ ] read (4h)\n")

	assert.NoError(t, ValidateFile("plan", fileHeader(t, "plan.md", plan), PlanConstraints))

	var vErr *ValidationError
	err := ValidateFile("plan", fileHeader(t, "plan.pdf", plan), PlanConstraints)
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "plan", vErr.Field)

	err = ValidateFile("plan", fileHeader(t, "plan.md", []byte("\x89PNG\r\n\x1a\n\x00\x00")), PlanConstraints)
	assert.True(t, errors.As(err, &vErr))

	small := PlanConstraints
	small.MaxSize = 8
	err = ValidateFile("plan", fileHeader(t, "plan.md", plan), small)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
}
