package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/goaltracker/internal/ctxkeys"
)

func TestRequestIDFromContext(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	Init(&buf, false, "")

	ctx := ctxkeys.WithRequestID(context.Background(), "req-123")
	slog.ErrorContext(ctx, "failed to get goals", "goal_id", 7)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-123", record["request_id"])
	assert.Equal(t, "failed to get goals", record["msg"])
	assert.EqualValues(t, 7, record["goal_id"])
}

func TestNoRequestIDWithoutContextValue(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	Init(&buf, true, "")

	slog.With("component", "cli").Info("migrations completed")

	assert.Contains(t, buf.String(), "component=cli")
	assert.NotContains(t, buf.String(), "request_id")
}
