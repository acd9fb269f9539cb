package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorRecord(msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Now(), slog.LevelError, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestPGHandler_MapsColumns(t *testing.T) {
	h := NewPGHandler(nil)
	ctx := context.Background()

	withReq := h.WithAttrs([]slog.Attr{slog.String("request_id", "req-1")})
	require.NoError(t, withReq.Handle(ctx, errorRecord("request failed",
		slog.String("method", "PUT"),
		slog.String("path", "/candidates/1"),
		slog.String("error", "boom"),
		slog.String("user_id", "u-1"),
		slog.Int("attempt", 2),
	)))

	b := h.shared
	b.mu.Lock()
	require.Len(t, b.buffer, 1)
	entry := b.buffer[0]
	b.buffer = b.buffer[:0]
	b.mu.Unlock()

	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "PUT", entry.Method)
	assert.Equal(t, "/candidates/1", entry.Path)
	assert.Equal(t, "boom", entry.Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)
	assert.JSONEq(t, `{"attempt":2}`, string(entry.Extra))

	h.Stop()
}

func TestPGHandler_DropsRecordsAfterStop(t *testing.T) {
	h := NewPGHandler(nil)
	h.Stop()

	// A full batch after Stop must not start a flush against the store.
	for i := 0; i < pgBatchSize+1; i++ {
		require.NoError(t, h.Handle(context.Background(), errorRecord("late")))
	}

	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	assert.Empty(t, h.shared.buffer)
}
