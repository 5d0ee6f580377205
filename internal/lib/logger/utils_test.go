package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json in production", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&buf, false)
		log.Debug("hidden")
		log.Info("visible", "op", "test")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "visible", record["msg"])
		assert.Equal(t, "test", record["op"])
	})
	t.Run("pretty in debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&buf, true)
		log.With("op", "test").Debug("shown")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), `"op": "test"`)
	})
}

func TestLogAdapter(t *testing.T) {
	var buf bytes.Buffer
	LogAdapter(NewLogger(&buf, false)).Print("http: TLS handshake error")
	assert.Contains(t, buf.String(), "TLS handshake error")
}
