package debug

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebug(t *testing.T) {
	t.Run("set logger", func(t *testing.T) {
		var buf bytes.Buffer
		SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer SetLogger(nil)

		assert.True(t, Enabled())
		Log("activate", "observable", "[Stream | s]")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "activate", record["msg"])
		assert.Equal(t, "[Stream | s]", record["observable"])
	})

	t.Run("disabled", func(t *testing.T) {
		SetLogger(nil)
		assert.False(t, Enabled())
		Log("nothing")
	})

	t.Run("init writes to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "flow.log")
		require.NoError(t, Init(path))

		Log("end", "observable", "[Stream | s]")
		require.NoError(t, Close())
		assert.False(t, Enabled())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"end"`)
	})
}
