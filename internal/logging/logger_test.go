package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("trained", zap.Int("vocabulary", 5))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "trained", entry["msg"])
	assert.Equal(t, float64(5), entry["vocabulary"])
	assert.Contains(t, entry, "ts")
	assert.Contains(t, entry, "caller")
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.Debug("seed", zap.Int64("seed", 42))
	require.NoError(t, logger.Sync())

	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"seed":42`)
}
