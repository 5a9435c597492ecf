package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g-m-twostay/coursetree/internal/config"
	"github.com/g-m-twostay/coursetree/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte("B,Second,A\nA,First\nbroken\n"), 0o644))

	var out, logs bytes.Buffer
	cfg := config.Config{DataFile: path, LogLevel: "info", LogFormat: "json"}
	a := New(strings.NewReader("1\n2\n9\n"), &out, &logs, &cfg)
	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "A: First\nB: Second\n")
	assert.Equal(t, 2, a.Catalog().Len())
	assert.NotContains(t, out.String(), "level")

	var sawLoad bool
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "Course file loaded." {
			sawLoad = true
			assert.EqualValues(t, 1, rec["skipped"])
		}
	}
	assert.True(t, sawLoad)
}

func TestApp_RunWithoutFile(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := config.Default()
	err := New(strings.NewReader("\n"), &out, &logs, &cfg).Run(context.Background())
	assert.ErrorIs(t, err, ingest.ErrNoFile)
	assert.Contains(t, logs.String(), "level=ERROR")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "text", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	newLogger("debug", "json", &buf).Debug("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
