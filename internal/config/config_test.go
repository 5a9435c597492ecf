package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "courses.hcl", `
data_file  = "data/courses.csv"
log_level  = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "data", "courses.csv"), cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.LogFormat)

	merged := Default().Merge(cfg)
	assert.Equal(t, "text", merged.LogFormat)
	assert.Equal(t, "debug", merged.LogLevel)
	assert.NoError(t, merged.Validate())
}

func TestLoad_AbsoluteDataFile(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "courses.csv")
	path := writeFile(t, "courses.hcl", `data_file = "`+filepath.ToSlash(abs)+`"`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(abs), filepath.ToSlash(cfg.DataFile))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.hcl", `data_file = `))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "unknown.hcl", `workers = 3`))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := Config{DataFile: "a.csv", LogLevel: "warn", LogFormat: "text"}
	got := base.Merge(Config{LogFormat: "json"})
	assert.Equal(t, Config{DataFile: "a.csv", LogLevel: "warn", LogFormat: "json"}, got)
	assert.Equal(t, base, base.Merge(Config{}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Default()},
		{name: "json error", cfg: Config{LogLevel: "error", LogFormat: "json"}},
		{name: "bad level", cfg: Config{LogLevel: "trace", LogFormat: "text"}, wantErr: true},
		{name: "bad format", cfg: Config{LogLevel: "info", LogFormat: "xml"}, wantErr: true},
		{name: "empty", cfg: Config{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
