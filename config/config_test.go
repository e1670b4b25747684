/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "entity-models", cfg.TableName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, `
listen_addr: ":9090"
table_name: staging-entity-models
aws:
  region: eu-central-1
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "staging-entity-models", cfg.TableName)
	assert.Equal(t, "eu-central-1", cfg.AWS.Region)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, `listen_addr: ":9090"`)
	t.Setenv("MODELREGISTRY_LISTEN_ADDR", ":7070")
	t.Setenv("MODELREGISTRY_TABLE_NAME", "env-entity-models")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, "env-entity-models", cfg.TableName)
}

func TestRejectsUnknownFields(t *testing.T) {
	path := writeFile(t, `listen_address: ":9090"`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad log level", "log:\n  level: loud\n  format: text"},
		{"bad log format", "log:\n  level: info\n  format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.yaml)
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestMissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "warn"

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
