// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdkgen.yaml")

	cfg := &Config{
		Version:   CurrentConfigVersion,
		Schema:    "schema.yaml",
		Output:    "out/sdk",
		Languages: []string{"python", "go"},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdkgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Version: CurrentConfigVersion, Schema: "schema.yaml"}, ""},
		{"wrong version", Config{Version: 99, Schema: "schema.yaml"}, "unsupported config version"},
		{"missing schema", Config{Version: CurrentConfigVersion}, "schema path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestOutputDir(t *testing.T) {
	assert.Equal(t, "sdk", (&Config{}).OutputDir())
	assert.Equal(t, "custom", (&Config{Output: "custom"}).OutputDir())
}
