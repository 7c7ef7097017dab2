package plugins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "plugin.yaml")

	content := `id: audit-logger
name: Audit Logger
version: 1.0.0
api_version: 1.0.0
description: Writes an audit trail
author: Test Author
license: MIT
metadata:
  tier: core
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(content), 0644))

	manifest, err := LoadManifest(manifestPath)

	require.NoError(t, err)
	assert.Equal(t, "audit-logger", manifest.ID)
	assert.Equal(t, "Audit Logger", manifest.Name)
	assert.Equal(t, "1.0.0", manifest.Version)
	assert.Equal(t, "MIT", manifest.License)
	assert.Equal(t, "core", manifest.Metadata["tier"])
}

func TestLoadManifest_FileNotFound(t *testing.T) {
	_, err := LoadManifest("/nonexistent/plugin.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestLoadManifest_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "plugin.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("id: [unclosed"), 0644))

	_, err := LoadManifest(manifestPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestSaveManifest_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "plugin.yaml")

	original := &Manifest{
		ID:         "audit-logger",
		Name:       "Audit Logger",
		Version:    "2.1.0",
		APIVersion: "1.0.0",
		Author:     "Test Author",
	}
	require.NoError(t, SaveManifest(original, manifestPath))

	loaded, err := LoadManifest(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestValidateManifest(t *testing.T) {
	tests := []struct {
		name       string
		manifest   *Manifest
		wantFields []string
	}{
		{
			name: "valid manifest",
			manifest: &Manifest{
				ID:         "audit",
				Name:       "Audit",
				Version:    "1.0.0",
				APIVersion: "1.0.0",
			},
			wantFields: nil,
		},
		{
			name: "valid manifest without api version",
			manifest: &Manifest{
				ID:      "audit",
				Name:    "Audit",
				Version: "v1.2.3-rc.1+build.7",
			},
			wantFields: nil,
		},
		{
			name:       "missing everything",
			manifest:   &Manifest{},
			wantFields: []string{"id", "name", "version"},
		},
		{
			name: "bad version format",
			manifest: &Manifest{
				ID:      "audit",
				Name:    "Audit",
				Version: "one-point-oh",
			},
			wantFields: []string{"version"},
		},
		{
			name: "bad api version format",
			manifest: &Manifest{
				ID:         "audit",
				Name:       "Audit",
				Version:    "1.0.0",
				APIVersion: "latest",
			},
			wantFields: []string{"api_version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateManifest(tt.manifest)

			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidationError_String(t *testing.T) {
	err := ValidationError{Field: "version", Message: "Plugin version is required"}

	assert.Equal(t, "version: Plugin version is required", err.String())
}
