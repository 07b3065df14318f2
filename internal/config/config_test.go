package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogkit.yaml")
	data := []byte("reading:\n  speed: 200\n  code_blocks: skip\nimages:\n  max_width: 1200\n  continue_on_error: true\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Reading.Speed)
	assert.Equal(t, "skip", cfg.Reading.CodeBlocks)
	assert.Equal(t, DefaultRuleSet, cfg.Reading.Rules)
	assert.Equal(t, 1200, cfg.Images.MaxWidth)
	assert.Equal(t, DefaultMaxHeight, cfg.Images.MaxHeight)
	assert.True(t, cfg.Images.ContinueOnError)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero speed", "reading:\n  speed: 0\n"},
		{"unknown rules", "reading:\n  rules: v9\n"},
		{"unknown code policy", "reading:\n  code_blocks: maybe\n"},
		{"negative bound", "images:\n  max_height: -1\n"},
		{"quality out of range", "images:\n  jpeg_quality: 101\n"},
		{"broken yaml", "reading: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
