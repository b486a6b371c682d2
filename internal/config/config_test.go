package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"document": "testdata/resume.json",
		"output": "site/index.html",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "testdata/resume.json", cfg.Document)
	assert.Equal(t, "site/index.html", cfg.Output)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Template)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("Empty config is valid", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Existing document passes", func(t *testing.T) {
		doc := filepath.Join(t.TempDir(), "resume.json")
		require.NoError(t, os.WriteFile(doc, []byte("{}"), 0644))

		cfg := &Config{Document: doc}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Missing document fails", func(t *testing.T) {
		cfg := &Config{Document: filepath.Join(t.TempDir(), "missing.json")}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Output path is not checked for existence", func(t *testing.T) {
		cfg := &Config{Output: filepath.Join(t.TempDir(), "not-yet-created.html")}
		assert.NoError(t, cfg.Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		defaults Config
		expected Config
	}{
		{
			name:     "Empty config takes all defaults",
			config:   Config{},
			defaults: Config{Document: "a.json", Output: "out.html"},
			expected: Config{Document: "a.json", Output: "out.html"},
		},
		{
			name:     "Set fields win over defaults",
			config:   Config{Document: "mine.json"},
			defaults: Config{Document: "theirs.json", Output: "out.html"},
			expected: Config{Document: "mine.json", Output: "out.html"},
		},
		{
			name:     "Bools are not merged",
			config:   Config{},
			defaults: Config{Verbose: true},
			expected: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.MergeWithDefaults(tt.defaults))
		})
	}
}
