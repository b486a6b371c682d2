package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetRenderFlags() {
	renderDocFile = ""
	renderOutputFile = ""
	renderTemplateFile = ""
	renderConfigFile = ""
	renderVerbose = false
}

func TestRunRender(t *testing.T) {
	resetRenderFlags()
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "index.html")

	renderDocFile = filepath.Join("..", "..", "testdata", "resume.json")
	renderOutputFile = outputFile

	err := runRender(nil, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Jordan Avery")
	assert.Contains(t, html, "data-skill-id")
}

func TestRunRender_MissingDocument(t *testing.T) {
	resetRenderFlags()
	tmpDir := t.TempDir()
	renderOutputFile = filepath.Join(tmpDir, "index.html")

	err := runRender(nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no content document")
}

func TestRunRender_NonexistentDocument(t *testing.T) {
	resetRenderFlags()
	tmpDir := t.TempDir()
	renderDocFile = filepath.Join(tmpDir, "missing.json")
	renderOutputFile = filepath.Join(tmpDir, "index.html")

	err := runRender(nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
}

func TestRunRender_ConfigFile(t *testing.T) {
	resetRenderFlags()
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "index.html")

	docPath, err := filepath.Abs(filepath.Join("..", "..", "testdata", "resume.json"))
	require.NoError(t, err)

	configFile := filepath.Join(tmpDir, "config.json")
	configJSON := fmt.Sprintf(`{"document": %q, "output": %q}`, docPath, outputFile)
	require.NoError(t, os.WriteFile(configFile, []byte(configJSON), 0644))

	renderConfigFile = configFile

	err = runRender(nil, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jordan Avery")
}
