package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrintCmd_YAML(t *testing.T) {
	var buf bytes.Buffer
	cmd := &PrintCmd{Dir: "src", Format: "yaml", out: &buf}

	err := cmd.Run(context.Background(), &Globals{Args: []string{"print", "-p"}})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "production", got["mode"])
	assert.Equal(t, []any{"*", ".js", ".jsx"}, got["resolutionExtensions"])
	assert.Len(t, got["entryPoints"], 6)
}

func TestPrintCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &PrintCmd{Dir: filepath.Join("webapp", "src"), Format: "json", out: &buf}

	err := cmd.Run(context.Background(), &Globals{})
	require.NoError(t, err)

	var got struct {
		Mode        string            `json:"mode"`
		EntryPoints map[string]string `json:"entryPoints"`
		Output      struct {
			Dir      string `json:"dir"`
			Filename string `json:"filename"`
		} `json:"output"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "development", got.Mode)
	assert.Equal(t, filepath.Join("webapp", "src", "plan.jsx"), got.EntryPoints["plan"])
	assert.Equal(t, filepath.Join("webapp", "dist"), got.Output.Dir)
	assert.Equal(t, "[name].js", got.Output.Filename)
}
