package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRequest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCalblockDrawingSkipsPurchasedBlocks(t *testing.T) {
	dir := t.TempDir()
	reqPath := writeRequest(t, dir, "request.yaml", `
material: carbon_steel
part_type: plate
standard: iso17640
thickness: 20
beam_type: angle
angles: [60]
`)
	outPath := filepath.Join(dir, "rec.json")
	drawPath := filepath.Join(dir, "block.json")

	cmd := rootCmd()
	cmd.SetArgs([]string{"calblock", reqPath, "--out", outPath, "--drawing", drawPath})
	require.NoError(t, cmd.Execute())

	// The IIW block is purchased, not drawn: no drawing file, but the
	// recommendation is still written.
	_, err := os.Stat(drawPath)
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var rec struct {
		Primary struct {
			Category string `json:"category"`
		} `json:"primary"`
	}
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "iiw_v1", rec.Primary.Category)
}

func TestCalblockDrawingWritesFlatBlock(t *testing.T) {
	dir := t.TempDir()
	reqPath := writeRequest(t, dir, "request.yaml", `
material: carbon_steel
part_type: plate
standard: asme
thickness: 25
`)
	outPath := filepath.Join(dir, "rec.json")
	drawPath := filepath.Join(dir, "block.json")

	cmd := rootCmd()
	cmd.SetArgs([]string{"calblock", reqPath, "--out", outPath, "--drawing", drawPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(drawPath)
	require.NoError(t, err)
	var spec struct {
		ID         string           `json:"id"`
		Operations []map[string]any `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(data, &spec))
	assert.Equal(t, "CAL-flat_fbh", spec.ID)
	require.NotEmpty(t, spec.Operations)
	assert.Equal(t, "base_box", spec.Operations[0]["op"])
}
