package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smz3/pkg/game/reach"
	"smz3/pkg/game/renderer"
	"smz3/pkg/game/renderer/tui"
	"smz3/pkg/game/seed"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	renderer.SetRenderer(tui.New(&buf))
	t.Cleanup(func() { renderer.SetRenderer(nil) })

	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Logic is consistent")
	assert.False(t, reach.IsLogicInconsistency(err))
}

func TestExplainCommand(t *testing.T) {
	out, err := run(t, "explain", "Missile (Crateria bottom)", "--have", "ScrewAttack", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Missile (Crateria bottom) is already reachable.")

	out, err = run(t, "explain", "Crateria", "--have", "", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"Crateria" matches`)

	_, err = run(t, "explain", "Nowhere At All", "--seed", "1")
	assert.ErrorContains(t, err, "No location matches")

	_, err = run(t, "explain", "Morphing Ball", "--have", "NotAnItem", "--seed", "1")
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "seed.json")

	out, err := run(t, "generate", "--seed", "cli", "--format", "json", "--out", outPath, "--spoiler", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Spoiler log written to")
	assert.FileExists(t, filepath.Join(dir, "spoiler.txt"))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	data, err := seed.Read(f, seed.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "cli", data.SeedText)
	assert.Contains(t, out, data.Hash)
}

func TestWriteSeedFile(t *testing.T) {
	dir := t.TempDir()
	data := &seed.SeedData{SeedText: "file", Hash: "0123456789abcdef"}

	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, writeSeedFile(path, data, seed.FormatYAML))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	back, err := seed.Read(f, seed.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, data.Hash, back.Hash)

	assert.Error(t, writeSeedFile(filepath.Join(dir, "missing", "seed.yaml"), data, seed.FormatYAML))
	assert.Error(t, writeSeedFile(filepath.Join(dir, "seed.toml"), data, "toml"))
}
