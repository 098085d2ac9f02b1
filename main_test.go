package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldInput(t *testing.T) {
	in, err := holdInput([]string{"right", "jump"})
	require.NoError(t, err)
	assert.True(t, in.Right)
	assert.True(t, in.Jump)
	assert.False(t, in.Left)

	_, err = holdInput([]string{"fly"})
	assert.Error(t, err)
}

func TestSimulateCommand(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "flat.lvl")
	require.NoError(t, os.WriteFile(p, []byte("g 40 1 0 0\nP 1 2 2 5\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"simulate", p, "--ticks", "120", "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "tick 120: pos=(64,32)")
	assert.Contains(t, out.String(), "resets=0")
}

func TestConvertRejectsMissingMap(t *testing.T) {
	rootCmd.SetArgs([]string{"convert", filepath.Join(t.TempDir(), "missing.tmx"), "out.lvl", "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}
