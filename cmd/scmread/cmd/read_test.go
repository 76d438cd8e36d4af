package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReadPrintsEachDatum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.scm")
	require.NoError(t, os.WriteFile(path, []byte("(+ 1 2) 'x"), 0o644))

	var out bytes.Buffer
	readCmd.SetOut(&out)
	err := runRead(readCmd, []string{path})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "0: (+ 1 2)")
	assert.Contains(t, out.String(), "1:")
}

func TestRunReadReportsLexError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.scm")
	require.NoError(t, os.WriteFile(path, []byte(`"unterminated`), 0o644))

	err := runRead(readCmd, []string{path})
	require.Error(t, err)
}

func TestRunReadMissingFile(t *testing.T) {
	err := runRead(readCmd, []string{filepath.Join(t.TempDir(), "missing.scm")})
	require.Error(t, err)
}
