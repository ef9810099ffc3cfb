package rom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/spectrum48/internal/memory"
)

func writeFile(t *testing.T, size int) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.rom")
	data := make([]byte, size)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadRejectsWrongSize(t *testing.T) {
	path := writeFile(t, memory.ROMSize-1)
	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSize))
}

func TestLoadAcceptsExactSize(t *testing.T) {
	path := writeFile(t, memory.ROMSize)
	data, err := Load(path)
	require.NoError(t, err)
	require.Len(t, data, memory.ROMSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.rom"))
	require.Error(t, err)
}
