package portmantout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines_TrimsTrailingNewlineAndKeepsLast(t *testing.T) {
	r := bytes.NewBufferString("ab\nbc\ncd")
	lines, err := ReadLines(r)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("ab"), []byte("bc"), []byte("cd")}, lines)
}

func TestReadLines_DropsBlankLines(t *testing.T) {
	r := bytes.NewBufferString("ab\n\nbc\n")
	lines, err := ReadLines(r)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("ab"), []byte("bc")}, lines)
}

func TestReadLines_Empty(t *testing.T) {
	lines, err := ReadLines(bytes.NewBufferString(""))
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestReadLinesFile_MissingFileIsIoFailure(t *testing.T) {
	_, err := ReadLinesFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrIoFailure)
}

func TestAtomicWriteFile_WritesReadableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, AtomicWriteFile(dir, "out.txt", []byte("hello")))

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	// No leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestAtomicWriteFile_CreatesMissingDir(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "nested", "deeper")
	require.NoError(t, AtomicWriteFile(dir, "out.txt", []byte("x")))

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "x", string(data))
}
