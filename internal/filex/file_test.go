package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestEnsureSubDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	got, err := EnsureSubDir("exports")
	require.NoError(t, err)

	want := filepath.Join(tmp, "exports")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	again, err := EnsureSubDir("exports")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEnsureSubDir_FailsIfFileWithSameNameExists(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("exports", []byte("x"), 0o660))

	_, err := EnsureSubDir("exports")
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	path, err := WriteFile("exports", "../escape/trip.json", []byte(`{"a":1}`))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "exports", "trip.json"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(b))
}

func TestEnsureSubDir_AbsolutePath(t *testing.T) {
	want := filepath.Join(t.TempDir(), "out", "nested")

	got, err := EnsureSubDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.DirExists(t, want)
}
