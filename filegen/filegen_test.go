package filegen

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	dir, err := ioutil.TempDir("", "filegen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "templates", "out.yaml")

	require.NoError(t, WriteAtomic(out, []byte("first\n"), 0644))
	require.NoError(t, WriteAtomic(out, []byte("second\n"), 0644))

	data, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	entries, err := ioutil.ReadDir(filepath.Join(dir, "templates"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "out.yaml", entries[0].Name())
	assert.Equal(t, os.FileMode(0644), entries[0].Mode().Perm())
}

func TestWriteAtomicIntoMissingParentFails(t *testing.T) {
	dir, err := ioutil.TempDir("", "filegen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	blocker := filepath.Join(dir, "file")
	require.NoError(t, ioutil.WriteFile(blocker, []byte("x"), 0644))

	err = WriteAtomic(filepath.Join(blocker, "out.yaml"), []byte("data"), 0644)
	assert.Error(t, err)
}
