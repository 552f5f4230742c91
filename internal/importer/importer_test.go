package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "import", "march.csv"), "Date,Description,Amount\n")
	writeFile(t, filepath.Join(dir, "import", "APRIL.CSV"), "Date,Description,Amount\n")
	writeFile(t, filepath.Join(dir, "import", "notes.txt"), "not a statement")

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.NotEmpty(t, f.Path)
		assert.Greater(t, f.Size, int64(0))
	}
}

func TestScanMissingDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "import", "march.csv"), "Date,Description,Amount\n")

	require.NoError(t, MarkProcessed(dir, "march.csv"))

	_, err := os.Stat(filepath.Join(dir, "import", "march.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "march.csv"))
	assert.NoError(t, err)
}
