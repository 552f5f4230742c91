package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in-process and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func initDir(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	_, err := run(t, "init", dir)
	require.NoError(t, err)
	return dir, filepath.Join(dir, "spendview.yaml")
}

func writeStatement(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const marchCSV = "Date,Description,Amount,Category\n" +
	"03/15/2024,STARBUCKS #1234,$12.50,Restaurants\n" +
	"03/10/2024,SAFEWAY #210,30.00,Groceries\n" +
	"03/01/2024,PAYMENT THANK YOU,-45.00,Payment\n"

func TestInitCreatesStructure(t *testing.T) {
	dir, cfgPath := initDir(t)

	for _, d := range []string{"import", filepath.Join("import", "processed"), "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	_, err := os.Stat(cfgPath)
	require.NoError(t, err)
}

func TestInitRefusesExistingConfig(t *testing.T) {
	dir, _ := initDir(t)
	_, err := run(t, "init", dir)
	assert.Error(t, err)
}

func TestImportAndList(t *testing.T) {
	dir, cfgPath := initDir(t)
	statementPath := writeStatement(t, dir, "march.csv", marchCSV)

	out, err := run(t, "--config", cfgPath, "import", statementPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 records (1 skipped)")

	out, err = run(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "march.csv")
	assert.Contains(t, out, "2")
}

func TestImportScan(t *testing.T) {
	dir, cfgPath := initDir(t)
	writeStatement(t, filepath.Join(dir, "import"), "march.csv", marchCSV)

	_, err := run(t, "--config", cfgPath, "import", "--scan")
	require.NoError(t, err)

	// The file moved to processed/.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "march.csv"))
	assert.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "march.csv")
}

func TestReportCategories(t *testing.T) {
	dir, cfgPath := initDir(t)
	statementPath := writeStatement(t, dir, "march.csv", marchCSV)
	_, err := run(t, "--config", cfgPath, "import", statementPath)
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "report", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "30.00")
	assert.Contains(t, out, "Restaurant")
	assert.Contains(t, out, "12.50")
}

func TestReportMonthlyWithRange(t *testing.T) {
	dir, cfgPath := initDir(t)
	statementPath := writeStatement(t, dir, "march.csv", marchCSV)
	_, err := run(t, "--config", cfgPath, "import", statementPath)
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "report", "monthly")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03")
	assert.Contains(t, out, "42.50")

	out, err = run(t, "--config", cfgPath, "report", "monthly", "--from", "2024-04-01")
	require.NoError(t, err)
	assert.NotContains(t, out, "2024-03")
}

func TestReportMerchantsTop(t *testing.T) {
	dir, cfgPath := initDir(t)
	statementPath := writeStatement(t, dir, "march.csv", marchCSV)
	_, err := run(t, "--config", cfgPath, "import", statementPath)
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "report", "merchants", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "SAFEWAY #")
	assert.NotContains(t, out, "STARBUCKS")
}

func TestExport(t *testing.T) {
	dir, cfgPath := initDir(t)
	statementPath := writeStatement(t, dir, "march.csv", marchCSV)
	_, err := run(t, "--config", cfgPath, "import", statementPath)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "export.csv")
	_, err = run(t, "--config", cfgPath, "export", "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Amount,Amount (2dp),Category,City,State", lines[0])
	assert.Contains(t, lines[1], `"STARBUCKS #1234"`)
}

func TestDelete(t *testing.T) {
	dir, cfgPath := initDir(t)
	statementPath := writeStatement(t, dir, "march.csv", marchCSV)
	out, err := run(t, "--config", cfgPath, "import", statementPath)
	require.NoError(t, err)

	// Pull the document ID out of the import output.
	idx := strings.LastIndex(out, "document ")
	require.GreaterOrEqual(t, idx, 0)
	docID := strings.TrimSpace(out[idx+len("document "):])

	_, err = run(t, "--config", cfgPath, "delete", docID)
	require.NoError(t, err)

	out, err = run(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents imported yet")
}

func TestDeleteUnknown(t *testing.T) {
	_, cfgPath := initDir(t)
	_, err := run(t, "--config", cfgPath, "delete", "nope")
	assert.Error(t, err)
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "list")
	assert.Error(t, err)
}
