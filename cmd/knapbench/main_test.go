package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knaplab/knapsack"
)

// execute runs the CLI with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Recursion            exact", lines[0])
	assert.Equal(t, "Greedy               approximate", lines[4])
	assert.Equal(t, "FPTAS (ε = 0.100)    approximate", lines[7])
}

func TestList_EpsilonFromEnv(t *testing.T) {
	t.Setenv("KNAPBENCH_EPSILON", "0.25")
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "FPTAS (ε = 0.250)")
}

func TestList_EpsilonFromSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epsilon: 0.05\n"), 0o600))

	out, err := execute(t, "--settings", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "FPTAS (ε = 0.050)")

	out, err = execute(t, "--settings", path, "--epsilon", "0.5", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "FPTAS (ε = 0.500)", "flags override the settings file")
}

func TestSolve_All(t *testing.T) {
	out, err := execute(t, "solve", "--capacity", "50", "--item", "10:60", "--item", "20:100", "--item", "30:120")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	for _, line := range lines {
		if strings.HasPrefix(line, knapsack.NameGreedy) {
			assert.True(t, strings.HasSuffix(line, " 160"), line) // takes 10 and 20, then 30 no longer fits
			continue
		}
		assert.True(t, strings.HasSuffix(line, " 220"), line)
	}
}

func TestSolve_OneAlgorithm(t *testing.T) {
	out, err := execute(t, "solve", "--capacity", "10",
		"--item", "6:30", "--item", "5:20", "--item", "5:20", "--algorithm", knapsack.NameGreedy)
	require.NoError(t, err)
	assert.Equal(t, "Greedy               30\n", out)
}

func TestSolve_ReportsSolverErrors(t *testing.T) {
	out, err := execute(t, "solve", "--capacity", "18446744073709551615", "--item", "1:1", "--algorithm", "Dynamic")
	require.NoError(t, err)
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, knapsack.ErrCapacityTooLarge.Error())
}

func TestSolve_BadInput(t *testing.T) {
	_, err := execute(t, "solve", "--capacity", "5", "--item", "3-4")
	assert.ErrorContains(t, err, "want weight:value")

	_, err = execute(t, "solve", "--capacity", "5", "--item", "3:x")
	assert.Error(t, err)

	_, err = execute(t, "solve", "--capacity", "5", "--algorithm", "Oracle")
	assert.ErrorIs(t, err, knapsack.ErrAlgorithmNotFound)

	_, err = execute(t, "--epsilon", "2", "list")
	assert.ErrorIs(t, err, knapsack.ErrInvalidEpsilon)

	_, err = execute(t, "--log-level", "loud", "list")
	assert.Error(t, err)
}

const experimentsYAML = `
- name: tiny
  num_items: 8
  capacity: 30
  weights_range: [1, 10]
  costs_range: [1, 20]
  generations: 3
  algorithms: ["Dynamic", "Greedy", "Branch and Bound"]
  seed: 3
`

func writeExperiments(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiments.yaml")
	require.NoError(t, os.WriteFile(path, []byte(experimentsYAML), 0o600))

	return path
}

func TestRun_Markdown(t *testing.T) {
	out, err := execute(t, "run", "--config", writeExperiments(t), "--workers", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "## tiny")
	assert.Contains(t, out, "| Dynamic | yes | 100.0% | 0 |")
	assert.Contains(t, out, "| Branch and Bound | yes | 100.0% | 0 |")
	assert.Contains(t, out, "| Greedy |  |")
}

func TestRun_JSONToFileWithStore(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.jsonl")
	dbPath := filepath.Join(dir, "results.sqlite")

	_, err := execute(t, "run", "--config", writeExperiments(t), "--format", "json", "--out", outPath, "--db", dbPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4) // 3 measurements + 1 summary
	assert.Contains(t, lines[3], `"experiment":"tiny"`)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run")
	assert.ErrorContains(t, err, "no experiment file")

	_, err = execute(t, "run", "--config", writeExperiments(t), "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
