package experiment_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knaplab/experiment"
)

func TestWriteMarkdown(t *testing.T) {
	aggs := []experiment.Aggregate{
		{
			Algorithm: "Dynamic", Exact: true, Runs: 4, Correct: 4, CorrectRate: 1,
			Time:   experiment.Stats{Mean: 1.5e6, Median: 1e6, P95: 3e6},
			Memory: experiment.Stats{Mean: 2048, Median: 1024, P95: 4096},
		},
		{Algorithm: "Greedy", Runs: 4, Correct: 3, CorrectRate: 0.75, Errors: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteMarkdown(&buf, "small", aggs))

	want := "## small\n\n" +
		"| Algorithm | Exact | Success Rate | Errors | Execution Time (ms) mean/median/p95 | Memory (KiB) mean/median/p95 |\n" +
		"|-----------|:-----:|-------------:|-------:|------------------------------------:|-----------------------------:|\n" +
		"| Dynamic | yes | 100.0% | 0 | 1.500/1.000/3.000 | 2.0/1.0/4.0 |\n" +
		"| Greedy |  | 75.0% | 1 | 0.000/0.000/0.000 | 0.0/0.0/0.0 |\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, experiment.WriteMarkdown(&buf, "", nil))
	assert.True(t, strings.HasPrefix(buf.String(), "| Algorithm |"))
}

func TestWriteJSONLines(t *testing.T) {
	ms := []experiment.Measurement{
		{Index: 0, NumItems: 2, Capacity: 5, Metrics: map[string]experiment.Metric{"Dynamic": ok(7, 10, 0)}},
		{Index: 1, NumItems: 3, Capacity: 6, Metrics: map[string]experiment.Metric{"Dynamic": {Err: "x"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteJSONLines(&buf, ms))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var decoded experiment.Measurement
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &decoded))
	assert.Equal(t, 1, decoded.Index)
	assert.Nil(t, decoded.Metrics["Dynamic"].Result)
	assert.Equal(t, "x", decoded.Metrics["Dynamic"].Err)
	assert.Contains(t, lines[0], `"result":7`)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, experiment.WriteJSON(&buf, experiment.Aggregate{Algorithm: "Greedy", CorrectRate: 0.5}))
	assert.Contains(t, buf.String(), `"algorithm":"Greedy"`)
	assert.Contains(t, buf.String(), `"correct_rate":0.5`)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
