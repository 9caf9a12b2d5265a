package experiment

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown renders aggs as a Markdown table, preceded by a "## title"
// heading when title is not empty. Times are in milliseconds, memory in KiB.
func WriteMarkdown(w io.Writer, title string, aggs []Aggregate) error {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "## %s\n\n", title)
	}
	sb.WriteString("| Algorithm | Exact | Success Rate | Errors | Execution Time (ms) mean/median/p95 | Memory (KiB) mean/median/p95 |\n")
	sb.WriteString("|-----------|:-----:|-------------:|-------:|------------------------------------:|-----------------------------:|\n")
	for _, a := range aggs {
		exact := ""
		if a.Exact {
			exact = "yes"
		}
		fmt.Fprintf(&sb, "| %s | %s | %.1f%% | %d | %.3f/%.3f/%.3f | %.1f/%.1f/%.1f |\n",
			a.Algorithm,
			exact,
			a.CorrectRate*100,
			a.Errors,
			a.Time.Mean/1e6, a.Time.Median/1e6, a.Time.P95/1e6,
			a.Memory.Mean/1024, a.Memory.Median/1024, a.Memory.P95/1024,
		)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteJSON writes v as a single JSON document followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// WriteJSONLines writes one JSON document per element of items.
func WriteJSONLines[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for i := range items {
		if err := enc.Encode(items[i]); err != nil {
			return fmt.Errorf("experiment: encode item %d: %w", i, err)
		}
	}

	return nil
}
