// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package moment

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/moment-search/pkg/types"
)

// FormatTable writes moments as a human-readable table to w.
func FormatTable(moments []types.Moment, w io.Writer) {
	if len(moments) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-7s  %-10s  %s\n",
		"Rank", "Title", "Start", "Confidence", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, m := range moments {
		fmt.Fprintf(w, "%-4d  %-50s  %-7s  %-10s  %s\n",
			m.Rank, truncate(m.VideoTitle, 50), m.DisplayTime, m.Confidence, m.EmbedURL)
		if m.Explanation != "" {
			fmt.Fprintf(w, "      why: %s\n", m.Explanation)
		}
	}

	fmt.Fprintf(w, "\n%d results\n", len(moments))
}

// FormatJSON writes moments as indented JSON to w.
func FormatJSON(moments []types.Moment, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(moments)
}

// FormatYAML writes moments as a YAML sequence to w.
func FormatYAML(moments []types.Moment, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(moments); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
