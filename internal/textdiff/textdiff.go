// Package textdiff renders a line-oriented diff between two matrix texts.
package textdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Colors used for removed and added lines.
var (
	removed = color.New(color.FgRed)
	added   = color.New(color.FgGreen)
)

// Lines diffs want against got line by line and writes a unified-style body
// to w: " " for common lines, "-" for lines only in want, "+" for lines only
// in got. It reports whether the texts are equal.
func Lines(w io.Writer, want, got string) (bool, error) {
	if want == got {
		return true, nil
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(want, got)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		var (
			prefix string
			c      *color.Color
		)
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, c = "-", removed
		case diffpatch.DiffInsert:
			prefix, c = "+", added
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, ln := range splitKeepLast(d.Text) {
			var err error
			if c != nil {
				_, err = c.Fprintln(w, prefix+ln)
			} else {
				_, err = io.WriteString(w, prefix+ln+"\n")
			}
			if err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

// splitKeepLast splits s into lines without the final empty element a
// trailing newline produces.
func splitKeepLast(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
