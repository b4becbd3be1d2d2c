// Package diff renders line diffs between an existing generated template and
// a fresh rendering.
package diff

import (
	"math"
	"strings"

	"github.com/aryann/difflib"
	"github.com/mgutz/ansi"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
)

// Options controls rendering. A negative Context prints every line.
type Options struct {
	Context int
	Color   bool
}

// Text returns the diff of current against desired, one record per line
// prefixed by "+ ", "- " or two spaces. Runs of common lines further than
// Context lines from a change collapse into "...".
func Text(current, desired string, opts Options) string {
	records := difflib.Diff(strings.Split(current, "\n"), strings.Split(desired, "\n"))

	var b strings.Builder
	if opts.Context < 0 {
		for _, r := range records {
			b.WriteString(sprintRecord(r, opts.Color))
		}
		return b.String()
	}

	distances := distancesToChange(records)
	omitting := false
	for i, r := range records {
		if distances[i] > opts.Context {
			if !omitting {
				b.WriteString("...\n")
				omitting = true
			}
			continue
		}
		omitting = false
		b.WriteString(sprintRecord(r, opts.Color))
	}
	return b.String()
}

// Changed reports whether any line differs.
func Changed(current, desired string) bool {
	for _, r := range difflib.Diff(strings.Split(current, "\n"), strings.Split(desired, "\n")) {
		if r.Delta != difflib.Common {
			return true
		}
	}
	return false
}

// distancesToChange computes, for every record, the distance to the nearest
// added or removed line.
func distancesToChange(records []difflib.DiffRecord) []int {
	distances := make([]int, len(records))

	change := -1
	for i, r := range records {
		if r.Delta != difflib.Common {
			change = i
		}
		distances[i] = math.MaxInt32
		if change != -1 {
			distances[i] = i - change
		}
	}

	change = -1
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Delta != difflib.Common {
			change = i
		}
		if change != -1 && change-i < distances[i] {
			distances[i] = change - i
		}
	}

	return distances
}

func sprintRecord(r difflib.DiffRecord, color bool) string {
	var line, style string
	switch r.Delta {
	case difflib.RightOnly:
		line, style = "+ "+r.Payload, logger.StyleAdded
	case difflib.LeftOnly:
		line, style = "- "+r.Payload, logger.StyleRemoved
	default:
		line = "  " + r.Payload
	}
	if color && style != "" {
		line = ansi.Color(line, style)
	}
	return line + "\n"
}
