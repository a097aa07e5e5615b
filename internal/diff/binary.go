package diff

import "github.com/sergi/go-diff/diffmatchpatch"

// IsBinary reports whether content looks binary (contains a NUL byte in its
// first chunk), mirroring the heuristic the source uses before attempting a
// line diff.
func IsBinary(content []byte) bool {
	probe := content
	if len(probe) > 8000 {
		probe = probe[:8000]
	}
	for _, b := range probe {
		if b == 0 {
			return true
		}
	}
	return false
}

// ByteSummary renders a short byte-level diff description for the diff
// command, used when one or both sides are binary and a line diff would be
// meaningless. Backed by sergi/go-diff rather than a hand-rolled
// byte comparator.
func ByteSummary(old, new []byte) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(old), string(new), false)
	var added, removed int
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += len(d.Text)
		}
	}
	if added == 0 && removed == 0 {
		return "Binary files identical"
	}
	return "Binary files differ"
}
