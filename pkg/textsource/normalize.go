package textsource

import "strings"

// Policy controls how raw text is normalized before analysis.
type Policy struct {
	KeepCase     bool
	KeepNewlines bool
}

// Normalize lowercases text and removes '\n' unless the policy says otherwise.
// Every other character, '\r' included, is kept.
func Normalize(text string, p Policy) []rune {
	if !p.KeepCase {
		text = strings.ToLower(text)
	}
	if !p.KeepNewlines {
		text = strings.ReplaceAll(text, "\n", "")
	}
	return []rune(text)
}
