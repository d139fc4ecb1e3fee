package model

import "github.com/sahilm/fuzzy"

// Closest returns the candidate most similar to name, for did-you-mean
// suggestions. Returns the empty string when nothing is close enough.
func Closest(name string, candidates []string) string {
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}
	return candidates[matches[0].Index]
}
