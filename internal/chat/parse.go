package chat

import "strings"

// Command grammars are parsed by whitespace tokenization plus anchor-keyword
// scanning: split the input on whitespace, locate keywords like "to", "from"
// or "birthday" by index, and slice the argument spans between them. Optional
// clauses are detected by keyword presence, never by fixed position.

// tokenize splits raw input on whitespace.
func tokenize(raw string) []string {
	return strings.Fields(raw)
}

// indexOf returns the index of the first token equal to word
// (case-insensitive), or -1.
func indexOf(toks []string, word string) int {
	return indexOfFrom(toks, word, 0)
}

// indexOfFrom returns the index of the first token equal to word
// (case-insensitive) at or after start, or -1.
func indexOfFrom(toks []string, word string, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(toks); i++ {
		if strings.EqualFold(toks[i], word) {
			return i
		}
	}
	return -1
}

// tokenAfter returns the token immediately following index i, or "".
func tokenAfter(toks []string, i int) string {
	if i < 0 || i+1 >= len(toks) {
		return ""
	}
	return toks[i+1]
}
