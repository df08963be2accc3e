package wavejson

import "strings"

type CompletionItem struct {
	Label string
	Kind  Category
}

// CompletionCandidates returns every identifier in the vocabulary except
// excluding, sorted.
func CompletionCandidates(excluding string) []string {
	all := SortedVocab(Identifiers)
	out := all[:0]
	for _, k := range all {
		if k != excluding {
			out = append(out, k)
		}
	}
	return out
}

// GetCompletionItems returns the completion items at line:column of text,
// excluding the token the cursor is on.
func GetCompletionItems(text string, line, column int) []CompletionItem {
	tok := tokenAt(text, line, column)
	candidates := CompletionCandidates(tok)
	items := make([]CompletionItem, 0, len(candidates))
	for _, c := range candidates {
		cat, _ := Classify(c)
		items = append(items, CompletionItem{Label: c, Kind: cat})
	}
	return items
}

// tokenAt extracts the symbol the cursor at line:column touches. Symbol
// boundaries are non-word characters, so the cursor sitting right after a
// token still counts as being on it.
func tokenAt(text string, line, column int) string {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	l := lines[line]
	if column < 0 || column > len(l) {
		return ""
	}

	start := column
	for start > 0 && isWordChar(l[start-1]) {
		start--
	}
	end := column
	for end < len(l) && isWordChar(l[end]) {
		end++
	}
	return l[start:end]
}

func isWordChar(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
