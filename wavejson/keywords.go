// Package wavejson holds the fixed lexical vocabulary of the WaveJSON
// timing-diagram dialect and completion over it. It does not parse WaveJSON;
// documents are consumed whole by the external renderer and anything outside
// these tables is left to generic JSON handling.
package wavejson

import "sort"

// Category classifies a WaveJSON token for highlighting.
type Category int

const (
	CategoryKeyword Category = iota
	CategorySignalAttribute
	CategoryConfigAttribute
	CategoryHeadFootAttribute
	CategoryBracket
	CategoryPunctuation
)

func (c Category) String() string {
	switch c {
	case CategoryKeyword:
		return "keyword"
	case CategorySignalAttribute:
		return "signal attribute"
	case CategoryConfigAttribute:
		return "config attribute"
	case CategoryHeadFootAttribute:
		return "head/foot attribute"
	case CategoryBracket:
		return "bracket"
	case CategoryPunctuation:
		return "punctuation"
	}
	return "unknown"
}

// Keywords are the section names of a WaveJSON document.
var Keywords = map[string]struct{}{
	"signal": {},
	"edge":   {},
	"config": {},
	"head":   {},
	"foot":   {},
	"assign": {},
}

// SignalAttributes may appear inside entries of the signal section.
var SignalAttributes = map[string]struct{}{
	"name":   {},
	"wave":   {},
	"data":   {},
	"period": {},
	"phase":  {},
	"node":   {},
}

// ConfigAttributes may appear inside the config section.
var ConfigAttributes = map[string]struct{}{
	"hscale": {},
	"skin":   {},
}

// HeadFootAttributes may appear inside the head and foot sections.
var HeadFootAttributes = map[string]struct{}{
	"tick":  {},
	"tock":  {},
	"text":  {},
	"every": {},
}

var Brackets = map[string]struct{}{
	"[": {},
	"]": {},
	"{": {},
	"}": {},
}

var Punctuation = map[string]struct{}{
	"'": {},
	",": {},
	":": {},
}

// Identifiers is every keyword and attribute name. Brackets and punctuation
// are not identifiers and are never offered as completions.
var Identifiers map[string]struct{}

var categories map[string]Category

func init() {
	Identifiers = make(map[string]struct{})
	categories = make(map[string]Category)
	for _, t := range []struct {
		vocab map[string]struct{}
		cat   Category
	}{
		{Keywords, CategoryKeyword},
		{SignalAttributes, CategorySignalAttribute},
		{ConfigAttributes, CategoryConfigAttribute},
		{HeadFootAttributes, CategoryHeadFootAttribute},
		{Brackets, CategoryBracket},
		{Punctuation, CategoryPunctuation},
	} {
		for k := range t.vocab {
			categories[k] = t.cat
			if t.cat != CategoryBracket && t.cat != CategoryPunctuation {
				Identifiers[k] = struct{}{}
			}
		}
	}
}

// Classify returns the highlight category of tok. Matching is on whole
// tokens only: "signals" is not "signal". ok is false for tokens outside all
// fixed vocabularies.
func Classify(tok string) (Category, bool) {
	c, ok := categories[tok]
	return c, ok
}

// SortedVocab returns the tokens of a vocabulary table in sorted order.
func SortedVocab(vocab map[string]struct{}) []string {
	out := make([]string, 0, len(vocab))
	for k := range vocab {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
