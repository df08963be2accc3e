package wavejson

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tok  string
		cat  Category
		ok   bool
	}{
		{"signal", CategoryKeyword, true},
		{"edge", CategoryKeyword, true},
		{"config", CategoryKeyword, true},
		{"head", CategoryKeyword, true},
		{"foot", CategoryKeyword, true},
		{"assign", CategoryKeyword, true},
		{"wave", CategorySignalAttribute, true},
		{"node", CategorySignalAttribute, true},
		{"hscale", CategoryConfigAttribute, true},
		{"skin", CategoryConfigAttribute, true},
		{"tock", CategoryHeadFootAttribute, true},
		{"every", CategoryHeadFootAttribute, true},
		{"[", CategoryBracket, true},
		{"}", CategoryBracket, true},
		{",", CategoryPunctuation, true},
		{":", CategoryPunctuation, true},

		// Whole tokens only.
		{"signals", 0, false},
		{"signa", 0, false},
		{"Signal", 0, false},
		{"waveform", 0, false},
		{"", 0, false},
		{"{}", 0, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.tok, func(t *testing.T) {
			t.Parallel()
			cat, ok := Classify(tc.tok)
			tassert.Equal(t, tc.ok, ok)
			if tc.ok {
				tassert.Equal(t, tc.cat, cat)
			}
		})
	}
}

// Every token in every vocabulary table classifies back into its own table's
// category, and no token appears in two tables.
func TestVocabularyTotal(t *testing.T) {
	t.Parallel()

	tables := []struct {
		vocab map[string]struct{}
		cat   Category
	}{
		{Keywords, CategoryKeyword},
		{SignalAttributes, CategorySignalAttribute},
		{ConfigAttributes, CategoryConfigAttribute},
		{HeadFootAttributes, CategoryHeadFootAttribute},
		{Brackets, CategoryBracket},
		{Punctuation, CategoryPunctuation},
	}

	seen := make(map[string]Category)
	for _, tbl := range tables {
		for tok := range tbl.vocab {
			cat, ok := Classify(tok)
			tassert.True(t, ok, "vocabulary token %q not classified", tok)
			tassert.Equal(t, tbl.cat, cat, "token %q", tok)

			prev, dup := seen[tok]
			tassert.False(t, dup, "token %q in both %v and %v", tok, prev, tbl.cat)
			seen[tok] = cat
		}
	}
}

func TestIdentifiersExcludeStructuralTokens(t *testing.T) {
	t.Parallel()

	for tok := range Brackets {
		_, ok := Identifiers[tok]
		tassert.False(t, ok, "bracket %q offered as identifier", tok)
	}
	for tok := range Punctuation {
		_, ok := Identifiers[tok]
		tassert.False(t, ok, "punctuation %q offered as identifier", tok)
	}
	tassert.Equal(t,
		len(Keywords)+len(SignalAttributes)+len(ConfigAttributes)+len(HeadFootAttributes),
		len(Identifiers),
	)
}

func TestSortedVocab(t *testing.T) {
	t.Parallel()

	got := SortedVocab(Keywords)
	tassert.Equal(t, []string{"assign", "config", "edge", "foot", "head", "signal"}, got)
}
