package wavejson

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func TestCompletionCandidates(t *testing.T) {
	t.Parallel()

	t.Run("excludes-token", func(t *testing.T) {
		t.Parallel()
		got := CompletionCandidates("wave")
		tassert.NotContains(t, got, "wave")
		tassert.Len(t, got, len(Identifiers)-1)
	})

	t.Run("unknown-token-excludes-nothing", func(t *testing.T) {
		t.Parallel()
		got := CompletionCandidates("xyzzy")
		tassert.Len(t, got, len(Identifiers))
	})

	t.Run("sorted", func(t *testing.T) {
		t.Parallel()
		got := CompletionCandidates("")
		for i := 1; i < len(got); i++ {
			tassert.Less(t, got[i-1], got[i])
		}
	})
}

func TestGetCompletionItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		line    int
		column  int
		exclude string
	}{
		{
			name:    "mid-token",
			text:    `{ "signal": [`,
			line:    0,
			column:  5,
			exclude: "signal",
		},
		{
			name:    "end-of-token",
			text:    `{ "signal": [`,
			line:    0,
			column:  9,
			exclude: "signal",
		},
		{
			name:    "between-tokens",
			text:    `{ "signal": [`,
			line:    0,
			column:  12,
			exclude: "",
		},
		{
			name:    "second-line",
			text:    "{ \"signal\": [\n  { \"wave\": \"01.\" }",
			line:    1,
			column:  7,
			exclude: "wave",
		},
		{
			name:    "out-of-range-line",
			text:    `{}`,
			line:    4,
			column:  0,
			exclude: "",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			items := GetCompletionItems(tc.text, tc.line, tc.column)

			want := len(Identifiers)
			if _, ok := Identifiers[tc.exclude]; ok {
				want--
			}
			tassert.Len(t, items, want)

			for _, it := range items {
				tassert.NotEqual(t, tc.exclude, it.Label)
				cat, ok := Classify(it.Label)
				tassert.True(t, ok)
				tassert.Equal(t, cat, it.Kind)
			}
		})
	}
}

func TestTokenAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		line   int
		column int
		want   string
	}{
		{"start", "wave", 0, 0, "wave"},
		{"middle", "wave", 0, 2, "wave"},
		{"end", "wave", 0, 4, "wave"},
		{"past-end", "wave", 0, 5, ""},
		{"quoted", `"hscale": 2`, 0, 3, "hscale"},
		{"after-punctuation", `"hscale": 2`, 0, 9, ""},
		{"underscore", "clk_en x", 0, 4, "clk_en"},
		{"negative-column", "wave", 0, -1, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tassert.Equal(t, tc.want, tokenAt(tc.text, tc.line, tc.column))
		})
	}
}
