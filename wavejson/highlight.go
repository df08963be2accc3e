package wavejson

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Lexer tokenises WaveJSON sources for highlighting. It is built from the
// vocabulary tables in keywords.go so the highlighted view and Classify
// always agree.
var Lexer = chroma.Coalesce(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "WaveJSON",
		Aliases:   []string{"wavejson", "wjson"},
		Filenames: []string{"*.wjson"},
		MimeTypes: []string{"application/json"},
	},
	wavejsonRules,
))

func wavejsonRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `\s+`, Type: chroma.TextWhitespace, Mutator: nil},
			{Pattern: `//[^\n]*`, Type: chroma.CommentSingle, Mutator: nil},
			// WaveJSON keys are usually quoted, so the vocabulary is matched
			// both bare and with its quotes before the generic string rules.
			{Pattern: chroma.Words(`"`, `"`, SortedVocab(Keywords)...), Type: chroma.Keyword, Mutator: nil},
			{Pattern: chroma.Words(`"`, `"`, SortedVocab(SignalAttributes)...), Type: chroma.NameAttribute, Mutator: nil},
			{Pattern: chroma.Words(`"`, `"`, SortedVocab(ConfigAttributes)...), Type: chroma.NameBuiltin, Mutator: nil},
			{Pattern: chroma.Words(`"`, `"`, SortedVocab(HeadFootAttributes)...), Type: chroma.NameLabel, Mutator: nil},
			{Pattern: chroma.Words(`\b`, `\b`, SortedVocab(Keywords)...), Type: chroma.Keyword, Mutator: nil},
			{Pattern: chroma.Words(`\b`, `\b`, SortedVocab(SignalAttributes)...), Type: chroma.NameAttribute, Mutator: nil},
			{Pattern: chroma.Words(`\b`, `\b`, SortedVocab(ConfigAttributes)...), Type: chroma.NameBuiltin, Mutator: nil},
			{Pattern: chroma.Words(`\b`, `\b`, SortedVocab(HeadFootAttributes)...), Type: chroma.NameLabel, Mutator: nil},
			{Pattern: `"(\\.|[^"\\])*"`, Type: chroma.LiteralString, Mutator: nil},
			{Pattern: `'(\\.|[^'\\])*'`, Type: chroma.LiteralString, Mutator: nil},
			{Pattern: `-?\d+(\.\d+)?`, Type: chroma.LiteralNumber, Mutator: nil},
			{Pattern: `[\[\]{}]`, Type: chroma.Punctuation, Mutator: nil},
			{Pattern: `[,:.]`, Type: chroma.Punctuation, Mutator: nil},
			{Pattern: `[A-Za-z_][A-Za-z0-9_]*`, Type: chroma.NameOther, Mutator: nil},
			{Pattern: `.`, Type: chroma.Text, Mutator: nil},
		},
	}
}

// HighlightHTML writes a standalone highlighted HTML page for source.
func HighlightHTML(w io.Writer, source string) error {
	it, err := Lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}
	f := html.New(html.Standalone(true), html.TabWidth(2))
	style := styles.Get("friendly")
	if style == nil {
		style = styles.Fallback
	}
	return f.Format(w, style, it)
}
