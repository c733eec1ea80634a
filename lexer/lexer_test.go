package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		``,
		`interface Foo { };`,
		`interface Foo : Bar { readonly attribute DOMString baz; };`,
		"// line comment\ninterface Foo {};",
		"/* block\ncomment */ interface Foo {};",
		`dictionary D { required long x; DOMString y = "hi"; };`,
		`typedef sequence<DOMString> Names;`,
		`const long x = -1;`,
		`const double y = 0.5e10;`,
		`_interface`,
	}
	for _, in := range inputs {
		toks, err := Tokenize(in)
		require.NoError(t, err, in)
		var b strings.Builder
		for _, tok := range toks {
			b.WriteString(tok.Text)
		}
		require.Equal(t, in, b.String(), "lossless roundtrip for %q", in)
	}
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Lexeme
	}{
		{"identifier", "interface", []Lexeme{{Identifier, "interface"}}},
		{"underscore escape", "_interface", []Lexeme{{Identifier, "_interface"}}},
		{"string", `"val"`, []Lexeme{{String, `"val"`}}},
		{"integer", "123", []Lexeme{{Integer, "123"}}},
		{"negative integer", "-123", []Lexeme{{Integer, "-123"}}},
		{"hex integer", "0x1F", []Lexeme{{Integer, "0x1F"}}},
		{"octal integer", "017", []Lexeme{{Integer, "017"}}},
		{"float", "0.5", []Lexeme{{Float, "0.5"}}},
		{"float exponent", "1e10", []Lexeme{{Float, "1e10"}}},
		{"negative float", "-0.5", []Lexeme{{Float, "-0.5"}}},
		{"whitespace run", "   ", []Lexeme{{Whitespace, "   "}}},
		{"line comment", "// hi", []Lexeme{{Comment, "// hi"}}},
		{"block comment", "/* hi */", []Lexeme{{Comment, "/* hi */"}}},
		{"other char", "{", []Lexeme{{Other, "{"}}},
		{
			"consecutive comments merge",
			"// a\n// b",
			[]Lexeme{{Comment, "// a\n// b"}},
		},
		{
			"trailing whitespace not absorbed",
			"// a\n  ",
			[]Lexeme{{Comment, "// a"}, {Whitespace, "\n  "}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// Every byte the lexer can see falls into one of the classified kinds or
// the single-character "other" catch-all, so Tokenize is total: it never
// returns the "token stream not progressing" error for any input.
func TestTokenizeTotal(t *testing.T) {
	_, err := Tokenize("\x00\x01#$%^&*")
	require.NoError(t, err)
}
