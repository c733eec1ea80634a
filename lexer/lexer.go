// Package lexer tokenises Web IDL source into a flat, lossless sequence of
// lexemes. It never reorders or drops bytes: concatenating every lexeme's
// Text reproduces the input exactly.
package lexer

import (
	"encoding/json"
	"regexp"
)

// Kind tags the coarse lexeme category. Whitespace and comments are
// retained, not filtered, so a parser can attach surrounding trivia to AST
// nodes and compute line numbers.
type Kind int

const (
	Float Kind = iota
	Integer
	Identifier
	String
	Whitespace
	Comment
	Other
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Integer:
		return "integer"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Whitespace:
		return "whitespace"
	case Comment:
		return "comment"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind by name rather than its underlying int.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Lexeme is a single classified substring of the source.
type Lexeme struct {
	Kind Kind
	Text string
}

// Error reports that the lexer could not classify the character at the
// cursor; it names the offending rune's offset.
type Error struct {
	Offset int
	Rune   rune
}

func (e *Error) Error() string {
	return "token stream not progressing"
}

var (
	floatRe      = regexp.MustCompile(`^-?(?:[0-9]+\.[0-9]*(?:[eE][+-]?[0-9]+)?|\.[0-9]+(?:[eE][+-]?[0-9]+)?|[0-9]+[eE][+-]?[0-9]+)`)
	integerRe    = regexp.MustCompile(`^-?(?:0[Xx][0-9A-Fa-f]+|0[0-7]*|[1-9][0-9]*)`)
	identifierRe = regexp.MustCompile(`^[A-Za-z_][0-9A-Za-z_-]*`)
	stringRe     = regexp.MustCompile(`^"[^"]*"`)
	wsRe         = regexp.MustCompile(`^[\t\n\r ]+`)
	lineCommentRe  = regexp.MustCompile(`^//[^\n]*`)
	blockCommentRe = regexp.MustCompile(`^/\*[\s\S]*?\*/`)
)

func isDigit(r byte) bool { return r >= '0' && r <= '9' }

func isAlpha(r byte) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isSpace(r byte) bool {
	return r == '\t' || r == '\n' || r == '\r' || r == ' '
}

// matchComment matches a single `//…` or `/*…*/` comment at the start of s,
// returning "" if neither pattern matches.
func matchComment(s string) string {
	if m := blockCommentRe.FindString(s); m != "" {
		return m
	}
	return lineCommentRe.FindString(s)
}

// matchCommentRun matches one or more consecutive comments, possibly
// separated by whitespace, starting at the head of s. Trailing whitespace
// that is not itself followed by another comment is left unconsumed.
func matchCommentRun(s string) string {
	pos := 0
	matched := false
	for {
		m := matchComment(s[pos:])
		if m == "" {
			break
		}
		pos += len(m)
		matched = true

		save := pos
		if ws := wsRe.FindString(s[pos:]); ws != "" {
			pos += len(ws)
		}
		if matchComment(s[pos:]) == "" {
			pos = save
			break
		}
	}
	if !matched {
		return ""
	}
	return s[:pos]
}

// Tokenize scans source into an ordered sequence of lexemes. It is total
// and lossless: joining every returned lexeme's Text reproduces source.
func Tokenize(source string) ([]Lexeme, error) {
	var out []Lexeme
	pos := 0
	for pos < len(source) {
		rest := source[pos:]
		c := rest[0]

		var text string
		var kind Kind

		switch {
		case c == '-' || isDigit(c) || c == '.':
			if m := floatRe.FindString(rest); m != "" {
				text, kind = m, Float
			} else if m := integerRe.FindString(rest); m != "" {
				text, kind = m, Integer
			} else {
				text, kind = rest[:1], Other
			}

		case isAlpha(c):
			text, kind = identifierRe.FindString(rest), Identifier

		case c == '"':
			if m := stringRe.FindString(rest); m != "" {
				text, kind = m, String
			} else {
				text, kind = rest[:1], Other
			}

		case isSpace(c):
			text, kind = wsRe.FindString(rest), Whitespace

		case c == '/':
			if m := matchCommentRun(rest); m != "" {
				text, kind = m, Comment
			} else {
				text, kind = rest[:1], Other
			}

		default:
			text, kind = rest[:1], Other
		}

		if text == "" {
			return out, &Error{Offset: pos, Rune: rune(c)}
		}

		out = append(out, Lexeme{Kind: kind, Text: text})
		pos += len(text)
	}
	return out, nil
}
