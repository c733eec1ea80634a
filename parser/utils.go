package parser

import (
	"strings"

	"github.com/go-webidl/webidl/lexer"
)

// unquote strips the surrounding double quotes a lexer.String lexeme's text
// always carries.
func unquote(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}

func isRecordKeyType(name string) bool {
	switch name {
	case "DOMString", "USVString", "ByteString":
		return true
	}
	return false
}

// tryOther consumes the next lexeme if it is an Other-kind lexeme with the
// given text (used for all single-character punctuation: `{}()[]<>;,?:=`).
func (p *parser) tryOther(text string) bool {
	_, ok := p.consumeText(lexer.Other, text)
	return ok
}

// expectOther consumes the given punctuation or fails, naming context in
// the error.
func (p *parser) expectOther(text, context string) {
	if !p.tryOther(text) {
		p.fail("No %s for %s", text, context)
	}
}

func (p *parser) expectSemicolon(context string) {
	if !p.tryOther(";") {
		p.fail("Missing semicolon after %s", context)
	}
}

// consumeStringLit consumes a lexer.String lexeme, or fails with a
// specific message when the lexer instead handed back a lone `"` (an
// unterminated string, classified as an Other lexeme since the lexer
// itself never raises an error for it).
func (p *parser) consumeStringLit(context string) string {
	l, ok := p.consume(lexer.String)
	if !ok {
		if p.isOther(`"`) {
			p.fail("Unterminated string in %s", context)
		}
		p.fail("Expected a string in %s", context)
	}
	return unquote(l.Text)
}
