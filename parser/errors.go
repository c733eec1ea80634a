package parser

import (
	"fmt"

	"github.com/go-webidl/webidl/lexer"
)

// ParseError is a fatal, first-error-wins parse failure. It carries a
// snapshot of up to the next five unconsumed lexemes so a caller can show
// the reader what followed the point of failure.
type ParseError struct {
	Message string
	Line    int
	Input   string
	Tokens  []lexer.Lexeme
}

func (e *ParseError) Error() string { return e.Message }

// bailout is the internal panic payload used to unwind the recursive
// descent on the first error, in the manner of go/parser's own bailout
// type. It never escapes Parse.
type bailout struct {
	err *ParseError
}

// fail raises a fatal parse error, prefixed with the definition currently
// being parsed (if any), and unwinds to Parse.
func (p *parser) fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if cur := p.current(); cur != "" {
		msg = fmt.Sprintf("Got an error during or right after parsing `%s`: %s", cur, msg)
	}
	panic(bailout{p.newParseError(msg)})
}

func (p *parser) newParseError(msg string) *ParseError {
	toks := p.s.upcoming(5)
	input := ""
	for _, t := range toks {
		input += t.Text
	}
	return &ParseError{Message: msg, Line: p.s.line, Input: input, Tokens: toks}
}
