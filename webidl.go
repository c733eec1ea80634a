// Package webidl parses Web IDL source into an abstract syntax tree. It is
// a thin wrapper over package lexer and package parser: lex, then parse,
// and return the first error either stage produces.
package webidl

import (
	"github.com/go-webidl/webidl/ast"
	"github.com/go-webidl/webidl/lexer"
	"github.com/go-webidl/webidl/parser"
)

// ParseError is the fatal, first-error-wins failure a Parse call returns.
// It is an alias of parser.ParseError so callers never need to import the
// parser package directly to type-assert on it.
type ParseError = parser.ParseError

// Option configures a Parse call.
type Option func(*parser.Options)

// WithTrivia enables whitespace/comment trivia capture on interface and
// mixin containers and member leading runs, for callers that need
// round-trip formatting.
func WithTrivia() Option {
	return func(o *parser.Options) { o.Trivia = true }
}

// WithNestedTypedefs permits `typedef` inside interface bodies in addition
// to the top level.
func WithNestedTypedefs() Option {
	return func(o *parser.Options) { o.AllowNestedTypedefs = true }
}

// WithConcatTypeNames is a documented no-op, kept for forward compatibility
// with generators that may eventually want component words instead of a
// single space-joined multi-word primitive type name.
func WithConcatTypeNames() Option {
	return func(o *parser.Options) { o.ConcatTypeNames = true }
}

// Parse tokenises and parses source, returning the resulting AST or the
// first error encountered. Lexing cannot fail in practice (package lexer is
// total over any byte sequence), but its error is still surfaced rather
// than ignored.
func Parse(source string, opts ...Option) (*ast.File, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	var o parser.Options
	for _, opt := range opts {
		opt(&o)
	}
	return parser.Parse(toks, o)
}

// Tokenize exposes the raw lexeme stream, for callers that only need the
// lexer stage (e.g. the CLI's `tokenize` subcommand).
func Tokenize(source string) ([]lexer.Lexeme, error) {
	return lexer.Tokenize(source)
}
