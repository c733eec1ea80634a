package parser

import (
	"github.com/go-webidl/webidl/ast"
	"github.com/go-webidl/webidl/lexer"
)

// consumeArgumentList parses the parenthesized, possibly-empty comma
// list shared by operations, callbacks, and extended-attribute calls.
func (p *parser) consumeArgumentList() []*ast.Argument {
	p.expectOther("(", "argument list")
	if p.tryOther(")") {
		return []*ast.Argument{}
	}
	args := []*ast.Argument{}
	args = append(args, p.consumeArgument())
	for p.tryOther(",") {
		if p.isOther(")") {
			p.fail("Trailing comma in argument list")
		}
		args = append(args, p.consumeArgument())
	}
	p.expectOther(")", "argument list")
	return args
}

// consumeArgument parses a single optional-or-required, possibly-variadic
// argument: `ExtAttrs? "optional"? Type "..."? Name Default?`.
func (p *parser) consumeArgument() *ast.Argument {
	attrs := p.tryConsumeExtAttrs()
	arg := &ast.Argument{ExtAttrs: attrs}
	if p.tryKeyword("optional") {
		arg.Optional = true
		arg.IDLType = p.consumeTypeWithExtAttrs("argument-type")
		arg.Name = p.consumeArgumentName()
		if d, ok := p.tryConsumeDefault(); ok {
			arg.Default = d
		}
		return arg
	}
	arg.IDLType = p.consumeTypeWithExtAttrs("argument-type")
	if p.tryVariadic() {
		arg.Variadic = true
	}
	arg.Name = p.consumeArgumentName()
	return arg
}

// tryVariadic detects the `...` ellipsis: three consecutive Other lexemes
// each carrying the text ".", matching the spec's 3-token-lookahead rule.
func (p *parser) tryVariadic() bool {
	for i := 1; i <= 3; i++ {
		l, ok := p.s.peekN(i)
		if !ok || l.Kind != lexer.Other || l.Text != "." {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		p.s.advance()
	}
	return true
}

// consumeArgumentName allows argument names to shadow a handful of
// single-word keywords that would otherwise be ambiguous (e.g. "attribute"),
// in addition to plain identifiers.
func (p *parser) consumeArgumentName() string {
	for _, kw := range []string{
		"attribute", "callback", "const", "deleter", "dictionary", "enum",
		"getter", "includes", "inherit", "interface", "iterable", "maplike",
		"namespace", "partial", "required", "setlike", "setter", "static",
		"stringifier", "typedef", "unrestricted",
	} {
		if p.tryKeyword(kw) {
			return kw
		}
	}
	return p.consumeIdentifier()
}

// tryConsumeDefault parses an optional `= VALUE` default, shared by
// arguments, dictionary fields, and const initializers.
func (p *parser) tryConsumeDefault() (*ast.Default, bool) {
	if !p.tryOther("=") {
		return nil, false
	}
	return p.consumeDefaultValue(), true
}

// consumeDefaultValue parses the VALUE grammar: booleans, null, numeric
// literals (including signed Infinity and NaN), strings, and `[]` (the
// only accepted sequence default, an empty list).
func (p *parser) consumeDefaultValue() *ast.Default {
	if p.tryKeyword("true") {
		return &ast.Default{Kind: ast.DefaultBoolean, Value: "true"}
	}
	if p.tryKeyword("false") {
		return &ast.Default{Kind: ast.DefaultBoolean, Value: "false"}
	}
	if p.tryKeyword("null") {
		return &ast.Default{Kind: ast.DefaultNull}
	}
	if p.tryKeyword("NaN") {
		return &ast.Default{Kind: ast.DefaultNaN}
	}
	if p.tryKeyword("Infinity") {
		return &ast.Default{Kind: ast.DefaultInfinity}
	}
	if p.isOther("-") && p.isNextKeyword("Infinity") {
		p.s.advance()
		p.s.advance()
		return &ast.Default{Kind: ast.DefaultInfinity, Negative: true}
	}
	if l, ok := p.consume(lexer.Float); ok {
		return &ast.Default{Kind: ast.DefaultNumber, Value: l.Text}
	}
	if l, ok := p.consume(lexer.Integer); ok {
		return &ast.Default{Kind: ast.DefaultNumber, Value: l.Text}
	}
	if p.isKind(lexer.String) {
		return &ast.Default{Kind: ast.DefaultString, Value: p.consumeStringLit("default value")}
	}
	if p.isOther(`"`) {
		p.fail("Unterminated string in default value")
	}
	if p.tryOther("[") {
		p.expectOther("]", "default value")
		return &ast.Default{Kind: ast.DefaultSequence}
	}
	p.fail("No value for default")
	return nil
}
