package parser

import (
	"github.com/go-webidl/webidl/ast"
	"github.com/go-webidl/webidl/lexer"
)

// tryConsumeExtAttrs parses `[ EA ( , EA )* ]`, or returns nil if no `[`
// follows.
func (p *parser) tryConsumeExtAttrs() []*ast.ExtendedAttribute {
	if !p.tryOther("[") {
		return nil
	}
	var out []*ast.ExtendedAttribute
	out = append(out, p.consumeExtAttr())
	for p.tryOther(",") {
		if p.isOther("]") {
			p.fail("Trailing comma in extended attribute list")
		}
		out = append(out, p.consumeExtAttr())
	}
	p.expectOther("]", "extended attribute list")
	return out
}

// consumeExtAttr parses a single `NAME`, `NAME = RHS`, or `NAME(args)`
// extended attribute (these shapes compose: `NAME = RHS(args)` is accepted
// too).
func (p *parser) consumeExtAttr() *ast.ExtendedAttribute {
	ea := &ast.ExtendedAttribute{Name: p.consumeIdentifier()}
	if p.tryOther("=") {
		if list, ok := p.tryConsumeIdentifierList(); ok {
			ea.RHS = &ast.ExtAttrRHS{Kind: ast.RHSIdentifierList, List: list}
		} else if rhs, ok := p.tryConsumeScalarRHS(); ok {
			ea.RHS = rhs
		} else {
			p.fail("No right-hand side after '=' in extended attribute")
		}
	}
	if p.isOther("(") {
		ea.Arguments = p.consumeArgumentList()
	}
	return ea
}

func (p *parser) tryConsumeScalarRHS() (*ast.ExtAttrRHS, bool) {
	if l, ok := p.consume(lexer.Identifier); ok {
		return &ast.ExtAttrRHS{Kind: ast.RHSIdentifier, Value: stripEscape(l.Text)}, true
	}
	if l, ok := p.consume(lexer.Float); ok {
		return &ast.ExtAttrRHS{Kind: ast.RHSFloat, Value: l.Text}, true
	}
	if l, ok := p.consume(lexer.Integer); ok {
		return &ast.ExtAttrRHS{Kind: ast.RHSInteger, Value: l.Text}, true
	}
	if l, ok := p.consume(lexer.String); ok {
		return &ast.ExtAttrRHS{Kind: ast.RHSString, Value: unquote(l.Text)}, true
	}
	return nil, false
}

func (p *parser) tryConsumeIdentifierList() ([]string, bool) {
	if !p.tryOther("(") {
		return nil, false
	}
	var list []string
	list = append(list, p.consumeIdentifier())
	for p.tryOther(",") {
		if p.isOther(")") {
			p.fail("Trailing comma in identifier list")
		}
		list = append(list, p.consumeIdentifier())
	}
	p.expectOther(")", "identifier list")
	return list, true
}
