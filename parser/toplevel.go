package parser

import "github.com/go-webidl/webidl/ast"

// parseFile consumes top-level definitions until the stream is exhausted.
func (p *parser) parseFile() *ast.File {
	f := &ast.File{Definitions: []ast.Definition{}}
	for !p.s.atEOF() {
		f.Definitions = append(f.Definitions, p.consumeTopLevelDefinition())
	}
	return f
}

// consumeTopLevelDefinition dispatches a single top-level definition. The
// `A implements B;` / `A includes B;` forms are the one case that needs
// real backtracking, since a bare leading identifier is otherwise
// indistinguishable from the start of any other top-level form.
func (p *parser) consumeTopLevelDefinition() ast.Definition {
	attrs := p.tryConsumeExtAttrs()

	switch {
	case p.tryKeyword("callback"):
		return p.consumeCallbackOrCallbackInterface(attrs)
	case p.tryKeyword("interface"):
		return p.consumeInterfaceOrMixin(attrs, false, false)
	case p.tryKeyword("partial"):
		return p.consumePartial(attrs)
	case p.tryKeyword("dictionary"):
		return p.consumeDictionary(attrs, false)
	case p.tryKeyword("namespace"):
		return p.consumeNamespace(attrs, false)
	case p.tryKeyword("enum"):
		return p.consumeEnum(attrs)
	case p.tryKeyword("typedef"):
		return p.consumeTypedef(attrs)
	}

	if len(attrs) != 0 {
		p.fail("Stray extended attributes")
	}
	if def, ok := p.tryConsumeImplementsOrIncludes(); ok {
		return def
	}
	p.fail("Unrecognized top-level definition")
	return nil
}

// consumePartial parses the continuation after a leading `partial` keyword:
// interface, interface mixin, dictionary, or namespace.
func (p *parser) consumePartial(attrs []*ast.ExtendedAttribute) ast.Definition {
	switch {
	case p.tryKeyword("interface"):
		return p.consumeInterfaceOrMixin(attrs, true, false)
	case p.tryKeyword("dictionary"):
		return p.consumeDictionary(attrs, true)
	case p.tryKeyword("namespace"):
		return p.consumeNamespace(attrs, true)
	}
	p.fail("Expected interface, dictionary, or namespace after partial")
	return nil
}
