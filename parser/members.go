package parser

import (
	"github.com/go-webidl/webidl/ast"
	"github.com/go-webidl/webidl/lexer"
)

// containerKind distinguishes the three bodies consumeMember can appear in,
// since interface, interface-mixin, and namespace bodies each permit a
// different subset of member kinds (§4.2.3).
type containerKind int

const (
	containerInterface containerKind = iota
	containerMixin
	containerNamespace
)

// consumeMember parses one member of an interface, mixin, or namespace
// body, dispatching on a small amount of non-destructive lookahead so that
// no production needs to backtrack. ctx gates which member kinds are
// permitted in the current container.
func (p *parser) consumeMember(ctx containerKind) ast.Member {
	attrs := p.tryConsumeExtAttrs()
	trivia := p.peekTrivia()

	var m ast.Member
	switch {
	case p.tryKeyword("const"):
		m = p.consumeConstMember(attrs)
	case p.opts.AllowNestedTypedefs && p.tryKeyword("typedef"):
		m = p.consumeTypedef(attrs)
	case p.isKeyword("serializer") && p.isNextOther(";"):
		p.s.advance()
		m = p.consumeLegacyStringifierSynonym(attrs)
	case p.isKeyword("jsonifier") && p.isNextOther(";"):
		p.s.advance()
		m = p.consumeLegacyStringifierSynonym(attrs)
	case p.tryKeyword("static"):
		m = p.consumeStaticMember(attrs)
	case p.tryKeyword("stringifier"):
		m = p.consumeStringifierMember(attrs)
	case p.tryKeyword("inherit"):
		m = p.consumeInheritedAttribute(attrs)
	case p.isKeyword("readonly") && p.isNextKeyword("attribute"):
		m = p.consumeAttributeMember(attrs, false, false)
	case p.isKeyword("readonly") && p.isNextKeyword("maplike"):
		p.s.advance()
		p.consumeKeyword("maplike")
		m = p.consumeIterableFamily(ast.IterableKindMaplike, true)
	case p.isKeyword("readonly") && p.isNextKeyword("setlike"):
		p.s.advance()
		p.consumeKeyword("setlike")
		m = p.consumeIterableFamily(ast.IterableKindSetlike, true)
	case p.isKeyword("attribute"):
		m = p.consumeAttributeMember(attrs, false, false)
	case p.tryKeyword("iterable"):
		m = p.consumeIterableFamily(ast.IterableKindIterable, false)
	case p.tryKeyword("legacyiterable"):
		m = p.consumeIterableFamily(ast.IterableKindLegacyIterable, false)
	case p.tryKeyword("maplike"):
		m = p.consumeIterableFamily(ast.IterableKindMaplike, false)
	case p.tryKeyword("setlike"):
		m = p.consumeIterableFamily(ast.IterableKindSetlike, false)
	default:
		m = p.consumeOperationMember(attrs, ast.OperationFlags{})
	}

	p.checkMemberAllowed(ctx, m)

	if p.opts.Trivia {
		if ts, ok := m.(ast.TriviaSetter); ok {
			ts.SetTrivia(trivia)
		}
	}
	return m
}

// checkMemberAllowed enforces §4.2.3's per-container restrictions: namespace
// bodies accept only non-inherited attributes and regular (non-static,
// non-stringifier, unprefixed) operations; interface-mixin bodies exclude
// inherited attributes and the whole iterable/maplike/setlike family.
func (p *parser) checkMemberAllowed(ctx containerKind, m ast.Member) {
	switch ctx {
	case containerNamespace:
		switch v := m.(type) {
		case *ast.Attribute:
			if v.Inherit {
				p.fail("Namespace members cannot be inherited attributes")
			}
			if v.Static || v.Stringifier {
				p.fail("Namespace members must be non-inherited attributes or regular operations")
			}
		case *ast.Operation:
			if v.Static || v.Stringifier || v.Getter || v.Setter || v.Deleter {
				p.fail("Namespace members must be non-inherited attributes or regular operations")
			}
		default:
			p.fail("Namespace members must be non-inherited attributes or regular operations")
		}
	case containerMixin:
		switch v := m.(type) {
		case *ast.Attribute:
			if v.Inherit {
				p.fail("Interface mixin members cannot be inherited attributes")
			}
		case *ast.IterableLike:
			p.fail("Interface mixin bodies cannot contain iterable, maplike, or setlike members")
		}
	}
}

func (p *parser) isNextOther(text string) bool {
	l, ok := p.s.peekN(2)
	return ok && l.Kind == lexer.Other && l.Text == text
}

func (p *parser) consumeConstMember(attrs []*ast.ExtendedAttribute) *ast.Const {
	c := ast.NewConst()
	c.ExtAttrs = attrs
	c.IDLType = p.consumeConstType()
	if p.tryOther("?") {
		c.Nullable = true
	}
	c.Name = p.consumeIdentifier()
	p.expectOther("=", "const")
	c.Value = p.consumeDefaultValue()
	p.expectSemicolon("const")
	return c
}

func (p *parser) consumeAttributeMember(attrs []*ast.ExtendedAttribute, inherit, static bool) *ast.Attribute {
	a := ast.NewAttribute()
	a.ExtAttrs = attrs
	a.Inherit = inherit
	a.Static = static
	if p.tryKeyword("readonly") {
		a.Readonly = true
	}
	p.consumeKeyword("attribute")
	a.IDLType = p.consumeTypeWithExtAttrs("attribute-type")
	checkAttributeType(p, a.IDLType)
	a.Name = p.consumeAttributeName()
	p.expectSemicolon("attribute")
	return a
}

func (p *parser) consumeInheritedAttribute(attrs []*ast.ExtendedAttribute) *ast.Attribute {
	a := ast.NewAttribute()
	a.ExtAttrs = attrs
	a.Inherit = true
	p.consumeKeyword("attribute")
	a.IDLType = p.consumeTypeWithExtAttrs("attribute-type")
	checkAttributeType(p, a.IDLType)
	a.Name = p.consumeAttributeName()
	p.expectSemicolon("inherited attribute")
	return a
}

// checkAttributeType enforces that an attribute's type is neither a
// sequence nor a record, per the invariant that those generics only make
// sense as operation/argument/dictionary-field types.
func checkAttributeType(p *parser, t *ast.IDLType) {
	if t.Generic == "sequence" || t.Generic == "record" {
		p.fail("Attributes cannot accept sequence/record types")
	}
}

// consumeAttributeName allows "async" and a few other soft keywords in
// attribute-name position, in addition to plain identifiers.
func (p *parser) consumeAttributeName() string {
	if p.tryKeyword("async") {
		return "async"
	}
	if p.tryKeyword("required") {
		return "required"
	}
	return p.consumeIdentifier()
}

// consumeStaticMember parses the continuation after a leading `static`
// keyword already consumed by the caller: either a non-inherited attribute
// or a regular operation, both with `static: true` (§4.2.3's "static
// member" bullet). This mirrors consumeStringifierMember's non-destructive
// peek so readonly/attribute are never pre-consumed and re-consumed.
func (p *parser) consumeStaticMember(attrs []*ast.ExtendedAttribute) ast.Member {
	if p.isKeyword("attribute") || p.isKeyword("readonly") {
		return p.consumeAttributeMember(attrs, false, true)
	}
	return p.consumeOperationMember(attrs, ast.OperationFlags{Static: true})
}

func (p *parser) consumeStringifierMember(attrs []*ast.ExtendedAttribute) ast.Member {
	if p.tryOther(";") {
		op := ast.NewOperation()
		op.ExtAttrs = attrs
		op.Arguments = []*ast.Argument{}
		op.OperationFlags = ast.OperationFlags{Stringifier: true}
		return op
	}
	if p.isKeyword("attribute") || p.isKeyword("readonly") {
		a := p.consumeAttributeMember(attrs, false, false)
		a.Stringifier = true
		return a
	}
	op := p.consumeOperationMember(attrs, ast.OperationFlags{Stringifier: true})
	return op
}

// consumeLegacyStringifierSynonym parses the deprecated `serializer;` and
// `jsonifier;` shorthands, both equivalent to a stringifier operation; the
// semicolon was already peeked by the caller.
func (p *parser) consumeLegacyStringifierSynonym(attrs []*ast.ExtendedAttribute) *ast.Operation {
	p.expectOther(";", "legacy stringifier synonym")
	op := ast.NewOperation()
	op.ExtAttrs = attrs
	op.Arguments = []*ast.Argument{}
	op.OperationFlags = ast.OperationFlags{Stringifier: true}
	op.Deprecated = true
	return op
}

// consumeOperationMember parses a regular or getter/setter/deleter
// operation, with flags already partially populated by the caller (static,
// stringifier).
func (p *parser) consumeOperationMember(attrs []*ast.ExtendedAttribute, flags ast.OperationFlags) *ast.Operation {
	for {
		switch {
		case p.tryKeyword("getter"):
			flags.Getter = true
		case p.tryKeyword("setter"):
			flags.Setter = true
		case p.tryKeyword("deleter"):
			flags.Deleter = true
		default:
			goto body
		}
	}
body:
	op := ast.NewOperation()
	op.ExtAttrs = attrs
	op.OperationFlags = flags
	op.IDLType = p.consumeReturnType()
	if name, ok := p.tryConsumeIdentifier(); ok {
		op.Name = &name
	}
	op.Arguments = p.consumeArgumentList()
	p.expectSemicolon("operation")
	return op
}

// consumeIterableFamily parses iterable<T>, iterable<K, V>,
// legacyiterable<T>, maplike<K, V>, and setlike<T>; readonly is already
// known to the caller for the maplike/setlike forms. maplike requires
// exactly two type arguments; iterable accepts one or two;
// legacyiterable/setlike require exactly one.
func (p *parser) consumeIterableFamily(kind ast.IterableKind, readonly bool) *ast.IterableLike {
	il := ast.NewIterableLike(kind)
	il.Readonly = readonly
	p.expectOther("<", string(kind))
	il.IDLType = p.consumeTypeWithExtAttrs("")
	switch kind {
	case ast.IterableKindIterable:
		if p.tryOther(",") {
			il.IDLType2 = p.consumeTypeWithExtAttrs("")
		}
	case ast.IterableKindMaplike:
		p.expectOther(",", string(kind))
		il.IDLType2 = p.consumeTypeWithExtAttrs("")
	}
	p.expectOther(">", string(kind))
	p.expectSemicolon(string(kind))
	return il
}
