package parser

import (
	"fmt"

	"github.com/go-webidl/webidl/ast"
)

// consumeInterfaceOrMixin parses `interface NAME ( : BASE )? { MEMBERS };`,
// `interface mixin NAME { MEMBERS };`, or (when callback is true, with the
// leading `callback` keyword already consumed by the caller) `callback
// interface NAME { MEMBERS };`. partial is already consumed by the caller.
func (p *parser) consumeInterfaceOrMixin(attrs []*ast.ExtendedAttribute, partial, callback bool) ast.Definition {
	mixinTrivia := p.peekTrivia()
	isMixin := !callback && p.tryKeyword("mixin")

	var iface *ast.Interface
	switch {
	case callback:
		iface = ast.NewCallbackInterface()
	case isMixin:
		iface = ast.NewMixin()
	default:
		iface = ast.NewInterface()
	}
	iface.ExtAttrs = attrs
	iface.Partial = partial

	pop, setCurrent := p.enterDef(containerDesc(partial, iface.Type, ""))
	defer pop()

	nameTrivia := p.peekTrivia()
	name := p.consumeIdentifier()
	iface.Name = name
	setCurrent(containerDesc(partial, iface.Type, name))
	if !partial {
		p.register(name, iface.Type)
	}

	if !isMixin && !callback && p.tryOther(":") {
		base := p.consumeIdentifier()
		iface.Inheritance = &base
	}

	ctx := containerInterface
	if isMixin {
		ctx = containerMixin
	}

	openTrivia := p.peekTrivia()
	p.expectOther("{", iface.Type)
	iface.Members = p.consumeMemberList(ctx)
	closeTrivia := p.peekTrivia()
	p.expectOther("}", iface.Type)
	termTrivia := p.peekTrivia()
	p.expectSemicolon(iface.Type)

	if p.opts.Trivia {
		iface.Trivia = &ast.ContainerTrivia{
			Mixin: mixinTrivia, Name: nameTrivia, Open: openTrivia,
			Close: closeTrivia, Termination: termTrivia,
		}
	}
	return iface
}

func (p *parser) consumeMemberList(ctx containerKind) []ast.Member {
	members := []ast.Member{}
	for !p.isOther("}") {
		members = append(members, p.consumeMember(ctx))
	}
	return members
}

// consumeNamespace parses `namespace NAME { MEMBERS };`.
func (p *parser) consumeNamespace(attrs []*ast.ExtendedAttribute, partial bool) *ast.Namespace {
	ns := ast.NewNamespace()
	ns.ExtAttrs = attrs
	ns.Partial = partial

	pop, setCurrent := p.enterDef(containerDesc(partial, "namespace", ""))
	defer pop()

	name := p.consumeIdentifier()
	ns.Name = name
	setCurrent(containerDesc(partial, "namespace", name))
	if !partial {
		p.register(name, "namespace")
	}

	p.expectOther("{", "namespace")
	ns.Members = p.consumeMemberList(containerNamespace)
	p.expectOther("}", "namespace")
	p.expectSemicolon("namespace")
	return ns
}

// consumeDictionary parses `dictionary NAME ( : BASE )? { FIELDS };`.
func (p *parser) consumeDictionary(attrs []*ast.ExtendedAttribute, partial bool) *ast.Dictionary {
	d := ast.NewDictionary()
	d.ExtAttrs = attrs
	d.Partial = partial

	pop, setCurrent := p.enterDef(containerDesc(partial, "dictionary", ""))
	defer pop()

	name := p.consumeIdentifier()
	d.Name = name
	setCurrent(containerDesc(partial, "dictionary", name))
	if !partial {
		p.register(name, "dictionary")
	}

	if p.tryOther(":") {
		base := p.consumeIdentifier()
		d.Inheritance = &base
	}

	d.Members = []*ast.Field{}
	p.expectOther("{", "dictionary")
	for !p.isOther("}") {
		d.Members = append(d.Members, p.consumeField())
	}
	p.expectOther("}", "dictionary")
	p.expectSemicolon("dictionary")
	return d
}

// consumeField parses one dictionary body member: `required`? type NAME
// Default? ;`. A required field may not also carry a default.
func (p *parser) consumeField() *ast.Field {
	attrs := p.tryConsumeExtAttrs()
	f := &ast.Field{ExtAttrs: attrs}
	required := p.tryKeyword("required")
	f.Required = required
	f.IDLType = p.consumeTypeWithExtAttrs("dictionary-type")
	f.Name = p.consumeIdentifier()
	if d, ok := p.tryConsumeDefault(); ok {
		if required {
			p.fail("Required member must not have a default")
		}
		f.Default = d
	}
	p.expectSemicolon("dictionary field")
	return f
}

// consumeEnum parses `enum NAME { "a", "b", ... };`, permitting an empty
// body with no values.
func (p *parser) consumeEnum(attrs []*ast.ExtendedAttribute) *ast.Enum {
	e := ast.NewEnum()
	e.Values = []string{}
	name := p.consumeIdentifier()
	e.Name = name
	p.register(name, "enum")

	p.expectOther("{", "enum")
	if !p.isOther("}") {
		e.Values = append(e.Values, p.consumeEnumValue())
		for p.tryOther(",") {
			if p.isOther("}") {
				p.fail("Trailing comma in enum")
			}
			e.Values = append(e.Values, p.consumeEnumValue())
		}
	}
	p.expectOther("}", "enum")
	p.expectSemicolon("enum")
	return e
}

func (p *parser) consumeEnumValue() string {
	return p.consumeStringLit("enum")
}

// consumeTypedef parses `typedef ExtAttrs? TYPE NAME;`.
func (p *parser) consumeTypedef(attrs []*ast.ExtendedAttribute) *ast.Typedef {
	t := ast.NewTypedef()
	t.ExtAttrs = attrs
	t.IDLType = p.consumeTypeWithExtAttrs("typedef-type")
	name := p.consumeIdentifier()
	t.Name = name
	p.register(name, "typedef")
	p.expectSemicolon("typedef")
	return t
}

// consumeCallbackOrCallbackInterface parses `callback interface NAME {...};`
// or `callback NAME = RETURNTYPE(ARGS);`, with the `callback` keyword
// already consumed by the caller.
func (p *parser) consumeCallbackOrCallbackInterface(attrs []*ast.ExtendedAttribute) ast.Definition {
	if p.isKeyword("interface") {
		p.consumeKeyword("interface")
		return p.consumeInterfaceOrMixin(attrs, false, true)
	}

	cb := ast.NewCallback()
	cb.ExtAttrs = attrs

	pop, setCurrent := p.enterDef("callback")
	defer pop()

	name := p.consumeIdentifier()
	cb.Name = name
	setCurrent(fmt.Sprintf("callback %s", name))
	p.register(name, "callback")

	p.expectOther("=", "callback")
	cb.IDLType = p.consumeReturnType()
	cb.Arguments = p.consumeArgumentList()
	p.expectSemicolon("callback")
	return cb
}

// tryConsumeImplementsOrIncludes speculatively parses `NAME implements
// NAME;` or `NAME includes NAME;`, the one top-level form that needs real
// backtracking: the leading identifier is indistinguishable from the start
// of any other top-level definition until the second identifier is seen.
func (p *parser) tryConsumeImplementsOrIncludes() (ast.Definition, bool) {
	m := p.s.save()
	name, ok := p.tryConsumeIdentifier()
	if !ok {
		return nil, false
	}
	if p.tryKeyword("implements") {
		ref := p.consumeIdentifier()
		p.expectSemicolon("implements statement")
		imp := ast.NewImplements()
		imp.Target, imp.Reference = name, ref
		return imp, true
	}
	if p.tryKeyword("includes") {
		ref := p.consumeIdentifier()
		p.expectSemicolon("includes statement")
		inc := ast.NewIncludes()
		inc.Target, inc.Reference = name, ref
		return inc, true
	}
	p.s.restore(m)
	return nil, false
}

func containerDesc(partial bool, kind, name string) string {
	desc := kind
	if partial {
		desc = "partial " + kind
	}
	if name != "" {
		desc += " " + name
	}
	return desc
}
