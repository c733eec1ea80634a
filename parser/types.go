package parser

import "github.com/go-webidl/webidl/ast"

// consumeType parses `type` = single_type | union_type, tagging the result
// with role (one of the IDLType.Type roles, or "" for a nested type).
func (p *parser) consumeType(role string) *ast.IDLType {
	if p.isOther("(") {
		return p.consumeUnionType(role)
	}
	return p.consumeSingleType(role)
}

// consumeTypeWithExtAttrs parses an optional leading extended-attribute
// block followed by a type, attaching the attributes to the resulting
// descriptor (type_with_extended_attributes).
func (p *parser) consumeTypeWithExtAttrs(role string) *ast.IDLType {
	attrs := p.tryConsumeExtAttrs()
	t := p.consumeType(role)
	t.ExtAttrs = attrs
	return t
}

// consumeReturnType parses `return_type` = type("return-type") | "void".
func (p *parser) consumeReturnType() *ast.IDLType {
	if p.tryKeyword("void") {
		return &ast.IDLType{Type: "return-type", Name: "void"}
	}
	return p.consumeType("return-type")
}

func (p *parser) consumeUnionType(role string) *ast.IDLType {
	p.expectOther("(", "union type")
	var members []*ast.IDLType
	members = append(members, p.consumeTypeWithExtAttrs(""))
	for p.tryKeyword("or") {
		members = append(members, p.consumeTypeWithExtAttrs(""))
	}
	if len(members) < 2 {
		p.fail("A union type must have more than one member type")
	}
	p.expectOther(")", "union type")
	t := &ast.IDLType{Type: role, Union: members}
	p.applyTypeSuffix(t)
	return t
}

func (p *parser) consumeSingleType(role string) *ast.IDLType {
	if name, ok := p.tryPrimitiveType(); ok {
		t := &ast.IDLType{Type: role, Name: name}
		p.applyTypeSuffix(t)
		return t
	}
	name := p.consumeIdentifier()
	if p.isOther("<") {
		return p.consumeGenericType(role, name)
	}
	t := &ast.IDLType{Type: role, Name: name}
	p.applyTypeSuffix(t)
	return t
}

func (p *parser) consumeGenericType(role, name string) *ast.IDLType {
	p.expectOther("<", "generic type")
	var params []*ast.IDLType
	params = append(params, p.consumeTypeWithExtAttrs(""))
	for p.tryOther(",") {
		if p.isOther(">") {
			p.fail("Trailing comma in generic type parameters")
		}
		params = append(params, p.consumeTypeWithExtAttrs(""))
	}
	p.expectOther(">", "generic type")

	switch name {
	case "sequence":
		if len(params) != 1 {
			p.fail("A sequence must have exactly one subtype")
		}
	case "record":
		if len(params) != 2 {
			p.fail("A record must have exactly two subtypes")
		}
		key := params[0]
		if key.IsUnion() || key.Generic != "" || !isRecordKeyType(key.Name) || len(key.ExtAttrs) != 0 {
			p.fail("Record key must be DOMString, USVString, or ByteString")
		}
	case "Promise":
		if len(params[0].ExtAttrs) != 0 {
			p.fail("Promise type must not have extended attributes")
		}
	}

	t := &ast.IDLType{Type: role, Generic: name, Params: params}
	p.applyTypeSuffix(t)
	return t
}

// applyTypeSuffix parses at most one trailing `?`, enforcing the nullable
// invariants: `any` cannot be made nullable, and a type cannot be made
// nullable twice.
func (p *parser) applyTypeSuffix(t *ast.IDLType) {
	if !p.tryOther("?") {
		return
	}
	if t.Name == "any" {
		p.fail("Type any cannot be made nullable")
	}
	t.Nullable = true
	if p.isOther("?") {
		p.fail("Can't nullable more than once")
	}
}

// tryPrimitiveType matches integer_type, float_type, or boolean|byte|octet.
func (p *parser) tryPrimitiveType() (string, bool) {
	if p.tryKeyword("unsigned") {
		if p.tryKeyword("short") {
			return "unsigned short", true
		}
		if p.tryKeyword("long") {
			if p.tryKeyword("long") {
				return "unsigned long long", true
			}
			return "unsigned long", true
		}
		p.fail("Expected short or long after unsigned")
	}
	if p.tryKeyword("short") {
		return "short", true
	}
	if p.tryKeyword("long") {
		if p.tryKeyword("long") {
			return "long long", true
		}
		return "long", true
	}
	if p.tryKeyword("unrestricted") {
		if p.tryKeyword("float") {
			return "unrestricted float", true
		}
		if p.tryKeyword("double") {
			return "unrestricted double", true
		}
		p.fail("Expected float or double after unrestricted")
	}
	if p.tryKeyword("float") {
		return "float", true
	}
	if p.tryKeyword("double") {
		return "double", true
	}
	if p.tryKeyword("boolean") {
		return "boolean", true
	}
	if p.tryKeyword("byte") {
		return "byte", true
	}
	if p.tryKeyword("octet") {
		return "octet", true
	}
	return "", false
}

// consumeConstType parses the TYPE in `const TYPE ?? NAME = VALUE;`: a
// primitive type or a plain identifier, with no generic/union/nullable
// suffix of its own (the `??` is handled by the caller).
func (p *parser) consumeConstType() *ast.IDLType {
	if name, ok := p.tryPrimitiveType(); ok {
		return &ast.IDLType{Type: "const-type", Name: name}
	}
	return &ast.IDLType{Type: "const-type", Name: p.consumeIdentifier()}
}
