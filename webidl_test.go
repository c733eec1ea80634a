package webidl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-webidl/webidl"
	"github.com/go-webidl/webidl/ast"
)

func TestParseEmptyInterface(t *testing.T) {
	file, err := webidl.Parse(`interface Foo { };`)
	require.NoError(t, err)
	require.Len(t, file.Definitions, 1)

	iface, ok := file.Definitions[0].(*ast.Interface)
	require.True(t, ok)
	require.Equal(t, "interface", iface.DefinitionType())
	require.Equal(t, "Foo", iface.Name)
	require.False(t, iface.Partial)
	require.Nil(t, iface.Inheritance)
	require.Empty(t, iface.Members)
}

func TestParseInterfaceWithBaseAndReadonlyAttribute(t *testing.T) {
	file, err := webidl.Parse(`interface Foo : Bar { readonly attribute DOMString baz; };`)
	require.NoError(t, err)
	require.Len(t, file.Definitions, 1)

	iface := file.Definitions[0].(*ast.Interface)
	require.NotNil(t, iface.Inheritance)
	require.Equal(t, "Bar", *iface.Inheritance)
	require.Len(t, iface.Members, 1)

	attr, ok := iface.Members[0].(*ast.Attribute)
	require.True(t, ok)
	require.True(t, attr.Readonly)
	require.False(t, attr.Inherit)
	require.False(t, attr.Static)
	require.False(t, attr.Stringifier)
	require.Equal(t, "baz", attr.Name)
	require.Equal(t, "attribute-type", attr.IDLType.Type)
	require.Equal(t, "DOMString", attr.IDLType.Name)
	require.False(t, attr.IDLType.Nullable)
}

func TestParseDictionaryFields(t *testing.T) {
	file, err := webidl.Parse(`dictionary D { required long x; DOMString y = "hi"; };`)
	require.NoError(t, err)

	dict := file.Definitions[0].(*ast.Dictionary)
	require.Len(t, dict.Members, 2)

	require.True(t, dict.Members[0].Required)
	require.Nil(t, dict.Members[0].Default)

	require.False(t, dict.Members[1].Required)
	require.NotNil(t, dict.Members[1].Default)
	require.Equal(t, ast.DefaultString, dict.Members[1].Default.Kind)
	require.Equal(t, "hi", dict.Members[1].Default.Value)
}

func TestParseTypedefSequence(t *testing.T) {
	file, err := webidl.Parse(`typedef sequence<DOMString> Names;`)
	require.NoError(t, err)

	td := file.Definitions[0].(*ast.Typedef)
	require.Equal(t, "Names", td.Name)
	require.True(t, td.IDLType.Sequence())
	require.Equal(t, "sequence", td.IDLType.Generic)
	require.Len(t, td.IDLType.Params, 1)
	require.Equal(t, "DOMString", td.IDLType.Params[0].Name)
}

func TestParseDuplicateNameFails(t *testing.T) {
	_, err := webidl.Parse(`interface A {}; interface A {};`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `The name "A" of type "interface" is already seen`)
}

func TestParseNullableAnyFails(t *testing.T) {
	_, err := webidl.Parse(`interface X { attribute any? v; };`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Type any cannot be made nullable")
}

func TestParseErrorCarriesContext(t *testing.T) {
	_, err := webidl.Parse(`partial interface Foo { attribute DOMString baz }`)
	require.Error(t, err)
	var perr *webidl.ParseError
	require.ErrorAs(t, err, &perr)
	require.Contains(t, perr.Message, "partial interface Foo")
	require.Contains(t, perr.Message, "Missing semicolon after attribute")
}

func TestParseImplementsAndIncludes(t *testing.T) {
	file, err := webidl.Parse(`
		interface A {};
		interface B {};
		A implements B;
		interface C {};
		C includes B;
	`)
	require.NoError(t, err)
	require.Len(t, file.Definitions, 5)

	impl := file.Definitions[2].(*ast.Implements)
	require.Equal(t, "A", impl.Target)
	require.Equal(t, "B", impl.Reference)

	inc := file.Definitions[4].(*ast.Includes)
	require.Equal(t, "C", inc.Target)
	require.Equal(t, "B", inc.Reference)
}

func TestParseUnderscoreEscape(t *testing.T) {
	file, err := webidl.Parse(`interface _interface { };`)
	require.NoError(t, err)
	iface := file.Definitions[0].(*ast.Interface)
	require.Equal(t, "interface", iface.Name)
}
