package ast_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/go-webidl/webidl/ast"
)

func TestEmptyCollectionsMarshalAsEmptyArrays(t *testing.T) {
	f := &ast.File{Definitions: []ast.Definition{}}
	iface := ast.NewInterface()
	iface.Name = "Foo"
	iface.Members = []ast.Member{}
	f.Definitions = append(f.Definitions, iface)

	out, err := json.Marshal(f)
	require.NoError(t, err)
	require.JSONEq(t, `{"definitions":[{"type":"interface","name":"Foo","members":[]}]}`, string(out))
}

func TestOperationFlagsMarshalAsTopLevelFields(t *testing.T) {
	op := ast.NewOperation()
	op.Arguments = []*ast.Argument{}
	op.OperationFlags = ast.OperationFlags{Getter: true, Static: true}

	out, err := json.Marshal(op)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"operation","name":null,"idlType":null,"arguments":[],"getter":true,"static":true}`, string(out))
}

func TestDefinitionTypeDiscriminators(t *testing.T) {
	cases := []struct {
		def  ast.Definition
		want string
	}{
		{ast.NewInterface(), "interface"},
		{ast.NewMixin(), "interface mixin"},
		{ast.NewCallbackInterface(), "callback interface"},
		{ast.NewNamespace(), "namespace"},
		{ast.NewDictionary(), "dictionary"},
		{ast.NewEnum(), "enum"},
		{ast.NewTypedef(), "typedef"},
		{ast.NewCallback(), "callback"},
		{ast.NewImplements(), "implements"},
		{ast.NewIncludes(), "includes"},
	}
	for _, tt := range cases {
		require.Equal(t, tt.want, tt.def.DefinitionType())
	}
}

func TestMemberTypeDiscriminators(t *testing.T) {
	cases := []struct {
		m    ast.Member
		want string
	}{
		{ast.NewConst(), "const"},
		{ast.NewAttribute(), "attribute"},
		{ast.NewOperation(), "operation"},
		{ast.NewIterableLike(ast.IterableKindIterable), "iterable"},
		{ast.NewIterableLike(ast.IterableKindMaplike), "maplike"},
		{ast.NewIterableLike(ast.IterableKindSetlike), "setlike"},
		{ast.NewIterableLike(ast.IterableKindLegacyIterable), "legacyiterable"},
	}
	for _, tt := range cases {
		require.Equal(t, tt.want, tt.m.MemberType())
	}
}

func TestDumpStringIncludesFieldValues(t *testing.T) {
	iface := ast.NewInterface()
	iface.Name = "Foo"
	iface.Members = []ast.Member{}
	s := ast.DumpString(iface)
	require.True(t, strings.Contains(s, "Foo"), "dump should mention the interface name, got: %s", s)
}

func TestFileRoundTripsThroughCmp(t *testing.T) {
	a := &ast.File{Definitions: []ast.Definition{ast.NewEnum()}}
	b := &ast.File{Definitions: []ast.Definition{ast.NewEnum()}}
	if diff := cmp.Diff(a, b, cmpopts.IgnoreUnexported(ast.Enum{})); diff != "" {
		t.Errorf("identically constructed files differ (-a +b):\n%s", diff)
	}
}
