// Package ast defines the abstract syntax tree produced by parsing Web IDL
// source: a flat list of top-level definitions, each a tagged node whose
// JSON "type" discriminator matches the variant tags named in the grammar.
package ast

// Definition is a top-level node: interface, mixin, namespace, dictionary,
// enum, typedef, callback, implements or includes.
type Definition interface {
	DefinitionType() string
}

// Member is an interface/mixin/namespace body member: const, attribute,
// operation, or one of the iterable/maplike/setlike declarations.
type Member interface {
	MemberType() string
}

// File is the root of a parse: an ordered list of top-level definitions.
type File struct {
	Definitions []Definition `json:"definitions"`
}

type defBase struct {
	Type string `json:"type"`
}

func (d defBase) DefinitionType() string { return d.Type }

type memberBase struct {
	Type string `json:"type"`
	// Trivia holds the whitespace/comment run captured immediately before
	// this member, when the parser was built with Trivia enabled. Empty
	// otherwise.
	Trivia string `json:"trivia,omitempty"`
}

func (m memberBase) MemberType() string { return m.Type }

// ContainerTrivia holds whitespace/comment runs captured around the key
// syntactic anchors of a container. The parser fills it in only for
// interface, callback interface and interface mixin nodes, and only when
// built with Trivia enabled; Namespace and Dictionary nodes leave their
// Trivia field nil, Enum nodes carry no trivia, and Base is never set.
type ContainerTrivia struct {
	Base        string `json:"base,omitempty"`
	Mixin       string `json:"mixin,omitempty"`
	Name        string `json:"name,omitempty"`
	Open        string `json:"open,omitempty"`
	Close       string `json:"close,omitempty"`
	Termination string `json:"termination,omitempty"`
}

// Interface tags interface, callback interface, and interface mixin nodes;
// the Type field carries which.
type Interface struct {
	defBase
	Name        string               `json:"name"`
	Partial     bool                 `json:"partial,omitempty"`
	Inheritance *string              `json:"inheritance,omitempty"`
	Members     []Member             `json:"members"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      *ContainerTrivia     `json:"trivia,omitempty"`
}

// NewInterface builds a plain `interface` definition node.
func NewInterface() *Interface { return &Interface{defBase: defBase{Type: "interface"}} }

// NewCallbackInterface builds a `callback interface` definition node.
func NewCallbackInterface() *Interface {
	return &Interface{defBase: defBase{Type: "callback interface"}}
}

// NewMixin builds an `interface mixin` definition node.
func NewMixin() *Interface { return &Interface{defBase: defBase{Type: "interface mixin"}} }

// Namespace is a `namespace` definition.
type Namespace struct {
	defBase
	Name     string               `json:"name"`
	Partial  bool                 `json:"partial,omitempty"`
	Members  []Member             `json:"members"`
	ExtAttrs []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia   *ContainerTrivia     `json:"trivia,omitempty"`
}

func NewNamespace() *Namespace { return &Namespace{defBase: defBase{Type: "namespace"}} }

// Dictionary is a `dictionary` definition; its Members are Fields.
type Dictionary struct {
	defBase
	Name        string               `json:"name"`
	Partial     bool                 `json:"partial,omitempty"`
	Inheritance *string              `json:"inheritance,omitempty"`
	Members     []*Field             `json:"members"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
	Trivia      *ContainerTrivia     `json:"trivia,omitempty"`
}

func NewDictionary() *Dictionary { return &Dictionary{defBase: defBase{Type: "dictionary"}} }

// Enum is an `enum` definition; Values are the unquoted string literals.
type Enum struct {
	defBase
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func NewEnum() *Enum { return &Enum{defBase: defBase{Type: "enum"}} }

// Typedef is a `typedef` definition.
type Typedef struct {
	defBase
	Name     string               `json:"name"`
	IDLType  *IDLType             `json:"idlType"`
	ExtAttrs []*ExtendedAttribute `json:"extAttrs,omitempty"`
}

func NewTypedef() *Typedef { return &Typedef{defBase: defBase{Type: "typedef"}} }

// MemberType lets a Typedef double as a Member, for the (if
// allowNestedTypedefs) typedef production inside an interface body.
func (t *Typedef) MemberType() string { return t.Type }

// Callback is a standalone `callback NAME = TYPE(ARGS);` definition.
type Callback struct {
	defBase
	Name      string               `json:"name"`
	IDLType   *IDLType             `json:"idlType"`
	Arguments []*Argument          `json:"arguments"`
	ExtAttrs  []*ExtendedAttribute `json:"extAttrs,omitempty"`
}

func NewCallback() *Callback { return &Callback{defBase: defBase{Type: "callback"}} }

// Implements is an `A implements B;` statement.
type Implements struct {
	defBase
	Target    string `json:"target"`
	Reference string `json:"implements"`
}

func NewImplements() *Implements { return &Implements{defBase: defBase{Type: "implements"}} }

// Includes is an `A includes B;` statement.
type Includes struct {
	defBase
	Target    string `json:"target"`
	Reference string `json:"includes"`
}

func NewIncludes() *Includes { return &Includes{defBase: defBase{Type: "includes"}} }

// Const is a `const` member.
type Const struct {
	memberBase
	Name     string               `json:"name"`
	IDLType  *IDLType             `json:"idlType"`
	Nullable bool                 `json:"nullable,omitempty"`
	Value    *Default             `json:"value"`
	ExtAttrs []*ExtendedAttribute `json:"extAttrs,omitempty"`
}

func NewConst() *Const { return &Const{memberBase: memberBase{Type: "const"}} }

// Attribute is an `attribute` member.
type Attribute struct {
	memberBase
	Name        string               `json:"name"`
	IDLType     *IDLType             `json:"idlType"`
	Readonly    bool                 `json:"readonly,omitempty"`
	Inherit     bool                 `json:"inherit,omitempty"`
	Static      bool                 `json:"static,omitempty"`
	Stringifier bool                 `json:"stringifier,omitempty"`
	ExtAttrs    []*ExtendedAttribute `json:"extAttrs,omitempty"`
}

func NewAttribute() *Attribute { return &Attribute{memberBase: memberBase{Type: "attribute"}} }

// OperationFlags collect the boolean prefixes an operation may carry.
type OperationFlags struct {
	Getter      bool `json:"getter,omitempty"`
	Setter      bool `json:"setter,omitempty"`
	Deleter     bool `json:"deleter,omitempty"`
	Static      bool `json:"static,omitempty"`
	Stringifier bool `json:"stringifier,omitempty"`
}

// Operation is an operation (method) member. Name is nil for anonymous
// getter/setter/deleter/stringifier operations.
type Operation struct {
	memberBase
	Name      *string     `json:"name"`
	IDLType   *IDLType    `json:"idlType"`
	Arguments []*Argument `json:"arguments"`
	OperationFlags
	ExtAttrs []*ExtendedAttribute `json:"extAttrs,omitempty"`
	// Deprecated marks an operation produced from the legacy
	// `serializer;`/`jsonifier;` stringifier synonyms.
	Deprecated bool `json:"deprecated,omitempty"`
}

func NewOperation() *Operation { return &Operation{memberBase: memberBase{Type: "operation"}} }

// IterableKind enumerates the iterable-family member shapes.
type IterableKind string

const (
	IterableKindIterable       IterableKind = "iterable"
	IterableKindLegacyIterable IterableKind = "legacyiterable"
	IterableKindMaplike        IterableKind = "maplike"
	IterableKindSetlike        IterableKind = "setlike"
)

// IterableLike is an iterable/legacyiterable/maplike/setlike member.
type IterableLike struct {
	memberBase
	IDLType  *IDLType `json:"idlType"`
	IDLType2 *IDLType `json:"idlType2,omitempty"` // second slot, for record-shaped forms
	Readonly bool     `json:"readonly,omitempty"` // maplike/setlike only
}

func NewIterableLike(kind IterableKind) *IterableLike {
	return &IterableLike{memberBase: memberBase{Type: string(kind)}}
}

// TriviaSetter is implemented by every Member variant that carries a
// leading trivia run; SetTrivia is only ever called by the parser when
// Options.Trivia is enabled.
type TriviaSetter interface {
	SetTrivia(string)
}

func (m *Const) SetTrivia(s string)        { m.Trivia = s }
func (m *Attribute) SetTrivia(s string)    { m.Trivia = s }
func (m *Operation) SetTrivia(s string)    { m.Trivia = s }
func (m *IterableLike) SetTrivia(s string) { m.Trivia = s }

// Field is a dictionary body member.
type Field struct {
	Name     string               `json:"name"`
	IDLType  *IDLType             `json:"idlType"`
	Required bool                 `json:"required,omitempty"`
	Default  *Default             `json:"default,omitempty"`
	ExtAttrs []*ExtendedAttribute `json:"extAttrs,omitempty"`
}

// IDLType is the type descriptor shared by attributes, arguments,
// return types, dictionary fields, typedefs, consts, and nested generic
// type parameters.
type IDLType struct {
	// Type names the role this descriptor plays in its parent: one of
	// "return-type", "attribute-type", "argument-type", "dictionary-type",
	// "typedef-type", "const-type", or "" for a nested type (a generic's
	// type parameter, or a union member).
	Type string `json:"type,omitempty"`
	// Name is the simple type name when this descriptor is neither a union
	// nor a generic (e.g. "DOMString", "any", "unsigned long").
	Name string `json:"name,omitempty"`
	// Generic names the generic type constructor ("sequence", "record",
	// "Promise", "FrozenArray", ...), or "" for a non-generic type.
	Generic string `json:"generic,omitempty"`
	// Params holds the generic's type arguments: exactly one for sequence,
	// exactly two for record, arbitrary for anything else.
	Params []*IDLType `json:"params,omitempty"`
	// Union holds the member types when this descriptor is a union type;
	// len(Union) >= 2 whenever non-nil.
	Union    []*IDLType           `json:"union,omitempty"`
	Nullable bool                 `json:"nullable,omitempty"`
	ExtAttrs []*ExtendedAttribute `json:"extAttrs,omitempty"`
}

// IsUnion reports whether this descriptor is a union type.
func (t *IDLType) IsUnion() bool { return t != nil && len(t.Union) > 0 }

// Sequence reports the idlType.sequence legacy boolean: true iff this
// descriptor's generic constructor is "sequence".
func (t *IDLType) Sequence() bool { return t != nil && t.Generic == "sequence" }

// Argument is a callback/operation parameter.
type Argument struct {
	Name     string               `json:"name"`
	IDLType  *IDLType             `json:"idlType"`
	Optional bool                 `json:"optional,omitempty"`
	Variadic bool                 `json:"variadic,omitempty"`
	Default  *Default             `json:"default,omitempty"`
	ExtAttrs []*ExtendedAttribute `json:"extAttrs,omitempty"`
}

// RHSKind enumerates the shapes an extended attribute's right-hand side may
// take.
type RHSKind string

const (
	RHSNone           RHSKind = ""
	RHSIdentifier     RHSKind = "identifier"
	RHSFloat          RHSKind = "float"
	RHSInteger        RHSKind = "integer"
	RHSString         RHSKind = "string"
	RHSIdentifierList RHSKind = "identifier-list"
)

// ExtAttrRHS is the right-hand side of `Name = RHS` in an extended
// attribute; nil when the attribute has no `=`.
type ExtAttrRHS struct {
	Kind RHSKind `json:"type"`
	// Value holds the literal text for scalar kinds (identifier, float,
	// integer, string).
	Value string `json:"value,omitempty"`
	// List holds the identifiers for an identifier-list RHS.
	List []string `json:"list,omitempty"`
}

// ExtendedAttribute is a single `[Name]`, `[Name=RHS]`, or `[Name(args)]`
// bracketed annotation.
type ExtendedAttribute struct {
	Name      string      `json:"name"`
	Arguments []*Argument `json:"arguments,omitempty"`
	RHS       *ExtAttrRHS `json:"rhs,omitempty"`
}

// DefaultKind enumerates the tagged shapes a default value may take.
type DefaultKind string

const (
	DefaultBoolean  DefaultKind = "boolean"
	DefaultNull     DefaultKind = "null"
	DefaultInfinity DefaultKind = "Infinity"
	DefaultNaN      DefaultKind = "NaN"
	DefaultNumber   DefaultKind = "number"
	DefaultSequence DefaultKind = "sequence"
	DefaultString   DefaultKind = "string"
)

// Default is a `= VALUE` default value, for arguments, dictionary fields,
// and const initializers.
type Default struct {
	Kind  DefaultKind `json:"type"`
	Value string      `json:"value,omitempty"`
	// Negative applies only to Kind == DefaultInfinity ("-Infinity").
	Negative bool `json:"negative,omitempty"`
}
