// Package parser implements the Web IDL recursive-descent parser: it
// consumes the lexeme sequence produced by package lexer and builds the
// package ast tree, enforcing the grammar's small set of semantic checks
// (duplicate top-level names, sequence/record arity, nullable restrictions
// on any, required+default conflicts, record key types) along the way.
package parser

import (
	"strings"

	"github.com/go-webidl/webidl/ast"
	"github.com/go-webidl/webidl/lexer"
)

// Options configures the parser.
type Options struct {
	// Trivia, when true, attaches whitespace/comment trivia captured
	// between key syntactic anchors to interface, callback interface and
	// mixin nodes (not to namespaces, dictionaries or enums) and a leading
	// trivia run to members. When false, trivia fields are left as their zero
	// value; the AST shape is unchanged either way.
	Trivia bool
	// AllowNestedTypedefs, when true, permits `typedef` inside interface
	// bodies in addition to the top level.
	AllowNestedTypedefs bool
	// ConcatTypeNames is a documented no-op: multi-word primitive type names
	// ("unsigned long long") are always preserved as a single space-joined
	// ast.IDLType.Name, regardless of this flag. It exists for forward
	// compatibility with generators that may want component words instead.
	ConcatTypeNames bool
}

// parser holds all state for a single Parse call: the token stream, the
// name registry, and a stack describing the definition currently being
// parsed (used to prefix error messages).
type parser struct {
	s        *stream
	opts     Options
	registry map[string]string
	curStack []string
}

func newParser(toks []lexer.Lexeme, opts Options) *parser {
	return &parser{
		s:        newStream(toks),
		opts:     opts,
		registry: make(map[string]string),
	}
}

// Parse consumes tokens into an ordered list of top-level definitions. It
// returns a *ParseError (wrapped as error) on the first failure; there is
// no local recovery and no diagnostic accumulation.
func Parse(toks []lexer.Lexeme, opts Options) (file *ast.File, err error) {
	p := newParser(toks, opts)
	defer func() {
		if r := recover(); r != nil {
			if b, ok := r.(bailout); ok {
				file, err = nil, b.err
				return
			}
			panic(r)
		}
	}()
	return p.parseFile(), nil
}

// current returns a description of the definition currently being parsed,
// e.g. "partial interface Foo", for use in error message prefixes.
func (p *parser) current() string {
	if len(p.curStack) == 0 {
		return ""
	}
	return p.curStack[len(p.curStack)-1]
}

// enterDef pushes desc as the current definition description; the caller
// must run the returned func to pop it (typically via defer). setCurrent
// lets the caller refine the description in place, e.g. once a name has
// been parsed.
func (p *parser) enterDef(desc string) (pop func(), setCurrent func(string)) {
	p.curStack = append(p.curStack, desc)
	idx := len(p.curStack) - 1
	return func() {
			p.curStack = p.curStack[:idx]
		}, func(desc string) {
			p.curStack[idx] = desc
		}
}

// register inserts name into the process-local name registry under kind,
// failing if the name was already claimed by a prior top-level definition.
func (p *parser) register(name, kind string) {
	if existing, ok := p.registry[name]; ok {
		p.fail("The name %q of type %q is already seen", name, existing)
	}
	p.registry[name] = kind
}

// stripEscape applies the identifier escape rule: a leading underscore is
// dropped so that `_interface` consumes as the identifier "interface" and
// cannot trigger keyword dispatch (keyword checks compare the raw,
// unescaped text instead, see isKeyword).
func stripEscape(s string) string {
	if strings.HasPrefix(s, "_") {
		return s[1:]
	}
	return s
}

// --- token stream helpers -------------------------------------------------

func (p *parser) isKind(kind lexer.Kind) bool {
	cur, ok := p.s.peek()
	return ok && cur.Kind == kind
}

func (p *parser) isKeyword(kw string) bool {
	cur, ok := p.s.peek()
	return ok && cur.Kind == lexer.Identifier && cur.Text == kw
}

func (p *parser) isNextKeyword(kw string) bool {
	cur, ok := p.s.peekN(2)
	return ok && cur.Kind == lexer.Identifier && cur.Text == kw
}

func (p *parser) isOther(text string) bool {
	cur, ok := p.s.peek()
	return ok && cur.Kind == lexer.Other && cur.Text == text
}

// consume pops the next lexeme if it has the given kind.
func (p *parser) consume(kind lexer.Kind) (lexer.Lexeme, bool) {
	cur, ok := p.s.peek()
	if !ok || cur.Kind != kind {
		return lexer.Lexeme{}, false
	}
	l, _, _ := p.s.advance()
	return l, true
}

// consumeText pops the next lexeme if it matches both kind and text.
func (p *parser) consumeText(kind lexer.Kind, text string) (lexer.Lexeme, bool) {
	cur, ok := p.s.peek()
	if !ok || cur.Kind != kind || cur.Text != text {
		return lexer.Lexeme{}, false
	}
	l, _, _ := p.s.advance()
	return l, true
}

// tryKeyword consumes an identifier-kind lexeme matching kw exactly
// (unescaped: `_foo` never matches keyword "foo").
func (p *parser) tryKeyword(kw string) bool {
	_, ok := p.consumeText(lexer.Identifier, kw)
	return ok
}

func (p *parser) consumeKeyword(kw string) {
	if !p.tryKeyword(kw) {
		p.fail("Expected keyword %q", kw)
	}
}

// tryConsumeIdentifier consumes an identifier lexeme, applying the
// underscore-escape rule, whatever its text (so it also matches keywords
// used in identifier position, e.g. a dictionary field named `interface`,
// whether written as `interface` or `_interface`).
func (p *parser) tryConsumeIdentifier() (string, bool) {
	l, ok := p.consume(lexer.Identifier)
	if !ok {
		return "", false
	}
	return stripEscape(l.Text), true
}

func (p *parser) consumeIdentifier() string {
	name, ok := p.tryConsumeIdentifier()
	if !ok {
		p.fail("Expected identifier")
	}
	return name
}

// peekTrivia returns the run of whitespace/comment text immediately ahead,
// without consuming it, for -pea trivia attachment; it returns "" unless
// Options.Trivia is set.
func (p *parser) peekTrivia() string {
	if !p.opts.Trivia {
		return ""
	}
	e := p.s.pos
	var parts []string
	for e != nil {
		l := e.Value.(lexer.Lexeme)
		if l.Kind != lexer.Whitespace && l.Kind != lexer.Comment {
			break
		}
		parts = append(parts, l.Text)
		e = e.Next()
	}
	return strings.Join(parts, "")
}
