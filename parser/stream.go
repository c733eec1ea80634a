package parser

import (
	"container/list"
	"strings"

	"github.com/go-webidl/webidl/lexer"
)

// stream is the parser's token-stream primitive: a list of every lexeme
// (including whitespace and comments) with a cursor into it. Peeking never
// mutates the cursor; advancing does, and also drains and counts the
// whitespace/comment trivia a meaningful token was preceded by. Saving and
// restoring a mark rolls the cursor (and line counter) back exactly,
// which is how the parser's speculative productions backtrack.
type stream struct {
	elems *list.List
	pos   *list.Element
	line  int
}

func newStream(toks []lexer.Lexeme) *stream {
	l := list.New()
	for _, t := range toks {
		l.PushBack(t)
	}
	return &stream{elems: l, pos: l.Front(), line: 1}
}

type mark struct {
	pos  *list.Element
	line int
}

func (s *stream) save() mark { return mark{s.pos, s.line} }

func (s *stream) restore(m mark) { s.pos, s.line = m.pos, m.line }

// nonTrivia walks forward from e, without mutating the stream, to the next
// element that is not whitespace or comment.
func nonTrivia(e *list.Element) *list.Element {
	for e != nil {
		l := e.Value.(lexer.Lexeme)
		if l.Kind != lexer.Whitespace && l.Kind != lexer.Comment {
			return e
		}
		e = e.Next()
	}
	return nil
}

// peek returns the next meaningful lexeme without consuming it.
func (s *stream) peek() (lexer.Lexeme, bool) {
	e := nonTrivia(s.pos)
	if e == nil {
		return lexer.Lexeme{}, false
	}
	return e.Value.(lexer.Lexeme), true
}

// peekN returns the n-th meaningful lexeme ahead (n == 1 is peek itself),
// without consuming anything.
func (s *stream) peekN(n int) (lexer.Lexeme, bool) {
	e := s.pos
	for i := 0; i < n; i++ {
		e = nonTrivia(e)
		if e == nil {
			return lexer.Lexeme{}, false
		}
		if i < n-1 {
			e = e.Next()
		}
	}
	return e.Value.(lexer.Lexeme), true
}

// upcoming returns up to n meaningful lexemes ahead, for error reporting.
func (s *stream) upcoming(n int) []lexer.Lexeme {
	var out []lexer.Lexeme
	e := s.pos
	for len(out) < n {
		e = nonTrivia(e)
		if e == nil {
			break
		}
		out = append(out, e.Value.(lexer.Lexeme))
		e = e.Next()
	}
	return out
}

// drainTrivia consumes any whitespace/comment lexemes at the head of the
// stream, advancing the line counter by the number of '\n' runes seen, and
// returns their concatenated text.
func (s *stream) drainTrivia() string {
	var parts []string
	for s.pos != nil {
		l := s.pos.Value.(lexer.Lexeme)
		if l.Kind != lexer.Whitespace && l.Kind != lexer.Comment {
			break
		}
		s.line += strings.Count(l.Text, "\n")
		parts = append(parts, l.Text)
		s.pos = s.pos.Next()
	}
	return strings.Join(parts, "")
}

// advance drains trivia then consumes the next meaningful lexeme, returning
// it along with the drained trivia text.
func (s *stream) advance() (lexer.Lexeme, string, bool) {
	trivia := s.drainTrivia()
	if s.pos == nil {
		return lexer.Lexeme{}, trivia, false
	}
	l := s.pos.Value.(lexer.Lexeme)
	s.pos = s.pos.Next()
	return l, trivia, true
}

// atEOF reports whether no meaningful lexeme remains.
func (s *stream) atEOF() bool {
	_, ok := s.peek()
	return !ok
}
