package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRefineWhitespace(t *testing.T) {
	got := Refine(Lexeme{Kind: Whitespace, Text: "  \n"})
	want := []TriviaPiece{{Kind: TriviaWS, Text: "  \n"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Refine mismatch (-want +got):\n%s", diff)
	}
}

func TestRefineCommentRun(t *testing.T) {
	got := Refine(Lexeme{Kind: Comment, Text: "// a\n// b"})
	want := []TriviaPiece{
		{Kind: TriviaLineComment, Text: "// a"},
		{Kind: TriviaWS, Text: "\n"},
		{Kind: TriviaLineComment, Text: "// b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Refine mismatch (-want +got):\n%s", diff)
	}
}

func TestRefineBlockComment(t *testing.T) {
	got := Refine(Lexeme{Kind: Comment, Text: "/* a\nb */"})
	want := []TriviaPiece{{Kind: TriviaBlockComment, Text: "/* a\nb */"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Refine mismatch (-want +got):\n%s", diff)
	}
}

func TestRefinePanicsOnNonTrivia(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Refine to panic on a non-trivia lexeme")
		}
	}()
	Refine(Lexeme{Kind: Identifier, Text: "foo"})
}
