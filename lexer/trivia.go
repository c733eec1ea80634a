package lexer

// TriviaKind classifies a refined trivia piece within a whitespace/comment
// lexeme.
type TriviaKind string

const (
	TriviaWS        TriviaKind = "ws"
	TriviaLineComment TriviaKind = "line-comment"
	TriviaBlockComment TriviaKind = "multiline-comment"
)

// TriviaPiece is one fine-grained trivia unit produced by Refine.
type TriviaPiece struct {
	Kind TriviaKind
	Text string
}

// Refine re-lexes a single Whitespace or Comment lexeme into its finer
// ws/line-comment/multiline-comment sub-tokens, in order. It panics if
// called on a lexeme of any other kind: callers are expected to have
// already filtered to trivia.
func Refine(l Lexeme) []TriviaPiece {
	switch l.Kind {
	case Whitespace:
		return []TriviaPiece{{Kind: TriviaWS, Text: l.Text}}
	case Comment:
		return refineCommentRun(l.Text)
	default:
		panic("lexer: Refine called on a non-trivia lexeme")
	}
}

func refineCommentRun(s string) []TriviaPiece {
	var out []TriviaPiece
	for len(s) > 0 {
		if m := blockCommentRe.FindString(s); m != "" {
			out = append(out, TriviaPiece{Kind: TriviaBlockComment, Text: m})
			s = s[len(m):]
			continue
		}
		if m := lineCommentRe.FindString(s); m != "" {
			out = append(out, TriviaPiece{Kind: TriviaLineComment, Text: m})
			s = s[len(m):]
			continue
		}
		if m := wsRe.FindString(s); m != "" {
			out = append(out, TriviaPiece{Kind: TriviaWS, Text: m})
			s = s[len(m):]
			continue
		}
		// Should not happen for a well-formed comment-run lexeme.
		break
	}
	return out
}
