package errors

import (
	"fmt"

	"github.com/pontaoski/myr/types"
)

// UnexpectedToken is the syntax error raised on the first token that cannot
// continue any rule.
type UnexpectedToken struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Lexeme   string
	Location types.Span
}

func (e UnexpectedToken) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at token %s (%q), line %d, position %d. %s",
			e.Got, e.Lexeme, e.Location.From.Line, e.Location.From.Offset, e.Location)
	}
	return fmt.Sprintf("syntax error at token %s (%q), line %d, position %d: expected one of %s. %s",
		e.Got, e.Lexeme, e.Location.From.Line, e.Location.From.Offset, e.Expected, e.Location)
}

// UnexpectedEOF is raised when the input ends while a rule still expects a token.
type UnexpectedEOF struct {
	Expected []types.TokenKind
	Location types.Span
}

func (e UnexpectedEOF) Error() string {
	return fmt.Sprintf("syntax error: unexpected end of input, expected one of %s. %s", e.Expected, e.Location)
}

type InvalidNumber struct {
	Lexeme   string
	Location types.Span
}

func (e InvalidNumber) Error() string {
	return fmt.Sprintf("number %s out of range. %s", e.Lexeme, e.Location)
}

// IllegalCharacter is a lexical diagnostic; lexing continues past it.
type IllegalCharacter struct {
	Char     rune
	Location types.Span
}

func (e IllegalCharacter) Error() string {
	return fmt.Sprintf("illegal character %q. %s", e.Char, e.Location)
}
