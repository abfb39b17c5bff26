package lexer

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/myr/errors"
	"github.com/pontaoski/myr/types"
)

func lexAll(t *testing.T, src string) ([]Lexeme, []error) {
	t.Helper()
	l := NewLexer(strings.NewReader(src), "test.myr", nil)
	return l.LexToEOF(), l.Errors()
}

func kinds(lexemes []Lexeme) []types.TokenKind {
	var ret []types.TokenKind
	for _, l := range lexemes {
		ret = append(ret, l.Token.Kind)
	}
	return ret
}

func texts(lexemes []Lexeme) []string {
	var ret []string
	for _, l := range lexemes {
		ret = append(ret, l.Text)
	}
	return ret
}

func sameKinds(a, b []types.TokenKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLexer(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []types.TokenKind
		texts []string
	}{
		{
			"header",
			"Program MyR; vars int a;",
			[]types.TokenKind{types.PROGRAM, types.IDENT, types.EOS, types.VARS, types.INT, types.IDENT, types.EOS},
			[]string{"Program", "MyR", ";", "vars", "int", "a", ";"},
		},
		{
			"operators",
			"+ - * / = == & | < > ( ) { } [ ] ; ,",
			[]types.TokenKind{
				types.PLUS, types.MINUS, types.STAR, types.SLASH, types.EQUALS, types.EQEQ,
				types.AND, types.OR, types.LT, types.GT,
				types.LPAREN, types.RPAREN, types.LBRACE, types.RBRACE, types.LBRACKET, types.RBRACKET,
				types.EOS, types.COMMA,
			},
			[]string{"+", "-", "*", "/", "=", "==", "&", "|", "<", ">", "(", ")", "{", "}", "[", "]", ";", ","},
		},
		{
			"longest match",
			"a==b===c",
			[]types.TokenKind{types.IDENT, types.EQEQ, types.IDENT, types.EQEQ, types.EQUALS, types.IDENT},
			[]string{"a", "==", "b", "==", "=", "c"},
		},
		{
			"assign at end",
			"x =",
			[]types.TokenKind{types.IDENT, types.EQUALS},
			[]string{"x", "="},
		},
		{
			"numbers split identifiers",
			"123abc 007",
			[]types.TokenKind{types.NUMBER, types.IDENT, types.NUMBER},
			[]string{"123", "abc", "007"},
		},
		{
			"identifiers",
			"_a1 b_2 __",
			[]types.TokenKind{types.IDENT, types.IDENT, types.IDENT},
			[]string{"_a1", "b_2", "__"},
		},
		{
			"keywords are case sensitive",
			"If if IF Program program",
			[]types.TokenKind{types.IF, types.IDENT, types.IDENT, types.PROGRAM, types.IDENT},
			[]string{"If", "if", "IF", "Program", "program"},
		},
		{
			"keyword prefix is an identifier",
			"fort dos iff",
			[]types.TokenKind{types.IDENT, types.IDENT, types.IDENT},
			[]string{"fort", "dos", "iff"},
		},
		{
			"tabs",
			"a\t\tb",
			[]types.TokenKind{types.IDENT, types.IDENT},
			[]string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexemes, errs := lexAll(t, tt.src)
			if len(errs) != 0 {
				t.Fatalf("unexpected diagnostics: %v", errs)
			}
			if !sameKinds(kinds(lexemes), tt.kinds) {
				t.Fatalf("kinds = %v, want %v", kinds(lexemes), tt.kinds)
			}
			if got := texts(lexemes); strings.Join(got, " ") != strings.Join(tt.texts, " ") {
				t.Fatalf("texts = %q, want %q", got, tt.texts)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	want := map[string]types.TokenKind{
		"Program":  types.PROGRAM,
		"main":     types.MAIN,
		"int":      types.INT,
		"flot":     types.FLOT,
		"char":     types.CHAR,
		"void":     types.VOID,
		"vars":     types.VARS,
		"function": types.FUNCTION,
		"return":   types.RETURN,
		"read":     types.READ,
		"write":    types.WRITE,
		"If":       types.IF,
		"then":     types.THEN,
		"else":     types.ELSE,
		"while":    types.WHILE,
		"for":      types.FOR,
		"to":       types.TO,
		"do":       types.DO,
	}

	for word, kind := range want {
		lexemes, _ := lexAll(t, word)
		if len(lexemes) != 1 || lexemes[0].Token.Kind != kind {
			t.Errorf("%s lexed as %s", word, repr.String(lexemes))
		}
	}
}

func TestPositions(t *testing.T) {
	lexemes, _ := lexAll(t, "ab  cd\n  ==")

	want := []types.Span{
		{
			From: types.Position{Line: 1, Column: 1, Offset: 0, Filename: "test.myr"},
			To:   types.Position{Line: 1, Column: 2, Offset: 1, Filename: "test.myr"},
		},
		{
			From: types.Position{Line: 1, Column: 5, Offset: 4, Filename: "test.myr"},
			To:   types.Position{Line: 1, Column: 6, Offset: 5, Filename: "test.myr"},
		},
		{
			From: types.Position{Line: 2, Column: 3, Offset: 9, Filename: "test.myr"},
			To:   types.Position{Line: 2, Column: 4, Offset: 10, Filename: "test.myr"},
		},
	}

	if len(lexemes) != len(want) {
		t.Fatalf("got %s", repr.String(lexemes))
	}
	for i := range want {
		if lexemes[i].Token.Location != want[i] {
			t.Errorf("token %d at %s, want %s", i, lexemes[i].Token.Location, want[i])
		}
	}
}

func TestLineBreaks(t *testing.T) {
	lexemes, errs := lexAll(t, "a\nb\r\nc\rd\n\n e")
	if len(errs) != 0 {
		t.Fatalf("line breaks produced diagnostics: %v", errs)
	}

	wantLines := []int{1, 2, 3, 4, 6}
	if len(lexemes) != len(wantLines) {
		t.Fatalf("got %s", repr.String(lexemes))
	}
	for i, line := range wantLines {
		if got := lexemes[i].Token.Location.From.Line; got != line {
			t.Errorf("%s on line %d, want %d", lexemes[i].Text, got, line)
		}
	}
	if col := lexemes[4].Token.Location.From.Column; col != 2 {
		t.Errorf("e at column %d, want 2", col)
	}
}

func TestOtherWhitespaceIsIllegal(t *testing.T) {
	lexemes, errs := lexAll(t, "a\fb\vc\x00d")

	if !sameKinds(kinds(lexemes), []types.TokenKind{types.IDENT, types.IDENT, types.IDENT, types.IDENT}) {
		t.Fatalf("got %s", repr.String(lexemes))
	}
	if len(errs) != 3 {
		t.Fatalf("got %d diagnostics, want 3: %v", len(errs), errs)
	}
}

func TestIllegalCharacter(t *testing.T) {
	var seen []error
	l := NewLexer(strings.NewReader("a @ b"), "test.myr", func(err error) {
		seen = append(seen, err)
	})
	lexemes := l.LexToEOF()

	if got := texts(lexemes); strings.Join(got, " ") != "a b" {
		t.Fatalf("tokens = %q, want a b", got)
	}
	if len(l.Errors()) != 1 || len(seen) != 1 {
		t.Fatalf("errors = %v, handler saw %v", l.Errors(), seen)
	}

	illegal, ok := l.Errors()[0].(errors.IllegalCharacter)
	if !ok {
		t.Fatalf("got %s", repr.String(l.Errors()[0]))
	}
	if illegal.Char != '@' {
		t.Errorf("char = %q, want '@'", illegal.Char)
	}
	if illegal.Location.From.Column != 3 || illegal.Location.From.Offset != 2 {
		t.Errorf("reported at %s", illegal.Location)
	}
	if !strings.Contains(illegal.Error(), "'@'") {
		t.Errorf("message %q does not name the character", illegal.Error())
	}
}

func TestIllegalCharactersSkippedOneAtATime(t *testing.T) {
	lexemes, errs := lexAll(t, "x@#=$1 é y")

	if !sameKinds(kinds(lexemes), []types.TokenKind{types.IDENT, types.EQUALS, types.NUMBER, types.IDENT}) {
		t.Fatalf("got %s", repr.String(lexemes))
	}

	var chars []rune
	for _, err := range errs {
		chars = append(chars, err.(errors.IllegalCharacter).Char)
	}
	if string(chars) != "@#$é" {
		t.Fatalf("diagnostics for %q, want %q", string(chars), "@#$é")
	}

	// é is two bytes wide but one column.
	y := lexemes[3].Token.Location.From
	if y.Column != 10 || y.Offset != 10 {
		t.Errorf("y at column %d offset %d, want 10 and 10", y.Column, y.Offset)
	}
}

func TestNoFloatLiteral(t *testing.T) {
	lexemes, errs := lexAll(t, "3.5")

	if got := texts(lexemes); strings.Join(got, " ") != "3 5" {
		t.Fatalf("tokens = %q, want 3 5", got)
	}
	if len(errs) != 1 || errs[0].(errors.IllegalCharacter).Char != '.' {
		t.Fatalf("diagnostics = %v", errs)
	}
}

func TestPeek(t *testing.T) {
	l := NewLexer(strings.NewReader("a b"), "", nil)

	tok, lit := l.Peek()
	if tok.Kind != types.IDENT || lit != "a" {
		t.Fatalf("peeked %s %q", tok.Kind, lit)
	}
	if !l.PeekIs(types.INT, types.IDENT) {
		t.Fatal("PeekIs did not match IDENT")
	}
	if _, lit := l.Lex(); lit != "a" {
		t.Fatalf("Lex after Peek returned %q", lit)
	}
	if _, lit := l.Lex(); lit != "b" {
		t.Fatalf("second Lex returned %q", lit)
	}
	for i := 0; i < 2; i++ {
		if tok, _ := l.Lex(); tok.Kind != types.EOF {
			t.Fatalf("got %s past the end", tok.Kind)
		}
	}
}

func TestLexExpecting(t *testing.T) {
	expectPanic := func(t *testing.T, src string, check func(r interface{})) {
		t.Helper()
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("LexExpecting did not panic")
			}
			check(r)
		}()
		l := NewLexer(strings.NewReader(src), "", nil)
		l.LexExpecting(types.IDENT, types.NUMBER)
	}

	t.Run("wrong kind", func(t *testing.T) {
		expectPanic(t, ";", func(r interface{}) {
			err, ok := r.(errors.UnexpectedToken)
			if !ok {
				t.Fatalf("got %s", repr.String(r))
			}
			if err.Got != types.EOS || err.Lexeme != ";" || len(err.Expected) != 2 {
				t.Errorf("got %s", repr.String(err))
			}
		})
	})

	t.Run("end of input", func(t *testing.T) {
		expectPanic(t, "  ", func(r interface{}) {
			if _, ok := r.(errors.UnexpectedEOF); !ok {
				t.Fatalf("got %s", repr.String(r))
			}
		})
	})

	t.Run("match", func(t *testing.T) {
		l := NewLexer(strings.NewReader("42"), "", nil)
		tok, lit := l.LexExpecting(types.IDENT, types.NUMBER)
		if tok.Kind != types.NUMBER || lit != "42" {
			t.Errorf("got %s %q", tok.Kind, lit)
		}
	})
}

func TestDigitsAndLettersAreASCII(t *testing.T) {
	lexemes, errs := lexAll(t, "x٣ 4٥ ñ")

	if got := texts(lexemes); strings.Join(got, " ") != "x 4" {
		t.Fatalf("tokens = %q, want x 4", got)
	}
	var chars []rune
	for _, err := range errs {
		chars = append(chars, err.(errors.IllegalCharacter).Char)
	}
	if string(chars) != "٣٥ñ" {
		t.Fatalf("diagnostics for %q, want %q", string(chars), "٣٥ñ")
	}
}
