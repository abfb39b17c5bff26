package lexer

import (
	"bufio"
	"io"
	"strings"

	"github.com/pontaoski/myr/errors"
	"github.com/pontaoski/myr/types"
)

var keywords = map[string]types.TokenKind{
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

// '=' is missing on purpose, it may start '=='.
var punctuation = map[rune]types.TokenKind{
	'+': types.PLUS,
	'-': types.MINUS,
	'*': types.STAR,
	'/': types.SLASH,
	'&': types.AND,
	'|': types.OR,
	'<': types.LT,
	'>': types.GT,
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	'[': types.LBRACKET,
	']': types.RBRACKET,
	';': types.EOS,
	',': types.COMMA,
}

// Lexer hands out MyR tokens one at a time. Characters that start no token
// are reported and skipped; lexing never stops before EOF.
type Lexer struct {
	pos          types.Position
	last         types.Position
	reader       *bufio.Reader
	peeked       *types.Token
	peekedString string

	errh func(error)
	errs []error
}

// NewLexer creates a lexer reading from reader. errh, if not nil, is called
// for every lexical diagnostic as it is found.
func NewLexer(reader io.Reader, filename string, errh func(error)) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 1, Filename: filename},
		reader: bufio.NewReader(reader),
		errh:   errh,
	}
}

func (l *Lexer) read() (rune, types.Position, error) {
	r, size, err := l.reader.ReadRune()
	if err != nil {
		return 0, l.pos, err
	}

	at := l.pos
	l.last = l.pos
	l.pos.Column++
	l.pos.Offset += size
	return r, at, nil
}

func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos = l.last
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 1
}

// next consumes the following rune if it is want.
func (l *Lexer) next(want rune) bool {
	r, _, err := l.read()
	if err != nil {
		if err == io.EOF {
			return false
		}
		panic(err)
	}
	if r != want {
		l.backup()
		return false
	}
	return true
}

func (l *Lexer) illegal(r rune, at types.Position) {
	err := errors.IllegalCharacter{
		Char:     r,
		Location: types.SingleCharSpan(at),
	}
	l.errs = append(l.errs, err)
	if l.errh != nil {
		l.errh(err)
	}
}

// Errors returns the lexical diagnostics seen so far.
func (l *Lexer) Errors() []error {
	return l.errs
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func firstChar(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func otherChar(r rune) bool {
	return firstChar(r) || isDigit(r)
}

// lexWhile reads the longest run of runes matching pred.
func (l *Lexer) lexWhile(pred func(rune) bool) (types.Position, types.Position, string) {
	var lit strings.Builder
	var from, to types.Position

	for first := true; ; first = false {
		r, at, err := l.read()
		if err != nil {
			if err == io.EOF {
				return from, to, lit.String()
			}
			panic(err)
		}

		if !pred(r) {
			l.backup()
			return from, to, lit.String()
		}

		if first {
			from = at
		}
		to = at
		lit.WriteRune(r)
	}
}

func (l *Lexer) Peek() (types.Token, string) {
	if l.peeked != nil {
		return *l.peeked, l.peekedString
	}

	tok, str := l.Lex()
	l.peeked = &tok
	l.peekedString = str

	return tok, str
}

func (l *Lexer) PeekIs(k ...types.TokenKind) bool {
	token, _ := l.Peek()
	for _, kind := range k {
		if token.Kind == kind {
			return true
		}
	}

	return false
}

// LexExpecting consumes the next token and panics with a syntax error
// unless it is one of k.
func (l *Lexer) LexExpecting(k ...types.TokenKind) (types.Token, string) {
	token, lit := l.Lex()
	for _, kind := range k {
		if token.Kind == kind {
			return token, lit
		}
	}

	if token.Kind == types.EOF {
		panic(errors.UnexpectedEOF{
			Expected: k,
			Location: token.Location,
		})
	}

	panic(errors.UnexpectedToken{
		Expected: k,
		Got:      token.Kind,
		Lexeme:   lit,
		Location: token.Location,
	})
}

func (l *Lexer) Lex() (types.Token, string) {
	if l.peeked != nil {
		defer func() { l.peeked = nil }()
		return *l.peeked, l.peekedString
	}

	for {
		r, at, err := l.read()
		if err != nil {
			if err == io.EOF {
				return types.Token{Kind: types.EOF, Location: types.SingleCharSpan(l.pos)}, ""
			}
			panic(err)
		}

		switch r {
		case ' ', '\t':
			continue
		case '\n':
			l.newline()
			continue
		case '\r':
			l.next('\n')
			l.newline()
			continue
		case '=':
			if l.next('=') {
				return types.Token{Kind: types.EQEQ, Location: types.Span{From: at, To: l.last}}, "=="
			}
			return types.Token{Kind: types.EQUALS, Location: types.SingleCharSpan(at)}, "="
		}

		if kind, ok := punctuation[r]; ok {
			return types.Token{Kind: kind, Location: types.SingleCharSpan(at)}, string(r)
		}

		switch {
		case isDigit(r):
			l.backup()
			from, to, lit := l.lexWhile(isDigit)

			return types.Token{Kind: types.NUMBER, Location: types.Span{From: from, To: to}}, lit
		case firstChar(r):
			l.backup()
			from, to, lit := l.lexWhile(otherChar)

			if kind, ok := keywords[lit]; ok {
				return types.Token{Kind: kind, Location: types.Span{From: from, To: to}}, lit
			}

			return types.Token{Kind: types.IDENT, Location: types.Span{From: from, To: to}}, lit
		}

		l.illegal(r, at)
	}
}

// Lexeme is a token together with the text it was lexed from.
type Lexeme struct {
	Token types.Token
	Text  string
}

// LexToEOF drains the lexer, EOF excluded.
func (l *Lexer) LexToEOF() (ret []Lexeme) {
	t, s := l.Lex()
	for t.Kind != types.EOF {
		ret = append(ret, Lexeme{
			Token: t,
			Text:  s,
		})
		t, s = l.Lex()
	}
	return
}
