package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Offset   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota

	PLUS
	MINUS
	STAR
	SLASH
	EQUALS
	EQEQ
	AND
	OR
	LT
	GT

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	EOS
	COMMA

	NUMBER
	IDENT

	PROGRAM
	MAIN
	INT
	FLOT
	CHAR
	VOID
	VARS
	FUNCTION
	RETURN
	READ
	WRITE
	IF
	THEN
	ELSE
	WHILE
	FOR
	TO
	DO
)

var kindNames = map[TokenKind]string{
	EOF:      "EOF",
	PLUS:     "PLUS",
	MINUS:    "MINUS",
	STAR:     "STAR",
	SLASH:    "SLASH",
	EQUALS:   "EQUALS",
	EQEQ:     "EQEQ",
	AND:      "AND",
	OR:       "OR",
	LT:       "LT",
	GT:       "GT",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	LBRACE:   "LBRACE",
	RBRACE:   "RBRACE",
	LBRACKET: "LBRACKET",
	RBRACKET: "RBRACKET",
	EOS:      "EOS",
	COMMA:    "COMMA",
	NUMBER:   "NUMBER",
	IDENT:    "IDENT",
	PROGRAM:  "PROGRAM",
	MAIN:     "MAIN",
	INT:      "INT",
	FLOT:     "FLOT",
	CHAR:     "CHAR",
	VOID:     "VOID",
	VARS:     "VARS",
	FUNCTION: "FUNCTION",
	RETURN:   "RETURN",
	READ:     "READ",
	WRITE:    "WRITE",
	IF:       "IF",
	THEN:     "THEN",
	ELSE:     "ELSE",
	WHILE:    "WHILE",
	FOR:      "FOR",
	TO:       "TO",
	DO:       "DO",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Token struct {
	Kind     TokenKind
	Location Span
}
