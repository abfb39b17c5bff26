package types

import "testing"

func TestTokenKindString(t *testing.T) {
	for kind := EOF; kind <= DO; kind++ {
		if kindNames[kind] == "" {
			t.Errorf("token kind %d has no name", int(kind))
		}
	}
	if got := EQEQ.String(); got != "EQEQ" {
		t.Errorf("got %q", got)
	}
	if got := TokenKind(500).String(); got != "TokenKind(500)" {
		t.Errorf("got %q", got)
	}
}

func TestSpanString(t *testing.T) {
	s := Span{
		From: Position{Line: 2, Column: 3, Filename: "a.myr"},
		To:   Position{Line: 2, Column: 7, Filename: "a.myr"},
	}
	if got := s.String(); got != "a.myr:2:3-2:7" {
		t.Errorf("got %q", got)
	}
	if got := (Position{Line: 1, Column: 1}).String(); got != "<unknown>:1:1" {
		t.Errorf("got %q", got)
	}
}
