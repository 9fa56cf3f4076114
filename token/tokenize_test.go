package token

import (
	"errors"
	"testing"
)

func TestTokenizeOK(t *testing.T) {
	tests := []struct {
		in    string
		types []TokenType
	}{
		{in: `a`, types: []TokenType{TVar}},
		{in: `abc_1`, types: []TokenType{TVar}},
		{in: `¬a`, types: []TokenType{TNeg, TVar}},
		{in: `(a|b)`, types: []TokenType{TLParen, TVar, TOr, TVar, TRParen}},
		{in: `(a&b)`, types: []TokenType{TLParen, TVar, TAnd, TVar, TRParen}},
		{in: `(a->b)`, types: []TokenType{TLParen, TVar, TImpl, TVar, TRParen}},
		{in: ` ( a -> b ) `, types: []TokenType{TLParen, TVar, TImpl, TVar, TRParen}},
		{in: `¬¬a`, types: []TokenType{TNeg, TNeg, TVar}},
		{in: `((p_1&q2)->¬r)`, types: []TokenType{
			TLParen, TLParen, TVar, TAnd, TVar, TRParen, TImpl, TNeg, TVar, TRParen,
		}},
		{in: ``, types: nil},
		{in: "\t\n ", types: nil},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.types) {
			t.Errorf("Tokenize(%q): got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for i, tok := range toks {
			if tok.Type != tt.types[i] {
				t.Errorf("Tokenize(%q)[%d]: got %s, want %s", tt.in, i, tok.Type, tt.types[i])
			}
		}
	}
}

func TestTokenizeVarBytes(t *testing.T) {
	toks, err := Tokenize(nil, []byte("(foo_9->bar)"))
	if err != nil {
		t.Fatal(err)
	}
	if got := toks[1].String(); got != "foo_9" {
		t.Errorf("got %q, want foo_9", got)
	}
	if got := toks[3].String(); got != "bar" {
		t.Errorf("got %q, want bar", got)
	}
}

func TestTokenizeErr(t *testing.T) {
	tests := []string{
		`A`,
		`(a + b)`,
		`a-b`,
		`-`,
		`1a`,
		`(a~b)`,
	}
	for _, in := range tests {
		_, err := Tokenize(nil, []byte(in))
		if err == nil {
			t.Errorf("Tokenize(%q): expected error", in)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("Tokenize(%q): error %v is not a TokenizeErr", in, err)
		}
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("(a&\nb)"))
	if err != nil {
		t.Fatal(err)
	}
	// b starts on line 2
	b := toks[3]
	if b.Type != TVar || b.String() != "b" {
		t.Fatalf("unexpected token %s", b.Info())
	}
	if ln, col := b.Pos.D.LineCol(b.Pos.I); ln != 1 || col != 0 {
		t.Errorf("got %d:%d, want 1:0", ln, col)
	}
}
