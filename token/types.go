package token

import "fmt"

type TokenType int

const (
	TVar TokenType = iota
	TNeg
	TAnd
	TOr
	TImpl
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TVar:    "TVar",
		TNeg:    "TNeg",
		TAnd:    "TAnd",
		TOr:     "TOr",
		TImpl:   "TImpl",
		TLParen: "TLParen",
		TRParen: "TRParen",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%q at %s", t.Bytes, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
