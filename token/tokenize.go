// Package token tokenizes the concrete formula syntax.
package token

import (
	"bytes"
	"fmt"
)

var negBytes = []byte("¬")

// Tokenize scans src into tokens, appending to dst. Whitespace is not
// significant and never produces a token.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	d := posDoc.d
	i, n := 0, len(d)
	for i < n {
		c := d[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '&':
			dst = append(dst, Token{Type: TAnd, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '|':
			dst = append(dst, Token{Type: TOr, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '-':
			if i+1 >= n || d[i+1] != '>' {
				return nil, ExpectedErr("'>' after '-'", posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TImpl, Pos: posDoc.Pos(i), Bytes: d[i : i+2]})
			i += 2
		case bytes.HasPrefix(d[i:], negBytes):
			dst = append(dst, Token{Type: TNeg, Pos: posDoc.Pos(i), Bytes: d[i : i+len(negBytes)]})
			i += len(negBytes)
		case c >= 'a' && c <= 'z':
			j := i + 1
			for j < n && isVarByte(d[j]) {
				j++
			}
			dst = append(dst, Token{Type: TVar, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		default:
			return nil, UnexpectedErr(fmt.Sprintf("character %q", c), posDoc.Pos(i))
		}
	}
	return dst, nil
}

// isVarByte reports bytes allowed after the first character of a
// variable name: [a-z0-9_].
func isVarByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}
