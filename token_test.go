package forthwith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		toks  []token
	}{
		{"empty", "", nil},
		{"blank", " \t\n", nil},
		{"number", "42", []token{numberToken(42)}},
		{"negative number", "-42", []token{numberToken(-42)}},
		{"plus-signed number", "+42", []token{numberToken(42)}},
		{"word upper-cased", "dup", []token{wordToken("DUP")}},
		{"mixed", "1 2 swap", []token{numberToken(1), numberToken(2), wordToken("SWAP")}},
		{"control chars split", "1\x002\x013", []token{numberToken(1), numberToken(2), numberToken(3)}},
		{"tabs and newlines split", "1\t2\n3", []token{numberToken(1), numberToken(2), numberToken(3)}},
		{"fraction is a word", "1.5", []token{wordToken("1.5")}},
		{"overflow is a word", "99999999999999999999999999", []token{wordToken("99999999999999999999999999")}},
		{"bare sign is a word", "-", []token{wordToken("-")}},
		{"colon and semicolon are words", ": x ;", []token{wordToken(":"), wordToken("X"), wordToken(";")}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q := tokenize(tc.input)
			var got []token
			for {
				tok, ok := q.popFront()
				if !ok {
					break
				}
				got = append(got, tok)
			}
			assert.Equal(t, tc.toks, got)
		})
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "DUP", wordToken("DUP").String())
	assert.Equal(t, "@3", refToken(3).String())
	assert.Equal(t, "-7", numberToken(-7).String())
}
