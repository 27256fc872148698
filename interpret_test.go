package forthwith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	for _, tc := range []struct {
		name string
		code string
		want string
	}{
		{"single result", "1 2 +", "3"},
		{"stack rendered top first", "1 2 3", "3<br/>2<br/>1"},
		{"empty stack", "", ""},
		{"drop everything", "1 DROP", ""},
		{"compiled word", ": SQ DUP * ; 4 SQ", "16"},

		{"division by zero", "5 0 /", "Error: division by zero"},
		{"stack underflow", "1 +", "Error: stack underflow"},
		{"unknown word", "FOO", "Error: unknown word"},
		{"invalid word", ": X DUP", "Error: invalid word"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Interpret(tc.code))
		})
	}
}

func TestInterpret_calls_are_independent(t *testing.T) {
	assert.Equal(t, "4", Interpret(": DOUBLE DUP + ; 2 DOUBLE"))
	assert.Equal(t, "Error: unknown word", Interpret("2 DOUBLE"),
		"definitions must not leak between calls")
}

func TestErrorString_default(t *testing.T) {
	assert.Equal(t, "Error: invalid word", errorString(assert.AnError),
		"unrecognized errors render as invalid word")
}
