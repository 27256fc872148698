package forthwith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	compileFrom := func(input string) (*VM, error) {
		vm := New()
		vm.queue = tokenize(input)
		return vm, vm.compile()
	}

	t.Run("binds body references to table indices", func(t *testing.T) {
		vm, err := compileFrom("SQ DUP * ;")
		require.NoError(t, err)

		index, found := vm.words.lookup("SQ")
		require.True(t, found)
		w := vm.words.words[index]
		assert.Equal(t, wordExpand, w.kind)

		dup, _ := vm.words.lookup("DUP")
		mul, _ := vm.words.lookup("*")
		assert.Equal(t, []token{refToken(dup), refToken(mul)}, w.body)
	})

	t.Run("numbers copied into body unchanged", func(t *testing.T) {
		vm, err := compileFrom("INC 1 + ;")
		require.NoError(t, err)

		index, _ := vm.words.lookup("INC")
		add, _ := vm.words.lookup("+")
		assert.Equal(t, []token{numberToken(1), refToken(add)}, vm.words.words[index].body)
	})

	t.Run("empty body is fine", func(t *testing.T) {
		vm, err := compileFrom("NOTHING ;")
		require.NoError(t, err)
		index, _ := vm.words.lookup("NOTHING")
		assert.Empty(t, vm.words.words[index].body)
	})

	t.Run("missing name", func(t *testing.T) {
		vm, err := compileFrom("")
		assert.ErrorIs(t, err, ErrInvalidWord)
		assert.Equal(t, builtinCount, len(vm.words.words))
	})

	t.Run("number as name", func(t *testing.T) {
		vm, err := compileFrom("5 DUP ;")
		assert.ErrorIs(t, err, ErrInvalidWord)
		assert.Equal(t, builtinCount, len(vm.words.words))
	})

	t.Run("unterminated", func(t *testing.T) {
		vm, err := compileFrom("X DUP")
		assert.ErrorIs(t, err, ErrInvalidWord)
		assert.Equal(t, builtinCount, len(vm.words.words), "no partial entry")
		assert.Equal(t, 0, vm.queue.len(), "queue drained")
	})

	t.Run("unresolved body word", func(t *testing.T) {
		vm, err := compileFrom("X MISSING ;")
		assert.ErrorIs(t, err, ErrInvalidWord)
		assert.Equal(t, builtinCount, len(vm.words.words))
	})
}
