package forthwith

import (
	"errors"
	"strconv"
	"strings"

	"github.com/forthwith/forthwith/internal/panicerr"
)

// New constructs a VM with the built-in dictionary seeded and any options
// applied.
func New(opts ...VMOption) *VM {
	vm := &VM{words: builtinTable()}
	vm.colon, _ = vm.words.lookup(colonName)
	VMOptions(opts...).apply(vm)
	return vm
}

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// WithStepLimit bounds how many evaluator steps one Eval call may take,
// turning an otherwise unbounded macro expansion into ErrStepLimit.  Zero
// means no limit.
func WithStepLimit(limit int) VMOption { return stepLimitOption(limit) }

// Interpret evaluates code in a fresh single-use VM and renders the outcome
// for an embedding host: on success the final stack, top first, joined with
// "<br/>"; on failure a fixed string per error kind.  It never panics.
func Interpret(code string) string {
	vm := New()
	err := panicerr.Recover("interpret", func() error {
		return vm.Eval(code)
	})
	if err != nil {
		return errorString(err)
	}

	stack := vm.Stack()
	parts := make([]string, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		parts = append(parts, strconv.Itoa(stack[i]))
	}
	return strings.Join(parts, "<br/>")
}

func errorString(err error) string {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return "Error: division by zero"
	case errors.Is(err, ErrStackUnderflow):
		return "Error: stack underflow"
	case errors.Is(err, ErrUnknownWord):
		return "Error: unknown word"
	default:
		return "Error: invalid word"
	}
}
