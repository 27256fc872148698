package forthwith

import "errors"

// The four error kinds of the interpreter proper.  The eval loop stops at
// the first one and returns it unchanged; none is recoverable within the
// current Eval call.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownWord    = errors.New("unknown word")
	ErrInvalidWord    = errors.New("invalid word")
)

// ErrStepLimit is returned only when a limit set via WithStepLimit is
// exceeded.  Without the option an unbounded expansion such as
// ": X X ; X" simply never terminates.
var ErrStepLimit = errors.New("step limit exceeded")
