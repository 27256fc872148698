// Package panicerr turns panics escaping a function into ordinary errors, so
// a public API boundary can promise to never crash its caller.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f on a fresh goroutine and returns its error.  A panic inside
// f comes back as an error carrying the panic value and stack; a stray
// runtime.Goexit comes back as an error naming the caller.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			// reached only when f neither returned nor paniced
			select {
			case errch <- exitError(name):
			default:
			}
		}()
		defer func() {
			if v := recover(); v != nil {
				select {
				case errch <- panicError{name: name, value: v, stack: debug.Stack()}:
				default:
				}
			}
		}()
		errch <- f()
	}()
	return <-errch
}

// IsPanic reports whether err came from a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// PanicStack returns the recovered panic's stacktrace, or "" if err is not a
// recovered panic.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}

type panicError struct {
	name  string
	value interface{}
	stack []byte
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

func (pe panicError) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.value)
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

type exitError string

func (name exitError) Error() string {
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}
