// Package panicerr runs a machine loop in its own goroutine so that it may
// stop from arbitrarily deep inside a step: Halt unwinds to Recover, which
// returns the halt's error. Any other panic, or a runtime.Goexit call, is
// returned as an error too rather than crashing the caller.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Halt stops the function running under Recover, which returns err; a nil
// err is a clean stop. Calling Halt outside of Recover is an ordinary panic.
func Halt(err error) {
	panic(halt{err})
}

type halt struct{ err error }

// Recover runs f in a new goroutine and returns its error. A Halt called
// within f returns the halted error, while other panics and runtime.Goexit
// calls return an error naming the run.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer stoppedBy(errch, exitError(name))
		defer recoverHalt(name, errch)
		errch <- f()
	}()
	return <-errch
}

// stoppedBy sends err unless a result was already sent.
func stoppedBy(errch chan<- error, err error) {
	select {
	case errch <- err:
	default:
	}
}

func recoverHalt(name string, errch chan<- error) {
	e := recover()
	if e == nil {
		return
	}
	if h, ok := e.(halt); ok {
		stoppedBy(errch, h.err)
		return
	}
	stoppedBy(errch, panicError{
		name:  name,
		e:     e,
		stack: debug.Stack(),
	})
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string {
	return fmt.Sprint(pe)
}

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value when it was itself an error.
func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}

// IsPanic returns true if err indicates a recovered goroutine panic, as
// opposed to a Halt.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// goroutine panic.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
