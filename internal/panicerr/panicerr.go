// Package panicerr converts panics and runtime.Goexit calls into error
// values, so that a fault while evaluating one statement is reported like any
// other error instead of ending the session.
package panicerr

import (
	"fmt"
	"runtime/debug"
)

// Fault is an abnormal end of a function run under Recover: either a
// recovered panic, or a call to runtime.Goexit.
type Fault struct {
	// Name says what was running, e.g. an input location.
	Name string

	// Exit is set when runtime.Goexit was called; Value and Stack are then nil.
	Exit bool

	Value interface{}
	Stack []byte
}

func (fault *Fault) Error() string {
	var what string
	if fault.Exit {
		what = "called runtime.Goexit"
	} else {
		what = fmt.Sprintf("panicked: %v", fault.Value)
	}
	if fault.Name == "" {
		return what
	}
	return fault.Name + " " + what
}

// Unwrap returns the panic value when it was an error.
func (fault *Fault) Unwrap() error {
	err, _ := fault.Value.(error)
	return err
}

// Recover runs f in a new goroutine, returning its error, or a *Fault if f
// panics or calls runtime.Goexit.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		done := false
		defer func() {
			if done {
				return
			}
			fault := &Fault{Name: name}
			if fault.Value = recover(); fault.Value != nil {
				fault.Stack = debug.Stack()
			} else {
				fault.Exit = true
			}
			errch <- fault
		}()
		err := f()
		done = true
		errch <- err
	}()
	return <-errch
}
