package main

import (
	"io"

	"github.com/jcorbin/hullpaint/internal/flushio"
)

// Input supplies the values read by the input instruction.
type Input interface {
	ReadInt() (int64, error)
}

// Output receives the values emitted by the output instruction.
type Output interface {
	WriteInt(val int64) error
}

type flusher interface {
	Flush() error
}

type ioCore struct {
	in  Input
	out Output

	logfn func(mess string, args ...interface{})
}

func (ioc *ioCore) withLogPrefix(prefix string) func() {
	logfn := ioc.logfn
	ioc.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		ioc.logfn = logfn
	}
}

func (ioc ioCore) logf(mess string, args ...interface{}) {
	if ioc.logfn != nil {
		ioc.logfn(mess, args...)
	}
}

// Ints is a slice backed Input and Output: reads consume values from the
// front, writes append to the back. Reading when empty returns io.EOF.
type Ints []int64

// ReadInt removes and returns the first value.
func (is *Ints) ReadInt() (int64, error) {
	if len(*is) == 0 {
		return 0, io.EOF
	}
	val := (*is)[0]
	*is = (*is)[1:]
	return val, nil
}

// WriteInt appends val.
func (is *Ints) WriteInt(val int64) error {
	*is = append(*is, val)
	return nil
}

// constInput reads the same value forever.
type constInput int64

func (ci constInput) ReadInt() (int64, error) { return int64(ci), nil }

type discardOutput struct{}

func (discardOutput) WriteInt(int64) error { return nil }

// textOutput writes values as decimal lines.
type textOutput struct{ *flushio.IntWriter }

func newTextOutput(w io.Writer) textOutput {
	return textOutput{flushio.NewIntWriter(w)}
}

type outputs []Output

func (outs outputs) WriteInt(val int64) error {
	for _, out := range outs {
		if err := out.WriteInt(val); err != nil {
			return err
		}
	}
	return nil
}

func (outs outputs) Flush() (err error) {
	for _, out := range outs {
		if fl, ok := out.(flusher); ok {
			if ferr := fl.Flush(); err == nil {
				err = ferr
			}
		}
	}
	return err
}

func appendOutput(all outputs, some ...Output) outputs {
	for _, one := range some {
		if many, ok := one.(outputs); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	return all
}

func multiOutput(a, b Output) Output {
	switch outs := appendOutput(nil, a, b); len(outs) {
	case 0:
		return nil
	case 1:
		return outs[0]
	default:
		return outs
	}
}
