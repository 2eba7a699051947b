package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/hullpaint/internal/mem"
	"github.com/jcorbin/hullpaint/internal/panicerr"
)

func (vm *VM) halt(err error) {
	vm.halted = true
	if ferr := vm.flush(); err == nil {
		err = ferr
	}
	if err == nil {
		vm.logf("halt after %v steps", vm.steps)
	} else {
		vm.logf("halt error: %v", err)
	}
	panicerr.Halt(err)
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

// fault halts with err annotated by the address of the executing instruction.
func (vm *VM) fault(err error) {
	vm.halt(execError{vm.at, err})
}

func (vm *VM) load(addr int64) int64 {
	val, err := vm.Load(addr)
	if err != nil {
		vm.fault(err)
	}
	return val
}

func (vm *VM) stor(addr int64, val int64) {
	if err := vm.Stor(addr, val); err != nil {
		vm.fault(err)
	}
	if vm.logfn != nil {
		vm.logf("stor %v -> @%v", val, addr)
	}
}

func (vm *VM) nextMode(ins *instruction) mode {
	m, err := ins.nextMode()
	vm.haltif(err)
	return m
}

func (vm *VM) read() int64 {
	val, err := vm.in.ReadInt()
	if err != nil {
		vm.fault(fmt.Errorf("input: %w", err))
	}
	return val
}

func (vm *VM) write(val int64) {
	if vm.logfn != nil {
		vm.logf("output %v", val)
	}
	if err := vm.out.WriteInt(val); err != nil {
		vm.fault(fmt.Errorf("output: %w", err))
	}
}

func (vm *VM) flush() error {
	if fl, ok := vm.out.(flusher); ok {
		return fl.Flush()
	}
	return nil
}

var (
	errHalted         = errors.New("machine already halted")
	errInvalidAddress = mem.ErrInvalidAddress
	errUnknownOpcode  = errors.New("unknown opcode")
	errMalformedMode  = errors.New("malformed mode digit")
)

type execError struct {
	at  int64
	err error
}

type opcodeError struct{ at, word int64 }

type modeError struct{ at, word, digit int64 }

func (ee execError) Error() string { return fmt.Sprintf("exec @%v: %v", ee.at, ee.err) }
func (ee execError) Unwrap() error { return ee.err }

func (oe opcodeError) Error() string {
	if oe.word < 0 {
		return fmt.Sprintf("unknown opcode in %v @%v", oe.word, oe.at)
	}
	return fmt.Sprintf("unknown opcode %v in %v @%v", oe.word%100, oe.word, oe.at)
}
func (oe opcodeError) Unwrap() error { return errUnknownOpcode }

func (me modeError) Error() string {
	return fmt.Sprintf("malformed mode digit %v in %v @%v", me.digit, me.word, me.at)
}
func (me modeError) Unwrap() error { return errMalformedMode }

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
