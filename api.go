package main

import (
	"context"

	"github.com/jcorbin/hullpaint/internal/panicerr"
)

// New creates a VM; by default it reads 0 for every input, discards all
// output, and has empty (all zero) memory.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes instructions until the program halts, returning nil after a
// halt instruction. Any fault (invalid address, unknown opcode, malformed
// mode digit, input or output failure) or context cancellation stops the
// machine and is returned. A stopped machine does not run again.
func (vm *VM) Run(ctx context.Context) error {
	if vm.loadErr != nil {
		return vm.loadErr
	}
	if vm.halted {
		return errHalted
	}
	return panicerr.Recover("VM", func() error {
		vm.exec(ctx)
		return nil
	})
}

// Steps returns how many instructions have been executed.
func (vm *VM) Steps() uint64 { return vm.steps }

// Halted returns true once the machine has stopped.
func (vm *VM) Halted() bool { return vm.halted }

func WithInput(in Input) VMOption       { return withInput(in) }
func WithOutput(out Output) VMOption    { return withOutput(out) }
func WithTee(out Output) VMOption       { return withTee(out) }
func WithImage(cells ...int64) VMOption { return withImage(cells...) }
func WithMemLimit(limit int64) VMOption { return withMemLimit(limit) }
func WithPageSize(size int64) VMOption  { return withPageSize(size) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
