package main

import (
	"context"

	"github.com/jcorbin/hullpaint/internal/mem"
)

// VM is the machine: a flat, self-modifying memory of signed integers plus
// the registers that walk it. Everything a run mutates lives here, so that
// separate VMs never share state.
type VM struct {
	ioCore

	// Memory holds both the program and its data; instructions may rewrite
	// any cell, including themselves.
	mem.Cells

	ip int64 // instruction pointer, addresses the next instruction word
	rb int64 // relative base, only changed by the base instruction
	at int64 // address of the instruction being executed

	steps  uint64
	halted bool

	loadErr error
}

func (vm *VM) exec(ctx context.Context) {
	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}

	for {
		vm.haltif(ctx.Err())
		vm.step()
	}
}

// step decodes and executes one instruction.
func (vm *VM) step() {
	at := vm.ip
	vm.at = at
	ins, err := decode(at, vm.load(at))
	vm.haltif(err)
	vm.ip++
	vm.steps++
	if vm.logfn != nil {
		vm.logf("exec @%v %v -- rb:%v", at, ins, vm.rb)
	}
	opTable[ins.code](vm, &ins)
}
