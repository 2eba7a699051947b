package main

// opTable maps every valid opcode to its implementation; each consumes its
// own operands, leaving ip at the next instruction unless it jumps.
var opTable = [...]func(vm *VM, ins *instruction){
	opAdd:         (*VM).add,
	opMul:         (*VM).mul,
	opInput:       (*VM).input,
	opOutput:      (*VM).output,
	opJumpIfTrue:  (*VM).jumpIfTrue,
	opJumpIfFalse: (*VM).jumpIfFalse,
	opLessThan:    (*VM).lessThan,
	opEquals:      (*VM).equals,
	opAdjustBase:  (*VM).adjustBase,
	opHalt:        (*VM).stop,
}

func (vm *VM) add(ins *instruction) {
	a, b := vm.operand(ins), vm.operand(ins)
	vm.stor(vm.dest(ins), a+b)
}

func (vm *VM) mul(ins *instruction) {
	a, b := vm.operand(ins), vm.operand(ins)
	vm.stor(vm.dest(ins), a*b)
}

func (vm *VM) input(ins *instruction) {
	addr := vm.dest(ins)
	vm.stor(addr, vm.read())
}

func (vm *VM) output(ins *instruction) {
	vm.write(vm.operand(ins))
}

func (vm *VM) jumpIfTrue(ins *instruction)  { vm.jumpIf(ins, true) }
func (vm *VM) jumpIfFalse(ins *instruction) { vm.jumpIf(ins, false) }

// jumpIf continues at the second operand when the first operand's truth
// matches want. Otherwise the target cell is skipped without being resolved.
func (vm *VM) jumpIf(ins *instruction, want bool) {
	if cond := vm.operand(ins); (cond != 0) == want {
		vm.ip = vm.operand(ins)
	} else {
		vm.ip++
	}
}

func (vm *VM) lessThan(ins *instruction) {
	a, b := vm.operand(ins), vm.operand(ins)
	vm.stor(vm.dest(ins), boolInt(a < b))
}

func (vm *VM) equals(ins *instruction) {
	a, b := vm.operand(ins), vm.operand(ins)
	vm.stor(vm.dest(ins), boolInt(a == b))
}

func (vm *VM) adjustBase(ins *instruction) {
	vm.rb += vm.operand(ins)
}

func (vm *VM) stop(ins *instruction) {
	vm.halt(nil)
}
