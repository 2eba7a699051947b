package main

// resolve returns the value of the operand cell at addr under mode m, along
// with the address just past that cell.
func (vm *VM) resolve(m mode, addr int64) (val, next int64) {
	raw := vm.load(addr)
	switch m {
	case modeImmediate:
		val = raw
	case modeRelative:
		val = vm.load(raw + vm.rb)
	default:
		val = vm.load(raw)
	}
	return val, addr + 1
}

// operand consumes the next operand of ins as a value.
func (vm *VM) operand(ins *instruction) (val int64) {
	val, vm.ip = vm.resolve(vm.nextMode(ins), vm.ip)
	return val
}

// dest consumes the next operand of ins as an address to write to. The
// operand cell itself is the address: it is fetched as if immediate, and
// only then is its mode digit consulted, adding the relative base in
// relative mode.
func (vm *VM) dest(ins *instruction) (addr int64) {
	addr, vm.ip = vm.resolve(modeImmediate, vm.ip)
	if vm.nextMode(ins) == modeRelative {
		addr += vm.rb
	}
	return addr
}
