package main

// VMOption configures a VM; see New.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order.
func VMOptions(opts ...VMOption) VMOption {
	var all vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withInput(constInput(0)),
	withOutput(discardOutput{}),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ Input }
type outputOption struct{ Output }
type teeOption struct{ Output }
type memLimitOption int64
type pageSizeOption int64
type imageOption []int64

func withInput(in Input) inputOption          { return inputOption{in} }
func withOutput(out Output) outputOption      { return outputOption{out} }
func withTee(out Output) teeOption            { return teeOption{out} }
func withMemLimit(limit int64) memLimitOption { return memLimitOption(limit) }
func withPageSize(size int64) pageSizeOption  { return pageSizeOption(size) }
func withImage(cells ...int64) imageOption    { return imageOption(cells) }

func (i inputOption) apply(vm *VM) {
	vm.in = i.Input
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.flush()
	}
	vm.out = o.Output
}

func (o teeOption) apply(vm *VM) {
	vm.out = multiOutput(vm.out, o.Output)
}

func (lim memLimitOption) apply(vm *VM) {
	vm.Limit = int64(lim)
}

func (size pageSizeOption) apply(vm *VM) {
	vm.PageSize = int64(size)
}

// Loading an image resets memory and registers; a failed load is reported by
// the next Run.
func (img imageOption) apply(vm *VM) {
	vm.Cells.Reset()
	vm.ip, vm.rb, vm.at = 0, 0, 0
	vm.steps, vm.halted = 0, false
	vm.loadErr = vm.Stor(0, img...)
}
