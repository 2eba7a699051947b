package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/hullpaint/internal/logio"
	"github.com/jcorbin/hullpaint/internal/panicerr"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	for _, vmt := range vmts {
		t.Run(vmt.name, vmt.run)
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	opts    []VMOption
	ops     []func(vm *VM)
	expect  []func(t *testing.T, vm *VM)
	timeout time.Duration
	wantErr error
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	vmt.opts = append(vmt.opts, opts...)
	return vmt
}

func (vmt vmTestCase) withImage(cells ...int64) vmTestCase {
	vmt.opts = append(vmt.opts, WithImage(cells...))
	return vmt
}

func (vmt vmTestCase) withIP(ip int64) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.ip = ip
	}))
	return vmt
}

func (vmt vmTestCase) withRB(rb int64) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.rb = rb
	}))
	return vmt
}

func (vmt vmTestCase) withMemAt(addr int64, values ...int64) vmTestCase {
	if len(values) != 0 {
		vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
			vm.Stor(addr, values...)
		}))
	}
	return vmt
}

func (vmt vmTestCase) withMemLimit(limit int64) vmTestCase {
	vmt.opts = append(vmt.opts, withMemLimit(limit))
	return vmt
}

func (vmt vmTestCase) withInput(values ...int64) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		in := append(Ints(nil), values...)
		vm.in = &in
	}))
	return vmt
}

func (vmt vmTestCase) do(ops ...func(vm *VM)) vmTestCase {
	vmt.ops = append(vmt.ops, ops...)
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectIP(ip int64) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, ip, vm.ip, "expected instruction pointer")
	})
	return vmt
}

func (vmt vmTestCase) expectRB(rb int64) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, rb, vm.rb, "expected relative base")
	})
	return vmt
}

func (vmt vmTestCase) expectSteps(steps uint64) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, steps, vm.Steps(), "expected step count")
	})
	return vmt
}

func (vmt vmTestCase) expectHalted(halted bool) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, halted, vm.Halted(), "expected halted state")
	})
	return vmt
}

func (vmt vmTestCase) expectMemAt(addr int64, values ...int64) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		buf := make([]int64, len(values))
		if !assert.NoError(t, vm.LoadInto(addr, buf), "unexpected load error @%v", addr) {
			return
		}
		assert.Equal(t, values, buf, "expected memory values @%v", addr)
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(values ...int64) vmTestCase {
	var out Ints
	vmt.opts = append(vmt.opts, WithTee(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, Ints(values), out, "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectDump(dump string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		var out strings.Builder
		vmDumper{
			vm:  vm,
			out: &out,
		}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	var trace []string
	vm := vmt.buildVM(t)
	WithLogf(func(mess string, args ...interface{}) {
		trace = append(trace, fmtLine(mess, args...))
	}).apply(vm)

	defer func() {
		if t.Failed() {
			for _, line := range trace {
				t.Logf("trace: %v", line)
			}
			vmt.dumpToTest(t, vm)
		}
	}()

	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := vmt.runVM(ctx, vm); vmt.wantErr != nil {
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected VM run error")
	}

	for _, expect := range vmt.expect {
		expect(t, vm)
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) error {
	if len(vmt.ops) == 0 {
		return vm.Run(ctx)
	}
	return panicerr.Recover("vmTestCase.ops", func() error {
		for _, op := range vmt.ops {
			op(vm)
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	const defaultMemLimit = 64 * 1024
	return New(withMemLimit(defaultMemLimit), VMOptions(vmt.opts...))
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	vmDumper{vm: vm, out: &lw}.dump()
}

//// utilities

func fmtLine(mess string, args ...interface{}) string {
	if len(args) == 0 {
		return mess
	}
	return strings.TrimSuffix(fmt.Sprintf(mess, args...), "\n")
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
