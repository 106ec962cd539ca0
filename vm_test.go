package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/plenty/internal/logio"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
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
	program []string
	ops     []func(vm *VM) error
	expect  []func(t *testing.T, run *vmTestRun)
	wantErr error

	exclusive bool
}

// vmTestRun is what expectations get to look at after a test case runs.
type vmTestRun struct {
	*VM
	result []string
	trace  []string
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	vmt.opts = append(vmt.opts, opts...)
	return vmt
}

func (vmt vmTestCase) withStack(values ...Token) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.stack = append(vm.stack, values...)
	}))
	return vmt
}

func (vmt vmTestCase) withFunc(name string, body ...string) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.funcs[name] = texts(body...)
	}))
	return vmt
}

func (vmt vmTestCase) withLiteralMode() vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.literal = true
	}))
	return vmt
}

func (vmt vmTestCase) withProgram(lines ...string) vmTestCase {
	vmt.program = append(vmt.program, lines...)
	return vmt
}

func (vmt vmTestCase) do(ops ...func(vm *VM) error) vmTestCase {
	vmt.ops = append(vmt.ops, ops...)
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectStack(values ...Token) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, run *vmTestRun) {
		if len(values) == 0 {
			assert.Empty(t, run.Stack(), "expected empty stack")
		} else {
			assert.Equal(t, values, run.Stack(), "expected stack values")
		}
	})
	return vmt
}

func (vmt vmTestCase) expectFunc(name string, body ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, run *vmTestRun) {
		if assert.Contains(t, run.funcs, name, "expected function to be defined") {
			assert.Equal(t, texts(body...), run.funcs[name], "expected :%v body", name)
		}
	})
	return vmt
}

func (vmt vmTestCase) expectNoFunc(name string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, run *vmTestRun) {
		assert.NotContains(t, run.funcs, name, "expected function to be undefined")
	})
	return vmt
}

func (vmt vmTestCase) expectFuncs(repr string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, run *vmTestRun) {
		assert.Equal(t, repr, formatFuncs(run.funcs), "expected function registry")
	})
	return vmt
}

func (vmt vmTestCase) expectLiteral(literal bool) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, run *vmTestRun) {
		assert.Equal(t, literal, run.Literal(), "expected literal mode")
	})
	return vmt
}

func (vmt vmTestCase) expectResult(result ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, run *vmTestRun) {
		assert.Equal(t, result, run.result, "expected program result")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithOutput(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, run *vmTestRun) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectTrace(substr string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, run *vmTestRun) {
		assert.Contains(t, strings.Join(run.trace, "\n"), substr, "expected trace log")
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	run := vmTestRun{}
	opts := append([]VMOption{
		WithLogf(func(mess string, args ...interface{}) {
			run.trace = append(run.trace, fmt.Sprintf(mess, args...))
		}),
	}, vmt.opts...)
	run.VM = New(opts...)

	defer func() {
		if t.Failed() {
			vmt.dumpToTest(t, &run)
		}
	}()

	if err := vmt.runVM(&run); vmt.wantErr != nil {
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected VM error")
	}

	for _, expect := range vmt.expect {
		expect(t, &run)
	}
}

func (vmt vmTestCase) runVM(run *vmTestRun) (rerr error) {
	defer func() {
		if err := run.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()

	if len(vmt.program) > 0 {
		result, err := run.RunProgram(strings.Join(vmt.program, "\n"))
		run.result = result
		if err != nil {
			return err
		}
	}

	for _, op := range vmt.ops {
		if err := op(run.VM); err != nil {
			return err
		}
	}
	return nil
}

func (vmt vmTestCase) dumpToTest(t *testing.T, run *vmTestRun) {
	for _, line := range run.trace {
		t.Logf("trace: %v", line)
	}
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	vmDumper{vm: run.VM, out: &lw}.dump()
}

//// utilities

func num(n int32) Token   { return IntLiteral(n) }
func text(s string) Token { return TextLiteral(s) }
func texts(ss ...string) []Token {
	toks := make([]Token, len(ss))
	for i, s := range ss {
		toks[i] = TextLiteral(s)
	}
	return toks
}

func ingest(words ...string) func(vm *VM) error {
	return func(vm *VM) error {
		for _, word := range words {
			if err := vm.Ingest(word); err != nil {
				return err
			}
		}
		return nil
	}
}

func dispatch(toks ...Token) func(vm *VM) error {
	return func(vm *VM) error {
		for _, tok := range toks {
			if err := vm.Dispatch(tok); err != nil {
				return err
			}
		}
		return nil
	}
}

func call(name string) func(vm *VM) error {
	return func(vm *VM) error { return vm.call(name) }
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
