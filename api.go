package main

import (
	"context"
	"io"
	"strings"

	"github.com/jcorbin/plenty/internal/fileinput"
	"github.com/jcorbin/plenty/internal/panicerr"
	"github.com/jcorbin/plenty/internal/runeio"
)

// New creates a VM with an empty stack and function registry.
func New(opts ...VMOption) *VM {
	vm := VM{funcs: make(map[string][]Token)}
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run ingests every line of every input, in order, until all are exhausted
// or an error occurs. The error returned for a failed word carries its input
// location.
func (vm *VM) Run(ctx context.Context) error {
	return panicerr.Recover("VM", func() error {
		return vm.run(ctx, &vm.Input)
	})
}

// RunProgram ingests every line of program, returning the stack as it
// stands afterwards, formatted for debugging, as its only result. Output
// from words like "." is written immediately to the VM's output instead.
func (vm *VM) RunProgram(program string) ([]string, error) {
	in := fileinput.Input{Queue: []io.Reader{
		runeio.NamedReader("<program>", strings.NewReader(program)),
	}}
	if err := panicerr.Recover("VM", func() error {
		return vm.run(context.Background(), &in)
	}); err != nil {
		return nil, err
	}
	return []string{formatStack(vm.stack)}, nil
}

// Stack returns a copy of the stack values, bottom first.
func (vm *VM) Stack() []Token {
	return append([]Token(nil), vm.stack...)
}

// Functions returns a copy of the function registry.
func (vm *VM) Functions() map[string][]Token {
	funcs := make(map[string][]Token, len(vm.funcs))
	for name, body := range vm.funcs {
		funcs[name] = append([]Token(nil), body...)
	}
	return funcs
}

// Literal reports whether the VM is in literal mode.
func (vm *VM) Literal() bool { return vm.literal }

// Reset empties the stack and leaves literal mode; functions stay defined.
func (vm *VM) Reset() {
	vm.clear()
	vm.literal = false
}

func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithNamedInput queues r for Run, reporting locations under name.
func WithNamedInput(name string, r io.Reader) VMOption {
	return withInput(runeio.NamedReader(name, r))
}

func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }

// WithDir sets the directory listed by ":listdir", by default ".".
func WithDir(dir string) VMOption { return withDir(dir) }

// WithCallDepth limits how deeply function calls may nest; zero, the
// default, imposes no limit.
func WithCallDepth(limit int) VMOption { return withCallDepth(limit) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
