package main

import (
	"io"

	"github.com/jcorbin/plenty/internal/flushio"
)

// VMOption configures a VM when passed to New.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withOutput(io.Discard),
	withDir("."),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type dirOption string
type callDepthOption int

func withInput(r io.Reader) inputOption       { return inputOption{r} }
func withOutput(w io.Writer) outputOption     { return outputOption{w} }
func withTee(w io.Writer) teeOption           { return teeOption{w} }
func withDir(dir string) dirOption            { return dirOption(dir) }
func withCallDepth(limit int) callDepthOption { return callDepthOption(limit) }

func (i inputOption) apply(vm *VM) {
	vm.Input.Queue = append(vm.Input.Queue, i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (dir dirOption) apply(vm *VM) {
	vm.dir = string(dir)
}

func (limit callDepthOption) apply(vm *VM) {
	vm.maxDepth = int(limit)
}
