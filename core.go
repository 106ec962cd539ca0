package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/plenty/internal/fileinput"
	"github.com/jcorbin/plenty/internal/flushio"
)

type core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close closes the input being read and any inputs still queued, along with
// anything else registered by options, in reverse order.
func (core *core) Close() (err error) {
	err = core.Input.Close()
	for _, r := range core.Input.Queue {
		if cl, ok := r.(io.Closer); ok {
			core.closers = append(core.closers, cl)
		}
	}
	core.Input.Queue = nil
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	core.closers = nil
	return err
}

func (core *core) flush() error {
	if core.out == nil {
		return nil
	}
	return core.out.Flush()
}

func (core *core) writeLine(line string) error {
	if core.out == nil {
		return nil
	}
	if _, err := io.WriteString(core.out, line); err != nil {
		return err
	}
	_, err := io.WriteString(core.out, "\n")
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark += strings.Repeat(" ", n)
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
