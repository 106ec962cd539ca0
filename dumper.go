package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

type fmtBuf interface {
	WriteByte(c byte) error
	WriteString(s string) (n int, err error)
}

// formatStack renders values bottom first, like "[IntLiteral(1), TextLiteral("a")]".
func formatStack(stack []Token) string { return formatTokens(stack) }

func formatTokens(toks []Token) string {
	var sb strings.Builder
	writeTokens(&sb, toks)
	return sb.String()
}

func writeTokens(buf fmtBuf, toks []Token) {
	buf.WriteByte('[')
	for i, tok := range toks {
		if i > 0 {
			buf.WriteString(", ")
		}
		if tok == nil {
			buf.WriteString("<nil>")
		} else {
			buf.WriteString(tok.String())
		}
	}
	buf.WriteByte(']')
}

func sortedNames(funcs map[string][]Token) []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatFuncs renders the function registry ordered by name, like
// `{"add": [TextLiteral("+")]}`.
func formatFuncs(funcs map[string][]Token) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range sortedNames(funcs) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(name))
		sb.WriteString(": ")
		writeTokens(&sb, funcs[name])
	}
	sb.WriteByte('}')
	return sb.String()
}

// vmDumper writes a multi-line description of all VM state; tests use it to
// explain failures, and the CLI prints it on exit when tracing.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  literal: %v\n", dump.vm.literal)
	if dump.vm.depth > 0 || dump.vm.maxDepth > 0 {
		fmt.Fprintf(dump.out, "  depth: %v/%v\n", dump.vm.depth, dump.vm.maxDepth)
	}
	dump.dumpStack()
	dump.dumpFuncs()
}

func (dump vmDumper) dumpStack() {
	fmt.Fprintf(dump.out, "  stack: %v\n", formatStack(dump.vm.stack))
}

func (dump vmDumper) dumpFuncs() {
	if len(dump.vm.funcs) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Functions\n")
	width := 0
	names := sortedNames(dump.vm.funcs)
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range names {
		fmt.Fprintf(dump.out, "  :%-*v %v\n", width, name, formatTokens(dump.vm.funcs[name]))
	}
}
