package main

import (
	"context"
	"io"
	"strings"

	"github.com/jcorbin/plenty/internal/fileinput"
)

// VM evaluates words against a stack of values. It owns the stack, the
// registry of user-defined functions, and the literal mode flag.
type VM struct {
	core

	// The stack is a LIFO of values; its top is the last element.
	stack []Token

	// Functions map names to their bodies: unparsed words, each stored as a
	// TextLiteral and tokenized anew on every call.
	funcs map[string][]Token

	// While in literal mode, words are pushed as text without tokenizing.
	literal bool

	dir      string // directory listed by ListDir
	maxDepth int    // limits nested function calls, 0 means no limit
	depth    int
}

// Ingest processes one raw word:
//   - "`word" pushes the text "word"
//   - "`" alone enters literal mode
//   - "~" leaves literal mode, if in it
//   - in literal mode, the word is pushed as text
//   - ":make-fn" defines a function from the stack
//   - otherwise the word is tokenized and dispatched; words that fail to
//     tokenize are pushed as text
func (vm *VM) Ingest(word string) error {
	switch {
	case strings.HasPrefix(word, literalEscape) && len(word) > len(literalEscape):
		vm.push(TextLiteral(word[len(literalEscape):]))

	case word == literalEscape:
		vm.logf("`", "enter literal mode")
		vm.literal = true

	case word == literalExit && vm.literal:
		vm.logf("~", "leave literal mode")
		vm.literal = false

	case vm.literal:
		vm.push(TextLiteral(word))

	case word == defineWord:
		return vm.define()

	default:
		tok, err := vm.parse(word)
		if err != nil {
			tok = TextLiteral(word)
		}
		return vm.Dispatch(tok)
	}
	return nil
}

// IngestLine ingests every whitespace separated word in line, stopping at
// the first error.
func (vm *VM) IngestLine(line string) error {
	for _, word := range strings.Fields(line) {
		if err := vm.Ingest(word); err != nil {
			return wordError{word: word, err: err}
		}
	}
	return nil
}

func (vm *VM) parse(word string) (Token, error) {
	tok, err := ParseToken(word)
	if err != nil {
		vm.logf("parse", "%q -> %v", word, err)
	} else {
		vm.logf("parse", "%q -> %v", word, tok)
	}
	return tok, err
}

// Dispatch evaluates a single token: values are pushed, instructions run.
func (vm *VM) Dispatch(tok Token) error {
	if vm.logfn != nil {
		vm.logf("exec", "%v -- s:%v", tok, formatStack(vm.stack))
	}
	switch tok := tok.(type) {
	case IntLiteral, WideIntLiteral, TextLiteral, IntArray, TextArray:
		vm.push(tok)
		return nil
	case Invoke:
		return vm.call(string(tok))
	case Op:
		return vm.exec(tok)
	}
	return unsupportedError{tok}
}

func (vm *VM) exec(op Op) error {
	switch op {
	case Display:
		return vm.display()
	case Clear:
		vm.clear()
		return nil
	case ListDir:
		return vm.listDir()
	case Plus:
		return vm.add()
	case Minus:
		return vm.sub()
	case Multiply:
		return vm.mul()
	case Divide:
		return vm.div()
	case MakeIntArray:
		return vm.makeIntArray()
	case MakeTextArray:
		return vm.makeTextArray()
	case Join:
		return vm.join()
	case GroupOpen, GroupClose, OpenFile, ReadLines:
		return unsupportedError{op}
	}
	return unsupportedError{op}
}

func (vm *VM) push(tok Token) {
	vm.stack = append(vm.stack, tok)
}

// pop removes and returns the top of the stack, or nil if it is empty.
func (vm *VM) pop() Token {
	i := len(vm.stack) - 1
	if i < 0 {
		return nil
	}
	tok := vm.stack[i]
	vm.stack[i] = nil
	vm.stack = vm.stack[:i]
	return tok
}

// peek returns the top of the stack, or nil if it is empty.
func (vm *VM) peek() Token {
	if i := len(vm.stack) - 1; i >= 0 {
		return vm.stack[i]
	}
	return nil
}

func (vm *VM) run(ctx context.Context, in *fileinput.Input) error {
	defer vm.flush()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.ReadLine()
		if err == io.EOF {
			return vm.flush()
		} else if err != nil {
			return err
		}
		if err := vm.IngestLine(line); err != nil {
			if we, ok := err.(wordError); ok {
				we.loc = in.Last.Location
				err = we
			}
			return err
		}
		if err := vm.flush(); err != nil {
			return err
		}
	}
}
