package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

//// Stack Operations

// display implements ".", printing the stack and then the function registry.
func (vm *VM) display() error {
	if err := vm.writeLine(formatStack(vm.stack)); err != nil {
		return err
	}
	return vm.writeLine("Functions: " + formatFuncs(vm.funcs))
}

// clear implements ":clear".
func (vm *VM) clear() {
	for i := range vm.stack {
		vm.stack[i] = nil
	}
	vm.stack = vm.stack[:0]
}

//// Arithmetic Operations

// add implements "+": pop the top 2 elements, then push their sum if both are
// numbers, or their concatenation (top first) if both are texts. Unlike the
// other arithmetic, it does nothing when fewer than 2 elements are present.
func (vm *VM) add() error {
	if len(vm.stack) < 2 {
		return nil
	}
	a, b := vm.pop(), vm.pop()
	switch a := a.(type) {
	case IntLiteral:
		if b, ok := b.(IntLiteral); ok {
			vm.push(a + b)
			return nil
		}
	case TextLiteral:
		if b, ok := b.(TextLiteral); ok {
			vm.push(a + b)
			return nil
		}
	}
	return typeMismatchError{a, b}
}

// popNumbers pops the top 2 elements of the stack as b then a.
func (vm *VM) popNumbers() (a, b IntLiteral, err error) {
	tb, ta := vm.pop(), vm.pop()
	b, bok := tb.(IntLiteral)
	a, aok := ta.(IntLiteral)
	if !aok || !bok {
		return 0, 0, ErrExpectedNumbers
	}
	return a, b, nil
}

// sub implements "-".
func (vm *VM) sub() error {
	a, b, err := vm.popNumbers()
	if err == nil {
		vm.push(a - b)
	}
	return err
}

// mul implements "*".
func (vm *VM) mul() error {
	a, b, err := vm.popNumbers()
	if err == nil {
		vm.push(a * b)
	}
	return err
}

// div implements "/", truncating toward zero.
func (vm *VM) div() error {
	a, b, err := vm.popNumbers()
	if err != nil {
		return err
	}
	if b == 0 {
		return ErrDivisionByZero
	}
	vm.push(a / b)
	return nil
}

//// Array Operations

// popCount pops the element count of an array construction.
func (vm *VM) popCount() (int, error) {
	n, ok := vm.pop().(IntLiteral)
	if !ok {
		return 0, ErrExpectedNumber
	}
	return int(n), nil
}

// makeIntArray pops a count, then pops up to that many numbers into an
// array, nearest the top first. It stops short, without error, when the stack
// runs out or at the first non-number, which stays on the stack.
func (vm *VM) makeIntArray() error {
	count, err := vm.popCount()
	if err != nil {
		return err
	}
	items := IntArray{}
	for ; count > 0; count-- {
		n, ok := vm.peek().(IntLiteral)
		if !ok {
			break
		}
		vm.pop()
		items = append(items, int32(n))
	}
	vm.push(items)
	return nil
}

func (vm *VM) makeTextArray() error {
	count, err := vm.popCount()
	if err != nil {
		return err
	}
	items := TextArray{}
	for ; count > 0; count-- {
		s, ok := vm.peek().(TextLiteral)
		if !ok {
			break
		}
		vm.pop()
		items = append(items, string(s))
	}
	vm.push(items)
	return nil
}

// join pops a text array and pushes its elements concatenated in order.
func (vm *VM) join() error {
	items, ok := vm.pop().(TextArray)
	if !ok {
		return ErrExpectedTextArray
	}
	vm.push(TextLiteral(strings.Join(items, "")))
	return nil
}

//// Input/Output Operations

// listDir implements ":listdir", printing the path of each entry in the VM's
// directory, one per line.
func (vm *VM) listDir() error {
	dir := vm.dir
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listdir: %w", err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if dir == "." {
			path = "./" + entry.Name()
		}
		if !utf8.ValidString(path) {
			return fmt.Errorf("listdir %q: %w", path, ErrInvalidPath)
		}
		if err := vm.writeLine(path); err != nil {
			return err
		}
	}
	return nil
}
