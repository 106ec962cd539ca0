package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/plenty/internal/fileinput"
)

var (
	// tokenizer errors
	ErrInvalidFunctionName = errors.New("invalid function name")

	// type errors
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrExpectedNumber    = errors.New("expected a number")
	ErrExpectedText      = errors.New("expected a text value")
	ErrExpectedTextArray = errors.New("expected an array of text")

	// arity and state errors
	ErrExpectedNumbers      = errors.New("expected two numbers")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrUndefinedFunction    = errors.New("undefined function")
	ErrExpectedFunctionName = errors.New("expected a function name")
	ErrCallDepth            = errors.New("call depth exceeded")
	ErrUnsupported          = errors.New("not yet supported")

	// io errors
	ErrInvalidPath = errors.New("path is not valid utf-8")
)

type typeMismatchError struct{ a, b Token }

func (err typeMismatchError) Error() string {
	return fmt.Sprintf("cannot add %v to %v", err.a, err.b)
}
func (err typeMismatchError) Unwrap() error { return ErrTypeMismatch }

type undefinedFunctionError string

func (name undefinedFunctionError) Error() string {
	return fmt.Sprintf("undefined function: %v", string(name))
}
func (name undefinedFunctionError) Unwrap() error { return ErrUndefinedFunction }

type unsupportedError struct{ tok Token }

func (err unsupportedError) Error() string {
	return fmt.Sprintf("%v: %v", err.tok, ErrUnsupported)
}
func (err unsupportedError) Unwrap() error { return ErrUnsupported }

type callDepthError struct {
	name  string
	limit int
}

func (err callDepthError) Error() string {
	return fmt.Sprintf("calling %v: %v (limit %v)", err.name, ErrCallDepth, err.limit)
}
func (err callDepthError) Unwrap() error { return ErrCallDepth }

// wordError annotates an error with the word being ingested when it occurred,
// and the input location of that word when known.
type wordError struct {
	loc  fileinput.Location
	word string
	err  error
}

func (err wordError) Error() string {
	if err.loc.Name == "" {
		return fmt.Sprintf("word %q: %v", err.word, err.err)
	}
	return fmt.Sprintf("%v: word %q: %v", err.loc, err.word, err.err)
}
func (err wordError) Unwrap() error { return err.err }
