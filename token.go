package main

import (
	"strconv"
	"strings"
)

// Token is the structured interpretation of a single word: either a value
// that gets pushed onto the stack, or an instruction that operates on it.
//
// The set of implementations is closed: Op, IntLiteral, WideIntLiteral,
// TextLiteral, IntArray, TextArray, and Invoke.
type Token interface {
	String() string
	isToken()
}

// IntLiteral is the numeric value kind.
type IntLiteral int32

// WideIntLiteral is reserved; no word parses to one, and no operation
// produces or consumes one, but it may still be pushed like any other value.
type WideIntLiteral int64

// TextLiteral is the text value kind; function bodies are also stored as
// sequences of TextLiteral words.
type TextLiteral string

// IntArray is an array of numbers, as built by MakeIntArray.
type IntArray []int32

// TextArray is an array of texts, as built by MakeTextArray.
type TextArray []string

// Invoke calls the named user-defined function.
type Invoke string

// Op is a payload-less instruction.
type Op uint8

const (
	Display       Op = iota // .          print the stack and function registry
	MakeIntArray            //            collect numbers into an IntArray
	MakeTextArray           //            collect texts into a TextArray
	Join                    //            concatenate a TextArray into text
	Plus                    // +          add numbers, or concatenate texts
	Minus                   // -          subtract numbers
	Multiply                // *          multiply numbers
	Divide                  // /          divide numbers
	GroupOpen               // (          reserved
	GroupClose              // )          reserved
	OpenFile                //            reserved
	ReadLines               //            reserved
	Clear                   // :clear     empty the stack
	ListDir                 // :listdir   list the working directory

	opMax
)

var opNames = [opMax]string{
	"Display",
	"MakeIntArray",
	"MakeTextArray",
	"Join",
	"Plus",
	"Minus",
	"Multiply",
	"Divide",
	"GroupOpen",
	"GroupClose",
	"OpenFile",
	"ReadLines",
	"Clear",
	"ListDir",
}

// Special words, handled before or during tokenizing.
const (
	callSigil     = ":"        // prefix of function invocations
	literalEscape = "`"        // quotes one word, or alone enters literal mode
	literalExit   = "~"        // leaves literal mode; also ends a definition
	defineWord    = ":make-fn" // defines a function from the stack
)

var keywords = map[string]Op{
	".":        Display,
	"+":        Plus,
	"-":        Minus,
	"*":        Multiply,
	"/":        Divide,
	"(":        GroupOpen,
	")":        GroupClose,
	":clear":   Clear,
	":listdir": ListDir,
}

// ParseToken interprets a single word. The only word it rejects is a bare
// call sigil, with ErrInvalidFunctionName; any word that is not a keyword,
// invocation, or 32-bit integer becomes a TextLiteral.
func ParseToken(word string) (Token, error) {
	if op, ok := keywords[word]; ok {
		return op, nil
	}
	if strings.HasPrefix(word, callSigil) {
		if name := word[len(callSigil):]; name != "" {
			return Invoke(name), nil
		}
		return nil, ErrInvalidFunctionName
	}
	if n, err := strconv.ParseInt(word, 10, 32); err == nil {
		return IntLiteral(n), nil
	}
	return TextLiteral(word), nil
}

func (Op) isToken()             {}
func (IntLiteral) isToken()     {}
func (WideIntLiteral) isToken() {}
func (TextLiteral) isToken()    {}
func (IntArray) isToken()       {}
func (TextArray) isToken()      {}
func (Invoke) isToken()         {}

func (op Op) String() string {
	if op < opMax {
		return opNames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

func (n IntLiteral) String() string {
	return "IntLiteral(" + strconv.FormatInt(int64(n), 10) + ")"
}

func (n WideIntLiteral) String() string {
	return "WideIntLiteral(" + strconv.FormatInt(int64(n), 10) + ")"
}

func (s TextLiteral) String() string { return "TextLiteral(" + strconv.Quote(string(s)) + ")" }
func (name Invoke) String() string   { return "Invoke(" + strconv.Quote(string(name)) + ")" }

func (ns IntArray) String() string {
	var sb strings.Builder
	sb.WriteString("IntArray([")
	for i, n := range ns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(int64(n), 10))
	}
	sb.WriteString("])")
	return sb.String()
}

func (ss TextArray) String() string {
	var sb strings.Builder
	sb.WriteString("TextArray([")
	for i, s := range ss {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(s))
	}
	sb.WriteString("])")
	return sb.String()
}
