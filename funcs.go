package main

//// Function Operations

// define implements ":make-fn": texts are popped off the stack until a "~"
// text or the stack runs out. The deepest text popped names the function, and
// the rest, nearest the top first, become its body.
//
// Nothing is restored to the stack when definition fails.
func (vm *VM) define() error {
	var words []Token
	for {
		tok := vm.pop()
		if tok == nil {
			break
		}
		word, ok := tok.(TextLiteral)
		if !ok {
			return ErrExpectedText
		}
		if word == literalExit {
			break
		}
		words = append(words, word)
	}

	i := len(words) - 1
	if i < 0 {
		return ErrExpectedFunctionName
	}
	name, ok := words[i].(TextLiteral)
	if !ok {
		return ErrExpectedFunctionName
	}
	body := words[:i:i]

	vm.logf("define", "%v -> %v", string(name), formatTokens(body))
	if vm.funcs == nil {
		vm.funcs = make(map[string][]Token)
	}
	vm.funcs[string(name)] = body
	return nil
}

// Bodies are parsed on every call, so they may refer to functions defined
// after them.
func (vm *VM) call(name string) error {
	body, defined := vm.funcs[name]
	if !defined {
		return undefinedFunctionError(name)
	}
	if vm.maxDepth > 0 && vm.depth >= vm.maxDepth {
		return callDepthError{name, vm.maxDepth}
	}

	vm.logf("call", "%v %v", name, formatTokens(body))
	vm.depth++
	defer func() { vm.depth-- }()
	defer vm.withLogPrefix("	")()

	for _, tok := range body {
		word, ok := tok.(TextLiteral)
		if !ok {
			return ErrExpectedText
		}
		op, err := vm.parse(string(word))
		if err != nil {
			return err
		}
		if err := vm.Dispatch(op); err != nil {
			return err
		}
	}
	return nil
}
