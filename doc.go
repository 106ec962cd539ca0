/*
Package main implements PLENTY, a tiny concatenative word interpreter.

A PLENTY program is a sequence of words separated by whitespace. Line breaks
are just more whitespace: a program means the same thing whether it is
written on one line or many. Each word is read, interpreted, and evaluated
against a single stack of values before the next word is read.

There are two kinds of values: 32-bit integers and texts. A word that parses
as a base-10 integer pushes that integer; any word that means nothing else
pushes itself as text. Arrays of integers and of texts also exist, but no
word builds them yet.

The built-in words are few:

	.          print the stack, bottom first, and all defined functions
	+          add the top two integers, or concatenate the top two texts,
	           top first; does nothing if the stack holds fewer than two
	-  *  /    subtract, multiply, divide the top two integers; the top is
	           the right hand side, so "10 2 -" leaves 8
	:clear     empty the stack
	:listdir   print the entries of the working directory

Texts that look like words can be pushed by quoting them. A word starting
with a backquote pushes the rest of the word as text, so "`+" pushes the
text "+" rather than adding. A lone backquote enters literal mode, in which
every word is pushed as text until a lone tilde leaves it again.

Functions are made from the stack by ":make-fn". It pops texts until it
either finds a tilde text or empties the stack. The last text popped names
the function, the others form its body, nearest the top of the stack first:

	` add + ~ :make-fn
	1 2 :add

Calling ":add" re-reads each word of its body, as if it had been typed at
that point, so a body may call functions that did not exist yet when it was
defined. Definitions replace any earlier function of the same name.

The words "(" and ")" are reserved: evaluating them is an error.

Run "plenty" for an interactive prompt, or "plenty file..." to run scripts.
*/
package main
