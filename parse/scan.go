// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse lowers the human-friendly shorthand for nested radical
// expressions ("(2+3√5)/4", "root(3, 1/2)") into canonical rn values.
// The shorthand is sugar only: everything is built through the rn
// constructors and arithmetic, so a parse result is always canonical.
package parse

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Type identifies the kind of a token.
type Type int

const (
	EOF Type = iota
	Number
	Rational // like 2/3, scanned as one token
	Identifier
	Operator // + - * /
	Sqrt     // '√'
	LeftParen
	RightParen
	Comma
)

// Token is one lexical item of an expression.
type Token struct {
	Type Type
	Pos  int // byte offset in the input, for error reports
	Text string
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%q", t.Text)
}

// Error is the syntax error type of this package.
type Error string

func (e Error) Error() string {
	return string(e)
}

func errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

const eof = -1

// Scanner tokenizes a single expression.
type Scanner struct {
	input string
	pos   int
}

func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

func (s *Scanner) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

func (s *Scanner) advance() rune {
	r := s.peek()
	if r != eof {
		s.pos += utf8.RuneLen(r)
	}
	return r
}

// Next returns the next token. It panics with Error on characters the
// shorthand has no use for.
func (s *Scanner) Next() Token {
	for unicode.IsSpace(s.peek()) {
		s.advance()
	}
	start := s.pos
	r := s.peek()
	switch {
	case r == eof:
		return Token{Type: EOF, Pos: start}
	case unicode.IsDigit(r):
		return s.number(start)
	case unicode.IsLetter(r):
		for unicode.IsLetter(s.peek()) {
			s.advance()
		}
		return Token{Type: Identifier, Pos: start, Text: s.input[start:s.pos]}
	}
	s.advance()
	switch r {
	case '√':
		return Token{Type: Sqrt, Pos: start, Text: "√"}
	case '+', '-', '*', '/':
		return Token{Type: Operator, Pos: start, Text: string(r)}
	case '(':
		return Token{Type: LeftParen, Pos: start, Text: "("}
	case ')':
		return Token{Type: RightParen, Pos: start, Text: ")"}
	case ',':
		return Token{Type: Comma, Pos: start, Text: ","}
	}
	panic(errorf("unexpected character %q at offset %d", r, start))
}

// number scans an integer, or a rational when a slash directly joins
// two digit runs, the way "2/3" reads as one number.
func (s *Scanner) number(start int) Token {
	for unicode.IsDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '/' {
		mark := s.pos
		s.advance()
		if unicode.IsDigit(s.peek()) {
			for unicode.IsDigit(s.peek()) {
				s.advance()
			}
			return Token{Type: Rational, Pos: start, Text: s.input[start:s.pos]}
		}
		s.pos = mark // plain division operator after all
	}
	return Token{Type: Number, Pos: start, Text: s.input[start:s.pos]}
}
