// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"math/big"
	"strings"

	"github.com/Andrea-Vigano/rnenv/rn"
)

// Grammar:
//
//	expr    = term {("+"|"-") term}
//	term    = factor {("*"|"/") factor}
//	factor  = ["-"] primary {radical}        (juxtaposition multiplies)
//	primary = number | rational | radical | "(" expr ")"
//	        | "sqrt" "(" expr ")" | "root" "(" integer "," expr ")"
//	radical = "√" primary

// Parser holds one token of lookahead over the scanner.
type Parser struct {
	sc  *Scanner
	tok Token
}

// Eval parses and evaluates one shorthand expression.
func Eval(src string) (v *rn.Real, err error) {
	defer func() {
		switch e := recover().(type) {
		case nil:
		case Error:
			err = e
		case opError:
			err = e.err
		default:
			panic(e)
		}
	}()
	p := &Parser{sc: NewScanner(src)}
	p.next()
	v = p.expr()
	if p.tok.Type != EOF {
		panic(errorf("unexpected %s at offset %d", p.tok, p.tok.Pos))
	}
	return v, nil
}

// opError carries an rn error out of the descent unchanged.
type opError struct {
	err error
}

func (e opError) Error() string {
	return e.err.Error()
}

func must(v *rn.Real, err error) *rn.Real {
	if err != nil {
		panic(opError{err})
	}
	return v
}

func (p *Parser) next() {
	p.tok = p.sc.Next()
}

func (p *Parser) expect(t Type, what string) Token {
	if p.tok.Type != t {
		panic(errorf("expected %s, found %s at offset %d", what, p.tok, p.tok.Pos))
	}
	tok := p.tok
	p.next()
	return tok
}

func (p *Parser) expr() *rn.Real {
	v := p.term()
	for p.tok.Type == Operator && (p.tok.Text == "+" || p.tok.Text == "-") {
		op := p.tok.Text
		p.next()
		w := p.term()
		if op == "+" {
			v = must(v.Add(w))
		} else {
			v = must(v.Sub(w))
		}
	}
	return v
}

func (p *Parser) term() *rn.Real {
	v := p.factor()
	for p.tok.Type == Operator && (p.tok.Text == "*" || p.tok.Text == "/") {
		op := p.tok.Text
		p.next()
		w := p.factor()
		if op == "*" {
			v = must(v.Mul(w))
		} else {
			v = must(v.Div(w))
		}
	}
	return v
}

func (p *Parser) factor() *rn.Real {
	if p.tok.Type == Operator && p.tok.Text == "-" {
		p.next()
		return p.factor().Neg()
	}
	v := p.primary()
	for p.tok.Type == Sqrt {
		// 3√5 is 3·√5.
		v = must(v.Mul(p.primary()))
	}
	return v
}

func (p *Parser) primary() *rn.Real {
	tok := p.tok
	switch tok.Type {
	case Number:
		p.next()
		return rn.FromBigInt(p.integer(tok))
	case Rational:
		p.next()
		parts := strings.SplitN(tok.Text, "/", 2)
		q := new(big.Int)
		if _, ok := q.SetString(parts[1], 10); !ok || q.Sign() == 0 {
			panic(errorf("bad rational %q at offset %d", tok.Text, tok.Pos))
		}
		num := new(big.Int)
		num.SetString(parts[0], 10)
		return rn.FromBigRat(new(big.Rat).SetFrac(num, q))
	case Sqrt:
		p.next()
		return must(rn.Sqrt(p.primary()))
	case LeftParen:
		p.next()
		v := p.expr()
		p.expect(RightParen, ")")
		return v
	case Identifier:
		switch tok.Text {
		case "sqrt":
			p.next()
			p.expect(LeftParen, "(")
			v := p.expr()
			p.expect(RightParen, ")")
			return must(rn.Sqrt(v))
		case "root":
			p.next()
			p.expect(LeftParen, "(")
			n := p.integer(p.expect(Number, "root degree"))
			p.expect(Comma, ",")
			v := p.expr()
			p.expect(RightParen, ")")
			if !n.IsInt64() {
				panic(errorf("root degree %s out of range", n))
			}
			return must(rn.Root(n.Int64(), v))
		}
	}
	panic(errorf("unexpected %s at offset %d", tok, tok.Pos))
}

func (p *Parser) integer(tok Token) *big.Int {
	n, ok := new(big.Int).SetString(tok.Text, 10)
	if !ok {
		panic(errorf("bad number %q at offset %d", tok.Text, tok.Pos))
	}
	return n
}
