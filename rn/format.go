// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import (
	"fmt"
	"strings"
)

// Math-style rendering, driven by the structure the classifier reads:
// "-6", "5/6", "3√2", "2+3√5", "(2√3+3√15)/12", "⁶√((2√3+3√15)/12)".
// With config.ASCII set, roots render as rtN(x) instead.

var superscripts = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func (a *Real) String() string {
	return realString(a, conf.ASCII())
}

// scalarKey is the configuration-independent rendering used for
// ordering and signature comparison of nested scalars.
func scalarKey(s Scalar) string {
	switch s := s.(type) {
	case Int:
		return s.Int.String()
	case *Real:
		return realString(s, false)
	}
	panic(Errorf("unknown scalar %T", s))
}

func realString(a *Real, ascii bool) string {
	num := linearString(a.num, ascii)
	body := num
	if !linearIsOne(a.den) {
		if len(significant(a.num)) > 1 {
			body = "(" + num + ")"
		}
		body += "/" + denString(a.den, ascii)
	}
	l, small := smallInt(a.index)
	if small && l == 1 {
		return body
	}
	if ascii {
		if small {
			return fmt.Sprintf("rt%d(%s)", l, body)
		}
		return fmt.Sprintf("rt[%s](%s)", scalarKey(a.index), body)
	}
	return indexPrefix(a.index) + "(" + body + ")"
}

func denString(den Linear, ascii bool) string {
	units := significant(den)
	s := linearString(den, ascii)
	if len(units) == 1 && trivialSig(units[0]) {
		if _, ok := units[0].C.(Int); ok {
			return s
		}
	}
	return "(" + s + ")"
}

func linearString(lin Linear, ascii bool) string {
	var b strings.Builder
	for _, u := range significant(lin) {
		s := unitString(u, ascii)
		if b.Len() > 0 && s[0] != '-' {
			b.WriteByte('+')
		}
		b.WriteString(s)
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func unitString(u Unit, ascii bool) string {
	coef := coefString(u.C, ascii)
	if trivialSig(u) {
		if coef == "" {
			return "1"
		}
		if coef == "-" {
			return "-1"
		}
		return coef
	}
	rad := radString(u, ascii)
	return coef + rad
}

// coefString renders a coefficient ready to prefix a radical: 1 is
// dropped, -1 keeps only the sign, nested values are parenthesized.
func coefString(c Scalar, ascii bool) string {
	switch c := c.(type) {
	case Int:
		if isIntVal(c, 1) {
			return ""
		}
		if isIntVal(c, -1) {
			return "-"
		}
		return c.Int.String()
	case *Real:
		return "(" + realString(c, ascii) + ")"
	}
	panic(Errorf("unknown scalar %T", c))
}

func radString(u Unit, ascii bool) string {
	inner := ""
	switch r := u.R.(type) {
	case Int:
		inner = r.Int.String()
	case *Real:
		inner = realString(r, ascii)
	}
	if ascii {
		if l, ok := smallInt(u.L); ok {
			return fmt.Sprintf("rt%d(%s)", l, inner)
		}
		return fmt.Sprintf("rt[%s](%s)", scalarKey(u.L), inner)
	}
	if _, nested := u.R.(*Real); nested {
		inner = "(" + inner + ")"
	}
	return indexPrefix(u.L) + inner
}

// indexPrefix renders the root sign for an index: "√" for 2, a
// superscripted degree otherwise.
func indexPrefix(l Scalar) string {
	if i, ok := smallInt(l); ok {
		if i == 2 {
			return "√"
		}
		return superscript(i) + "√"
	}
	return "(" + scalarKey(l) + ")√"
}

func superscript(n int) string {
	if n < 0 {
		return "⁻" + superscript(-n)
	}
	s := fmt.Sprint(n)
	var b strings.Builder
	for _, ch := range s {
		b.WriteRune(superscripts[ch-'0'])
	}
	return b.String()
}
