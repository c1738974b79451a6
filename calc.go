package calculator

import (
	"errors"
	"math"
	"strconv"
)

// expression = term { ('+' | '-') term }
// term       = power { ('*' | '/' | '%' | implicit) power }
// power      = factor [ ('^' | '**') power ]
// factor     = '+' factor | '-' factor | '(' expression ')' | number
//
// Implicit multiplication joins two adjacent factors with no operator between
// them, as in 2(3+4) or (1+2)(3+4). Only an open parenthesis, a digit, or a
// decimal point begins an implicit factor; unary signs stay at the additive
// level so that "3 -4" is a subtraction.

// parser is the state for a single evaluation: the input text and a cursor
// into it. The cursor only moves forward, except for the one deliberate
// rollback when a tentative exponent suffix turns out to have no digits.
type parser struct {
	src string
	pos int
}

// Evaluate parses and evaluates a single arithmetic expression, honoring
// standard operator precedence with right-associative exponentiation. Every
// value is a float64; exponentiation follows math.Pow, so a negative base
// with a fractional exponent yields NaN rather than an error. Errors satisfy
// InputError and report the byte offset of the problem. Each call is
// independent, so concurrent calls on different strings are safe.
func Evaluate(src string) (float64, error) {
	p := parser{src: src}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	p.space()
	if p.pos != len(p.src) {
		return 0, &TrailingInputError{Col: p.pos, Text: p.src[p.pos:]}
	}
	return v, nil
}

// space skips over whitespace.
func (p *parser) space() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// match consumes c if it is the next character after whitespace.
func (p *parser) match(c byte) bool {
	p.space()
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// matchWord consumes s if it follows in full after whitespace. Matching is
// all or nothing; a partial match leaves the cursor untouched.
func (p *parser) matchWord(s string) bool {
	p.space()
	if len(s) <= len(p.src)-p.pos && p.src[p.pos:p.pos+len(s)] == s {
		p.pos += len(s)
		return true
	}
	return false
}

// peek returns the next character after whitespace, or 0 at end of input.
func (p *parser) peek() byte {
	p.space()
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

// startsFactor reports whether the next character can begin an implicit
// multiplication. Unary signs do not count; they belong to the additive
// level.
func (p *parser) startsFactor() bool {
	c := p.peek()
	return c == '(' || c == '.' || '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// expression parses the additive level, left to right.
func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.match('+'):
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v += r
		case p.match('-'):
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

// term parses the multiplicative level, left to right. Explicit operators and
// implicit multiplications share the same precedence in source order. Modulo
// truncates both operands toward zero before taking the integer remainder.
func (p *parser) term() (float64, error) {
	v, err := p.power()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.match('*'):
			r, err := p.power()
			if err != nil {
				return 0, err
			}
			v *= r
		case p.match('/'):
			at := p.pos - 1
			r, err := p.power()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, &DivideByZeroError{Col: at}
			}
			v /= r
		case p.match('%'):
			at := p.pos - 1
			r, err := p.power()
			if err != nil {
				return 0, err
			}
			if int64(r) == 0 {
				return 0, &ModuloByZeroError{Col: at}
			}
			v = float64(int64(v) % int64(r))
		case p.startsFactor():
			r, err := p.power()
			if err != nil {
				return 0, err
			}
			v *= r
		default:
			return v, nil
		}
	}
}

// power parses the exponentiation level. The right operand recurses into
// another full power, making the operator right-associative: 2^3^2 is
// 2^(3^2). The two-character ** must be tried before ^.
func (p *parser) power() (float64, error) {
	base, err := p.factor()
	if err != nil {
		return 0, err
	}
	if p.matchWord("**") || p.match('^') {
		exp, err := p.power()
		if err != nil {
			return 0, err
		}
		base = math.Pow(base, exp)
	}
	return base, nil
}

// factor parses a unary-signed factor, a parenthesized expression, or a
// numeric literal.
func (p *parser) factor() (float64, error) {
	switch {
	case p.match('+'):
		return p.factor()
	case p.match('-'):
		v, err := p.factor()
		return -v, err
	case p.match('('):
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if !p.match(')') {
			return 0, &ParenError{Col: p.pos}
		}
		return v, nil
	}
	return p.number()
}

// number scans a numeric literal: a maximal run of digits with at most one
// decimal point, then an optional scientific suffix. A second decimal point
// ends the run and is left for the caller. The suffix is tentative: if no
// digit follows the e (optionally after a sign), the cursor rolls back to
// just after the mantissa so that "2e" is the number 2 followed by a dangling
// e, not an invalid number.
func (p *parser) number() (float64, error) {
	p.space()
	start := p.pos
	dot := false
scan:
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case '0' <= c && c <= '9':
			p.pos++
		case c == '.' && !dot:
			dot = true
			p.pos++
		default:
			break scan
		}
	}
	if p.pos == start {
		return 0, &NumberError{Col: p.pos}
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		digits := false
		for p.pos < len(p.src) && '0' <= p.src[p.pos] && p.src[p.pos] <= '9' {
			digits = true
			p.pos++
		}
		if !digits {
			p.pos = mark
		}
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		// Out-of-range literals saturate to an infinity.
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		// A scan with no digits, such as a lone decimal point.
		return 0, &NumberError{Col: start}
	}
	return v, nil
}
