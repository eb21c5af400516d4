package main

import (
	"fmt"
	"unicode"

	"github.com/aocgo/aoc"
)

// exprParser evaluates homework expressions by precedence climbing.
// Operators of equal precedence associate left.
type exprParser struct {
	toks []string
	pos  int
	prec map[string]int
}

func tokenizeExpr(s string) []string {
	var toks []string
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
		case c == '+' || c == '*' || c == '(' || c == ')':
			toks = append(toks, string(c))
		case unicode.IsDigit(rune(c)):
			j := i
			for j < len(s) && unicode.IsDigit(rune(s[j])) {
				j++
			}
			toks = append(toks, s[i:j])
			i = j - 1
		default:
			panic(fmt.Sprintf("bad character %q in %q", c, s))
		}
	}
	return toks
}

func (p *exprParser) next() string {
	if p.pos >= len(p.toks) {
		panic("unexpected end of expression")
	}
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *exprParser) primary() int {
	t := p.next()
	if t == "(" {
		v := p.expr(1)
		if p.next() != ")" {
			panic("missing )")
		}
		return v
	}
	return aoc.Int(t)
}

func (p *exprParser) expr(minPrec int) int {
	lhs := p.primary()
	for p.pos < len(p.toks) {
		op := p.toks[p.pos]
		prec, ok := p.prec[op]
		if !ok || prec < minPrec {
			break
		}
		p.pos++
		rhs := p.expr(prec + 1)
		switch op {
		case "+":
			lhs += rhs
		case "*":
			lhs *= rhs
		}
	}
	return lhs
}

// evalExpr evaluates s with the given operator precedences.
func evalExpr(s string, prec map[string]int) int {
	p := &exprParser{toks: tokenizeExpr(s), prec: prec}
	v := p.expr(1)
	if p.pos != len(p.toks) {
		panic(fmt.Sprintf("trailing tokens in %q", s))
	}
	return v
}

var (
	flatPrec     = map[string]int{"+": 1, "*": 1}
	additionPrec = map[string]int{"+": 2, "*": 1}
)

func sumHomework(prec map[string]int) int {
	sum := 0
	aoc.ForLines(func(line string) {
		sum += evalExpr(line, prec)
	})
	return sum
}

/*
want=97
1 + 2 * 3 + 4 * 5 + 6
2 * 3 + (4 * 5)
*/
func day18a() any {
	return sumHomework(flatPrec)
}

// want=277
func day18b() any {
	return sumHomework(additionPrec)
}
