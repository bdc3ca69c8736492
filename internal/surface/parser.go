// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package surface

import (
	"fmt"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
)

// parser is a recursive-descent parser over the same precedence ladder
// formula.Pretty uses to decide when to parenthesize, read in the opposite
// direction: lollipop binds loosest (and is right-associative), then par,
// then tensor, then plus, then with, with negation and the unary connectives
// (bang, why-not, the suffix ^) binding tightest.
type parser struct {
	toks []token
	pos  int
}

// ParseFormula parses a single formula from its dual Unicode/ASCII surface
// syntax.
func ParseFormula(input string) (formula.Formula, error) {
	toks, err := lexAll(input)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}

	f, err := p.parseLollipop()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return f, nil
}

// ParseSequent parses a two-sided sequent `Γ ⊢ Δ`, where either side may be
// an empty formula list.
func ParseSequent(input string) (sequent.TwoSided, error) {
	toks, err := lexAll(input)
	if err != nil {
		return sequent.TwoSided{}, err
	}

	p := &parser{toks: toks}

	ante, err := p.parseFormulaList()
	if err != nil {
		return sequent.TwoSided{}, err
	}

	if err := p.expect(tokTurnstile); err != nil {
		return sequent.TwoSided{}, err
	}

	succ, err := p.parseFormulaList()
	if err != nil {
		return sequent.TwoSided{}, err
	}

	if err := p.expectEOF(); err != nil {
		return sequent.TwoSided{}, err
	}

	return sequent.TwoSided{Ante: ante, Succ: succ}, nil
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}

	return t
}

func (p *parser) expect(k tokenKind) error {
	if p.cur().kind != k {
		return &ParseError{Pos: p.cur().pos, Message: fmt.Sprintf("unexpected token %q", p.cur().text)}
	}

	p.advance()

	return nil
}

func (p *parser) expectEOF() error {
	if p.cur().kind != tokEOF {
		return &ParseError{Pos: p.cur().pos, Message: fmt.Sprintf("unexpected trailing input %q", p.cur().text)}
	}

	return nil
}

// parseFormulaList parses a comma-separated list of formulas, possibly
// empty (when the next token is already the turnstile or EOF).
func (p *parser) parseFormulaList() ([]formula.Formula, error) {
	if p.cur().kind == tokTurnstile || p.cur().kind == tokEOF {
		return nil, nil
	}

	var out []formula.Formula

	for {
		f, err := p.parseLollipop()
		if err != nil {
			return nil, err
		}

		out = append(out, f)

		if p.cur().kind != tokComma {
			return out, nil
		}

		p.advance()
	}
}

// parseLollipop is right-associative: A ⊸ B ⊸ C parses as A ⊸ (B ⊸ C).
func (p *parser) parseLollipop() (formula.Formula, error) {
	left, err := p.parsePar()
	if err != nil {
		return nil, err
	}

	if p.cur().kind != tokLollipop {
		return left, nil
	}

	p.advance()

	right, err := p.parseLollipop()
	if err != nil {
		return nil, err
	}

	return formula.Lollipop{Left: left, Right: right}, nil
}

func (p *parser) parsePar() (formula.Formula, error) {
	left, err := p.parseTensor()
	if err != nil {
		return nil, err
	}

	for p.cur().kind == tokPar {
		p.advance()

		right, err := p.parseTensor()
		if err != nil {
			return nil, err
		}

		left = formula.Par{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseTensor() (formula.Formula, error) {
	left, err := p.parsePlus()
	if err != nil {
		return nil, err
	}

	for p.cur().kind == tokTensor {
		p.advance()

		right, err := p.parsePlus()
		if err != nil {
			return nil, err
		}

		left = formula.Tensor{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parsePlus() (formula.Formula, error) {
	left, err := p.parseWith()
	if err != nil {
		return nil, err
	}

	for p.cur().kind == tokPlus {
		p.advance()

		right, err := p.parseWith()
		if err != nil {
			return nil, err
		}

		left = formula.Plus{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseWith() (formula.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.cur().kind == tokWith {
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = formula.With{Left: left, Right: right}
	}

	return left, nil
}

// parseUnary handles prefix bang/why-not and the postfix negation suffix
// (^, lexed as tokNegation, or the Unicode ⊥, lexed as tokBottom and read as
// negation wherever it follows an operand), which bind tighter than every
// binary connective and may stack (e.g. !!A, A^^).
func (p *parser) parseUnary() (formula.Formula, error) {
	switch p.cur().kind {
	case tokBang:
		p.advance()

		body, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return formula.OfCourse{Body: body}, nil
	case tokWhyNot:
		p.advance()

		body, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return formula.WhyNot{Body: body}, nil
	default:
		return p.parsePostfix()
	}
}

func (p *parser) parsePostfix() (formula.Formula, error) {
	f, err := p.parseAtomic()
	if err != nil {
		return nil, err
	}

	for p.cur().kind == tokNegation || p.cur().kind == tokBottom {
		p.advance()

		f = formula.Negate(f)
	}

	return f, nil
}

func (p *parser) parseAtomic() (formula.Formula, error) {
	t := p.cur()

	switch t.kind {
	case tokAtom:
		p.advance()
		return formula.Atom{Name: t.text}, nil
	case tokOne:
		p.advance()
		return formula.One{}, nil
	case tokBottom:
		p.advance()
		return formula.Bottom{}, nil
	case tokTop:
		p.advance()
		return formula.Top{}, nil
	case tokZero:
		p.advance()
		return formula.Zero{}, nil
	case tokLParen:
		p.advance()

		f, err := p.parseLollipop()
		if err != nil {
			return nil, err
		}

		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}

		return f, nil
	default:
		return nil, &ParseError{Pos: t.pos, Message: fmt.Sprintf("expected a formula, found %q", t.text)}
	}
}
