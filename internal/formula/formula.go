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

// Package formula implements the abstract syntax of propositional linear
// logic formulas: atoms, the multiplicative, additive and exponential
// connectives, their units, the derived lollipop, involutive negation and
// polarity classification.
package formula

// Formula represents a component of a propositional linear logic formula.
// Values are immutable once constructed; every operation below is a pure
// structural recursion over this tree.
type Formula interface {
	// Polarity returns whether this formula is decomposed eagerly in the
	// asynchronous phase (Negative) or the synchronous phase (Positive).
	Polarity() Polarity
	// String renders the formula using Unicode connectives.
	String() string
	isFormula()
}

// Polarity classifies a formula's head connective.
type Polarity int

// The two polarities of linear logic; every formula has exactly one.
const (
	Positive Polarity = iota
	Negative
)

func (p Polarity) String() string {
	if p == Positive {
		return "positive"
	}

	return "negative"
}

// ============================================================================
// Atoms
// ============================================================================

// Atom is a positive propositional atom, identified by name.  Two atoms are
// equal iff their names are identical strings; names are never empty.
type Atom struct{ Name string }

func (Atom) isFormula()         {}
func (Atom) Polarity() Polarity { return Positive }

// NegAtom is the negation of a propositional atom, `p⊥`.  Negation is kept
// explicit at the atom rather than folded into a generic `Not` node so that
// `negate` is O(1) on atoms and never builds up nested negation wrappers.
type NegAtom struct{ Name string }

func (NegAtom) isFormula()         {}
func (NegAtom) Polarity() Polarity { return Negative }

// ============================================================================
// Multiplicatives
// ============================================================================

// Tensor is the multiplicative conjunction `A ⊗ B`.
type Tensor struct{ Left, Right Formula }

func (Tensor) isFormula()         {}
func (Tensor) Polarity() Polarity { return Positive }

// Par is the multiplicative disjunction `A ⅋ B`.
type Par struct{ Left, Right Formula }

func (Par) isFormula()         {}
func (Par) Polarity() Polarity { return Negative }

// One is the multiplicative unit `1`, the unit for Tensor.
type One struct{}

func (One) isFormula()         {}
func (One) Polarity() Polarity { return Positive }

// Bottom is the multiplicative unit `⊥`, the unit for Par.
type Bottom struct{}

func (Bottom) isFormula()         {}
func (Bottom) Polarity() Polarity { return Negative }

// ============================================================================
// Additives
// ============================================================================

// With is the additive conjunction `A & B`.
type With struct{ Left, Right Formula }

func (With) isFormula()         {}
func (With) Polarity() Polarity { return Negative }

// Plus is the additive disjunction `A ⊕ B`.
type Plus struct{ Left, Right Formula }

func (Plus) isFormula()         {}
func (Plus) Polarity() Polarity { return Positive }

// Top is the additive unit `⊤`, the unit for With; always provable
// regardless of context.
type Top struct{}

func (Top) isFormula()         {}
func (Top) Polarity() Polarity { return Negative }

// Zero is the additive unit `0`, the unit for Plus; never provable.
type Zero struct{}

func (Zero) isFormula()         {}
func (Zero) Polarity() Polarity { return Positive }

// ============================================================================
// Exponentials
// ============================================================================

// OfCourse is the exponential `!A` ("of course"), marking a formula as
// reusable any number of times.
type OfCourse struct{ Body Formula }

func (OfCourse) isFormula()         {}
func (OfCourse) Polarity() Polarity { return Positive }

// WhyNot is the exponential `?A` ("why not"), the dual of OfCourse.
type WhyNot struct{ Body Formula }

func (WhyNot) isFormula()         {}
func (WhyNot) Polarity() Polarity { return Negative }

// ============================================================================
// Derived
// ============================================================================

// Lollipop is the linear implication `A ⊸ B`, desugarable to `A⊥ ⅋ B`.
// Desugar should be applied before a formula reaches the prover; Lollipop
// nodes are retained in the AST so that surface syntax and pretty-printing
// can round-trip the implication form.
type Lollipop struct{ Left, Right Formula }

func (Lollipop) isFormula() {}

// Polarity of a Lollipop is that of its desugaring, `A⊥ ⅋ B`, which is
// always Negative (Par is negative regardless of its arguments).
func (Lollipop) Polarity() Polarity { return Negative }

// ============================================================================
// Negation
// ============================================================================

// Negate computes the De Morgan dual of a formula. It is involutive:
// Negate(Negate(A)) is structurally identical to A for every well-formed A.
func Negate(f Formula) Formula {
	switch v := f.(type) {
	case Atom:
		return NegAtom{v.Name}
	case NegAtom:
		return Atom{v.Name}
	case One:
		return Bottom{}
	case Bottom:
		return One{}
	case Top:
		return Zero{}
	case Zero:
		return Top{}
	case Tensor:
		return Par{Negate(v.Left), Negate(v.Right)}
	case Par:
		return Tensor{Negate(v.Left), Negate(v.Right)}
	case With:
		return Plus{Negate(v.Left), Negate(v.Right)}
	case Plus:
		return With{Negate(v.Left), Negate(v.Right)}
	case OfCourse:
		return WhyNot{Negate(v.Body)}
	case WhyNot:
		return OfCourse{Negate(v.Body)}
	case Lollipop:
		// negate(A ⊸ B) = A ⊗ B⊥
		return Tensor{v.Left, Negate(v.Right)}
	default:
		panic("formula: malformed formula passed to Negate")
	}
}

// Desugar rewrites every Lollipop node to `A⊥ ⅋ B`, recursing under every
// constructor. The result contains no Lollipop node.
func Desugar(f Formula) Formula {
	switch v := f.(type) {
	case Atom, NegAtom, One, Bottom, Top, Zero:
		return f
	case Tensor:
		return Tensor{Desugar(v.Left), Desugar(v.Right)}
	case Par:
		return Par{Desugar(v.Left), Desugar(v.Right)}
	case With:
		return With{Desugar(v.Left), Desugar(v.Right)}
	case Plus:
		return Plus{Desugar(v.Left), Desugar(v.Right)}
	case OfCourse:
		return OfCourse{Desugar(v.Body)}
	case WhyNot:
		return WhyNot{Desugar(v.Body)}
	case Lollipop:
		return Par{Negate(Desugar(v.Left)), Desugar(v.Right)}
	default:
		panic("formula: malformed formula passed to Desugar")
	}
}

// Equals compares two formulas structurally, up to identical atom names.
// There is no binder at the formula level, so no alpha-equivalence is
// needed.
func Equals(a, b Formula) bool {
	switch av := a.(type) {
	case Atom:
		bv, ok := b.(Atom)
		return ok && av.Name == bv.Name
	case NegAtom:
		bv, ok := b.(NegAtom)
		return ok && av.Name == bv.Name
	case One:
		_, ok := b.(One)
		return ok
	case Bottom:
		_, ok := b.(Bottom)
		return ok
	case Top:
		_, ok := b.(Top)
		return ok
	case Zero:
		_, ok := b.(Zero)
		return ok
	case Tensor:
		bv, ok := b.(Tensor)
		return ok && Equals(av.Left, bv.Left) && Equals(av.Right, bv.Right)
	case Par:
		bv, ok := b.(Par)
		return ok && Equals(av.Left, bv.Left) && Equals(av.Right, bv.Right)
	case With:
		bv, ok := b.(With)
		return ok && Equals(av.Left, bv.Left) && Equals(av.Right, bv.Right)
	case Plus:
		bv, ok := b.(Plus)
		return ok && Equals(av.Left, bv.Left) && Equals(av.Right, bv.Right)
	case OfCourse:
		bv, ok := b.(OfCourse)
		return ok && Equals(av.Body, bv.Body)
	case WhyNot:
		bv, ok := b.(WhyNot)
		return ok && Equals(av.Body, bv.Body)
	case Lollipop:
		bv, ok := b.(Lollipop)
		return ok && Equals(av.Left, bv.Left) && Equals(av.Right, bv.Right)
	default:
		return false
	}
}
