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
package formula

import "strings"

// Mode selects the token set used by Pretty: Unicode connectives (⊗⅋⊸&⊕!?)
// or their ASCII spellings (the surface syntax of internal/surface).
type Mode int

// The two rendering modes accepted by Pretty.
const (
	Unicode Mode = iota
	ASCII
)

// precedence ladder, lowest-binding first: ⊸ < ⅋ < ⊗ < ⊕ < & < unary.
const (
	precLollipop = iota
	precPar
	precTensor
	precPlus
	precWith
	precUnary
)

// Pretty renders a formula with explicit parentheses honoring the
// precedence ladder: ⊸ lowest, then ⅋, ⊗, ⊕, &, then unary !/? and postfix
// negation. Lollipop is right-associative; the binary connectives are
// left-associative.
func Pretty(f Formula, mode Mode) string {
	var b strings.Builder
	prettyInto(&b, f, mode, -1)

	return b.String()
}

// pretty renders an atom or a negated atom in mode's token set.
func (f Atom) pretty(mode Mode) string     { return f.Name }
func (f NegAtom) pretty(mode Mode) string {
	if mode == ASCII {
		return f.Name + "^"
	}

	return f.Name + "⊥"
}

func prettyInto(b *strings.Builder, f Formula, mode Mode, parentPrec int) {
	switch v := f.(type) {
	case Atom:
		b.WriteString(v.pretty(mode))
	case NegAtom:
		b.WriteString(v.pretty(mode))
	case One:
		b.WriteString("1")
	case Bottom:
		if mode == ASCII {
			b.WriteString("bot")
		} else {
			b.WriteString("⊥")
		}
	case Top:
		if mode == ASCII {
			b.WriteString("top")
		} else {
			b.WriteString("⊤")
		}
	case Zero:
		b.WriteString("0")
	case OfCourse:
		b.WriteString("!")
		prettyInto(b, v.Body, mode, precUnary)
	case WhyNot:
		b.WriteString("?")
		prettyInto(b, v.Body, mode, precUnary)
	case Tensor:
		writeBinary(b, v.Left, v.Right, tok(mode, "⊗", "*"), precTensor, mode, parentPrec, false)
	case Par:
		writeBinary(b, v.Left, v.Right, tok(mode, "⅋", "|"), precPar, mode, parentPrec, false)
	case Plus:
		writeBinary(b, v.Left, v.Right, tok(mode, "⊕", "+"), precPlus, mode, parentPrec, false)
	case With:
		writeBinary(b, v.Left, v.Right, tok(mode, "&", "&"), precWith, mode, parentPrec, false)
	case Lollipop:
		writeBinary(b, v.Left, v.Right, tok(mode, "⊸", "-o"), precLollipop, mode, parentPrec, true)
	default:
		b.WriteString("<malformed>")
	}
}

func tok(mode Mode, unicode, ascii string) string {
	if mode == ASCII {
		return ascii
	}

	return unicode
}

// writeBinary renders `left OP right`, parenthesizing relative to the
// parent's precedence and this connective's associativity. rightAssoc
// formulas (only Lollipop) render their left child at one precedence level
// higher than themselves (so that `A ⊸ (B ⊸ C)` prints without parens on
// the right but `(A ⊸ B) ⊸ C` needs them on the left); binary connectives
// are left-associative, so the roles are reversed.
func writeBinary(b *strings.Builder, left, right Formula, op string, prec int, mode Mode, parentPrec int, rightAssoc bool) {
	needParens := prec < parentPrec
	if needParens {
		b.WriteString("(")
	}

	leftPrec, rightPrec := prec, prec+1
	if rightAssoc {
		leftPrec, rightPrec = prec+1, prec
	}

	prettyInto(b, left, mode, leftPrec)
	b.WriteString(" ")
	b.WriteString(op)
	b.WriteString(" ")
	prettyInto(b, right, mode, rightPrec)

	if needParens {
		b.WriteString(")")
	}
}

// String implementations; String() always uses Unicode connectives.
func (f Atom) String() string     { return Pretty(f, Unicode) }
func (f NegAtom) String() string  { return Pretty(f, Unicode) }
func (f One) String() string      { return Pretty(f, Unicode) }
func (f Bottom) String() string   { return Pretty(f, Unicode) }
func (f Top) String() string      { return Pretty(f, Unicode) }
func (f Zero) String() string     { return Pretty(f, Unicode) }
func (f Tensor) String() string   { return Pretty(f, Unicode) }
func (f Par) String() string      { return Pretty(f, Unicode) }
func (f With) String() string     { return Pretty(f, Unicode) }
func (f Plus) String() string     { return Pretty(f, Unicode) }
func (f OfCourse) String() string { return Pretty(f, Unicode) }
func (f WhyNot) String() string   { return Pretty(f, Unicode) }
func (f Lollipop) String() string { return Pretty(f, Unicode) }
