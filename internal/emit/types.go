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

// Package emit translates formulas and normalized terms into an affine
// target language: a small Rust-flavoured pseudo-syntax with move-by-default
// single-use bindings and an explicit shared-reference type for promoted
// values, chosen because it is the most direct rendering of "affine
// ownership" a reader unfamiliar with linear logic can check by eye.
//
// The emitter never re-type-checks its output: internal/prover and
// internal/extract already guarantee that a cut-free proof's term is
// well-typed, so emission is a structural rendering, not a second proof.
package emit

import (
	"fmt"
	"strings"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
)

// Type renders f as the target's type syntax. The mapping is total: every
// connective has a fixed rendering, and compound formulas compose
// structurally by recursing into their operands.
func Type(f formula.Formula) string {
	switch v := f.(type) {
	case formula.Atom:
		return v.Name
	case formula.NegAtom:
		// A negative atom only ever appears as an internal bookkeeping
		// artefact of FromTwoSided; a well-formed top-level query never
		// asks to emit one directly, but the dual rendering (fn(p) ->
		// Never, i.e. "a consumer of p") keeps Type total.
		return fmt.Sprintf("fn(%s) -> Never", v.Name)
	case formula.One:
		return "Unit"
	case formula.Bottom:
		return "Never"
	case formula.Top:
		return "Top"
	case formula.Zero:
		return "Empty"
	case formula.Tensor:
		return fmt.Sprintf("Product<%s, %s>", Type(v.Left), Type(v.Right))
	case formula.Par:
		// A⅋B's only direct appearances left after Desugar are as the
		// desugaring of A⊸B; render it as the linear function type.
		return fmt.Sprintf("fn(%s) -> %s", Type(formula.Negate(v.Left)), Type(v.Right))
	case formula.With:
		return fmt.Sprintf("Choice<%s, %s>", Type(v.Left), Type(v.Right))
	case formula.Plus:
		return fmt.Sprintf("Sum<%s, %s>", Type(v.Left), Type(v.Right))
	case formula.OfCourse:
		return fmt.Sprintf("Shared<%s>", Type(v.Body))
	case formula.WhyNot:
		return fmt.Sprintf("Demand<%s>", Type(v.Body))
	case formula.Lollipop:
		return fmt.Sprintf("fn(%s) -> %s", Type(v.Left), Type(v.Right))
	default:
		panic("emit: unrecognised formula in Type")
	}
}

// Preamble returns the helper type definitions every emitted module needs:
// the sum type, the with/choice type (a pair of thunks, so that only the
// branch actually demanded ever runs), the unit/top and empty/never
// nominal shapes, and the shared-reference alias.
func Preamble() string {
	defs := []string{
		"type Unit = ();",
		"struct Top;",
		"enum Empty {}",
		"type Never = Empty;",
		"struct Product<L, R>(L, R);",
		"enum Sum<L, R> { Left(L), Right(R) }",
		"struct Choice<L, R> { left: Box<dyn FnOnce() -> L>, right: Box<dyn FnOnce() -> R> }",
		"type Shared<T> = std::rc::Rc<T>;",
		"type Demand<T> = Shared<T>;",
	}

	return strings.Join(defs, "\n") + "\n"
}
