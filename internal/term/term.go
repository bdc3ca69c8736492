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

// Package term implements the linear lambda calculus extracted from proofs
// by internal/extract: variables, unit, tensor pairs, with-pairs,
// injections, case analysis, promotion, dereliction, and the explicit
// copy/discard forms that realise contraction and weakening over the
// unrestricted zone. Capture-avoiding substitution and small-step
// β-reduction to normal form live alongside the term AST in this package.
//
// Linear-use invariant: every name bound by Abs, LetPair or Case occurs
// exactly once in its body. Names bound by Copy or referenced by Derelict
// come from the unrestricted zone and may occur zero, one, or many times;
// they are not reported by FreeVars, which collects linear Var names only.
package term

// Term represents a node of the linear lambda calculus.
type Term interface {
	isTerm()
	String() string
}

// Var is a linearly-bound variable reference, produced by the extractor
// for each formula occurrence it consumes.
type Var struct{ Name string }

func (Var) isTerm() {}

// Unit is the nullary constructor of the multiplicative unit type (from
// OneIntro).
type Unit struct{}

func (Unit) isTerm() {}

// Pair is a tensor pair `(l, r)`, from TensorIntro.
type Pair struct{ Left, Right Term }

func (Pair) isTerm() {}

// LetPair destructures a tensor pair: `let (x, y) = scrutinee in body`,
// consumed at the matching ⊗ occurrence in the context (from ParIntro).
type LetPair struct {
	X, Y       string
	Scrutinee  Term
	Body       Term
}

func (LetPair) isTerm() {}

// Abs is a linear function abstraction `λx. body` (from a ⅋/⊸ context).
type Abs struct {
	Param string
	Body  Term
}

func (Abs) isTerm() {}

// App is application `fn arg`.
type App struct{ Fn, Arg Term }

func (App) isTerm() {}

// Inl is the left injection of a sum, from PlusLeft.
type Inl struct{ Body Term }

func (Inl) isTerm() {}

// Inr is the right injection of a sum, from PlusRight.
type Inr struct{ Body Term }

func (Inr) isTerm() {}

// Case eliminates a sum: `case scrutinee of inl(xl) -> left | inr(xr) -> right`.
type Case struct {
	Scrutinee        Term
	XLeft, XRight    string
	Left, Right      Term
}

func (Case) isTerm() {}

// WithUnit is `⟨⟩`, the nullary constructor of the additive unit type
// (from TopIntro).
type WithUnit struct{}

func (WithUnit) isTerm() {}

// WithPair is the lazy pair `⟨l, r⟩` produced by WithIntro: both premise
// terms are retained, since either projection may be demanded but never
// both (a With is an offered choice, not a used-once resource).
type WithPair struct{ Left, Right Term }

func (WithPair) isTerm() {}

// First projects the left component of a WithPair (`fst t`).
type First struct{ Body Term }

func (First) isTerm() {}

// Second projects the right component of a WithPair (`snd t`).
type Second struct{ Body Term }

func (Second) isTerm() {}

// Absurd eliminates an assumption of the empty type `0`; the proof search
// never actually reaches this (a `0` in the linear zone can never be
// focused on, so no proof — and hence no term — ever contains one in
// practice), but it is part of the term language's vocabulary per the
// Curry–Howard correspondence for the Zero unit.
type Absurd struct{ Body Term }

func (Absurd) isTerm() {}

// Bang is promotion, `!body`; body's free (linear) variables must all be
// drawn from the unrestricted zone (see extract.go).
type Bang struct{ Body Term }

func (Bang) isTerm() {}

// Derelict references one fresh copy of an unrestricted-zone variable's
// promoted payload. Unlike Var, a given Name may appear under zero, one or
// many Derelict nodes in the same term: Θ-variables are reusable by
// construction.
type Derelict struct{ Name string }

func (Derelict) isTerm() {}

// Copy is the explicit contraction form: `copy of as (x, y) in body`
// duplicates a promoted value so that x and y can each be dereliction'd (or
// copied/discarded) independently within body.
type Copy struct {
	Of          Term
	Left, Right string
	Body        Term
}

func (Copy) isTerm() {}

// Discard is the explicit weakening form: `discard of in body` drops a
// promoted value that body does not use.
type Discard struct {
	Of   Term
	Body Term
}

func (Discard) isTerm() {}
