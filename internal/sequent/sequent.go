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

// Package sequent implements the one-sided sequent model used throughout the
// prover: a linear zone, an unrestricted zone, an optional focus slot, and
// the two-sided façade that surface syntax is translated from.
package sequent

import (
	"sort"
	"strings"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/util/collection/hash"
)

// Sequent is a one-sided judgement `⊢ Γ ; Θ`, optionally carrying a focus
// formula that has been plucked out of Γ for the duration of the
// synchronous phase. Linear and Unrestricted are multisets: order does not
// matter for equality or provability, but this type keeps them as slices
// (the prover needs index-addressable removal) and provides CanonicalKey
// and MultisetEqual for order-insensitive comparison.
type Sequent struct {
	Linear       []formula.Formula
	Unrestricted []formula.Formula
	Focus        formula.Formula // nil when no formula is focused
}

// New constructs a one-sided sequent from explicit linear and unrestricted
// zones, with no focus.
func New(linear, unrestricted []formula.Formula) Sequent {
	return Sequent{Linear: linear, Unrestricted: unrestricted}
}

// TwoSided is the antecedent/succedent façade that surface syntax presents:
// `Γ_ante ⊢ Γ_succ`.
type TwoSided struct {
	Ante []formula.Formula
	Succ []formula.Formula
}

// FromTwoSided translates a two-sided sequent to one-sided form by negating
// every antecedent formula and unioning with the succedent:
// `Γ_ante ⊢ Γ_succ` becomes `⊢ negate(Γ_ante), Γ_succ`.
func FromTwoSided(s TwoSided) Sequent {
	linear := make([]formula.Formula, 0, len(s.Ante)+len(s.Succ))

	for _, a := range s.Ante {
		linear = append(linear, formula.Negate(formula.Desugar(a)))
	}

	for _, b := range s.Succ {
		linear = append(linear, formula.Desugar(b))
	}

	return New(linear, nil)
}

// Dual produces the contrapositive two-sided sequent `Δ⊥ ⊢ Γ⊥` of
// `Γ ⊢ Δ`. Provability of a two-sided sequent (via FromTwoSided) and of its
// Dual always agree, by involutive negation.
func (s TwoSided) Dual() TwoSided {
	return TwoSided{Ante: negateAll(s.Succ), Succ: negateAll(s.Ante)}
}

func negateAll(fs []formula.Formula) []formula.Formula {
	out := make([]formula.Formula, len(fs))
	for i, f := range fs {
		out[i] = formula.Negate(f)
	}

	return out
}

// Remove extracts the i-th formula of the linear zone, returning it
// together with the sequent that results from its removal. Θ and the
// focus slot are left untouched.
func (s Sequent) Remove(i int) (formula.Formula, Sequent) {
	f := s.Linear[i]
	rest := make([]formula.Formula, 0, len(s.Linear)-1)
	rest = append(rest, s.Linear[:i]...)
	rest = append(rest, s.Linear[i+1:]...)

	return f, Sequent{Linear: rest, Unrestricted: s.Unrestricted, Focus: s.Focus}
}

// WithLinear returns a copy of s with its linear zone replaced.
func (s Sequent) WithLinear(linear []formula.Formula) Sequent {
	return Sequent{Linear: linear, Unrestricted: s.Unrestricted, Focus: s.Focus}
}

// WithUnrestricted returns a copy of s with its unrestricted zone replaced.
func (s Sequent) WithUnrestricted(unrestricted []formula.Formula) Sequent {
	return Sequent{Linear: s.Linear, Unrestricted: unrestricted, Focus: s.Focus}
}

// WithFocus returns a copy of s with a formula moved into the focus slot;
// the caller is responsible for having already removed it from Linear.
func (s Sequent) WithFocus(f formula.Formula) Sequent {
	return Sequent{Linear: s.Linear, Unrestricted: s.Unrestricted, Focus: f}
}

// Blurred returns a copy of s with the focus slot cleared and the focused
// formula returned to the linear zone (used when focus "blurs" back to the
// asynchronous phase, see internal/prover).
func (s Sequent) Blurred() Sequent {
	if s.Focus == nil {
		return s
	}

	linear := make([]formula.Formula, 0, len(s.Linear)+1)
	linear = append(linear, s.Linear...)
	linear = append(linear, s.Focus)

	return Sequent{Linear: linear, Unrestricted: s.Unrestricted}
}

// AllSplits enumerates every ordered bipartition of a multiset of formulas,
// yielding 2^|gamma| splits in canonical bit-vector order (bit i of the
// counter selects whether gamma[i] goes right). Used by the ⊗ rule to
// choose how the remaining linear zone is divided between the two
// premises.
func AllSplits(gamma []formula.Formula) [][2][]formula.Formula {
	n := len(gamma)
	total := 1 << n
	splits := make([][2][]formula.Formula, 0, total)

	for mask := 0; mask < total; mask++ {
		var left, right []formula.Formula

		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				right = append(right, gamma[i])
			} else {
				left = append(left, gamma[i])
			}
		}

		splits = append(splits, [2][]formula.Formula{left, right})
	}

	return splits
}

// CanonicalKey produces an order-insensitive byte encoding of s suitable
// for use in a hash.Set, as consulted by the prover's failure memo: the
// linear zone and the unrestricted zone are each sorted by formulaKey
// before encoding, so that two sequents differing only in the order their
// formulas were listed hash and compare equal.
func (s Sequent) CanonicalKey() hash.BytesKey {
	linear := sortedKeys(s.Linear)
	unrestricted := sortedKeys(s.Unrestricted)

	var b strings.Builder

	b.WriteString("L[")
	b.WriteString(strings.Join(linear, "|"))
	b.WriteString("]U[")
	b.WriteString(strings.Join(unrestricted, "|"))
	b.WriteString("]")

	if s.Focus != nil {
		b.WriteString("F[")
		b.WriteString(formulaKey(s.Focus))
		b.WriteString("]")
	}

	return hash.NewBytesKey([]byte(b.String()))
}

func sortedKeys(fs []formula.Formula) []string {
	keys := make([]string, len(fs))
	for i, f := range fs {
		keys[i] = formulaKey(f)
	}

	sort.Strings(keys)

	return keys
}

// formulaKey renders a formula into a string that is a total, structural
// key: two formulas compare Equal iff their formulaKey strings are equal.
// It drives the memo's canonicalization (CanonicalKey) and MultisetEqual;
// the asynchronous phase's rule order is the order of appearance in Linear
// and does not use it.
func formulaKey(f formula.Formula) string {
	return formula.Pretty(f, formula.ASCII)
}

// CanonicalLess is the total order on formulas induced by formulaKey, the
// same order CanonicalKey and MultisetEqual sort by.
func CanonicalLess(a, b formula.Formula) bool {
	return formulaKey(a) < formulaKey(b)
}

// MultisetEqual compares two formula slices as multisets: order-insensitive,
// multiplicity-sensitive.
func MultisetEqual(a, b []formula.Formula) bool {
	if len(a) != len(b) {
		return false
	}

	ka, kb := sortedKeys(a), sortedKeys(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}

	return true
}

// MultisetUnion concatenates two formula multisets.
func MultisetUnion(a, b []formula.Formula) []formula.Formula {
	out := make([]formula.Formula, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}
