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
package prover

import (
	"sort"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/proof"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
)

// focusPriority orders candidate formulas within the synchronous phase:
// atoms first (fast success), then 1 (cheap), then ⊗ (expensive — many
// splits), then ⊕ (two alternatives), then ! (strict context check).
// Everything else (Zero has no introduction rule at all) sorts last and
// simply never succeeds.
func focusPriority(f formula.Formula) int {
	switch f.(type) {
	case formula.Atom:
		return 0
	case formula.One:
		return 1
	case formula.Tensor:
		return 2
	case formula.Plus:
		return 3
	case formula.OfCourse:
		return 4
	default:
		return 5
	}
}

// proveSync is reached only once the asynchronous phase has saturated: no
// negative-compound formula remains in s.Linear. It chooses a positive
// focus, in priority order with ties broken by original index (an index
// relative to Linear, which itself preserves the lexical order surface
// syntax produced), and falls back to dereliction copies from Θ only once
// every focus in Γ has failed.
func (p *searcher) proveSync(s sequent.Sequent, depth int) (*proof.Proof, bool, bool) {
	type candidate struct {
		index    int
		priority int
	}

	p.trace("sync-phase", s)

	var candidates []candidate

	for i, f := range s.Linear {
		if f.Polarity() == formula.Positive {
			candidates = append(candidates, candidate{i, focusPriority(f)})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority < candidates[j].priority
	})

	anyDepthExceeded := false

	for _, c := range candidates {
		f, rest := s.Remove(c.index)

		p.trace("focus-choice", rest.WithFocus(f))

		sub, ok, de := p.continueFocus(f, rest.Linear, rest.Unrestricted, depth+1)
		if ok {
			return proof.Node(s, proof.FocusSync, sub), true, false
		}

		anyDepthExceeded = anyDepthExceeded || de
	}

	// Dereliction: copy a formula out of Θ without consuming it.
	for _, d := range s.Unrestricted {
		p.trace("focus-choice", s.WithFocus(d))

		sub, ok, de := p.continueFocus(d, s.Linear, s.Unrestricted, depth+1)
		if ok {
			return proof.Node(s, proof.Dereliction, sub), true, false
		}

		anyDepthExceeded = anyDepthExceeded || de
	}

	return nil, false, anyDepthExceeded
}

// continueFocus exhaustively decomposes the current focus f against the
// remaining linear context gamma (and the unchanged Θ), without returning
// to the asynchronous phase, until f becomes negative or an atom blurs it
// back to Γ.
func (p *searcher) continueFocus(f formula.Formula, gamma, theta []formula.Formula, depth int) (*proof.Proof, bool, bool) {
	if depth > p.maxDepth {
		return nil, false, true
	}

	focused := sequent.Sequent{Linear: gamma, Unrestricted: theta, Focus: f}

	if isBlur(f) {
		blurredLinear := extend1(gamma, f)
		sub, ok, de := p.search(sequent.New(blurredLinear, theta), depth)

		if !ok {
			return nil, false, de
		}

		return proof.Node(focused, proof.Blur, sub), true, false
	}

	switch v := f.(type) {
	case formula.Atom:
		if sequent.MultisetEqual(gamma, []formula.Formula{formula.NegAtom{Name: v.Name}}) {
			concl := sequent.New(extend1(gamma, f), theta)
			return proof.Leaf(concl, proof.Axiom), true, false
		}

		return nil, false, false
	case formula.One:
		if len(gamma) == 0 && len(theta) == 0 {
			concl := sequent.New([]formula.Formula{f}, theta)
			return proof.Leaf(concl, proof.OneIntro), true, false
		}

		return nil, false, false
	case formula.Tensor:
		concl := sequent.New(extend1(gamma, f), theta)

		anyDE := false

		for _, split := range sequent.AllSplits(gamma) {
			left, leftOK, leftDE := p.continueFocus(v.Left, split[0], theta, depth+1)
			if !leftOK {
				anyDE = anyDE || leftDE
				continue
			}

			right, rightOK, rightDE := p.continueFocus(v.Right, split[1], theta, depth+1)
			if !rightOK {
				anyDE = anyDE || rightDE
				continue
			}

			return proof.Node(concl, proof.TensorIntro, left, right), true, false
		}

		return nil, false, anyDE
	case formula.Plus:
		concl := sequent.New(extend1(gamma, f), theta)

		left, leftOK, leftDE := p.continueFocus(v.Left, gamma, theta, depth+1)
		if leftOK {
			return proof.Node(concl, proof.PlusLeft, left), true, false
		}

		right, rightOK, rightDE := p.continueFocus(v.Right, gamma, theta, depth+1)
		if rightOK {
			return proof.Node(concl, proof.PlusRight, right), true, false
		}

		return nil, false, leftDE || rightDE
	case formula.OfCourse:
		if len(gamma) != 0 {
			// By the time the synchronous phase runs, every ?-formula has
			// already been moved into Θ by the asynchronous rule; a
			// non-empty Γ here can never consist entirely of ?-formulas
			// and promotion cannot apply.
			return nil, false, false
		}

		concl := sequent.New([]formula.Formula{f}, theta)
		newGoal := sequent.New([]formula.Formula{v.Body}, theta)
		sub, ok, de := p.search(newGoal, depth+1)

		if !ok {
			return nil, false, de
		}

		return proof.Node(concl, proof.OfCourseIntro, sub), true, false
	default:
		// Zero and any other formula with no synchronous introduction rule.
		return nil, false, false
	}
}

// isBlur reports whether f, reached as the current synchronous focus,
// must return to Γ and re-enter the asynchronous phase: this holds
// exactly when f is negative, including the negative atom p⊥.
func isBlur(f formula.Formula) bool {
	return f.Polarity() == formula.Negative
}
