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

// Package prover implements Andreoli's focused one-sided sequent calculus
// decision procedure for MALL extended with the exponential fragment
// (MELL): an asynchronous phase that saturates every invertible negative
// formula, and a synchronous phase that exhaustively decomposes a single
// chosen positive focus. This is the algorithmic core of the workbench.
package prover

import (
	log "github.com/sirupsen/logrus"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/proof"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/util/collection/hash"
)

// DefaultMaxDepth is the configurable depth bound's default value.
const DefaultMaxDepth = 100

// Config controls a single proof search.
type Config struct {
	// MaxDepth bounds the recursion depth of the search. Zero selects
	// DefaultMaxDepth.
	MaxDepth int
	// Logger receives phase/focus/memo trace events when non-nil. Callers
	// that want tracing typically pass logrus.StandardLogger() gated
	// behind a -v flag; nil disables tracing entirely with no overhead
	// beyond a nil check.
	Logger log.FieldLogger
}

// Result is the outcome of a single call to Prove.
type Result struct {
	// Proof is the cut-free proof tree, non-nil iff Provable is true.
	Proof *proof.Proof
	// Provable is true iff a proof was found within the depth bound.
	Provable bool
	// DepthExceeded is true iff the bound was hit before the question
	// could be settled either way; it is mutually exclusive with
	// Provable, and distinct from a confirmed non-provability.
	DepthExceeded bool
}

// Prove decides whether s holds, searching at most cfg.MaxDepth levels
// deep. The failure memo used internally is scoped to this single call and
// discarded on return.
func Prove(s sequent.Sequent, cfg Config) Result {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	p := &searcher{maxDepth: maxDepth, memo: hash.NewSet[hash.BytesKey](64), log: cfg.Logger}

	prf, ok, depthExceeded := p.search(s, 0)
	if depthExceeded {
		return Result{DepthExceeded: true}
	}

	if !ok {
		return Result{Provable: false}
	}

	return Result{Proof: prf, Provable: true}
}

// searcher owns the per-call working memory of a single proof search: the
// failure memo and the depth bound. It holds no state beyond what a single
// top-level Prove call needs, and is discarded on return.
type searcher struct {
	maxDepth int
	memo     *hash.Set[hash.BytesKey]
	log      log.FieldLogger
}

func (p *searcher) trace(event string, s sequent.Sequent) {
	if p.log == nil {
		return
	}

	p.log.WithField("event", event).Debug(s.CanonicalKey())
}

// search is the asynchronous-phase entry point: canonicalize and consult
// the memo, saturate every invertible negative formula, then hand off to
// the synchronous phase. Every recursive call into a fresh plain sequent
// (as opposed to continuing an existing focus) goes through this
// function, which is the sole place the memo is read and written.
func (p *searcher) search(s sequent.Sequent, depth int) (*proof.Proof, bool, bool) {
	if depth > p.maxDepth {
		return nil, false, true
	}

	key := s.CanonicalKey()
	if p.memo.Contains(key) {
		p.trace("memo-hit", s)
		return nil, false, false
	}

	prf, ok, depthExceeded := p.proveOnce(s, depth)
	if !ok && !depthExceeded {
		p.memo.Insert(key)
	}

	return prf, ok, depthExceeded
}

// proveOnce runs one pass of the asynchronous phase (decomposing the first
// applicable invertible formula it finds, in lexical order, then
// recursing) and falls through to the synchronous phase once no
// invertible formula remains.
func (p *searcher) proveOnce(s sequent.Sequent, depth int) (*proof.Proof, bool, bool) {
	p.trace("async-phase", s)

	// Top closes the branch unconditionally, regardless of the rest of Γ.
	for _, f := range s.Linear {
		if _, ok := f.(formula.Top); ok {
			return proof.Leaf(s, proof.TopIntro), true, false
		}
	}

	for i, f := range s.Linear {
		switch v := f.(type) {
		case formula.Par:
			_, rest := s.Remove(i)
			next := rest.WithLinear(extend2(rest.Linear, v.Left, v.Right))
			sub, ok, de := p.search(next, depth+1)

			if !ok {
				return nil, false, de
			}

			return proof.Node(s, proof.ParIntro, sub), true, false
		case formula.Bottom:
			_, rest := s.Remove(i)
			sub, ok, de := p.search(rest, depth+1)

			if !ok {
				return nil, false, de
			}

			return proof.Node(s, proof.BottomIntro, sub), true, false
		case formula.WhyNot:
			_, rest := s.Remove(i)
			next := rest.WithUnrestricted(extend1(rest.Unrestricted, v.Body))
			sub, ok, de := p.search(next, depth+1)

			if !ok {
				return nil, false, de
			}

			return proof.Node(s, proof.WhyNotIntro, sub), true, false
		case formula.With:
			_, rest := s.Remove(i)
			leftSeq := rest.WithLinear(extend1(rest.Linear, v.Left))
			rightSeq := rest.WithLinear(extend1(rest.Linear, v.Right))

			leftProof, leftOK, leftDE := p.search(leftSeq, depth+1)
			rightProof, rightOK, rightDE := p.search(rightSeq, depth+1)

			if leftOK && rightOK {
				return proof.Node(s, proof.WithIntro, leftProof, rightProof), true, false
			}

			return nil, false, leftDE || rightDE
		}
	}

	return p.proveSync(s, depth)
}

// extend1 and extend2 append to base without aliasing its backing array,
// since With and Par each derive two independent extensions from the same
// base slice and append's spare capacity would otherwise let one
// overwrite the other.
func extend1(base []formula.Formula, f formula.Formula) []formula.Formula {
	out := make([]formula.Formula, len(base)+1)
	copy(out, base)
	out[len(base)] = f

	return out
}

func extend2(base []formula.Formula, a, b formula.Formula) []formula.Formula {
	out := make([]formula.Formula, len(base)+2)
	copy(out, base)
	out[len(base)] = a
	out[len(base)+1] = b

	return out
}
