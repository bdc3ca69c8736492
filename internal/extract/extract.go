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

// Package extract turns a proof.Proof into a term.Term of the linear lambda
// calculus, following the correspondence: Axiom binds the variable of the
// matching linear occurrence, OneIntro/TopIntro are the nullary unit
// constructors, TensorIntro/ParIntro are introduction/elimination of tensor
// pairs, PlusLeft/PlusRight are injections, WithIntro builds a lazy pair of
// both premise terms, OfCourseIntro promotes, and Dereliction reads a fresh
// reference into the unrestricted zone. WhyNotIntro additionally makes
// contraction and weakening on the name it moves into the unrestricted zone
// explicit: wrapContraction inspects how many times the resulting body
// actually derelicts that name and wraps it in a Copy or Discard form
// accordingly.
//
// The prover (internal/prover) does not itself label proof nodes with the
// variable names bound to each sequent position — that bookkeeping belongs
// here, since it is needed only for extraction. Extract replays the same
// deterministic rule-selection order the prover used (recoverable from each
// node's Rule tag and Conclusion alone) to assign a fresh name to every
// linear and unrestricted occurrence exactly once, as it first enters a
// sequent.
package extract

import (
	"fmt"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/proof"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/term"
)

// Extractor owns the fresh-name counter and the set of names known to
// reference the unrestricted zone (and so render as term.Derelict rather
// than term.Var). A fresh Extractor should be used per top-level proof.
type Extractor struct {
	names    *term.Gensym
	derelict map[string]bool
}

// New creates an Extractor whose fresh names are "x0", "x1", ....
func New() *Extractor {
	return &Extractor{names: term.NewGensym("x"), derelict: map[string]bool{}}
}

// Extract builds the term corresponding to p, assigning a fresh variable to
// every position of p's root conclusion before recursing.
func Extract(p *proof.Proof) term.Term {
	return New().Extract(p)
}

// Extract builds the term corresponding to p using e's counter.
func (e *Extractor) Extract(p *proof.Proof) term.Term {
	t, _ := e.ExtractNamed(p)
	return t
}

// ExtractNamed is Extract, additionally returning the fresh names bound to
// each position of p's root conclusion's linear zone, in the same order —
// callers that need to refer to a hypothesis by the same name the
// extracted term's body uses it under (internal/workbench's codegen
// pipeline, rendering a function signature) cannot recover this mapping
// from the term alone once the proof has been discarded.
func (e *Extractor) ExtractNamed(p *proof.Proof) (term.Term, []string) {
	lin := e.freshAll(len(p.Conclusion.Linear))
	theta := e.freshAll(len(p.Conclusion.Unrestricted))

	return e.node(p, lin, theta, ""), lin
}

func (e *Extractor) freshAll(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = e.names.Next()
	}

	return out
}

// node extracts the term for p. lin and theta are the variable names bound
// to p.Conclusion.Linear and p.Conclusion.Unrestricted respectively — in
// full, for every rule except the synchronous-phase rules (Axiom,
// TensorIntro, PlusLeft, PlusRight, OfCourseIntro, Blur), where lin instead
// names only the non-focus remainder (Γ) and focusVar separately names the
// current focus formula.
func (e *Extractor) node(p *proof.Proof, lin, theta []string, focusVar string) term.Term {
	switch p.Rule {
	case proof.TopIntro:
		return term.WithUnit{}
	case proof.OneIntro:
		return term.Unit{}
	case proof.Axiom:
		return e.ref(lin[0])
	case proof.BottomIntro:
		idx := indexOfType(p.Conclusion.Linear, (*formula.Bottom)(nil))
		return e.node(p.Premises[0], removeAt(lin, idx), theta, "")
	case proof.ParIntro:
		idx := indexOfType(p.Conclusion.Linear, (*formula.Par)(nil))
		scrutinee := lin[idx]
		x, y := e.names.Next(), e.names.Next()
		childLin := append(removeAt(lin, idx), x, y)
		body := e.node(p.Premises[0], childLin, theta, "")

		return term.LetPair{X: x, Y: y, Scrutinee: e.ref(scrutinee), Body: body}
	case proof.WhyNotIntro:
		idx := indexOfType(p.Conclusion.Linear, (*formula.WhyNot)(nil))
		name := lin[idx]
		childTheta := append(append([]string{}, theta...), name)
		body := e.node(p.Premises[0], removeAt(lin, idx), childTheta, "")

		return e.wrapContraction(name, body)
	case proof.WithIntro:
		idx := indexOfType(p.Conclusion.Linear, (*formula.With)(nil))
		name := lin[idx]
		leftLin := append(removeAt(lin, idx), name)
		rightLin := append(removeAt(lin, idx), name)
		left := e.node(p.Premises[0], leftLin, theta, "")
		right := e.node(p.Premises[1], rightLin, theta, "")

		return term.WithPair{Left: left, Right: right}
	case proof.PlusLeft, proof.PlusRight:
		fresh := e.names.Next()
		sub := e.node(p.Premises[0], lin, theta, fresh)

		if p.Rule == proof.PlusLeft {
			return term.Inl{Body: sub}
		}

		return term.Inr{Body: sub}
	case proof.OfCourseIntro:
		fresh := e.names.Next()
		body := e.node(p.Premises[0], []string{fresh}, theta, "")

		return term.Bang{Body: body}
	case proof.FocusSync:
		f := focusFormula(p.Premises[0])
		idx := removeOneFormula(p.Conclusion.Linear, f)
		fv := lin[idx]

		return e.node(p.Premises[0], removeAt(lin, idx), theta, fv)
	case proof.Dereliction:
		d := focusFormula(p.Premises[0])
		idx := removeOneFormula(p.Conclusion.Unrestricted, d)
		fv := theta[idx]
		e.derelict[fv] = true

		return e.node(p.Premises[0], lin, theta, fv)
	case proof.Blur:
		childLin := append(append([]string{}, lin...), focusVar)
		return e.node(p.Premises[0], childLin, theta, "")
	case proof.TensorIntro:
		leftWant := gammaFormulas(p.Premises[0])
		rightWant := gammaFormulas(p.Premises[1])

		leftEnv, restF, restEnv := matchEnv(p.Conclusion.Linear[:len(p.Conclusion.Linear)-1], lin, leftWant)
		rightEnv, _, _ := matchEnv(restF, restEnv, rightWant)

		leftFV, rightFV := e.names.Next(), e.names.Next()
		left := e.node(p.Premises[0], leftEnv, theta, leftFV)
		right := e.node(p.Premises[1], rightEnv, theta, rightFV)

		return term.Pair{Left: left, Right: right}
	default:
		panic(fmt.Sprintf("extract: unexpected rule %s in a proof produced by internal/prover", p.Rule))
	}
}

// wrapContraction makes explicit, at the point name comes into scope via a
// WhyNotIntro node, how many times body actually derelicts it: zero
// Derelict(name) occurrences become an explicit Discard of the promoted
// value, exactly one is left as the bare reference already in body (no
// contraction needed for a single use), and two or more are rewritten into
// a chain of explicit Copy forms so that each use gets its own fresh handle
// on the promoted value. This realises spec.md §4.4's WhyNotIntro row:
// "contraction and weakening on ?-variables translate to explicit copy and
// discard at extraction time."
func (e *Extractor) wrapContraction(name string, body term.Term) term.Term {
	renamed, uses := e.renameDerelictOccurrences(body, name)

	switch len(uses) {
	case 0:
		return term.Discard{Of: term.Var{Name: name}, Body: body}
	case 1:
		return body
	default:
		return e.copyChain(term.Var{Name: name}, uses, renamed)
	}
}

// copyChain builds a right-nested chain of Copy forms splitting of into
// exactly len(names) fresh handles on the promoted value, one per entry of
// names, with body as the innermost result. Each intermediate handle
// (every name but the last) is itself split again by a further Copy, since
// term.Copy is binary.
func (e *Extractor) copyChain(of term.Term, names []string, body term.Term) term.Term {
	if len(names) == 2 {
		return term.Copy{Of: of, Left: names[0], Right: names[1], Body: body}
	}

	rest := e.names.Next()
	inner := e.copyChain(term.Var{Name: rest}, names[1:], body)

	return term.Copy{Of: of, Left: names[0], Right: rest, Body: inner}
}

// renameDerelictOccurrences walks t, replacing every Derelict(target) leaf
// with Derelict of a fresh name, and returns the rewritten term together
// with the fresh names assigned, in the order they were encountered. A
// Derelict leaf is never a binder, so renaming it needs no capture
// avoidance.
func (e *Extractor) renameDerelictOccurrences(t term.Term, target string) (term.Term, []string) {
	var uses []string

	var walk func(term.Term) term.Term
	walk = func(t term.Term) term.Term {
		switch v := t.(type) {
		case term.Derelict:
			if v.Name != target {
				return v
			}

			fresh := e.names.Next()
			uses = append(uses, fresh)

			return term.Derelict{Name: fresh}
		case term.Var, term.Unit, term.WithUnit:
			return v
		case term.Pair:
			return term.Pair{Left: walk(v.Left), Right: walk(v.Right)}
		case term.LetPair:
			return term.LetPair{X: v.X, Y: v.Y, Scrutinee: walk(v.Scrutinee), Body: walk(v.Body)}
		case term.Abs:
			return term.Abs{Param: v.Param, Body: walk(v.Body)}
		case term.App:
			return term.App{Fn: walk(v.Fn), Arg: walk(v.Arg)}
		case term.Inl:
			return term.Inl{Body: walk(v.Body)}
		case term.Inr:
			return term.Inr{Body: walk(v.Body)}
		case term.Case:
			return term.Case{
				Scrutinee: walk(v.Scrutinee),
				XLeft:     v.XLeft,
				XRight:    v.XRight,
				Left:      walk(v.Left),
				Right:     walk(v.Right),
			}
		case term.WithPair:
			return term.WithPair{Left: walk(v.Left), Right: walk(v.Right)}
		case term.First:
			return term.First{Body: walk(v.Body)}
		case term.Second:
			return term.Second{Body: walk(v.Body)}
		case term.Absurd:
			return term.Absurd{Body: walk(v.Body)}
		case term.Bang:
			return term.Bang{Body: walk(v.Body)}
		case term.Copy:
			return term.Copy{Of: walk(v.Of), Left: v.Left, Right: v.Right, Body: walk(v.Body)}
		case term.Discard:
			return term.Discard{Of: walk(v.Of), Body: walk(v.Body)}
		default:
			return t
		}
	}

	return walk(t), uses
}

// ref renders a name as the variable it was bound to: Derelict if it traces
// back to a copy taken from the unrestricted zone, Var otherwise.
func (e *Extractor) ref(name string) term.Term {
	if e.derelict[name] {
		return term.Derelict{Name: name}
	}

	return term.Var{Name: name}
}

// focusFormula returns the formula that is in synchronous focus at p: the
// explicit Focus field for a Blur node, or the last linear position for
// every other continueFocus-produced node (Axiom, TensorIntro, PlusLeft,
// PlusRight, OfCourseIntro), which always append their focus there.
func focusFormula(p *proof.Proof) formula.Formula {
	if p.Conclusion.Focus != nil {
		return p.Conclusion.Focus
	}

	return p.Conclusion.Linear[len(p.Conclusion.Linear)-1]
}

// gammaFormulas is the dual of focusFormula: the Γ part of p's conclusion,
// excluding whichever formula is in focus.
func gammaFormulas(p *proof.Proof) []formula.Formula {
	if p.Conclusion.Focus != nil {
		return p.Conclusion.Linear
	}

	return p.Conclusion.Linear[:len(p.Conclusion.Linear)-1]
}

// removeAt returns a copy of env with the entry at index i removed.
func removeAt(env []string, i int) []string {
	out := make([]string, 0, len(env)-1)
	out = append(out, env[:i]...)
	out = append(out, env[i+1:]...)

	return out
}

// removeOneFormula finds the index of the first formula in fs structurally
// equal to target and returns it; used to locate, within a node's own
// conclusion, the position a child's focus formula was plucked from.
func removeOneFormula(fs []formula.Formula, target formula.Formula) int {
	for i, f := range fs {
		if formula.Equals(f, target) {
			return i
		}
	}

	panic("extract: focus formula not found in parent conclusion")
}

// matchEnv partitions (poolF, poolEnv) against want, a multiset that must be
// a sub-multiset of poolF: it returns the names matched to want in want's
// order, together with the unmatched remainder of the pool. Used to recover
// which half of a ⊗ split a premise received, since only the resulting
// formula multiset — not the split itself — survives into the proof tree.
func matchEnv(poolF []formula.Formula, poolEnv []string, want []formula.Formula) (matched []string, restF []formula.Formula, restEnv []string) {
	used := make([]bool, len(poolF))
	matched = make([]string, len(want))

	for wi, wf := range want {
		for pi, pf := range poolF {
			if !used[pi] && formula.Equals(pf, wf) {
				matched[wi] = poolEnv[pi]
				used[pi] = true

				break
			}
		}
	}

	for pi := range poolF {
		if !used[pi] {
			restF = append(restF, poolF[pi])
			restEnv = append(restEnv, poolEnv[pi])
		}
	}

	return matched, restF, restEnv
}

// indexOfType returns the index of the first element of fs whose dynamic
// type matches zero (a typed nil pointer used purely to name the type,
// e.g. (*formula.Par)(nil)). The asynchronous phase always picks the first
// applicable formula in lexical order, so this recovers the same choice the
// prover made without needing the index stored explicitly.
func indexOfType(fs []formula.Formula, zero interface{}) int {
	switch zero.(type) {
	case *formula.Bottom:
		for i, f := range fs {
			if _, ok := f.(formula.Bottom); ok {
				return i
			}
		}
	case *formula.Par:
		for i, f := range fs {
			if _, ok := f.(formula.Par); ok {
				return i
			}
		}
	case *formula.WhyNot:
		for i, f := range fs {
			if _, ok := f.(formula.WhyNot); ok {
				return i
			}
		}
	case *formula.With:
		for i, f := range fs {
			if _, ok := f.(formula.With); ok {
				return i
			}
		}
	}

	panic("extract: expected formula not found in conclusion")
}
