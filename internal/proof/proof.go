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

// Package proof defines the proof-tree data structure produced by
// internal/prover: a rose tree of inference-rule-labelled nodes, and a
// verifier that checks each node's premise count against its rule tag
// independently of the search that built the tree.
package proof

import (
	"fmt"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
)

// RuleTag names the inference rule applied at a proof node.
type RuleTag int

// The rule tags of the focused one-sided MELL sequent calculus, plus Cut
// (never produced by the prover, but part of the proof-tree vocabulary)
// and two administrative focus tags.
const (
	Axiom RuleTag = iota
	CutRule
	OneIntro
	BottomIntro
	TensorIntro
	ParIntro
	TopIntro
	WithIntro
	PlusLeft
	PlusRight
	OfCourseIntro
	WhyNotIntro
	Weakening
	Contraction
	Dereliction
	FocusSync // administrative: a positive formula is selected for focus
	Blur      // administrative: the focused formula returns to Γ
)

func (t RuleTag) String() string {
	switch t {
	case Axiom:
		return "Axiom"
	case CutRule:
		return "Cut"
	case OneIntro:
		return "OneIntro"
	case BottomIntro:
		return "BottomIntro"
	case TensorIntro:
		return "TensorIntro"
	case ParIntro:
		return "ParIntro"
	case TopIntro:
		return "TopIntro"
	case WithIntro:
		return "WithIntro"
	case PlusLeft:
		return "PlusLeft"
	case PlusRight:
		return "PlusRight"
	case OfCourseIntro:
		return "OfCourseIntro"
	case WhyNotIntro:
		return "WhyNotIntro"
	case Weakening:
		return "Weakening"
	case Contraction:
		return "Contraction"
	case Dereliction:
		return "Dereliction"
	case FocusSync:
		return "FocusSync"
	case Blur:
		return "Blur"
	default:
		return "Unknown"
	}
}

// Proof is a node in a cut-free (in practice; Cut is modelled but never
// emitted by the prover) proof tree: a conclusion sequent, the rule that
// derives it from its premises, and the premises themselves. Proof trees
// are strictly acyclic, rooted at the conclusion, and owned exclusively by
// the search that built them.
type Proof struct {
	Conclusion sequent.Sequent
	Rule       RuleTag
	// CutFormula holds the cut formula for a CutRule node; nil otherwise.
	CutFormula formula.Formula
	Premises   []*Proof
}

// Leaf constructs a proof node with no premises (Axiom, OneIntro,
// TopIntro).
func Leaf(conclusion sequent.Sequent, rule RuleTag) *Proof {
	return &Proof{Conclusion: conclusion, Rule: rule}
}

// Node constructs a proof node with one or more premises.
func Node(conclusion sequent.Sequent, rule RuleTag, premises ...*Proof) *Proof {
	return &Proof{Conclusion: conclusion, Rule: rule, Premises: premises}
}

// CutCount returns the number of Cut nodes anywhere in the proof. The
// prover only ever produces cut-free proofs, so this is always 0 for a
// proof returned by internal/prover.Prove; it exists so that property is
// independently checkable.
func (p *Proof) CutCount() int {
	count := 0
	if p.Rule == CutRule {
		count++
	}

	for _, prem := range p.Premises {
		count += prem.CutCount()
	}

	return count
}

// VerifyError reports a local well-formedness violation found by Verify.
type VerifyError struct {
	Rule   RuleTag
	Reason string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("proof verification failed at %s: %s", e.Rule, e.Reason)
}

// Verify checks that every node of p has the number of premises its rule
// tag requires, and rejects a nil proof or an unrecognised tag,
// independently of however the tree was constructed. It recurses into
// every premise before returning. It does not recompute a node's premises
// from its conclusion: a premise sequent that does not follow from the
// node's rule goes undetected.
func Verify(p *Proof) error {
	if p == nil {
		return &VerifyError{Reason: "nil proof"}
	}

	for _, prem := range p.Premises {
		if err := Verify(prem); err != nil {
			return err
		}
	}

	switch p.Rule {
	case Axiom:
		return verifyLeafArity(p, 0)
	case OneIntro, TopIntro:
		return verifyLeafArity(p, 0)
	case BottomIntro, ParIntro, PlusLeft, PlusRight, OfCourseIntro, Dereliction, FocusSync, Blur:
		return verifyArity(p, 1)
	case TensorIntro, CutRule:
		return verifyArity(p, 2)
	case WithIntro:
		return verifyArity(p, 2)
	case WhyNotIntro, Weakening, Contraction:
		return verifyArityAtMost(p, 1)
	default:
		return &VerifyError{Rule: p.Rule, Reason: "unrecognised rule tag"}
	}
}

func verifyLeafArity(p *Proof, n int) error {
	if len(p.Premises) != n {
		return &VerifyError{Rule: p.Rule, Reason: "expected no premises"}
	}

	return nil
}

func verifyArity(p *Proof, n int) error {
	if len(p.Premises) != n {
		return &VerifyError{Rule: p.Rule, Reason: fmt.Sprintf("expected %d premises, found %d", n, len(p.Premises))}
	}

	return nil
}

func verifyArityAtMost(p *Proof, n int) error {
	if len(p.Premises) > n {
		return &VerifyError{Rule: p.Rule, Reason: fmt.Sprintf("expected at most %d premises, found %d", n, len(p.Premises))}
	}

	return nil
}
