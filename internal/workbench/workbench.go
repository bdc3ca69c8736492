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
package workbench

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/emit"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/extract"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/proof"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/prover"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/surface"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/term"
)

// Config controls the depth bound and trace logging shared by every
// pipeline operation; it carries the same fields as prover.Config (see
// proverConfig), kept here so cmd/llwb has a single struct to build from flags.
type Config struct {
	MaxDepth int
	Logger   log.FieldLogger
}

func (c Config) proverConfig() prover.Config {
	return prover.Config{MaxDepth: c.MaxDepth, Logger: c.Logger}
}

// ParseResult is the semantic contract of the `parse` command: a formula's
// pretty-printing, its desugared form (no Lollipop node) and its negation.
type ParseResult struct {
	Pretty    string
	Desugared string
	Negation  string
}

// Parse parses a single formula and reports its pretty form, its
// desugaring and its De Morgan negation.
func Parse(input string) (ParseResult, error) {
	f, err := surface.ParseFormula(input)
	if err != nil {
		return ParseResult{}, err
	}

	desugared := formula.Desugar(f)

	return ParseResult{
		Pretty:    formula.Pretty(f, formula.Unicode),
		Desugared: formula.Pretty(desugared, formula.Unicode),
		Negation:  formula.Pretty(formula.Negate(f), formula.Unicode),
	}, nil
}

// ProveResult is the semantic contract of the `prove` command.
type ProveResult struct {
	TwoSided      sequent.TwoSided
	Provable      bool
	DepthExceeded bool
	Proof         *proof.Proof
}

// Prove parses a two-sided sequent and decides it, returning either a
// cut-free, Verify-passing proof or a clean "not proven within bound"
// report. A proof that fails Verify is a bug in the prover: Prove reports
// it as an *InternalError rather than returning a malformed proof.
func Prove(input string, cfg Config) (ProveResult, error) {
	ts, err := surface.ParseSequent(input)
	if err != nil {
		return ProveResult{}, err
	}

	res := prover.Prove(sequent.FromTwoSided(ts), cfg.proverConfig())

	if res.DepthExceeded {
		return ProveResult{TwoSided: ts, DepthExceeded: true}, nil
	}

	if !res.Provable {
		return ProveResult{TwoSided: ts, Provable: false}, nil
	}

	if err := proof.Verify(res.Proof); err != nil {
		return ProveResult{}, &InternalError{Op: "verify", Reason: err.Error()}
	}

	return ProveResult{TwoSided: ts, Provable: true, Proof: res.Proof}, nil
}

// ExtractResult is the semantic contract of the `extract` command.
type ExtractResult struct {
	TwoSided sequent.TwoSided
	Term     term.Term
	// LinearNames are the fresh variable names bound to each position of
	// the proved one-sided sequent's linear zone, in order: the first
	// len(TwoSided.Ante) of them are the names the term body actually
	// uses for each antecedent hypothesis (see internal/extract.ExtractNamed).
	LinearNames []string
}

// Extract proves input, then extracts its linear lambda term, optionally
// normalizing it. When the sequent is not proved, whether refuted or cut
// off by the depth bound, Extract returns false with a nil error; the
// result then carries only TwoSided and does not say which of the two
// happened. A panic raised while extracting or normalizing is reported as
// an *InternalError with no term.
func Extract(input string, normalize bool, cfg Config) (res ExtractResult, ok bool, err error) {
	pr, err := Prove(input, cfg)
	if err != nil {
		return ExtractResult{}, false, err
	}

	if pr.Proof == nil {
		return ExtractResult{TwoSided: pr.TwoSided}, false, nil
	}

	defer func() {
		if r := recover(); r != nil {
			res, ok, err = ExtractResult{}, false, &InternalError{Op: "extract", Reason: fmt.Sprintf("%v", r)}
		}
	}()

	t, names := extract.New().ExtractNamed(pr.Proof)
	if normalize {
		t = term.Normalize(t)
	}

	return ExtractResult{TwoSided: pr.TwoSided, Term: t, LinearNames: names}, true, nil
}

// Codegen runs extract + normalize + emit as a single pipeline, surfacing
// extraction/emission failures as *InternalError without partial output,
// per the error policy.
func Codegen(input string, cfg Config) (string, bool, error) {
	res, provable, err := Extract(input, true, cfg)
	if err != nil {
		return "", false, err
	}

	if !provable {
		return "", false, nil
	}

	out, err := emitModule(res.TwoSided, res.Term, res.LinearNames)
	if err != nil {
		return "", false, err
	}

	return out, true, nil
}

// emitModule wraps emit.Module, translating a panic from an unrecognised
// formula or term construct into an *InternalError: such a construct can
// never arise from a proof the prover produced and Verify accepted, so
// reaching one here is a bug, not a user-facing failure.
func emitModule(ts sequent.TwoSided, t term.Term, linearNames []string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", &InternalError{Op: "emit", Reason: fmt.Sprintf("%v", r)}
		}
	}()

	hyps := make([]emit.Hypothesis, len(ts.Ante))

	for i, a := range ts.Ante {
		hyps[i] = emit.Hypothesis{Name: linearNames[i], Formula: a}
	}

	var succ formula.Formula = formula.One{}
	if len(ts.Succ) == 1 {
		succ = ts.Succ[0]
	} else if len(ts.Succ) > 1 {
		succ = ts.Succ[len(ts.Succ)-1]
		for i := len(ts.Succ) - 2; i >= 0; i-- {
			succ = formula.Tensor{Left: ts.Succ[i], Right: succ}
		}
	}

	return emit.Module("proved", hyps, succ, t), nil
}

// Viz proves input and renders its proof tree in the given format.
func Viz(input string, format surface.VizFormat, cfg Config) (string, bool, error) {
	pr, err := Prove(input, cfg)
	if err != nil {
		return "", false, err
	}

	if pr.Proof == nil {
		return "", false, nil
	}

	return surface.RenderProof(pr.Proof, format), true, nil
}
