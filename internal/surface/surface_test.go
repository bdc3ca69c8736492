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
package surface_test

import (
	"strings"
	"testing"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/proof"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/surface"
)

func TestParseFormulaUnicodeAndASCIIAgree(t *testing.T) {
	cases := []struct{ unicode, ascii string }{
		{"A ⊗ B", "A * B"},
		{"A ⅋ B", "A par B"},
		{"A ⊸ B", "A -o B"},
		{"A & B", "A & B"},
		{"A ⊕ B", "A + B"},
		{"!A", "!A"},
		{"?A", "?A"},
		{"A^", "A^"},
		{"1", "1"},
		{"⊥", "bot"},
		{"⊤", "top"},
		{"0", "0"},
	}

	for _, c := range cases {
		u, err := surface.ParseFormula(c.unicode)
		if err != nil {
			t.Fatalf("ParseFormula(%q): %v", c.unicode, err)
		}

		a, err := surface.ParseFormula(c.ascii)
		if err != nil {
			t.Fatalf("ParseFormula(%q): %v", c.ascii, err)
		}

		if !formula.Equals(u, a) {
			t.Errorf("ParseFormula(%q) = %v, ParseFormula(%q) = %v, want equal", c.unicode, u, c.ascii, a)
		}
	}
}

func TestParseFormulaLollipopRightAssociative(t *testing.T) {
	f, err := surface.ParseFormula("A -o B -o C")
	if err != nil {
		t.Fatalf("ParseFormula: %v", err)
	}

	want := formula.Lollipop{
		Left:  formula.Atom{Name: "A"},
		Right: formula.Lollipop{Left: formula.Atom{Name: "B"}, Right: formula.Atom{Name: "C"}},
	}

	if !formula.Equals(f, want) {
		t.Errorf("ParseFormula(A -o B -o C) = %v, want %v", f, want)
	}
}

func TestParseFormulaPrecedence(t *testing.T) {
	f, err := surface.ParseFormula("A * B + C & D")
	if err != nil {
		t.Fatalf("ParseFormula: %v", err)
	}

	a, b, c, d := formula.Atom{Name: "A"}, formula.Atom{Name: "B"}, formula.Atom{Name: "C"}, formula.Atom{Name: "D"}
	want := formula.Plus{
		Left:  formula.Tensor{Left: a, Right: b},
		Right: formula.With{Left: c, Right: d},
	}

	if !formula.Equals(f, want) {
		t.Errorf("ParseFormula(A * B + C & D) = %v, want %v", f, want)
	}
}

func TestParseFormulaParens(t *testing.T) {
	f, err := surface.ParseFormula("(A + B) * C")
	if err != nil {
		t.Fatalf("ParseFormula: %v", err)
	}

	a, b, c := formula.Atom{Name: "A"}, formula.Atom{Name: "B"}, formula.Atom{Name: "C"}
	want := formula.Tensor{Left: formula.Plus{Left: a, Right: b}, Right: c}

	if !formula.Equals(f, want) {
		t.Errorf("ParseFormula((A + B) * C) = %v, want %v", f, want)
	}
}

func TestParseFormulaRejectsGarbage(t *testing.T) {
	if _, err := surface.ParseFormula("A * "); err == nil {
		t.Error("expected an error for a trailing operator")
	}

	if _, err := surface.ParseFormula("A % B"); err == nil {
		t.Error("expected an error for an unrecognised character")
	}
}

func TestParseSequentBothForms(t *testing.T) {
	s, err := surface.ParseSequent("A, B |- A * B")
	if err != nil {
		t.Fatalf("ParseSequent: %v", err)
	}

	if len(s.Ante) != 2 || len(s.Succ) != 1 {
		t.Fatalf("ParseSequent(A, B |- A * B) = %+v, want 2 antecedents and 1 succedent", s)
	}

	if !formula.Equals(s.Succ[0], formula.Tensor{Left: formula.Atom{Name: "A"}, Right: formula.Atom{Name: "B"}}) {
		t.Errorf("unexpected succedent %v", s.Succ[0])
	}
}

func TestParseSequentEmptySides(t *testing.T) {
	s, err := surface.ParseSequent("|- 1")
	if err != nil {
		t.Fatalf("ParseSequent: %v", err)
	}

	if len(s.Ante) != 0 || len(s.Succ) != 1 {
		t.Fatalf("ParseSequent(|- 1) = %+v, want no antecedents", s)
	}
}

func TestPrettySequentRoundTrips(t *testing.T) {
	s := sequent.TwoSided{
		Ante: []formula.Formula{formula.Atom{Name: "A"}},
		Succ: []formula.Formula{formula.Atom{Name: "A"}},
	}

	if got, want := surface.PrettySequent(s, formula.Unicode), "A ⊢ A"; got != want {
		t.Errorf("PrettySequent(unicode) = %q, want %q", got, want)
	}

	if got, want := surface.PrettySequent(s, formula.ASCII), "A |- A"; got != want {
		t.Errorf("PrettySequent(ascii) = %q, want %q", got, want)
	}
}

func TestRenderProofTreeContainsAxiom(t *testing.T) {
	a := formula.Atom{Name: "A"}
	leaf := proof.Leaf(sequent.New([]formula.Formula{formula.Negate(a), a}, nil), proof.Axiom)

	out := surface.RenderProof(leaf, surface.VizTree)
	if !strings.Contains(out, "Axiom") {
		t.Errorf("RenderProof(tree) = %q, want it to mention Axiom", out)
	}
}

func TestRenderProofDOTIsWellFormed(t *testing.T) {
	a := formula.Atom{Name: "A"}
	leaf := proof.Leaf(sequent.New([]formula.Formula{formula.Negate(a), a}, nil), proof.Axiom)

	out := surface.RenderProof(leaf, surface.VizDOT)
	if !strings.HasPrefix(out, "digraph proof {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("RenderProof(dot) = %q, want a well-formed digraph", out)
	}
}

func TestRenderProofLaTeXUsesAxiomC(t *testing.T) {
	a := formula.Atom{Name: "A"}
	leaf := proof.Leaf(sequent.New([]formula.Formula{formula.Negate(a), a}, nil), proof.Axiom)

	out := surface.RenderProof(leaf, surface.VizLaTeX)
	if !strings.Contains(out, "\\AxiomC{") {
		t.Errorf("RenderProof(latex) = %q, want an \\AxiomC line", out)
	}
}
