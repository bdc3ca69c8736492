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
package sequent_test

import (
	"testing"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
)

func TestFromTwoSidedNegatesAntecedent(t *testing.T) {
	a, b := formula.Atom{Name: "A"}, formula.Atom{Name: "B"}

	ts := sequent.TwoSided{Ante: []formula.Formula{a}, Succ: []formula.Formula{b}}
	s := sequent.FromTwoSided(ts)

	want := []formula.Formula{formula.NegAtom{Name: "A"}, b}
	if !sequent.MultisetEqual(s.Linear, want) {
		t.Errorf("FromTwoSided(A |- B).Linear = %v, want %v", s.Linear, want)
	}
}

func TestDualAgreesWithProvability(t *testing.T) {
	a, b := formula.Atom{Name: "A"}, formula.Atom{Name: "B"}
	ts := sequent.TwoSided{Ante: []formula.Formula{a}, Succ: []formula.Formula{b}}

	dual := ts.Dual()

	wantAnte := []formula.Formula{formula.Negate(b)}
	wantSucc := []formula.Formula{formula.Negate(a)}

	if !sequent.MultisetEqual(dual.Ante, wantAnte) {
		t.Errorf("Dual().Ante = %v, want %v", dual.Ante, wantAnte)
	}

	if !sequent.MultisetEqual(dual.Succ, wantSucc) {
		t.Errorf("Dual().Succ = %v, want %v", dual.Succ, wantSucc)
	}
}

func TestRemove(t *testing.T) {
	a, b, c := formula.Atom{Name: "A"}, formula.Atom{Name: "B"}, formula.Atom{Name: "C"}
	s := sequent.New([]formula.Formula{a, b, c}, nil)

	f, rest := s.Remove(1)

	if !formula.Equals(f, b) {
		t.Errorf("Remove(1) formula = %v, want %v", f, b)
	}

	want := []formula.Formula{a, c}
	if !sequent.MultisetEqual(rest.Linear, want) {
		t.Errorf("Remove(1) remainder = %v, want %v", rest.Linear, want)
	}
}

func TestBlurredRoundTrip(t *testing.T) {
	a, b := formula.Atom{Name: "A"}, formula.Atom{Name: "B"}
	s := sequent.New([]formula.Formula{a}, nil).WithFocus(b)

	blurred := s.Blurred()

	if blurred.Focus != nil {
		t.Errorf("Blurred().Focus = %v, want nil", blurred.Focus)
	}

	want := []formula.Formula{a, b}
	if !sequent.MultisetEqual(blurred.Linear, want) {
		t.Errorf("Blurred().Linear = %v, want %v", blurred.Linear, want)
	}
}

func TestAllSplitsCount(t *testing.T) {
	a, b, c := formula.Atom{Name: "A"}, formula.Atom{Name: "B"}, formula.Atom{Name: "C"}
	gamma := []formula.Formula{a, b, c}

	splits := sequent.AllSplits(gamma)

	if len(splits) != 8 {
		t.Fatalf("AllSplits(3 formulas) returned %d splits, want 8", len(splits))
	}

	for _, s := range splits {
		if len(s[0])+len(s[1]) != len(gamma) {
			t.Errorf("split %v does not partition all of gamma", s)
		}
	}
}

func TestAllSplitsEmpty(t *testing.T) {
	splits := sequent.AllSplits(nil)
	if len(splits) != 1 {
		t.Fatalf("AllSplits(nil) returned %d splits, want 1", len(splits))
	}

	if len(splits[0][0]) != 0 || len(splits[0][1]) != 0 {
		t.Errorf("AllSplits(nil) split = %v, want two empty halves", splits[0])
	}
}

func TestCanonicalKeyOrderInsensitive(t *testing.T) {
	a, b := formula.Atom{Name: "A"}, formula.Atom{Name: "B"}

	s1 := sequent.New([]formula.Formula{a, b}, nil)
	s2 := sequent.New([]formula.Formula{b, a}, nil)

	if !s1.CanonicalKey().Equals(s2.CanonicalKey()) {
		t.Error("CanonicalKey should not depend on linear zone order")
	}

	s3 := sequent.New([]formula.Formula{a, a}, nil)
	if s1.CanonicalKey().Equals(s3.CanonicalKey()) {
		t.Error("CanonicalKey should distinguish different multiplicities")
	}
}

func TestMultisetEqualMultiplicitySensitive(t *testing.T) {
	a := formula.Atom{Name: "A"}

	if sequent.MultisetEqual([]formula.Formula{a}, []formula.Formula{a, a}) {
		t.Error("MultisetEqual should be multiplicity-sensitive")
	}

	if !sequent.MultisetEqual([]formula.Formula{a, a}, []formula.Formula{a, a}) {
		t.Error("MultisetEqual should accept identical multisets")
	}
}
