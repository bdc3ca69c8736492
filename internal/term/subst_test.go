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
package term_test

import (
	"testing"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/term"
)

func TestSubstReplacesFreeOccurrence(t *testing.T) {
	got := term.Subst(term.Var{Name: "x"}, "x", term.Unit{})
	if _, ok := got.(term.Unit); !ok {
		t.Errorf("Subst(x, x, unit) = %v, want Unit", got)
	}
}

func TestSubstLeavesOtherNamesAlone(t *testing.T) {
	got := term.Subst(term.Var{Name: "y"}, "x", term.Unit{})

	v, ok := got.(term.Var)
	if !ok || v.Name != "y" {
		t.Errorf("Subst(y, x, unit) = %v, want Var(y)", got)
	}
}

func TestSubstStopsAtShadowingAbs(t *testing.T) {
	// (lambda x. x)[x := unit] must not touch the bound x.
	body := term.Abs{Param: "x", Body: term.Var{Name: "x"}}

	got := term.Subst(body, "x", term.Unit{})

	abs, ok := got.(term.Abs)
	if !ok {
		t.Fatalf("Subst should return an Abs, got %v", got)
	}

	v, ok := abs.Body.(term.Var)
	if !ok || v.Name != abs.Param {
		t.Errorf("Subst(lambda x. x, x, unit) body = %v, still expected to reference the bound param", abs.Body)
	}
}

func TestSubstAvoidsCapture(t *testing.T) {
	// (lambda y. x)[x := y] must alpha-rename the bound y so the
	// substituted y is not captured.
	body := term.Abs{Param: "y", Body: term.Var{Name: "x"}}
	value := term.Var{Name: "y"}

	got := term.Subst(body, "x", value)

	abs, ok := got.(term.Abs)
	if !ok {
		t.Fatalf("Subst should return an Abs, got %v", got)
	}

	if abs.Param == "y" {
		t.Fatal("Subst should have alpha-renamed the bound y to avoid capturing the substituted y")
	}

	inner, ok := abs.Body.(term.Var)
	if !ok || inner.Name != "y" {
		t.Errorf("Subst(lambda y. x, x, y) body = %v, want Var(y)", abs.Body)
	}
}

func TestSubstDerelictReplacesAllOccurrences(t *testing.T) {
	body := term.Pair{Left: term.Derelict{Name: "x"}, Right: term.Derelict{Name: "x"}}

	got := term.SubstDerelict(body, "x", term.Unit{})

	pair, ok := got.(term.Pair)
	if !ok {
		t.Fatalf("SubstDerelict should return a Pair, got %v", got)
	}

	if _, ok := pair.Left.(term.Unit); !ok {
		t.Errorf("SubstDerelict left = %v, want Unit", pair.Left)
	}

	if _, ok := pair.Right.(term.Unit); !ok {
		t.Errorf("SubstDerelict right = %v, want Unit", pair.Right)
	}
}

func TestFreeVarsExcludesBoundNames(t *testing.T) {
	body := term.Abs{Param: "x", Body: term.Pair{Left: term.Var{Name: "x"}, Right: term.Var{Name: "y"}}}

	free := term.FreeVars(body)

	if free["x"] {
		t.Error("FreeVars should not report the bound parameter x")
	}

	if !free["y"] {
		t.Error("FreeVars should report the free variable y")
	}
}

func TestFreeDerelictNamesAllowsRepeats(t *testing.T) {
	body := term.Pair{Left: term.Derelict{Name: "x"}, Right: term.Derelict{Name: "x"}}

	free := term.FreeDerelictNames(body)
	if !free["x"] {
		t.Error("FreeDerelictNames should report x")
	}
}
