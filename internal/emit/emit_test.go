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
package emit_test

import (
	"strings"
	"testing"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/emit"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/term"
)

func TestTypeCompound(t *testing.T) {
	a := formula.Atom{Name: "A"}
	b := formula.Atom{Name: "B"}

	cases := []struct {
		f    formula.Formula
		want string
	}{
		{a, "A"},
		{formula.One{}, "Unit"},
		{formula.Top{}, "Top"},
		{formula.Zero{}, "Empty"},
		{formula.Tensor{Left: a, Right: b}, "Product<A, B>"},
		{formula.With{Left: a, Right: b}, "Choice<A, B>"},
		{formula.Plus{Left: a, Right: b}, "Sum<A, B>"},
		{formula.OfCourse{Body: a}, "Shared<A>"},
		{formula.WhyNot{Body: a}, "Demand<A>"},
		{formula.Lollipop{Left: a, Right: b}, "fn(A) -> B"},
	}

	for _, c := range cases {
		if got := emit.Type(c.f); got != c.want {
			t.Errorf("Type(%v) = %q, want %q", c.f, got, c.want)
		}
	}
}

func TestSourceRendersPair(t *testing.T) {
	pair := term.Pair{Left: term.Var{Name: "x0"}, Right: term.Var{Name: "x1"}}
	if got, want := emit.Source(pair), "(x0, x1)"; got != want {
		t.Errorf("Source(pair) = %q, want %q", got, want)
	}
}

func TestSourceRendersDerelictAsClone(t *testing.T) {
	if got, want := emit.Source(term.Derelict{Name: "x0"}), "x0.clone()"; got != want {
		t.Errorf("Source(derelict) = %q, want %q", got, want)
	}
}

func TestModuleIncludesPreambleAndSignature(t *testing.T) {
	a := formula.Atom{Name: "A"}
	out := emit.Module("identity", []emit.Hypothesis{{Name: "x0", Formula: a}}, a, term.Var{Name: "x0"})

	if !strings.Contains(out, "struct Choice<L, R>") {
		t.Errorf("expected preamble in output, got %q", out)
	}

	if !strings.Contains(out, "fn identity(x0: A) -> A") {
		t.Errorf("expected signature in output, got %q", out)
	}
}
