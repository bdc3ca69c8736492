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

func TestNormalizeBetaReducesApp(t *testing.T) {
	// (lambda x. x) unit --> unit
	id := term.Abs{Param: "x", Body: term.Var{Name: "x"}}
	app := term.App{Fn: id, Arg: term.Unit{}}

	got := term.Normalize(app)
	if _, ok := got.(term.Unit); !ok {
		t.Errorf("Normalize((lambda x.x) unit) = %v, want Unit", got)
	}
}

func TestNormalizeLetPair(t *testing.T) {
	pair := term.Pair{Left: term.Unit{}, Right: term.WithUnit{}}
	lp := term.LetPair{X: "a", Y: "b", Scrutinee: pair, Body: term.Pair{Left: term.Var{Name: "b"}, Right: term.Var{Name: "a"}}}

	got := term.Normalize(lp)

	want := term.Pair{Left: term.WithUnit{}, Right: term.Unit{}}
	if got.String() != want.String() {
		t.Errorf("Normalize(let (a,b) = (unit, withunit) in (b,a)) = %v, want %v", got, want)
	}
}

func TestNormalizeCaseInl(t *testing.T) {
	c := term.Case{
		Scrutinee: term.Inl{Body: term.Unit{}},
		XLeft:     "x", XRight: "y",
		Left:  term.Var{Name: "x"},
		Right: term.WithUnit{},
	}

	got := term.Normalize(c)
	if _, ok := got.(term.Unit); !ok {
		t.Errorf("Normalize(case inl(unit) of inl(x)->x|inr(y)->withunit) = %v, want Unit", got)
	}
}

func TestNormalizeFirstSecond(t *testing.T) {
	wp := term.WithPair{Left: term.Unit{}, Right: term.WithUnit{}}

	if got := term.Normalize(term.First{Body: wp}); got.String() != (term.Unit{}).String() {
		t.Errorf("Normalize(fst <unit, withunit>) = %v, want Unit", got)
	}

	if got := term.Normalize(term.Second{Body: wp}); got.String() != (term.WithUnit{}).String() {
		t.Errorf("Normalize(snd <unit, withunit>) = %v, want WithUnit", got)
	}
}

func TestNormalizeCopyDuplicatesPromotedBody(t *testing.T) {
	promoted := term.Bang{Body: term.Unit{}}
	c := term.Copy{
		Of: promoted, Left: "x", Right: "y",
		Body: term.Pair{Left: term.Derelict{Name: "x"}, Right: term.Derelict{Name: "y"}},
	}

	got := term.Normalize(c)

	want := term.Pair{Left: term.Unit{}, Right: term.Unit{}}
	if got.String() != want.String() {
		t.Errorf("Normalize(copy !unit as (x,y) in (x,y)) = %v, want %v", got, want)
	}
}

func TestNormalizeDiscardDropsPromotedValue(t *testing.T) {
	d := term.Discard{Of: term.Bang{Body: term.Unit{}}, Body: term.WithUnit{}}

	got := term.Normalize(d)
	if _, ok := got.(term.WithUnit); !ok {
		t.Errorf("Normalize(discard !unit in withunit) = %v, want WithUnit", got)
	}
}

func TestNormalizeDescendsUnderBinders(t *testing.T) {
	// lambda x. (lambda y. y) x should normalize its body to lambda x. x.
	inner := term.App{Fn: term.Abs{Param: "y", Body: term.Var{Name: "y"}}, Arg: term.Var{Name: "x"}}
	outer := term.Abs{Param: "x", Body: inner}

	got := term.Normalize(outer)

	abs, ok := got.(term.Abs)
	if !ok {
		t.Fatalf("Normalize(lambda x. (lambda y.y) x) = %v, want Abs", got)
	}

	if v, ok := abs.Body.(term.Var); !ok || v.Name != abs.Param {
		t.Errorf("Normalize(lambda x. (lambda y.y) x).Body = %v, want Var(%s)", abs.Body, abs.Param)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	id := term.Abs{Param: "x", Body: term.Var{Name: "x"}}
	app := term.App{Fn: id, Arg: term.Unit{}}

	once := term.Normalize(app)
	twice := term.Normalize(once)

	if once.String() != twice.String() {
		t.Errorf("Normalize is not idempotent: %v != %v", once, twice)
	}
}
