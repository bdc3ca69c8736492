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
package term

// step attempts a single reduction at the root of t, returning the reduced
// term and true if a redex was found there, or t unchanged and false.
func step(t Term) (Term, bool) {
	switch v := t.(type) {
	case App:
		if abs, ok := v.Fn.(Abs); ok {
			return Subst(abs.Body, abs.Param, v.Arg), true
		}
	case LetPair:
		if pair, ok := v.Scrutinee.(Pair); ok {
			return Subst(Subst(v.Body, v.X, pair.Left), v.Y, pair.Right), true
		}
	case Case:
		switch scrutinee := v.Scrutinee.(type) {
		case Inl:
			return Subst(v.Left, v.XLeft, scrutinee.Body), true
		case Inr:
			return Subst(v.Right, v.XRight, scrutinee.Body), true
		}
	case First:
		if wp, ok := v.Body.(WithPair); ok {
			return wp.Left, true
		}
	case Second:
		if wp, ok := v.Body.(WithPair); ok {
			return wp.Right, true
		}
	case Copy:
		if bang, ok := v.Of.(Bang); ok {
			return SubstDerelict(SubstDerelict(v.Body, v.Left, bang.Body), v.Right, bang.Body), true
		}
	case Discard:
		if _, ok := v.Of.(Bang); ok {
			return v.Body, true
		}
	}

	return t, false
}

// Normalize applies leftmost-outermost reduction until no redex remains,
// descending into every subterm (including under binders) once the root is
// in normal form. Termination is guaranteed because promotion is only ever
// applied to subterms whose free variables are drawn from the
// unrestricted zone (see internal/extract), which keeps the exponential
// fragment strongly normalizing.
func Normalize(t Term) Term {
	if next, ok := step(t); ok {
		return Normalize(next)
	}

	return normalizeChildren(t)
}

func normalizeChildren(t Term) Term {
	switch v := t.(type) {
	case Var, Unit, WithUnit, Derelict:
		return v
	case Pair:
		return Pair{Normalize(v.Left), Normalize(v.Right)}
	case LetPair:
		return LetPair{v.X, v.Y, Normalize(v.Scrutinee), Normalize(v.Body)}
	case Abs:
		return Abs{v.Param, Normalize(v.Body)}
	case App:
		return App{Normalize(v.Fn), Normalize(v.Arg)}
	case Inl:
		return Inl{Normalize(v.Body)}
	case Inr:
		return Inr{Normalize(v.Body)}
	case Case:
		return Case{Normalize(v.Scrutinee), v.XLeft, v.XRight, Normalize(v.Left), Normalize(v.Right)}
	case First:
		return First{Normalize(v.Body)}
	case Second:
		return Second{Normalize(v.Body)}
	case Absurd:
		return Absurd{Normalize(v.Body)}
	case Bang:
		return Bang{Normalize(v.Body)}
	case Copy:
		return Copy{Normalize(v.Of), v.Left, v.Right, Normalize(v.Body)}
	case Discard:
		return Discard{Normalize(v.Of), Normalize(v.Body)}
	default:
		return t
	}
}
