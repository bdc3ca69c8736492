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

// freshNames is the package-wide counter used only to rename a bound name
// away from a substitution's free variables when a capture would
// otherwise occur. It is intentionally distinct from any Gensym an
// extractor or caller owns, since alpha-renaming is an implementation
// detail of Subst, not part of a term's externally observable names.
var freshNames = NewGensym("_r")

// FreeVars returns the linearly-bound variable names occurring free in t
// (Var nodes not shadowed by an enclosing Abs/LetPair/Case). Derelict
// names are not linear and are reported separately by FreeDerelictNames.
func FreeVars(t Term) map[string]bool {
	out := map[string]bool{}
	collectFreeVars(t, out)

	return out
}

func collectFreeVars(t Term, out map[string]bool) {
	switch v := t.(type) {
	case Var:
		out[v.Name] = true
	case Unit, WithUnit, Derelict:
		// no linear variables
	case Pair:
		collectFreeVars(v.Left, out)
		collectFreeVars(v.Right, out)
	case LetPair:
		collectFreeVars(v.Scrutinee, out)

		inner := map[string]bool{}
		collectFreeVars(v.Body, inner)
		delete(inner, v.X)
		delete(inner, v.Y)

		for k := range inner {
			out[k] = true
		}
	case Abs:
		inner := map[string]bool{}
		collectFreeVars(v.Body, inner)
		delete(inner, v.Param)

		for k := range inner {
			out[k] = true
		}
	case App:
		collectFreeVars(v.Fn, out)
		collectFreeVars(v.Arg, out)
	case Inl:
		collectFreeVars(v.Body, out)
	case Inr:
		collectFreeVars(v.Body, out)
	case Case:
		collectFreeVars(v.Scrutinee, out)

		innerL := map[string]bool{}
		collectFreeVars(v.Left, innerL)
		delete(innerL, v.XLeft)

		for k := range innerL {
			out[k] = true
		}

		innerR := map[string]bool{}
		collectFreeVars(v.Right, innerR)
		delete(innerR, v.XRight)

		for k := range innerR {
			out[k] = true
		}
	case First:
		collectFreeVars(v.Body, out)
	case Second:
		collectFreeVars(v.Body, out)
	case Absurd:
		collectFreeVars(v.Body, out)
	case Bang:
		collectFreeVars(v.Body, out)
	case Copy:
		collectFreeVars(v.Of, out)
		collectFreeVars(v.Body, out)
	case Discard:
		collectFreeVars(v.Of, out)
		collectFreeVars(v.Body, out)
	}
}

// FreeDerelictNames returns the set of unrestricted-zone names referenced
// anywhere in t via Derelict. Unlike FreeVars, repeated entries are
// expected and not a linearity violation.
func FreeDerelictNames(t Term) map[string]bool {
	out := map[string]bool{}
	collectDerelictNames(t, out)

	return out
}

func collectDerelictNames(t Term, out map[string]bool) {
	switch v := t.(type) {
	case Derelict:
		out[v.Name] = true
	case Pair:
		collectDerelictNames(v.Left, out)
		collectDerelictNames(v.Right, out)
	case LetPair:
		collectDerelictNames(v.Scrutinee, out)
		collectDerelictNames(v.Body, out)
	case Abs:
		collectDerelictNames(v.Body, out)
	case App:
		collectDerelictNames(v.Fn, out)
		collectDerelictNames(v.Arg, out)
	case Inl:
		collectDerelictNames(v.Body, out)
	case Inr:
		collectDerelictNames(v.Body, out)
	case Case:
		collectDerelictNames(v.Scrutinee, out)
		collectDerelictNames(v.Left, out)
		collectDerelictNames(v.Right, out)
	case First:
		collectDerelictNames(v.Body, out)
	case Second:
		collectDerelictNames(v.Body, out)
	case Absurd:
		collectDerelictNames(v.Body, out)
	case Bang:
		collectDerelictNames(v.Body, out)
	case Copy:
		collectDerelictNames(v.Of, out)
		collectDerelictNames(v.Body, out)
	case Discard:
		collectDerelictNames(v.Of, out)
		collectDerelictNames(v.Body, out)
	}
}

// Subst replaces free occurrences of the linear variable name with value
// in t, renaming bound names away from value's free variables whenever a
// capture would otherwise occur.
func Subst(t Term, name string, value Term) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return value
		}

		return v
	case Unit, WithUnit, Derelict:
		return v
	case Pair:
		return Pair{Subst(v.Left, name, value), Subst(v.Right, name, value)}
	case LetPair:
		scrutinee := Subst(v.Scrutinee, name, value)
		x, y, body := v.X, v.Y, v.Body

		if x == name || y == name {
			return LetPair{x, y, scrutinee, body}
		}

		x, y, body = alphaRenamePair(x, y, body, value)

		return LetPair{x, y, scrutinee, Subst(body, name, value)}
	case Abs:
		if v.Param == name {
			return v
		}

		param, body := alphaRenameOne(v.Param, v.Body, value)

		return Abs{param, Subst(body, name, value)}
	case App:
		return App{Subst(v.Fn, name, value), Subst(v.Arg, name, value)}
	case Inl:
		return Inl{Subst(v.Body, name, value)}
	case Inr:
		return Inr{Subst(v.Body, name, value)}
	case Case:
		scrutinee := Subst(v.Scrutinee, name, value)
		xl, left := v.XLeft, v.Left

		if xl != name {
			xl, left = alphaRenameOne(xl, left, value)
			left = Subst(left, name, value)
		}

		xr, right := v.XRight, v.Right

		if xr != name {
			xr, right = alphaRenameOne(xr, right, value)
			right = Subst(right, name, value)
		}

		return Case{scrutinee, xl, xr, left, right}
	case First:
		return First{Subst(v.Body, name, value)}
	case Second:
		return Second{Subst(v.Body, name, value)}
	case Absurd:
		return Absurd{Subst(v.Body, name, value)}
	case Bang:
		return Bang{Subst(v.Body, name, value)}
	case Copy:
		of := Subst(v.Of, name, value)
		x, y, body := v.Left, v.Right, v.Body

		if x != name && y != name {
			body = Subst(body, name, value)
		}

		return Copy{of, x, y, body}
	case Discard:
		return Discard{Subst(v.Of, name, value), Subst(v.Body, name, value)}
	default:
		return t
	}
}

// SubstDerelict replaces every Derelict node referencing name with value
// throughout t; used when a Copy or Discard reduction unwraps a promoted
// term.
func SubstDerelict(t Term, name string, value Term) Term {
	switch v := t.(type) {
	case Derelict:
		if v.Name == name {
			return value
		}

		return v
	case Var, Unit, WithUnit:
		return v
	case Pair:
		return Pair{SubstDerelict(v.Left, name, value), SubstDerelict(v.Right, name, value)}
	case LetPair:
		return LetPair{v.X, v.Y, SubstDerelict(v.Scrutinee, name, value), SubstDerelict(v.Body, name, value)}
	case Abs:
		return Abs{v.Param, SubstDerelict(v.Body, name, value)}
	case App:
		return App{SubstDerelict(v.Fn, name, value), SubstDerelict(v.Arg, name, value)}
	case Inl:
		return Inl{SubstDerelict(v.Body, name, value)}
	case Inr:
		return Inr{SubstDerelict(v.Body, name, value)}
	case Case:
		return Case{
			SubstDerelict(v.Scrutinee, name, value),
			v.XLeft, v.XRight,
			SubstDerelict(v.Left, name, value),
			SubstDerelict(v.Right, name, value),
		}
	case First:
		return First{SubstDerelict(v.Body, name, value)}
	case Second:
		return Second{SubstDerelict(v.Body, name, value)}
	case Absurd:
		return Absurd{SubstDerelict(v.Body, name, value)}
	case Bang:
		return Bang{SubstDerelict(v.Body, name, value)}
	case Copy:
		return Copy{SubstDerelict(v.Of, name, value), v.Left, v.Right, SubstDerelict(v.Body, name, value)}
	case Discard:
		return Discard{SubstDerelict(v.Of, name, value), SubstDerelict(v.Body, name, value)}
	default:
		return t
	}
}

// alphaRenameOne renames bound name x (scoping body) away from value's
// free variables if a capture would occur, returning the (possibly
// unchanged) bound name and body.
func alphaRenameOne(x string, body Term, value Term) (string, Term) {
	if !FreeVars(value)[x] {
		return x, body
	}

	fresh := freshNames.Next()

	return fresh, Subst(body, x, Var{fresh})
}

func alphaRenamePair(x, y string, body Term, value Term) (string, string, Term) {
	free := FreeVars(value)

	if free[x] {
		fresh := freshNames.Next()
		body = Subst(body, x, Var{fresh})
		x = fresh
	}

	if free[y] {
		fresh := freshNames.Next()
		body = Subst(body, y, Var{fresh})
		y = fresh
	}

	return x, y, body
}
