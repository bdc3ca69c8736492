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

import "fmt"

func (t Var) String() string      { return t.Name }
func (t Unit) String() string     { return "()" }
func (t Pair) String() string     { return fmt.Sprintf("(%s, %s)", t.Left, t.Right) }
func (t LetPair) String() string {
	return fmt.Sprintf("let (%s, %s) = %s in %s", t.X, t.Y, t.Scrutinee, t.Body)
}
func (t Abs) String() string      { return fmt.Sprintf("λ%s. %s", t.Param, t.Body) }
func (t App) String() string      { return fmt.Sprintf("(%s %s)", t.Fn, t.Arg) }
func (t Inl) String() string      { return fmt.Sprintf("inl(%s)", t.Body) }
func (t Inr) String() string      { return fmt.Sprintf("inr(%s)", t.Body) }
func (t Case) String() string {
	return fmt.Sprintf("case %s of inl(%s) -> %s | inr(%s) -> %s",
		t.Scrutinee, t.XLeft, t.Left, t.XRight, t.Right)
}
func (t WithUnit) String() string { return "⟨⟩" }
func (t WithPair) String() string { return fmt.Sprintf("⟨%s, %s⟩", t.Left, t.Right) }
func (t First) String() string    { return fmt.Sprintf("fst(%s)", t.Body) }
func (t Second) String() string   { return fmt.Sprintf("snd(%s)", t.Body) }
func (t Absurd) String() string   { return fmt.Sprintf("absurd(%s)", t.Body) }
func (t Bang) String() string     { return fmt.Sprintf("!%s", t.Body) }
func (t Derelict) String() string { return t.Name }
func (t Copy) String() string {
	return fmt.Sprintf("copy %s as (%s, %s) in %s", t.Of, t.Left, t.Right, t.Body)
}
func (t Discard) String() string { return fmt.Sprintf("discard %s in %s", t.Of, t.Body) }
