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
package emit

import (
	"fmt"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/term"
)

// Source renders t as a single target-language expression. Variables keep
// the names extraction gave them; Copy and Discard lower to the target's
// shared-reference idiom (.clone() / drop).
func Source(t term.Term) string {
	switch v := t.(type) {
	case term.Var:
		return v.Name
	case term.Unit:
		return "()"
	case term.Pair:
		return fmt.Sprintf("(%s, %s)", Source(v.Left), Source(v.Right))
	case term.LetPair:
		return fmt.Sprintf("{ let (%s, %s) = %s; %s }", v.X, v.Y, Source(v.Scrutinee), Source(v.Body))
	case term.Abs:
		return fmt.Sprintf("move |%s| { %s }", v.Param, Source(v.Body))
	case term.App:
		return fmt.Sprintf("(%s)(%s)", Source(v.Fn), Source(v.Arg))
	case term.Inl:
		return fmt.Sprintf("Sum::Left(%s)", Source(v.Body))
	case term.Inr:
		return fmt.Sprintf("Sum::Right(%s)", Source(v.Body))
	case term.Case:
		return fmt.Sprintf(
			"match %s { Sum::Left(%s) => %s, Sum::Right(%s) => %s }",
			Source(v.Scrutinee), v.XLeft, Source(v.Left), v.XRight, Source(v.Right),
		)
	case term.WithUnit:
		return "Top"
	case term.WithPair:
		return fmt.Sprintf(
			"Choice { left: Box::new(move || %s), right: Box::new(move || %s) }",
			Source(v.Left), Source(v.Right),
		)
	case term.First:
		return fmt.Sprintf("(%s.left)()", Source(v.Body))
	case term.Second:
		return fmt.Sprintf("(%s.right)()", Source(v.Body))
	case term.Absurd:
		return fmt.Sprintf("match %s {}", Source(v.Body))
	case term.Bang:
		return fmt.Sprintf("Shared::new(%s)", Source(v.Body))
	case term.Derelict:
		return fmt.Sprintf("%s.clone()", v.Name)
	case term.Copy:
		return fmt.Sprintf(
			"{ let (%s, %s) = (%s.clone(), %s.clone()); %s }",
			v.Left, v.Right, Source(v.Of), Source(v.Of), Source(v.Body),
		)
	case term.Discard:
		return fmt.Sprintf("{ drop(%s); %s }", Source(v.Of), Source(v.Body))
	default:
		panic("emit: unrecognised term in Source")
	}
}
