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
package surface

import (
	"strings"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
)

// PrettySequent renders a two-sided sequent using mode's token set, e.g.
// "A, B ⊢ A ⊗ B" or, in ASCII, "A, B |- A * B".
func PrettySequent(s sequent.TwoSided, mode formula.Mode) string {
	turnstile := tok(mode, "⊢", "|-")

	return prettyFormulaList(s.Ante, mode) + " " + turnstile + " " + prettyFormulaList(s.Succ, mode)
}

func prettyFormulaList(fs []formula.Formula, mode formula.Mode) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formula.Pretty(f, mode)
	}

	return strings.Join(parts, ", ")
}

// tok mirrors the private helper of the same name in internal/formula: it
// cannot be reused directly since formula does not export it, but the two
// must never drift apart, since both serialize the same token table.
func tok(mode formula.Mode, unicode, ascii string) string {
	if mode == formula.ASCII {
		return ascii
	}

	return unicode
}
