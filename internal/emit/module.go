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
	"strings"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/term"
)

// Hypothesis names one antecedent formula's type and the variable name
// extraction bound it to — the two things Module needs to render a formal
// parameter.
type Hypothesis struct {
	Name    string
	Formula formula.Formula
}

// Module renders a complete target-language module codegen(sequent)
// produces: the shared preamble, followed by a single function whose
// parameters are the two-sided sequent's antecedent (each named by the
// variable extraction bound to it) and whose body is body, a normalized
// term extracted from a proof of the sequent, rendered against succ's
// target type.
func Module(fnName string, hyps []Hypothesis, succ formula.Formula, body term.Term) string {
	params := make([]string, len(hyps))
	for i, h := range hyps {
		params[i] = fmt.Sprintf("%s: %s", h.Name, Type(h.Formula))
	}

	var b strings.Builder

	b.WriteString(Preamble())
	b.WriteString("\n")
	fmt.Fprintf(&b, "fn %s(%s) -> %s {\n", fnName, strings.Join(params, ", "), Type(succ))
	fmt.Fprintf(&b, "    %s\n", Source(body))
	b.WriteString("}\n")

	return b.String()
}
