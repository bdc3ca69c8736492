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
	"fmt"
	"strings"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/formula"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/proof"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
)

// VizFormat selects the rendering produced by RenderProof.
type VizFormat int

// The three proof-tree renderings the viz command supports.
const (
	VizTree VizFormat = iota
	VizLaTeX
	VizDOT
)

// RenderProof renders p in the given format. VizTree is meant for a
// terminal, VizLaTeX for inclusion in a bussproofs derivation, VizDOT for
// Graphviz.
func RenderProof(p *proof.Proof, format VizFormat) string {
	switch format {
	case VizTree:
		var b strings.Builder
		renderTree(&b, p, "")

		return b.String()
	case VizLaTeX:
		var b strings.Builder
		renderLaTeX(&b, p)

		return b.String()
	case VizDOT:
		var b strings.Builder
		b.WriteString("digraph proof {\n")
		b.WriteString("  node [shape=plaintext];\n")

		counter := 0
		renderDOT(&b, p, &counter)
		b.WriteString("}\n")

		return b.String()
	default:
		panic("surface: unrecognised viz format")
	}
}

func prettySequent(s sequent.Sequent) string {
	parts := make([]string, 0, len(s.Linear)+len(s.Unrestricted))

	for _, f := range s.Linear {
		if s.Focus != nil && formula.Equals(f, s.Focus) {
			parts = append(parts, "["+formula.Pretty(f, formula.Unicode)+"]")
			continue
		}

		parts = append(parts, formula.Pretty(f, formula.Unicode))
	}

	for _, f := range s.Unrestricted {
		parts = append(parts, "!"+formula.Pretty(f, formula.Unicode))
	}

	return "⊢ " + strings.Join(parts, ", ")
}

// renderTree writes p as an indented ASCII tree, root last (conclusions read
// bottom-up, the way the calculus is normally drawn), children above their
// parent's rule line.
func renderTree(b *strings.Builder, p *proof.Proof, prefix string) {
	for _, prem := range p.Premises {
		renderTree(b, prem, prefix+"  ")
	}

	fmt.Fprintf(b, "%s%s  [%s]\n", prefix, prettySequent(p.Conclusion), p.Rule)
}

// renderLaTeX emits a bussproofs derivation, innermost axiom first.
func renderLaTeX(b *strings.Builder, p *proof.Proof) {
	switch len(p.Premises) {
	case 0:
		fmt.Fprintf(b, "\\AxiomC{$%s$}\n", latexSequent(p.Conclusion))
	case 1:
		renderLaTeX(b, p.Premises[0])
		fmt.Fprintf(b, "\\RightLabel{\\scriptsize %s}\n", p.Rule)
		fmt.Fprintf(b, "\\UnaryInfC{$%s$}\n", latexSequent(p.Conclusion))
	case 2:
		renderLaTeX(b, p.Premises[0])
		renderLaTeX(b, p.Premises[1])
		fmt.Fprintf(b, "\\RightLabel{\\scriptsize %s}\n", p.Rule)
		fmt.Fprintf(b, "\\BinaryInfC{$%s$}\n", latexSequent(p.Conclusion))
	default:
		panic("surface: proof node with more than two premises")
	}
}

func latexSequent(s sequent.Sequent) string {
	parts := make([]string, 0, len(s.Linear)+len(s.Unrestricted))

	for _, f := range s.Linear {
		parts = append(parts, formula.Pretty(f, formula.Unicode))
	}

	for _, f := range s.Unrestricted {
		parts = append(parts, "!"+formula.Pretty(f, formula.Unicode))
	}

	return "\\vdash " + strings.Join(parts, ", ")
}

// renderDOT emits one labeled node per proof node and an edge from every
// premise to its conclusion, numbering nodes in preorder as they're first
// visited.
func renderDOT(b *strings.Builder, p *proof.Proof, counter *int) int {
	id := *counter
	*counter++

	fmt.Fprintf(b, "  n%d [label=%q];\n", id, fmt.Sprintf("%s\n%s", prettySequent(p.Conclusion), p.Rule))

	for _, prem := range p.Premises {
		childID := renderDOT(b, prem, counter)
		fmt.Fprintf(b, "  n%d -> n%d;\n", childID, id)
	}

	return id
}
