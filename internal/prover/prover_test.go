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
package prover_test

import (
	"testing"

	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/proof"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/prover"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/sequent"
	"github.com/ibrahimcesar/linear-logic-workbench-go/internal/surface"
)

func prove(t *testing.T, src string) prover.Result {
	t.Helper()

	ts, err := surface.ParseSequent(src)
	if err != nil {
		t.Fatalf("ParseSequent(%q) error: %v", src, err)
	}

	return prover.Prove(sequent.FromTwoSided(ts), prover.Config{})
}

func TestProveIdentity(t *testing.T) {
	res := prove(t, "A |- A")

	if !res.Provable {
		t.Fatal("A |- A should be provable")
	}

	if err := proof.Verify(res.Proof); err != nil {
		t.Errorf("Verify(identity proof) = %v, want nil", err)
	}
}

func TestProveTensorIntroduction(t *testing.T) {
	res := prove(t, "A, B |- A * B")

	if !res.Provable {
		t.Fatal("A, B |- A*B should be provable")
	}

	if err := proof.Verify(res.Proof); err != nil {
		t.Errorf("Verify(tensor proof) = %v, want nil", err)
	}
}

func TestProveCurrying(t *testing.T) {
	res := prove(t, "A * B -o C |- A -o (B -o C)")
	if !res.Provable {
		t.Fatal("currying sequent should be provable")
	}
}

func TestProveNonContraction(t *testing.T) {
	// A linear hypothesis cannot be used twice: A |- A * A must fail.
	res := prove(t, "A |- A * A")

	if res.Provable {
		t.Fatal("A |- A*A should not be provable: that would duplicate a linear resource")
	}

	if res.DepthExceeded {
		t.Fatal("A |- A*A should be a confirmed non-theorem, not a depth-exceeded result, within the default bound")
	}
}

func TestProveBangContractionAllowed(t *testing.T) {
	// Under !, the resource is reusable: !A |- A * A should hold via
	// dereliction of two independent copies.
	res := prove(t, "!A |- A * A")

	if !res.Provable {
		t.Fatal("!A |- A*A should be provable: ! permits contraction")
	}
}

func TestProveAdditiveChoice(t *testing.T) {
	res := prove(t, "A |- A + B")
	if !res.Provable {
		t.Fatal("A |- A+B should be provable via PlusLeft")
	}
}

func TestProveWithVsTensorDistinction(t *testing.T) {
	// A with-offered pair cannot supply both components at once: from
	// A&B alone, A*B does not follow.
	res := prove(t, "A & B |- A * B")

	if res.Provable {
		t.Fatal("A&B |- A*B should not be provable: & only offers a choice, not both")
	}
}

func TestProveNonPositiveDepthUsesDefault(t *testing.T) {
	ts, err := surface.ParseSequent("A |- A")
	if err != nil {
		t.Fatalf("ParseSequent error: %v", err)
	}

	res := prover.Prove(sequent.FromTwoSided(ts), prover.Config{MaxDepth: 0})
	if !res.Provable {
		// MaxDepth 0 selects DefaultMaxDepth per Config's documented
		// zero-value behaviour, so this trivial sequent still proves.
		t.Fatal("MaxDepth 0 should fall back to DefaultMaxDepth, not reject an immediate axiom")
	}

	res = prover.Prove(sequent.FromTwoSided(ts), prover.Config{MaxDepth: -1})
	if !res.Provable {
		t.Fatal("negative MaxDepth should also fall back to DefaultMaxDepth")
	}
}

func TestProveUnprovableIsNotDepthExceeded(t *testing.T) {
	res := prove(t, "A |- B")

	if res.Provable {
		t.Fatal("A |- B should not be provable")
	}

	if res.DepthExceeded {
		t.Fatal("A |- B is a confirmed non-theorem well within the default depth bound")
	}
}
