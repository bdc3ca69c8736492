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

// Package workbench ties the proof pipeline packages (surface, prover,
// extract, term, emit) together into the five operations the command
// surface needs: Parse, Prove, Extract, Codegen and Viz. It owns the error
// taxonomy of the system: parse errors and a depth-exceeded sentinel are
// user-recoverable, while a verification or extraction failure is always
// reported as an internal error and never yields partial output.
package workbench

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded is the sentinel a DepthExceededError unwraps to. The
// operations of this package do not return it: Prove reports a hit depth
// bound through ProveResult.DepthExceeded with a nil error, which is
// distinct from a confirmed non-provability.
var ErrDepthExceeded = errors.New("not proven within depth bound")

// DepthExceededError reports ErrDepthExceeded together with the bound that
// was exceeded.
type DepthExceededError struct {
	MaxDepth int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("not proven within depth bound %d", e.MaxDepth)
}

func (e *DepthExceededError) Unwrap() error { return ErrDepthExceeded }

// InternalError reports a bug: a proof failed Verify, or a verified proof's
// extraction or emission has no corresponding term/source form. Per the
// error policy, this aborts the operation in progress and never emits a
// term or target source alongside it.
type InternalError struct {
	Op     string // which operation was in progress: "verify", "extract", "emit"
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error during %s: %s", e.Op, e.Reason)
}
