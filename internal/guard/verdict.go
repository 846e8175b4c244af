// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package guard

// Kind classifies how a write is guarded.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Guarded indicates an enclosing IsEnabled check with the same name.
	Guarded Kind = iota // guarded

	// Unguarded indicates no enclosing IsEnabled check.
	Unguarded // noguard

	// Mismatched indicates enclosing IsEnabled checks, none of them with the same name.
	Mismatched // mismatch
)

// Verdict is the result of [Detect].
type Verdict struct {
	Kind Kind

	// Guard is the name checked by the first mismatching IsEnabled call.
	Guard string

	// Write is the name passed to Write.
	Write string
}
