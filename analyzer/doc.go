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

// Package analyzer implements the writeguard static analysis pass.
//
// # Overview
//
// WriteGuard detects calls to a tracing source's Write method that are not
// guarded by a call to IsEnabled with the same event name. Building the
// payload of a tracing event is often expensive, so it should only happen
// when someone listens.
//
// # Example
//
// Before:
//
//	func handle(diagnostics *DiagnosticListener, req *Request) {
//	    diagnostics.Write("Request", req.Summary()) // payload always built
//	    // ...
//	}
//
// After applying writeguard's suggested fix:
//
//	func handle(diagnostics *DiagnosticListener, req *Request) {
//	    if diagnostics.IsEnabled("Request") {
//	        diagnostics.Write("Request", req.Summary())
//	    }
//	    // ...
//	}
//
// Fixes are only suggested when the receiver is a plain identifier and the
// write is a statement of its own. A mismatched write is wrapped in a check
// of its own name, leaving the existing check in place.
//
// # Diagnostics
//
//   - noguard (wg:ng): no enclosing IsEnabled check
//   - mismatch (wg:mm): enclosing IsEnabled checks exist, but none with the written name
//
// # Tracing Sources
//
// By default, methods declared on types named DiagnosticSource or
// DiagnosticListener in a package with an import path ending in
// "diagnostics" are checked. Use [WithSources] or the -sources flag to
// configure other types. An empty list is rejected.
package analyzer
