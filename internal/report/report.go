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

package report

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/writeguard/internal/astutil"
	"fillmore-labs.com/writeguard/internal/guard"
	"fillmore-labs.com/writeguard/internal/source"
)

// Site is a matched Write call.
type Site struct {
	// Cursor is positioned at the *ast.CallExpr.
	Cursor inspector.Cursor

	// Call is the matched tracing-source call.
	Call source.Call
}

// Reporter emits diagnostics for the writes of a single file.
type Reporter struct {
	pass *analysis.Pass
	file astutil.CurrentFile
	fix  bool

	content []byte
	read    bool
}

// New creates a [Reporter] for file. When fix is set, reported writes get a suggested fix.
func New(p *analysis.Pass, file astutil.CurrentFile, fix bool) *Reporter {
	return &Reporter{pass: p, file: file, fix: fix}
}

// Report emits the diagnostic for a verdict. Guarded writes are not reported.
func (r *Reporter) Report(site Site, verdict guard.Verdict) {
	var message string

	switch verdict.Kind {
	case guard.Unguarded:
		message = fmt.Sprintf("Call to %s.Write should be guarded with IsEnabled (wg:ng)", site.Call.Type.Name())

	case guard.Mismatched:
		message = fmt.Sprintf("Call to %s.Write with name '%s' is guarded by IsEnabled with name '%s' (wg:mm)",
			site.Call.Type.Name(), verdict.Write, verdict.Guard)

	default:
		return
	}

	call := site.Cursor.Node()

	diagnostic := analysis.Diagnostic{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: verdict.Kind.String(),
		Message:  message,
	}

	// A mismatched write gets a guard of its own, keeping the existing check
	if r.fix {
		if edits := r.guardEdits(site); len(edits) > 0 {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: fixMessage, TextEdits: edits}}
		}
	}

	r.pass.Report(diagnostic)
}
