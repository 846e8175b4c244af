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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/writeguard/internal/astutil"
	"fillmore-labs.com/writeguard/internal/config"
	"fillmore-labs.com/writeguard/internal/guard"
	"fillmore-labs.com/writeguard/internal/report"
	"fillmore-labs.com/writeguard/internal/source"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the writeguard analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	if o.Err != nil {
		return nil, fmt.Errorf("writeguard: %w", o.Err)
	}

	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("writeguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if len(o.Sources) == 0 {
		return nil, fmt.Errorf("writeguard: %w: no tracing source types", source.ErrInvalidType)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "WriteGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	m := source.NewMatcher(o.Sources)
	fix := o.Behavior.Enabled(config.SuggestFixes)

	types := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.CallExpr)(nil),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		r := report.New(p, currentFile, fix)

		trace.WithRegion(ctx, "File", func() {
			f.Inspect(types, func(c inspector.Cursor) bool {
				switch n := c.Node().(type) {
				case *ast.FuncDecl:
					// Skip functions with nolint comment
					return n.Body != nil && !astutil.DocHasNoLint(n.Doc)

				case *ast.CallExpr:
					checkCall(p, m, currentFile, r, c, n)
				}

				return true
			})
		})
	}

	return nil, nil
}

// checkCall reports a Write call on a tracing source that is not guarded by a matching IsEnabled call.
func checkCall(p *analysis.Pass, m source.Matcher, currentFile astutil.CurrentFile, r *report.Reporter, c inspector.Cursor, n *ast.CallExpr) {
	call, ok := m.Match(p.TypesInfo, n, source.Write)
	if !ok {
		return
	}

	if currentFile.NoLintComment(n.Pos()) {
		return
	}

	verdict := guard.Detect(p.TypesInfo, m, c, call.Name)

	r.Report(report.Site{Cursor: c, Call: call}, verdict)
}
