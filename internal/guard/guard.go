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

// Package guard decides whether a tracing write is guarded by a matching IsEnabled check.
//
// A write
//
//	source.Write("event", payload)
//
// is guarded when an enclosing if statement of the same function checks
//
//	if source.IsEnabled("event") { ... }
//
// Names match by literal value when the write uses a literal, by object
// identity otherwise. There is no control flow analysis: every enclosing if
// condition counts, regardless of the branch the write is in.
package guard

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/writeguard/internal/source"
)

// Detect classifies the write call at c with the event name argument name.
//
// Enclosing if statements are examined innermost first, up to the enclosing
// function declaration. Only the first mismatching IsEnabled call is
// reported in a [Mismatched] verdict.
func Detect(info *types.Info, m source.Matcher, c inspector.Cursor, name ast.Expr) Verdict {
	same := sameObject(info, name)
	if value, ok := source.Literal(name); ok {
		same = sameLiteral(value)
	}

	var mismatch Verdict

	for cond := range enclosingConditions(c) {
		for call := range guardCalls(cond) {
			enabled, ok := m.Match(info, call, source.IsEnabled)
			if !ok {
				continue
			}

			if same(enabled.Name) {
				return Verdict{Kind: Guarded}
			}

			if mismatch.Kind != Mismatched {
				mismatch = Verdict{
					Kind:  Mismatched,
					Guard: source.Name(info, enabled.Name),
					Write: source.Name(info, name),
				}
			}
		}
	}

	if mismatch.Kind == Mismatched {
		return mismatch
	}

	return Verdict{Kind: Unguarded}
}

// sameLiteral matches guard names with the literal value.
func sameLiteral(value string) func(ast.Expr) bool {
	return func(expr ast.Expr) bool {
		v, ok := source.Literal(expr)

		return ok && v == value
	}
}

// sameObject matches guard names referring to the object name refers to.
// Unresolved names match nothing.
func sameObject(info *types.Info, name ast.Expr) func(ast.Expr) bool {
	obj := source.ObjectOf(info, name)
	if obj == nil {
		return func(ast.Expr) bool { return false }
	}

	return func(expr ast.Expr) bool {
		return source.ObjectOf(info, expr) == obj
	}
}

// enclosingConditions yields the conditions of all if statements enclosing c,
// innermost first, stopping at the function declaration.
func enclosingConditions(c inspector.Cursor) iter.Seq[ast.Expr] {
	return func(yield func(ast.Expr) bool) {
		for e := range c.Parent().Enclosing() {
			switch n := e.Node().(type) {
			case *ast.FuncDecl, *ast.File:
				return

			case *ast.IfStmt:
				if !yield(n.Cond) {
					return
				}
			}
		}
	}
}

// guardCalls yields the calls of a condition that can act as a guard:
// the condition itself or the operands of a conjunction, left to right.
func guardCalls(cond ast.Expr) iter.Seq[*ast.CallExpr] {
	return func(yield func(*ast.CallExpr) bool) {
		conjuncts(cond, yield)
	}
}

func conjuncts(expr ast.Expr, yield func(*ast.CallExpr) bool) bool {
	switch e := ast.Unparen(expr).(type) {
	case *ast.CallExpr:
		return yield(e)

	case *ast.BinaryExpr:
		if e.Op == token.LAND {
			return conjuncts(e.X, yield) && conjuncts(e.Y, yield)
		}
	}

	return true
}
