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

package source

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
)

// Literal returns the value of a literal event name.
func Literal(expr ast.Expr) (string, bool) {
	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	if !ok {
		return "", false
	}

	if lit.Kind != token.STRING {
		return lit.Value, true
	}

	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return lit.Value, true
	}

	return value, true
}

// ObjectOf returns the object an event name refers to, or nil if the
// expression is neither a resolvable identifier nor a qualified identifier.
func ObjectOf(info *types.Info, expr ast.Expr) types.Object {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return info.ObjectOf(e)

	case *ast.SelectorExpr:
		return info.ObjectOf(e.Sel)
	}

	return nil
}

// Name returns a human-readable name of an event name expression.
func Name(info *types.Info, expr ast.Expr) string {
	if value, ok := Literal(expr); ok {
		return value
	}

	if obj := ObjectOf(info, expr); obj != nil {
		return obj.Name()
	}

	return types.ExprString(expr)
}
