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
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Method names of a tracing source.
const (
	Write     = "Write"
	IsEnabled = "IsEnabled"
)

// Call is a method call on a tracing source.
type Call struct {
	// Receiver is the expression the method is selected from.
	Receiver ast.Expr

	// Type is the tracing-source type declaring the method.
	Type *types.TypeName

	// Name is the first argument, the event name.
	Name ast.Expr
}

// Matcher recognizes method calls on tracing sources.
type Matcher struct {
	types Types
}

// NewMatcher creates a [Matcher] for the given tracing-source types.
func NewMatcher(ts Types) Matcher {
	return Matcher{types: ts}
}

// Match checks whether call is a call of method on a tracing source with at least one argument.
//
// Calls that can't be resolved with the type information provided don't match.
func (m Matcher) Match(info *types.Info, call *ast.CallExpr, method string) (Call, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != method || len(call.Args) == 0 {
		return Call{}, false
	}

	// Method expressions and package-qualified functions have no receiver expression
	if s, ok := info.Selections[sel]; !ok || s.Kind() != types.MethodVal {
		return Call{}, false
	}

	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok {
		return Call{}, false
	}

	tn := receiverType(fn)
	if tn == nil || tn.Pkg() == nil || !m.types.Contains(tn.Pkg().Path(), tn.Name()) {
		return Call{}, false
	}

	return Call{Receiver: sel.X, Type: tn, Name: call.Args[0]}, true
}

// receiverType returns the named type declaring the method fn, or nil if fn is not a method.
//
// Methods promoted through embedding and interface methods report the type
// they are declared in.
func receiverType(fn *types.Func) *types.TypeName {
	recv := fn.Signature().Recv()
	if recv == nil {
		return nil
	}

	t := types.Unalias(recv.Type())
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	return named.Origin().Obj()
}
