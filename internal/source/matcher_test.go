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

package source_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/writeguard/internal/source"
	"fillmore-labs.com/writeguard/internal/testsource"
)

const tracing = `
type DiagnosticSource interface {
	Write(name string, payload any)
	IsEnabled(name string, args ...any) bool
}

type DiagnosticListener struct{ name string }

func (l *DiagnosticListener) Write(name string, payload any)        {}
func (l *DiagnosticListener) IsEnabled(name string, args ...any) bool { return l.name != "" }

type Variadic struct{}

func (Variadic) Write(args ...any) {}

type other struct{}

func (other) Write(name string, payload any) {}

type wrapper struct{ *DiagnosticListener }

var l = &DiagnosticListener{}

const eventName = "event"
`

func testTypes() Types {
	return Types{
		{Package: testsource.Package, Name: "DiagnosticSource"},
		{Package: testsource.Package, Name: "DiagnosticListener"},
		{Package: testsource.Package, Name: "Variadic"},
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		method   string
		wantType string
		wantName string
	}{
		{
			name:     "Pointer",
			src:      `func _() { l.Write("x", 1) }`,
			method:   Write,
			wantType: "DiagnosticListener",
			wantName: "x",
		},
		{
			name:     "Interface",
			src:      `func _(s DiagnosticSource) { s.Write(eventName, 1) }`,
			method:   Write,
			wantType: "DiagnosticSource",
			wantName: "eventName",
		},
		{
			name:     "Embedded",
			src:      `func _(w wrapper) { w.Write("x", nil) }`,
			method:   Write,
			wantType: "DiagnosticListener",
			wantName: "x",
		},
		{
			name:     "IsEnabled",
			src:      `func _() { _ = l.IsEnabled("y") }`,
			method:   IsEnabled,
			wantType: "DiagnosticListener",
			wantName: "y",
		},
		{
			name:   "OtherType",
			src:    `func _(o other) { o.Write("x", nil) }`,
			method: Write,
		},
		{
			name:   "OtherMethod",
			src:    `func _() { l.Write("x", nil) }`,
			method: IsEnabled,
		},
		{
			name:   "NoArguments",
			src:    `func _(v Variadic) { v.Write() }`,
			method: Write,
		},
		{
			name:   "MethodExpression",
			src:    `func _() { (*DiagnosticListener).Write(l, "x", nil) }`,
			method: Write,
		},
	}

	m := NewMatcher(testTypes())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, file := testsource.Parse(t, tracing+tt.src)
			_, info := testsource.Check(t, fset, f)

			var (
				got   Call
				found bool
			)

			for c := range file.Preorder((*ast.CallExpr)(nil)) {
				if call, ok := m.Match(info, c.Node().(*ast.CallExpr), tt.method); ok {
					got, found = call, true

					break
				}
			}

			if tt.wantType == "" {
				if found {
					t.Errorf("Got match on %s, want none", got.Type.Name())
				}

				return
			}

			if !found {
				t.Fatal("Got no match")
			}

			if got.Type.Name() != tt.wantType {
				t.Errorf("Got type %s, want %s", got.Type.Name(), tt.wantType)
			}

			if name := Name(info, got.Name); name != tt.wantName {
				t.Errorf("Got name %q, want %q", name, tt.wantName)
			}
		})
	}
}
