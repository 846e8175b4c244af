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
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Type identifies a tracing-source type.
type Type struct {
	// Package is the import path of the declaring package or a suffix of it
	// consisting of complete path elements.
	Package string

	// Name is the name of the declared type.
	Name string
}

// ErrInvalidType is returned when a tracing source type can't be parsed.
var ErrInvalidType = errors.New("invalid tracing source type")

// ParseType parses a type specification of the form "pkg/path.TypeName".
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)

	i := strings.LastIndexByte(s, '.')
	if i <= 0 {
		return Type{}, fmt.Errorf("%w %q: want package.Type", ErrInvalidType, s)
	}

	t := Type{Package: s[:i], Name: s[i+1:]}

	if !token.IsIdentifier(t.Name) {
		return Type{}, fmt.Errorf("%w %q: %q is not an identifier", ErrInvalidType, s, t.Name)
	}

	if strings.HasPrefix(t.Package, "/") || strings.HasSuffix(t.Package, "/") || strings.Contains(t.Package, "//") {
		return Type{}, fmt.Errorf("%w %q: malformed package path %q", ErrInvalidType, s, t.Package)
	}

	return t, nil
}

// String returns the specification of the type in the form accepted by [ParseType].
func (t Type) String() string {
	return t.Package + "." + t.Name
}

// Matches reports whether a type declared as name in the package with the given path is this type.
func (t Type) Matches(path, name string) bool {
	if name != t.Name {
		return false
	}

	rest, ok := strings.CutSuffix(path, t.Package)
	if !ok {
		return false
	}

	return rest == "" || strings.HasSuffix(rest, "/")
}

// Types is a list of tracing-source types.
type Types []Type

// DefaultTypes returns the tracing-source types recognized by default.
func DefaultTypes() Types {
	return Types{
		{Package: "diagnostics", Name: "DiagnosticSource"},
		{Package: "diagnostics", Name: "DiagnosticListener"},
	}
}

// NewTypes parses a list of type specifications.
// The list must not be empty, a matcher without types matches nothing.
func NewTypes(specs ...string) (Types, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrInvalidType)
	}

	ts := make(Types, 0, len(specs))

	for _, spec := range specs {
		t, err := ParseType(spec)
		if err != nil {
			return nil, err
		}

		ts = append(ts, t)
	}

	return ts, nil
}

// Parse parses a comma-separated list of type specifications.
// Empty entries are skipped, but at least one type is required.
func Parse(s string) (Types, error) {
	var specs []string

	for spec := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(spec) == "" {
			continue
		}

		specs = append(specs, spec)
	}

	return NewTypes(specs...)
}

// String returns the comma-separated list of the types.
func (ts Types) String() string {
	var b strings.Builder

	for i, t := range ts {
		if i > 0 {
			b.WriteByte(',') // ignore error
		}

		b.WriteString(t.String()) // ignore error
	}

	return b.String()
}

// Contains reports whether the type declared as name in the package with the given path is in the list.
func (ts Types) Contains(path, name string) bool {
	for _, t := range ts {
		if t.Matches(path, name) {
			return true
		}
	}

	return false
}
