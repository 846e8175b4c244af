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
	"bytes"
	"go/ast"
	"go/printer"
	"go/types"
	"unicode"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/writeguard/internal/astutil"
	"fillmore-labs.com/writeguard/internal/source"
)

const fixMessage = "Add IsEnabled guard"

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// guardEdits creates a suggested fix wrapping the statement of a reported write in an IsEnabled check:
//
//	if source.IsEnabled(name) {
//		source.Write(name, payload)
//	}
//
// Only writes that form a statement of their own on a receiver that is a plain identifier are fixed.
func (r *Reporter) guardEdits(site Site) []analysis.TextEdit {
	stmt, ok := site.Cursor.Parent().Node().(*ast.ExprStmt)
	if !ok {
		return nil // deferred, spawned or used in an expression
	}

	recv, ok := ast.Unparen(site.Call.Receiver).(*ast.Ident)
	if !ok || !r.hasIsEnabled(recv) {
		return nil
	}

	name, ok := r.text(site.Call.Name)
	if !ok {
		return nil
	}

	body, ok := r.text(stmt)
	if !ok {
		return nil
	}

	indent := r.indent(site)

	var buf bytes.Buffer

	buf.WriteString("if ")         // ignore error
	buf.WriteString(recv.Name)     // ignore error
	buf.WriteString(".IsEnabled(") // ignore error
	buf.Write(name)                // ignore error
	buf.WriteString(") {\n")       // ignore error
	buf.Write(indent)              // ignore error
	buf.WriteByte('\t')            // ignore error
	buf.Write(body)                // ignore error
	buf.WriteByte('\n')            // ignore error
	buf.Write(indent)              // ignore error
	buf.WriteByte('}')             // ignore error

	return []analysis.TextEdit{{Pos: stmt.Pos(), End: stmt.End(), NewText: buf.Bytes()}}
}

// hasIsEnabled checks that the receiver has an IsEnabled method, so the fixed code compiles.
func (r *Reporter) hasIsEnabled(recv *ast.Ident) bool {
	t := r.pass.TypesInfo.TypeOf(recv)
	if t == nil {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(t, true, r.pass.Pkg, source.IsEnabled)
	_, ok := obj.(*types.Func)

	return ok
}

// text returns the source text of node, rendering it when the file content is not available.
func (r *Reporter) text(node ast.Node) ([]byte, bool) {
	if content := r.source(); content != nil {
		start, end := r.file.Offset(node.Pos()), r.file.Offset(node.End())
		if 0 <= start && start <= end && end <= len(content) {
			return content[start:end], true
		}
	}

	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, r.pass.Fset, node); err != nil {
		astutil.InternalError(r.pass, node, "Can't render %T: %s", node, err)

		return nil, false
	}

	return buf.Bytes(), true
}

// indent returns the leading white space of the line stmt starts on.
// Without the file content it is the gofmt indentation of the statement.
func (r *Reporter) indent(site Site) []byte {
	stmt := site.Cursor.Parent().Node()

	if content := r.source(); content != nil {
		start, pos := r.file.Offset(r.file.LineStart(stmt.Pos())), r.file.Offset(stmt.Pos())
		if 0 <= start && start <= pos && pos <= len(content) {
			line := content[start:pos]
			if i := bytes.IndexFunc(line, func(ch rune) bool { return !unicode.IsSpace(ch) }); i >= 0 {
				line = line[:i]
			}

			return line
		}
	}

	return bytes.Repeat([]byte{'\t'}, depth(site.Cursor.Parent()))
}

// depth counts the block levels gofmt indents the statement at c by.
func depth(c inspector.Cursor) int {
	var n int

	for e := range c.Parent().Enclosing() {
		switch e.Node().(type) {
		case *ast.CaseClause, *ast.CommClause:
			n++

		case *ast.BlockStmt:
			// case clauses are not indented relative to their switch
			switch e.Parent().Node().(type) {
			case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			default:
				n++
			}

		case *ast.File:
			return n
		}
	}

	return n
}

// source returns the content of the current file, or nil if it can't be read.
func (r *Reporter) source() []byte {
	if !r.read {
		r.read = true

		if r.pass.ReadFile != nil {
			if content, err := r.pass.ReadFile(r.file.Name()); err == nil {
				r.content = content
			}
		}
	}

	return r.content
}
