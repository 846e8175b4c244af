// Code generated by hand. DO NOT EDIT.

package a

import "test/diagnostics"

func generated(l *diagnostics.DiagnosticListener) {
	l.Write("Generated", nil)
}
