// Code generated by hand. DO NOT EDIT.

package generated

import "test/diagnostics"

func generated(l *diagnostics.DiagnosticListener) {
	l.Write("Generated", nil) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
}
