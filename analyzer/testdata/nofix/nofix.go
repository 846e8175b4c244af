package nofix

import "test/diagnostics"

func unguarded(l *diagnostics.DiagnosticListener) {
	l.Write("Foo", nil) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
}
