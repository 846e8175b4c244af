package a

import "test/diagnostics"

func mismatch(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled("Y") {
		l.Write("X", nil) // want "Call to DiagnosticListener.Write with name 'X' is guarded by IsEnabled with name 'Y'"
	}
}

func mismatchSymbol(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled(otherName) {
		l.Write(eventName, nil) // want "Call to DiagnosticListener.Write with name 'eventName' is guarded by IsEnabled with name 'otherName'"
	}
}

func mismatchInnermost(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled("A") {
		if ready && l.IsEnabled("B") {
			l.Write("X", nil) // want "with name 'X' is guarded by IsEnabled with name 'B'"
		}
	}
}

func mismatchLiteral(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled(eventName) {
		l.Write("Event", nil) // want "with name 'Event' is guarded by IsEnabled with name 'eventName'"
	}
}
