package a

import "test/diagnostics"

const otherName = "Other"

var ready bool

func guarded(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled("Foo") {
		l.Write("Foo", payload())
	}

	if l.IsEnabled(eventName) {
		l.Write(eventName, payload())
	}

	if ready && l.IsEnabled("Ready") {
		l.Write("Ready", nil)
	}

	if l.IsEnabled("Outer") {
		for range 3 {
			func() {
				l.Write("Outer", nil)
			}()
		}
	}
}

func otherSource(s diagnostics.DiagnosticSource, l *diagnostics.DiagnosticListener) {
	if s.IsEnabled("Shared") {
		l.Write("Shared", nil)
	}
}

func elseBranch(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled("Else") {
		return
	} else {
		l.Write("Else", nil)
	}
}

func notTracing(l diagnostics.Listener) {
	l.Write("Foo", nil)
}

func suppressed(l *diagnostics.DiagnosticListener) {
	l.Write("Foo", nil) //nolint:writeguard
}

//nolint:writeguard
func suppressedFunc(l *diagnostics.DiagnosticListener) {
	l.Write("Foo", nil)
}
