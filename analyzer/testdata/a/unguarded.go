package a

import "test/diagnostics"

var listener = diagnostics.NewDiagnosticListener("a")

const eventName = "Event"

func payload() any { return struct{ A int }{42} }

func unguarded() {
	listener.Write("Foo", struct{ A int }{42}) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
}

func commented(l *diagnostics.DiagnosticListener) {
	// emit the event
	l.Write("Bar", 1) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
}

func iface(s diagnostics.DiagnosticSource) {
	s.Write(eventName, payload()) // want "Call to DiagnosticSource.Write should be guarded with IsEnabled"
}

func nested(l *diagnostics.DiagnosticListener, items []int) {
	for _, item := range items {
		if item > 0 {
			l.Write("Item", item) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
		}
	}
}

func cases(l *diagnostics.DiagnosticListener, n int) {
	switch n {
	case 1:
		l.Write("One", n) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"

	case 2:
		if l.IsEnabled("Two") {
			l.Write("Two", n)
		}
	}
}

func closure(l *diagnostics.DiagnosticListener) func() {
	return func() {
		l.Write("Closure", nil) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
	}
}
