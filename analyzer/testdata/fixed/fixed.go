package fixed

import "test/diagnostics"

var listener = diagnostics.NewDiagnosticListener("a")

const (
	eventName = "Event"
	otherName = "Other"
)

var ready bool

func payload() any { return struct{ A int }{42} }

func unguarded() {
	if listener.IsEnabled("Foo") {
		listener.Write("Foo", struct{ A int }{42})
	}
}

func commented(l *diagnostics.DiagnosticListener) {
	// emit the event
	if l.IsEnabled("Bar") {
		l.Write("Bar", 1)
	}
}

func iface(s diagnostics.DiagnosticSource) {
	if s.IsEnabled(eventName) {
		s.Write(eventName, payload())
	}
}

func nested(l *diagnostics.DiagnosticListener, items []int) {
	for _, item := range items {
		if item > 0 {
			if l.IsEnabled("Item") {
				l.Write("Item", item)
			}
		}
	}
}

func cases(l *diagnostics.DiagnosticListener, n int) {
	switch n {
	case 1:
		if l.IsEnabled("One") {
			l.Write("One", n)
		}

	case 2:
		if l.IsEnabled("Two") {
			l.Write("Two", n)
		}
	}
}

func closure(l *diagnostics.DiagnosticListener) func() {
	return func() {
		if l.IsEnabled("Closure") {
			l.Write("Closure", nil)
		}
	}
}

func mismatch(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled("Y") {
		if l.IsEnabled("X") {
			l.Write("X", nil)
		}
	}
}

func mismatchSymbol(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled(otherName) {
		if l.IsEnabled(eventName) {
			l.Write(eventName, nil)
		}
	}
}

func mismatchInnermost(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled("A") {
		if ready && l.IsEnabled("B") {
			if l.IsEnabled("X") {
				l.Write("X", nil)
			}
		}
	}
}

func mismatchLiteral(l *diagnostics.DiagnosticListener) {
	if l.IsEnabled(eventName) {
		if l.IsEnabled("Event") {
			l.Write("Event", nil)
		}
	}
}
