package a

import "test/diagnostics"

type server struct {
	diagnostics *diagnostics.DiagnosticListener
}

func (s *server) field() {
	s.diagnostics.Write("Field", nil) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
}

func (s *server) get() *diagnostics.DiagnosticListener { return s.diagnostics }

func (s *server) call() {
	s.get().Write("Call", nil) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
}

func deferred(l *diagnostics.DiagnosticListener) {
	defer l.Write("Deferred", nil) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
}

func spawned(l *diagnostics.DiagnosticListener) {
	go l.Write("Spawned", nil) // want "Call to DiagnosticListener.Write should be guarded with IsEnabled"
}
