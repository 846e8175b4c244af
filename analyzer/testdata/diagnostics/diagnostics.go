package diagnostics

// DiagnosticSource emits named tracing events.
type DiagnosticSource interface {
	Write(name string, payload any)
	IsEnabled(name string, args ...any) bool
}

// DiagnosticListener is a named [DiagnosticSource].
type DiagnosticListener struct {
	Name    string
	enabled map[string]bool
}

func NewDiagnosticListener(name string) *DiagnosticListener {
	return &DiagnosticListener{Name: name, enabled: make(map[string]bool)}
}

func (l *DiagnosticListener) Write(name string, payload any) {}

func (l *DiagnosticListener) IsEnabled(name string, args ...any) bool { return l.enabled[name] }

// Listener is not a tracing source.
type Listener struct{}

func (Listener) Write(name string, payload any) {}

func (Listener) IsEnabled(name string) bool { return false }
