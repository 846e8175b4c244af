package sources

import (
	"test/diagnostics"
	"test/trace"
)

func sources(src *trace.Source, sink trace.Sink, l *diagnostics.DiagnosticListener) {
	src.Write("event", 1) // want "Call to Source.Write should be guarded with IsEnabled"

	sink.Write("event", 1) // want "Call to Sink.Write should be guarded with IsEnabled"

	l.Write("event", 1)
}
