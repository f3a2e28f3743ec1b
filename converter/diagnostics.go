package converter

import (
	"fmt"
	"log/slog"
)

// Diagnostics receives recoverable conditions noticed during a
// conversion. Fatal conditions are returned as errors instead.
type Diagnostics interface {
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...any) {}
func (nopDiagnostics) Infof(string, ...any) {}

// NopDiagnostics discards everything. It is the default when the
// caller passes nil.
func NopDiagnostics() Diagnostics { return nopDiagnostics{} }

type slogDiagnostics struct {
	l *slog.Logger
}

// SlogDiagnostics routes diagnostics to a structured logger.
func SlogDiagnostics(l *slog.Logger) Diagnostics {
	return slogDiagnostics{l: l}
}

func (s slogDiagnostics) Warnf(format string, args ...any) {
	s.l.Warn(fmt.Sprintf(format, args...))
}

func (s slogDiagnostics) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}
