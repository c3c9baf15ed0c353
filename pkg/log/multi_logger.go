package log

// MultiLogger fans one trace event out to several destinations. The daemon
// uses it to keep slog console output while also recording the CBOR trace
// file requested on the command line.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger builds a fan-out over the given destinations. A nil or
// empty list yields a logger that discards everything.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log hands the event to every destination in registration order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
