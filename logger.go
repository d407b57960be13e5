package queryi18n

// Logger defines the leveled logging contract expected by the planner. It
// mirrors the interface exposed by github.com/goliatone/go-logger so host
// applications can plug that package in via the gologger adapter.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger returns a logger that discards everything.
func NoOpLogger() Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ Logger = noopLogger{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
