package codecs

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Field keys emitted by Base and Compound.
const (
	FieldType   = "type"
	FieldLength = "length"
	FieldID     = "id"
	FieldUnit   = "unit" // "<codec name>.<operation>", e.g. "base64.Decode"
)

// Logger is a tiny leveled logger. Provide an adapter around logging stack.
// A codec without a Logger attached does not log at all.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// Observable is implemented by anything that can carry a Logger.
// Decorating transformers implement it to receive the logger of the codec
// that wraps them.
type Observable interface {
	SetLogger(l Logger)
	Logger() Logger
}
