package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// TraceIDKey is the context key carrying the request trace id.
type TraceIDKey struct{}
