package config

import "time"

const (
	DefaultPort              = "5001"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultJSONBodyLimit     = 100 << 10

	DefaultOriginPattern = `\.vercel\.app$`

	DefaultLogLevel  = "debug"
	DefaultLogFormat = LogFormatConsole
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// DefaultAllowedOrigins are the local development frontends and the
// production frontend.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"https://clgcalender.vercel.app",
}

func defaultConfig() *StructuredConfig {
	origins := make([]string, len(DefaultAllowedOrigins))
	copy(origins, DefaultAllowedOrigins)

	return &StructuredConfig{
		Server: Server{
			Port:              DefaultPort,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			IdleTimeout:       DefaultIdleTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
			JSONBodyLimit:     DefaultJSONBodyLimit,
		},
		CORS: CORS{
			AllowedOrigins:       origins,
			AllowedOriginPattern: DefaultOriginPattern,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
