// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the CLI and the HTTP servers and
// integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so every log line of a request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Session started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
