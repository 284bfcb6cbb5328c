package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction allows for different logging implementations (logrus, zap, etc.)
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Info("Searching groups", map[string]interface{}{
//		"keyword": "yazılım",
//		"groups": 5,
//	})
//
//	logger.Error("Failed to parse response", map[string]interface{}{
//		"keyword": "yazılım",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	// Debug messages are typically used for detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	// Info messages are used for general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Error messages indicate failures that need attention.
	Error(msg string, fields map[string]interface{})
}
// NopLogger discards every message. Services fall back to it when no
// logger is injected.
type NopLogger struct{}

// Debug discards the message
func (NopLogger) Debug(msg string, fields map[string]interface{}) {}

// Info discards the message
func (NopLogger) Info(msg string, fields map[string]interface{}) {}

// Warn discards the message
func (NopLogger) Warn(msg string, fields map[string]interface{}) {}

// Error discards the message
func (NopLogger) Error(msg string, fields map[string]interface{}) {}
