package nested

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// logError logs a failed operation. Failures are expected data outcomes for a
// path engine, so they are logged at debug level.
func (p *Processor) logError(operation string, path any, err error) {
	if p.logger == nil {
		return
	}

	code := "unknown"
	if c, ok := CodeOf(err); ok {
		code = c.String()
	}

	safePath := sanitizePath(describePath(path))
	errText := sanitizeError(err)
	if safePath == redactedPath {
		// the message repeats the path and its keys
		errText = redactedPath
	}

	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "nested operation failed",
		slog.String("operation", operation),
		slog.String("path", safePath),
		slog.String("error", errText),
		slog.String("error_code", code),
		slog.String("processor_id", p.getProcessorID()),
	)
}

// logOperation logs a successful operation
func (p *Processor) logOperation(operation string, path any, duration time.Duration) {
	if p.logger == nil {
		return
	}

	const slowOperationThreshold = 10 * time.Millisecond

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("path", sanitizePath(describePath(path))),
		slog.Duration("duration", duration),
		slog.String("processor_id", p.getProcessorID()),
	}

	if duration > slowOperationThreshold {
		attrs = append(attrs, slog.Duration("threshold", slowOperationThreshold))
		p.logger.LogAttrs(context.Background(), slog.LevelWarn, "Slow nested operation detected", attrs...)
		return
	}
	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "nested operation completed", attrs...)
}

const redactedPath = "[REDACTED_PATH]"

// sanitizePath removes potentially sensitive information from paths
func sanitizePath(path string) string {
	lowerPath := strings.ToLower(path)
	sensitivePatterns := []string{
		"password", "passwd", "pwd",
		"token", "bearer",
		"apikey", "api_key", "api-key",
		"secret", "credential",
		"authorization", "session", "cookie",
	}
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerPath, pattern) {
			return redactedPath
		}
	}
	return truncateString(path, MaxLoggedPathLength)
}

// sanitizeError bounds the length of logged error messages
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return truncateString(err.Error(), MaxLoggedErrorLength)
}

// truncateString truncates a string with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// getProcessorID returns a unique identifier for this processor instance
func (p *Processor) getProcessorID() string {
	return fmt.Sprintf("proc_%p", p)
}
