// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	// Context keys for logging
	ContextKeyPassID       ContextKey = "pass_id"
	ContextKeyTaskType     ContextKey = "task_type"
	ContextKeyFile         ContextKey = "file"
	ContextKeyOrderNumber  ContextKey = "order_number"
	ContextKeyDocumentType ContextKey = "document_type"
	ContextKeyDuration     ContextKey = "duration_ms"
	ContextKeyEnvironment  ContextKey = "environment"
	ContextKeyService      ContextKey = "service"
	ContextKeyVersion      ContextKey = "version"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level          string `json:"level"`
	Format         string `json:"format"`
	Output         string `json:"output"`
	AddSource      bool   `json:"add_source"`
	Environment    string `json:"environment"`
	ServiceName    string `json:"service_name"`
	ServiceVersion string `json:"service_version"`
}

// Logger wraps slog.Logger with context extraction
type Logger struct {
	*slog.Logger
	config      *LogConfig
	contextKeys []ContextKey
}

// Global logger instance
var defaultLogger *Logger

// SetupLogger initializes the logger and installs it as the slog default
func SetupLogger(level string, format string) *Logger {
	output := os.Getenv("LOG_OUTPUT")
	if output == "" {
		output = "stdout"
	}

	config := &LogConfig{
		Level:          level,
		Format:         format,
		Output:         output,
		AddSource:      true,
		ServiceName:    os.Getenv("SERVICE_NAME"),
		ServiceVersion: os.Getenv("SERVICE_VERSION"),
		Environment:    os.Getenv("APP_ENV"),
	}

	logger := NewLogger(config)
	defaultLogger = logger
	slog.SetDefault(logger.Logger)

	return logger
}

// NewLogger creates a new logger from config
func NewLogger(config *LogConfig) *Logger {
	if config == nil {
		config = &LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		}
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(config.Level),
		AddSource: config.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return replaceAttr(groups, a)
		},
	}

	var handler slog.Handler
	writer := getWriter(config.Output)

	switch config.Format {
	case "text":
		handler = NewPrettyTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	// A file output keeps a console stream alongside the log file.
	if strings.HasPrefix(config.Output, "file:") {
		handler = NewMultiHandler(handler, slog.NewJSONHandler(os.Stdout, opts))
	}

	// Context extraction first, then secret masking on the final record.
	handler = NewContextHandler(handler, config)
	handler = NewSanitizationHandler(handler)

	if config.ServiceName != "" || config.Environment != "" {
		attrs := []slog.Attr{}
		if config.ServiceName != "" {
			attrs = append(attrs, slog.String("service", config.ServiceName))
		}
		if config.ServiceVersion != "" {
			attrs = append(attrs, slog.String("version", config.ServiceVersion))
		}
		if config.Environment != "" {
			attrs = append(attrs, slog.String("env", config.Environment))
		}
		handler = handler.WithAttrs(attrs)
	}

	return &Logger{
		Logger:      slog.New(handler),
		config:      config,
		contextKeys: defaultContextKeys(),
	}
}

// WithContext creates a logger with context values attached as attributes
func (l *Logger) WithContext(ctx context.Context) *slog.Logger {
	attrs := extractContextAttrs(ctx, l.contextKeys)
	if len(attrs) > 0 {
		return l.Logger.With(attrs...)
	}
	return l.Logger
}

// Helper functions

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getWriter(output string) io.Writer {
	switch output {
	case "stderr":
		return os.Stderr
	default:
		if strings.HasPrefix(output, "file:") {
			filename := strings.TrimPrefix(output, "file:")
			file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return os.Stdout
			}
			return file
		}
		return os.Stdout
	}
}

func defaultContextKeys() []ContextKey {
	return []ContextKey{
		ContextKeyPassID,
		ContextKeyTaskType,
		ContextKeyFile,
		ContextKeyOrderNumber,
		ContextKeyDocumentType,
		ContextKeyDuration,
	}
}

func extractContextAttrs(ctx context.Context, keys []ContextKey) []any {
	attrs := []any{}

	for _, key := range keys {
		if val := ctx.Value(key); val != nil {
			keyStr := string(key)
			switch v := val.(type) {
			case string:
				if v != "" {
					attrs = append(attrs, slog.String(keyStr, v))
				}
			case int:
				attrs = append(attrs, slog.Int(keyStr, v))
			case int64:
				attrs = append(attrs, slog.Int64(keyStr, v))
			case bool:
				attrs = append(attrs, slog.Bool(keyStr, v))
			case time.Duration:
				attrs = append(attrs, slog.Duration(keyStr, v))
			case time.Time:
				attrs = append(attrs, slog.Time(keyStr, v))
			case uuid.UUID:
				attrs = append(attrs, slog.String(keyStr, v.String()))
			default:
				attrs = append(attrs, slog.Any(keyStr, v))
			}
		}
	}

	return attrs
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
		}
	}

	if strings.HasSuffix(a.Key, "_ms") {
		if d, ok := a.Value.Any().(time.Duration); ok {
			a.Value = slog.Float64Value(float64(d.Milliseconds()))
		}
	}

	return a
}

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	if defaultLogger == nil {
		defaultLogger = NewLogger(nil)
	}
	return defaultLogger
}

// FromContext extracts a context-enriched logger
func FromContext(ctx context.Context) *slog.Logger {
	return GetDefault().WithContext(ctx)
}
