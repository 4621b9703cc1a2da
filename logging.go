package rssfeed

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
)

// Logger is the printf-style logger accepted by WrapPrintfLogger.
type Logger interface {
	Printf(format string, v ...any)
}

// StructuredLogger receives the importer's diagnostics: a warning for every
// skipped element, an error for a failed import and a debug summary for a
// successful one. Args are alternating keys and values.
type StructuredLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// WrapPrintfLogger adapts l to StructuredLogger. Each record becomes one line
// such as "[WARN] skipping invalid element | element=image field=image.width".
func WrapPrintfLogger(l Logger) StructuredLogger {
	return printfLogger{l}
}

// WrapStdLogger is WrapPrintfLogger for a *log.Logger.
func WrapStdLogger(l *log.Logger) StructuredLogger {
	return printfLogger{l}
}

type printfLogger struct {
	Logger
}

func (p printfLogger) Debug(msg string, args ...any) { p.emit("DEBUG", msg, args) }
func (p printfLogger) Info(msg string, args ...any)  { p.emit("INFO", msg, args) }
func (p printfLogger) Warn(msg string, args ...any)  { p.emit("WARN", msg, args) }
func (p printfLogger) Error(msg string, args ...any) { p.emit("ERROR", msg, args) }

func (p printfLogger) emit(level, msg string, args []any) {
	p.Printf("[%s] %s%s", level, msg, formatArgs(args))
}

// formatArgs renders key-value pairs as " | k1=v1 k2=v2". A trailing key
// without a value is paired with <nil>.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(" |")
	for i := 0; i < len(args); i += 2 {
		var value any
		if i+1 < len(args) {
			value = args[i+1]
		}
		fmt.Fprintf(&sb, " %v=%v", args[i], value)
	}
	return sb.String()
}

// NopLogger discards everything. It is the importer's default.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
func (NopLogger) Debug(string, ...any)  {}
func (NopLogger) Info(string, ...any)   {}
func (NopLogger) Warn(string, ...any)   {}
func (NopLogger) Error(string, ...any)  {}

var (
	_ Logger           = NopLogger{}
	_ StructuredLogger = NopLogger{}
	_ StructuredLogger = printfLogger{}
	_ StructuredLogger = (*SlogAdapter)(nil)
)

// SlogAdapter routes importer diagnostics to a *slog.Logger. feedcheck uses
// it with a text or JSON handler on stderr:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	imp := importer.New(importer.WithLogger(rssfeed.NewSlogAdapter(logger)))
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }
func (a *SlogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, args...) }
func (a *SlogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, args...) }
func (a *SlogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

// With returns an adapter whose records carry args, e.g. the feed being
// imported.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.With(args...)}
}
