// Package log provides leveled, structured logging for the CLI layer:
// levels, key-value fields, text or JSON output, per-component prefixes.
// The generation engine itself never logs; its only output is the program
// text it returns.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel parses a level name, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	}
	return INFO
}

// Format selects the output format.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Fields is a set of structured key-value pairs attached to a message.
type Fields map[string]interface{}

// Logger writes leveled messages to a single writer.
type Logger struct {
	mu     sync.Mutex
	prefix string
	writer io.Writer
	level  Level
	format Format
}

// New creates a logger writing to stderr at INFO level.
func New(prefix string) *Logger {
	return &Logger{prefix: prefix, writer: os.Stderr, level: INFO}
}

// SetLevel sets the minimum level that is emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// SetWriter redirects output.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	l.writer = w
	l.mu.Unlock()
}

// SetFormat switches between text and JSON output.
func (l *Logger) SetFormat(f Format) {
	l.mu.Lock()
	l.format = f
	l.mu.Unlock()
}

// WithPrefix returns a child logger with an extended component prefix,
// sharing the parent's writer, level and format.
func (l *Logger) WithPrefix(prefix string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := prefix
	if l.prefix != "" {
		p = l.prefix + "." + prefix
	}
	return &Logger{prefix: p, writer: l.writer, level: l.level, format: l.format}
}

// Debug logs at DEBUG level with printf formatting.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, fmt.Sprintf(format, args...), nil)
}

// Info logs at INFO level with printf formatting.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, fmt.Sprintf(format, args...), nil)
}

// Warn logs at WARN level with printf formatting.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, fmt.Sprintf(format, args...), nil)
}

// Error logs at ERROR level with printf formatting.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, fmt.Sprintf(format, args...), nil)
}

// WithFields logs a message with structured fields at the given level.
func (l *Logger) WithFields(level Level, msg string, fields Fields) {
	l.log(level, msg, fields)
}

func (l *Logger) log(level Level, msg string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	var line string
	if l.format == FormatJSON {
		line = l.formatJSON(level, msg, fields)
	} else {
		line = l.formatText(level, msg, fields)
	}
	fmt.Fprintln(l.writer, line)
}

func (l *Logger) formatText(level Level, msg string, fields Fields) string {
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("]")
	if l.prefix != "" {
		b.WriteString(" ")
		b.WriteString(l.prefix)
		b.WriteString(":")
	}
	b.WriteString(" ")
	b.WriteString(msg)
	for _, k := range sortedFieldKeys(fields) {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

func (l *Logger) formatJSON(level Level, msg string, fields Fields) string {
	entry := map[string]interface{}{
		"time":  time.Now().Format(time.RFC3339),
		"level": level.String(),
		"msg":   msg,
	}
	if l.prefix != "" {
		entry["component"] = l.prefix
	}
	for k, v := range fields {
		entry[k] = v
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return l.formatText(level, msg, fields)
	}
	return string(data)
}

func sortedFieldKeys(fields Fields) []string {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
