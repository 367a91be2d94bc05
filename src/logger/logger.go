// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/acm-artifact-resolver/src/internal/helper/gc"
)

// Level is the severity attached to a log entry.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints an info message.
	Printf(format string, v ...any)
	// Println prints an info message with a newline.
	Println(v ...any)
	// Errorf formats and prints an error message.
	Errorf(format string, v ...any)
	// Log prints msg at level with alternating key/value pairs attached.
	Log(level Level, msg string, keysAndValues ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stdout, "", 0)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Errorf prints a message prefixed with "error: ".
func (c *CLILogger) Errorf(format string, v ...any) {
	c.logger.Printf("error: "+format, v...)
}

// Log prints msg followed by key=value pairs.
func (c *CLILogger) Log(level Level, msg string, keysAndValues ...any) {
	line := msg
	for i := 0; i < len(keysAndValues); i += 2 {
		key, val := pair(keysAndValues, i)
		line += fmt.Sprintf(" %s=%v", key, val)
	}
	if level == LevelError {
		line = "error: " + line
	}
	c.logger.Println(line)
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// MCPLogger implements Logger for [MCP] server mode.
//
// Each entry is one JSON object per line with "time", "level" and "message"
// keys plus any fields given to [MCPLogger.Log]. Output must never go to stdout
// while the stdio transport is running.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	pool   gc.Pool
	now    func() time.Time
}

// NewMCPLogger creates a new [MCP] logger.
//
// Parameters:
//   - writer: Destination for JSON lines; nil discards output
//   - silent: Suppress all output when true
//
// Returns:
//   - *MCPLogger: Logger ready for concurrent use
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		writer: writer,
		silent: silent,
		pool:   gc.Default,
		now:    time.Now,
	}
}

// Printf logs an info entry built with fmt.Sprintf.
func (m *MCPLogger) Printf(format string, v ...any) {
	m.write(LevelInfo, fmt.Sprintf(format, v...), nil)
}

// Println logs an info entry built with fmt.Sprintln, without the trailing newline.
func (m *MCPLogger) Println(v ...any) {
	m.write(LevelInfo, strings.TrimSuffix(fmt.Sprintln(v...), "\n"), nil)
}

// Errorf logs an error entry built with fmt.Sprintf.
func (m *MCPLogger) Errorf(format string, v ...any) {
	m.write(LevelError, fmt.Sprintf(format, v...), nil)
}

// Log logs msg with structured fields. A trailing key without a value is
// recorded with a null value. Reserved keys (time, level, message) cannot be
// overridden.
func (m *MCPLogger) Log(level Level, msg string, keysAndValues ...any) {
	m.write(level, msg, keysAndValues)
}

// SetOutput sets the output destination for the MCP logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}

func (m *MCPLogger) write(level Level, msg string, keysAndValues []any) {
	if m.silent {
		return
	}

	entry := make(map[string]any, 3+len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, val := pair(keysAndValues, i)
		entry[key] = val
	}
	entry["time"] = m.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level
	entry["message"] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		data, _ = json.Marshal(map[string]any{
			"time":    entry["time"],
			"level":   LevelError,
			"message": fmt.Sprintf("unencodable log entry %q: %v", msg, err),
		})
	}

	buf := m.pool.Get()
	defer func() {
		buf.Reset()
		m.pool.Put(buf)
	}()
	buf.Write(data)
	buf.WriteByte('\n')

	m.mu.Lock()
	m.writer.Write(buf.Bytes())
	m.mu.Unlock()
}

// pair returns the key and value at position i of a key/value list.
func pair(kv []any, i int) (string, any) {
	key, ok := kv[i].(string)
	if !ok {
		key = fmt.Sprint(kv[i])
	}
	if i+1 >= len(kv) {
		return key, nil
	}
	val := kv[i+1]
	if err, ok := val.(error); ok {
		val = err.Error()
	}
	return key, val
}
