// Package logging provides the logging plumbing for the styler demo: a
// console slog handler whose level labels are colored through the ansi
// package, and uuid-named per-run JSON log files.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/isseis/go-term-styler/ansi"
	"github.com/isseis/go-term-styler/terminal"
)

// Static errors for ConsoleHandler validation
var (
	ErrConsoleHandlerWriterRequired       = errors.New("ConsoleHandler: Writer is required")
	ErrConsoleHandlerCapabilitiesRequired = errors.New("ConsoleHandler: Capabilities is required")
)

// levelCodes maps slog levels to their display color.
var levelCodes = map[slog.Level]ansi.Code{
	slog.LevelDebug: ansi.FgBrightBlack,
	slog.LevelInfo:  ansi.FgGreen,
	slog.LevelWarn:  ansi.FgYellow,
	slog.LevelError: ansi.FgRed,
}

// ConsoleHandler is a slog handler producing human-readable terminal output.
// Color is applied only when the terminal capabilities allow it.
type ConsoleHandler struct {
	capabilities terminal.Capabilities
	writer       io.Writer
	level        slog.Level
	attrs        []slog.Attr
	groups       []string
	mu           *sync.Mutex
}

// ConsoleHandlerOptions configures the ConsoleHandler.
type ConsoleHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// Capabilities provides terminal color detection
	Capabilities terminal.Capabilities
}

// NewConsoleHandler creates a new ConsoleHandler with the given options.
// Returns an error if any required options are missing.
func NewConsoleHandler(opts ConsoleHandlerOptions) (*ConsoleHandler, error) {
	if opts.Writer == nil {
		return nil, ErrConsoleHandlerWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrConsoleHandlerCapabilitiesRequired
	}

	return &ConsoleHandler{
		capabilities: opts.Capabilities,
		writer:       opts.Writer,
		level:        opts.Level,
		mu:           &sync.Mutex{},
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(h.formatLevel(r.Level))
	sb.WriteString(" ")
	sb.WriteString(r.Message)

	prefix := h.groupPrefix()
	for _, attr := range h.attrs {
		appendAttr(&sb, prefix, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&sb, prefix, attr)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, sb.String())
	return err
}

// WithAttrs returns a handler whose records carry the given attributes.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a handler that prefixes attribute keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// formatLevel renders a fixed-width level label, colored when the terminal
// supports it.
func (h *ConsoleHandler) formatLevel(level slog.Level) string {
	label := fmt.Sprintf("%-5s", level.String())
	code, ok := levelCodes[level]
	if !ok {
		return label
	}

	colored, err := ansi.ColorizeForced(h.capabilities.SupportsColor(), label, code)
	if err != nil {
		return label
	}
	return colored
}

func (h *ConsoleHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func appendAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	sb.WriteString(" ")
	sb.WriteString(prefix)
	sb.WriteString(attr.Key)
	sb.WriteString("=")
	sb.WriteString(attr.Value.String())
}
