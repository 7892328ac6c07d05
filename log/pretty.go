package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeLevel(buf, r.Level)

	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		buf.WriteByte(' ')
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		buf.WriteByte(' ')
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &prettyTextHandler{
		opts:  h.opts,
		mu:    h.mu, // Share the mutex across derived handlers
		w:     h.w,
		attrs: merged,
	}
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	// Groups are flattened in pretty output.
	return h
}

// writeLevel writes the colorized level label.
func (h *prettyTextHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	var color string

	switch {
	case level >= slog.LevelError:
		color = colorRed
	case level >= slog.LevelWarn:
		color = colorYellow
	case level >= slog.LevelInfo:
		color = colorGreen
	case level >= slog.LevelDebug:
		color = colorBlue
	default:
		color = colorCyan
	}

	label := level.String()
	if a := h.replace(slog.Any(slog.LevelKey, level)); !a.Equal(slog.Attr{}) {
		label = a.Value.String()
	}

	buf.WriteString(color)
	buf.WriteString(label)
	buf.WriteString(colorReset)
	buf.WriteByte(' ')
}

// writeAttr writes a single key=value pair with the key dimmed.
func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	a = h.replace(a)
	if a.Equal(slog.Attr{}) {
		return
	}

	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for i, member := range a.Value.Group() {
			if i > 0 {
				buf.WriteByte(' ')
			}

			h.writeAttr(buf, member)
		}

		return
	}

	buf.WriteString(colorGray)
	buf.WriteString(a.Key)
	buf.WriteString("=")
	buf.WriteString(colorReset)

	value := a.Value.String()
	if a.Value.Kind() == slog.KindString && needsQuoting(value) {
		value = strconv.Quote(value)
	}

	fmt.Fprint(buf, value)
}

// replace applies the configured ReplaceAttr function, if any.
func (h *prettyTextHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

// needsQuoting reports whether a string value would be ambiguous unquoted.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}

	for _, r := range s {
		if r == ' ' || r == '"' || r == '=' || r == '\n' || r == '\t' {
			return true
		}
	}

	return false
}
