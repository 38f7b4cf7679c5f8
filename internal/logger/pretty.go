package logger

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ANSI escape sequences.
const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
	ansiGray    = "\033[37m"
	ansiBold    = "\033[1m"
	ansiDim     = "\033[2m"
)

// PrettyHandler writes one colored line per record:
//
//	15:04:05 INF catalog.go:42 record added title="The Road" genre=Post-Apocalyptic
//
// Group names become dotted key prefixes.
type PrettyHandler struct {
	level     slog.Leveler
	addSource bool
	prefix    string
	attrs     []slog.Attr

	mu *sync.Mutex
	w  io.Writer
}

// NewPrettyHandler creates a pretty handler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{level: slog.LevelInfo, mu: &sync.Mutex{}, w: w}
	if opts != nil {
		if opts.Level != nil {
			h.level = opts.Level
		}
		h.addSource = opts.AddSource
	}
	return h
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)

	buf = paint(buf, ansiDim, r.Time.Format("15:04:05"))
	buf = append(buf, ' ')

	label, color := levelLabel(r.Level)
	buf = paint(buf, color, label)
	buf = append(buf, ' ')

	if h.addSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		buf = paint(buf, ansiDim, filepath.Base(frame.File)+":"+strconv.Itoa(frame.Line))
		buf = append(buf, ' ')
	}

	buf = paint(buf, ansiBold, r.Message)

	if len(h.attrs) > 0 || r.NumAttrs() > 0 {
		buf = append(buf, ' ')
		buf = append(buf, ansiCyan...)
		first := true
		writeAttr := func(a slog.Attr) {
			if !first {
				buf = append(buf, ' ')
			}
			first = false
			buf = append(buf, a.Key...)
			buf = append(buf, '=')
			buf = append(buf, renderValue(a.Value)...)
		}
		for _, a := range h.attrs {
			writeAttr(a)
		}
		r.Attrs(func(a slog.Attr) bool {
			a.Key = h.prefix + a.Key
			writeAttr(a)
			return true
		})
		buf = append(buf, ansiReset...)
	}

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// WithAttrs returns a handler that writes attrs, under the current group
// prefix, on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup returns a handler that prefixes later keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func paint(buf []byte, color, s string) []byte {
	buf = append(buf, color...)
	buf = append(buf, s...)
	return append(buf, ansiReset...)
}

// levelLabel returns the three-letter label and color for level.
func levelLabel(level slog.Level) (label, color string) {
	switch level {
	case slog.LevelDebug:
		return "DBG", ansiMagenta
	case slog.LevelInfo:
		return "INF", ansiGreen
	case slog.LevelWarn:
		return "WRN", ansiYellow
	case slog.LevelError:
		return "ERR", ansiRed
	default:
		return level.String(), ansiGray
	}
}

// renderValue formats v for a key=value pair. Strings with whitespace are quoted.
func renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " \t") {
			return strconv.Quote(s)
		}
		return s
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		return v.String()
	}
}
