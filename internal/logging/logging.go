// Package logging builds the zerolog loggers used by the binaries.
package logging

import (
	"bytes"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Unknown levels fall back to
// info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Timestamp().
		Str("service", "smartcalc").
		Logger().
		Level(lvl)
}

// LineLogger receives one log line per call, without the newline. The host
// logger (hal.Logger) is one.
type LineLogger interface {
	WriteLineBytes(b []byte)
}

// LineWriter adapts a LineLogger to io.Writer. Partial lines are buffered
// until their newline arrives.
func LineWriter(l LineLogger) io.Writer {
	return &lineWriter{l: l}
}

type lineWriter struct {
	mu  sync.Mutex
	l   LineLogger
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := bytes.TrimRight(w.buf[:i], "\r")
		w.l.WriteLineBytes(append([]byte(nil), line...))
		w.buf = w.buf[i+1:]
	}
}
