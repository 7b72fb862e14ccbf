// Package serial talks to the mesh radio over a USB serial link: it finds
// the device, runs the start-up handshake and exchanges text lines.
package serial

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"mesh-bbs/errors"
	"strings"
	"time"
	"unicode"
)

// Port is the part of a serial port the line transport needs.
// go.bug.st/serial ports satisfy it; Read returns 0, nil on timeout.
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

const (
	lineTerminator = '\r'
	readChunkSize  = 256
	maxLineLength  = 4096
)

// LineTransport frames a serial port into ASCII lines. Each write is
// followed by the consumption of the device's echo lines.
type LineTransport struct {
	port      Port
	log       *slog.Logger
	echoLines int
	buf       []byte
	chunk     []byte
	// set while the tail of an oversized line is being skipped
	discarding bool
}

func NewLineTransport(port Port, log *slog.Logger, echoLines int) *LineTransport {
	return &LineTransport{
		port:      port,
		log:       log,
		echoLines: echoLines,
		chunk:     make([]byte, readChunkSize),
	}
}

// ReadLine returns the next non-empty line with trailing whitespace removed.
// A partial line stays buffered across timeouts.
func (t *LineTransport) ReadLine(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if line, ok := t.nextBuffered(); ok {
			if line == "" {
				continue
			}
			return line, nil
		}

		n, err := t.port.Read(t.chunk)
		if n > 0 {
			t.buf = append(t.buf, t.chunk[:n]...)
			t.skipOversized()
		}
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", errors.ErrNoData
		}
	}
}

// skipOversized drops a line longer than maxLineLength up to and including
// its terminating newline, even when the newline arrives in a later read.
func (t *LineTransport) skipOversized() {
	if !t.discarding && len(t.buf) > maxLineLength && bytes.IndexByte(t.buf, '\n') < 0 {
		t.log.Warn("Discarding oversized line", "bytes", len(t.buf))
		t.discarding = true
	}
	if !t.discarding {
		return
	}
	idx := bytes.IndexByte(t.buf, '\n')
	if idx < 0 {
		t.buf = t.buf[:0]
		return
	}
	t.buf = t.buf[idx+1:]
	t.discarding = false
}

func (t *LineTransport) nextBuffered() (string, bool) {
	idx := bytes.IndexByte(t.buf, '\n')
	if idx < 0 {
		return "", false
	}
	raw := t.buf[:idx]
	t.buf = t.buf[idx+1:]
	return strings.TrimRightFunc(toASCII(raw), unicode.IsSpace), true
}

// WriteLine sends text followed by the device terminator, then swallows
// the echo lines.
func (t *LineTransport) WriteLine(ctx context.Context, text string) error {
	return t.send(ctx, text, t.echoLines)
}

func (t *LineTransport) send(ctx context.Context, text string, echoLines int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload := append(fromASCII(text), lineTerminator)
	if _, err := t.port.Write(payload); err != nil {
		return err
	}
	t.log.Debug("Sent", "line", text)
	return t.discard(ctx, echoLines)
}

// discard consumes n lines; a read timeout counts as a consumed line.
func (t *LineTransport) discard(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		line, err := t.ReadLine(ctx)
		if stderrors.Is(err, errors.ErrNoData) {
			continue
		}
		if err != nil {
			return err
		}
		if looksLikeMessage(line) {
			t.log.Info("Dropped a mesh message read as echo", "line", line)
			continue
		}
		t.log.Debug("Echo", "line", line)
	}
	return nil
}

// looksLikeMessage matches both the field-test and the bare message frame.
func looksLikeMessage(line string) bool {
	return strings.HasPrefix(line, "[RSS: ") || strings.HasPrefix(line, "<")
}

func (t *LineTransport) Close() error {
	return t.port.Close()
}

func toASCII(raw []byte) string {
	out := make([]byte, len(raw))
	for i, b := range raw {
		if b > unicode.MaxASCII {
			b = '?'
		}
		out[i] = b
	}
	return string(out)
}

func fromASCII(text string) []byte {
	out := make([]byte, 0, len(text)+1)
	for _, r := range text {
		if r > unicode.MaxASCII {
			r = '?'
		}
		out = append(out, byte(r))
	}
	return out
}
