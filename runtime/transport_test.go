package runtime_test

import (
	"context"
	"mesh-bbs/errors"
)

// RecordingTransport serves scripted lines and records every write.
// Once the script is exhausted ReadLine reports no data.
type RecordingTransport struct {
	lines    []string
	written  []string
	onRead   func()
	readErr  error
	writeErr error
}

func (t *RecordingTransport) ReadLine(ctx context.Context) (string, error) {
	if t.onRead != nil {
		t.onRead()
	}
	if len(t.lines) == 0 {
		if t.readErr != nil {
			return "", t.readErr
		}
		return "", errors.ErrNoData
	}
	line := t.lines[0]
	t.lines = t.lines[1:]
	return line, nil
}

func (t *RecordingTransport) WriteLine(ctx context.Context, text string) error {
	if t.writeErr != nil {
		return t.writeErr
	}
	t.written = append(t.written, text)
	return nil
}

func (t *RecordingTransport) Close() error {
	return nil
}

func (t *RecordingTransport) Flush() []string {
	out := t.written
	t.written = nil
	return out
}
