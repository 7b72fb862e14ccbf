package serial

import (
	"bytes"
	"context"
	"log/slog"
	"mesh-bbs/errors"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestLineTransport_ReadLine(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a line split across reads, a blank line and a non ASCII byte
	port := newFakePort(nil, "[RSS: -71 SNR: 9] <ali", "ce> hi\r\n\r\n", "<bob> caf\xc3\xa9  \r\n")
	transport := NewLineTransport(port, log, 0)

	line, err := transport.ReadLine(ctx)
	req.NoError(err)
	req.Equal("[RSS: -71 SNR: 9] <alice> hi", line)

	line, err = transport.ReadLine(ctx)
	req.NoError(err)
	req.Equal("<bob> caf??", line)

	// Then an idle port reports no data
	_, err = transport.ReadLine(ctx)
	req.ErrorIs(err, errors.ErrNoData)
}

func TestLineTransport_PartialLineSurvivesTimeout(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	port := newFakePort(nil, "<alice> hel")
	transport := NewLineTransport(port, logs.GetLoggerFromLevel(slog.LevelDebug), 0)

	_, err := transport.ReadLine(ctx)
	req.ErrorIs(err, errors.ErrNoData)

	port.queue = append(port.queue, []byte("lo\n"))
	line, err := transport.ReadLine(ctx)
	req.NoError(err)
	req.Equal("<alice> hello", line)
}

func TestLineTransport_WriteLine_ConsumesEcho(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	port := newFakePort(map[string][]string{
		"alice, I have added your message to the wall.": {"alice, I have added your message to the wall."},
	})
	transport := NewLineTransport(port, logs.GetLoggerFromLevel(slog.LevelDebug), 1)

	req.NoError(transport.WriteLine(ctx, "alice, I have added your message to the wall."))

	req.Equal("alice, I have added your message to the wall.\r", port.written.String())
	_, err := transport.ReadLine(ctx)
	req.ErrorIs(err, errors.ErrNoData)
}

func TestLineTransport_WriteLine_ReplacesNonASCII(t *testing.T) {
	req := require.New(t)
	port := newFakePort(nil)
	transport := NewLineTransport(port, logs.GetLoggerFromLevel(slog.LevelDebug), 0)

	req.NoError(transport.WriteLine(context.Background(), "été"))
	req.Equal("?t?\r", port.written.String())
}

func TestLineTransport_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	transport := NewLineTransport(newFakePort(nil, "<a> b\n"), logs.GetLoggerFromLevel(slog.LevelDebug), 0)

	_, err := transport.ReadLine(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, transport.WriteLine(ctx, "x"), context.Canceled)
}

func TestLineTransport_OversizedLineIsSkippedWhole(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	oversized := strings.Repeat("x", maxLineLength+500)
	port := newFakePort(nil, "<spam> "+oversized, " tail of the spam\n<alice> hi\n")
	transport := NewLineTransport(port, logs.GetLoggerFromLevel(slog.LevelDebug), 0)

	// The tail of the oversized line is not mistaken for a line of its own
	line, err := transport.ReadLine(ctx)
	req.NoError(err)
	req.Equal("<alice> hi", line)

	_, err = transport.ReadLine(ctx)
	req.ErrorIs(err, errors.ErrNoData)
}

func TestLineTransport_OversizedLineEndingInLaterRead(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	port := newFakePort(nil, strings.Repeat("x", maxLineLength+1))
	transport := NewLineTransport(port, logs.GetLoggerFromLevel(slog.LevelDebug), 0)

	_, err := transport.ReadLine(ctx)
	req.ErrorIs(err, errors.ErrNoData)

	port.queue = append(port.queue, []byte("still the same line\n<bob> ok\n"))
	line, err := transport.ReadLine(ctx)
	req.NoError(err)
	req.Equal("<bob> ok", line)
}

func TestLineTransport_WriteLine_LogsMessageSwallowedAsEcho(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	// Given a mesh message lands where the echo was expected
	port := newFakePort(map[string][]string{
		"bob, there are no messages on the wall.": {"[RSS: -90 SNR: 2] <carol> BBS READ"},
	})
	transport := NewLineTransport(port, log, 1)

	req.NoError(transport.WriteLine(context.Background(), "bob, there are no messages on the wall."))

	// Then the loss is visible at info level
	req.Contains(out.String(), "level=INFO")
	req.Contains(out.String(), "Dropped a mesh message read as echo")
	req.Contains(out.String(), "<carol> BBS READ")
}

func TestLineTransport_WriteLine_PlainEchoStaysQuiet(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	port := newFakePort(map[string][]string{"hello": {"hello"}})
	transport := NewLineTransport(port, log, 1)

	require.NoError(t, transport.WriteLine(context.Background(), "hello"))
	require.Empty(t, out.String())
}
