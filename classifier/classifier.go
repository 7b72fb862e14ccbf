// Package classifier turns raw device lines into inbound mesh events.
package classifier

import (
	"fmt"
	"mesh-bbs/domain"
	"mesh-bbs/errors"
	"strings"
)

type Framing string

const (
	// FramingBracketed expects the radio signal preamble the device emits
	// in field-test output mode, e.g. "[RSS: -71 SNR: 9] <alice> hello".
	FramingBracketed Framing = "bracketed"
	// FramingBare expects the message to start at the sender bracket.
	FramingBare Framing = "bare"
)

const rssPrefix = "[RSS: "

type Classifier struct {
	framing Framing
}

func New(framing Framing) (Classifier, error) {
	switch framing {
	case FramingBracketed, FramingBare:
		return Classifier{framing: framing}, nil
	default:
		return Classifier{}, fmt.Errorf("unknown framing %q", framing)
	}
}

// Classify returns errors.ErrNotMeshMessage for device chatter and
// errors.ErrMalformedLine when the frame matched but no sender could be read.
func (c Classifier) Classify(line string) (domain.InboundEvent, error) {
	if !c.matchesFrame(line) {
		return domain.InboundEvent{}, errors.ErrNotMeshMessage
	}

	open := strings.IndexByte(line, '<')
	if open < 0 {
		return domain.InboundEvent{}, fmt.Errorf("%w: no sender bracket", errors.ErrMalformedLine)
	}
	rest := line[open+1:]
	closing := strings.IndexByte(rest, '>')
	if closing < 0 {
		return domain.InboundEvent{}, fmt.Errorf("%w: unterminated sender", errors.ErrMalformedLine)
	}
	sender := rest[:closing]
	if strings.TrimSpace(sender) == "" {
		return domain.InboundEvent{}, fmt.Errorf("%w: empty sender", errors.ErrMalformedLine)
	}

	body := strings.TrimPrefix(rest[closing+1:], " ")
	return domain.InboundEvent{
		Sender: sender,
		Body:   strings.TrimSpace(body),
		Raw:    line,
	}, nil
}

func (c Classifier) matchesFrame(line string) bool {
	if c.framing == FramingBare {
		return strings.HasPrefix(line, "<")
	}
	return strings.HasPrefix(line, rssPrefix)
}
