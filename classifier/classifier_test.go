package classifier

import (
	stderrors "errors"
	"mesh-bbs/domain"
	"mesh-bbs/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify_Bracketed(t *testing.T) {
	c, err := New(FramingBracketed)
	require.NoError(t, err)

	tests := []struct {
		name     string
		line     string
		expected domain.InboundEvent
		err      error
	}{
		{
			name: "Command message",
			line: "[RSS: -71 SNR: 9] <alice> BBS WRITE hello world",
			expected: domain.InboundEvent{
				Sender: "alice",
				Body:   "BBS WRITE hello world",
				Raw:    "[RSS: -71 SNR: 9] <alice> BBS WRITE hello world",
			},
		},
		{
			name: "Empty body",
			line: "[RSS: -90 SNR: 1] <bob>",
			expected: domain.InboundEvent{
				Sender: "bob",
				Body:   "",
				Raw:    "[RSS: -90 SNR: 1] <bob>",
			},
		},
		{
			name: "Body keeps later brackets",
			line: "[RSS: -50 SNR: 3] <clara> look <here> > there",
			expected: domain.InboundEvent{
				Sender: "clara",
				Body:   "look <here> > there",
				Raw:    "[RSS: -50 SNR: 3] <clara> look <here> > there",
			},
		},
		{name: "Device chatter", line: "OK", err: errors.ErrNotMeshMessage},
		{name: "Bare line in bracketed mode", line: "<alice> hi", err: errors.ErrNotMeshMessage},
		{name: "Empty line", line: "", err: errors.ErrNotMeshMessage},
		{name: "No sender bracket", line: "[RSS: -71 SNR: 9] hello", err: errors.ErrMalformedLine},
		{name: "Unterminated sender", line: "[RSS: -71 SNR: 9] <alice hello", err: errors.ErrMalformedLine},
		{name: "Empty sender", line: "[RSS: -71 SNR: 9] <> hello", err: errors.ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, err := c.Classify(tt.line)
			if tt.err != nil {
				require.True(t, stderrors.Is(err, tt.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, evt)
		})
	}
}

func TestClassifier_Classify_Bare(t *testing.T) {
	req := require.New(t)
	c, err := New(FramingBare)
	req.NoError(err)

	evt, err := c.Classify("<alice>  BBS READ  ")
	req.NoError(err)
	req.Equal("alice", evt.Sender)
	req.Equal("BBS READ", evt.Body)

	_, err = c.Classify("[RSS: -71 SNR: 9] <alice> BBS READ")
	req.ErrorIs(err, errors.ErrNotMeshMessage)
}

func TestNew_UnknownFraming(t *testing.T) {
	_, err := New("json")
	require.Error(t, err)
}
