package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyondev/jarvis/internal/core"
)

func TestInputChannelUsesRecognizerWhenVoiceEnabled(t *testing.T) {
	recognizer := &fakeRecognizer{utterances: []string{"open youtube"}}
	ch := NewInputChannel(&fakeReader{lines: []string{"typed line"}}, recognizer, time.Second)

	sess := core.NewSession(true, false)
	input, err := ch.Read(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "open youtube", input)
}

func TestInputChannelTextOnlyIgnoresVoiceFlag(t *testing.T) {
	// No recognizer wired means typed input even with voice responses on.
	ch := NewInputChannel(&fakeReader{lines: []string{"typed line"}}, nil, time.Second)

	sess := core.NewSession(true, false)
	input, err := ch.Read(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "typed line", input)
}

func TestInputChannelRespectsVoiceToggle(t *testing.T) {
	recognizer := &fakeRecognizer{utterances: []string{"spoken"}}
	ch := NewInputChannel(&fakeReader{lines: []string{"typed"}}, recognizer, time.Second)

	sess := core.NewSession(false, false)
	input, err := ch.Read(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "typed", input)

	// Flipping the flag mid-session switches the source on the next read.
	sess.VoiceEnabled = true
	input, err = ch.Read(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "spoken", input)
}
