package music

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndQueueDisconnectsLiveSession(t *testing.T) {
	signal := &fakeSignal{}
	registry := &fakeRegistry{}
	sess := NewSession("g1", signal, registry)
	sess.HandleVoiceState(context.Background(), "voice-1")

	require.NoError(t, endQueue(context.Background(), sess, registry, "g1"))

	require.Len(t, signal.changes, 1)
	assert.Equal(t, "", signal.changes[0].channelID, "empty channel signals leave")
	assert.True(t, sess.Destroyed())
	assert.Equal(t, 1, registry.released)
}

func TestEndQueueWithoutSessionDestroysPlayerDirectly(t *testing.T) {
	// The bot was removed from the guild: there is no session left, so no
	// voice-state change may be attempted, only the player teardown.
	registry := &fakeRegistry{}

	require.NoError(t, endQueue(context.Background(), nil, registry, "missing-guild"))

	assert.Equal(t, 1, registry.released)
	assert.Zero(t, registry.ensured)
}

func TestEndQueueSurfacesReleaseFailure(t *testing.T) {
	registry := &fakeRegistry{releaseErr: assert.AnError}

	err := endQueue(context.Background(), nil, registry, "g1")

	assert.ErrorIs(t, err, assert.AnError)
}