package music

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGuildState describes one frozen view of a guild's voice topology.
type fakeGuildState struct {
	userChannel   string
	botChannel    string
	canConnect    bool
	canSpeak      bool
	canMove       bool
	limit         int
	members       int
	permCallCount int
}

func (f *fakeGuildState) UserVoiceChannel(guildID, userID string) (string, bool) {
	return f.userChannel, f.userChannel != ""
}

func (f *fakeGuildState) BotVoiceChannel(guildID string) (string, bool) {
	return f.botChannel, f.botChannel != ""
}

func (f *fakeGuildState) BotChannelPermissions(guildID, channelID string) (bool, bool, error) {
	f.permCallCount++
	return f.canConnect, f.canSpeak, nil
}

func (f *fakeGuildState) BotCanMoveMembers(guildID string) bool { return f.canMove }

func (f *fakeGuildState) ChannelOccupancy(guildID, channelID string) (int, int, error) {
	return f.limit, f.members, nil
}

type fakeSessionStore struct {
	sessions map[string]*Session
	signal   *fakeSignal
	registry *fakeRegistry
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions: map[string]*Session{},
		signal:   &fakeSignal{},
		registry: &fakeRegistry{},
	}
}

func (f *fakeSessionStore) Session(guildID string) *Session {
	if s, ok := f.sessions[guildID]; ok {
		return s
	}
	s := NewSession(guildID, f.signal, f.registry)
	f.sessions[guildID] = s
	return s
}

func gateReq(cmd string) Request {
	return Request{GuildID: "g1", UserID: "u1", TextChannelID: "text-1", Command: cmd}
}

func TestGateRejectsOutsideGuild(t *testing.T) {
	gate := NewGate(&fakeGuildState{}, newFakeSessionStore())

	_, err := gate.Check(context.Background(), Request{Command: "play"})

	var gateErr *GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, ReasonNoGuild, gateErr.Reason)
}

func TestGateDistinguishesUserNotInVoiceReasons(t *testing.T) {
	tests := []struct {
		name       string
		botChannel string
		want       Reason
	}{
		{"bot connected, join my channel", "voice-1", ReasonJoinMyChannel},
		{"bot absent, join any channel", "", ReasonJoinVoiceChannel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &fakeGuildState{botChannel: tt.botChannel}
			gate := NewGate(state, newFakeSessionStore())

			_, err := gate.Check(context.Background(), gateReq("play"))

			var gateErr *GateError
			require.ErrorAs(t, err, &gateErr)
			assert.Equal(t, tt.want, gateErr.Reason)
		})
	}
}

func TestGateRejectsUserNotInVoiceBeforePermissionChecks(t *testing.T) {
	// Even with everything else broken, the missing user wins.
	state := &fakeGuildState{canConnect: false, canSpeak: false, limit: 1, members: 5}
	gate := NewGate(state, newFakeSessionStore())

	_, err := gate.Check(context.Background(), gateReq("play"))

	var gateErr *GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, ReasonJoinVoiceChannel, gateErr.Reason)
	assert.Zero(t, state.permCallCount, "permissions must not be evaluated")
}

func TestGateOnlyPlayMayConnect(t *testing.T) {
	for _, cmd := range []string{"leave", "skip", "stop", "pause", "resume", "volume", "loop"} {
		t.Run(cmd, func(t *testing.T) {
			state := &fakeGuildState{userChannel: "voice-1", canConnect: true, canSpeak: true}
			store := newFakeSessionStore()
			gate := NewGate(state, store)

			_, err := gate.Check(context.Background(), gateReq(cmd))

			var gateErr *GateError
			require.ErrorAs(t, err, &gateErr)
			assert.Equal(t, ReasonNotPlaying, gateErr.Reason)
			assert.Empty(t, store.signal.changes, "no connect may happen")
		})
	}
}

func TestGateRejectsMissingPermissions(t *testing.T) {
	tests := []struct {
		name     string
		connect  bool
		speak    bool
		rejected bool
	}{
		{"no connect", false, true, true},
		{"no speak", true, false, true},
		{"both", true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &fakeGuildState{userChannel: "voice-1", canConnect: tt.connect, canSpeak: tt.speak}
			gate := NewGate(state, newFakeSessionStore())

			_, err := gate.Check(context.Background(), gateReq("play"))

			if !tt.rejected {
				require.NoError(t, err)
				return
			}
			var gateErr *GateError
			require.ErrorAs(t, err, &gateErr)
			assert.Equal(t, ReasonNoPermissions, gateErr.Reason)
		})
	}
}

func TestGateChannelCapacity(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		members  int
		canMove  bool
		rejected bool
	}{
		{"unlimited", 0, 50, false, false},
		{"room available", 3, 2, false, false},
		{"full", 2, 2, false, true},
		{"full with move-members override", 2, 2, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &fakeGuildState{
				userChannel: "voice-1",
				canConnect:  true,
				canSpeak:    true,
				canMove:     tt.canMove,
				limit:       tt.limit,
				members:     tt.members,
			}
			gate := NewGate(state, newFakeSessionStore())

			_, err := gate.Check(context.Background(), gateReq("play"))

			if !tt.rejected {
				require.NoError(t, err)
				return
			}
			var gateErr *GateError
			require.ErrorAs(t, err, &gateErr)
			assert.Equal(t, ReasonChannelFull, gateErr.Reason)
		})
	}
}

func TestGateFreshConnectRecordsTextChannelAndJoins(t *testing.T) {
	state := &fakeGuildState{userChannel: "voice-1", canConnect: true, canSpeak: true}
	store := newFakeSessionStore()
	gate := NewGate(state, store)

	sess, err := gate.Check(context.Background(), gateReq("play"))
	require.NoError(t, err)

	assert.Equal(t, "text-1", sess.TextChannel())
	assert.Equal(t, 1, store.registry.ensured, "player created before joining")
	require.Len(t, store.signal.changes, 1)
	assert.Equal(t, "voice-1", store.signal.changes[0].channelID)
	assert.True(t, store.signal.changes[0].selfDeaf)
}

func TestGateRejectsWrongChannel(t *testing.T) {
	state := &fakeGuildState{userChannel: "voice-2", botChannel: "voice-1"}
	gate := NewGate(state, newFakeSessionStore())

	_, err := gate.Check(context.Background(), gateReq("play"))

	var gateErr *GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, ReasonWrongChannel, gateErr.Reason)
}

func TestGateAllowsSharedChannel(t *testing.T) {
	state := &fakeGuildState{userChannel: "voice-1", botChannel: "voice-1"}
	store := newFakeSessionStore()
	gate := NewGate(state, store)

	sess, err := gate.Check(context.Background(), gateReq("volume"))
	require.NoError(t, err)
	assert.NotNil(t, sess)
	assert.Empty(t, store.signal.changes, "no reconnect when already in place")
}
