package music

import (
	"context"
	"log"
	"sync"
)

// Signaling sends voice-state change requests to the chat gateway.
type Signaling interface {
	ChangeVoiceState(guildID, channelID string, selfMute, selfDeaf bool) error
}

// PlayerRegistry is the slice of the audio-node client a session needs:
// create-if-absent, teardown, and connection status for one guild's player.
type PlayerRegistry interface {
	Ensure(guildID string)
	Release(ctx context.Context, guildID string) error
	Connected(guildID string) bool
}

// Session binds one guild to a voice channel and an audio-node player.
// Teardown is idempotent: destroyed is monotonic and guards every path
// (user command, gateway disconnect, queue end) that may race into Destroy.
type Session struct {
	guildID  string
	signal   Signaling
	registry PlayerRegistry

	mu            sync.Mutex
	channelID     string // "" means not connected
	textChannelID string
	destroyed     bool
}

func NewSession(guildID string, signal Signaling, registry PlayerRegistry) *Session {
	return &Session{guildID: guildID, signal: signal, registry: registry}
}

func (s *Session) GuildID() string { return s.guildID }

func (s *Session) ChannelID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channelID
}

func (s *Session) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// SetTextChannel records where command replies for this session should go.
func (s *Session) SetTextChannel(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textChannelID = channelID
}

func (s *Session) TextChannel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textChannelID
}

// Connect ensures a player exists for the guild, then asks the gateway to
// move into channelID. The bot always joins self-deafened and never
// self-muted, regardless of what the caller might prefer.
func (s *Session) Connect(ctx context.Context, channelID string) error {
	s.registry.Ensure(s.guildID)
	return s.signal.ChangeVoiceState(s.guildID, channelID, false, true)
}

// Disconnect leaves the voice channel and destroys the session. Without
// force it is a no-op unless the player reports an active connection.
func (s *Session) Disconnect(ctx context.Context, force bool) error {
	if !force && !s.registry.Connected(s.guildID) {
		return nil
	}

	if err := s.signal.ChangeVoiceState(s.guildID, "", false, false); err != nil {
		return err
	}

	// The gateway does not dispatch a voice-state update for our own
	// disconnect, so the channel has to be cleared here.
	s.mu.Lock()
	s.channelID = ""
	s.mu.Unlock()

	s.Destroy(ctx)
	return nil
}

// Destroy tears down the guild's audio-node player exactly once; later calls
// are silent no-ops. A registry failure is absorbed: teardown regularly races
// the registry's own cleanup and the player may already be gone.
func (s *Session) Destroy(ctx context.Context) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	s.mu.Unlock()

	if err := s.registry.Release(ctx, s.guildID); err != nil {
		log.Printf("[WARN] Player teardown for guild %s: %v", s.guildID, err)
	}
}

// HandleVoiceState records the session's channel from a gateway voice-state
// update. An empty channel is an externally-initiated disconnect: the session
// destroys itself and reports that the update must not be forwarded to the
// audio node.
func (s *Session) HandleVoiceState(ctx context.Context, channelID string) (forward bool) {
	if channelID == "" {
		s.Destroy(ctx)
		return false
	}

	s.mu.Lock()
	s.channelID = channelID
	s.mu.Unlock()
	return true
}
