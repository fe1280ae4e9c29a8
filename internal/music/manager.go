package music

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
)

const playbackTimeout = 10 * time.Second

// Manager owns the per-guild sessions and queues on top of a single
// audio-node client. It is built once at startup and handed to the gate and
// the command handlers; nothing else touches the node client directly.
type Manager struct {
	dg   *discordgo.Session
	link disgolink.Client

	mu       sync.Mutex
	sessions map[string]*Session
	queues   map[string]*Queue
}

func NewManager(dg *discordgo.Session, link disgolink.Client) *Manager {
	m := &Manager{
		dg:       dg,
		link:     link,
		sessions: make(map[string]*Session),
		queues:   make(map[string]*Queue),
	}
	link.AddListeners(
		disgolink.NewListenerFunc(m.onTrackStart),
		disgolink.NewListenerFunc(m.onTrackEnd),
		disgolink.NewListenerFunc(m.onWebSocketClosed),
	)
	return m
}

// Session returns the guild's voice session, creating one when absent. A
// destroyed session is replaced; destruction is terminal per session, not per
// guild.
func (m *Manager) Session(guildID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[guildID]; ok && !s.Destroyed() {
		return s
	}
	s := NewSession(guildID, m, m)
	m.sessions[guildID] = s
	return s
}

// ExistingSession returns the guild's live session or nil.
func (m *Manager) ExistingSession(guildID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[guildID]
	if !ok || s.Destroyed() {
		return nil
	}
	return s
}

func (m *Manager) removeSession(guildID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, guildID)
}

// Queue returns the guild's playback queue, creating one when absent.
func (m *Manager) Queue(guildID string) *Queue {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.queues[guildID]
	if !ok {
		q = &Queue{}
		m.queues[guildID] = q
	}
	return q
}

// --- Signaling ---

// ChangeVoiceState asks the gateway to move the bot's voice state. An empty
// channelID signals leaving.
func (m *Manager) ChangeVoiceState(guildID, channelID string, selfMute, selfDeaf bool) error {
	return m.dg.ChannelVoiceJoinManual(guildID, channelID, selfMute, selfDeaf)
}

// --- PlayerRegistry ---

// Ensure creates the guild's player in the node registry if it does not
// exist yet. Calling it twice never creates two players.
func (m *Manager) Ensure(guildID string) {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return
	}
	m.link.Player(id)
}

// Release destroys the guild's player on the node and drops it from the
// registry. A missing player is not an error.
func (m *Manager) Release(ctx context.Context, guildID string) error {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return err
	}

	player := m.link.ExistingPlayer(id)
	if player == nil {
		return nil
	}
	defer m.link.RemovePlayer(id)

	return player.Destroy(ctx)
}

// Connected reports whether the guild's player holds an active voice
// connection.
func (m *Manager) Connected(guildID string) bool {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return false
	}
	player := m.link.ExistingPlayer(id)
	return player != nil && player.ChannelID() != nil
}

// --- Playback operations ---

// Play starts the given track on the guild's player.
func (m *Manager) Play(ctx context.Context, guildID string, track lavalink.Track) error {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return err
	}
	return m.link.Player(id).Update(ctx, lavalink.WithTrack(track))
}

// Stop stops the current track without touching the queue.
func (m *Manager) Stop(ctx context.Context, guildID string) error {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return err
	}
	player := m.link.ExistingPlayer(id)
	if player == nil {
		return nil
	}
	return player.Update(ctx, lavalink.WithNullTrack())
}

// Skip advances to the next queued track, or stops when the queue is empty.
func (m *Manager) Skip(ctx context.Context, guildID string) error {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return err
	}
	player := m.link.ExistingPlayer(id)
	if player == nil {
		return nil
	}

	next, ok := m.Queue(guildID).Next()
	if !ok {
		return player.Update(ctx, lavalink.WithNullTrack())
	}
	return player.Update(ctx, lavalink.WithTrack(next))
}

// SetPaused sets the player's paused flag.
func (m *Manager) SetPaused(ctx context.Context, guildID string, paused bool) error {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return err
	}
	player := m.link.ExistingPlayer(id)
	if player == nil {
		return nil
	}
	return player.Update(ctx, lavalink.WithPaused(paused))
}

// SetVolume sets the player's volume on the node's percentage scale.
func (m *Manager) SetVolume(ctx context.Context, guildID string, percent int) error {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return err
	}
	return m.link.Player(id).Update(ctx, lavalink.WithVolume(percent))
}

// IsPlaying reports whether the guild's player currently holds a track.
// Queueing while playing must not interrupt the current track, so callers
// check this before starting playback.
func (m *Manager) IsPlaying(guildID string) bool {
	id, err := snowflake.Parse(guildID)
	if err != nil {
		return false
	}
	player := m.link.ExistingPlayer(id)
	return player != nil && player.Track() != nil
}

// Resolve asks the audio node to load tracks for the query. The node tags
// the result with a load type which maps onto LoadResult; a load failure is
// returned as an error.
func (m *Manager) Resolve(ctx context.Context, query string) (*LoadResult, error) {
	node := m.link.BestNode()
	if node == nil {
		return nil, fmt.Errorf("no audio node available")
	}

	result := &LoadResult{}
	var loadErr error
	node.LoadTracksHandler(ctx, query, disgolink.NewResultHandler(
		func(track lavalink.Track) {
			result.Kind = LoadKindTrack
			result.Tracks = []lavalink.Track{track}
		},
		func(playlist lavalink.Playlist) {
			result.Kind = LoadKindPlaylist
			result.Tracks = playlist.Tracks
			result.PlaylistName = playlist.Info.Name
		},
		func(tracks []lavalink.Track) {
			result.Kind = LoadKindSearch
			result.Tracks = tracks
		},
		func() {
			result.Kind = LoadKindEmpty
		},
		func(err error) {
			loadErr = err
		},
	))
	if loadErr != nil {
		return nil, fmt.Errorf("track resolution failed: %w", loadErr)
	}
	return result, nil
}

// --- Gateway voice signaling ---

// HandleVoiceServerUpdate forwards voice-server payloads to the node client.
func (m *Manager) HandleVoiceServerUpdate(e *discordgo.VoiceServerUpdate) {
	id, err := snowflake.Parse(e.GuildID)
	if err != nil {
		return
	}
	m.link.OnVoiceServerUpdate(context.Background(), id, e.Token, e.Endpoint)
}

// HandleVoiceStateUpdate processes the bot's own voice-state updates. An
// update with no channel means we were disconnected externally: the session
// is destroyed and nothing is forwarded to the node for this event.
func (m *Manager) HandleVoiceStateUpdate(e *discordgo.VoiceStateUpdate) {
	if e.UserID != m.link.UserID().String() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), playbackTimeout)
	defer cancel()

	sess := m.Session(e.GuildID)
	if !sess.HandleVoiceState(ctx, e.ChannelID) {
		m.removeSession(e.GuildID)
		return
	}

	guildID, err := snowflake.Parse(e.GuildID)
	if err != nil {
		return
	}
	channelID, err := snowflake.Parse(e.ChannelID)
	if err != nil {
		return
	}
	m.link.OnVoiceStateUpdate(ctx, guildID, &channelID, e.SessionID)
}

// --- Node events ---

func (m *Manager) onTrackStart(player disgolink.Player, event lavalink.TrackStartEvent) {
	guildID := player.GuildID().String()

	// The guild may have vanished between queueing and starting (bot kicked).
	if _, err := m.dg.State.Guild(guildID); err != nil {
		ctx, cancel := context.WithTimeout(context.Background(), playbackTimeout)
		defer cancel()
		if err := m.Release(ctx, guildID); err != nil {
			log.Printf("[WARN] Failed to release player for missing guild %s: %v", guildID, err)
		}
	}
}

func (m *Manager) onTrackEnd(player disgolink.Player, event lavalink.TrackEndEvent) {
	if !event.Reason.MayStartNext() {
		return
	}

	guildID := player.GuildID().String()
	ctx, cancel := context.WithTimeout(context.Background(), playbackTimeout)
	defer cancel()

	next, ok := m.Queue(guildID).Advance(event.Track)
	if !ok {
		m.onQueueEnd(ctx, guildID)
		return
	}
	if err := player.Update(ctx, lavalink.WithTrack(next)); err != nil {
		log.Printf("[ERR] Failed to play next track in guild %s: %v", guildID, err)
	}
}

// endQueue is the policy applied once nothing is left to play: leave the
// voice channel and tear the session down. When the guild session is already
// gone (bot removed from the guild), the player is destroyed directly,
// without attempting a voice-state change.
func endQueue(ctx context.Context, sess *Session, registry PlayerRegistry, guildID string) error {
	if sess == nil {
		return registry.Release(ctx, guildID)
	}
	return sess.Disconnect(ctx, true)
}

func (m *Manager) onQueueEnd(ctx context.Context, guildID string) {
	sess := m.ExistingSession(guildID)
	if err := endQueue(ctx, sess, m, guildID); err != nil {
		log.Printf("[WARN] Queue-end teardown for guild %s: %v", guildID, err)
	}
	if sess != nil {
		m.removeSession(guildID)
	}
}

func (m *Manager) onWebSocketClosed(player disgolink.Player, event lavalink.WebSocketClosedEvent) {
	log.Printf("[WARN] Voice websocket closed for guild %s: code %d, reason %q", player.GuildID(), event.Code, event.Reason)
}
