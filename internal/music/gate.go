package music

import "context"

// GuildState exposes the guild voice facts the gate needs. The Discord bot
// implements it on top of gateway state.
type GuildState interface {
	// UserVoiceChannel reports the voice channel the user currently occupies.
	UserVoiceChannel(guildID, userID string) (channelID string, ok bool)
	// BotVoiceChannel reports the voice channel the bot currently occupies.
	BotVoiceChannel(guildID string) (channelID string, ok bool)
	// BotChannelPermissions reports whether the bot may connect and speak in
	// the channel.
	BotChannelPermissions(guildID, channelID string) (connect, speak bool, err error)
	// BotCanMoveMembers reports the guild-level move-members override.
	BotCanMoveMembers(guildID string) bool
	// ChannelOccupancy reports the channel's user limit (0 = unlimited) and
	// current member count.
	ChannelOccupancy(guildID, channelID string) (limit, members int, err error)
}

// SessionStore yields per-guild sessions, creating one when absent. Creation
// alone has no effect on voice connectivity.
type SessionStore interface {
	Session(guildID string) *Session
}

// connectCommands are the only commands allowed to trigger a fresh voice
// connect. Everything else requires an already-active voice client.
var connectCommands = map[string]bool{"play": true}

// Request describes one command invocation to be gated.
type Request struct {
	GuildID       string
	UserID        string
	TextChannelID string
	Command       string
}

// Gate is the precondition check run before every playback command. It is
// evaluated fresh per invocation; voice membership changes between commands.
type Gate struct {
	state    GuildState
	sessions SessionStore
}

func NewGate(state GuildState, sessions SessionStore) *Gate {
	return &Gate{state: state, sessions: sessions}
}

// Check validates the request and returns the guild's session when the
// command may proceed. Rejections are *GateError values carrying the
// user-facing message; a connect is never partially applied.
func (g *Gate) Check(ctx context.Context, req Request) (*Session, error) {
	if req.GuildID == "" {
		return nil, ErrNoGuild
	}

	sess := g.sessions.Session(req.GuildID)

	userChannel, inVoice := g.state.UserVoiceChannel(req.GuildID, req.UserID)
	botChannel, botConnected := g.state.BotVoiceChannel(req.GuildID)

	if !inVoice {
		if botConnected {
			return nil, ErrJoinMyChannel
		}
		return nil, ErrJoinVoiceChannel
	}

	if !botConnected {
		if !connectCommands[req.Command] {
			return nil, ErrNotPlaying
		}

		connect, speak, err := g.state.BotChannelPermissions(req.GuildID, userChannel)
		if err != nil {
			return nil, err
		}
		if !connect || !speak {
			return nil, ErrNoPermissions
		}

		limit, members, err := g.state.ChannelOccupancy(req.GuildID, userChannel)
		if err != nil {
			return nil, err
		}
		// A limit of 0 means no limit. A full channel is still joinable with
		// the move-members override; nobody gets displaced, the node simply
		// accepts one more occupant.
		if limit > 0 && members >= limit && !g.state.BotCanMoveMembers(req.GuildID) {
			return nil, ErrChannelFull
		}

		sess.SetTextChannel(req.TextChannelID)
		if err := sess.Connect(ctx, userChannel); err != nil {
			return nil, err
		}
		return sess, nil
	}

	if botChannel != userChannel {
		return nil, ErrWrongChannel
	}

	return sess, nil
}
