package music

import (
	"context"
	"fmt"

	"rpg-bot/internal/bot"
	"rpg-bot/internal/music"

	embed "github.com/clinet/discordgo-embed"
)

const playEmbedColor = 0xE67E22

type PlayCommand struct {
	deps *Deps
}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Aliases() []string   { return []string{"tocar"} }
func (c *PlayCommand) Description() string { return "Procura e toca uma música" }
func (c *PlayCommand) Category() string    { return category }

func (c *PlayCommand) Run(ctx interface{}) error {
	mctx, err := messageContext(ctx)
	if err != nil {
		return err
	}
	session := mctx.Session
	m := mctx.Event.Message

	if len(mctx.Args) == 0 {
		return bot.Message(session, m.ChannelID, "Uso: `play <link ou pesquisa>`")
	}

	sess, ok, err := c.deps.gate(mctx, c.Name())
	if !ok || err != nil {
		return err
	}

	query := music.NormalizeQuery(joinArgs(mctx.Args))
	result, err := c.deps.Manager.Resolve(context.Background(), query)
	if err != nil {
		return err
	}

	if result.Kind == music.LoadKindEmpty || len(result.Tracks) == 0 {
		return bot.Message(session, m.ChannelID, music.ErrNoResults.Message)
	}

	guildID := sess.GuildID()
	queue := c.deps.Manager.Queue(guildID)
	added := music.Enqueue(queue, result, m.Author.ID)

	msg := embed.NewEmbed().SetColor(playEmbedColor)
	if result.Kind == music.LoadKindPlaylist {
		msg.SetTitle("✅ Playlist adicionada!").
			SetDescription(fmt.Sprintf("%s - %d tracks", result.PlaylistName, len(added)))
	} else {
		track := added[0]
		uri := ""
		if track.Info.URI != nil {
			uri = *track.Info.URI
		}
		msg.SetTitle("✅ Faixa adicionada na fila.").
			SetDescription(fmt.Sprintf("[%s](%s)", track.Info.Title, uri))
	}

	if _, err := session.ChannelMessageSendEmbed(m.ChannelID, msg.MessageEmbed); err != nil {
		return err
	}

	// Starting playback while a track is live would skip it, so only an idle
	// player picks up the queue here.
	if !c.deps.Manager.IsPlaying(guildID) {
		next, ok := queue.Next()
		if ok {
			return c.deps.Manager.Play(context.Background(), guildID, next)
		}
	}
	return nil
}
