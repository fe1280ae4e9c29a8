package music

import (
	"context"
	"strconv"

	"rpg-bot/internal/bot"
	"rpg-bot/internal/music"
)

type VolumeCommand struct {
	deps *Deps
}

func (c *VolumeCommand) Name() string        { return "volume" }
func (c *VolumeCommand) Aliases() []string   { return []string{} }
func (c *VolumeCommand) Description() string { return "Ajusta o volume (de 0 a 1)" }
func (c *VolumeCommand) Category() string    { return category }

func (c *VolumeCommand) Run(ctx interface{}) error {
	mctx, err := messageContext(ctx)
	if err != nil {
		return err
	}
	session := mctx.Session
	m := mctx.Event.Message

	if len(mctx.Args) == 0 {
		return bot.Message(session, m.ChannelID, "Uso: `volume <valor entre 0 e 1>`")
	}

	sess, ok, err := c.deps.gate(mctx, c.Name())
	if !ok || err != nil {
		return err
	}

	level, err := strconv.ParseFloat(mctx.Args[0], 64)
	if err != nil {
		return bot.Message(session, m.ChannelID, music.ErrVolumeOutOfRange.Message)
	}
	percent, err := music.VolumePercent(level)
	if err != nil {
		return bot.Message(session, m.ChannelID, music.ErrVolumeOutOfRange.Message)
	}

	return c.deps.Manager.SetVolume(context.Background(), sess.GuildID(), percent)
}
