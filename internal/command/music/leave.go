package music

import (
	"context"

	"rpg-bot/internal/bot"
)

type LeaveCommand struct {
	deps *Deps
}

func (c *LeaveCommand) Name() string        { return "leave" }
func (c *LeaveCommand) Aliases() []string   { return []string{"l", "sair"} }
func (c *LeaveCommand) Description() string { return "Desconecta da call e limpa a fila" }
func (c *LeaveCommand) Category() string    { return category }

func (c *LeaveCommand) Run(ctx interface{}) error {
	mctx, err := messageContext(ctx)
	if err != nil {
		return err
	}

	sess, ok, err := c.deps.gate(mctx, c.Name())
	if !ok || err != nil {
		return err
	}
	guildID := sess.GuildID()

	// Clearing before stopping keeps the track-end advance from starting a
	// fresh track mid-teardown.
	c.deps.Manager.Queue(guildID).Clear()
	if err := c.deps.Manager.Stop(context.Background(), guildID); err != nil {
		return err
	}
	if err := sess.Disconnect(context.Background(), true); err != nil {
		return err
	}

	return bot.Message(mctx.Session, mctx.Event.ChannelID, " 👋 | Fui retirada da call.")
}
