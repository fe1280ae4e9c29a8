package music

import (
	"rpg-bot/internal/bot"
	"rpg-bot/internal/music"
)

type LoopCommand struct {
	deps *Deps
}

func (c *LoopCommand) Name() string        { return "loop" }
func (c *LoopCommand) Aliases() []string   { return []string{} }
func (c *LoopCommand) Description() string { return "Ativa ou desativa o modo loop" }
func (c *LoopCommand) Category() string    { return category }

func (c *LoopCommand) Run(ctx interface{}) error {
	mctx, err := messageContext(ctx)
	if err != nil {
		return err
	}

	sess, ok, err := c.deps.gate(mctx, c.Name())
	if !ok || err != nil {
		return err
	}

	mode := c.deps.Manager.Queue(sess.GuildID()).ToggleLoop()
	reply := " > ✅ Modo loop foi desativado."
	if mode == music.LoopTrack {
		reply = " > ✅ Modo loop foi ativado."
	}
	return bot.Message(mctx.Session, mctx.Event.ChannelID, reply)
}
