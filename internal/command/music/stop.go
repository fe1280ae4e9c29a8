package music

import "context"

type StopCommand struct {
	deps *Deps
}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Aliases() []string   { return []string{} }
func (c *StopCommand) Description() string { return "Para a música e limpa a fila" }
func (c *StopCommand) Category() string    { return category }

func (c *StopCommand) Run(ctx interface{}) error {
	mctx, err := messageContext(ctx)
	if err != nil {
		return err
	}

	sess, ok, err := c.deps.gate(mctx, c.Name())
	if !ok || err != nil {
		return err
	}
	guildID := sess.GuildID()

	c.deps.Manager.Queue(guildID).Clear()
	if err := c.deps.Manager.Stop(context.Background(), guildID); err != nil {
		return err
	}
	return sess.Disconnect(context.Background(), true)
}
