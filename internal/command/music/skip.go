package music

import "context"

type SkipCommand struct {
	deps *Deps
}

func (c *SkipCommand) Name() string        { return "skip" }
func (c *SkipCommand) Aliases() []string   { return []string{"s", "pular"} }
func (c *SkipCommand) Description() string { return "Toca a próxima música da fila" }
func (c *SkipCommand) Category() string    { return category }

func (c *SkipCommand) Run(ctx interface{}) error {
	mctx, err := messageContext(ctx)
	if err != nil {
		return err
	}
	return c.deps.Manager.Skip(context.Background(), mctx.Event.GuildID)
}
