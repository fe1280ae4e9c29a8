package music

import "context"

type PauseCommand struct {
	deps *Deps
}

func (c *PauseCommand) Name() string        { return "pause" }
func (c *PauseCommand) Aliases() []string   { return []string{"pausar"} }
func (c *PauseCommand) Description() string { return "Pausa a música atual" }
func (c *PauseCommand) Category() string    { return category }

func (c *PauseCommand) Run(ctx interface{}) error {
	mctx, err := messageContext(ctx)
	if err != nil {
		return err
	}
	return c.deps.Manager.SetPaused(context.Background(), mctx.Event.GuildID, true)
}

type ResumeCommand struct {
	deps *Deps
}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Aliases() []string   { return []string{} }
func (c *ResumeCommand) Description() string { return "Continua a música pausada" }
func (c *ResumeCommand) Category() string    { return category }

func (c *ResumeCommand) Run(ctx interface{}) error {
	mctx, err := messageContext(ctx)
	if err != nil {
		return err
	}
	return c.deps.Manager.SetPaused(context.Background(), mctx.Event.GuildID, false)
}
