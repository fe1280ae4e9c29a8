package command

import (
	"context"

	"rpg-bot/internal/storage"
	"rpg-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// Discord-specific contexts (what the runtime passes when executing).

// MessageContext is handed to commands dispatched from a prefixed chat
// message. Args holds everything after the command word.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Args    []string
	Storage *storage.Storage
}

// MessageListener is implemented by commands that react to plain chat
// messages without a command prefix (e.g. the dice roller trigger word).
// Listen is called for every non-command, non-bot message.
type MessageListener interface {
	Listen(ctx *MessageContext) error
}

// DiscordCommand is what individual Discord commands implement
// (Run takes interface{} so middleware can pass any Discord context).
type DiscordCommand interface {
	Name() string
	Aliases() []string
	Description() string
	Category() string
	Run(ctx interface{}) error
}

// DiscordAdapter adapts a DiscordCommand to cmd.Command so it can live in the
// universal registry. It forwards Listen when the inner command is a
// MessageListener.
type DiscordAdapter struct {
	Cmd DiscordCommand
}

func (a *DiscordAdapter) Name() string        { return a.Cmd.Name() }
func (a *DiscordAdapter) Aliases() []string   { return a.Cmd.Aliases() }
func (a *DiscordAdapter) Description() string { return a.Cmd.Description() }
func (a *DiscordAdapter) Category() string    { return a.Cmd.Category() }

func (a *DiscordAdapter) Run(ctx context.Context, inv *cmd.Invocation) error {
	return a.Cmd.Run(inv.Data)
}

func (a *DiscordAdapter) Listen(ctx *MessageContext) error {
	if l, ok := a.Cmd.(MessageListener); ok {
		return l.Listen(ctx)
	}
	return nil
}

// RegisterCommand registers a Discord command with the universal registry and
// applies middlewares.
func RegisterCommand(discordCmd DiscordCommand, mws ...cmd.Middleware) {
	c := cmd.Apply(&DiscordAdapter{Cmd: discordCmd}, mws...)
	cmd.DefaultRegistry.Register(c)
}
