package middleware

import (
	"context"

	"rpg-bot/internal/command"
	"rpg-bot/pkg/cmd"
)

// WithGuildOnly drops invocations that arrive outside a guild (DMs).
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if v, ok := inv.Data.(*command.MessageContext); ok && v.Event.GuildID == "" {
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}
