package middleware

import (
	"context"
	"testing"

	"rpg-bot/internal/command"
	"rpg-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

type countingCommand struct {
	runs int
}

func (c *countingCommand) Name() string        { return "count" }
func (c *countingCommand) Aliases() []string   { return nil }
func (c *countingCommand) Description() string { return "counts runs" }
func (c *countingCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	c.runs++
	return nil
}

func invocationFromGuild(guildID string) *cmd.Invocation {
	return &cmd.Invocation{
		Data: &command.MessageContext{
			Event: &discordgo.MessageCreate{
				Message: &discordgo.Message{GuildID: guildID},
			},
		},
	}
}

func TestWithGuildOnlyDropsDirectMessages(t *testing.T) {
	inner := &countingCommand{}
	wrapped := cmd.Apply(inner, WithGuildOnly())

	assert.NoError(t, wrapped.Run(context.Background(), invocationFromGuild("")))
	assert.Zero(t, inner.runs)

	assert.NoError(t, wrapped.Run(context.Background(), invocationFromGuild("g1")))
	assert.Equal(t, 1, inner.runs)
}
