package middleware

import (
	"context"
	"log"
	"strings"
	"time"

	"rpg-bot/internal/command"
	"rpg-bot/internal/storage"
	"rpg-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// WithCommandLogger records every executed command into the guild's history.
// Logging failures never block the command itself.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)

			v, ok := inv.Data.(*command.MessageContext)
			if !ok || v.Storage == nil || v.Event.GuildID == "" {
				return err
			}

			if logErr := logCommand(v.Session, v.Storage, v.Event, c.Name(), strings.Join(inv.Args, " ")); logErr != nil {
				log.Println("[WARN] Failed to log command:", logErr)
			}
			return err
		})
	}
}

func logCommand(s *discordgo.Session, store *storage.Storage, e *discordgo.MessageCreate, name, param string) error {
	channelName := ""
	if channel, err := s.State.Channel(e.ChannelID); err == nil {
		channelName = channel.Name
	}

	guildName := ""
	if guild, err := s.State.Guild(e.GuildID); err == nil {
		guildName = guild.Name
	}

	return store.AppendCommandToHistory(e.GuildID, storage.CommandHistoryRecord{
		ChannelID:   e.ChannelID,
		ChannelName: channelName,
		GuildName:   guildName,
		UserID:      e.Author.ID,
		Username:    e.Author.Username,
		Command:     name,
		Param:       param,
		Datetime:    time.Now(),
	})
}
