package music

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rpg-bot/internal/bot"
	"rpg-bot/internal/command"
	"rpg-bot/internal/middleware"
	"rpg-bot/internal/music"
)

const category = "🎧 Música"

// Deps is the shared dependency set injected into every music command.
type Deps struct {
	Manager *music.Manager
	Gate    *music.Gate
}

// Register wires all music commands into the global command registry.
func Register(deps *Deps) {
	for _, c := range []command.DiscordCommand{
		&PlayCommand{deps},
		&LeaveCommand{deps},
		&SkipCommand{deps},
		&StopCommand{deps},
		&PauseCommand{deps},
		&ResumeCommand{deps},
		&VolumeCommand{deps},
		&LoopCommand{deps},
	} {
		command.RegisterCommand(c,
			middleware.WithGuildOnly(),
			middleware.WithCommandLogger(),
		)
	}
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func messageContext(ctx interface{}) (*command.MessageContext, error) {
	mctx, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil, fmt.Errorf("wrong context type")
	}
	return mctx, nil
}

// gate runs the precondition gate for the invocation. Rejections are posted
// to the channel and reported via ok=false; only unexpected failures return
// an error.
func (d *Deps) gate(mctx *command.MessageContext, commandName string) (*music.Session, bool, error) {
	m := mctx.Event.Message
	sess, err := d.Gate.Check(context.Background(), music.Request{
		GuildID:       m.GuildID,
		UserID:        m.Author.ID,
		TextChannelID: m.ChannelID,
		Command:       commandName,
	})
	if err != nil {
		var gateErr *music.GateError
		if errors.As(err, &gateErr) {
			return nil, false, bot.Message(mctx.Session, m.ChannelID, gateErr.Message)
		}
		return nil, false, err
	}
	return sess, true, nil
}
