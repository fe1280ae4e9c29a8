package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"rpg-bot/internal/bot"
	"rpg-bot/internal/command"
	musiccmd "rpg-bot/internal/command/music"
	"rpg-bot/internal/command/roll"
	"rpg-bot/internal/config"
	"rpg-bot/internal/music"
	"rpg-bot/internal/rng"
	"rpg-bot/internal/storage"
	"rpg-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/snowflake/v2"
)

const nodeConnectTimeout = 15 * time.Second

// Bot is the Discord runtime: gateway session, audio-node client, and the
// command surface built on top of them.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	store   *storage.Storage
	rng     *rng.Client
	link    disgolink.Client
	manager *music.Manager
	gate    *music.Gate
}

func NewBot(cfg *config.Config, store *storage.Storage) *Bot {
	return &Bot{
		cfg:   cfg,
		store: store,
		rng:   rng.New(cfg.RandomOrgURL, roll.MinFace, roll.MaxFace),
	}
}

// Run connects to the gateway and the audio node, registers the command
// surface, and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsAll

	// The gateway dispatches events on goroutines the moment Open returns,
	// so the whole command surface has to exist before any handler is
	// attached. The bot user is fetched over REST for the same reason.
	self, err := dg.User("@me")
	if err != nil {
		return fmt.Errorf("failed to fetch bot user: %w", err)
	}
	botID, err := snowflake.Parse(self.ID)
	if err != nil {
		return fmt.Errorf("failed to parse bot user ID: %w", err)
	}
	b.link = disgolink.New(botID)
	defer b.link.Close()

	b.manager = music.NewManager(dg, b.link)
	b.gate = music.NewGate(b, b.manager)
	b.registerCommands()

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onVoiceServerUpdate)
	dg.AddHandler(b.onVoiceStateUpdate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	// A missing node only disables music; the dice roller keeps working.
	nodeCtx, cancel := context.WithTimeout(ctx, nodeConnectTimeout)
	defer cancel()
	if _, err := b.link.AddNode(nodeCtx, disgolink.NodeConfig{
		Name:     b.cfg.LavalinkName,
		Address:  b.cfg.LavalinkAddress,
		Password: b.cfg.LavalinkPassword,
		Secure:   b.cfg.LavalinkSecure,
	}); err != nil {
		log.Printf("[WARN] Audio node %s unavailable: %v", b.cfg.LavalinkAddress, err)
	} else {
		log.Printf("[INFO] Audio node %s connected", b.cfg.LavalinkAddress)
	}

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) registerCommands() {
	musiccmd.Register(&musiccmd.Deps{Manager: b.manager, Gate: b.gate})
	roll.Register(&roll.RollCommand{RNG: b.rng, DiceDir: b.cfg.DiceDir})
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Discord bot %v is running in %d guilds.", r.User.Username, len(r.Guilds))
}

// onMessageCreate dispatches prefixed commands through the registry; anything
// else is offered to message listeners (the dice-roller trigger word).
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}

	mctx := &command.MessageContext{
		Session: s,
		Event:   m,
		Storage: b.store,
	}

	if !strings.HasPrefix(m.Content, b.cfg.Prefix) {
		b.dispatchListeners(mctx)
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, b.cfg.Prefix))
	if len(fields) == 0 {
		return
	}

	c := cmd.DefaultRegistry.Get(strings.ToLower(fields[0]))
	if c == nil {
		return
	}

	mctx.Args = fields[1:]
	inv := &cmd.Invocation{Args: mctx.Args, Data: mctx}
	if err := c.Run(context.Background(), inv); err != nil {
		log.Println("[ERR] Error running command:", err)
		if sendErr := bot.MessageEmbed(s, m.ChannelID, fmt.Sprintf("Error running command: %v", err)); sendErr != nil {
			log.Println("[ERR] Failed to send error reply:", sendErr)
		}
	}
}

func (b *Bot) dispatchListeners(mctx *command.MessageContext) {
	for _, c := range cmd.DefaultRegistry.GetAll() {
		listener, ok := cmd.Root(c).(command.MessageListener)
		if !ok {
			continue
		}
		if err := listener.Listen(mctx); err != nil {
			log.Println("[ERR] Error running message listener:", err)
		}
	}
}
