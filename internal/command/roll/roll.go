package roll

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rpg-bot/internal/bot"
	"rpg-bot/internal/command"
	"rpg-bot/internal/middleware"
	"rpg-bot/internal/rng"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

const (
	// Die face range matched by the bundled GIF assets.
	MinFace = 1
	MaxFace = 6

	triggerWord    = "rolar"
	diceEmbedColor = 0xED4245
)

// AssetName returns the animated image filename for a face value.
func AssetName(value int) string {
	return fmt.Sprintf("dice_%d.gif", value)
}

// ValidateAssets checks that every producible face has its image on disk.
// Called at startup so a missing file fails fast instead of at first roll.
func ValidateAssets(dir string, min, max int) error {
	for v := min; v <= max; v++ {
		path := filepath.Join(dir, AssetName(v))
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("dice asset %s: %w", path, err)
		}
	}
	return nil
}

// RollCommand rolls a die when someone types the trigger word in chat. It is
// a listener rather than a prefixed command: the bare word alone fires it.
type RollCommand struct {
	RNG     *rng.Client
	DiceDir string
}

func (c *RollCommand) Name() string        { return "rolar" }
func (c *RollCommand) Aliases() []string   { return []string{} }
func (c *RollCommand) Description() string { return "Rola um dado de seis faces" }
func (c *RollCommand) Category() string    { return "🎲 RPG" }

// Run handles the prefixed form; the roll itself is shared with Listen.
func (c *RollCommand) Run(ctx interface{}) error {
	mctx, ok := ctx.(*command.MessageContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	return c.roll(mctx)
}

// Listen fires on bare messages whose content is exactly the trigger word.
func (c *RollCommand) Listen(mctx *command.MessageContext) error {
	if strings.ToLower(strings.TrimSpace(mctx.Event.Content)) != triggerWord {
		return nil
	}
	return c.roll(mctx)
}

func (c *RollCommand) roll(mctx *command.MessageContext) error {
	value, err := c.RNG.Roll(context.Background())
	if err != nil {
		return err
	}

	name := AssetName(value)
	file, err := os.Open(filepath.Join(c.DiceDir, name))
	if err != nil {
		return err
	}
	defer file.Close()

	msg := embed.NewEmbed().
		SetColor(diceEmbedColor).
		SetImage("attachment://" + name)

	if err := bot.ReplyEmbedWithFile(mctx.Session, mctx.Event.Message, msg.MessageEmbed, &discordgo.File{
		Name:   name,
		Reader: file,
	}); err != nil {
		return err
	}

	if mctx.Storage != nil && mctx.Event.GuildID != "" {
		if err := mctx.Storage.RecordDiceRoll(mctx.Event.GuildID, value); err != nil {
			log.Printf("[WARN] Failed to record dice roll: %v", err)
		}
	}
	return nil
}

// Register wires the roller into the global command registry.
func Register(c *RollCommand) {
	command.RegisterCommand(c, middleware.WithCommandLogger())
}
