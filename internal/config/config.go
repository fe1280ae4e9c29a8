package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config holds every runtime setting. DISCORD_TOKEN is the only required
// value; everything else has a working default.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	Prefix       string `env:"COMMAND_PREFIX" envDefault:"!"`

	LavalinkName     string `env:"LAVALINK_NODE_NAME" envDefault:"default-node"`
	LavalinkAddress  string `env:"LAVALINK_ADDRESS" envDefault:"localhost:2333"`
	LavalinkPassword string `env:"LAVALINK_PASSWORD" envDefault:"youshallnotpass"`
	LavalinkSecure   bool   `env:"LAVALINK_SECURE" envDefault:"false"`

	DiceDir      string `env:"DICE_DIR" envDefault:"dices"`
	RandomOrgURL string `env:"RANDOM_ORG_URL" envDefault:"https://www.random.org/integers/"`

	StoragePath string `env:"STORAGE_PATH" envDefault:"datastore.json"`
}

// New parses the environment into a Config. Boot fails hard when the bot
// token is missing.
func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("[ERR] Failed to parse environment: ", err)
	}
	return cfg
}
