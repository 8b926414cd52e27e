package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config holds everything the hosts read from the environment.
type Config struct {
	DiscordToken      string  `env:"DISCORD_TOKEN"`
	Prefix            string  `env:"COMMAND_PREFIX" envDefault:"!"`
	StoragePath       string  `env:"STORAGE_PATH" envDefault:"datastore.json"`
	LogPath           string  `env:"LOG_PATH" envDefault:"piston.log"`
	CommandsPerMinute float64 `env:"COMMANDS_PER_MINUTE" envDefault:"30"`
	CommandBurst      int     `env:"COMMAND_BURST" envDefault:"5"`
}

// New parses the environment into a Config.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
