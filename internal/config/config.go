package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the notifier configuration, resolved from the process
// environment after an optional .env file has been loaded.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DiscordToken and ChangelogChannelID are deliberately not tagged
	// required: running without them is a valid no-op, not an error.
	DiscordToken       string `envconfig:"DISCORD_TOKEN"`
	ChangelogChannelID string `envconfig:"CHANGELOG_CHANNEL_ID"`
}

// Load reads KEY=VALUE pairs from the given env files (default: .env in the
// working directory) and resolves the configuration from the process
// environment. A missing env file is not an error; the supervisor may inject
// the variables directly. Values already present in the environment win over
// file values.
func Load(logger *slog.Logger, filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		logger.Debug("No .env file found or error loading it", "error", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

// Complete reports whether both credentials needed to post a notification
// are set.
func (c Config) Complete() bool {
	return c.DiscordToken != "" && c.ChangelogChannelID != ""
}
