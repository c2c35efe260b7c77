package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/XsNIPER50/qrls-bot/internal/config"
	"github.com/XsNIPER50/qrls-bot/internal/discord"
	"github.com/XsNIPER50/qrls-bot/internal/notify"
)

// restart-notify runs as a post-restart hook under the bot's process
// supervisor. It must never fail the parent service: every path out of here,
// including a panic, exits 0.
func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
		}
	}()

	run(discord.DefaultBaseURL)
}

func run(baseURL string) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Warn("Failed to load configuration", "error", err)
		return
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
		opts := &slog.HandlerOptions{Level: level}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	}

	if !cfg.Complete() {
		logger.Debug("Discord credentials not configured, skipping restart notification")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := discord.NewClient(cfg.DiscordToken, logger)
	client.SetBaseURL(baseURL)
	notifier := notify.NewRestartNotifier(client, cfg.ChangelogChannelID, logger)
	notifier.Run(ctx)
}
