package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/XsNIPER50/qrls-bot/internal/config"
	"github.com/XsNIPER50/qrls-bot/internal/discord"
	"github.com/XsNIPER50/qrls-bot/internal/notify"
)

// sendmessage posts a message as the bot to a channel:
//
//	sendmessage <channel-id> [message...]
//
// When no message argument is given, the body is read from stdin. When
// CHANGELOG_CHANNEL_ID is configured, an audit entry mirroring the send is
// posted there as well. Unlike restart-notify this is an operator tool, so
// failures are reported and exit non-zero.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, discord.DefaultBaseURL))
}

func run(args []string, stdin io.Reader, baseURL string) int {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		return 1
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
		opts := &slog.HandlerOptions{Level: level}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	}

	if cfg.DiscordToken == "" {
		logger.Error("DISCORD_TOKEN is not set")
		return 1
	}

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: sendmessage <channel-id> [message...]")
		return 1
	}
	channelID := args[0]

	var message string
	if len(args) > 1 {
		message = strings.Join(args[1:], " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			logger.Error("Failed to read message from stdin", "error", err)
			return 1
		}
		message = strings.TrimSpace(string(data))
	}
	if message == "" {
		logger.Error("Refusing to send an empty message")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := discord.NewClient(cfg.DiscordToken, logger)
	client.SetBaseURL(baseURL)
	if err := client.CreateMessage(ctx, channelID, notify.Truncate(message)); err != nil {
		logger.Error("Failed to send message", "error", err, "channel_id", channelID)
		return 1
	}
	logger.Info("Message sent", "channel_id", channelID, "content_length", len(message))

	// Mirror to the changelog channel, matching the bot's /sendmessage audit.
	if cfg.ChangelogChannelID != "" && cfg.ChangelogChannelID != channelID {
		audit := notify.SendMessageAudit(notify.Hostname(), channelID, message)
		if err := client.CreateMessage(ctx, cfg.ChangelogChannelID, audit); err != nil {
			logger.Warn("Failed to write changelog audit entry",
				"error", err,
				"channel_id", cfg.ChangelogChannelID)
		}
	}

	return 0
}
