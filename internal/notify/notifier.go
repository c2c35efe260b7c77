package notify

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Sender posts a text message to a channel. *discord.Client satisfies it.
type Sender interface {
	CreateMessage(ctx context.Context, channelID, content string) error
}

// RestartNotifier sends a one-shot restart notification to the changelog
// channel. Each run is independent; two runs send two messages.
type RestartNotifier struct {
	sender    Sender
	channelID string
	logger    *slog.Logger
}

func NewRestartNotifier(sender Sender, channelID string, logger *slog.Logger) *RestartNotifier {
	return &RestartNotifier{
		sender:    sender,
		channelID: channelID,
		logger:    logger,
	}
}

// Run sends a single restart notification. Best effort: a failed send is
// logged and swallowed so a supervisor hook never sees it as a failure.
func (n *RestartNotifier) Run(ctx context.Context) {
	host := Hostname()
	message := RestartMessage(host, time.Now())

	if err := n.sender.CreateMessage(ctx, n.channelID, message); err != nil {
		n.logger.Warn("Failed to send restart notification",
			"error", err,
			"channel_id", n.channelID)
		return
	}

	n.logger.Info("Restart notification sent",
		"channel_id", n.channelID,
		"host", host)
}

// Hostname returns the local hostname, with a stable placeholder when the
// kernel refuses to tell us.
func Hostname() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "unknown-host"
	}
	return host
}
