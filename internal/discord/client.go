package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the Discord REST API root.
const DefaultBaseURL = "https://discord.com/api/v10"

type Client struct {
	token   string
	baseURL string
	logger  *slog.Logger
	client  *http.Client
}

func NewClient(token string, logger *slog.Logger) *Client {
	return &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		logger:  logger,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetBaseURL points the client at a different API root. Used by tests to
// target a local fake server.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// CreateMessage posts a text message to the given channel
func (c *Client) CreateMessage(ctx context.Context, channelID, content string) error {
	correlationID := uuid.New().String()

	jsonData, err := json.Marshal(CreateMessageRequest{Content: content})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/channels/%s/messages", c.baseURL, channelID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bot "+c.token)

	c.logger.Debug("Sending message to Discord",
		"correlation_id", correlationID,
		"channel_id", channelID,
		"content_length", len(content))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
			return fmt.Errorf("Discord API error: %d - %s", resp.StatusCode, string(body))
		}
		return fmt.Errorf("Discord API error: %d - %s (code %d)", resp.StatusCode, apiErr.Message, apiErr.Code)
	}

	c.logger.Debug("Message posted to Discord",
		"correlation_id", correlationID,
		"channel_id", channelID,
		"status", resp.StatusCode)

	return nil
}
