package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultUsername = "dealflow-srv"

	colorInfo    = 0x3498db
	colorWarning = 0xf1c40f
	colorError   = 0xe74c3c
)

var errWebhookRequired = errors.New("discord webhook id and token are required")

// DefaultConfig returns the default Discord service config.
func DefaultConfig() Config {
	return Config{
		Timeout:         defaultTimeout,
		DefaultUsername: defaultUsername,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage posts a plain content message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendError posts an error embed including the underlying error string.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := d.newEmbed(MessageTypeError, title, description)
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.send(ctx, WebhookPayload{Username: d.config.DefaultUsername, Embeds: []Embed{embed}})
}

// SendWarning posts a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	embed := d.newEmbed(MessageTypeWarning, title, description)
	return d.send(ctx, WebhookPayload{Username: d.config.DefaultUsername, Embeds: []Embed{embed}})
}

// SendInfo posts an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	embed := d.newEmbed(MessageTypeInfo, title, description)
	return d.send(ctx, WebhookPayload{Username: d.config.DefaultUsername, Embeds: []Embed{embed}})
}

// Close releases the underlying HTTP client's idle connections.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) newEmbed(msgType MessageType, title, description string) Embed {
	color := colorInfo
	switch msgType {
	case MessageTypeWarning:
		color = colorWarning
	case MessageTypeError:
		color = colorError
	}
	return Embed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
