package discord

import (
	"net/http"
	"time"

	"dealflow-srv/pkg/log"
)

// Config contains configuration for the Discord service.
type Config struct {
	Timeout         time.Duration
	DefaultUsername string
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

// MessageType defines different types of messages.
type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

// WebhookPayload represents the payload sent to the Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}
