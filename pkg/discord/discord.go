package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	webhookBaseURL   = "https://discord.com/api/webhooks"
	maxMessageLength = 2000
	maxEmbedLength   = 4096
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

var colors = map[MessageType]int{
	MessageTypeInfo:    0x3498DB,
	MessageTypeSuccess: 0x2ECC71,
	MessageTypeWarning: 0xF1C40F,
	MessageTypeError:   0xE74C3C,
}

// DefaultConfig returns the default Discord client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      time.Second,
		DefaultUsername: "analytics-srv",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  truncate(content, maxMessageLength),
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: truncate(options.Description, maxEmbedLength),
			Color:       colors[options.Type],
			Timestamp:   ts.Format(time.RFC3339),
			Footer:      options.Footer,
			Fields:      options.Fields,
		}},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), 1024)})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: "```" + truncate(message, maxEmbedLength-6) + "```",
	})
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)

	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("discord: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		resp.Body.Close()
		if resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("discord: unexpected status %d", resp.StatusCode)
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			break
		}
	}

	d.l.Warnf(ctx, "pkg.discord.send: giving up: %v", lastErr)
	return lastErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
