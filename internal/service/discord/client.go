package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"TVRelay/internal/domain/models"
	drepo "TVRelay/internal/domain/repository"
)

// maxResponseBytes caps how much of a downstream reply is kept for the 502
// diagnostic body.
const maxResponseBytes = 64 << 10

// Client implements a Forwarder backed by a Discord webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// New creates a new Discord Forwarder. The timeout bounds the whole round
// trip; a request that exceeds it fails instead of hanging.
func New(webhookURL string, timeout time.Duration) drepo.Forwarder {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type webhookPayload struct {
	Content string `json:"content"`
}

// Forward posts {"content": ...} to the webhook. Exactly one attempt.
func (c *Client) Forward(ctx context.Context, content string) (*models.DeliveryResult, error) {
	b, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return nil, fmt.Errorf("discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discord post: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("discord response read: %w", err)
	}

	return &models.DeliveryResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
