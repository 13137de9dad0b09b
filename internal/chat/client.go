package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Response is the assistant backend's answer for one turn. Either Reply or
// Listings (or both) may be empty; the transcript decides what to do then.
type Response struct {
	Type     string           `json:"type"`
	Reply    string           `json:"reply"`
	Listings []map[string]any `json:"listings"`
}

// Backend is the opaque chat/ranking service.
type Backend interface {
	Send(ctx context.Context, query string) (*Response, error)
}

// Client talks to the assistant backend over HTTP. No retries: a failed turn
// is terminal for that turn.
type Client struct {
	url    string
	client *http.Client
	logger *logrus.Logger
}

// NewClient creates a chat backend client.
func NewClient(url string, timeout time.Duration, logger *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type chatRequest struct {
	Query string `json:"query"`
}

// Send posts the user's query and decodes the backend's reply.
func (c *Client) Send(ctx context.Context, query string) (*Response, error) {
	body, err := json.Marshal(chatRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chat backend returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse chat response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"type":     parsed.Type,
		"listings": len(parsed.Listings),
	}).Debug("Chat backend responded")
	return &parsed, nil
}
