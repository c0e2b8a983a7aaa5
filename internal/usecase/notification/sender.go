package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Message struct {
	UserID string    `json:"userId"`
	Type   string    `json:"type"`
	Body   string    `json:"message"`
	SentAt time.Time `json:"sentAt"`
}

// Sender delivers one message over one channel.
type Sender interface {
	Name() string
	Send(ctx context.Context, m Message) error
}

// LogSender writes notifications to the structured log.
type LogSender struct{ log *zap.Logger }

func NewLogSender(log *zap.Logger) *LogSender { return &LogSender{log: log} }

func (s *LogSender) Name() string { return "log" }

func (s *LogSender) Send(_ context.Context, m Message) error {
	s.log.Info("notification sent",
		zap.String("to", m.UserID),
		zap.String("type", m.Type),
		zap.String("message", m.Body),
	)
	return nil
}

// WebhookSender POSTs the message as JSON to a fixed URL.
type WebhookSender struct {
	url    string
	client *http.Client
}

func NewWebhookSender(url string) *WebhookSender {
	return &WebhookSender{url: url, client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *WebhookSender) Name() string { return "webhook" }

func (s *WebhookSender) Send(ctx context.Context, m Message) error {
	body, err := json.Marshal(m)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook: HTTP %d", resp.StatusCode)
	}
	return nil
}
