package messaging

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrGatewayRejected is returned when the SMS gateway answers with a non-2xx status.
var ErrGatewayRejected = errors.New("sms gateway rejected message")

// Sender delivers a single SMS.
type Sender interface {
	Send(ctx context.Context, phone, text string) error
}

type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
	From    string `json:"from,omitempty"`
}

// HTTPSender posts messages to an HTTP SMS gateway.
type HTTPSender struct {
	url        string
	apiKey     string
	secret     string
	senderID   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// HTTPSenderConfig configures an HTTPSender.
type HTTPSenderConfig struct {
	URL           string
	APIKey        string
	Secret        string
	SenderID      string
	Timeout       time.Duration
	RatePerSecond float64
}

// NewHTTPSender creates a gateway sender. A non-positive rate disables throttling.
func NewHTTPSender(cfg HTTPSenderConfig) *HTTPSender {
	limit := rate.Inf
	burst := 1
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
		burst = max(1, int(cfg.RatePerSecond))
	}
	return &HTTPSender{
		url:      cfg.URL,
		apiKey:   cfg.APIKey,
		secret:   cfg.Secret,
		senderID: cfg.SenderID,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Send waits for a rate-limit token and posts one message.
func (s *HTTPSender) Send(ctx context.Context, phone, text string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	payload, err := json.Marshal(smsRequest{To: phone, Message: text, From: s.senderID})
	if err != nil {
		return fmt.Errorf("failed to marshal sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-Api-Key", s.apiKey)
	}
	if s.secret != "" {
		req.Header.Set("X-Signature", generateHMACSHA256(payload, s.secret))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrGatewayRejected, resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}

// LogSender writes messages to the log instead of a gateway. Used when no gateway is configured.
type LogSender struct {
	logger *logrus.Logger
}

func NewLogSender(logger *logrus.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, phone, text string) error {
	s.logger.WithFields(logrus.Fields{
		"to":     phone,
		"length": len([]rune(text)),
	}).Info(text)
	return nil
}

// generateHMACSHA256 signs the request body with the shared gateway secret.
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
