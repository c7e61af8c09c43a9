package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SlackClient posts messages to a Slack incoming webhook URL.
type SlackClient struct {
	webhookURL string
	client     *http.Client
}

// NewSlackClient creates a SlackClient for webhookURL. Keep-alives are off so
// every Post dials a fresh connection; there is no client-side timeout, the
// request context bounds the call.
func NewSlackClient(webhookURL string) *SlackClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	return &SlackClient{webhookURL: webhookURL, client: &http.Client{Transport: transport}}
}

func (s *SlackClient) Name() string { return "slack" }

// Post sends msg once. Any HTTP response, including non-2xx, is returned as
// a DeliveryResult; only transport failures produce a *DeliveryError.
func (s *SlackClient) Post(ctx context.Context, msg SlackMessage) (DeliveryResult, error) {
	target, err := s.target()
	if err != nil {
		return DeliveryResult{}, &DeliveryError{Op: "validate", Err: err}
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return DeliveryResult{}, fmt.Errorf("encoding slack message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(b))
	if err != nil {
		return DeliveryResult{}, &DeliveryError{Op: "validate", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(b)))
	req.ContentLength = int64(len(b))

	resp, err := s.client.Do(req) // #nosec G107 -- webhookURL is operator-configured
	if err != nil {
		return DeliveryResult{}, &DeliveryError{Op: "post", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return DeliveryResult{}, &DeliveryError{Op: "read", Err: err}
	}
	return DeliveryResult{
		StatusCode:    resp.StatusCode,
		StatusMessage: reasonPhrase(resp),
		Body:          string(body),
	}, nil
}

func (s *SlackClient) target() (string, error) {
	if strings.TrimSpace(s.webhookURL) == "" {
		return "", ErrNoWebhookURL
	}
	u, err := url.Parse(s.webhookURL)
	if err != nil {
		return "", fmt.Errorf("parsing webhook URL: %w", err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return "", errors.New("webhook URL must be an absolute http(s) URL")
	}
	return u.String(), nil
}

// reasonPhrase strips the status code from resp.Status ("200 OK" -> "OK").
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if reason, ok := strings.CutPrefix(resp.Status, prefix); ok {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
