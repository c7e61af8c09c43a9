package notify

import (
	"errors"
	"fmt"
)

// ErrNoWebhookURL is returned when no webhook destination is configured.
var ErrNoWebhookURL = errors.New("webhook URL not configured")

// MissingFieldError reports a structurally required event field that is
// absent. It indicates a malformed upstream event.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// DeliveryError wraps a transport failure talking to the webhook.
type DeliveryError struct {
	Op  string // "validate", "post" or "read"
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("slack delivery: %s: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
