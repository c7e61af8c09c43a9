package notify

import (
	"context"
	"errors"

	"github.com/CosmoTheDev/gdnotify/models"
)

// Poster delivers a formatted message. SlackClient is the production
// implementation.
type Poster interface {
	Name() string
	Post(ctx context.Context, msg SlackMessage) (DeliveryResult, error)
}

// OutcomeKind names how processing a single finding ended.
type OutcomeKind string

const (
	OutcomeDelivered      OutcomeKind = "delivered"
	OutcomeSuppressed     OutcomeKind = "suppressed"
	OutcomeMissingField   OutcomeKind = "missing_field"
	OutcomeDeliveryFailed OutcomeKind = "delivery_failed"
	OutcomeFailed         OutcomeKind = "failed"
)

// Outcome is the structured result of Notifier.Process.
type Outcome struct {
	Kind   OutcomeKind
	Tier   models.Tier
	Result *DeliveryResult
	Err    error
}

// Failed builds an Outcome for err, picking the kind from its type.
func Failed(err error, tier models.Tier) Outcome {
	return Outcome{Kind: KindOf(err), Tier: tier, Err: err}
}

// KindOf classifies err into the failure taxonomy.
func KindOf(err error) OutcomeKind {
	var missing *MissingFieldError
	var delivery *DeliveryError
	switch {
	case err == nil:
		return OutcomeDelivered
	case errors.As(err, &missing):
		return OutcomeMissingField
	case errors.As(err, &delivery):
		return OutcomeDeliveryFailed
	default:
		return OutcomeFailed
	}
}
