package notify

import (
	"context"
	"log/slog"

	"github.com/CosmoTheDev/gdnotify/internal/config"
	"github.com/CosmoTheDev/gdnotify/models"
)

// Notifier runs one finding through classification, formatting and delivery.
type Notifier struct {
	minSev    models.SeverityLevel
	formatter *Formatter
	poster    Poster
}

// NewNotifier creates a Notifier that posts to cfg.WebhookURL.
func NewNotifier(cfg config.Config) *Notifier {
	return NewNotifierWithPoster(cfg, NewSlackClient(cfg.WebhookURL))
}

// NewNotifierWithPoster creates a Notifier that delivers through p.
func NewNotifierWithPoster(cfg config.Config, p Poster) *Notifier {
	return &Notifier{
		minSev:    cfg.MinSeverityLevel(),
		formatter: NewFormatter(cfg),
		poster:    p,
	}
}

// Formatter exposes the message formatter so callers can preview without
// delivering.
func (n *Notifier) Formatter() *Formatter { return n.formatter }

// Classify applies the configured minimum severity to evt.
func (n *Notifier) Classify(evt *models.FindingEvent) (models.Tier, bool) {
	return models.Classify(evt.Score(), n.minSev)
}

// Process classifies evt and, unless suppressed, formats and posts it.
// Errors are reported through the Outcome, never returned.
func (n *Notifier) Process(ctx context.Context, evt *models.FindingEvent) Outcome {
	tier, ok := n.Classify(evt)
	if !ok {
		slog.Debug("notify: finding suppressed", "min_severity", n.minSev.String())
		return Outcome{Kind: OutcomeSuppressed}
	}

	msg, err := n.formatter.Format(evt, tier)
	if err != nil {
		return Failed(err, tier)
	}

	result, err := n.poster.Post(ctx, msg)
	if err != nil {
		return Failed(err, tier)
	}
	if result.StatusCode >= 300 {
		slog.Warn("notify: webhook rejected message",
			"channel", n.poster.Name(),
			"status", result.StatusCode,
			"body", result.Body,
		)
	}
	return Outcome{Kind: OutcomeDelivered, Tier: tier, Result: &result}
}
