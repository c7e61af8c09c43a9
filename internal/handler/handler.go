// Package handler is the Lambda entry point. It decodes one GuardDuty event,
// hands it to the notifier and always acknowledges the invocation; failures
// are visible only in the logs.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/CosmoTheDev/gdnotify/internal/notify"
	"github.com/CosmoTheDev/gdnotify/models"
)

const ackBody = "Function executed successfully"

// Response is the fixed-shape acknowledgement returned to the trigger.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Ack is the response every invocation returns.
func Ack() Response {
	b, _ := json.Marshal(ackBody)
	return Response{StatusCode: 200, Body: string(b)}
}

// Processor runs a decoded finding to completion.
type Processor interface {
	Process(ctx context.Context, evt *models.FindingEvent) notify.Outcome
}

type Handler struct {
	proc Processor
}

func New(proc Processor) *Handler {
	return &Handler{proc: proc}
}

// Handle is registered with lambda.Start. It never returns an error.
func (h *Handler) Handle(ctx context.Context, raw json.RawMessage) (Response, error) {
	resp, _ := h.Invoke(ctx, raw)
	return resp, nil
}

// Invoke processes raw and returns the acknowledgement together with the
// outcome, so local runs and tests can see what happened.
func (h *Handler) Invoke(ctx context.Context, raw json.RawMessage) (resp Response, out notify.Outcome) {
	log := loggerFor(ctx)
	resp = Ack()

	defer func() {
		if r := recover(); r != nil {
			out = notify.Outcome{Kind: notify.OutcomeFailed, Err: fmt.Errorf("panic: %v", r)}
			report(log, raw, out)
		}
	}()

	log.Debug("Received event", "event", string(raw))

	var evt models.FindingEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		out = notify.Outcome{Kind: notify.OutcomeFailed, Err: fmt.Errorf("decoding event: %w", err)}
		report(log, raw, out)
		return resp, out
	}

	out = h.proc.Process(ctx, &evt)
	report(log, raw, out)
	return resp, out
}

func report(log *slog.Logger, raw json.RawMessage, out notify.Outcome) {
	switch out.Kind {
	case notify.OutcomeDelivered:
		if out.Result == nil {
			log.Info("Message posted", "tier", out.Tier.Label)
			return
		}
		log.Info("Message posted",
			"tier", out.Tier.Label,
			"status", out.Result.StatusCode,
			"status_message", out.Result.StatusMessage,
			"body", out.Result.Body,
		)
	case notify.OutcomeSuppressed:
		log.Info("No message to post", "kind", out.Kind)
	case notify.OutcomeMissingField:
		var missing *notify.MissingFieldError
		field := ""
		if errors.As(out.Err, &missing) {
			field = missing.Field
		}
		log.Error("Required field missing from event",
			"kind", out.Kind,
			"field", field,
			"event", string(raw),
		)
	default:
		log.Error("Error processing event", "kind", out.Kind, "error", out.Err)
	}
}

func loggerFor(ctx context.Context) *slog.Logger {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return slog.Default().With("request_id", lc.AwsRequestID)
	}
	return slog.Default()
}
