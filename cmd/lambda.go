package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/gdnotify/internal/handler"
	"github.com/CosmoTheDev/gdnotify/internal/notify"
)

func runLambda(cmd *cobra.Command, args []string) error {
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") == "" {
		return errors.New("not running inside AWS Lambda; use `gdnotify invoke --event <file>` to run locally")
	}
	if cfg.WebhookURL == "" {
		slog.Warn("webHookUrl is not set; every delivery will fail")
	}

	slog.Info("Starting Lambda handler",
		"version", Version,
		"channel", cfg.Channel,
		"min_severity", cfg.MinSeverityLevel().String(),
	)
	h := handler.New(notify.NewNotifier(cfg))
	lambda.Start(h.Handle)
	return nil
}
