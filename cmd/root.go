package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/gdnotify/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile   string
	verbose   bool
	logFormat string

	// cfg is loaded once before any command runs and only read afterwards.
	cfg config.Config
)

// rootCmd starts the Lambda runtime when called without a subcommand, which
// is how the bootstrap executable is launched.
var rootCmd = &cobra.Command{
	Use:   "gdnotify",
	Short: "Post Amazon GuardDuty findings to a Slack channel",
	Long: `gdnotify receives a GuardDuty finding from EventBridge, drops it when it is
below the configured severity, and posts it to a Slack incoming webhook.

Without a subcommand it runs as an AWS Lambda function.

Configuration (environment):
  webHookUrl         Slack incoming webhook URL
  slackChannel       channel override
  minSeverityLevel   LOW | MEDIUM | HIGH (Medium findings need LOW or MEDIUM)

Local use:
  gdnotify invoke  --event finding.json   Run one event through the handler
  gdnotify preview --event finding.json   Render the message without posting
  gdnotify config show                    Print the effective configuration`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runLambda,
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./gdnotify.json or ./gdnotify.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: json|text (overrides config)")

	rootCmd.Version = Version
	rootCmd.AddCommand(
		invokeCmd,
		previewCmd,
		configCmd,
	)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded
	setupLogging(cfg.Log)
	return nil
}

func setupLogging(lc config.LogConfig) {
	opts := &slog.HandlerOptions{Level: parseLevel(lc.Level)}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	format := lc.Format
	if logFormat != "" {
		format = logFormat
	}

	var h slog.Handler
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
	slog.Debug("Verbose logging enabled")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
