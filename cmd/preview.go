package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/CosmoTheDev/gdnotify/internal/notify"
	"github.com/CosmoTheDev/gdnotify/models"
)

var (
	previewEventPath string
	previewOutput    string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the Slack message for an event without posting it",
	Long: `Classifies and formats a GuardDuty event exactly as the handler would, then
prints the message instead of sending it.

Examples:
  gdnotify preview --event testdata/backdoor.json
  gdnotify preview --event finding.yaml --output json`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewEventPath, "event", "", "Event file, or - for stdin (required)")
	previewCmd.Flags().StringVar(&previewOutput, "output", "text", "Output format: text|json|yaml")
	_ = previewCmd.MarkFlagRequired("event")
}

func runPreview(cmd *cobra.Command, args []string) error {
	raw, err := readEvent(previewEventPath)
	if err != nil {
		return err
	}
	var evt models.FindingEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return fmt.Errorf("decoding event: %w", err)
	}

	n := notify.NewNotifier(cfg)
	tier, ok := n.Classify(&evt)
	if !ok {
		fmt.Printf("Suppressed: severity %s, minimum severity %q\n",
			scoreString(evt.Score()), cfg.MinSeverityLevel())
		return nil
	}
	msg, err := n.Formatter().Format(&evt, tier)
	if err != nil {
		return fmt.Errorf("formatting message: %w", err)
	}
	return writePreview(os.Stdout, msg, previewOutput)
}

func writePreview(w io.Writer, msg notify.SlackMessage, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(msg)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(msg); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := fmt.Fprintln(w, renderCard(msg))
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// renderCard draws the attachment the way Slack lays it out, with the
// accent bar in the tier color.
func renderCard(msg notify.SlackMessage) string {
	if len(msg.Attachments) == 0 {
		return ""
	}
	a := msg.Attachments[0]
	accent := lipgloss.Color(a.Color)

	var b strings.Builder
	b.WriteString(pretextStyle.Render(strings.Trim(a.Pretext, "*")))
	b.WriteString("\n")

	lines := []string{
		titleStyle.Foreground(accent).Render(a.Title),
		dimStyle.Render(a.TitleLink),
		"",
		strings.TrimRight(a.Text, "\n"),
		"",
	}
	for _, f := range a.Fields {
		lines = append(lines, labelStyle.Render(f.Title+":")+" "+f.Value)
	}
	b.WriteString(cardStyle.BorderForeground(accent).Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("as %s in %s", msg.Username, channelOrDefault(msg.Channel))))
	return b.String()
}

func channelOrDefault(ch string) string {
	if ch == "" {
		return "(webhook default channel)"
	}
	return ch
}

func scoreString(s *float64) string {
	if s == nil {
		return "(missing)"
	}
	return fmt.Sprintf("%.1f", *s)
}
