package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/gdnotify/internal/handler"
	"github.com/CosmoTheDev/gdnotify/internal/notify"
)

var invokeEventPath string

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run one event through the handler and post it",
	Long: `Reads a GuardDuty EventBridge event (JSON or YAML) and runs it through the
same handler the Lambda runtime uses, including delivery to webHookUrl.

Examples:
  gdnotify invoke --event testdata/backdoor.json
  cat finding.json | gdnotify invoke --event -`,
	RunE: runInvoke,
}

func init() {
	invokeCmd.Flags().StringVar(&invokeEventPath, "event", "", "Event file, or - for stdin (required)")
	_ = invokeCmd.MarkFlagRequired("event")
}

func runInvoke(cmd *cobra.Command, args []string) error {
	raw, err := readEvent(invokeEventPath)
	if err != nil {
		return err
	}

	h := handler.New(notify.NewNotifier(cfg))
	resp, out := h.Invoke(context.Background(), raw)

	fmt.Printf("Outcome ................. %s\n", out.Kind)
	if out.Tier.Label != "" {
		fmt.Printf("Tier .................... %s\n", out.Tier.Label)
	}
	if out.Result != nil {
		fmt.Printf("Webhook ................. %d %s\n", out.Result.StatusCode, out.Result.StatusMessage)
	}
	if out.Err != nil {
		fmt.Printf("Error ................... %s\n", out.Err)
	}
	fmt.Println()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
