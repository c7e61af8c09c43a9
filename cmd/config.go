package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/gdnotify/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View gdnotify configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (webhook URL redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(config.Redacted(cfg))
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := config.ConfigPath(cfgFile)
		if p == "" {
			fmt.Println("(none; environment only)")
			return nil
		}
		fmt.Println(p)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd)
}
