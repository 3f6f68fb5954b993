package cmd

import (
	"fmt"
	"os"

	"flatacuties/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// apiOverride is the --api flag: an API base that wins over the stored preference.
var apiOverride string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "flatacuties",
	Short: "Character vote client",
	Long: `Flatacuties keeps a local cache of characters in sync with a json-server style
/characters API. Votes and new characters apply immediately and are reconciled
with the server in the background.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// debug level for readable timestamps on the console
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&apiOverride, "api", "", "API base address (remembered for later runs)")
}
