package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/acceptance-map/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "acceptance-map",
	Short: "EU acceptance survey dashboard",
	Long:  "Loads the combined Eurobarometer QB15 acceptance table, resolves country names and ISO codes, and serves a choropleth dashboard with a sortable data table.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if dataPath != "" {
			cfg.Data.Path = dataPath
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

// dataPath overrides data.path for a single invocation.
var dataPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the acceptance table (default from config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
