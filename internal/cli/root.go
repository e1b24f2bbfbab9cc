package cli

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/biztime-dev/biztime/internal/config"
	"github.com/biztime-dev/biztime/internal/logger"
	"github.com/biztime-dev/biztime/internal/version"
)

// NewRootCmd builds the biztime command tree.
// The API client is created in PersistentPreRunE from the BIZTIME_* environment variables.
func NewRootCmd() *cobra.Command {
	var client *Client

	rootCmd := &cobra.Command{
		Use:               "biztime",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "biztime API client",
		Long:              `biztime manages companies and invoices through the biztime API (BIZTIME_API_URL)`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewClientConfig()
			if err != nil {
				log.Printf("failed to load configuration: %v", err.Error())
				return err
			}

			// logs go to stderr so stdout only carries API responses
			appLogger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      logger.ParseLogLevel(cfg.LogLevel),
				TimeFormat: time.Kitchen,
			}))
			client = NewClient(cfg.APIURL, cfg.HTTPTimeout, appLogger)
			return nil
		},
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	getClient := func() *Client { return client }

	rootCmd.AddCommand(newCompaniesCmd(getClient))
	rootCmd.AddCommand(newInvoicesCmd(getClient))

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
