package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X fleetgateway/cmd/fleetgateway/cmd.version=...".
var version = "dev"

// NewRootCmd builds the fleetgateway command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "fleetgateway",
		Short: "Fleet API gateway",
		Long: `fleetgateway serves the legacy fleet-management REST API in front of the
finance, fleet, auth and notification microservices, reshaping their
responses into the contract the frontend expects.`,
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")

	rootCmd.AddCommand(
		newServeCmd(&cfgFile),
		newAdaptCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
