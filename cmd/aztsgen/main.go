package main

import (
	"os"
	"runtime/debug"

	"github.com/bfv/aztsgen/cmd/aztsgen/commands"
	"github.com/bfv/aztsgen/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
// If not set (e.g., via go install), it will be determined from build info.
var version = "dev"

func init() {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
}

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "aztsgen",
		Short:         "Generate TypeScript interfaces from Azure search index definitions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commands.InitLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "Configuration file")
	if err := viper.BindPFlag(commands.ConfigKey, rootCmd.PersistentFlags().Lookup("config")); err != nil {
		log.Fatal().Err(err).Msg("binding config flag")
	}

	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewGenerateCmd())
	rootCmd.AddCommand(commands.NewFetchCmd())
	rootCmd.AddCommand(commands.NewDescribeCmd())
	rootCmd.AddCommand(commands.NewDiffCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("fatal error")
		os.Exit(1)
	}
}
