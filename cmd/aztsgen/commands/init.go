package commands

import (
	"fmt"

	"github.com/bfv/aztsgen/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewInitCmd builds and returns the 'init' cobra command.
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file to edit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(configPath(), force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

// runInit is the entry point for the init command.
func runInit(path string, force bool) error {
	if err := config.WriteDefault(path, force); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	log.Info().Str("path", path).Msg("config written, edit it and run aztsgen generate")
	return nil
}
