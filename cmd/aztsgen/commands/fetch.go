package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewFetchCmd builds and returns the 'fetch' cobra command.
func NewFetchCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the configured index definition as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	return cmd
}

// runFetch is the entry point for the fetch command.
func runFetch(ctx context.Context, outputPath string) error {
	data, cfg, err := fetchDefinition(ctx)
	if err != nil {
		return fmt.Errorf("fetching index definition: %w", err)
	}

	err = writeOutput(outputPath, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Debug().Str("index", cfg.IndexName).Int("bytes", len(data)).Msg("fetch complete")
	return nil
}
