package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/bfv/aztsgen/internal/tsgen"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewGenerateCmd builds and returns the 'generate' cobra command.
func NewGenerateCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "generate [index.json]",
		Short: "Generate a TypeScript interface from an index definition",
		Long: "Generate a TypeScript interface from an index definition.\n\n" +
			"The definition is read from the given JSON file. Without a file it is\n" +
			"fetched from the search service named in the config file.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source string
			if len(args) == 1 {
				source = args[0]
			}
			return runGenerate(cmd.Context(), source, outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	return cmd
}

// runGenerate is the entry point for the generate command.
func runGenerate(ctx context.Context, sourcePath, outputPath string) error {
	log.Debug().Str("source", sourcePath).Str("output", outputPath).Msg("generate started")

	var def *tsgen.Definition
	if sourcePath != "" {
		var err error
		if def, err = readDefinition(sourcePath); err != nil {
			return fmt.Errorf("reading index definition: %w", err)
		}
	} else {
		data, cfg, err := fetchDefinition(ctx)
		if err != nil {
			return fmt.Errorf("fetching index definition: %w", err)
		}
		if def, err = tsgen.ParseBytes(data); err != nil {
			return fmt.Errorf("index %q: %w", cfg.IndexName, err)
		}
	}

	var written int64
	err := writeOutput(outputPath, func(w io.Writer) error {
		n, err := tsgen.Write(w, def)
		written = n
		return err
	})
	if err != nil {
		return err
	}

	event := log.Debug()
	if outputPath != "" {
		event = log.Info().Str("path", outputPath)
	}
	event.Str("interface", tsgen.Identifier(def.Name)).
		Int("fields", len(def.Fields)).
		Int64("bytes", written).
		Msg("generate complete")
	return nil
}
