package commands

import (
	"fmt"
	"io"

	"github.com/bfv/aztsgen/internal/tsgen"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewDescribeCmd builds and returns the 'describe' cobra command.
func NewDescribeCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "describe <index.json>",
		Short: "Show how each index field maps to a TypeScript type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(args[0], outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	return cmd
}

// runDescribe is the entry point for the describe command.
func runDescribe(sourcePath, outputPath string) error {
	def, err := readDefinition(sourcePath)
	if err != nil {
		return fmt.Errorf("reading index definition: %w", err)
	}

	report, err := buildReport(def)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshalling yaml: %w", err)
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

	log.Debug().Int("fields", len(report.Index.Fields)).Int("fallbacks", report.Index.Fallbacks).Msg("describe complete")
	return nil
}

// buildReport maps every field of def, keeping the definition's field order.
func buildReport(def *tsgen.Definition) (Report, error) {
	out := Report{
		Index: IndexReport{
			Name:      def.Name,
			Interface: tsgen.Identifier(def.Name),
		},
	}

	for _, f := range def.Fields {
		ts, err := tsgen.MapType(f.SourceType)
		if err != nil {
			return Report{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		fr := FieldReport{
			Name:       f.Name,
			SourceType: f.SourceType,
			TargetType: ts,
			Fallback:   !tsgen.IsKnown(f.SourceType),
		}
		if fr.Fallback {
			out.Index.Fallbacks++
			log.Debug().Str("field", f.Name).Str("type", f.SourceType).Msg("unknown type, using fallback")
		}
		out.Index.Fields = append(out.Index.Fields, fr)
	}

	return out, nil
}
