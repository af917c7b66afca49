package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/bfv/aztsgen/internal/tsgen"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// fieldRecord holds the mapped type of a single index field.
type fieldRecord struct {
	name       string
	targetType string
}

// NewDiffCmd builds and returns the 'diff' cobra command.
func NewDiffCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "diff <source.json> <target.json>",
		Short: "Show TypeScript type differences between two index definitions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	return cmd
}

// runDiff is the entry point for the diff command.
func runDiff(sourcePath, targetPath, outputPath string) error {
	log.Debug().Str("source", sourcePath).Str("target", targetPath).Str("output", outputPath).Msg("diff started")

	sourceDef, err := readDefinition(sourcePath)
	if err != nil {
		return fmt.Errorf("reading source definition: %w", err)
	}
	targetDef, err := readDefinition(targetPath)
	if err != nil {
		return fmt.Errorf("reading target definition: %w", err)
	}

	sourceRecords, err := mapFields(sourceDef)
	if err != nil {
		return fmt.Errorf("source %s: %w", sourcePath, err)
	}
	targetRecords, err := mapFields(targetDef)
	if err != nil {
		return fmt.Errorf("target %s: %w", targetPath, err)
	}

	rows := diffFields(sourceRecords, targetRecords)

	return writeOutput(outputPath, func(w io.Writer) error {
		if len(rows) == 0 {
			_, err := fmt.Fprintln(w, "No type differences found.")
			return err
		}
		if err := printDiffTable(w, rows); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		log.Debug().Int("differences", len(rows)).Msg("diff complete")
		return nil
	})
}

// diffRow holds one line of diff output.
type diffRow struct {
	name       string
	sourceType string
	targetType string
}

// diffFields compares fields by name. Rows follow source order, then
// target-only fields in target order. Duplicate names compare by their
// first occurrence.
func diffFields(source, target []fieldRecord) []diffRow {
	const missing = "(not present)"

	targetMap := make(map[string]fieldRecord, len(target))
	for _, rec := range target {
		if _, ok := targetMap[rec.name]; !ok {
			targetMap[rec.name] = rec
		}
	}

	var rows []diffRow
	seen := map[string]bool{}
	for _, rec := range source {
		if seen[rec.name] {
			continue
		}
		seen[rec.name] = true

		tgt, ok := targetMap[rec.name]
		if !ok {
			rows = append(rows, diffRow{rec.name, rec.targetType, missing})
			continue
		}
		if rec.targetType != tgt.targetType {
			rows = append(rows, diffRow{rec.name, rec.targetType, tgt.targetType})
		}
	}

	for _, rec := range target {
		if !seen[rec.name] {
			seen[rec.name] = true
			rows = append(rows, diffRow{rec.name, missing, rec.targetType})
		}
	}

	return rows
}

// mapFields resolves the TypeScript type of every field in def.
func mapFields(def *tsgen.Definition) ([]fieldRecord, error) {
	records := make([]fieldRecord, 0, len(def.Fields))
	for _, f := range def.Fields {
		ts, err := tsgen.MapType(f.SourceType)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		records = append(records, fieldRecord{name: f.Name, targetType: ts})
	}
	return records, nil
}

// printDiffTable renders the diff as a fixed-column table and returns the
// first write error.
func printDiffTable(w io.Writer, rows []diffRow) error {
	const (
		hName   = "FIELD"
		hSource = "SOURCE TYPE"
		hTarget = "TARGET TYPE"
	)

	wName := len(hName)
	wSource := len(hSource)

	for _, r := range rows {
		if len(r.name) > wName {
			wName = len(r.name)
		}
		if len(r.sourceType) > wSource {
			wSource = len(r.sourceType)
		}
	}

	wName += 2
	wSource += 2

	var err error
	fmtRow := func(n, s, t string) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%-*s%-*s%s\n", wName, n, wSource, s, t)
		}
	}

	fmtRow(hName, hSource, hTarget)
	fmtRow(strings.Repeat("-", wName-2), strings.Repeat("-", wSource-2), strings.Repeat("-", len(hTarget)))

	for _, r := range rows {
		fmtRow(r.name, r.sourceType, r.targetType)
	}
	return err
}
