package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bfv/aztsgen/internal/azsearch"
	"github.com/bfv/aztsgen/internal/config"
	"github.com/bfv/aztsgen/internal/tsgen"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ConfigKey is the viper key the root --config flag is bound to.
const ConfigKey = "config"

// stdout is swapped out by tests.
var stdout io.Writer = os.Stdout

// configPath returns the config file selected on the root command.
func configPath() string {
	if p := viper.GetString(ConfigKey); p != "" {
		return p
	}
	return config.DefaultPath
}

// readDefinition reads and parses an index definition JSON file.
func readDefinition(path string) (*tsgen.Definition, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	def, err := tsgen.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("index", def.Name).Int("fields", len(def.Fields)).Msg("definition parsed")
	return def, nil
}

// fetchDefinition loads the config and downloads the configured index.
func fetchDefinition(ctx context.Context) ([]byte, *config.Config, error) {
	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config %s: %w", path, err)
	}
	log.Debug().
		Str("service", cfg.ServiceName).
		Str("index", cfg.IndexName).
		Str("apiVersion", cfg.APIVersion).
		Msg("config loaded")

	ctx, cancel := context.WithTimeout(ctx, azsearch.DefaultTimeout)
	defer cancel()

	data, err := newSearchClient(cfg).FetchIndex(ctx, cfg.IndexName)
	if err != nil {
		return nil, nil, err
	}
	return data, cfg, nil
}

// newSearchClient is swapped out by tests to point at a local server.
var newSearchClient = azsearch.NewClient

// writeOutput hands write a writer for outputPath, or stdout when it is
// empty. A file that write fails on is removed so no partial output is left.
func writeOutput(outputPath string, write func(io.Writer) error) error {
	if outputPath == "" {
		return write(stdout)
	}

	f, err := os.Create(outputPath) //nolint:gosec // path is provided by caller
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", outputPath, err)
	}
	log.Debug().Str("path", outputPath).Msg("writing to file")

	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(outputPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("closing output file %q: %w", outputPath, err)
	}
	return nil
}
