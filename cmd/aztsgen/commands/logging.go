package commands

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures zerolog on stderr, keeping stdout free for the
// generated TypeScript or fetched JSON.
func InitLogging(verbose bool) {
	initLogging(os.Stderr, verbose)
}

func initLogging(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr})
}
