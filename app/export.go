package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cinefolio/cinefolio/internal/daemon"
	"github.com/cinefolio/cinefolio/internal/kv"
)

// ErrNotDumpable is returned when the configured storage can't list its keys.
var ErrNotDumpable = errors.New("storage driver does not support export")

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print every stored key and value as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := daemon.OpenContent(&cfg)
		if err != nil {
			return err //nolint:wrapcheck // ok
		}

		defer func() {
			if cerr := store.Close(); cerr != nil {
				log.Error().Err(cerr).Msg("can't close store")
			}
		}()

		dumper, ok := store.(kv.Dumper)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotDumpable, cfg.Storage.Driver)
		}

		entries, err := dumper.Dump(cmd.Context())
		if err != nil {
			return err //nolint:wrapcheck // ok
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(entries) //nolint:wrapcheck // ok
	},
}
