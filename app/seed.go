package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cinefolio/cinefolio/internal/daemon"
	"github.com/cinefolio/cinefolio/internal/portfolio"
)

func init() { //nolint: gochecknoinits
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Overwrite existing content with the defaults")

	rootCmd.AddCommand(seedCmd)
}

var (
	seedForce bool

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Write the default content to the configured storage",
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

			return portfolio.New(store).Seed(cmd.Context(), seedForce) //nolint:wrapcheck // ok
		},
	}
)
