package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinefolio/cinefolio/internal/auth"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(hashPasswordCmd)
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print an argon2id hash for admin.passwordhash",
	Args:  cobra.ExactArgs(1),
	// no configuration needed
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err //nolint:wrapcheck // ok
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

		return err //nolint:wrapcheck // ok
	},
}
