// Package app implements the main application commands.
package app

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cinefolio/cinefolio/internal/config"
)

var (
	configPath string // directory holding main.toml
	envFile    string // dotenv file loaded before the config is read

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cinefolio",
	Short: "cinefolio serves a cinematographer's portfolio site",
	Long: `cinefolio serves a cinematographer's portfolio site with a public
showcase, a contact form and an admin area for messages, works and settings.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	},
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "directory of main.toml")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with environment overrides")
}

// loadConfig loads the dotenv file, if any, and reads the configuration.
func loadConfig() error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err //nolint:wrapcheck // ok
		}
	}

	var err error
	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err //nolint:wrapcheck // ok
	}

	log.Debug().Str("config", configPath).Msg("configuration loaded")

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute() //nolint:wrapcheck // ok
}
