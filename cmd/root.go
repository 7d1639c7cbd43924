package cmd

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/config"
)

func init() {
	pfset := rootCmd.PersistentFlags()
	pfset.StringP("config", "c", "", "path to the config file")
	pfset.StringP("database", "d", "", "path to the history database file")
	pfset.CountP("verbose", "v", "increase log verbosity")
	pfset.BoolP("quiet", "q", false, "suppress all logs")

	viper.SetEnvPrefix("clippad")
	viper.AutomaticEnv()
}

var rootCmd = &cobra.Command{
	Use:   "clippad",
	Short: "A desktop clipboard history manager",
	Long: `ClipPad watches the OS clipboard, keeps today's snippets on screen and
persists them to a local SQLite file keyed by calendar date, so past days can
be browsed through a month calendar.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		level := log.ErrorLevel - log.Level(viper.GetInt("verbose")*4)
		if viper.GetBool("quiet") {
			level = log.Level(math.MaxInt32)
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{
			TimeFormat: time.Kitchen,
			Level:      level,
		})
		slog.SetDefault(slog.New(logger))

		viper.SetDefault("config", filepath.Join(xdg.ConfigHome, "clippad", "config.json"))

		return nil
	},
}

// loadConfig reads the config file and applies the database override from the
// CLI surface.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, err
	}

	if db := viper.GetString("database"); db != "" {
		cfg.DatabasePath = db
	}

	return cfg, nil
}

// Execute runs the cobra cli.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
