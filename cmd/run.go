package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/app"
	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/shell"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Capture clipboard changes and browse history interactively",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		slog.Info("clippad starting", "database", cfg.DatabasePath)

		application, err := app.New(cfg, shell.NewTerminal(os.Stdout))
		if err != nil {
			return err
		}
		defer application.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return application.Run(ctx)
	},
}
