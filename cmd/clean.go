package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/database"
)

func init() {
	rootCmd.AddCommand(cleanCmd)
}

// cleanCmd is the out-of-band maintenance operation: it wipes today's rows so
// a fresh capture session can be exercised. Nothing in the normal UI flow
// reaches this.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete today's entries from the history database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		repo, err := database.NewRepository(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer repo.Close()

		ctx := cmd.Context()
		today := time.Now().Format(database.DateLayout)

		count, err := repo.CountForDate(ctx, today)
		if err != nil {
			return err
		}
		if count == 0 {
			fmt.Println("no entries to delete for today")
			return nil
		}

		deleted, err := repo.DeleteDay(ctx, today)
		if err != nil {
			return err
		}

		slog.Info("cleanup completed", "date", today, "deleted", deleted)
		fmt.Printf("deleted %d entries for %s\n", deleted, today)
		return nil
	},
}
