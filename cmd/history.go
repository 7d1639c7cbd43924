package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/database"
	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/shell"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [YYYY-MM-DD]",
	Short: "Print the clipboard history for a day",
	Long: `Without an argument, prints today's snippets newest-first (the live view
order). With an explicit date, prints that day's snippets oldest-first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		date := today
		if len(args) == 1 {
			parsed, err := time.Parse(database.DateLayout, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[0])
			}
			date = parsed.Format(database.DateLayout)
		}

		var items []string
		if date == today {
			items, err = repo.RecentForDate(ctx, date)
		} else {
			items, err = repo.EntriesForDate(ctx, date)
		}
		if err != nil {
			return err
		}

		shell.NewTerminal(os.Stdout).ShowDay(date, items)
		return nil
	},
}
