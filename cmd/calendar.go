package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/database"
	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/navigator"
	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/shell"
)

func init() {
	rootCmd.AddCommand(calendarCmd)
}

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show which days of a month have clipboard history",
	Args:  cobra.MaximumNArgs(1),
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

		nav := navigator.New(repo)
		if len(args) == 1 {
			parsed, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q, want YYYY-MM", args[0])
			}
			nav.SetCursor(parsed.Year(), parsed.Month())
		}

		days := nav.DaysWithData(cmd.Context())

		states := make(map[int]navigator.DayState, nav.DaysIn())
		for day := 1; day <= nav.DaysIn(); day++ {
			states[day] = nav.Classify(day, days)
		}

		year, month := nav.Cursor()
		shell.NewTerminal(os.Stdout).ShowCalendar(nav.Label(), year, month, states)
		return nil
	},
}
