package cutcoach

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/service"
	"github.com/minhvu/cutcoach/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Run the daily check-in and show streak, level and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			g, err := service.DailyCheck(s, userID, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Streak: %d days (longest %d)\n", g.CurrentStreak, g.LongestStreak)
			fmt.Fprintf(out, "Level %d: %s\n", g.Level, g.LevelTitle)
			if len(g.Badges) == 0 {
				fmt.Fprintln(out, "No badges yet")
				return nil
			}
			fmt.Fprintln(out, "Badges:")
			for _, b := range g.Badges {
				fmt.Fprintf(out, "  %s %s (%s) earned %s\n", b.Icon, b.Name, b.Description, b.DateEarned)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
