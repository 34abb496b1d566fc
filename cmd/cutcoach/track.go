package cutcoach

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/service"
	"github.com/minhvu/cutcoach/internal/store"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Manage daily check-ins (weight, intake, cardio)",
}

var (
	trackDate     string
	trackWeight   float64
	trackCalories int
	trackProtein  float64
	trackCardio   int
	trackSteps    int
	trackNotes    string
)

var trackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a daily check-in (upserts by date)",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := model.TrackerLog{
			Date:          trackDate,
			Weight:        trackWeight,
			Calories:      trackCalories,
			Protein:       trackProtein,
			CardioMinutes: trackCardio,
			Steps:         trackSteps,
			Notes:         trackNotes,
		}
		return withStore(func(s store.Store) error {
			if err := service.TrackDay(s, userID, log, time.Now()); err != nil {
				return err
			}
			date := log.Date
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tracked %s\n", date)
			return nil
		})
	},
}

var trackLimit int

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-ins, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			logs, err := store.LoadTrackerLogs(s, userID)
			if err != nil {
				return err
			}
			if trackLimit > 0 && len(logs) > trackLimit {
				logs = logs[len(logs)-trackLimit:]
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT\tKCAL\tPROTEIN\tCARDIO\tSTEPS\tNOTES")
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%d\t%.1f\t%d\t%d\t%s\n",
					l.Date, l.Weight, l.Calories, l.Protein, l.CardioMinutes, l.Steps, l.Notes)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.AddCommand(trackAddCmd, trackListCmd)

	trackAddCmd.Flags().StringVar(&trackDate, "date", "", "Date YYYY-MM-DD (defaults to today)")
	trackAddCmd.Flags().Float64Var(&trackWeight, "weight", 0, "Morning weight in kg")
	trackAddCmd.Flags().IntVar(&trackCalories, "calories", 0, "Calories eaten")
	trackAddCmd.Flags().Float64Var(&trackProtein, "protein", 0, "Protein grams eaten")
	trackAddCmd.Flags().IntVar(&trackCardio, "cardio", 0, "Cardio minutes")
	trackAddCmd.Flags().IntVar(&trackSteps, "steps", 0, "Step count")
	trackAddCmd.Flags().StringVar(&trackNotes, "notes", "", "Optional notes")
	_ = trackAddCmd.MarkFlagRequired("weight")

	trackListCmd.Flags().IntVar(&trackLimit, "limit", 0, "Show only the most recent N entries")
}
