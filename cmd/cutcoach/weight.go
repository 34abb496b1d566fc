package cutcoach

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/service"
	"github.com/minhvu/cutcoach/internal/store"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Manage weigh-ins",
}

var (
	weightValue  float64
	weightFat    float64
	weightWaist  float64
	weightHip    float64
	weightMuscle float64
	weightDate   string
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a weigh-in (upserts by date, mirrors into the profile)",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := model.WeightLogEntry{
			Date:              weightDate,
			Weight:            weightValue,
			BodyFatPercentage: optionalPct(weightFat),
			WaistCm:           optionalPct(weightWaist),
			HipCm:             optionalPct(weightHip),
			MuscleMassKg:      optionalPct(weightMuscle),
		}
		return withStore(func(s store.Store) error {
			if err := service.LogWeight(s, userID, entry, time.Now()); err != nil {
				return err
			}
			date := entry.Date
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f kg on %s\n", weightValue, date)
			return nil
		})
	},
}

var weightLimit int

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weigh-ins, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			logs, err := store.LoadWeightLogs(s, userID)
			if err != nil {
				return err
			}
			if weightLimit > 0 && len(logs) > weightLimit {
				logs = logs[len(logs)-weightLimit:]
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT\tBODY_FAT%")
			for _, l := range logs {
				bf := ""
				if l.BodyFatPercentage != nil {
					bf = fmt.Sprintf("%.1f", *l.BodyFatPercentage)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%s\n", l.Date, l.Weight, bf)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd)

	weightAddCmd.Flags().Float64Var(&weightValue, "weight", 0, "Weight in kg")
	weightAddCmd.Flags().Float64Var(&weightFat, "body-fat", -1, "Body fat percentage (optional)")
	weightAddCmd.Flags().Float64Var(&weightWaist, "waist", -1, "Waist in cm (optional)")
	weightAddCmd.Flags().Float64Var(&weightHip, "hip", -1, "Hip in cm (optional)")
	weightAddCmd.Flags().Float64Var(&weightMuscle, "muscle-mass", -1, "Muscle mass in kg (optional)")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (defaults to today)")
	_ = weightAddCmd.MarkFlagRequired("weight")

	weightListCmd.Flags().IntVar(&weightLimit, "limit", 0, "Show only the most recent N entries")
}
