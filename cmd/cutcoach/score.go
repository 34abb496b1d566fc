package cutcoach

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/service"
	"github.com/minhvu/cutcoach/internal/store"
)

var scoreTargetBF float64

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the weekly progress report and score",
	RunE: func(cmd *cobra.Command, args []string) error {
		targetBF := 0.0
		if scoreTargetBF > 0 {
			targetBF = scoreTargetBF
		}
		return withStore(func(s store.Store) error {
			report, err := service.BuildProgressReport(s, userID, targetBF, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if report.TDEE > 0 {
				fmt.Fprintf(out, "BMI: %.1f\n", report.BMI)
				fmt.Fprintf(out, "TDEE: %d kcal\n", report.TDEE)
				fmt.Fprintf(out, "Targets: %d kcal, P %.1fg, C %.1fg, F %.1fg\n",
					report.Targets.Calories, report.Targets.Protein, report.Targets.Carbs, report.Targets.Fat)
			} else {
				fmt.Fprintln(out, "No profile yet. Run: cutcoach profile set")
			}

			if report.WeeklyAvgWeight != nil {
				fmt.Fprintf(out, "Weekly avg weight: %.2f kg\n", *report.WeeklyAvgWeight)
			}
			if report.WeeklyChange != nil {
				fmt.Fprintf(out, "Weekly change: %+.2f kg\n", *report.WeeklyChange)
			}
			if report.Stall {
				fmt.Fprintln(out, "Warning: weight has plateaued for 3 weeks")
			}
			if report.FastLoss {
				fmt.Fprintln(out, "Warning: losing faster than 0.8 kg/week risks muscle loss")
			}

			fmt.Fprintf(out, "Score: %d/100 (calories %d/25, protein %d/25, trend %d/30, cardio %d/20)\n",
				report.Score.Total, report.Score.Calories, report.Score.Protein, report.Score.Trend, report.Score.Cardio)

			if report.TargetWeight != nil {
				fmt.Fprintf(out, "Target weight at %.1f%% body fat: %.1f kg\n", scoreTargetBF, *report.TargetWeight)
			}
			if report.PredictedWeeks != nil {
				fmt.Fprintf(out, "Estimated time: %d weeks\n", *report.PredictedWeeks)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().Float64Var(&scoreTargetBF, "target-bf", 0, "Target body-fat percentage for the weight prediction")
}
