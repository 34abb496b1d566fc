package cutcoach

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/coach"
	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/service"
	"github.com/minhvu/cutcoach/internal/store"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Adaptive coaching suggestions",
}

var coachRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the coaching engine against recent data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			sg, err := service.RunCoach(s, userID, time.Now(), coach.DefaultThresholds)
			if err != nil {
				return err
			}
			if sg == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to flag right now. Keep logging.")
				return nil
			}
			printSuggestion(cmd, *sg)
			return nil
		})
	},
}

var coachListAll bool

var coachListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suggestions (unresolved by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			items, err := store.LoadSuggestions(s, userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tSTATUS\tTYPE\tTITLE")
			for _, sg := range items {
				if !coachListAll && (sg.Status == model.StatusApplied || sg.Status == model.StatusDismissed) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					sg.ID, sg.DateGenerated, sg.Status, sg.Type, sg.Title)
			}
			return nil
		})
	},
}

var coachShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a suggestion and mark it read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			items, err := store.LoadSuggestions(s, userID)
			if err != nil {
				return err
			}
			for _, sg := range items {
				if sg.ID != args[0] {
					continue
				}
				printSuggestion(cmd, sg)
				return store.AdvanceSuggestionStatus(s, userID, sg.ID, model.StatusRead)
			}
			return fmt.Errorf("suggestion %s not found", args[0])
		})
	},
}

func markSuggestion(status model.SuggestionStatus, past string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			if err := store.AdvanceSuggestionStatus(s, userID, args[0], status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s suggestion %s\n", past, args[0])
			return nil
		})
	}
}

var coachApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Mark a suggestion applied",
	Args:  cobra.ExactArgs(1),
	RunE:  markSuggestion(model.StatusApplied, "Applied"),
}

var coachDismissCmd = &cobra.Command{
	Use:   "dismiss <id>",
	Short: "Dismiss a suggestion",
	Args:  cobra.ExactArgs(1),
	RunE:  markSuggestion(model.StatusDismissed, "Dismissed"),
}

func printSuggestion(cmd *cobra.Command, sg model.AdaptiveSuggestion) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[%s] %s\n", sg.Type, sg.Title)
	fmt.Fprintf(out, "%s\n", sg.Message)
	if sg.ActionLabel != "" {
		fmt.Fprintf(out, "Action: %s (%+d kcal)\n", sg.ActionLabel, sg.ActionPayload)
	}
	fmt.Fprintf(out, "Generated: %s\n", sg.DateGenerated)
	fmt.Fprintf(out, "Id: %s\n", sg.ID)
}

func init() {
	rootCmd.AddCommand(coachCmd)
	coachCmd.AddCommand(coachRunCmd, coachListCmd, coachShowCmd, coachApplyCmd, coachDismissCmd)

	coachListCmd.Flags().BoolVar(&coachListAll, "all", false, "Include applied and dismissed suggestions")
}
