package cutcoach

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/nutrition"
	"github.com/minhvu/cutcoach/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile that drives targets",
}

var (
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileSex      string
	profileActivity string
	profileGoal     string
	profileBodyFat  float64
	profileWaist    float64
	profileHip      float64
	profileMuscle   float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileWeight <= 0 {
			return fmt.Errorf("--weight must be > 0")
		}
		if profileHeight <= 0 {
			return fmt.Errorf("--height must be > 0")
		}
		if profileAge <= 0 {
			return fmt.Errorf("--age must be > 0")
		}
		sex := model.Sex(profileSex)
		if sex != model.SexMale && sex != model.SexFemale {
			return fmt.Errorf("--sex must be male or female")
		}
		goal := model.Goal(profileGoal)
		if goal != model.GoalCut && goal != model.GoalMaintain && goal != model.GoalBulk {
			return fmt.Errorf("--goal must be cut, maintain or bulk")
		}
		activity := model.ActivityLevel(profileActivity)
		switch activity {
		case model.ActivitySedentary, model.ActivityLight, model.ActivityModerate, model.ActivityActive, model.ActivityVeryActive:
		default:
			return fmt.Errorf("--activity must be sedentary, light, moderate, active or very_active")
		}

		return withStore(func(s store.Store) error {
			now := time.Now().Format(time.RFC3339)
			existing, err := store.LoadProfile(s, userID)
			if err != nil {
				return err
			}

			p := model.UserProfile{
				ID:            userID,
				WeightKg:      profileWeight,
				HeightCm:      profileHeight,
				Age:           profileAge,
				Sex:           sex,
				ActivityLevel: activity,
				Goal:          goal,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if existing != nil {
				p.ID = existing.ID
				p.CreatedAt = existing.CreatedAt
			}
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			p.BodyFatPercentage = optionalPct(profileBodyFat)
			p.WaistCm = optionalPct(profileWaist)
			p.HipCm = optionalPct(profileHip)
			p.MuscleMassKg = optionalPct(profileMuscle)

			if err := store.SaveProfile(s, userID, p); err != nil {
				return err
			}

			targets := nutrition.CalcMacroTargets(p)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", userID)
			fmt.Fprintf(cmd.OutOrStdout(), "TDEE: %d kcal\n", nutrition.CalcTDEE(p))
			fmt.Fprintf(cmd.OutOrStdout(), "Targets: %d kcal, P %.1fg, C %.1fg, F %.1fg\n",
				targets.Calories, targets.Protein, targets.Carbs, targets.Fat)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile and derived targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			p, err := store.LoadProfile(s, userID)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run: cutcoach profile set")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User: %s\n", userID)
			fmt.Fprintf(out, "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(out, "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Sex: %s\n", p.Sex)
			fmt.Fprintf(out, "Activity: %s\n", p.ActivityLevel)
			fmt.Fprintf(out, "Goal: %s\n", p.Goal)
			if p.BodyFatPercentage != nil {
				fmt.Fprintf(out, "Body fat: %.1f%%\n", *p.BodyFatPercentage)
			}
			if p.WaistCm != nil {
				fmt.Fprintf(out, "Waist: %.1f cm\n", *p.WaistCm)
			}
			if p.HipCm != nil {
				fmt.Fprintf(out, "Hip: %.1f cm\n", *p.HipCm)
			}
			if p.MuscleMassKg != nil {
				fmt.Fprintf(out, "Muscle mass: %.1f kg\n", *p.MuscleMassKg)
			}

			targets := nutrition.CalcMacroTargets(*p)
			fmt.Fprintf(out, "BMI: %.1f\n", nutrition.CalcBMI(p.WeightKg, p.HeightCm))
			fmt.Fprintf(out, "TDEE: %d kcal\n", nutrition.CalcTDEE(*p))
			fmt.Fprintf(out, "Targets: %d kcal, P %.1fg, C %.1fg, F %.1fg\n",
				targets.Calories, targets.Protein, targets.Carbs, targets.Fat)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "Sex: male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "moderate", "Activity level: sedentary, light, moderate, active, very_active")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "cut", "Goal: cut, maintain or bulk")
	profileSetCmd.Flags().Float64Var(&profileBodyFat, "body-fat", -1, "Body fat percentage (optional)")
	profileSetCmd.Flags().Float64Var(&profileWaist, "waist", -1, "Waist in cm (optional)")
	profileSetCmd.Flags().Float64Var(&profileHip, "hip", -1, "Hip in cm (optional)")
	profileSetCmd.Flags().Float64Var(&profileMuscle, "muscle-mass", -1, "Muscle mass in kg (optional)")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("sex")
}
