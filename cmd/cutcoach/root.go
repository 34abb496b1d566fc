package cutcoach

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	userID string
)

var rootCmd = &cobra.Command{
	Use:   "cutcoach",
	Short: "cutcoach tracks meals, weight and cutting progress from your terminal",
	Long:  "cutcoach is a local-first nutrition coaching CLI: it builds daily meal logs from a food database, derives calorie and macro targets from your body metrics, and tracks weight trends with streaks, badges and adaptive coaching suggestions.",
}

func Execute() {
	// Optional .env in the working directory; used for CUTCOACH_DB.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "default", "User id owning the data")
}
