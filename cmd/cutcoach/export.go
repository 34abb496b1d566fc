package cutcoach

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhvu/cutcoach/internal/service"
	"github.com/minhvu/cutcoach/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data",
}

var exportOut string

var exportTrackerCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Export check-ins as CSV (spreadsheet-friendly, BOM included)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s store.Store) error {
			logs, err := store.LoadTrackerLogs(s, userID)
			if err != nil {
				return err
			}
			if exportOut == "" {
				return service.ExportTrackerCSV(cmd.OutOrStdout(), logs)
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			if err := service.ExportTrackerCSV(f, logs); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", exportOut, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(logs), exportOut)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportTrackerCmd)

	exportTrackerCmd.Flags().StringVar(&exportOut, "out", "", "Output file (stdout when empty)")
}
