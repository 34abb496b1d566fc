package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/minhvu/cutcoach/internal/model"
)

// Fixed Vietnamese column headers; downstream spreadsheets rely on this layout.
var trackerCSVHeader = []string{"Ngày", "Cân nặng (kg)", "Calories", "Protein (g)", "Cardio (phút)", "Bước chân", "Ghi chú"}

// ExportTrackerCSV writes the tracker logs as UTF-8 CSV with a BOM, so
// spreadsheet apps pick up the Vietnamese headers correctly. Rows are
// ordered by date.
func ExportTrackerCSV(w io.Writer, logs []model.TrackerLog) error {
	if _, err := w.Write([]byte("\ufeff")); err != nil {
		return fmt.Errorf("write csv BOM: %w", err)
	}

	sorted := make([]model.TrackerLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	cw := csv.NewWriter(w)
	if err := cw.Write(trackerCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, l := range sorted {
		steps := ""
		if l.Steps > 0 {
			steps = strconv.Itoa(l.Steps)
		}
		row := []string{
			l.Date,
			strconv.FormatFloat(l.Weight, 'f', -1, 64),
			strconv.Itoa(l.Calories),
			strconv.FormatFloat(l.Protein, 'f', -1, 64),
			strconv.Itoa(l.CardioMinutes),
			steps,
			l.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
