package service_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/service"
)

func TestExportTrackerCSV(t *testing.T) {
	t.Parallel()
	logs := []model.TrackerLog{
		{Date: "2026-08-02", Weight: 69.8, Calories: 1950, Protein: 118.5, CardioMinutes: 30, Steps: 8000, Notes: "chạy bộ"},
		{Date: "2026-08-01", Weight: 70, Calories: 2000, Protein: 120},
	}

	buf := &bytes.Buffer{}
	if err := service.ExportTrackerCSV(buf, logs); err != nil {
		t.Fatalf("export: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\ufeff") {
		t.Fatalf("expected a UTF-8 BOM prefix")
	}

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\ufeff")))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Ngày" || rows[0][1] != "Cân nặng (kg)" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	// Sorted by date regardless of input order.
	if rows[1][0] != "2026-08-01" || rows[2][0] != "2026-08-02" {
		t.Fatalf("expected rows sorted by date, got %v / %v", rows[1], rows[2])
	}
	if rows[1][5] != "" {
		t.Fatalf("expected zero steps to export as empty, got %q", rows[1][5])
	}
	if rows[2][5] != "8000" {
		t.Fatalf("expected steps 8000, got %q", rows[2][5])
	}
	if rows[2][3] != "118.5" {
		t.Fatalf("expected protein 118.5, got %q", rows[2][3])
	}
	if rows[2][6] != "chạy bộ" {
		t.Fatalf("expected the note to survive, got %q", rows[2][6])
	}
}

func TestExportTrackerCSVEmpty(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := service.ExportTrackerCSV(buf, nil); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := strings.TrimPrefix(buf.String(), "\ufeff")
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected only the header line, got %q", out)
	}
}
