package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvHeader matches the original flat-file format consumed downstream.
var csvHeader = []string{"date", "day_of_the_week", "sales"}

// WriteCSV writes records to path as comma-separated rows with a
// `date,day_of_the_week,sales` header. An existing file is overwritten.
func WriteCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			r.Weekday.String(),
			strconv.FormatFloat(r.Sales, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", row[0], err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return f.Close()
}
