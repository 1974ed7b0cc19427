package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateCSV(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "daily_sales_data.csv")

	out, err := runCommand(t,
		"generate", "2016-01-01", "182", "1000", "400",
		"--seed", "42", "--output", output, "--root", tmpDir)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "182 records") {
		t.Errorf("expected record count in output, got:\n%s", out)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}
	if len(rows) != 183 {
		t.Fatalf("expected 183 rows (header + 182), got %d", len(rows))
	}
	if got := strings.Join(rows[0], ","); got != "date,day_of_the_week,sales" {
		t.Errorf("header = %q", got)
	}
}

func TestGenerateDefaultOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	if _, err := runCommand(t,
		"generate", "2016-01-01", "7", "1000", "400", "--seed", "1", "--root", tmpDir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "daily_sales_data.csv")); err != nil {
		t.Errorf("expected daily_sales_data.csv in working directory: %v", err)
	}
}

func TestGenerateSQLiteFormat(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "sales.db")

	if _, err := runCommand(t,
		"generate", "2016-01-01", "30", "1000", "400",
		"--seed", "7", "--output", output, "--format", "sqlite", "--root", tmpDir); err != nil {
		t.Fatalf("generate --format sqlite failed: %v", err)
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("expected sqlite database at %s: %v", output, err)
	}
}

func TestGenerateArrowFormat(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "sales.arrow")

	if _, err := runCommand(t,
		"generate", "2016-01-01", "30", "1000", "400",
		"--seed", "7", "--output", output, "--format", "arrow", "--root", tmpDir); err != nil {
		t.Fatalf("generate --format arrow failed: %v", err)
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("expected arrow file at %s: %v", output, err)
	}
}

func TestGenerateInvalidArguments(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"missing args", []string{"generate", "2016-01-01", "182"}},
		{"bad date", []string{"generate", "first of january", "182", "1000", "400"}},
		{"bad days", []string{"generate", "2016-01-01", "many", "1000", "400"}},
		{"zero days", []string{"generate", "2016-01-01", "0", "1000", "400"}},
		{"bad format", []string{"generate", "2016-01-01", "10", "1000", "400", "--format", "xlsx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--root", tmpDir)
			if _, err := runCommand(t, args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
