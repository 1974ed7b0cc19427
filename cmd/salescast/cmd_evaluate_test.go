package main

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestEvaluateDegenerateTarget(t *testing.T) {
	tmpDir := t.TempDir()

	// stddev 0: every July trajectory ends at exactly 31000.
	out, err := runCommand(t,
		"evaluate", "2016-07-01", "31000", "1000", "0",
		"--iterations", "100", "--seed", "1", "--root", tmpDir)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if !strings.Contains(out, "Target met: 100.0%") {
		t.Errorf("expected 100%% target met, got:\n%s", out)
	}
	if !strings.Contains(out, "Starting date: 2016-07-01") {
		t.Errorf("expected starting date in output, got:\n%s", out)
	}
}

func TestEvaluateUnreachableTarget(t *testing.T) {
	tmpDir := t.TempDir()

	out, err := runCommand(t,
		"evaluate", "2016-07-01", "31000.01", "1000", "0",
		"--iterations", "100", "--seed", "1", "--root", tmpDir)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if !strings.Contains(out, "Target met: 0.0%") {
		t.Errorf("expected 0%% target met, got:\n%s", out)
	}
}

func TestEvaluateJSONOutput(t *testing.T) {
	tmpDir := t.TempDir()

	out, err := runCommand(t,
		"evaluate", "2016-07-14", "20000", "1000", "200",
		"--iterations", "200", "--seed", "42", "--json", "--root", tmpDir)
	if err != nil {
		t.Fatalf("evaluate --json failed: %v", err)
	}

	var payload struct {
		StartingDate string  `json:"starting_date"`
		Target       float64 `json:"target"`
		Iterations   int     `json:"iterations"`
		TargetMet    float64 `json:"target_met"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if payload.StartingDate != "2016-07-14" {
		t.Errorf("starting_date = %q, want 2016-07-14", payload.StartingDate)
	}
	if payload.Target != 20000 {
		t.Errorf("target = %g, want 20000", payload.Target)
	}
	if payload.Iterations != 200 {
		t.Errorf("iterations = %d, want 200", payload.Iterations)
	}
	if payload.TargetMet < 0 || payload.TargetMet > 1 {
		t.Errorf("target_met = %g, outside [0,1]", payload.TargetMet)
	}
}

func TestEvaluateInvalidArguments(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"missing args", []string{"evaluate", "2016-07-14", "20000"}},
		{"bad date", []string{"evaluate", "not-a-date", "20000", "1000", "200"}},
		{"bad target", []string{"evaluate", "2016-07-14", "lots", "1000", "200"}},
		{"bad mean", []string{"evaluate", "2016-07-14", "20000", "x", "200"}},
		{"bad stddev", []string{"evaluate", "2016-07-14", "20000", "1000", "x"}},
		{"negative stddev", []string{"evaluate", "2016-07-14", "20000", "1000", "-5"}},
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
