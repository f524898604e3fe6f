package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/melisasvr/dayflow/internal/focus"
	"github.com/melisasvr/dayflow/internal/report"
)

func TestLogSessionShiftsFocusWindow(t *testing.T) {
	isolateState(t)

	out, err := executeCommand(rootCmd, "log",
		"--start", "2025-03-10T14:00:00Z",
		"--end", "2025-03-10T15:00:00Z",
		"--focus", "9",
		"--energy", "7",
		"--distractions", "1")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if !strings.Contains(out, "Session logged: 14:00 start, focus 9/10, energy 7/10, 1 distractions.") {
		t.Errorf("unexpected log output: %q", out)
	}

	out, err = executeCommand(rootCmd, "plan", "--format", "json")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	var rep report.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	// A strong 14:00 session pulls the window to the first pair touching it.
	if rep.FocusWindow != (focus.Window{Start: 13, End: 15}) {
		t.Errorf("focus window: want 13:00 - 15:00, got %+v", rep.FocusWindow)
	}
}

func TestLogSessionAdoptsEnergy(t *testing.T) {
	isolateState(t)

	if _, err := executeCommand(rootCmd, "log",
		"--start", "2025-03-10T09:00:00Z",
		"--end", "2025-03-10T10:00:00Z",
		"--focus", "6",
		"--energy", "8",
		"--distractions", "0"); err != nil {
		t.Fatalf("log: %v", err)
	}

	out, err := executeCommand(rootCmd, "energy")
	if err != nil {
		t.Fatalf("energy: %v", err)
	}
	if !strings.Contains(out, "Current energy: 8/10") {
		t.Errorf("unexpected energy output: %q", out)
	}
}

func TestLogRejectsEndBeforeStart(t *testing.T) {
	isolateState(t)

	_, err := executeCommand(rootCmd, "log",
		"--start", "2025-03-10T15:00:00Z",
		"--end", "2025-03-10T14:00:00Z",
		"--focus", "5",
		"--energy", "5",
		"--distractions", "0")
	if err == nil {
		t.Fatal("expected an error when the session ends before it starts")
	}
}

func TestEnergySetAndClamp(t *testing.T) {
	isolateState(t)

	out, err := executeCommand(rootCmd, "energy", "4")
	if err != nil {
		t.Fatalf("energy 4: %v", err)
	}
	if !strings.Contains(out, "Current energy: 4/10") {
		t.Errorf("unexpected output: %q", out)
	}

	// Out-of-range values are ignored; the last valid level sticks.
	out, err = executeCommand(rootCmd, "energy", "42")
	if err != nil {
		t.Fatalf("energy 42: %v", err)
	}
	if !strings.Contains(out, "Current energy: 4/10") {
		t.Errorf("unexpected output: %q", out)
	}
}
