package optimizer

import (
	"testing"
	"time"

	"github.com/melisasvr/dayflow/internal/focus"
	"github.com/melisasvr/dayflow/internal/task"
)

// tenAM is a fixed clock inside work hours so the effort band applies
// deterministically.
var tenAM = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func newTestOptimizer(t *testing.T) *Optimizer {
	t.Helper()
	store, err := NewSnapshotStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSnapshotStore: %v", err)
	}
	o, err := New(store, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	o.now = func() time.Time { return tenAM }
	return o
}

func TestAddTaskAssignsSequentialIDs(t *testing.T) {
	o := newTestOptimizer(t)

	first := o.AddTask(TaskInput{Title: "one", Priority: task.Medium})
	second := o.AddTask(TaskInput{Title: "two", Priority: task.Low})

	if first.ID != "task_1" || second.ID != "task_2" {
		t.Errorf("ids = %s, %s; want task_1, task_2", first.ID, second.ID)
	}
	if first.Status != task.StatusPending {
		t.Errorf("new task status = %s, want pending", first.Status)
	}
	if !first.CreatedAt.Equal(tenAM) {
		t.Errorf("CreatedAt = %v, want %v", first.CreatedAt, tenAM)
	}
}

func TestAddTaskSubstitutesDefaults(t *testing.T) {
	o := newTestOptimizer(t)
	got := o.AddTask(TaskInput{Title: "bare", Priority: task.Low})

	if got.EstimatedHours != 1 {
		t.Errorf("EstimatedHours = %v, want default 1", got.EstimatedHours)
	}
	if got.EnergyRequired != 5 {
		t.Errorf("EnergyRequired = %d, want default 5", got.EnergyRequired)
	}
	if got.Tags == nil {
		t.Error("Tags should default to an empty slice, not nil")
	}
}

func TestCompleteTask(t *testing.T) {
	o := newTestOptimizer(t)
	o.AddTask(TaskInput{Title: "one", Priority: task.Medium})

	hours := 2.5
	o.CompleteTask("task_1", &hours)

	got, ok := o.Task("task_1")
	if !ok {
		t.Fatal("task_1 disappeared")
	}
	if got.Status != task.StatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(tenAM) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, tenAM)
	}
	if got.ActualHours == nil || *got.ActualHours != 2.5 {
		t.Errorf("ActualHours = %v, want 2.5", got.ActualHours)
	}
}

func TestCompleteTaskUnknownIDIsSilent(t *testing.T) {
	o := newTestOptimizer(t)
	o.AddTask(TaskInput{Title: "one", Priority: task.Medium})

	o.CompleteTask("task_99", nil) // must not panic or alter anything

	got, _ := o.Task("task_1")
	if got.Status != task.StatusPending {
		t.Errorf("unrelated task changed status to %s", got.Status)
	}
}

func TestCompleteTaskIgnoresTerminalTasks(t *testing.T) {
	o := newTestOptimizer(t)
	o.AddTask(TaskInput{Title: "one", Priority: task.Medium})
	o.CancelTask("task_1")

	o.CompleteTask("task_1", nil)

	got, _ := o.Task("task_1")
	if got.Status != task.StatusCancelled {
		t.Errorf("status = %s; completing a cancelled task should not revive it", got.Status)
	}
}

func TestStartTaskOnlyFromPending(t *testing.T) {
	o := newTestOptimizer(t)
	o.AddTask(TaskInput{Title: "one", Priority: task.Medium})

	o.StartTask("task_1")
	if got, _ := o.Task("task_1"); got.Status != task.StatusInProgress {
		t.Fatalf("status = %s, want in_progress", got.Status)
	}

	o.CompleteTask("task_1", nil)
	o.StartTask("task_1")
	if got, _ := o.Task("task_1"); got.Status != task.StatusCompleted {
		t.Errorf("status = %s; starting a completed task should be a no-op", got.Status)
	}
}

func TestLogSessionAdoptsEnergy(t *testing.T) {
	o := newTestOptimizer(t)
	if o.Energy() != DefaultEnergy {
		t.Fatalf("fresh energy = %d, want %d", o.Energy(), DefaultEnergy)
	}

	o.LogSession(focus.Session{
		ID:          "s1",
		StartTime:   tenAM.Add(-2 * time.Hour),
		EndTime:     tenAM.Add(-time.Hour),
		FocusScore:  8,
		EnergyLevel: 4,
	})
	if o.Energy() != 4 {
		t.Errorf("energy = %d after session, want 4", o.Energy())
	}
}

func TestSetEnergyIgnoresOutOfRange(t *testing.T) {
	o := newTestOptimizer(t)
	o.SetEnergy(3)
	o.SetEnergy(0)
	o.SetEnergy(11)
	if o.Energy() != 3 {
		t.Errorf("energy = %d, want 3 (out-of-range values ignored)", o.Energy())
	}
}

func TestDailyReportComposition(t *testing.T) {
	o := newTestOptimizer(t)

	// Six pending tasks; the report carries only the top five.
	deadline := tenAM.Add(24 * time.Hour)
	o.AddTask(TaskInput{Title: "Complete project proposal", Priority: task.High, Deadline: &deadline,
		EstimatedHours: 4, EnergyRequired: 8, Tags: []string{"writing", "project", "deadline"}})
	o.AddTask(TaskInput{Title: "Review email inbox", Priority: task.Medium,
		EstimatedHours: 0.5, EnergyRequired: 3, Tags: []string{"email", "communication"}})
	o.AddTask(TaskInput{Title: "Team meeting preparation", Priority: task.Medium,
		EstimatedHours: 1, EnergyRequired: 6, Tags: []string{"meeting", "preparation"}})
	o.AddTask(TaskInput{Title: "Weekly project status review", Priority: task.Medium,
		EstimatedHours: 2, EnergyRequired: 7, Tags: []string{"project", "review"}})
	o.AddTask(TaskInput{Title: "Client meeting preparation", Priority: task.High,
		EstimatedHours: 1.5, EnergyRequired: 8, Tags: []string{"meeting", "preparation", "client"}})
	o.AddTask(TaskInput{Title: "Tidy desk", Priority: task.Low, Tags: []string{}})

	rep := o.DailyReport()

	if !rep.GeneratedAt.Equal(tenAM) {
		t.Errorf("GeneratedAt = %v, want %v", rep.GeneratedAt, tenAM)
	}
	if len(rep.RankedTasks) != 5 {
		t.Errorf("RankedTasks has %d entries, want 5", len(rep.RankedTasks))
	}
	if rep.RankedTasks[0].Title != "Complete project proposal" {
		t.Errorf("top task = %q, want the deadline-driven proposal", rep.RankedTasks[0].Title)
	}
	if rep.FocusWindow.Start != 9 || rep.FocusWindow.End != 11 {
		t.Errorf("FocusWindow = %+v, want default (9, 11)", rep.FocusWindow)
	}
	if rep.ShouldBreak {
		t.Error("ShouldBreak = true with no session history")
	}
	if len(rep.Tips) != 3 {
		t.Errorf("Tips has %d entries, want top 3", len(rep.Tips))
	}
	if len(rep.Resources) == 0 {
		t.Error("Resources empty; top tasks carry catalog tags")
	}
	if len(rep.Automation) == 0 {
		t.Error("Automation empty; meeting and project titles repeat")
	}
}

func TestCompletedTasksStayOutOfReport(t *testing.T) {
	o := newTestOptimizer(t)
	o.AddTask(TaskInput{Title: "one", Priority: task.Urgent})
	o.AddTask(TaskInput{Title: "two", Priority: task.Low})
	o.CompleteTask("task_1", nil)

	rep := o.DailyReport()
	if len(rep.RankedTasks) != 1 || rep.RankedTasks[0].ID != "task_2" {
		t.Errorf("RankedTasks = %+v, want only task_2", rep.RankedTasks)
	}
}

func TestSaveAndReloadPreservesState(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSnapshotStore(dir)
	if err != nil {
		t.Fatalf("NewSnapshotStore: %v", err)
	}

	o, err := New(store, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	o.now = func() time.Time { return tenAM }
	o.AddTask(TaskInput{Title: "persisted", Priority: task.High, Tags: []string{"writing"}})
	o.SetEnergy(9)
	o.LogSession(focus.Session{ID: "s1", StartTime: tenAM, EndTime: tenAM.Add(time.Hour), FocusScore: 8, EnergyLevel: 6, Distractions: 5})

	if err := o.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := New(store, 0)
	if err != nil {
		t.Fatalf("New (reload): %v", err)
	}
	if got, ok := reloaded.Task("task_1"); !ok || got.Title != "persisted" {
		t.Errorf("reloaded task = %+v, want the persisted task", got)
	}
	if reloaded.Energy() != 6 {
		t.Errorf("reloaded energy = %d, want 6 (set by the logged session)", reloaded.Energy())
	}

	// The estimator history survived, so logging continues to accumulate.
	reloaded.LogSession(focus.Session{ID: "s2", StartTime: tenAM, EndTime: tenAM.Add(time.Hour), FocusScore: 7, EnergyLevel: 6, Distractions: 5})
	if err := reloaded.Save(); err != nil {
		t.Fatalf("Save (reload): %v", err)
	}
	final, err := New(store, 0)
	if err != nil {
		t.Fatalf("New (final): %v", err)
	}
	rep := final.DailyReport()
	_ = rep // report assembly over restored state must not panic
}

func TestNewUsesDefaultEnergySeed(t *testing.T) {
	store, err := NewSnapshotStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSnapshotStore: %v", err)
	}
	o, err := New(store, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if o.Energy() != 3 {
		t.Errorf("energy = %d, want configured seed 3", o.Energy())
	}
}
