// Package optimizer coordinates task scoring, focus estimation, advisor
// lookups, and snapshot persistence for a single user. State is accessed
// sequentially; there is no locking because there are no concurrent callers.
package optimizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/melisasvr/dayflow/internal/advisor"
	"github.com/melisasvr/dayflow/internal/focus"
	"github.com/melisasvr/dayflow/internal/report"
	"github.com/melisasvr/dayflow/internal/task"
)

// DefaultEnergy is assumed until the user sets a level or logs a session.
const DefaultEnergy = 7

// Optimizer is the facade over the task list and its collaborators. It owns
// the task collection exclusively; session history lives in the estimator.
type Optimizer struct {
	store     SnapshotStore
	tasks     []task.Task
	energy    int
	estimator *focus.Estimator
	now       func() time.Time
}

// TaskInput carries caller-provided fields for a new task. Zero values for
// EstimatedHours and EnergyRequired are substituted with 1.0 and 5.
type TaskInput struct {
	Title          string
	Description    string
	Priority       task.Priority
	Deadline       *time.Time
	EstimatedHours float64
	EnergyRequired int
	Tags           []string
}

// New returns an Optimizer loaded from store. A missing snapshot is treated
// as empty state; defaultEnergy (when in range 1-10) seeds the energy level
// for fresh state.
func New(store SnapshotStore, defaultEnergy int) (*Optimizer, error) {
	if defaultEnergy < 1 || defaultEnergy > 10 {
		defaultEnergy = DefaultEnergy
	}

	o := &Optimizer{
		store:     store,
		energy:    defaultEnergy,
		estimator: focus.NewEstimator(),
		now:       time.Now,
	}

	snap, err := store.Load()
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			return o, nil
		}
		return nil, err
	}

	o.tasks = snap.Tasks
	if snap.CurrentEnergy >= 1 && snap.CurrentEnergy <= 10 {
		o.energy = snap.CurrentEnergy
	}
	if snap.Focus != nil {
		o.estimator = snap.Focus
	}
	return o, nil
}

// AddTask creates a pending task with a sequential id ("task_1", "task_2",
// ...). Ids are a plain counter over the current list length, not globally
// unique across deletions.
func (o *Optimizer) AddTask(in TaskInput) task.Task {
	if in.EstimatedHours <= 0 {
		in.EstimatedHours = 1
	}
	if in.EnergyRequired == 0 {
		in.EnergyRequired = 5
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	t := task.Task{
		ID:             fmt.Sprintf("task_%d", len(o.tasks)+1),
		Title:          in.Title,
		Description:    in.Description,
		Priority:       in.Priority,
		Deadline:       in.Deadline,
		EstimatedHours: in.EstimatedHours,
		EnergyRequired: in.EnergyRequired,
		Tags:           tags,
		Status:         task.StatusPending,
		CreatedAt:      o.now(),
	}
	o.tasks = append(o.tasks, t)
	return t
}

// Task returns the first task with the given id.
func (o *Optimizer) Task(id string) (task.Task, bool) {
	for _, t := range o.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// Tasks returns the full task list in insertion order.
func (o *Optimizer) Tasks() []task.Task {
	return o.tasks
}

// Energy returns the current energy level.
func (o *Optimizer) Energy() int {
	return o.energy
}

// SetEnergy sets the current energy level. Out-of-range values are ignored.
func (o *Optimizer) SetEnergy(level int) {
	if level < 1 || level > 10 {
		return
	}
	o.energy = level
}

// StartTask moves a pending task to in_progress. Unknown ids and tasks in
// any other status are ignored.
func (o *Optimizer) StartTask(id string) {
	for i := range o.tasks {
		if o.tasks[i].ID != id {
			continue
		}
		if o.tasks[i].Status == task.StatusPending {
			o.tasks[i].Status = task.StatusInProgress
		}
		return
	}
}

// CompleteTask marks the first task with the given id as completed, stamping
// completed_at and recording actual hours when provided. Unknown ids and
// tasks already in a terminal status are ignored.
func (o *Optimizer) CompleteTask(id string, actualHours *float64) {
	for i := range o.tasks {
		if o.tasks[i].ID != id {
			continue
		}
		if o.tasks[i].Status.Terminal() {
			return
		}
		now := o.now()
		o.tasks[i].Status = task.StatusCompleted
		o.tasks[i].CompletedAt = &now
		if actualHours != nil {
			o.tasks[i].ActualHours = actualHours
		}
		return
	}
}

// CancelTask moves a non-terminal task to cancelled. Unknown ids and
// terminal tasks are ignored.
func (o *Optimizer) CancelTask(id string) {
	for i := range o.tasks {
		if o.tasks[i].ID != id {
			continue
		}
		if !o.tasks[i].Status.Terminal() {
			o.tasks[i].Status = task.StatusCancelled
		}
		return
	}
}

// LogSession records a work session with the estimator and adopts the
// session's energy level as the current energy.
func (o *Optimizer) LogSession(s focus.Session) {
	o.estimator.LogSession(s)
	o.energy = s.EnergyLevel
}

// Rank returns the pending tasks ordered by score at the current time.
func (o *Optimizer) Rank() []task.Task {
	return task.Rank(o.tasks, o.energy, o.now())
}

// DailyReport assembles the daily recommendations: the top five ranked
// tasks, the focus window, a break suggestion, the top three distraction
// tips, resources keyed by the top three tasks' tags, and automation
// suggestions over the whole task list.
func (o *Optimizer) DailyReport() report.Report {
	now := o.now()
	ranked := task.Rank(o.tasks, o.energy, now)

	var tags []string
	for _, t := range topN(ranked, 3) {
		tags = append(tags, t.Tags...)
	}

	tips := o.estimator.Tips()
	if len(tips) > 3 {
		tips = tips[:3]
	}

	return report.Report{
		GeneratedAt: now,
		RankedTasks: topN(ranked, 5),
		FocusWindow: o.estimator.OptimalWindow(),
		ShouldBreak: o.estimator.ShouldSuggestBreak(now),
		Tips:        tips,
		Resources:   advisor.Recommend(tags),
		Automation:  advisor.Automate(o.tasks),
	}
}

// Save writes the current state through the snapshot store.
func (o *Optimizer) Save() error {
	return o.store.Save(&Snapshot{
		Tasks:         o.tasks,
		CurrentEnergy: o.energy,
		Focus:         o.estimator,
	})
}

func topN(tasks []task.Task, n int) []task.Task {
	if len(tasks) > n {
		return tasks[:n]
	}
	return tasks
}
