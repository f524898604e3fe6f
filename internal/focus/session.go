// Package focus tracks logged work sessions and derives focus-time advice
// from per-hour focus history.
package focus

import "time"

// Session is one logged block of work. Sessions are immutable once logged;
// focus and energy scores are stored as given, without range validation.
type Session struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	// TasksCompleted holds task ids finished during the session. Dangling
	// ids are allowed; there is no referential integrity against the task list.
	TasksCompleted []string `json:"tasks_completed"`
	FocusScore     int      `json:"focus_score"`  // 1-10
	EnergyLevel    int      `json:"energy_level"` // 1-10
	Distractions   int      `json:"distractions_count"`
	ToolsUsed      []string `json:"tools_used"`
}
