// Package report assembles and renders the daily recommendation report.
package report

import (
	"time"

	"github.com/melisasvr/dayflow/internal/advisor"
	"github.com/melisasvr/dayflow/internal/focus"
	"github.com/melisasvr/dayflow/internal/task"
)

// Report is the assembled recommendation set for one day.
type Report struct {
	GeneratedAt time.Time            `json:"generated_at"`
	RankedTasks []task.Task          `json:"ranked_tasks"`
	FocusWindow focus.Window         `json:"focus_window"`
	ShouldBreak bool                 `json:"should_take_break"`
	Tips        []string             `json:"distraction_tips"`
	Resources   []advisor.Resource   `json:"resource_suggestions"`
	Automation  []advisor.Suggestion `json:"automation_suggestions"`
}
