package focus

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// highDistractions is the per-session distraction count above which the
// session's start hour is recorded as a distraction trigger.
const highDistractions = 3

// neutralFocus stands in for hours that have no logged history when they
// appear as a window endpoint.
const neutralFocus = 5.0

// Window is a contiguous block of hours, [Start, End).
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:00 - %02d:00", w.Start, w.End)
}

// Estimator accumulates session history and per-hour focus statistics.
// Fields are exported so the snapshot document can serialize them directly.
type Estimator struct {
	History []Session `json:"history"`
	// ByHour maps a session start hour (0-23) to the focus scores logged
	// at that hour, append-only.
	ByHour map[int][]int `json:"focus_by_hour"`
	// Triggers counts high-distraction sessions per start hour.
	Triggers map[int]int `json:"distraction_triggers"`
}

// NewEstimator returns an Estimator with empty history.
func NewEstimator() *Estimator {
	return &Estimator{
		ByHour:   map[int][]int{},
		Triggers: map[int]int{},
	}
}

// LogSession records a session: its focus score is appended to the bucket
// for the session's start hour, and the hour's trigger count is incremented
// when the session had more than three distractions.
func (e *Estimator) LogSession(s Session) {
	// Maps may be nil after unmarshalling an empty snapshot.
	if e.ByHour == nil {
		e.ByHour = map[int][]int{}
	}
	if e.Triggers == nil {
		e.Triggers = map[int]int{}
	}

	e.History = append(e.History, s)

	hour := s.StartTime.Hour()
	e.ByHour[hour] = append(e.ByHour[hour], s.FocusScore)
	if s.Distractions > highDistractions {
		e.Triggers[hour]++
	}
}

// OptimalWindow returns the best two-hour deep-work window. With no history
// it defaults to 09:00-11:00. Candidate windows start between 6:00 and 19:00
// and must end by 22:00; the first window reaching the maximum score wins.
//
// A window [start, start+2] is scored on the hour averages of start and
// start+1 only.
func (e *Estimator) OptimalWindow() Window {
	if len(e.ByHour) == 0 {
		return Window{Start: 9, End: 11}
	}

	avg := make(map[int]float64, len(e.ByHour))
	for hour, scores := range e.ByHour {
		sum := 0
		for _, s := range scores {
			sum += s
		}
		avg[hour] = float64(sum) / float64(len(scores))
	}
	hourAvg := func(h int) float64 {
		if a, ok := avg[h]; ok {
			return a
		}
		return neutralFocus
	}

	best := Window{Start: 9, End: 11}
	bestScore := 0.0
	for start := 6; start < 20; start++ {
		end := start + 2
		if end > 22 {
			continue
		}
		score := (hourAvg(start) + hourAvg(start+1)) / 2
		if score > bestScore {
			bestScore = score
			best = Window{Start: start, End: end}
		}
	}
	return best
}

// ShouldSuggestBreak reports whether now's hour has accumulated more than
// three high-distraction sessions.
func (e *Estimator) ShouldSuggestBreak(now time.Time) bool {
	return e.Triggers[now.Hour()] > 3
}

// Tips returns the distraction mitigation tips: five fixed suggestions plus,
// when any hour has more than two distraction triggers, one tip listing
// those hours in ascending order.
func (e *Estimator) Tips() []string {
	tips := []string{
		"Consider using website blockers during focus sessions",
		"Turn off non-essential notifications",
		"Use noise-cancelling headphones or white noise",
		"Keep your phone in another room or in airplane mode",
		"Prepare everything you need before starting deep work",
	}

	var noisy []int
	for hour, count := range e.Triggers {
		if count > 2 {
			noisy = append(noisy, hour)
		}
	}
	if len(noisy) > 0 {
		sort.Ints(noisy)
		parts := make([]string, len(noisy))
		for i, h := range noisy {
			parts[i] = fmt.Sprintf("%d:00", h)
		}
		tips = append(tips, fmt.Sprintf(
			"Your most distracting hours are %s. Consider scheduling lighter tasks during these times.",
			strings.Join(parts, ", "),
		))
	}
	return tips
}
