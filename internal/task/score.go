package task

import (
	"math"
	"sort"
	"time"
)

// Score computes the priority score for a pending task given the user's
// current energy level and the current time. Four independent bands add up
// to at most 100: deadline urgency (0-40), priority (0-25), energy alignment
// (0-20), and effort fit during work hours (0-15). Scores are not normalized
// and ties are expected; Rank breaks them by input order.
//
// Score is only meaningful for tasks with status pending; callers filter
// before scoring.
func Score(t Task, currentEnergy int, now time.Time) float64 {
	var score float64

	// Deadline urgency (0-40), bucketed by whole days remaining.
	if t.Deadline != nil {
		days := int(math.Floor(t.Deadline.Sub(now).Hours() / 24))
		switch {
		case days <= 0:
			score += 40 // overdue or due today
		case days <= 1:
			score += 35
		case days <= 3:
			score += 25
		case days <= 7:
			score += 15
		default:
			score += 5
		}
	}

	// Priority level (0-25).
	switch t.Priority {
	case Urgent:
		score += 25
	case High:
		score += 20
	case Medium:
		score += 10
	case Low:
		score += 5
	}

	// Energy alignment (0-20): full marks when current energy matches the
	// task's requirement, minus two per level of mismatch.
	diff := currentEnergy - t.EnergyRequired
	if diff < 0 {
		diff = -diff
	}
	if pts := 20 - 2*diff; pts > 0 {
		score += float64(pts)
	}

	// Effort fit (0-15): short tasks score higher, but only during work
	// hours (9:00-17:59 local). Outside that window the band contributes
	// nothing.
	if hour := now.Hour(); hour >= 9 && hour <= 17 {
		switch {
		case t.EstimatedHours <= 2:
			score += 15
		case t.EstimatedHours <= 4:
			score += 10
		default:
			score += 5
		}
	}

	return score
}

// Rank returns the pending tasks ordered by descending score. The sort is
// stable: tasks with equal scores keep their original relative order.
func Rank(tasks []Task, currentEnergy int, now time.Time) []Task {
	type scored struct {
		task  Task
		score float64
	}

	pending := make([]scored, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != StatusPending {
			continue
		}
		pending = append(pending, scored{task: t, score: Score(t, currentEnergy, now)})
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].score > pending[j].score
	})

	ranked := make([]Task, len(pending))
	for i, s := range pending {
		ranked[i] = s.task
	}
	return ranked
}
