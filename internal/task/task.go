// Package task defines the task record and its priority scoring.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority orders tasks from least to most important. The numeric values are
// what gets persisted, so they must stay stable.
type Priority int

const (
	Low Priority = iota + 1
	Medium
	High
	Urgent
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Urgent:
		return "urgent"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority converts user input into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	case "urgent":
		return Urgent, nil
	default:
		return 0, fmt.Errorf("unknown priority %q (expected low, medium, high, or urgent)", s)
	}
}

// Status is the lifecycle state of a task:
// pending → in_progress → completed | cancelled.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether no further lifecycle transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) String() string { return string(s) }

// Task is a single unit of pending or recorded work.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       Priority   `json:"priority"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	// EnergyRequired is the energy level (1-10) the task demands.
	EnergyRequired int        `json:"energy_level_required"`
	Tags           []string   `json:"tags"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ActualHours    *float64   `json:"actual_hours,omitempty"`
}
