package advisor

import (
	"strconv"
	"strings"

	"github.com/melisasvr/dayflow/internal/task"
)

// repetitionThreshold is the number of similarly-titled tasks that makes a
// pattern worth automating.
const repetitionThreshold = 2

// Suggestion describes an automation opportunity for a repetitive task
// pattern.
type Suggestion struct {
	Pattern    string   `json:"pattern"`
	Suggestion string   `json:"suggestion"`
	Tools      []string `json:"tools"`
	TimeSaved  string   `json:"potential_time_saved"`
}

// patternKey buckets a task title into a coarse pattern by keyword.
// Match order matters: "Weekly project status review" is a review task, not
// a project task.
func patternKey(title string) string {
	words := strings.Fields(strings.ToLower(title))
	has := func(w string) bool {
		for _, word := range words {
			if word == w {
				return true
			}
		}
		return false
	}

	switch {
	case has("email"):
		return "email_tasks"
	case has("meeting"):
		return "meeting_tasks"
	case has("report"):
		return "report_tasks"
	case has("review"):
		return "review_tasks"
	case has("project"):
		return "project_tasks"
	case has("preparation"), has("prepare"):
		return "preparation_tasks"
	default:
		return "other_tasks"
	}
}

// Automate groups tasks by title pattern and suggests automations for
// patterns that repeat. With no repetition it falls back to two generic
// suggestions. Patterns without a suggestion template (reviews, unmatched
// titles) repeat silently.
func Automate(tasks []task.Task) []Suggestion {
	// Count pattern frequencies, remembering first-occurrence order so the
	// output is deterministic.
	freq := map[string]int{}
	var order []string
	for _, t := range tasks {
		key := patternKey(t.Title)
		if freq[key] == 0 {
			order = append(order, key)
		}
		freq[key]++
	}

	var repetitive []string
	for _, key := range order {
		if freq[key] >= repetitionThreshold {
			repetitive = append(repetitive, key)
		}
	}

	if len(repetitive) == 0 {
		return []Suggestion{
			{
				Pattern:    "general_productivity",
				Suggestion: "Set up email templates for common responses",
				Tools:      []string{"Gmail templates", "Outlook Quick Parts"},
				TimeSaved:  "2-3 hours/week",
			},
			{
				Pattern:    "general_productivity",
				Suggestion: "Use calendar automation for recurring meetings",
				Tools:      []string{"Google Calendar", "Outlook Calendar"},
				TimeSaved:  "1-2 hours/week",
			},
		}
	}

	var suggestions []Suggestion
	for _, pattern := range repetitive {
		n := freq[pattern]
		switch pattern {
		case "email_tasks":
			suggestions = append(suggestions, Suggestion{
				Pattern:    pattern,
				Suggestion: "Create email templates and use email scheduling",
				Tools:      []string{"Gmail templates", "Boomerang", "Mixmax"},
				TimeSaved:  weeklyHours(float64(n) * 0.5),
			})
		case "meeting_tasks":
			suggestions = append(suggestions, Suggestion{
				Pattern:    pattern,
				Suggestion: "Use calendar automation and meeting templates",
				Tools:      []string{"Calendly", "Google Calendar", "Zoom"},
				TimeSaved:  weeklyHours(float64(n) * 0.25),
			})
		case "report_tasks":
			suggestions = append(suggestions, Suggestion{
				Pattern:    pattern,
				Suggestion: "Create report templates and automate data collection",
				Tools:      []string{"Shell scripts", "Excel macros", "Power BI"},
				TimeSaved:  weeklyHours(float64(n) * 1.0),
			})
		case "project_tasks":
			suggestions = append(suggestions, Suggestion{
				Pattern:    pattern,
				Suggestion: "Use project templates and automated workflows",
				Tools:      []string{"Notion templates", "Trello automation", "Zapier"},
				TimeSaved:  weeklyHours(float64(n) * 0.75),
			})
		case "preparation_tasks":
			suggestions = append(suggestions, Suggestion{
				Pattern:    pattern,
				Suggestion: "Create preparation checklists and templates",
				Tools:      []string{"Notion templates", "Todoist templates", "Google Docs"},
				TimeSaved:  weeklyHours(float64(n) * 0.5),
			})
		}
	}
	return suggestions
}

func weeklyHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + " hours/week"
}
