// Package advisor provides static resource and automation suggestions keyed
// by task tags and title patterns. It is lookup-table territory, with no
// state and no learning.
package advisor

import "strings"

// maxResources caps the number of resources returned per report.
const maxResources = 5

// Resource is a tool, book, technique, or platform suggested for a tag.
type Resource struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// catalog maps a lowercase task tag to its suggested resources.
var catalog = map[string][]Resource{
	"productivity": {
		{Name: "Notion", Type: "tool", Description: "All-in-one workspace"},
		{Name: "Todoist", Type: "tool", Description: "Task management"},
		{Name: "Getting Things Done", Type: "book", Description: "Productivity methodology"},
	},
	"time_management": {
		{Name: "RescueTime", Type: "tool", Description: "Time tracking"},
		{Name: "Forest", Type: "app", Description: "Focus timer with gamification"},
		{Name: "Pomodoro Timer", Type: "technique", Description: "25-minute focused work sessions"},
	},
	"automation": {
		{Name: "Zapier", Type: "tool", Description: "Workflow automation"},
		{Name: "IFTTT", Type: "tool", Description: "Simple automation"},
		{Name: "Shell scripts", Type: "skill", Description: "Custom automation solutions"},
	},
	"learning": {
		{Name: "Coursera", Type: "platform", Description: "Online courses"},
		{Name: "YouTube", Type: "platform", Description: "Free tutorials"},
		{Name: "Stack Overflow", Type: "community", Description: "Programming Q&A"},
	},
	"writing": {
		{Name: "Grammarly", Type: "tool", Description: "Writing assistant"},
		{Name: "Hemingway Editor", Type: "tool", Description: "Writing clarity tool"},
		{Name: "Notion", Type: "tool", Description: "Document creation and organization"},
	},
	"project": {
		{Name: "Trello", Type: "tool", Description: "Project management boards"},
		{Name: "Asana", Type: "tool", Description: "Team project management"},
		{Name: "Monday.com", Type: "tool", Description: "Work management platform"},
	},
	"deadline": {
		{Name: "Calendar blocking", Type: "technique", Description: "Block time for important deadlines"},
		{Name: "Todoist", Type: "tool", Description: "Deadline tracking and reminders"},
		{Name: "TimeTree", Type: "app", Description: "Shared calendar for deadlines"},
	},
	"email": {
		{Name: "Boomerang", Type: "tool", Description: "Email scheduling and reminders"},
		{Name: "Mixmax", Type: "tool", Description: "Email productivity suite"},
		{Name: "Gmail filters", Type: "technique", Description: "Automatic email organization"},
	},
	"communication": {
		{Name: "Slack", Type: "tool", Description: "Team communication"},
		{Name: "Microsoft Teams", Type: "tool", Description: "Video conferencing and chat"},
		{Name: "Loom", Type: "tool", Description: "Video messaging"},
	},
	"meeting": {
		{Name: "Calendly", Type: "tool", Description: "Meeting scheduling"},
		{Name: "Zoom", Type: "tool", Description: "Video conferencing"},
		{Name: "Otter.ai", Type: "tool", Description: "Meeting transcription"},
	},
	"preparation": {
		{Name: "MindMeister", Type: "tool", Description: "Mind mapping for preparation"},
		{Name: "Miro", Type: "tool", Description: "Collaborative whiteboard"},
		{Name: "OneNote", Type: "tool", Description: "Note organization"},
	},
}

// Recommend returns resources for the given task tags, joined in tag order.
// Unknown tags contribute nothing. When no tag matches, the general
// productivity set is used. Duplicates (by name) are dropped and the result
// is capped at five entries.
func Recommend(tags []string) []Resource {
	var matched []Resource
	for _, tag := range tags {
		matched = append(matched, catalog[strings.ToLower(tag)]...)
	}
	if len(matched) == 0 {
		matched = catalog["productivity"]
	}

	seen := make(map[string]bool, len(matched))
	out := make([]Resource, 0, maxResources)
	for _, r := range matched {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		out = append(out, r)
		if len(out) == maxResources {
			break
		}
	}
	return out
}
