package advisor_test

import (
	"strings"
	"testing"

	"github.com/melisasvr/dayflow/internal/advisor"
	"github.com/melisasvr/dayflow/internal/task"
)

func titled(titles ...string) []task.Task {
	tasks := make([]task.Task, len(titles))
	for i, title := range titles {
		tasks[i] = task.Task{ID: "task_" + title, Title: title, Status: task.StatusPending}
	}
	return tasks
}

func TestRecommendJoinsTagsInOrder(t *testing.T) {
	got := advisor.Recommend([]string{"writing", "email"})
	if len(got) != 5 {
		t.Fatalf("Recommend returned %d resources, want 5 (capped)", len(got))
	}
	// Writing entries come first, then email fills the remaining slots.
	if got[0].Name != "Grammarly" {
		t.Errorf("first resource = %s, want Grammarly", got[0].Name)
	}
	if got[3].Name != "Boomerang" {
		t.Errorf("fourth resource = %s, want Boomerang", got[3].Name)
	}
}

func TestRecommendDeduplicatesByName(t *testing.T) {
	// Notion appears under both writing and productivity.
	got := advisor.Recommend([]string{"writing", "productivity"})
	seen := map[string]int{}
	for _, r := range got {
		seen[r.Name]++
	}
	if seen["Notion"] != 1 {
		t.Errorf("Notion appeared %d times, want 1", seen["Notion"])
	}
}

func TestRecommendFallsBackToProductivity(t *testing.T) {
	got := advisor.Recommend([]string{"gardening"})
	if len(got) != 3 {
		t.Fatalf("Recommend returned %d resources, want the 3 productivity defaults", len(got))
	}
	if got[0].Name != "Notion" {
		t.Errorf("fallback should start with Notion, got %s", got[0].Name)
	}
}

func TestRecommendEmptyTagsFallsBack(t *testing.T) {
	got := advisor.Recommend(nil)
	if len(got) == 0 {
		t.Error("Recommend(nil) returned nothing; want the productivity defaults")
	}
}

func TestAutomateGenericWhenNothingRepeats(t *testing.T) {
	got := advisor.Automate(titled("Write novel", "Walk dog"))
	if len(got) != 2 {
		t.Fatalf("Automate returned %d suggestions, want 2 generic ones", len(got))
	}
	for _, s := range got {
		if s.Pattern != "general_productivity" {
			t.Errorf("pattern = %s, want general_productivity", s.Pattern)
		}
	}
}

func TestAutomateRepetitiveEmailTasks(t *testing.T) {
	got := advisor.Automate(titled(
		"Review email inbox",
		"Email the quarterly update",
		"Email follow-ups",
	))
	if len(got) != 1 {
		t.Fatalf("Automate returned %d suggestions, want 1", len(got))
	}
	s := got[0]
	if s.Pattern != "email_tasks" {
		t.Errorf("pattern = %s, want email_tasks", s.Pattern)
	}
	if s.TimeSaved != "1.5 hours/week" {
		t.Errorf("time saved = %q, want \"1.5 hours/week\" (3 × 0.5)", s.TimeSaved)
	}
}

// Review tasks repeat but have no suggestion template, so repetition without
// a template yields an empty result rather than the generic fallback.
func TestAutomateTemplatelessPatternYieldsNothing(t *testing.T) {
	got := advisor.Automate(titled("Review budget", "Review roadmap"))
	if len(got) != 0 {
		t.Errorf("Automate returned %d suggestions, want 0", len(got))
	}
}

func TestPatternKeyOrder(t *testing.T) {
	// "review" outranks "project" in the keyword match order.
	got := advisor.Automate(titled(
		"Weekly project status review",
		"Monthly project plan review",
	))
	if len(got) != 0 {
		t.Errorf("review-classified tasks produced %d suggestions, want 0", len(got))
	}

	got = advisor.Automate(titled(
		"Project kickoff",
		"Project retrospective",
	))
	if len(got) != 1 || got[0].Pattern != "project_tasks" {
		t.Errorf("Automate = %+v, want one project_tasks suggestion", got)
	}
}

func TestAutomateMixedPatternsKeepFirstOccurrenceOrder(t *testing.T) {
	got := advisor.Automate(titled(
		"Team meeting preparation notes", // meeting (keyword order: meeting before preparation)
		"Email inbox sweep",
		"Client meeting agenda",
		"Email newsletter",
	))
	if len(got) != 2 {
		t.Fatalf("Automate returned %d suggestions, want 2", len(got))
	}
	if got[0].Pattern != "meeting_tasks" || got[1].Pattern != "email_tasks" {
		t.Errorf("suggestion order = [%s, %s], want [meeting_tasks, email_tasks]",
			got[0].Pattern, got[1].Pattern)
	}
	if !strings.Contains(got[0].TimeSaved, "0.5 hours/week") {
		t.Errorf("meeting time saved = %q, want 0.5 hours/week (2 × 0.25)", got[0].TimeSaved)
	}
}
