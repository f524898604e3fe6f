package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Renderer serializes a Report to bytes.
type Renderer interface {
	Render(r *Report) ([]byte, error)
}

// JSONRenderer renders a Report as indented JSON.
type JSONRenderer struct{}

func (jr *JSONRenderer) Render(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// TextRenderer renders a Report as a plain-text terminal summary.
type TextRenderer struct{}

func (tr *TextRenderer) Render(r *Report) ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Daily plan — %s\n\n", r.GeneratedAt.Format("2006-01-02"))

	sb.WriteString("## Top Priority Tasks\n")
	if len(r.RankedTasks) == 0 {
		sb.WriteString("  (none pending)\n")
	} else {
		for i, t := range r.RankedTasks {
			fmt.Fprintf(&sb, "  %d. %s (priority: %s, est: %sh)\n",
				i+1, t.Title, t.Priority, formatHours(t.EstimatedHours))
			if t.Deadline != nil {
				fmt.Fprintf(&sb, "     due %s\n", t.Deadline.Format("2006-01-02 15:04"))
			}
		}
	}
	sb.WriteString("\n")

	sb.WriteString("## Focus\n")
	fmt.Fprintf(&sb, "  Optimal focus time: %s\n", r.FocusWindow)
	fmt.Fprintf(&sb, "  Should take break:  %t\n", r.ShouldBreak)
	sb.WriteString("  Distraction tips:\n")
	for _, tip := range r.Tips {
		fmt.Fprintf(&sb, "    - %s\n", tip)
	}
	sb.WriteString("\n")

	sb.WriteString("## Resources\n")
	if len(r.Resources) == 0 {
		sb.WriteString("  (none)\n")
	} else {
		for _, res := range r.Resources {
			fmt.Fprintf(&sb, "  - %s (%s): %s\n", res.Name, res.Type, res.Description)
		}
	}
	sb.WriteString("\n")

	sb.WriteString("## Automation\n")
	if len(r.Automation) == 0 {
		sb.WriteString("  (none)\n")
	} else {
		for _, a := range r.Automation {
			fmt.Fprintf(&sb, "  - %s\n", a.Suggestion)
			fmt.Fprintf(&sb, "    tools: %s\n", strings.Join(a.Tools, ", "))
			fmt.Fprintf(&sb, "    time saved: %s\n", a.TimeSaved)
		}
	}

	return []byte(sb.String()), nil
}

// MarkdownRenderer renders a Report as shareable Markdown.
type MarkdownRenderer struct{}

func (mr *MarkdownRenderer) Render(r *Report) ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Daily plan — %s\n\n", r.GeneratedAt.Format("2006-01-02"))

	sb.WriteString("## Top Priority Tasks\n\n")
	if len(r.RankedTasks) == 0 {
		sb.WriteString("_No pending tasks._\n")
	} else {
		sb.WriteString("| # | Task | Priority | Est. hours | Due |\n")
		sb.WriteString("|---|------|----------|-----------|-----|\n")
		for i, t := range r.RankedTasks {
			due := "—"
			if t.Deadline != nil {
				due = t.Deadline.Format("2006-01-02")
			}
			fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s |\n",
				i+1, t.Title, t.Priority, formatHours(t.EstimatedHours), due)
		}
	}
	sb.WriteString("\n")

	sb.WriteString("## Focus\n\n")
	fmt.Fprintf(&sb, "- Optimal focus time: %s\n", r.FocusWindow)
	fmt.Fprintf(&sb, "- Should take break: %t\n", r.ShouldBreak)
	for _, tip := range r.Tips {
		fmt.Fprintf(&sb, "- Tip: %s\n", tip)
	}
	sb.WriteString("\n")

	sb.WriteString("## Resources\n\n")
	if len(r.Resources) == 0 {
		sb.WriteString("_No suggestions._\n")
	} else {
		for _, res := range r.Resources {
			fmt.Fprintf(&sb, "- **%s** (%s): %s\n", res.Name, res.Type, res.Description)
		}
	}
	sb.WriteString("\n")

	sb.WriteString("## Automation\n\n")
	if len(r.Automation) == 0 {
		sb.WriteString("_No suggestions._\n")
	} else {
		for _, a := range r.Automation {
			fmt.Fprintf(&sb, "- %s (tools: %s; time saved: %s)\n",
				a.Suggestion, strings.Join(a.Tools, ", "), a.TimeSaved)
		}
	}

	return []byte(sb.String()), nil
}

// ByFormat returns the renderer for a format name. Unknown names fall back
// to plain text.
func ByFormat(format string) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{}
	case "markdown":
		return &MarkdownRenderer{}
	default:
		return &TextRenderer{}
	}
}

// formatHours renders estimated hours without trailing zeros ("0.5", "4").
func formatHours(h float64) string {
	s := fmt.Sprintf("%.2f", h)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
