// Package tui provides a Bubble Tea dashboard for the daily plan.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/melisasvr/dayflow/internal/report"
)

// ── Styles ────────────

var (
	// Title bar at the very top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	// Active tab: bright, highlighted
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	// Inactive tab: muted
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	// Separator between tabs
	tabSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("235"))

	// Section heading inside a tab
	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	// Key=value label
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	bulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	urgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	breakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// ── Tab definitions ─────────────────

type tabID int

const (
	tabTasks tabID = iota
	tabFocus
	tabResources
	tabAutomation
	tabCount
)

var tabNames = [tabCount]string{
	"Tasks", "Focus", "Resources", "Automation",
}

// ── Model ────────────────────

// Model is the root Bubble Tea model for the plan dashboard.
type Model struct {
	report    report.Report
	activeTab tabID
	viewports [tabCount]viewport.Model
	width     int
	height    int
	ready     bool
}

// New creates a dashboard model for the given report.
func New(r report.Report) Model {
	return Model{report: r}
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "l", "right":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab", "h", "left":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case "1", "2", "3", "4":
			m.activeTab = tabID(msg.String()[0] - '1')
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 4 // title + tabs + status bar
		if contentHeight < 1 {
			contentHeight = 1
		}
		for i := range m.viewports {
			if !m.ready {
				m.viewports[i] = viewport.New(m.width, contentHeight)
			} else {
				m.viewports[i].Width = m.width
				m.viewports[i].Height = contentHeight
			}
			m.viewports[i].SetContent(m.renderTab(tabID(i)))
		}
		m.ready = true
	}

	var cmd tea.Cmd
	m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("dayflow — plan for %s", m.report.GeneratedAt.Format("2006-01-02")))

	var tabs []string
	for i, name := range tabNames {
		style := inactiveTabStyle
		if tabID(i) == m.activeTab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	tabBar := strings.Join(tabs, tabSepStyle.Render("│"))

	status := statusBarStyle.Render(hintStyle.Render("tab/←→ switch · ↑↓ scroll · q quit"))

	return strings.Join([]string{
		title,
		tabBar,
		m.viewports[m.activeTab].View(),
		status,
	}, "\n")
}

// ── Tab content ────────────────────

func (m Model) renderTab(id tabID) string {
	switch id {
	case tabTasks:
		return m.renderTasks()
	case tabFocus:
		return m.renderFocus()
	case tabResources:
		return m.renderResources()
	case tabAutomation:
		return m.renderAutomation()
	}
	return ""
}

func (m Model) renderTasks() string {
	var sb strings.Builder
	sb.WriteString(sectionHeader.Render("Top priority tasks") + "\n\n")
	if len(m.report.RankedTasks) == 0 {
		sb.WriteString(dimStyle.Render("No pending tasks.") + "\n")
		return sb.String()
	}
	for i, t := range m.report.RankedTasks {
		prio := t.Priority.String()
		switch prio {
		case "urgent":
			prio = urgentStyle.Render(prio)
		case "high":
			prio = highStyle.Render(prio)
		case "medium":
			prio = mediumStyle.Render(prio)
		default:
			prio = lowStyle.Render(prio)
		}
		fmt.Fprintf(&sb, "%s %d. %s  [%s]\n", bulletStyle.Render("•"), i+1, t.Title, prio)
		detail := fmt.Sprintf("   %s · est %.1fh · energy %d/10", t.ID, t.EstimatedHours, t.EnergyRequired)
		if t.Deadline != nil {
			detail += " · due " + t.Deadline.Format("2006-01-02 15:04")
		}
		sb.WriteString(dimStyle.Render(detail) + "\n")
		if len(t.Tags) > 0 {
			sb.WriteString(dimStyle.Render("   tags: "+strings.Join(t.Tags, ", ")) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderFocus() string {
	var sb strings.Builder
	sb.WriteString(sectionHeader.Render("Focus recommendations") + "\n\n")
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Optimal focus time:"), m.report.FocusWindow)
	if m.report.ShouldBreak {
		fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("Break:"), breakStyle.Render("take one now"))
	} else {
		fmt.Fprintf(&sb, "%s not needed yet\n", labelStyle.Render("Break:"))
	}
	sb.WriteString("\n" + sectionHeader.Render("Distraction tips") + "\n\n")
	for _, tip := range m.report.Tips {
		fmt.Fprintf(&sb, "%s %s\n", bulletStyle.Render("•"), tip)
	}
	return sb.String()
}

func (m Model) renderResources() string {
	var sb strings.Builder
	sb.WriteString(sectionHeader.Render("Resource suggestions") + "\n\n")
	if len(m.report.Resources) == 0 {
		sb.WriteString(dimStyle.Render("No suggestions.") + "\n")
		return sb.String()
	}
	for _, r := range m.report.Resources {
		fmt.Fprintf(&sb, "%s %s %s\n", bulletStyle.Render("•"), labelStyle.Render(r.Name), dimStyle.Render("("+r.Type+")"))
		sb.WriteString("   " + r.Description + "\n")
	}
	return sb.String()
}

func (m Model) renderAutomation() string {
	var sb strings.Builder
	sb.WriteString(sectionHeader.Render("Automation suggestions") + "\n\n")
	if len(m.report.Automation) == 0 {
		sb.WriteString(dimStyle.Render("No suggestions.") + "\n")
		return sb.String()
	}
	for _, a := range m.report.Automation {
		fmt.Fprintf(&sb, "%s %s\n", bulletStyle.Render("•"), a.Suggestion)
		sb.WriteString(dimStyle.Render("   tools: "+strings.Join(a.Tools, ", ")) + "\n")
		sb.WriteString(dimStyle.Render("   time saved: "+a.TimeSaved) + "\n")
	}
	return sb.String()
}

// Run starts the dashboard for the given report.
func Run(r report.Report) error {
	p := tea.NewProgram(New(r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
