package internal

import (
	"fmt"
	"strings"

	"flowsync/internal/insight"
	"flowsync/internal/meeting"
	"flowsync/internal/meta"
	"flowsync/internal/seed"
	"flowsync/internal/styles"
	"flowsync/internal/task"
	"flowsync/internal/timer"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 100
	minWidth     = 72
	columnGap    = 2
	chartWidth   = 24
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(styles.Muted)

	clockStyle = lipgloss.NewStyle().
			Bold(true)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Border).
			Padding(0, 1)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(styles.Purple).
			Padding(0, 1)

	timerDisplayStyle = lipgloss.NewStyle().
				Bold(true)

	timerRunningStyle = lipgloss.NewStyle().
				Foreground(styles.Green).
				Bold(true)

	startButtonStyle = lipgloss.NewStyle().
				Foreground(styles.Green).
				Bold(true)

	pauseButtonStyle = lipgloss.NewStyle().
				Foreground(styles.Red).
				Bold(true)

	addButtonStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	taskTitleStyle = lipgloss.NewStyle()

	taskDoneStyle = lipgloss.NewStyle().
			Foreground(styles.Gray).
			Strikethrough(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	aiBadgeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple)

	optimizedBadgeStyle = lipgloss.NewStyle().
				Foreground(styles.Green)

	meetingTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(styles.Blue).
				PaddingLeft(1)

	recommendationStyle = lipgloss.NewStyle().
				Foreground(styles.Blue)

	helpStyle = lipgloss.NewStyle().
			Foreground(styles.Muted)
)

func (m *Model) View() string {
	width := max(m.Width, minWidth)
	rightWidth := width / 3
	leftWidth := width - rightWidth - columnGap

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.focusTimerView(leftWidth),
		m.taskListView(leftWidth),
		m.chartView(leftWidth),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		meetingsView(m.Meetings, rightWidth),
		m.statsView(rightWidth),
		recommendationsView(insight.Recommendations(m.Insights), rightWidth),
	)

	var sb strings.Builder
	sb.WriteString(m.headerView(width))
	sb.WriteString("\n")
	sb.WriteString(bannerView(insight.Banner(m.Insights), width))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", columnGap), right))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return sb.String()
}

func (m *Model) headerView(width int) string {
	brand := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(meta.AppName),
		subtleStyle.Render(meta.Tagline),
	)
	clock := lipgloss.JoinVertical(lipgloss.Right,
		subtleStyle.Render("Current Time"),
		clockStyle.Render(m.Now.Format("3:04:05 PM")),
	)

	gap := max(width-lipgloss.Width(brand)-lipgloss.Width(clock), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, brand, strings.Repeat(" ", gap), clock)
}

func bannerView(insights []string, width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("⚡ AI Productivity Insights"))
	for _, text := range insights {
		sb.WriteString("\n• ")
		sb.WriteString(text)
	}
	return bannerStyle.Width(width - 2).Render(sb.String())
}

func (m *Model) focusTimerView(width int) string {
	button := startButtonStyle.Render("[▶ Start]")
	display := timerDisplayStyle
	if m.Timer.Running() {
		button = pauseButtonStyle.Render("[⏸ Pause]")
		display = timerRunningStyle
	}

	header := spread(panelTitleStyle.Render("Focus Timer"), button, width-4)
	body := lipgloss.JoinVertical(lipgloss.Center,
		display.Render(timer.Format(m.Timer.Elapsed())),
		subtleStyle.Render("Deep work session"),
	)
	body = lipgloss.PlaceHorizontal(width-4, lipgloss.Center, body)

	return boxStyle.Width(width - 2).Render(header + "\n" + body)
}

func (m *Model) taskListView(width int) string {
	var sb strings.Builder
	sb.WriteString(spread(
		panelTitleStyle.Render("Smart Task Management"),
		addButtonStyle.Render("[+ Add Task]"),
		width-4,
	))

	for i, t := range m.Tasks {
		sb.WriteString("\n")
		sb.WriteString(taskLine(t, i == m.Cursor))
	}

	return boxStyle.Width(width - 2).Render(sb.String())
}

func taskLine(t task.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = selectedStyle.Render("> ")
	}

	check := "[ ]"
	title := taskTitleStyle.Render(t.Title)
	if t.Completed {
		check = "[x]"
		title = taskDoneStyle.Render(t.Title)
	}

	line := fmt.Sprintf("%s%s %s", cursor, check, title)
	if t.AISuggested {
		line += " " + aiBadgeStyle.Render("✦ AI Suggested")
	}

	badge := styles.Priority(string(t.Priority)).Badge().Render(strings.ToUpper(string(t.Priority)))
	line += fmt.Sprintf("\n      %s %s", badge, subtleStyle.Render(fmt.Sprintf("%d min", t.EstimatedMinutes)))
	return line
}

func (m *Model) chartView(width int) string {
	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render("Weekly Productivity"))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(styles.Blue).Render("■ focus"))
	sb.WriteString("  ")
	sb.WriteString(lipgloss.NewStyle().Foreground(styles.Green).Render("■ tasks"))
	sb.WriteString("\n")
	sb.WriteString(chart(m.Productivity, chartWidth))

	return boxStyle.Width(width - 2).Render(sb.String())
}

// chart draws one focus bar and one tasks bar per day, scaled to the
// largest value in the series.
func chart(series insight.Series, barWidth int) string {
	scale := series.MaxValue()
	if scale == 0 {
		return ""
	}

	focusBar := lipgloss.NewStyle().Foreground(styles.Blue)
	tasksBar := lipgloss.NewStyle().Foreground(styles.Green)

	lines := make([]string, 0, len(series)*2)
	for _, p := range series {
		lines = append(lines,
			fmt.Sprintf("%-3s %s %d", p.Name, focusBar.Render(bar(p.Focus, scale, barWidth)), p.Focus),
			fmt.Sprintf("    %s %d", tasksBar.Render(bar(p.Tasks, scale, barWidth)), p.Tasks),
		)
	}
	return strings.Join(lines, "\n")
}

func bar(value, scale, width int) string {
	n := value * width / scale
	if value > 0 && n == 0 {
		n = 1
	}
	n = min(max(n, 0), width)
	return strings.Repeat("█", n) + strings.Repeat(" ", width-n)
}

func meetingsView(meetings []meeting.Meeting, width int) string {
	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render("Today's Meetings"))

	for _, mt := range meetings {
		title := mt.Title
		if mt.AIOptimized {
			title += " " + optimizedBadgeStyle.Render("⚡ Optimized")
		}
		details := subtleStyle.Render(fmt.Sprintf("%s  %d min  %d people", mt.Time, mt.DurationMinutes, mt.Participants))
		sb.WriteString("\n")
		sb.WriteString(meetingTitleStyle.Render(title + "\n" + details))
	}

	return boxStyle.Width(width - 2).Render(sb.String())
}

func (m *Model) statsView(width int) string {
	inner := width - 4
	rows := []string{
		panelTitleStyle.Render("Today's Stats"),
		spread("Tasks Completed", lipgloss.NewStyle().Foreground(styles.Green).Bold(true).Render(seed.TasksCompletedLabel), inner),
		spread("Focus Time", lipgloss.NewStyle().Foreground(styles.Blue).Bold(true).Render(timer.Format(m.Timer.Elapsed())), inner),
		spread("Meetings Today", lipgloss.NewStyle().Foreground(styles.Purple).Bold(true).Render(fmt.Sprint(len(m.Meetings))), inner),
		spread("Productivity Score", lipgloss.NewStyle().Foreground(styles.Orange).Bold(true).Render(fmt.Sprintf("%d%%", seed.ProductivityScore)), inner),
	}
	return boxStyle.Width(width - 2).Render(strings.Join(rows, "\n"))
}

func recommendationsView(recos []string, width int) string {
	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render("AI Recommendations"))
	for _, r := range recos {
		sb.WriteString("\n")
		sb.WriteString(recommendationStyle.Width(width - 4).Render(r))
	}
	return boxStyle.Width(width - 2).Render(sb.String())
}

// spread places left and right at opposite ends of a line of the given width.
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
