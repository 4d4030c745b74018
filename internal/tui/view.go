package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weekgrid/internal/grid"
	"weekgrid/internal/layout"
	"weekgrid/internal/timefmt"
)

const (
	labelWidth = 10
	cellWidth  = 14
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Faint(true).
			Width(labelWidth).
			Align(lipgloss.Right).
			PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(1)

	cursorStyle = cellStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7"))

	helpStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1")).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	fieldLabelStyle = lipgloss.NewStyle().Bold(true)

	focusMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Render("> ")
)

func (m Model) View() string {
	if m.mode == modeEditor {
		return m.viewEditor()
	}
	return m.viewGrid()
}

func (m Model) viewGrid() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Weekly Schedule"))
	b.WriteString("\n\n")

	// Header row: corner spacer then day labels.
	row := []string{labelStyle.Render("")}
	for _, day := range m.days {
		row = append(row, headerStyle.Render(day))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
	b.WriteString("\n")

	for hi, hour := range m.hours {
		row = row[:0]
		row = append(row, labelStyle.Render(timefmt.To12Hour(timefmt.FromMinutes(hour*60))))
		for di, day := range m.days {
			row = append(row, m.renderCell(day, hour, di == m.curDay && hi == m.curHour))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewNotice())
	b.WriteString(helpStyle.Render(
		"arrows move · enter add/edit · a new · s save · o load · x clear · i export ics · q quit"))
	return b.String()
}

// renderCell renders the (day, hour) cell: the first event starting
// there, or empty space. Events spanning several rows are marked so
// the overflow is visible even though the cell grid is one row tall.
func (m Model) renderCell(day string, hour int, selected bool) string {
	events := m.ctrl.EventsAt(day, hour)

	style := cellStyle
	content := ""
	if len(events) > 0 {
		ev := events[0]
		content = ev.Title
		if p := layout.Layout(ev); p.HeightFraction > 1 {
			content += " ↧"
		}
		if len(events) > 1 {
			content += fmt.Sprintf(" (+%d)", len(events)-1)
		}
		content = truncate(content, cellWidth-1)
		style = style.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(ev.Color))
	}
	if selected {
		style = cursorStyle
		if content == "" {
			content = "·"
		}
	}
	return style.Render(" " + content)
}

func (m Model) viewEditor() string {
	var b strings.Builder

	heading := "Add Event"
	if m.editingID != "" {
		heading = "Edit Event"
	}
	b.WriteString(fieldLabelStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLine(fieldTitle, "Title"))
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLine(fieldDays, "Days"))
	b.WriteString(m.viewDayToggles())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLine(fieldStart, "Start"))
	b.WriteString(m.startInput.View())
	b.WriteString("   ")
	b.WriteString(m.fieldLine(fieldEnd, "End"))
	b.WriteString(m.endInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLine(fieldColor, "Color"))
	b.WriteString(m.viewSwatches())
	b.WriteString("\n")

	body := modalStyle.Render(b.String())

	var out strings.Builder
	out.WriteString(body)
	out.WriteString("\n")
	out.WriteString(m.viewNotice())
	help := "tab next field · space toggle day · ↑/↓ suggest time · enter save · esc cancel"
	if m.editingID != "" {
		help += " · ctrl+d delete"
	}
	out.WriteString(helpStyle.Render(help))
	return out.String()
}

func (m Model) fieldLine(f focusField, label string) string {
	marker := "  "
	if m.focus == f {
		marker = focusMarker
	}
	return marker + fieldLabelStyle.Render(label) + ": "
}

func (m Model) viewDayToggles() string {
	parts := make([]string, 0, len(m.days))
	for i, day := range m.days {
		box := "[ ]"
		for _, sel := range m.daysSel {
			if sel == day {
				box = "[x]"
				break
			}
		}
		entry := box + " " + day
		if m.focus == fieldDays && i == m.dayCursor {
			entry = lipgloss.NewStyle().Reverse(true).Render(entry)
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewSwatches() string {
	parts := make([]string, 0, len(m.palette))
	for i, col := range m.palette {
		sw := lipgloss.NewStyle().Background(lipgloss.Color(col)).Render("  ")
		if i == m.colorIdx {
			sw = lipgloss.NewStyle().Background(lipgloss.Color(col)).Render("··")
		}
		parts = append(parts, sw)
	}
	return strings.Join(parts, " ")
}

func (m Model) viewNotice() string {
	n := m.ctrl.Notice()
	if n == nil {
		return "\n"
	}
	style := errorStyle
	if n.Kind == grid.NoticeSuccess {
		style = successStyle
	}
	return style.Render(n.Message) + "\n"
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
