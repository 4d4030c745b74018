// Package tui is the terminal render sink and gesture source for the
// weekly grid: it draws the schedule, translates key presses into
// controller gestures, and hosts the modal event editor.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weekgrid/internal/grid"
	"weekgrid/internal/model"
	"weekgrid/internal/timefmt"
)

type mode int

const (
	modeGrid mode = iota
	modeEditor
)

type focusField int

const (
	fieldTitle focusField = iota
	fieldDays
	fieldStart
	fieldEnd
	fieldColor
	fieldCount
)

// dismissNoticeMsg fires when the active toast's display time elapses.
type dismissNoticeMsg struct {
	seq int
}

// Model is the bubbletea model for the schedule editor.
type Model struct {
	ctrl  *grid.Controller
	days  []string
	hours []int

	mode    mode
	curDay  int
	curHour int

	// Editor form state.
	titleInput textinput.Model
	startInput textinput.Model
	endInput   textinput.Model
	daysSel    []string
	dayCursor  int
	colorIdx   int
	focus      focusField
	editingID  string

	// Last committed time values, restored when free-text entry has no
	// digits at all.
	lastGoodStart string
	lastGoodEnd   string

	palette []string
	width   int
	height  int
}

// New builds the TUI model over a controller.
func New(ctrl *grid.Controller, palette []string) Model {
	b := ctrl.Bounds()
	hours := make([]int, 0, b.EndHour-b.StartHour+1)
	for h := b.StartHour; h <= b.EndHour; h++ {
		hours = append(hours, h)
	}

	title := textinput.New()
	title.Placeholder = "e.g. Deep Work Session"
	title.CharLimit = 60
	title.Width = 32

	start := textinput.New()
	start.Placeholder = "9:00 or 2pm"
	start.CharLimit = 8
	start.Width = 12

	end := textinput.New()
	end.Placeholder = "10:00"
	end.CharLimit = 8
	end.Width = 12

	return Model{
		ctrl:       ctrl,
		days:       ctrl.Days(),
		hours:      hours,
		titleInput: title,
		startInput: start,
		endInput:   end,
		palette:    palette,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dismissNoticeMsg:
		m.ctrl.DismissNotice(msg.seq)
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeEditor {
			return m.updateEditor(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.curHour > 0 {
			m.curHour--
		}
	case "down", "j":
		if m.curHour < len(m.hours)-1 {
			m.curHour++
		}
	case "left", "h":
		if m.curDay > 0 {
			m.curDay--
		}
	case "right", "l":
		if m.curDay < len(m.days)-1 {
			m.curDay++
		}

	case "enter":
		day := m.days[m.curDay]
		hour := m.hours[m.curHour]
		if events := m.ctrl.EventsAt(day, hour); len(events) > 0 {
			m.ctrl.ClickEvent(events[0].ID)
		} else {
			m.ctrl.ClickCell(day, hour)
		}
		return m.openEditor()

	case "a":
		m.ctrl.OpenAdd()
		return m.openEditor()

	case "s":
		m.ctrl.Save()
		return m, m.noticeCmd()
	case "o":
		m.ctrl.Load()
		return m, m.noticeCmd()
	case "x":
		m.ctrl.ClearAll()
		return m, m.noticeCmd()
	case "i":
		m.ctrl.ExportICS(time.Now())
		return m, m.noticeCmd()
	}
	return m, nil
}

// openEditor pulls the controller's draft into the form fields.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	if !m.ctrl.EditorOpen() {
		return m, nil
	}
	d := m.ctrl.Draft()

	m.titleInput.SetValue(d.Title)
	m.startInput.SetValue(d.StartTime)
	m.endInput.SetValue(d.EndTime)
	m.daysSel = append([]string(nil), d.Days...)
	m.dayCursor = 0
	m.colorIdx = indexOf(m.palette, d.Color)
	m.editingID = d.EditingID
	m.lastGoodStart = d.StartTime
	m.lastGoodEnd = d.EndTime

	m.mode = modeEditor
	m.focus = fieldTitle
	m.titleInput.Focus()
	m.startInput.Blur()
	m.endInput.Blur()
	return m, textinput.Blink
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.ctrl.Cancel()
		m.mode = modeGrid
		return m, nil

	case "ctrl+d":
		m.ctrl.DeleteEditing()
		m.mode = modeGrid
		return m, m.noticeCmd()

	case "tab":
		return m.cycleFocus(1), nil
	case "shift+tab":
		return m.cycleFocus(-1), nil

	case "enter":
		return m.submit()
	}

	switch m.focus {
	case fieldTitle:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd

	case fieldDays:
		switch msg.String() {
		case "left", "h":
			if m.dayCursor > 0 {
				m.dayCursor--
			}
		case "right", "l":
			if m.dayCursor < len(m.days)-1 {
				m.dayCursor++
			}
		case " ":
			m.daysSel = toggleDay(m.daysSel, m.days[m.dayCursor])
		}
		return m, nil

	case fieldStart, fieldEnd:
		input := &m.startInput
		if m.focus == fieldEnd {
			input = &m.endInput
		}
		switch msg.String() {
		case "up":
			input.SetValue(m.adjacentSlot(input.Value(), -1))
			return m, nil
		case "down":
			input.SetValue(m.adjacentSlot(input.Value(), 1))
			return m, nil
		}
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return m, cmd

	case fieldColor:
		switch msg.String() {
		case "left", "h":
			if m.colorIdx > 0 {
				m.colorIdx--
			}
		case "right", "l":
			if m.colorIdx < len(m.palette)-1 {
				m.colorIdx++
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) cycleFocus(dir int) Model {
	// Leaving a time field commits its free-text value.
	m.commitTimeField()

	m.focus = focusField((int(m.focus) + dir + int(fieldCount)) % int(fieldCount))

	m.titleInput.Blur()
	m.startInput.Blur()
	m.endInput.Blur()
	switch m.focus {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldStart:
		m.startInput.Focus()
	case fieldEnd:
		m.endInput.Focus()
	}
	return m
}

// commitTimeField parses the focused time field's free text. Input with
// no digits reverts to the last known-good value; everything else
// commits, clamped if out of range.
func (m *Model) commitTimeField() {
	switch m.focus {
	case fieldStart:
		if v, _, ok := timefmt.ParseFreeText(m.startInput.Value()); ok {
			m.lastGoodStart = v
			m.startInput.SetValue(v)
		} else {
			m.startInput.SetValue(m.lastGoodStart)
		}
	case fieldEnd:
		if v, _, ok := timefmt.ParseFreeText(m.endInput.Value()); ok {
			m.lastGoodEnd = v
			m.endInput.SetValue(v)
		} else {
			m.endInput.SetValue(m.lastGoodEnd)
		}
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.commitTimeField()

	if m.titleInput.Value() == "" {
		// An empty title never commits; keep the user on the title
		// input until one is entered.
		m.focus = fieldTitle
		m.titleInput.Focus()
		m.startInput.Blur()
		m.endInput.Blur()
		return m, nil
	}

	d := model.Draft{
		Title:     m.titleInput.Value(),
		Days:      append([]string(nil), m.daysSel...),
		StartTime: m.startInput.Value(),
		EndTime:   m.endInput.Value(),
		Color:     m.currentColor(),
		EditingID: m.editingID,
	}
	if err := m.ctrl.Submit(d); err == nil {
		m.mode = modeGrid
	}
	return m, m.noticeCmd()
}

// adjacentSlot returns the 30-minute suggestion before or after the
// field's current value.
func (m Model) adjacentSlot(current string, dir int) string {
	slots := m.ctrl.Slots()
	if len(slots) == 0 {
		return current
	}

	idx := 0
	if v, _, ok := timefmt.ParseFreeText(current); ok {
		mins := timefmt.ToMinutes(v)
		for i, s := range slots {
			if timefmt.ToMinutes(s.Value) <= mins {
				idx = i
			}
		}
	}

	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx > len(slots)-1 {
		idx = len(slots) - 1
	}
	return slots[idx].Value
}

func (m Model) currentColor() string {
	if len(m.palette) == 0 {
		return ""
	}
	if m.colorIdx < 0 || m.colorIdx >= len(m.palette) {
		return m.palette[0]
	}
	return m.palette[m.colorIdx]
}

// noticeCmd schedules auto-dismissal for the active notice.
func (m Model) noticeCmd() tea.Cmd {
	n := m.ctrl.Notice()
	if n == nil {
		return nil
	}
	seq := n.Seq
	return tea.Tick(n.Duration, func(time.Time) tea.Msg {
		return dismissNoticeMsg{seq: seq}
	})
}

func toggleDay(sel []string, day string) []string {
	for i, d := range sel {
		if d == day {
			return append(sel[:i], sel[i+1:]...)
		}
	}
	return append(sel, day)
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return 0
}
