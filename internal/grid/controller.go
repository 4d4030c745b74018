// Package grid orchestrates user gestures against the event store: it
// owns the editor's open/closed state machine, draft validation, and
// the active notification.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"weekgrid/internal/ics"
	"weekgrid/internal/layout"
	applog "weekgrid/internal/log"
	"weekgrid/internal/model"
	"weekgrid/internal/schedule"
	"weekgrid/internal/timefmt"
)

// Validation failures, checked in this order on submit. The first
// failing rule blocks the mutation; the store is never touched.
var (
	ErrTimeOutOfBounds  = errors.New("time is outside the schedule hours")
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrNoDaySelected    = errors.New("select at least one day")
)

// NoticeKind classifies a notification.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient toast-style notification. Seq distinguishes
// notices so a delayed dismissal cannot clear a newer one.
type Notice struct {
	Message  string
	Kind     NoticeKind
	Duration time.Duration
	Seq      int
}

// Options configures a Controller.
type Options struct {
	Days          []string
	Bounds        model.Bounds
	Palette       []string
	ToastDuration time.Duration
	SchedulePath  string

	// Rand drives the random palette pick; nil uses a time-seeded
	// source.
	Rand *rand.Rand
}

// Controller mediates between gestures, the store, and the file
// service. All methods run to completion on the calling goroutine.
type Controller struct {
	days          []string
	bounds        model.Bounds
	palette       []string
	toastDuration time.Duration
	schedulePath  string
	rng           *rand.Rand

	store *schedule.Store
	files *schedule.Files

	editorOpen bool
	draft      model.Draft

	notice    *Notice
	noticeSeq int
}

// New returns a Controller over the given store and file service.
func New(opts Options, store *schedule.Store, files *schedule.Files) *Controller {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	toast := opts.ToastDuration
	if toast <= 0 {
		toast = 4 * time.Second
	}
	path := opts.SchedulePath
	if path == "" {
		path = schedule.DefaultFileName
	}
	return &Controller{
		days:          opts.Days,
		bounds:        opts.Bounds,
		palette:       opts.Palette,
		toastDuration: toast,
		schedulePath:  path,
		rng:           rng,
		store:         store,
		files:         files,
	}
}

// Days returns the configured day labels.
func (c *Controller) Days() []string {
	return c.days
}

// Bounds returns the configured hour range.
func (c *Controller) Bounds() model.Bounds {
	return c.bounds
}

// Slots returns the time-suggestion dropdown entries.
func (c *Controller) Slots() []timefmt.Slot {
	return timefmt.Slots(c.bounds.StartHour, c.bounds.EndHour)
}

// EditorOpen reports whether the editor modal is open.
func (c *Controller) EditorOpen() bool {
	return c.editorOpen
}

// Draft returns the current editor seed state.
func (c *Controller) Draft() model.Draft {
	return c.draft
}

// Events returns the full event set snapshot.
func (c *Controller) Events() []model.Event {
	return c.store.Events()
}

// EventsAt returns the events rendered in the (day, hour) cell, i.e.
// those starting there.
func (c *Controller) EventsAt(day string, hour int) []model.Event {
	var out []model.Event
	for _, ev := range c.store.Events() {
		if layout.CellMembership(ev, day, hour) {
			out = append(out, ev)
		}
	}
	return out
}

// ClickCell opens the editor seeded with the clicked cell's default
// range and day.
func (c *Controller) ClickCell(day string, hour int) {
	start, end := layout.DefaultRangeForCell(hour)
	c.draft = model.Draft{
		Days:      []string{day},
		StartTime: start,
		EndTime:   end,
		Color:     c.randomColor(),
	}
	c.editorOpen = true
}

// ClickEvent opens the editor seeded from the clicked event's full
// field set. Unknown ids are ignored.
func (c *Controller) ClickEvent(id string) {
	ev, ok := c.store.FindByID(id)
	if !ok {
		return
	}
	c.draft = model.Draft{
		Title:     ev.Title,
		Days:      []string{ev.Day},
		StartTime: ev.StartTime,
		EndTime:   ev.EndTime,
		Color:     ev.Color,
		EditingID: ev.ID,
	}
	c.editorOpen = true
}

// OpenAdd opens the editor with library defaults: the first configured
// day, a one-hour morning window, and a random palette color.
func (c *Controller) OpenAdd() {
	var day []string
	if len(c.days) > 0 {
		day = []string{c.days[0]}
	}
	c.draft = model.Draft{
		Days:      day,
		StartTime: "09:00",
		EndTime:   "10:00",
		Color:     c.randomColor(),
	}
	c.editorOpen = true
}

// Cancel closes the editor without touching the store.
func (c *Controller) Cancel() {
	c.editorOpen = false
	c.draft = model.Draft{}
}

// DeleteEditing deletes the event being edited and closes the editor.
// A draft without an event id just closes.
func (c *Controller) DeleteEditing() {
	if id := c.draft.EditingID; id != "" {
		c.store.Delete(id)
		c.setNotice("Event deleted", NoticeSuccess)
	}
	c.Cancel()
}

// Submit validates the draft and commits it to the store. On a
// validation failure the editor stays open, an error notice is
// surfaced, and the store is untouched.
func (c *Controller) Submit(d model.Draft) error {
	if err := c.Validate(d); err != nil {
		c.setNotice(err.Error(), NoticeError)
		return err
	}

	if d.IsEdit() {
		if _, err := c.store.Update(d.EditingID, d); err != nil {
			if errors.Is(err, schedule.ErrNotFound) {
				// The edited event vanished: abort the edit and commit
				// the draft as a create instead.
				applog.Info("edited event vanished, creating instead", "id", d.EditingID)
				d.EditingID = ""
				c.store.Create(d)
			} else {
				c.setNotice(err.Error(), NoticeError)
				return err
			}
		}
		c.setNotice("Event updated", NoticeSuccess)
	} else {
		c.store.Create(d)
		c.setNotice("Event added", NoticeSuccess)
	}

	c.editorOpen = false
	c.draft = model.Draft{}
	return nil
}

// Validate applies the submit rules in order: times inside the
// configured bounds, end strictly after start, at least one day.
func (c *Controller) Validate(d model.Draft) error {
	start := timefmt.ToMinutes(d.StartTime)
	end := timefmt.ToMinutes(d.EndTime)

	lo, hi := c.bounds.StartMinutes(), c.bounds.EndMinutes()
	if start < lo || start > hi || end < lo || end > hi {
		return ErrTimeOutOfBounds
	}
	if end <= start {
		return ErrEndNotAfterStart
	}
	if len(d.Days) == 0 {
		return ErrNoDaySelected
	}
	return nil
}

// Save writes the current event set to the schedule file.
func (c *Controller) Save() error {
	if err := c.files.Save(c.schedulePath, c.store.Events()); err != nil {
		c.setNotice(fmt.Sprintf("Save failed: %v", err), NoticeError)
		return err
	}
	c.setNotice(fmt.Sprintf("Saved to %s", c.schedulePath), NoticeSuccess)
	return nil
}

// Load replaces the event set from the schedule file. A read or parse
// failure leaves the previous schedule active.
func (c *Controller) Load() error {
	events, err := c.files.Load(c.schedulePath)
	if err != nil {
		c.setNotice(fmt.Sprintf("Load failed: %v", err), NoticeError)
		return err
	}
	c.store.ReplaceAll(events)
	c.setNotice(fmt.Sprintf("Loaded %d events", len(events)), NoticeSuccess)
	return nil
}

// ClearAll empties the schedule.
func (c *Controller) ClearAll() {
	c.store.Clear()
	c.setNotice("Schedule cleared", NoticeSuccess)
}

// ExportICS writes the event set as an iCalendar file next to the
// schedule file.
func (c *Controller) ExportICS(now time.Time) error {
	data, err := ics.Export(c.store.Events(), now)
	if err != nil {
		c.setNotice(fmt.Sprintf("Export failed: %v", err), NoticeError)
		return err
	}
	path := filepath.Join(filepath.Dir(c.schedulePath), ics.DefaultFileName)
	if err := c.files.WriteBytes(path, data); err != nil {
		c.setNotice(fmt.Sprintf("Export failed: %v", err), NoticeError)
		return err
	}
	c.setNotice(fmt.Sprintf("Exported to %s", path), NoticeSuccess)
	return nil
}

// Notice returns the active notification, or nil.
func (c *Controller) Notice() *Notice {
	return c.notice
}

// DismissNotice clears the notice with the given sequence number. A
// stale dismissal (for an already-replaced notice) is a no-op.
func (c *Controller) DismissNotice(seq int) {
	if c.notice != nil && c.notice.Seq == seq {
		c.notice = nil
	}
}

func (c *Controller) setNotice(msg string, kind NoticeKind) {
	c.noticeSeq++
	c.notice = &Notice{
		Message:  msg,
		Kind:     kind,
		Duration: c.toastDuration,
		Seq:      c.noticeSeq,
	}
}

func (c *Controller) randomColor() string {
	if len(c.palette) == 0 {
		return "#aec6cf"
	}
	return c.palette[c.rng.Intn(len(c.palette))]
}
