package model

// Event is a single timed entry on the weekly grid. Times are naive
// 24-hour wall-clock strings ("HH:MM"); "24:00" denotes end-of-day and
// is the only permitted hour-24 value.
type Event struct {
	// ID is runtime-only identity: generated on creation, regenerated on
	// load, never persisted.
	ID string `json:"-"`

	Title string `json:"title"`

	// Day is one of the configured day labels (e.g. "Mon").
	Day string `json:"day"`

	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	// Color is an RGB hex string like "#aec6cf".
	Color string `json:"color"`
}

// Bounds is the process-wide hour range covered by the grid, inclusive
// on both ends. Supplied by configuration and read-only at runtime.
type Bounds struct {
	StartHour int
	EndHour   int
}

// DefaultBounds covers 05:00 through 23:00.
func DefaultBounds() Bounds {
	return Bounds{StartHour: 5, EndHour: 23}
}

// StartMinutes returns the lower bound in minutes since midnight.
func (b Bounds) StartMinutes() int {
	return b.StartHour * 60
}

// EndMinutes returns the upper bound in minutes since midnight.
func (b Bounds) EndMinutes() int {
	return b.EndHour * 60
}

// Draft is the in-progress editor form state for a create-or-edit. It
// only becomes one or more stored Events once validated and committed.
type Draft struct {
	Title     string
	Days      []string
	StartTime string
	EndTime   string
	Color     string

	// EditingID is the id of the event being edited, or empty when the
	// draft describes a brand new event.
	EditingID string
}

// IsEdit reports whether committing the draft should update an existing
// event rather than create new ones.
func (d Draft) IsEdit() bool {
	return d.EditingID != ""
}
