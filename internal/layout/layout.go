// Package layout maps events to grid geometry: vertical placement
// within an hour row, the default time range proposed for a clicked
// cell, and which cell an event is rendered in.
package layout

import (
	"weekgrid/internal/model"
	"weekgrid/internal/timefmt"
)

// Placement is the vertical position of an event within the one-hour
// cell it starts in, expressed as fractions of the cell height.
type Placement struct {
	// TopFraction is the offset from the top of the starting cell.
	TopFraction float64
	// HeightFraction is the event's duration relative to one hour. It
	// exceeds 1.0 when the event spans into subsequent rows; clipping
	// and stacking are the render sink's concern.
	HeightFraction float64
}

// Layout computes the placement of ev within its starting hour cell.
func Layout(ev model.Event) Placement {
	start := timefmt.ToMinutes(ev.StartTime)
	end := timefmt.ToMinutes(ev.EndTime)
	return Placement{
		TopFraction:    float64(start%60) / 60,
		HeightFraction: float64(end-start) / 60,
	}
}

// DefaultRangeForCell proposes the time range for an event created by
// clicking the given hour row: the full hour starting there. The
// terminal 24 row proposes 24:00-24:00, a deliberately invalid duration
// that forces the user to pick an earlier start before saving.
func DefaultRangeForCell(hour int) (startTime, endTime string) {
	start := timefmt.FromMinutes(hour * 60)
	endHour := hour + 1
	if endHour > 24 {
		endHour = 24
	}
	return start, timefmt.FromMinutes(endHour * 60)
}

// CellMembership reports whether ev is rendered in the (day, hour)
// cell. An event belongs only to the cell its start hour falls in; it
// overflows visually into later rows rather than occupying them.
func CellMembership(ev model.Event, day string, hour int) bool {
	return ev.Day == day && timefmt.ToMinutes(ev.StartTime)/60 == hour
}
