package ics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"weekgrid/internal/model"
)

// Wed Jan 3 2024; the containing week starts Mon Jan 1.
var testNow = time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)

func TestExportAnchorsToCurrentWeek(t *testing.T) {
	events := []model.Event{
		{ID: "ev-1", Title: "Standup", Day: "Mon", StartTime: "09:00", EndTime: "09:30"},
		{ID: "ev-2", Title: "Review", Day: "Fri", StartTime: "14:00", EndTime: "15:00"},
	}

	data, err := Export(events, testNow)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := string(data)

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count = %d, want 2", got)
	}
	if !strings.Contains(out, "SUMMARY:Standup") || !strings.Contains(out, "SUMMARY:Review") {
		t.Error("summaries missing from export")
	}
	// Monday of the week containing testNow is Jan 1.
	if !strings.Contains(out, "20240101T090000") {
		t.Errorf("Mon 09:00 start not anchored to Jan 1:\n%s", out)
	}
	if !strings.Contains(out, "20240105T140000") {
		t.Errorf("Fri 14:00 start not anchored to Jan 5:\n%s", out)
	}
}

func TestExportEndOfDay(t *testing.T) {
	events := []model.Event{
		{ID: "ev-1", Title: "Late", Day: "Tue", StartTime: "23:00", EndTime: "24:00"},
	}
	data, err := Export(events, testNow)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	// 24:00 on Tue Jan 2 is midnight of Jan 3.
	if !strings.Contains(string(data), "20240103T000000") {
		t.Errorf("24:00 end not rendered as next midnight:\n%s", data)
	}
}

func TestExportSkipsUnknownDays(t *testing.T) {
	events := []model.Event{
		{ID: "ev-1", Title: "Ghost", Day: "Xyz", StartTime: "09:00", EndTime: "10:00"},
	}
	if _, err := Export(events, testNow); !errors.Is(err, ErrNoEvents) {
		t.Errorf("err = %v, want ErrNoEvents", err)
	}
}

func TestExportEmpty(t *testing.T) {
	if _, err := Export(nil, testNow); !errors.Is(err, ErrNoEvents) {
		t.Errorf("err = %v, want ErrNoEvents", err)
	}
}

func TestWeekdayForLabel(t *testing.T) {
	tests := []struct {
		label string
		want  time.Weekday
		ok    bool
	}{
		{"Mon", time.Monday, true},
		{"monday", time.Monday, true},
		{"SUN", time.Sunday, true},
		{"Xyz", 0, false},
		{"M", 0, false},
	}
	for _, tt := range tests {
		wd, ok := weekdayForLabel(tt.label)
		if ok != tt.ok || (ok && wd != tt.want) {
			t.Errorf("weekdayForLabel(%q) = (%v, %v), want (%v, %v)", tt.label, wd, ok, tt.want, tt.ok)
		}
	}
}
