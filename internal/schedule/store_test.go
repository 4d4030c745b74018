package schedule

import (
	"errors"
	"testing"

	"weekgrid/internal/model"
)

func draft(title string, days ...string) model.Draft {
	return model.Draft{
		Title:     title,
		Days:      days,
		StartTime: "09:00",
		EndTime:   "10:00",
		Color:     "#aec6cf",
	}
}

func TestCreateFansOutPerDay(t *testing.T) {
	s := NewStore()

	created := s.Create(draft("Standup", "Mon", "Wed"))
	if len(created) != 2 {
		t.Fatalf("created %d events, want 2", len(created))
	}
	if s.Len() != 2 {
		t.Fatalf("store has %d events, want 2", s.Len())
	}

	if created[0].Day != "Mon" || created[1].Day != "Wed" {
		t.Errorf("day order not preserved: %s, %s", created[0].Day, created[1].Day)
	}
	if created[0].ID == created[1].ID {
		t.Error("fanned-out events must have distinct ids")
	}
	if created[0].ID == "" || created[1].ID == "" {
		t.Error("created events must have ids")
	}
	for _, ev := range created {
		if ev.Title != "Standup" || ev.StartTime != "09:00" || ev.EndTime != "10:00" || ev.Color != "#aec6cf" {
			t.Errorf("fields not copied from draft: %+v", ev)
		}
	}
}

func TestUpdateRelocatesAndMintsIds(t *testing.T) {
	s := NewStore()
	orig := s.Create(draft("Gym", "Mon"))[0]

	result, err := s.Update(orig.ID, draft("Gym", "Wed", "Fri"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("update produced %d events, want 2", len(result))
	}

	if result[0].ID != orig.ID || result[0].Day != "Wed" {
		t.Errorf("first day must keep the original id on the new day, got %+v", result[0])
	}
	if result[1].ID == orig.ID {
		t.Error("secondary day must mint a fresh id")
	}
	if result[1].Day != "Fri" {
		t.Errorf("secondary day = %s, want Fri", result[1].Day)
	}

	for _, ev := range s.Events() {
		if ev.Day == "Mon" && ev.Title == "Gym" {
			t.Error("no event should remain on the original day")
		}
	}
	if s.Len() != 2 {
		t.Errorf("store has %d events, want 2", s.Len())
	}
}

func TestUpdateDoesNotReuseIdForOriginalDayInTail(t *testing.T) {
	s := NewStore()
	orig := s.Create(draft("Gym", "Mon"))[0]

	// The original day reappears after index 0; its record still gets a
	// fresh id.
	result, err := s.Update(orig.ID, draft("Gym", "Wed", "Mon"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if result[1].Day != "Mon" || result[1].ID == orig.ID {
		t.Errorf("tail record on the original day must not reuse the id: %+v", result[1])
	}
}

func TestUpdateUnknownId(t *testing.T) {
	s := NewStore()
	s.Create(draft("Gym", "Mon"))

	_, err := s.Update("missing", draft("Gym", "Tue"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if s.Len() != 1 {
		t.Error("failed update must not change the store")
	}
}

func TestDeleteAbsentIdIsNoOp(t *testing.T) {
	s := NewStore()
	s.Create(draft("Gym", "Mon"))

	before := s.Len()
	s.Delete("missing")
	if s.Len() != before {
		t.Errorf("store count changed: %d -> %d", before, s.Len())
	}

	s.Delete(s.Events()[0].ID)
	if s.Len() != 0 {
		t.Errorf("store has %d events after delete, want 0", s.Len())
	}
}

func TestReplaceAllAssignsMissingIds(t *testing.T) {
	s := NewStore()
	s.Create(draft("Old", "Mon"))

	s.ReplaceAll([]model.Event{
		{Title: "A", Day: "Mon", StartTime: "09:00", EndTime: "10:00"},
		{ID: "keep-me", Title: "B", Day: "Tue", StartTime: "11:00", EndTime: "12:00"},
	})

	events := s.Events()
	if len(events) != 2 {
		t.Fatalf("store has %d events, want 2", len(events))
	}
	if events[0].ID == "" {
		t.Error("record without id must receive one")
	}
	if events[1].ID != "keep-me" {
		t.Errorf("record with id must keep it, got %q", events[1].ID)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Create(draft("Gym", "Mon", "Tue", "Wed"))
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("store has %d events after clear, want 0", s.Len())
	}
}

func TestEventsReturnsSnapshot(t *testing.T) {
	s := NewStore()
	s.Create(draft("Gym", "Mon"))

	snap := s.Events()
	snap[0].Title = "mutated"

	if s.Events()[0].Title != "Gym" {
		t.Error("mutating the snapshot must not affect the store")
	}
}
