package timefmt

import "testing"

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:15", 555},
		{"14:00", 840},
		{"24:00", 1440},
	}
	for _, tt := range tests {
		if got := ToMinutes(tt.in); got != tt.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"13:45", "1:45 PM"},
		{"23:59", "11:59 PM"},
		{"24:00", "12:00 AM"},
	}
	for _, tt := range tests {
		if got := To12Hour(tt.in); got != tt.want {
			t.Errorf("To12Hour(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Round-tripping through minutes must preserve the displayed time.
func TestMinutesRoundTripPreservesDisplay(t *testing.T) {
	for h := 0; h <= 24; h++ {
		for m := 0; m <= 59; m += 7 {
			if h == 24 && m != 0 {
				continue
			}
			in := FromMinutes(h*60 + m)
			rt := FromMinutes(ToMinutes(in))
			if To12Hour(rt) != To12Hour(in) {
				t.Fatalf("round trip changed display: %q -> %q", in, rt)
			}
		}
	}
}

func TestParseFreeText(t *testing.T) {
	tests := []struct {
		in          string
		want        string
		wantClamped bool
		wantOK      bool
	}{
		{"9", "09:00", false, true},
		{"930", "09:30", false, true},
		{"9:30", "09:30", false, true},
		{"14:00", "14:00", false, true},
		{"2pm", "14:00", false, true},
		{"2:30pm", "14:30", false, true},
		{"2:30 PM", "14:30", false, true},
		{"12am", "00:00", false, true},
		{"12pm", "12:00", false, true},
		{"1430", "14:30", false, true},
		{"9:", "09:00", false, true},

		// Silent clamping, never an error.
		{"45", "23:00", true, true},
		{"24:00", "23:00", true, true},
		{"999", "09:59", true, true},

		// No digits at all.
		{"", "", false, false},
		{"   ", "", false, false},
		{"pm", "", false, false},
		{":", "", false, false},
	}
	for _, tt := range tests {
		got, clamped, ok := ParseFreeText(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseFreeText(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if got != tt.want || clamped != tt.wantClamped {
			t.Errorf("ParseFreeText(%q) = (%q, clamped=%v), want (%q, clamped=%v)",
				tt.in, got, clamped, tt.want, tt.wantClamped)
		}
	}
}

func TestSlots(t *testing.T) {
	slots := Slots(5, 23)
	if len(slots) == 0 {
		t.Fatal("no slots generated")
	}
	if slots[0].Value != "05:00" {
		t.Errorf("first slot = %q, want 05:00", slots[0].Value)
	}
	if last := slots[len(slots)-1].Value; last != "23:00" {
		t.Errorf("last slot = %q, want 23:00", last)
	}
	// Every 30 minutes, inclusive on both ends.
	if want := (23-5)*2 + 1; len(slots) != want {
		t.Errorf("slot count = %d, want %d", len(slots), want)
	}
	if slots[1].Value != "05:30" || slots[1].Label != "5:30 AM" {
		t.Errorf("second slot = %+v", slots[1])
	}
}

func TestSlotsExcludePastEndOfDay(t *testing.T) {
	slots := Slots(23, 24)
	want := []string{"23:00", "23:30", "24:00"}
	if len(slots) != len(want) {
		t.Fatalf("slot count = %d, want %d", len(slots), len(want))
	}
	for i, w := range want {
		if slots[i].Value != w {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i].Value, w)
		}
	}
	if slots[2].Label != "12:00 AM" {
		t.Errorf("24:00 label = %q, want 12:00 AM", slots[2].Label)
	}
}
