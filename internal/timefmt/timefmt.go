// Package timefmt converts between the "HH:MM" wall-clock strings used
// by the event model, minutes since midnight, 12-hour display strings,
// and free-text user input.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// ToMinutes converts "HH:MM" to minutes since midnight. Malformed
// components count as zero; callers compare and do arithmetic on the
// result rather than on the strings.
func ToMinutes(hhmm string) int {
	h, m := splitHHMM(hhmm)
	return h*60 + m
}

// FromMinutes converts minutes since midnight back to "HH:MM".
func FromMinutes(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// To12Hour renders "HH:MM" as a 12-hour display string such as
// "9:30 AM". Hour 24 (end-of-day) renders as "12:MM AM".
func To12Hour(hhmm string) string {
	h, m := splitHHMM(hhmm)
	if h == 24 {
		return fmt.Sprintf("12:%02d AM", m)
	}
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, meridiem)
}

// ParseFreeText interprets free-form time entry ("9", "930", "9:30",
// "14:00", "2pm", "2:30pm") as a 24-hour "HH:MM" string.
//
// The parser never fails on out-of-range values: hours clamp to 23 and
// minutes to 59, with clamped reporting that silent correction so the
// caller can distinguish a clamped "45" from a literal "23:00". ok is
// false only when the input contains no digits at all.
func ParseFreeText(raw string) (hhmm string, clamped bool, ok bool) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	clean = keepAlnumColon(clean)
	if clean == "" {
		return "", false, false
	}

	isPM := strings.Contains(clean, "p")
	isAM := strings.Contains(clean, "a")

	digits := stripLetters(clean)

	var h, m int
	if strings.Contains(digits, ":") {
		hs, ms, _ := strings.Cut(digits, ":")
		h = atoiOrZero(hs)
		m = atoiOrZero(ms)
		if hs == "" && ms == "" {
			return "", false, false
		}
	} else {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return "", false, false
		}
		switch {
		case n < 100:
			// Hour-only entry. Two-digit values >= 24 are ambiguous and
			// clamp below rather than being read as minutes.
			h = n
		default:
			// "930", "1430": last two digits are minutes.
			h = n / 100
			m = n % 100
		}
	}

	if isPM && h < 12 {
		h += 12
	}
	if isAM && h == 12 {
		h = 0
	}

	if h > 23 {
		h = 23
		clamped = true
	}
	if m > 59 {
		m = 59
		clamped = true
	}

	return fmt.Sprintf("%02d:%02d", h, m), clamped, true
}

// Slot is one entry of the time-suggestion dropdown.
type Slot struct {
	Value string // "HH:MM"
	Label string // 12-hour display form
}

// Slots generates suggestion entries every 30 minutes from startHour to
// endHour inclusive. Slots past 24:00 are excluded.
func Slots(startHour, endHour int) []Slot {
	startMins := startHour * 60
	endMins := endHour * 60

	var out []Slot
	for i := 0; i <= (endMins-startMins)/30; i++ {
		total := startMins + i*30
		h := total / 60
		m := total % 60
		if h > 24 || (h == 24 && m > 0) {
			continue
		}
		val := FromMinutes(total)
		out = append(out, Slot{Value: val, Label: To12Hour(val)})
	}
	return out
}

func splitHHMM(hhmm string) (h, m int) {
	hs, ms, _ := strings.Cut(hhmm, ":")
	return atoiOrZero(hs), atoiOrZero(ms)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func keepAlnumColon(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ':' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
