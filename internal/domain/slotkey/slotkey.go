// Package slotkey derives the canonical "uniquecheck" keys for slots and
// bookings. The key is the business identity of a record: storage enforces
// its uniqueness and lookups go through it instead of surrogate ids.
package slotkey

import (
	"fmt"
	"strings"
)

const Separator = "-"

// FormatVersion pins the field order of ForSlot and ForBooking. Changing
// the order breaks lookups of every key already stored.
//
//	v1 slot:    coach, year, month, day, hour, minute
//	v1 booking: coach, seeker, year, month, day, hour, minute
const FormatVersion = 1

var escaper = strings.NewReplacer(`\`, `\\`, Separator, `\`+Separator)

// Derive joins the string form of each part with Separator, in order.
// Parts containing the separator (or the escape character) are escaped so
// that distinct inputs never produce the same key; other parts are
// written verbatim.
func Derive(parts ...any) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(Separator)
		}
		s := fmt.Sprint(p)
		if strings.ContainsAny(s, `\`+Separator) {
			s = escaper.Replace(s)
		}
		b.WriteString(s)
	}
	return b.String()
}

func ForSlot(coachID string, c Calendar) string {
	return Derive(coachID, c.Year, c.Month, c.Day, c.Hour, c.Minute)
}

func ForBooking(coachID, seekerID string, c Calendar) string {
	return Derive(coachID, seekerID, c.Year, c.Month, c.Day, c.Hour, c.Minute)
}
