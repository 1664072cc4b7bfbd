package service

import "time"

// The API deals in calendar days, not instants. Days are parsed in a fixed
// UTC-3 offset so ordering never shifts with the server's local timezone.
var dayZone = time.FixedZone("UTC-3", -3*60*60)

const dayLayout = "2006-01-02"

func parseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(dayLayout, s, dayZone)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dayBefore reports whether day a sorts strictly before day b.
// Unparseable values sort last so corrupt rows surface at the end of lists
// instead of breaking them.
func dayBefore(a, b string) bool {
	ta, oka := parseDay(a)
	tb, okb := parseDay(b)
	if oka != okb {
		return oka
	}
	return ta.Before(tb)
}
