// Package marketclock answers whether the NSE cash market is trading.
package marketclock

import "time"

const (
	openHour    = 9
	openMinute  = 15
	closeHour   = 15
	closeMinute = 30
)

var ist = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Containers without tzdata still get the right offset.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// IsOpen reports whether t falls inside NSE regular trading hours,
// 09:15 to 15:30 IST, Monday through Friday. Exchange holidays are
// not tracked; a holiday scan just returns a stale universe.
func IsOpen(t time.Time) bool {
	local := t.In(ist)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	minutes := local.Hour()*60 + local.Minute()
	return minutes >= openHour*60+openMinute && minutes <= closeHour*60+closeMinute
}

// Now reports whether the market is open at the current instant.
func Now() bool {
	return IsOpen(time.Now())
}
