package muhurat

import "time"

// rahuKalam maps each weekday to its inauspicious [start, end) interval in
// fractional local hours.
var rahuKalam = map[time.Weekday][2]float64{
	time.Monday:    {7.5, 9.0},
	time.Tuesday:   {15.0, 16.5},
	time.Wednesday: {12.0, 13.5},
	time.Thursday:  {13.5, 15.0},
	time.Friday:    {10.5, 12.0},
	time.Saturday:  {9.0, 10.5},
	time.Sunday:    {16.5, 18.0},
}

// InRahuKalam reports whether a local civil time falls inside that weekday's
// Rahu Kalam window. The interval is half-open: a slot exactly at the end
// boundary is allowed.
func InRahuKalam(local time.Time) bool {
	window, ok := rahuKalam[local.Weekday()]
	if !ok {
		return false
	}
	hour := float64(local.Hour()) + float64(local.Minute())/60.0
	return hour >= window[0] && hour < window[1]
}
