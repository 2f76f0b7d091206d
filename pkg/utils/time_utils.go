package utils

import "time"

// Vietnam time location (ICT, +07:00)
var vnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

func FormatRFC3339VN(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(vnLoc).Format(time.RFC3339)
}

// FormatDisplayVN renders t the way the history list shows it, e.g.
// "14/10/2026 15:04".
func FormatDisplayVN(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(vnLoc).Format("02/01/2006 15:04")
}
