package thaidate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Thai month names for the Gregorian calendar months January..December.
var monthNames = [12]string{
	"มกราคม",
	"กุมภาพันธ์",
	"มีนาคม",
	"เมษายน",
	"พฤษภาคม",
	"มิถุนายน",
	"กรกฎาคม",
	"สิงหาคม",
	"กันยายน",
	"ตุลาคม",
	"พฤศจิกายน",
	"ธันวาคม",
}

// buddhistEraOffset converts a Gregorian year to the Thai Buddhist Era year.
const buddhistEraOffset = 543

// parse extracts the calendar date from an ISO-8601 string. Timestamps are
// accepted by truncating to the date part; time of day and zone are ignored.
// Empty or malformed input reports ok=false instead of an error so callers can
// degrade to blank fields.
func parse(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}
	if len(iso) > 10 {
		iso = iso[:10]
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day returns the day of month as a plain number string, or "" when the input
// is empty or unparsable.
func Day(iso string) string {
	t, ok := parse(iso)
	if !ok {
		return ""
	}
	return strconv.Itoa(t.Day())
}

// MonthName returns the Thai name of the Gregorian month, or "".
func MonthName(iso string) string {
	t, ok := parse(iso)
	if !ok {
		return ""
	}
	return monthNames[int(t.Month())-1]
}

// Year returns the four-digit Gregorian year, or "".
func Year(iso string) string {
	t, ok := parse(iso)
	if !ok {
		return ""
	}
	return strconv.Itoa(t.Year())
}

// FullDate renders the long Thai form "15 มีนาคม 2024". The year stays
// Gregorian; government application pages using this form do not add 543.
// BuddhistSlashDate is the Buddhist-era counterpart. The two are kept as
// separate operations because the template pages genuinely differ.
func FullDate(iso string) string {
	t, ok := parse(iso)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[int(t.Month())-1], t.Year())
}

// BuddhistSlashDate renders "15/3/2567" with the year shifted to the Buddhist
// Era, or "" on invalid input.
func BuddhistSlashDate(iso string) string {
	t, ok := parse(iso)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()+buddhistEraOffset)
}
