package index

import (
	"fmt"
	"strconv"
	"strings"
)

// Timestamp is the sortable prefix of a plan identifier: a plain
// (year, month, day, hour) tuple in 24-hour form. It is not a calendar
// value; month 13 or day 40 parse fine. Only the hour's am/pm range is
// checked, because the 24-hour conversion depends on it.
type Timestamp struct {
	Year  int
	Month int
	Day   int
	Hour  int
}

// ParseTimestamp extracts the timestamp from a plan identifier of the
// shape YYYY-MM-DD-<h>am|pm_<name>. The second return is false when the
// identifier does not match that shape.
func ParseTimestamp(plan string) (Timestamp, bool) {
	prefix := plan
	if i := strings.Index(plan, "_"); i >= 0 {
		prefix = plan[:i]
	}
	if strings.Count(prefix, "-") < 3 {
		return Timestamp{}, false
	}

	cut := strings.LastIndex(prefix, "-")
	datePart, timePart := prefix[:cut], prefix[cut+1:]

	fields := strings.SplitN(datePart, "-", 3)
	if len(fields) != 3 {
		return Timestamp{}, false
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return Timestamp{}, false
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return Timestamp{}, false
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return Timestamp{}, false
	}

	timePart = strings.ToLower(timePart)
	if len(timePart) < 3 {
		return Timestamp{}, false
	}
	meridiem := timePart[len(timePart)-2:]
	if meridiem != "am" && meridiem != "pm" {
		return Timestamp{}, false
	}
	hourStr := timePart[:len(timePart)-2]
	if !allDigits(hourStr) {
		return Timestamp{}, false
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return Timestamp{}, false
	}
	if hour < 1 || hour > 12 {
		return Timestamp{}, false
	}

	if meridiem == "am" {
		if hour == 12 {
			hour = 0
		}
	} else {
		if hour != 12 {
			hour += 12
		}
	}

	return Timestamp{Year: year, Month: month, Day: day, Hour: hour}, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Compare orders timestamps chronologically: negative when t is earlier
// than other, positive when later, zero when equal.
func (t Timestamp) Compare(other Timestamp) int {
	if t.Year != other.Year {
		return t.Year - other.Year
	}
	if t.Month != other.Month {
		return t.Month - other.Month
	}
	if t.Day != other.Day {
		return t.Day - other.Day
	}
	return t.Hour - other.Hour
}

// String renders the tuple for diagnostics.
func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02dh", t.Year, t.Month, t.Day, t.Hour)
}
