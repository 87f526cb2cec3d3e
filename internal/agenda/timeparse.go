package agenda

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InvalidTime is returned by FormatTime for out-of-range input. The input is
// an internal value, so a sentinel string beats an error here.
const InvalidTime = "Invalid Time"

// timePattern accepts "18:00", "6:00 PM", "9 AM", "18 hrs" and friends.
var timePattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(AM|PM|HRS|H)?`)

// ParseTime extracts minutes since midnight (0–1439) from a loosely formatted
// time string. Returns ok = false when no hour token is found or the parsed
// hour/minute is out of range. A bare number with no AM/PM is taken as already
// being in 24-hour form; "6" therefore means 6 AM. Known limitation, kept as
// is because the sheets rely on it.
func ParseTime(text string) (int, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}

	clean := strings.ToUpper(strings.TrimSpace(text))
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.Join(strings.Fields(clean), " ")

	match := timePattern.FindStringSubmatch(clean)
	if match == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	minutes := 0
	if match[2] != "" {
		minutes, err = strconv.Atoi(match[2])
		if err != nil {
			return 0, false
		}
	}
	modifier := match[3]

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}

	if modifier == "PM" && hours < 12 {
		hours += 12
	} else if modifier == "AM" && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes, true
}

// FormatTime renders minutes since midnight as "H:MM AM/PM".
func FormatTime(minutes int) string {
	if minutes < 0 || minutes >= 1440 {
		return InvalidTime
	}

	hours := minutes / 60
	mins := minutes % 60
	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}
	if hours > 12 {
		hours -= 12
	}
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%d:%02d %s", hours, mins, meridiem)
}
