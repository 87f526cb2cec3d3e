package agenda

import "time"

// WeekRange is a Monday-anchored calendar week. Start is Monday at midnight,
// End the following Sunday at end of day. The week is always a full Mon–Sun
// span even when it spills into the next month; IsLastWeek marks the week
// that contains or passes the month's last day.
type WeekRange struct {
	Start      time.Time
	End        time.Time
	IsLastWeek bool
}

// ComputeWeekRange locates week number week (1-based) of the given month
// (monthIndex is 0-based). It anchors on the Monday of the week containing
// the 1st, so week 1 may start in the previous month. Returns ok = false when
// the requested week starts after the month's last day.
func ComputeWeekRange(year, monthIndex, week int, loc *time.Location) (WeekRange, bool) {
	if loc == nil {
		loc = time.Local
	}

	firstDay := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, loc)
	lastDay := time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, loc)

	// Monday of the week containing the 1st: Sundays step back 6 days.
	distToMonday := 1 - int(firstDay.Weekday())
	if firstDay.Weekday() == time.Sunday {
		distToMonday = -6
	}

	start := firstDay.AddDate(0, 0, distToMonday+(week-1)*7)
	if start.After(lastDay) {
		return WeekRange{}, false
	}

	endDay := start.AddDate(0, 0, 6)
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, int(999*time.Millisecond), loc)

	isLast := end.Day() == lastDay.Day() || end.After(lastDay)

	return WeekRange{Start: start, End: end, IsLastWeek: isLast}, true
}

// CurrentWeekRange returns the Mon–Sun window containing the given day.
func CurrentWeekRange(day time.Time) (start, end time.Time) {
	distToMonday := 1 - int(day.Weekday())
	if day.Weekday() == time.Sunday {
		distToMonday = -6
	}
	s := day.AddDate(0, 0, distToMonday)
	start = time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, day.Location())
	e := start.AddDate(0, 0, 6)
	end = time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(999*time.Millisecond), day.Location())
	return start, end
}
