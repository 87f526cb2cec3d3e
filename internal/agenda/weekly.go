package agenda

import (
	"fmt"
	"strings"
	"time"
)

// noEventsWeekly is the fixed empty-result line for the weekly digest.
const noEventsWeekly = "No hay eventos programados para esta semana."

// FormatWeeklyDigest renders the digest for an explicit [start, end] window.
// monthIndex (0-based) drives the greeting rotation; headerMonthLabel is the
// caller-composed month label for the header (may be "Enero/Febrero" when the
// window crosses months, or empty). Events outside the window are dropped;
// run merging is scoped to the window only.
func FormatWeeklyDigest(events []Event, start, end time.Time, monthIndex int, headerMonthLabel string, isLastWeek bool) string {
	var sb strings.Builder

	sb.WriteString(Greeting(GreetingWeekly, monthIndex, ""))
	sb.WriteString("\n\n")

	monthHeader := ""
	if headerMonthLabel != "" {
		monthHeader = " (" + strings.ToUpper(headerMonthLabel) + ")"
	}
	lastWeekLegend := ""
	if isLastWeek {
		lastWeekLegend = " (última semana del mes)"
	}
	fmt.Fprintf(&sb, "📅 *Semana del %d al %d%s*%s\n\n", start.Day(), end.Day(), monthHeader, lastWeekLegend)

	var filtered []Event
	for _, ev := range events {
		if ev.Date.Before(start) || ev.Date.After(end) {
			continue
		}
		filtered = append(filtered, ev)
	}
	sortEventsByDate(filtered)

	if len(filtered) == 0 {
		sb.WriteString(noEventsWeekly)
		return sb.String()
	}

	processed := make([]bool, len(filtered))

	for i := range filtered {
		if processed[i] {
			continue
		}
		run := findRun(filtered, processed, i)
		for _, j := range run {
			processed[j] = true
		}

		// A run that slips into the next month mid-week gets its end label
		// annotated, same convention as the monthly digest.
		last := filtered[run[len(run)-1]]
		annotateEnd := last.Date.Month() != filtered[run[0]].Date.Month()
		renderRun(&sb, filtered, run, false, annotateEnd)
	}

	return sb.String()
}
