package agenda

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// homeVenue is the default location; it is left off digest lines to keep them
// short, only off-site places get the parenthesis.
const homeVenue = "tierra prometida atizapán"

// findRun greedily extends a run starting at events[start] one calendar day at
// a time over the candidate set, skipping already-processed entries. Returns
// the run as indices into events, in date order, always at least [start].
// The processed set is function-local state owned by the caller; nothing here
// survives a single formatting invocation.
func findRun(events []Event, processed []bool, start int) []int {
	run := []int{start}
	inRun := map[int]bool{start: true}
	cur := start

	for {
		next := -1
		for j := range events {
			if j == cur || processed[j] || inRun[j] {
				continue
			}
			if events[cur].SameRunAs(events[j]) {
				next = j
				break
			}
		}
		if next < 0 {
			break
		}
		run = append(run, next)
		inRun[next] = true
		cur = next
	}

	return run
}

// placeSuffix renders " (Lugar)" for off-site events.
func placeSuffix(place string) string {
	if place == "" || strings.Contains(strings.ToLower(place), homeVenue) {
		return ""
	}
	return " (" + place + ")"
}

// dateLabel renders "Vie 11", optionally annotated with the short month name
// when the date left the reference month.
func dateLabel(ev Event, annotate bool) string {
	label := fmt.Sprintf("%s %d", ev.WeekdayAbbrev, ev.Day)
	if annotate {
		label += " (" + shortMonth(ev.Date.Month()) + ")"
	}
	return label
}

// renderRun writes one digest line for a merged run. annotateEnd marks the
// run's final date with its month when it differs from the digest's reference
// month. Runs of length 2 join with "y", longer ones with "al"; single
// cancelled events never show their time, and runs never do.
func renderRun(sb *strings.Builder, events []Event, run []int, annotateFirst, annotateEnd bool) {
	first := events[run[0]]
	marker := TagCategory(first.Name)
	place := placeSuffix(first.Place)

	if len(run) > 1 {
		last := events[run[len(run)-1]]
		connector := "al"
		prefix := "Del "
		if len(run) == 2 {
			connector = "y"
			prefix = ""
		}
		firstLabel := dateLabel(first, false)
		lastLabel := dateLabel(last, annotateEnd)

		if first.Cancelled() {
			fmt.Fprintf(sb, "❌ %s%s %s %s: (CANCELADO) %s%s\n", prefix, firstLabel, connector, lastLabel, first.Name, place)
		} else {
			fmt.Fprintf(sb, "%s %s%s %s %s: *%s*%s\n", marker, prefix, firstLabel, connector, lastLabel, first.Name, place)
		}
		return
	}

	label := dateLabel(first, annotateFirst)
	if first.Cancelled() {
		fmt.Fprintf(sb, "❌ %s: (CANCELADO) %s%s\n", label, first.Name, place)
		return
	}

	timeSuffix := ""
	if first.Time != "" {
		timeSuffix = " - " + first.Time
	}
	fmt.Fprintf(sb, "%s %s: *%s*%s%s\n", marker, label, first.Name, place, timeSuffix)
}

// sortEventsByDate orders events ascending by full date, keeping the original
// row order for equal dates.
func sortEventsByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}

// sameDay reports whether two timestamps fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
