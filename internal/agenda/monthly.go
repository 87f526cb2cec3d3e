package agenda

import (
	"fmt"
	"strings"
)

// Metadata carries the per-sheet header cells: an optional custom title and
// description plus the month name the sheet was read under.
type Metadata struct {
	Title       string
	Description string
	MonthName   string
}

// noEventsMonthly is the fixed empty-result line; not an error.
const noEventsMonthly = "No hay eventos registrados para este mes."

// closingLine ends every monthly digest.
const closingLine = `_"Preparemos nuestro corazón para lo que Dios hará."_`

// weekBuckets are the fixed "Semana N" day ranges of the monthly digest.
// These are day-of-month buckets, not calendar weeks; WeekRange handles the
// Monday-anchored calendar weeks used by the weekly digest.
var weekBuckets = []struct {
	name     string
	from, to int
}{
	{"Semana 1", 1, 7},
	{"Semana 2", 8, 14},
	{"Semana 3", 15, 21},
	{"Semana 4", 22, 28},
	{"Semana 5", 29, 31},
}

// applyRollover corrects sheets that append next-month rows without resetting
// the month column. Scanning in original row order, once the day number drops
// from >20 to <10 every later event (including the trigger) is pushed one
// month forward. The trigger is sticky for the rest of the sequence. Pure
// fold: the input slice is not mutated.
func applyRollover(events []Event) []Event {
	out := make([]Event, len(events))
	lastDay := -1
	shifted := false

	for i, ev := range events {
		if lastDay > 20 && ev.Day < 10 {
			shifted = true
		}
		if shifted {
			ev.Date = ev.Date.AddDate(0, 1, 0)
		}
		lastDay = ev.Day
		out[i] = ev
	}

	return out
}

// FormatMonthlyDigest renders the full-month digest for the given 1-based
// target month. Rows are normalized in original order, rollover-corrected,
// filtered to the target month and its successor (ghost events of next month
// stay around for run merging but are never bucketed), then rendered bucket
// by bucket with global cross-week run merging.
func (n Normalizer) FormatMonthlyDigest(rows []Row, meta Metadata, month int) string {
	var sb strings.Builder

	if meta.Title != "" {
		fmt.Fprintf(&sb, "🗓 *%s*\n\n", meta.Title)
	} else {
		fmt.Fprintf(&sb, "🗓 *AGENDA DE %s*\n\n", strings.ToUpper(meta.MonthName))
	}
	if meta.Description != "" {
		fmt.Fprintf(&sb, "_%s_\n\n", meta.Description)
	}
	sb.WriteString(Greeting(GreetingMonthly, month-1, meta.MonthName))
	sb.WriteString("\n\n")

	// Normalize in original row order; rollover correction depends on it.
	var raw []Event
	for _, row := range rows {
		if ev, ok := n.NormalizeRow(row, meta.MonthName); ok {
			raw = append(raw, ev)
		}
	}

	raw = applyRollover(raw)

	// Keep the target month plus its successor (mod 12).
	nextMonth := month%12 + 1
	var events []Event
	for _, ev := range raw {
		m := int(ev.Date.Month())
		if m != month && m != nextMonth {
			continue
		}
		events = append(events, ev)
	}

	sortEventsByDate(events)

	if len(events) == 0 {
		sb.WriteString(noEventsMonthly)
		return sb.String()
	}

	// Bucket only target-month events into the fixed week ranges.
	buckets := make([][]int, len(weekBuckets))
	for i, ev := range events {
		if int(ev.Date.Month()) != month {
			continue
		}
		for b, wk := range weekBuckets {
			if ev.Day >= wk.from && ev.Day <= wk.to {
				buckets[b] = append(buckets[b], i)
				break
			}
		}
	}

	processed := make([]bool, len(events))

	for b, bucket := range buckets {
		pending := 0
		for _, i := range bucket {
			if !processed[i] {
				pending++
			}
		}
		if pending == 0 {
			continue
		}

		fmt.Fprintf(&sb, "*%s*\n", weekBuckets[b].name)

		for _, i := range bucket {
			if processed[i] {
				continue
			}
			// Run search is global: it may reach into later weeks or into
			// the next-month ghost events.
			run := findRun(events, processed, i)
			for _, j := range run {
				processed[j] = true
			}

			last := events[run[len(run)-1]]
			annotateEnd := int(last.Date.Month()) != month
			annotateFirst := int(events[i].Date.Month()) != month
			renderRun(&sb, events, run, annotateFirst, annotateEnd)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(closingLine)
	return sb.String()
}
