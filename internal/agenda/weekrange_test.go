package agenda

import (
	"testing"
	"time"
)

func TestComputeWeekRangeAlwaysMonday(t *testing.T) {
	for monthIndex := 0; monthIndex < 12; monthIndex++ {
		for week := 1; week <= 6; week++ {
			r, ok := ComputeWeekRange(2026, monthIndex, week, time.UTC)
			if !ok {
				continue
			}
			if r.Start.Weekday() != time.Monday {
				t.Errorf("month %d week %d: start %v is %v, want Monday", monthIndex, week, r.Start, r.Start.Weekday())
			}
			if r.End.Weekday() != time.Sunday {
				t.Errorf("month %d week %d: end %v is %v, want Sunday", monthIndex, week, r.End, r.End.Weekday())
			}
			if days := r.End.Sub(r.Start); days < 6*24*time.Hour || days >= 7*24*time.Hour {
				t.Errorf("month %d week %d: span %v, want 6 days plus end-of-day", monthIndex, week, days)
			}
		}
	}
}

// January 1, 2025 is a Wednesday, so week 1 reaches back into December.
func TestComputeWeekRangeCrossesIntoPreviousMonth(t *testing.T) {
	r, ok := ComputeWeekRange(2025, 0, 1, time.UTC)
	if !ok {
		t.Fatal("expected week 1 of January 2025 to exist")
	}
	if r.Start.Year() != 2024 || r.Start.Month() != time.December || r.Start.Day() != 30 {
		t.Errorf("start = %v, want 2024-12-30", r.Start)
	}
	if r.End.Year() != 2025 || r.End.Month() != time.January || r.End.Day() != 5 {
		t.Errorf("end = %v, want 2025-01-05", r.End)
	}
	if r.IsLastWeek {
		t.Error("week 1 flagged as last week of month")
	}
}

func TestComputeWeekRangeBeyondMonth(t *testing.T) {
	// February 2026 spans at most 5 calendar weeks; week 7 never exists.
	if _, ok := ComputeWeekRange(2026, 1, 7, time.UTC); ok {
		t.Error("expected no week 7 in February")
	}
}

func TestComputeWeekRangeLastWeekFlag(t *testing.T) {
	// Walk the weeks of each month: exactly the final existing week (and any
	// week whose span passes the month's last day) must carry the flag.
	for monthIndex := 0; monthIndex < 12; monthIndex++ {
		lastDay := time.Date(2026, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC)
		sawLast := false
		for week := 1; week <= 6; week++ {
			r, ok := ComputeWeekRange(2026, monthIndex, week, time.UTC)
			if !ok {
				break
			}
			covers := !r.End.Before(lastDay)
			if r.IsLastWeek != covers {
				t.Errorf("month %d week %d: IsLastWeek = %v, end %v, month ends %v", monthIndex, week, r.IsLastWeek, r.End, lastDay)
			}
			if r.IsLastWeek {
				sawLast = true
			}
		}
		if !sawLast {
			t.Errorf("month %d: no week flagged as last", monthIndex)
		}
	}
}

func TestCurrentWeekRange(t *testing.T) {
	// 2026-09-09 is a Wednesday; its week runs Mon 7 to Sun 13.
	day := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)
	start, end := CurrentWeekRange(day)
	if start.Day() != 7 || start.Weekday() != time.Monday {
		t.Errorf("start = %v, want Monday the 7th", start)
	}
	if end.Day() != 13 || end.Weekday() != time.Sunday {
		t.Errorf("end = %v, want Sunday the 13th", end)
	}

	// A Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC)
	start, _ = CurrentWeekRange(sunday)
	if start.Day() != 7 {
		t.Errorf("Sunday start = %v, want the 7th", start)
	}
}
