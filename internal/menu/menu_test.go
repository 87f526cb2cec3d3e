package menu

import (
	"strings"
	"testing"
)

func TestMonthsKeyboard(t *testing.T) {
	kb := Months()

	// Twelve months in rows of three, plus the back row.
	if len(kb.InlineKeyboard) != 5 {
		t.Fatalf("got %d rows, want 5", len(kb.InlineKeyboard))
	}

	seen := 0
	for _, row := range kb.InlineKeyboard[:4] {
		for _, btn := range row {
			if !strings.HasPrefix(btn.CallbackData, PrefixMonth) {
				t.Errorf("month button callback = %q", btn.CallbackData)
			}
			seen++
		}
	}
	if seen != 12 {
		t.Errorf("got %d month buttons, want 12", seen)
	}
}

func TestMonthActionsCallbacks(t *testing.T) {
	kb := MonthActions("Enero")

	var data []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			data = append(data, btn.CallbackData)
		}
	}

	for _, want := range []string{
		"act_month:Enero",
		"act_week:Enero:1",
		"act_week:Enero:5",
		"sel_day:Enero",
	} {
		found := false
		for _, d := range data {
			if d == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing callback %q in %v", want, data)
		}
	}
}

func TestDaysGridRespectsMonthLength(t *testing.T) {
	count := func(monthName string) int {
		kb := Days(monthName, 2026)
		n := 0
		for _, row := range kb.InlineKeyboard {
			for _, btn := range row {
				if strings.HasPrefix(btn.CallbackData, PrefixDay) {
					n++
				}
			}
		}
		return n
	}

	if got := count("Febrero"); got != 28 {
		t.Errorf("Febrero 2026 grid has %d days, want 28", got)
	}
	if got := count("Enero"); got != 31 {
		t.Errorf("Enero grid has %d days, want 31", got)
	}
}

func TestRSVPButton(t *testing.T) {
	kb := RSVPButton(3)
	btn := kb.InlineKeyboard[0][0]
	if btn.Text != "✋ Asistiré (3)" {
		t.Errorf("button text = %q", btn.Text)
	}
	if btn.CallbackData != CbRSVP {
		t.Errorf("callback = %q", btn.CallbackData)
	}
}
