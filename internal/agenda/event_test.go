package agenda

import (
	"testing"
	"time"
)

func testNormalizer() Normalizer {
	return NewNormalizer(2026, time.UTC)
}

func TestNormalizeRowSkips(t *testing.T) {
	n := testNormalizer()

	cases := []struct {
		name string
		row  Row
	}{
		{"missing name", Row{"Mes": "1", "Día": "4"}},
		{"literal undefined", Row{"Evento": "undefined", "Mes": "1", "Día": "4"}},
		{"missing day", Row{"Evento": "Culto", "Mes": "1"}},
		{"no month anywhere", Row{"Evento": "Culto", "Día": "4"}},
		{"non-numeric day", Row{"Evento": "Culto", "Mes": "1", "Día": "cuatro"}},
	}

	for _, tc := range cases {
		if _, ok := n.NormalizeRow(tc.row, ""); ok {
			t.Errorf("%s: expected row to be skipped", tc.name)
		}
	}
}

func TestNormalizeRowBasic(t *testing.T) {
	n := testNormalizer()

	ev, ok := n.NormalizeRow(Row{
		"Evento":      "  Cena de Pan  ",
		"Mes":         "9",
		"Día":         "11",
		"Lugar":       "Auditorio",
		"Estado":      "Activo",
		"Hora":        "6:00 PM",
		"Descripción": "Trae a tu familia",
	}, "Septiembre")
	if !ok {
		t.Fatal("expected event")
	}

	if ev.Name != "Cena de Pan" {
		t.Errorf("name = %q", ev.Name)
	}
	if ev.Day != 11 {
		t.Errorf("day = %d", ev.Day)
	}
	want := time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC)
	if !ev.Date.Equal(want) {
		t.Errorf("date = %v, want %v", ev.Date, want)
	}
	// 2026-09-11 is a Friday; no weekday column, so it gets derived.
	if ev.WeekdayAbbrev != "Vie" {
		t.Errorf("weekday = %q, want Vie", ev.WeekdayAbbrev)
	}
	if ev.SourceMonthName != "Septiembre" {
		t.Errorf("source month = %q", ev.SourceMonthName)
	}
	if ev.Highlighted {
		t.Error("unexpected highlight")
	}
}

func TestNormalizeRowMonthFromSheetTitle(t *testing.T) {
	n := testNormalizer()

	ev, ok := n.NormalizeRow(Row{"Evento": "Vigilia", "Día": "4"}, "AGENDA ENERO 2026")
	if !ok {
		t.Fatal("expected event")
	}
	if ev.Date.Month() != time.January || ev.Date.Day() != 4 {
		t.Errorf("date = %v, want January 4", ev.Date)
	}
}

func TestNormalizeRowWeekdayFromColumn(t *testing.T) {
	n := testNormalizer()

	cases := []struct {
		raw  string
		want string
	}{
		{"sábado", "Sáb"},
		{"VIERNES", "Vie"},
		{"dom.", "Dom"},
		{"Mié", "Mié"},
	}

	for _, tc := range cases {
		ev, ok := n.NormalizeRow(Row{"Evento": "Culto", "Mes": "1", "Día": "10", "Día de la semana": tc.raw}, "")
		if !ok {
			t.Fatalf("%q: expected event", tc.raw)
		}
		if ev.WeekdayAbbrev != tc.want {
			t.Errorf("weekday %q normalized to %q, want %q", tc.raw, ev.WeekdayAbbrev, tc.want)
		}
	}
}

func TestNormalizeRowHighlight(t *testing.T) {
	n := testNormalizer()

	cases := []struct {
		column string
		value  string
		want   bool
	}{
		{"Destacado", "SI", true},
		{"Destacado", "SÍ", true}, // diacritics folded before comparing
		{"Destacado", " x ", true},
		{"Importancia", "Estelar", true},
		{"Estelar", "X", true},
		{"estelar", "si", true},
		{"Destacado", "no", false},
		{"Destacado", "", false},
	}

	for _, tc := range cases {
		row := Row{"Evento": "Congreso", "Mes": "1", "Día": "15", tc.column: tc.value}
		ev, ok := n.NormalizeRow(row, "")
		if !ok {
			t.Fatalf("%s=%q: expected event", tc.column, tc.value)
		}
		if ev.Highlighted != tc.want {
			t.Errorf("%s=%q: highlighted = %v, want %v", tc.column, tc.value, ev.Highlighted, tc.want)
		}
	}
}

func TestSameRunAs(t *testing.T) {
	n := testNormalizer()
	mk := func(day, month int, name, status string) Event {
		ev, ok := n.NormalizeRow(Row{"Evento": name, "Mes": "9", "Día": "1", "Estado": status}, "")
		if !ok {
			t.Fatal("fixture row rejected")
		}
		ev.Date = time.Date(2026, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		ev.Day = day
		return ev
	}

	a := mk(11, 9, "Congreso", "Activo")
	b := mk(12, 9, "Congreso", "Activo")
	if !a.SameRunAs(b) {
		t.Error("consecutive days with equal name/status should chain")
	}

	c := mk(12, 9, "Congreso", StatusCancelled)
	if a.SameRunAs(c) {
		t.Error("a cancelled day must not chain with an active one")
	}

	d := mk(13, 9, "Congreso", "Activo")
	if a.SameRunAs(d) {
		t.Error("a two-day gap must not chain")
	}

	// Month boundary: Sep 30 -> Oct 1 still chains.
	e := mk(30, 9, "Congreso", "Activo")
	f := mk(1, 10, "Congreso", "Activo")
	if !e.SameRunAs(f) {
		t.Error("runs should cross the month boundary")
	}
}
