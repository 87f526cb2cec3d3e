package sheets

import "testing"

func TestRowsFromValues(t *testing.T) {
	values := [][]interface{}{
		{"Evento", "Mes", "Día", "Hora", ""},
		{"Culto", "9", "11", "6:00 PM", "ignorado"},
		{"", "", ""},
		{"Vigilia", 9, 12},
	}

	rows := RowsFromValues(values)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank row skipped)", len(rows))
	}

	if rows[0]["Evento"] != "Culto" || rows[0]["Hora"] != "6:00 PM" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if _, ok := rows[0][""]; ok {
		t.Error("cells under a blank header must be dropped")
	}

	// Numeric cells arrive as interface{} and are stringified.
	if rows[1]["Mes"] != "9" || rows[1]["Día"] != "12" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestRowsFromValuesEmpty(t *testing.T) {
	if got := RowsFromValues(nil); got != nil {
		t.Errorf("nil grid should yield nil, got %v", got)
	}
	if got := RowsFromValues([][]interface{}{{"Evento"}}); got != nil {
		t.Errorf("header-only grid should yield nil, got %v", got)
	}
}
