package agenda

import (
	"strings"
	"testing"
	"time"
)

func TestTimeBasedGreeting(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "BUENOS DÍAS"},
		{8, "BUENOS DÍAS"},
		{11, "BUENOS DÍAS"},
		{12, "BUENAS TARDES"},
		{18, "BUENAS TARDES"},
		{19, "BUENAS NOCHES"},
		{23, "BUENAS NOCHES"},
	}

	for _, tc := range cases {
		day := time.Date(2026, time.September, 11, tc.hour, 0, 0, 0, time.UTC)
		if got := TimeBasedGreeting(day); got != tc.want {
			t.Errorf("hour %d: got %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestEventsOn(t *testing.T) {
	events := []Event{
		mkEvent("Culto", "Activo", 2026, time.September, 11),
		mkEvent("Vigilia", "Activo", 2026, time.September, 12),
	}

	got := EventsOn(events, time.Date(2026, time.September, 11, 15, 0, 0, 0, time.UTC))
	if len(got) != 1 || got[0].Name != "Culto" {
		t.Fatalf("EventsOn = %v", got)
	}
}

func TestFormatDailyReminder(t *testing.T) {
	ev := mkEvent("Cena del Señor", "Activo", 2026, time.September, 11)
	ev.Time = "6:00 PM"
	ev.Place = "Auditorio"
	ev.Description = "Trae a tu familia"

	day := time.Date(2026, time.September, 11, 9, 0, 0, 0, time.UTC)
	out := FormatDailyReminder([]Event{ev}, day, "¡Dios les bendiga!")

	if !strings.Contains(out, "☀️ *BUENOS DÍAS HOY EN TIERRA PROMETIDA:*") {
		t.Errorf("salutation header:\n%s", out)
	}
	if !strings.Contains(out, "¡Dios les bendiga!") {
		t.Errorf("greeting line missing:\n%s", out)
	}
	if !strings.Contains(out, "📅 *11 de Septiembre*") {
		t.Errorf("date line:\n%s", out)
	}
	if !strings.Contains(out, "⏰ Hora: 6:00 PM") || !strings.Contains(out, "📍 Lugar: Auditorio") {
		t.Errorf("event details:\n%s", out)
	}
	if !strings.Contains(out, "Trae a tu familia") {
		t.Errorf("description missing:\n%s", out)
	}
}

func TestFormatDayEvents(t *testing.T) {
	if got := FormatDayEvents(nil, 4, "Enero"); got != "El 4 de Enero no tiene actividades registradas." {
		t.Errorf("empty day = %q", got)
	}

	withTime := mkEvent("Culto", "Activo", 2026, time.September, 11)
	withTime.Time = "6:00 PM"
	withTime.Place = "Auditorio"
	noTime := mkEvent("Ensayo", "Activo", 2026, time.September, 11)
	cancelled := mkEvent("Vigilia", StatusCancelled, 2026, time.September, 11)

	out := FormatDayEvents([]Event{withTime, noTime, cancelled}, 11, "Septiembre")

	if !strings.Contains(out, "🔔 *Simulacro para el 11 de Septiembre:*") {
		t.Errorf("header:\n%s", out)
	}
	if !strings.Contains(out, "📍 *6:00 PM* Culto\n") || !strings.Contains(out, "📍 Lugar: Auditorio") {
		t.Errorf("timed event:\n%s", out)
	}
	if !strings.Contains(out, "📍 *Sin hora* Ensayo\n") {
		t.Errorf("missing time should fall back to Sin hora:\n%s", out)
	}
	if !strings.Contains(out, "❌ (CANCELADO) - Vigilia\n") {
		t.Errorf("cancelled line:\n%s", out)
	}
}

func TestFormatStellarAlert(t *testing.T) {
	ev := mkEvent("Congreso Estelar", "Activo", 2026, time.September, 11)
	ev.Time = "7:00 PM"

	out := FormatStellarAlert(ev)
	if !strings.Contains(out, "✨ *Congreso Estelar*") {
		t.Errorf("name:\n%s", out)
	}
	if !strings.Contains(out, "🕒 7:00 PM") {
		t.Errorf("time:\n%s", out)
	}
	// 2026-09-11 is a Friday; the long date uses a lowercased month.
	if !strings.Contains(out, "📅 Viernes 11 de septiembre") {
		t.Errorf("long date:\n%s", out)
	}

	ev.Time = "  "
	if out := FormatStellarAlert(ev); !strings.Contains(out, "Hora no especificada") {
		t.Errorf("blank time fallback:\n%s", out)
	}
}
