package agenda

import (
	"fmt"
	"strings"
	"time"
)

// EventsOn filters events to those dated exactly on the given day.
func EventsOn(events []Event, day time.Time) []Event {
	var out []Event
	for _, ev := range events {
		if sameDay(ev.Date, day) {
			out = append(out, ev)
		}
	}
	return out
}

// TimeBasedGreeting picks the salutation for the reminder header.
func TimeBasedGreeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "BUENOS DÍAS"
	case h < 19:
		return "BUENAS TARDES"
	default:
		return "BUENAS NOCHES"
	}
}

// FormatDailyReminder renders the same-day reminder pushed to the channel:
// salutation header, the (possibly AI-generated) greeting line, the date and
// one block per event with its time, place and description.
func FormatDailyReminder(events []Event, day time.Time, greeting string) string {
	var sb strings.Builder

	monthName := MonthNames[int(day.Month())-1]
	fmt.Fprintf(&sb, "☀️ *%s HOY EN TIERRA PROMETIDA:*\n\n%s\n\n", TimeBasedGreeting(day), greeting)
	fmt.Fprintf(&sb, "📅 *%d de %s*\n\n", day.Day(), monthName)

	for _, ev := range events {
		fmt.Fprintf(&sb, " *%s*\n", ev.Name)
		if ev.Time != "" {
			fmt.Fprintf(&sb, "   ⏰ Hora: %s\n", ev.Time)
		}
		if ev.Place != "" {
			fmt.Fprintf(&sb, "   📍 Lugar: %s\n", ev.Place)
		}
		if ev.Description != "" {
			fmt.Fprintf(&sb, "    %s\n", ev.Description)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatDayEvents renders the on-demand "/dia N Mes" view.
func FormatDayEvents(events []Event, day int, monthName string) string {
	if len(events) == 0 {
		return fmt.Sprintf("El %d de %s no tiene actividades registradas.", day, monthName)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔔 *Simulacro para el %d de %s:*\nEl día de hoy tendremos las siguientes actividades:\n\n", day, monthName)

	for _, ev := range events {
		if ev.Cancelled() {
			fmt.Fprintf(&sb, "❌ (CANCELADO) - %s\n", ev.Name)
		} else {
			hora := ev.Time
			if hora == "" {
				hora = "Sin hora"
			}
			fmt.Fprintf(&sb, "📍 *%s* %s\n", hora, ev.Name)
			if ev.Place != "" {
				fmt.Fprintf(&sb, "   📍 Lugar: %s\n", ev.Place)
			}
			if ev.Description != "" {
				fmt.Fprintf(&sb, "   ℹ️ Detalles: %s\n", ev.Description)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatStellarAlert renders the five-days-ahead notice for a highlighted
// event, with the long-form Spanish date.
func FormatStellarAlert(ev Event) string {
	hora := strings.TrimSpace(ev.Time)
	if hora == "" {
		hora = "Hora no especificada"
	}

	weekdays := []string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
	fecha := fmt.Sprintf("%s %d de %s", weekdays[int(ev.Date.Weekday())], ev.Date.Day(), strings.ToLower(MonthNames[int(ev.Date.Month())-1]))

	return fmt.Sprintf("🚀 ¡Atención! Faltan 5 días para:\n\n✨ *%s*\n🕒 %s\n📅 %s\n\n¡Prepárate! 🙌", ev.Name, hora, fecha)
}
