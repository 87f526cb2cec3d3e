package agenda

import (
	"strings"
	"testing"
)

func TestFormatMonthlyDigestEmpty(t *testing.T) {
	n := testNormalizer()

	out := n.FormatMonthlyDigest(nil, Metadata{MonthName: "Septiembre"}, 9)
	if !strings.Contains(out, "🗓 *AGENDA DE SEPTIEMBRE*") {
		t.Errorf("missing default header:\n%s", out)
	}
	if !strings.Contains(out, noEventsMonthly) {
		t.Errorf("missing empty-month line:\n%s", out)
	}
	if strings.Contains(out, "Semana") {
		t.Errorf("empty digest must not render week headers:\n%s", out)
	}
}

func TestFormatMonthlyDigestCustomHeader(t *testing.T) {
	n := testNormalizer()

	meta := Metadata{Title: "Agenda Especial", Description: "Mes de la familia", MonthName: "Septiembre"}
	out := n.FormatMonthlyDigest(nil, meta, 9)
	if !strings.Contains(out, "🗓 *Agenda Especial*") {
		t.Errorf("custom title not used:\n%s", out)
	}
	if !strings.Contains(out, "_Mes de la familia_") {
		t.Errorf("description not rendered:\n%s", out)
	}
	if strings.Contains(out, "AGENDA DE") {
		t.Errorf("default header should be replaced by the custom title:\n%s", out)
	}
}

func TestFormatMonthlyDigestSingleEvents(t *testing.T) {
	n := testNormalizer()

	rows := []Row{
		{"Evento": "Culto", "Mes": "9", "Día": "10", "Hora": "6:00 PM"},
		{"Evento": "Torneo de Fútbol", "Mes": "9", "Día": "12", "Lugar": "Parque Central"},
		{"Evento": "Cena del Señor", "Mes": "9", "Día": "13", "Lugar": "Tierra Prometida Atizapán"},
	}
	out := n.FormatMonthlyDigest(rows, Metadata{MonthName: "Septiembre"}, 9)

	// 2026-09-11 is a Friday, so the 10th is Thursday and the 13th Sunday.
	if !strings.Contains(out, "🔹 Jue 10: *Culto* - 6:00 PM\n") {
		t.Errorf("single event with time:\n%s", out)
	}
	if !strings.Contains(out, "⚽ Sáb 12: *Torneo de Fútbol* (Parque Central)\n") {
		t.Errorf("off-site place should be appended:\n%s", out)
	}
	if !strings.Contains(out, "🍞 Dom 13: *Cena del Señor*\n") {
		t.Errorf("home venue must be suppressed:\n%s", out)
	}
	if !strings.Contains(out, "*Semana 2*") {
		t.Errorf("missing week header:\n%s", out)
	}
	if !strings.Contains(out, closingLine) {
		t.Errorf("missing closing line:\n%s", out)
	}
}

func TestFormatMonthlyDigestRunAcrossWeekBuckets(t *testing.T) {
	n := testNormalizer()

	// January 2026: the 28th is a Wednesday. The run 28-29 straddles the
	// Semana 4 / Semana 5 boundary; it must render once, under Semana 4,
	// and leave Semana 5 without pending events (so no header).
	rows := []Row{
		{"Evento": "Retiro", "Mes": "1", "Día": "28"},
		{"Evento": "Retiro", "Mes": "1", "Día": "29"},
	}
	out := n.FormatMonthlyDigest(rows, Metadata{MonthName: "Enero"}, 1)

	if !strings.Contains(out, "Mié 28 y Jue 29: *Retiro*") {
		t.Errorf("two-day run should join with y:\n%s", out)
	}
	if strings.Count(out, "Retiro") != 1 {
		t.Errorf("run rendered more than once:\n%s", out)
	}
	if !strings.Contains(out, "*Semana 4*") {
		t.Errorf("run belongs in Semana 4:\n%s", out)
	}
	if strings.Contains(out, "*Semana 5*") {
		t.Errorf("Semana 5 has nothing left to show:\n%s", out)
	}
}

func TestFormatMonthlyDigestRollover(t *testing.T) {
	n := testNormalizer()

	// Day sequence 28, 29, 2, 3 with the month column never reset: the drop
	// from 29 to 2 pushes the trailing rows into February. They survive as
	// ghosts for run merging but must never be bucketed or rendered.
	rows := []Row{
		{"Evento": "Retiro", "Mes": "1", "Día": "28"},
		{"Evento": "Retiro", "Mes": "1", "Día": "29"},
		{"Evento": "Ensayo", "Mes": "1", "Día": "2"},
		{"Evento": "Ensayo", "Mes": "1", "Día": "3"},
	}
	out := n.FormatMonthlyDigest(rows, Metadata{MonthName: "Enero"}, 1)

	if !strings.Contains(out, "Mié 28 y Jue 29: *Retiro*") {
		t.Errorf("in-month pair lost:\n%s", out)
	}
	if strings.Contains(out, "Ensayo") {
		t.Errorf("rolled-over events must not appear in January's digest:\n%s", out)
	}
	if strings.Contains(out, "*Semana 1*") {
		t.Errorf("shifted days must not land in Semana 1:\n%s", out)
	}
}

func TestFormatMonthlyDigestRunIntoNextMonth(t *testing.T) {
	n := testNormalizer()

	// January 30-31 plus a rolled-over February 1: one run, end annotated.
	// The shifted row keeps the weekday computed for January 1 (Jue); the
	// rollover fold never recomputes WeekdayAbbrev.
	rows := []Row{
		{"Evento": "Congreso", "Mes": "1", "Día": "30"},
		{"Evento": "Congreso", "Mes": "1", "Día": "31"},
		{"Evento": "Congreso", "Mes": "1", "Día": "1"},
	}
	out := n.FormatMonthlyDigest(rows, Metadata{MonthName: "Enero"}, 1)

	if !strings.Contains(out, "🔥 Del Vie 30 al Jue 1 (Feb): *Congreso*\n") {
		t.Errorf("cross-month run should annotate its end date:\n%s", out)
	}
	if strings.Count(out, "Congreso") != 1 {
		t.Errorf("run rendered more than once:\n%s", out)
	}
}

func TestFormatMonthlyDigestCancelledNeverMerges(t *testing.T) {
	n := testNormalizer()

	rows := []Row{
		{"Evento": "Culto", "Mes": "9", "Día": "10", "Estado": "Activo"},
		{"Evento": "Culto", "Mes": "9", "Día": "11", "Estado": "Cancelado", "Hora": "7:00 PM"},
	}
	out := n.FormatMonthlyDigest(rows, Metadata{MonthName: "Septiembre"}, 9)

	if !strings.Contains(out, "🔹 Jue 10: *Culto*\n") {
		t.Errorf("active day missing:\n%s", out)
	}
	if !strings.Contains(out, "❌ Vie 11: (CANCELADO) Culto\n") {
		t.Errorf("cancelled day must render alone, without its time:\n%s", out)
	}
}
