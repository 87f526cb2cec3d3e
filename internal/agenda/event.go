// Package agenda contains the core of the bot: it turns raw spreadsheet rows
// into canonical events and renders the daily/weekly/monthly digests that get
// pushed to the chat channels. Everything here is pure: no I/O, no shared
// state, safe for concurrent callers.
package agenda

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StatusCancelled is the sentinel value in the "Estado" column that marks a
// cancelled event. Cancelled rows render with the ❌ tag and never merge with
// active rows of the same name.
const StatusCancelled = "Cancelado"

// MonthNames holds the Spanish month names, index 0 = Enero.
var MonthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// shortMonthNames follows the es-MX short month format, without the dot.
var shortMonthNames = []string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// weekdayAbbrevs maps time.Weekday (Sunday = 0) to the es-MX short form.
var weekdayAbbrevs = []string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// Row is one spreadsheet row exposed as named-field lookup. Keys are the
// sheet's header values as-is; values are the raw cell contents.
type Row map[string]string

// Field aliases: the sheet has drifted over time, so a canonical field may
// live under any of several historical column names. First populated alias
// wins.
var (
	aliasName        = []string{"Evento"}
	aliasMonth       = []string{"Mes"}
	aliasDay         = []string{"Día", "Dia"}
	aliasWeekday     = []string{"Día de la semana", "Dia de la semana"}
	aliasPlace       = []string{"Lugar"}
	aliasStatus      = []string{"Estado"}
	aliasTime        = []string{"Hora"}
	aliasDescription = []string{"Descripción", "Descripcion"}
	aliasHighlight   = []string{"Destacado", "Importancia", "Estelar", "estelar"}
)

// Get returns the first non-empty value among the given column aliases.
func (r Row) Get(aliases ...string) string {
	for _, key := range aliases {
		if v, ok := r[key]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Event is the canonical, normalized form of one agenda row. Date is always
// local midnight so same-day checks can compare timestamps directly.
type Event struct {
	Day             int
	WeekdayAbbrev   string
	Name            string
	Place           string
	Status          string
	Time            string
	Description     string
	Date            time.Time
	SourceMonthName string
	Highlighted     bool
}

// Cancelled reports whether the event carries the cancellation sentinel.
func (e Event) Cancelled() bool { return e.Status == StatusCancelled }

// SameRunAs reports whether next extends a contiguous run that currently ends
// at e: identical name and status, and next falls exactly one calendar day
// after e. Day and month are compared, not the year, so runs survive sheets
// that bleed from December into January of the target year.
func (e Event) SameRunAs(next Event) bool {
	if e.Name != next.Name || e.Status != next.Status {
		return false
	}
	d := e.Date.AddDate(0, 0, 1)
	return d.Month() == next.Date.Month() && d.Day() == next.Date.Day()
}

// Normalizer resolves bare month/day pairs from the sheet into full dates.
// TargetYear is the configured agenda year; Loc the configured timezone.
type Normalizer struct {
	TargetYear int
	Loc        *time.Location
}

// NewNormalizer builds a Normalizer; zero year defaults to the current year
// and nil location to time.Local.
func NewNormalizer(targetYear int, loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.Local
	}
	if targetYear == 0 {
		targetYear = time.Now().In(loc).Year()
	}
	return Normalizer{TargetYear: targetYear, Loc: loc}
}

// MonthNumber returns the 1-based month number for a Spanish month name, or 0
// when the name is unknown.
func MonthNumber(name string) int {
	m := strings.ToLower(strings.TrimSpace(name))
	for i, n := range MonthNames {
		if strings.ToLower(n) == m {
			return i + 1
		}
	}
	return 0
}

// monthFromContext scans a sheet title (e.g. "AGENDA ENERO 2026") for an
// embedded month name.
func monthFromContext(context string) int {
	upper := strings.ToUpper(context)
	for i, n := range MonthNames {
		if strings.Contains(upper, strings.ToUpper(n)) {
			return i + 1
		}
	}
	return 0
}

// resolveDate builds the event date from the row's Mes/Día fields, inferring
// the month from the sheet title when the row has none. Returns false when
// either part is missing or non-numeric.
func (n Normalizer) resolveDate(row Row, monthContext string) (time.Time, bool) {
	monthVal := row.Get(aliasMonth...)
	if monthVal == "" && monthContext != "" {
		if m := monthFromContext(monthContext); m > 0 {
			monthVal = strconv.Itoa(m)
		}
	}
	dayVal := row.Get(aliasDay...)
	if monthVal == "" || dayVal == "" {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(monthVal)
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayVal)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(n.TargetYear, time.Month(month), day, 0, 0, 0, 0, n.Loc), true
}

// NormalizeRow converts one raw row plus its month context into an Event.
// Rows without a usable name or date are skipped (ok = false), never errors:
// data quality problems degrade to omission.
func (n Normalizer) NormalizeRow(row Row, monthContext string) (Event, bool) {
	name := row.Get(aliasName...)
	if name == "" || name == "undefined" {
		return Event{}, false
	}

	date, ok := n.resolveDate(row, monthContext)
	if !ok {
		return Event{}, false
	}

	weekday := row.Get(aliasWeekday...)
	if weekday == "" {
		weekday = weekdayAbbrevs[int(date.Weekday())]
	}
	weekday = normalizeWeekday(weekday)

	return Event{
		Day:             date.Day(),
		WeekdayAbbrev:   weekday,
		Name:            name,
		Place:           row.Get(aliasPlace...),
		Status:          row.Get(aliasStatus...),
		Time:            row.Get(aliasTime...),
		Description:     row.Get(aliasDescription...),
		Date:            date,
		SourceMonthName: monthContext,
		Highlighted:     isHighlighted(row.Get(aliasHighlight...)),
	}, true
}

// normalizeWeekday trims to three letters and title-cases ("sáb." → "Sáb").
func normalizeWeekday(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	r := []rune(s)
	if len(r) > 3 {
		r = r[:3]
	}
	if len(r) == 0 {
		return ""
	}
	head := strings.ToUpper(string(r[0]))
	tail := strings.ToLower(string(r[1:]))
	return head + tail
}

// stripDiacritics removes combining marks so "SÍ" compares equal to "SI".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// isHighlighted recognizes the truthy tokens of the Destacado column.
func isHighlighted(raw string) bool {
	if raw == "" {
		return false
	}
	val := strings.ToUpper(strings.TrimSpace(raw))
	if folded, _, err := transform.String(stripDiacritics, val); err == nil {
		val = folded
	}
	return val == "SI" || val == "X" || val == "ESTELAR"
}

// shortMonth renders "(Ene)"-style annotations for cross-month run endings.
func shortMonth(m time.Month) string {
	return shortMonthNames[int(m)-1]
}
