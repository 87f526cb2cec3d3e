package sheets

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/asccclass/agendatp/internal/agenda"
)

// MonthData is everything read from one month tab: the optional custom header
// cells (A2:B2), the column headers (row 3) and the event rows below them.
type MonthData struct {
	SheetTitle string
	MonthName  string
	Month      int // 1-based
	Meta       agenda.Metadata
	Rows       []agenda.Row
}

// Source reads the agenda spreadsheet through a service account.
type Source struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewSource builds the Sheets client from a service-account JSON key.
func NewSource(ctx context.Context, credentialsPath, spreadsheetID string) (*Source, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer %s: %w", credentialsPath, err)
	}

	cfg, err := google.JWTConfigFromJSON(b, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("no se pudo iniciar el servicio de Sheets: %w", err)
	}

	return &Source{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// sheetTitleFor locates the tab whose title mentions the month, e.g.
// "AGENDA SEPTIEMBRE 2026" for Septiembre. Spanish month names carry no
// diacritics, so an uppercase substring check is enough.
func (s *Source) sheetTitleFor(ctx context.Context, monthName string) (string, error) {
	meta, err := s.srv.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("no se pudo listar las hojas: %w", err)
	}

	needle := strings.ToUpper(monthName)
	for _, sh := range meta.Sheets {
		if strings.Contains(strings.ToUpper(sh.Properties.Title), needle) {
			return sh.Properties.Title, nil
		}
	}
	return "", fmt.Errorf("no existe una hoja para %s", monthName)
}

// MonthData reads the full tab of the given 1-based month.
func (s *Source) MonthData(ctx context.Context, month int) (*MonthData, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mes fuera de rango: %d", month)
	}
	monthName := agenda.MonthNames[month-1]

	title, err := s.sheetTitleFor(ctx, monthName)
	if err != nil {
		return nil, err
	}

	data := &MonthData{
		SheetTitle: title,
		MonthName:  monthName,
		Month:      month,
		Meta:       agenda.Metadata{MonthName: monthName},
	}

	// Custom title and description live in A2:B2; both cells are optional.
	head, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, title+"!A2:B2").
		Context(ctx).Do()
	if err == nil && len(head.Values) > 0 {
		row := head.Values[0]
		if len(row) > 0 {
			data.Meta.Title = strings.TrimSpace(fmt.Sprint(row[0]))
		}
		if len(row) > 1 {
			data.Meta.Description = strings.TrimSpace(fmt.Sprint(row[1]))
		}
	}

	// Headers sit on row 3, events from row 4 down.
	body, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, title+"!A3:Z").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer %s: %w", title, err)
	}
	data.Rows = RowsFromValues(body.Values)

	log.Printf("✅ [Sheets] %s: %d filas leídas", title, len(data.Rows))
	return data, nil
}

// RowsFromValues converts a raw value grid (header row first) into keyed rows.
// Cells beyond the header width are dropped; fully blank rows are skipped.
func RowsFromValues(values [][]interface{}) []agenda.Row {
	if len(values) == 0 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(h))
	}

	var rows []agenda.Row
	for _, raw := range values[1:] {
		row := make(agenda.Row, len(headers))
		empty := true
		for i, cell := range raw {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			v := strings.TrimSpace(fmt.Sprint(cell))
			if v != "" {
				empty = false
			}
			row[headers[i]] = v
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows
}

// EventsForWindow loads and normalizes every event of the months touched by
// the [start, end] window. The returned label names those months for digest
// headers, e.g. "Septiembre" or "Septiembre/Octubre".
func (s *Source) EventsForWindow(ctx context.Context, n agenda.Normalizer, start, end time.Time) ([]agenda.Event, string, error) {
	months := []int{int(start.Month())}
	if end.Month() != start.Month() {
		months = append(months, int(end.Month()))
	}

	var events []agenda.Event
	var labels []string
	for _, m := range months {
		data, err := s.MonthData(ctx, m)
		if err != nil {
			// A missing next-month tab only truncates the window.
			if len(events) > 0 {
				log.Printf("⚠️ [Sheets] %v", err)
				continue
			}
			return nil, "", err
		}
		labels = append(labels, data.MonthName)
		for _, row := range data.Rows {
			if ev, ok := n.NormalizeRow(row, data.SheetTitle); ok {
				events = append(events, ev)
			}
		}
	}

	return events, strings.Join(labels, "/"), nil
}
