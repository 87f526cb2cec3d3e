package gateway

import (
	"strconv"
	"strings"

	"github.com/asccclass/agendatp/internal/agenda"
)

type action int

const (
	actMenu action = iota
	actHelp
	actFullMonth
	actWeekCurrent
	actWeekFixed
	actDay
)

// request is a parsed user petition.
type request struct {
	action action
	month  string // canonical month name, "" means current month
	week   int
	day    int
}

func (r request) monthNumber() int {
	return agenda.MonthNumber(r.month)
}

// parseRequest understands the slash commands plus the two free-text forms
// people actually type in the group: "Enero Semana 2" and "4 de Enero".
func parseRequest(text string) (request, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return request{}, false
	}

	cmd := strings.ToLower(fields[0])
	// Group chats address commands as /todo@BotName.
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}

	switch cmd {
	case "/start", "/menu":
		return request{action: actMenu}, true
	case "/ayuda", "/help":
		return request{action: actHelp}, true
	case "/todo":
		r := request{action: actFullMonth}
		if len(fields) > 1 {
			if m := agenda.MonthNumber(fields[1]); m > 0 {
				r.month = agenda.MonthNames[m-1]
			}
		}
		return r, true
	case "/semana":
		// Bare /semana is the current week; "/semana 2 Enero" a fixed one.
		if len(fields) >= 3 {
			if w, err := strconv.Atoi(fields[1]); err == nil && w >= 1 && w <= 6 {
				if m := agenda.MonthNumber(fields[2]); m > 0 {
					return request{action: actWeekFixed, month: agenda.MonthNames[m-1], week: w}, true
				}
			}
		}
		return request{action: actWeekCurrent}, true
	case "/dia":
		return parseDayWords(fields[1:])
	case "todo":
		if len(fields) >= 2 {
			if m := agenda.MonthNumber(fields[1]); m > 0 {
				return request{action: actFullMonth, month: agenda.MonthNames[m-1]}, true
			}
		}
		return request{}, false
	}

	// "Enero Semana 2"
	if m := agenda.MonthNumber(fields[0]); m > 0 && len(fields) >= 3 && strings.EqualFold(fields[1], "semana") {
		if w, err := strconv.Atoi(fields[2]); err == nil && w >= 1 && w <= 6 {
			return request{action: actWeekFixed, month: agenda.MonthNames[m-1], week: w}, true
		}
	}

	// "4 de Enero" / "4 Enero"
	if _, err := strconv.Atoi(fields[0]); err == nil {
		return parseDayWords(fields)
	}

	return request{}, false
}

// parseDayWords parses the tail of a day petition: "4 Enero" or "4 de Enero".
func parseDayWords(fields []string) (request, bool) {
	if len(fields) < 2 {
		return request{}, false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return request{}, false
	}

	monthTok := fields[1]
	if strings.EqualFold(monthTok, "de") {
		if len(fields) < 3 {
			return request{}, false
		}
		monthTok = fields[2]
	}

	m := agenda.MonthNumber(monthTok)
	if m == 0 {
		return request{}, false
	}
	return request{action: actDay, month: agenda.MonthNames[m-1], day: day}, true
}
