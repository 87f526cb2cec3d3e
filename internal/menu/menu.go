// Package menu builds the inline keyboards and static texts of the
// interactive Telegram menu. Callback data stays short and prefix-routed so
// the dispatcher can switch on it without state.
package menu

import (
	"fmt"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/asccclass/agendatp/internal/agenda"
)

// Callback data values and prefixes. Prefixed entries carry the month name
// (and week or day number) after the colon, e.g. "act_week:Enero:2".
const (
	CbCurrentMonth = "demo_mes"
	CbCurrentWeek  = "demo_semana"
	CbCurrentDay   = "demo_dia"
	CbPickMonth    = "menu_specific"
	CbSchedules    = "info_schedule"
	CbGroups       = "info_groups"
	CbClose        = "cancel"
	CbMainMenu     = "menu_main"
	CbRSVP         = "rsvp"

	PrefixMonth   = "month:"     // open the per-month action menu
	PrefixFull    = "act_month:" // full month digest
	PrefixWeek    = "act_week:"  // act_week:{Mes}:{N}
	PrefixDayMenu = "sel_day:"
	PrefixDay     = "act_day:" // act_day:{Mes}:{D}
)

// MainText heads the main menu message.
const MainText = "👋 ¡Hola! Soy el bot de la agenda.\n¿Qué te gustaría consultar?"

// Main is the entry menu.
func Main() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📅 Agenda del mes actual").WithCallbackData(CbCurrentMonth),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📆 Esta semana").WithCallbackData(CbCurrentWeek),
			tu.InlineKeyboardButton("☀️ Hoy").WithCallbackData(CbCurrentDay),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🔎 Consultar otro mes").WithCallbackData(CbPickMonth),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🕒 Horarios de servicios").WithCallbackData(CbSchedules),
			tu.InlineKeyboardButton("👥 Grupos").WithCallbackData(CbGroups),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("❌ Cerrar").WithCallbackData(CbClose),
		),
	)
}

// Months lists the twelve months, three per row.
func Months() *telego.InlineKeyboardMarkup {
	var rows [][]telego.InlineKeyboardButton
	for i := 0; i < 12; i += 3 {
		row := make([]telego.InlineKeyboardButton, 0, 3)
		for j := i; j < i+3; j++ {
			name := agenda.MonthNames[j]
			row = append(row, tu.InlineKeyboardButton(name).WithCallbackData(PrefixMonth+name))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("⬅️ Volver").WithCallbackData(CbMainMenu),
	))
	return &telego.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// MonthActions offers the per-month views: full digest, one of the five fixed
// weeks, or a specific day.
func MonthActions(monthName string) *telego.InlineKeyboardMarkup {
	weekRow1 := make([]telego.InlineKeyboardButton, 0, 3)
	weekRow2 := make([]telego.InlineKeyboardButton, 0, 2)
	for w := 1; w <= 5; w++ {
		btn := tu.InlineKeyboardButton(fmt.Sprintf("Semana %d", w)).
			WithCallbackData(fmt.Sprintf("%s%s:%d", PrefixWeek, monthName, w))
		if w <= 3 {
			weekRow1 = append(weekRow1, btn)
		} else {
			weekRow2 = append(weekRow2, btn)
		}
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📖 Mes completo").WithCallbackData(PrefixFull+monthName),
		),
		weekRow1,
		weekRow2,
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📆 Por día").WithCallbackData(PrefixDayMenu+monthName),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("⬅️ Volver").WithCallbackData(CbPickMonth),
		),
	)
}

// Days is the day grid for one month, seven buttons per row.
func Days(monthName string, year int) *telego.InlineKeyboardMarkup {
	month := agenda.MonthNumber(monthName)
	days := 31
	if month > 0 {
		days = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	}

	var rows [][]telego.InlineKeyboardButton
	row := make([]telego.InlineKeyboardButton, 0, 7)
	for d := 1; d <= days; d++ {
		row = append(row, tu.InlineKeyboardButton(fmt.Sprintf("%d", d)).
			WithCallbackData(fmt.Sprintf("%s%s:%d", PrefixDay, monthName, d)))
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]telego.InlineKeyboardButton, 0, 7)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("⬅️ Volver").WithCallbackData(PrefixMonth+monthName),
	))
	return &telego.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// BackToMain is the lone back row under info screens.
func BackToMain() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("⬅️ Volver al menú").WithCallbackData(CbMainMenu),
		),
	)
}

// RSVPButton is the attendance counter attached to daily reminders.
func RSVPButton(count int) *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(fmt.Sprintf("✋ Asistiré (%d)", count)).WithCallbackData(CbRSVP),
		),
	)
}

// ScheduleText answers the "Horarios de servicios" button.
const ScheduleText = `🕒 *Horarios de servicios*

⛪ Domingo: 10:00 AM y 1:00 PM
🙏 Martes (oración): 7:00 PM
📖 Jueves (estudio bíblico): 7:30 PM
🔥 Viernes (jóvenes): 8:00 PM

📍 Tierra Prometida Atizapán`

// GroupsText answers the "Grupos" button.
const GroupsText = `👥 *Grupos y ministerios*

🔥 Jóvenes — viernes 8:00 PM
❤️ Matrimonios — segundo sábado del mes
🎈 Niños — domingos durante el servicio
🎵 Alabanza — ensayos miércoles 7:00 PM
🤝 Obra social — proyecto Eunice

Escribe /ayuda para ver los comandos disponibles.`

// HelpText answers /ayuda and unknown commands.
const HelpText = `ℹ️ *Comandos disponibles*

/menu — abrir el menú interactivo
/todo — agenda completa del mes actual
/semana — agenda de la semana actual
/dia 4 Enero — actividades de un día
Enero Semana 2 — semana fija de un mes

También puedes tocar los botones de los mensajes.`
