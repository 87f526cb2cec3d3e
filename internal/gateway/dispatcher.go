package gateway

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/asccclass/agendatp/internal/agenda"
	"github.com/asccclass/agendatp/internal/channel"
	"github.com/asccclass/agendatp/internal/config"
	"github.com/asccclass/agendatp/internal/greeter"
	"github.com/asccclass/agendatp/internal/menu"
	"github.com/asccclass/agendatp/internal/notify"
	"github.com/asccclass/agendatp/internal/rsvp"
	"github.com/asccclass/agendatp/internal/sheets"
)

const readFailure = "⚠️ No pude leer la agenda en este momento, intenta más tarde."

// Dispatcher routes inbound messages and button taps to the right digest, and
// is also the publisher the scheduler calls for the timed announcements.
type Dispatcher struct {
	source     *sheets.Source
	normalizer agenda.Normalizer
	store      *rsvp.Store
	greeter    *greeter.Greeter
	fanout     *notify.Fanout
	telegram   *channel.TelegramChannel

	channelID int64
	imagesDir string
	year      int
	loc       *time.Location
}

// NewDispatcher wires the dispatcher with everything it talks to. The
// telegram channel may be nil in one-shot CLI mode.
func NewDispatcher(src *sheets.Source, store *rsvp.Store, g *greeter.Greeter, f *notify.Fanout, tg *channel.TelegramChannel, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		source:     src,
		normalizer: agenda.NewNormalizer(cfg.TargetYear, cfg.Location),
		store:      store,
		greeter:    g,
		fanout:     f,
		telegram:   tg,
		channelID:  cfg.ChannelID,
		imagesDir:  cfg.ImagesDir,
		year:       cfg.TargetYear,
		loc:        cfg.Location,
	}
}

// HandleMessage is the entry point every channel calls.
func (d *Dispatcher) HandleMessage(env channel.Envelope) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️ [Dispatcher] Panic recuperado: %v", r)
		}
	}()

	if env.IsCallback {
		d.handleCallback(env)
		return
	}

	req, ok := parseRequest(env.Content)
	if !ok {
		// Group chats are full of unrelated talk; only slash commands get
		// a help nudge.
		if strings.HasPrefix(strings.TrimSpace(env.Content), "/") {
			_ = env.Reply(menu.HelpText)
		}
		return
	}

	log.Printf("📩 [%s] %s pidió: %s", env.Platform, env.SenderID, env.Content)
	if env.MarkProcessing != nil {
		_ = env.MarkProcessing()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch req.action {
	case actMenu:
		if env.SendMenu != nil {
			_ = env.SendMenu(menu.MainText, menu.Main())
		} else {
			_ = env.Reply(menu.HelpText)
		}
	case actHelp:
		_ = env.Reply(menu.HelpText)
	case actFullMonth:
		month := req.monthNumber()
		if month == 0 {
			month = int(time.Now().In(d.loc).Month())
		}
		d.replyOrFail(env, func() (string, error) { return d.monthlyDigest(ctx, month) })
	case actWeekCurrent:
		d.replyOrFail(env, func() (string, error) {
			return d.weeklyDigestCurrent(ctx, time.Now().In(d.loc))
		})
	case actWeekFixed:
		d.replyOrFail(env, func() (string, error) {
			return d.weeklyDigestFixed(ctx, req.month, req.week)
		})
	case actDay:
		d.replyOrFail(env, func() (string, error) {
			return d.dayView(ctx, req.month, req.day)
		})
	}
}

func (d *Dispatcher) replyOrFail(env channel.Envelope, render func() (string, error)) {
	text, err := render()
	if err != nil {
		log.Printf("❌ [Dispatcher] %v", err)
		_ = env.Reply(readFailure)
		return
	}
	_ = env.Reply(text)
}

// handleCallback reacts to inline keyboard taps.
func (d *Dispatcher) handleCallback(env channel.Envelope) {
	data := env.Content
	log.Printf("🔘 [%s] %s tocó: %s", env.Platform, env.SenderID, data)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ack := func(toast string) {
		if env.AnswerCallback != nil {
			_ = env.AnswerCallback(toast)
		}
	}

	switch {
	case data == menu.CbMainMenu:
		ack("")
		_ = env.EditMenu(menu.MainText, menu.Main())

	case data == menu.CbPickMonth:
		ack("")
		_ = env.EditMenu("🔎 Elige un mes:", menu.Months())

	case data == menu.CbCurrentMonth:
		ack("")
		month := int(time.Now().In(d.loc).Month())
		d.sendDigestBehindMenu(env, func() (string, error) { return d.monthlyDigest(ctx, month) })

	case data == menu.CbCurrentWeek:
		ack("")
		d.sendDigestBehindMenu(env, func() (string, error) {
			return d.weeklyDigestCurrent(ctx, time.Now().In(d.loc))
		})

	case data == menu.CbCurrentDay:
		ack("")
		d.sendDigestBehindMenu(env, func() (string, error) {
			now := time.Now().In(d.loc)
			return d.dayView(ctx, agenda.MonthNames[int(now.Month())-1], now.Day())
		})

	case strings.HasPrefix(data, menu.PrefixMonth):
		monthName := strings.TrimPrefix(data, menu.PrefixMonth)
		ack("")
		_ = env.EditMenu(fmt.Sprintf("📖 ¿Qué quieres ver de *%s*?", monthName), menu.MonthActions(monthName))

	case strings.HasPrefix(data, menu.PrefixFull):
		monthName := strings.TrimPrefix(data, menu.PrefixFull)
		ack("")
		d.sendDigestBehindMenu(env, func() (string, error) {
			return d.monthlyDigest(ctx, agenda.MonthNumber(monthName))
		})

	case strings.HasPrefix(data, menu.PrefixWeek):
		monthName, week, ok := splitMonthArg(strings.TrimPrefix(data, menu.PrefixWeek))
		if !ok {
			ack("Botón inválido")
			return
		}
		ack("")
		d.sendDigestBehindMenu(env, func() (string, error) {
			return d.weeklyDigestFixed(ctx, monthName, week)
		})

	case strings.HasPrefix(data, menu.PrefixDayMenu):
		monthName := strings.TrimPrefix(data, menu.PrefixDayMenu)
		ack("")
		_ = env.EditMenu(fmt.Sprintf("📆 Elige un día de *%s*:", monthName), menu.Days(monthName, d.year))

	case strings.HasPrefix(data, menu.PrefixDay):
		monthName, day, ok := splitMonthArg(strings.TrimPrefix(data, menu.PrefixDay))
		if !ok {
			ack("Botón inválido")
			return
		}
		ack("")
		d.sendDigestBehindMenu(env, func() (string, error) {
			return d.dayView(ctx, monthName, day)
		})

	case data == menu.CbSchedules:
		ack("")
		_ = env.EditMenu(menu.ScheduleText, menu.BackToMain())

	case data == menu.CbGroups:
		ack("")
		_ = env.EditMenu(menu.GroupsText, menu.BackToMain())

	case data == menu.CbClose:
		ack("")
		_ = env.EditMenu("✅ Menú cerrado. Escribe /menu para abrirlo de nuevo.", nil)

	case data == menu.CbRSVP:
		d.handleRSVP(ctx, env)

	default:
		ack("Opción no reconocida")
	}
}

// sendDigestBehindMenu posts the digest as a fresh message so the menu stays
// usable above it.
func (d *Dispatcher) sendDigestBehindMenu(env channel.Envelope, render func() (string, error)) {
	d.replyOrFail(env, render)
}

func (d *Dispatcher) handleRSVP(ctx context.Context, env channel.Envelope) {
	if d.store == nil {
		return
	}

	name := env.SenderName
	if name == "" {
		name = env.SenderID
	}
	count, attending, err := d.store.Toggle(ctx, env.MessageID, env.SenderID, name)
	if err != nil {
		log.Printf("❌ [RSVP] %v", err)
		if env.AnswerCallback != nil {
			_ = env.AnswerCallback("No se pudo registrar, intenta de nuevo")
		}
		return
	}

	toast := "Se quitó tu asistencia"
	if attending {
		toast = "✅ ¡Asistencia registrada!"
	}
	if env.AnswerCallback != nil {
		_ = env.AnswerCallback(toast)
	}
	if env.EditMenuMarkup != nil {
		_ = env.EditMenuMarkup(menu.RSVPButton(count))
	}
}

// ---- digest rendering ----

func (d *Dispatcher) monthlyDigest(ctx context.Context, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("mes fuera de rango: %d", month)
	}
	data, err := d.source.MonthData(ctx, month)
	if err != nil {
		return "", err
	}
	return d.normalizer.FormatMonthlyDigest(data.Rows, data.Meta, month), nil
}

func (d *Dispatcher) weeklyDigestFixed(ctx context.Context, monthName string, week int) (string, error) {
	monthIndex := agenda.MonthNumber(monthName) - 1
	if monthIndex < 0 {
		return "", fmt.Errorf("mes desconocido: %q", monthName)
	}

	r, ok := agenda.ComputeWeekRange(d.year, monthIndex, week, d.loc)
	if !ok {
		return fmt.Sprintf("No encontré la semana %d de %s.", week, monthName), nil
	}

	events, label, err := d.source.EventsForWindow(ctx, d.normalizer, r.Start, r.End)
	if err != nil {
		return "", err
	}
	return agenda.FormatWeeklyDigest(events, r.Start, r.End, monthIndex, label, r.IsLastWeek), nil
}

func (d *Dispatcher) weeklyDigestCurrent(ctx context.Context, now time.Time) (string, error) {
	start, end := agenda.CurrentWeekRange(now)
	events, label, err := d.source.EventsForWindow(ctx, d.normalizer, start, end)
	if err != nil {
		return "", err
	}

	monthEnd := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, d.loc)
	isLast := !end.Before(monthEnd)
	return agenda.FormatWeeklyDigest(events, start, end, int(now.Month())-1, label, isLast), nil
}

func (d *Dispatcher) dayView(ctx context.Context, monthName string, day int) (string, error) {
	month := agenda.MonthNumber(monthName)
	if month == 0 {
		return "", fmt.Errorf("mes desconocido: %q", monthName)
	}

	data, err := d.source.MonthData(ctx, month)
	if err != nil {
		return "", err
	}

	var onDay []agenda.Event
	for _, row := range data.Rows {
		ev, ok := d.normalizer.NormalizeRow(row, data.SheetTitle)
		if !ok {
			continue
		}
		if ev.Day == day && int(ev.Date.Month()) == month {
			onDay = append(onDay, ev)
		}
	}
	return agenda.FormatDayEvents(onDay, day, data.MonthName), nil
}

// RenderMonthly exposes the monthly digest for one-shot CLI use.
func (d *Dispatcher) RenderMonthly(ctx context.Context, month int) (string, error) {
	return d.monthlyDigest(ctx, month)
}

// RenderWeek exposes a fixed week digest for one-shot CLI use.
func (d *Dispatcher) RenderWeek(ctx context.Context, monthName string, week int) (string, error) {
	return d.weeklyDigestFixed(ctx, monthName, week)
}

// RenderDay exposes the day view for one-shot CLI use.
func (d *Dispatcher) RenderDay(ctx context.Context, monthName string, day int) (string, error) {
	return d.dayView(ctx, monthName, day)
}

// ---- scheduled publishing ----

// SendMonthlySummary posts the month's cover image (when present) and digest
// to the Telegram channel, and mirrors the digest to the other notifiers.
func (d *Dispatcher) SendMonthlySummary(ctx context.Context, month int) {
	text, err := d.monthlyDigest(ctx, month)
	if err != nil {
		log.Printf("❌ [Publicar] resumen mensual: %v", err)
		return
	}

	if d.telegram != nil && d.channelID != 0 {
		cover := filepath.Join(d.imagesDir, fmt.Sprintf("%02d_%s.png", month, strings.ToUpper(agenda.MonthNames[month-1])))
		if _, err := os.Stat(cover); err == nil {
			if err := d.telegram.SendPhoto(d.channelID, cover, ""); err != nil {
				log.Printf("⚠️ [Publicar] portada: %v", err)
			}
		}
		if _, err := d.telegram.SendMessage(d.channelID, text); err != nil {
			log.Printf("❌ [Publicar] Telegram: %v", err)
		}
	}
	if d.fanout != nil {
		d.fanout.Broadcast(ctx, text)
	}
	log.Printf("✅ [Publicar] Resumen mensual de %s enviado", agenda.MonthNames[month-1])
}

// SendWeeklySummary posts the Monday digest for the week containing now.
func (d *Dispatcher) SendWeeklySummary(ctx context.Context, now time.Time) {
	text, err := d.weeklyDigestCurrent(ctx, now)
	if err != nil {
		log.Printf("❌ [Publicar] resumen semanal: %v", err)
		return
	}

	if d.telegram != nil && d.channelID != 0 {
		if _, err := d.telegram.SendMessage(d.channelID, text); err != nil {
			log.Printf("❌ [Publicar] Telegram: %v", err)
		}
	}
	if d.fanout != nil {
		d.fanout.Broadcast(ctx, text)
	}
	log.Println("✅ [Publicar] Resumen semanal enviado")
}

// TodayEvents loads and filters the events dated exactly on day.
func (d *Dispatcher) TodayEvents(ctx context.Context, day time.Time) ([]agenda.Event, error) {
	events, _, err := d.todayAgenda(ctx, day)
	return events, err
}

// todayAgenda returns the day's events plus the month header metadata, which
// feeds the greeting prompt.
func (d *Dispatcher) todayAgenda(ctx context.Context, day time.Time) ([]agenda.Event, agenda.Metadata, error) {
	data, err := d.source.MonthData(ctx, int(day.Month()))
	if err != nil {
		return nil, agenda.Metadata{}, err
	}

	var events []agenda.Event
	for _, row := range data.Rows {
		if ev, ok := d.normalizer.NormalizeRow(row, data.SheetTitle); ok {
			events = append(events, ev)
		}
	}
	return agenda.EventsOn(events, day), data.Meta, nil
}

// SendDailyReminder posts today's reminder with the attendance button. Days
// without events stay silent.
func (d *Dispatcher) SendDailyReminder(ctx context.Context, now time.Time) {
	events, meta, err := d.todayAgenda(ctx, now)
	if err != nil {
		log.Printf("❌ [Publicar] recordatorio diario: %v", err)
		return
	}
	if len(events) == 0 {
		log.Println("💤 [Publicar] Hoy no hay eventos, sin recordatorio.")
		return
	}

	names := make([]string, 0, len(events))
	for _, ev := range events {
		if !ev.Cancelled() {
			names = append(names, ev.Name)
		}
	}
	greeting := d.greeter.DailyGreeting(ctx, now, names, meta.Title, meta.Description)
	text := agenda.FormatDailyReminder(events, now, greeting)

	if d.telegram != nil && d.channelID != 0 {
		if _, err := d.telegram.SendMenu(d.channelID, text, menu.RSVPButton(0)); err != nil {
			log.Printf("❌ [Publicar] Telegram: %v", err)
		}
	}
	if d.fanout != nil {
		d.fanout.Broadcast(ctx, text)
	}
	log.Printf("✅ [Publicar] Recordatorio diario con %d eventos", len(events))
}

// CheckStellarEvents announces highlighted events exactly five days ahead.
func (d *Dispatcher) CheckStellarEvents(ctx context.Context, now time.Time) {
	target := now.AddDate(0, 0, 5)
	data, err := d.source.MonthData(ctx, int(target.Month()))
	if err != nil {
		log.Printf("❌ [Publicar] alerta estelar: %v", err)
		return
	}

	for _, row := range data.Rows {
		ev, ok := d.normalizer.NormalizeRow(row, data.SheetTitle)
		if !ok || !ev.Highlighted || ev.Cancelled() {
			continue
		}
		if ev.Date.Year() != target.Year() || ev.Date.Month() != target.Month() || ev.Day != target.Day() {
			continue
		}

		text := agenda.FormatStellarAlert(ev)
		if d.telegram != nil && d.channelID != 0 {
			if _, err := d.telegram.SendMessage(d.channelID, text); err != nil {
				log.Printf("❌ [Publicar] Telegram: %v", err)
			}
		}
		if d.fanout != nil {
			d.fanout.Broadcast(ctx, text)
		}
		log.Printf("🚀 [Publicar] Alerta estelar: %s", ev.Name)
	}
}

// splitMonthArg parses "Enero:4" into its month name and number.
func splitMonthArg(s string) (string, int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return "", 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, false
	}
	return parts[0], n, true
}
