package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/asccclass/agendatp/internal/agenda"
)

const (
	// defaultReminderMinute is 9:00 AM, used when no event declares a time.
	defaultReminderMinute = 9 * 60
	// floorReminderMinute is 00:05; reminders never fire earlier.
	floorReminderMinute = 5
	// leadMinutes is how far ahead of the earliest event the reminder goes out.
	leadMinutes = 60
)

// ReminderMinute picks the minute of day for the daily reminder: one hour
// before the earliest parseable event time, floored at 00:05. Days whose
// events carry no usable time fall back to 9:00 AM.
func ReminderMinute(times []string) int {
	earliest := -1
	for _, t := range times {
		if m, ok := agenda.ParseTime(t); ok && (earliest < 0 || m < earliest) {
			earliest = m
		}
	}
	if earliest < 0 {
		return defaultReminderMinute
	}

	m := earliest - leadMinutes
	if m < floorReminderMinute {
		m = floorReminderMinute
	}
	return m
}

// Planner owns the one-shot timer of the smart daily reminder. Each day gets
// replanned shortly after midnight; replanning cancels any pending shot.
type Planner struct {
	loc *time.Location

	mu    sync.Mutex
	timer *time.Timer
}

func NewPlanner(loc *time.Location) *Planner {
	return &Planner{loc: loc}
}

// PlanDaily schedules fire at the reminder slot for now's calendar day and
// returns that slot. A slot already in the past fires immediately, so a bot
// started mid-morning still sends today's reminder.
func (p *Planner) PlanDaily(now time.Time, eventTimes []string, fire func()) time.Time {
	minute := ReminderMinute(eventTimes)
	slot := time.Date(now.Year(), now.Month(), now.Day(), 0, minute, 0, 0, p.loc)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}

	delay := slot.Sub(now)
	if delay <= 0 {
		log.Printf("⏰ [Planner] El horario %s ya pasó, enviando ahora", slot.Format("15:04"))
		go fire()
		return slot
	}

	log.Printf("⏰ [Planner] Recordatorio de hoy programado a las %s", slot.Format("15:04"))
	p.timer = time.AfterFunc(delay, fire)
	return slot
}

// Stop cancels any pending shot.
func (p *Planner) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
