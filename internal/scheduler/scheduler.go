package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Engine wraps the cron scheduler, pinned to the bot's timezone so every spec
// reads as local wall-clock time.
type Engine struct {
	scheduler *cron.Cron
}

func NewEngine(loc *time.Location) *Engine {
	return &Engine{
		scheduler: cron.New(cron.WithLocation(loc)),
	}
}

func (e *Engine) Start() {
	e.scheduler.Start()
	log.Println("✅ [Scheduler] Cron iniciado")
}

func (e *Engine) Stop() {
	e.scheduler.Stop()
}

// AddTask registers a job under a standard 5-field cron spec.
func (e *Engine) AddTask(spec string, task func()) {
	if _, err := e.scheduler.AddFunc(spec, task); err != nil {
		log.Printf("❌ [Scheduler] No se pudo registrar la tarea %q: %v", spec, err)
	}
}
