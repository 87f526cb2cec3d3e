package notify

import (
	"context"
	"log"
	"time"
)

// Notifier is the contract every outbound announcement channel satisfies.
type Notifier interface {
	Send(ctx context.Context, message string) error
	Name() string
}

// Fanout broadcasts one digest to every registered notifier. Repeated digests
// (same text inside the cooldown window) are dropped, so a crashed-and-
// restarted scheduler never double-posts the same summary.
type Fanout struct {
	notifiers []Notifier
	deduper   *Deduper
}

func NewFanout(coolDown time.Duration) *Fanout {
	return &Fanout{deduper: NewDeduper(coolDown)}
}

func (f *Fanout) Register(n Notifier) {
	f.notifiers = append(f.notifiers, n)
}

// Broadcast sends fire-and-forget to every notifier; a failure on one channel
// never blocks the others.
func (f *Fanout) Broadcast(ctx context.Context, message string) {
	if message == "" {
		return
	}
	if !f.deduper.ShouldSend(message) {
		log.Printf("⏳ [Notify] Mensaje repetido, envío omitido.")
		return
	}

	for _, n := range f.notifiers {
		go func(notifier Notifier, msg string) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			if err := notifier.Send(sendCtx, msg); err != nil {
				log.Printf("❌ [%s] Falló el envío: %v", notifier.Name(), err)
			} else {
				log.Printf("✅ [%s] Mensaje enviado", notifier.Name())
			}
		}(n, message)
	}
}
