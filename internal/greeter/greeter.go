package greeter

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// Greeter produces the short blessing line at the top of the daily reminder.
// When the model is unreachable it falls back to a fixed rotation, so the
// reminder always goes out.
type Greeter struct {
	client *api.Client
	model  string
}

// New builds a Greeter against an Ollama server. A bad URL disables the model
// and leaves only the static pool.
func New(rawURL, model string) *Greeter {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		log.Printf("⚠️ [Greeter] URL de Ollama inválida %q, usando saludos fijos", rawURL)
		return &Greeter{model: model}
	}
	return &Greeter{client: api.NewClient(u, http.DefaultClient), model: model}
}

const greetingPrompt = `Escribe un saludo cristiano breve y alegre (máximo 20 palabras) ` +
	`para el recordatorio diario de actividades de una iglesia. ` +
	`Responde solo con el saludo, sin comillas ni explicaciones.`

func buildPrompt(eventNames []string, theme, verse string) string {
	var b strings.Builder
	b.WriteString(greetingPrompt)
	if len(eventNames) > 0 {
		b.WriteString(" Las actividades de hoy son: " + strings.Join(eventNames, ", ") + ".")
	}
	if theme != "" {
		b.WriteString(" El tema del mes es: " + theme + ".")
	}
	if verse != "" {
		b.WriteString(" El versículo del mes es: " + verse + ".")
	}
	return b.String()
}

var fallbackGreetings = []string{
	"¡Dios les bendiga! Este día es una nueva oportunidad para servirle.",
	"¡Buen día, familia! Que la paz de Dios los acompañe hoy.",
	"¡Hola! Hoy es un gran día para congregarnos.",
	"Que este día esté lleno de la presencia de Dios. ¡Los esperamos!",
	"¡Ánimo, familia! Dios tiene algo especial preparado para hoy.",
}

// DailyGreeting asks the model for a fresh greeting mentioning today's
// events and the month's theme and verse; on any failure it picks
// deterministically from the fallback pool by day of year.
func (g *Greeter) DailyGreeting(ctx context.Context, day time.Time, eventNames []string, theme, verse string) string {
	if g.client != nil {
		text, err := g.generate(ctx, buildPrompt(eventNames, theme, verse))
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			log.Printf("⚠️ [Greeter] Ollama no disponible: %v", err)
		}
	}
	return fallbackGreetings[day.YearDay()%len(fallbackGreetings)]
}

func (g *Greeter) generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    g.model,
		Messages: []api.Message{{Role: "user", Content: prompt}},
		Stream:   &stream,
	}

	var out string
	err := g.client.Chat(ctx, req, func(r api.ChatResponse) error {
		out = r.Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(out), `"`)), nil
}
