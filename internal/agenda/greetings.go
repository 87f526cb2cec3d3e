package agenda

import "strings"

// GreetingKind selects the rotation pool.
type GreetingKind int

const (
	GreetingMonthly GreetingKind = iota
	GreetingWeekly
)

var monthlyGreetings = []string{
	"📅 *¡NUEVO MES, NUEVAS BENDICIONES!*",
	"✨ *¡BIENVENIDO, NUEVO MES EN FAMILIA!*",
	"🚀 *¡ARRANCAMOS EL MES CON TODO!*",
	"🕊️ *¡MES DE VICTORIA Y BENDICIÓN!*",
	"💒 *¡NUESTRA AGENDA MENSUAL ESTÁ LISTA!*",
	"🌟 *¡LO QUE DIOS HARÁ ESTE MES SERÁ GRANDE!*",
}

var weeklyGreetings = []string{
	"📅 *AGENDA DE LA SEMANA*",
	"✨ *¡ASÍ SE VE NUESTRA SEMANA!*",
	"🚀 *¡PREPARÉMONOS PARA ESTA SEMANA!*",
	"👋 *¡HOLA, FAMILIA! ESTA ES LA AGENDA SEMANAL:*",
	"🕊️ *¡SEMANA DE BENDICIÓN! AQUÍ LOS DETALLES:*",
	"💒 *¡NOS VEMOS EN CASA ESTA SEMANA!*",
}

// Greeting returns a deterministic greeting for the month index (0–11): the
// same phrase all month long, rotating to the next one the following month.
// For monthly greetings the month name is folded inside the bold segment.
func Greeting(kind GreetingKind, monthIndex int, monthName string) string {
	pool := weeklyGreetings
	if kind == GreetingMonthly {
		pool = monthlyGreetings
	}

	idx := monthIndex % len(pool)
	if idx < 0 {
		idx = 0
	}
	greeting := pool[idx]

	if monthName != "" && kind == GreetingMonthly {
		suffix := " (" + strings.ToUpper(monthName) + ")"
		if strings.HasSuffix(greeting, "*") {
			greeting = greeting[:len(greeting)-1] + suffix + "*"
		} else {
			greeting += suffix
		}
	}

	return greeting
}
