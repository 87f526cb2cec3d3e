package agenda

import "strings"

// categoryBuckets is scanned in order, first match wins. The order is a
// deliberate tie-break policy: sports sits before outreach so "Evangelismo
// FIFA" gets the ball, and earlier buckets shadow later ones on any shared
// keyword. Do not reorder.
var categoryBuckets = []struct {
	marker   string
	keywords []string
}{
	// 1. Espiritualidad / oración
	{"🙏", []string{"oración", "oramos", "intercesión", "vigilia"}},
	// 2. Familia / matrimonios
	{"❤️", []string{"enamorados", "matrimonios", "parejas", "boda", "familia"}},
	// 3. Deportes (antes de obra social)
	{"⚽", []string{"fifa", "fútbol", "futbol", "soccer", "deporte", "copa", "torneo", "mundial"}},
	// 4. Obra social / ayuda humanitaria
	{"🤝", []string{"proyecto", "rehabilitación", "adicciones", "humanitaria", "obra", "misiones", "visita", "evangelismo"}},
	// 5. Jóvenes / fiestas
	{"🔥", []string{"congreso", "jóvenes", "jovenes", "fiesta", "resplandece", "aniversario"}},
	// 6. Educación / talleres
	{"🎓", []string{"instituto", "seminario", "curso", "clase", "taller", "examen", "escuela", "capacitación"}},
	// 7. Cena / comunión
	{"🍞", []string{"cena", "comunión", "pan"}},
	// 8. Música
	{"🎵", []string{"música", "musica", "recital", "concierto", "alabanza"}},
	// 9. Niños / abuelitos
	{"🎈", []string{"niños", "infantil", "abuelitos", "tercera edad"}},
	// 10. Avisos de cierre
	{"🛑", []string{"cerrada", "descanso", "suspensión"}},
}

// defaultCategoryMarker tags events that match no bucket.
const defaultCategoryMarker = "🔹"

// TagCategory maps an event name to its decorative marker via ordered keyword
// matching over the name in lowercase.
func TagCategory(name string) string {
	lower := strings.ToLower(name)
	for _, bucket := range categoryBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.marker
			}
		}
	}
	return defaultCategoryMarker
}
