package agenda

import "testing"

func TestTagCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Noche de Oración", "🙏"},
		{"Vigilia de Año Nuevo", "🙏"},
		{"Curso de Enamorados", "❤️"},
		{"Encuentro de Matrimonios", "❤️"},
		{"Torneo de Fútbol", "⚽"},
		{"Proyecto Eunice", "🤝"},
		{"Misiones de Verano", "🤝"},
		{"Congreso de Jóvenes", "🔥"},
		{"Aniversario 25", "🔥"},
		{"Instituto Bíblico", "🎓"},
		{"Taller de Liderazgo", "🎓"},
		{"Cena del Señor", "🍞"},
		{"Noche de Alabanza", "🎵"},
		{"Festival Infantil", "🎈"},
		{"Iglesia Cerrada por Mantenimiento", "🛑"},
		{"Reunión General", "🔹"},
		{"", "🔹"},
	}

	for _, tc := range cases {
		if got := TagCategory(tc.name); got != tc.want {
			t.Errorf("TagCategory(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// Sports is checked before outreach on purpose: a combined name resolves to
// the ball, not the handshake.
func TestTagCategoryPrecedence(t *testing.T) {
	if got := TagCategory("Evangelismo FIFA"); got != "⚽" {
		t.Errorf("TagCategory(Evangelismo FIFA) = %q, want ⚽", got)
	}
	// Prayer outranks everything, including family keywords.
	if got := TagCategory("Oración por las Familias"); got != "🙏" {
		t.Errorf("TagCategory(Oración por las Familias) = %q, want 🙏", got)
	}
}
