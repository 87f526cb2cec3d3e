package agenda

import (
	"strings"
	"testing"
)

func TestGreetingDeterministic(t *testing.T) {
	for month := 0; month < 12; month++ {
		a := Greeting(GreetingWeekly, month, "")
		b := Greeting(GreetingWeekly, month, "")
		if a != b {
			t.Errorf("month %d: greeting not stable: %q vs %q", month, a, b)
		}
	}

	// The pool has six phrases, so month 0 and month 6 repeat.
	if Greeting(GreetingMonthly, 0, "") != Greeting(GreetingMonthly, 6, "") {
		t.Error("rotation should wrap after the pool size")
	}
	if Greeting(GreetingMonthly, 0, "") == Greeting(GreetingMonthly, 1, "") {
		t.Error("consecutive months should rotate to a different phrase")
	}
}

func TestGreetingMonthNameInsideBold(t *testing.T) {
	g := Greeting(GreetingMonthly, 0, "Enero")
	if !strings.Contains(g, "(ENERO)*") {
		t.Errorf("month name should sit inside the closing bold marker, got %q", g)
	}

	// Weekly greetings never append the month.
	w := Greeting(GreetingWeekly, 0, "Enero")
	if strings.Contains(w, "ENERO") {
		t.Errorf("weekly greeting should ignore the month name, got %q", w)
	}
}
