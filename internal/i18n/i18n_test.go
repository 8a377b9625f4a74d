package i18n

import "testing"

func TestFor_Lookup(t *testing.T) {
	tr := For("en")
	if got := tr("quiz.grade.excellent", nil); got != "Excellent" {
		t.Errorf("got %q, want Excellent", got)
	}
}

func TestFor_Interpolation(t *testing.T) {
	tr := For("en")
	got := tr("summary.breakdown", map[string]any{"correct": 3, "incorrect": 1, "total": 4})
	want := "3 correct, 1 incorrect of 4"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFor_UnknownKeyFallsBackToKey(t *testing.T) {
	tr := For("en")
	if got := tr("no.such.key", nil); got != "no.such.key" {
		t.Errorf("got %q, want the key itself", got)
	}
}

func TestFor_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	tr := For("xx")
	if got := tr("quiz.grade.good", nil); got != "Good" {
		t.Errorf("got %q, want Good", got)
	}
}

func TestFor_LocaleTables(t *testing.T) {
	// Every bundled locale must cover the grade keys used by the
	// scoring engine.
	keys := []string{
		"quiz.grade.excellent",
		"quiz.grade.good",
		"quiz.grade.average",
		"quiz.grade.passing",
		"quiz.grade.needsImprovement",
	}
	for _, locale := range Locales() {
		table := locales[locale]
		for _, k := range keys {
			if _, ok := table[k]; !ok {
				t.Errorf("locale %q missing key %q", locale, k)
			}
		}
	}
}
