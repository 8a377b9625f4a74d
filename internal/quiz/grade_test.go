package quiz

import (
	"testing"

	"github.com/cnkang/mathgenie-sub000/internal/i18n"
)

// answered builds a problem slice with the first correct of total marked
// correct and the rest answered wrong.
func answered(correct, total int) []Problem {
	problems := make([]Problem, total)
	for i := range problems {
		problems[i] = Problem{
			ID:         i + 1,
			IsAnswered: true,
			IsCorrect:  i < correct,
		}
	}
	return problems
}

func TestGrade_Score(t *testing.T) {
	tr := i18n.For("en")

	tests := []struct {
		correct, total int
		wantScore      int
		wantGrade      string
	}{
		{2, 2, 100, "Excellent"},
		{9, 10, 90, "Excellent"},
		{8, 10, 80, "Good"},
		{7, 10, 70, "Average"},
		{6, 10, 60, "Passing"},
		{1, 2, 50, "Needs Improvement"},
		{0, 5, 0, "Needs Improvement"},
		{5, 6, 83, "Good"}, // 83.33 rounds down
		{7, 8, 88, "Good"}, // 87.5 rounds up
	}

	for _, tt := range tests {
		r := Grade(answered(tt.correct, tt.total), tr)
		if r.Score != tt.wantScore {
			t.Errorf("Grade(%d/%d).Score = %d, want %d", tt.correct, tt.total, r.Score, tt.wantScore)
		}
		if r.Grade != tt.wantGrade {
			t.Errorf("Grade(%d/%d).Grade = %q, want %q", tt.correct, tt.total, r.Grade, tt.wantGrade)
		}
		if r.CorrectAnswers+r.IncorrectAnswers != r.TotalProblems {
			t.Errorf("Grade(%d/%d): correct+incorrect != total", tt.correct, tt.total)
		}
	}
}

func TestGrade_UnansweredCountsIncorrect(t *testing.T) {
	problems := []Problem{
		{ID: 1, IsAnswered: true, IsCorrect: true},
		{ID: 2}, // never answered
	}
	r := Grade(problems, i18n.For("en"))
	if r.CorrectAnswers != 1 || r.IncorrectAnswers != 1 {
		t.Errorf("got %d correct / %d incorrect, want 1/1", r.CorrectAnswers, r.IncorrectAnswers)
	}
	if r.Score != 50 {
		t.Errorf("Score = %d, want 50", r.Score)
	}
}

func TestGrade_TranslatedFeedback(t *testing.T) {
	r := Grade(answered(2, 2), i18n.For("en"))
	if r.Feedback != "Outstanding! You scored 100%." {
		t.Errorf("Feedback = %q", r.Feedback)
	}

	r = Grade(answered(2, 2), i18n.For("es"))
	if r.Grade != "Excelente" {
		t.Errorf("Grade = %q, want Excelente", r.Grade)
	}
}
