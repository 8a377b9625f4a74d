package quiz

import (
	"math"

	"github.com/cnkang/mathgenie-sub000/internal/i18n"
)

// gradeBuckets maps inclusive lower score bounds to grade/feedback keys,
// evaluated highest-first; first match wins.
var gradeBuckets = []struct {
	min         int
	gradeKey    string
	feedbackKey string
}{
	{90, "quiz.grade.excellent", "quiz.feedback.excellent"},
	{80, "quiz.grade.good", "quiz.feedback.good"},
	{70, "quiz.grade.average", "quiz.feedback.average"},
	{60, "quiz.grade.passing", "quiz.feedback.passing"},
	{0, "quiz.grade.needsImprovement", "quiz.feedback.needsImprovement"},
}

// Grade scores a set of answered problems. Unanswered problems count as
// incorrect, so CorrectAnswers + IncorrectAnswers == TotalProblems always
// holds. The caller must not pass an empty slice.
func Grade(problems []Problem, translate i18n.Translator) Result {
	total := len(problems)
	correct := 0
	for _, p := range problems {
		if p.IsAnswered && p.IsCorrect {
			correct++
		}
	}

	score := int(math.Round(float64(correct) / float64(total) * 100))

	bucket := gradeBuckets[len(gradeBuckets)-1]
	for _, b := range gradeBuckets {
		if score >= b.min {
			bucket = b
			break
		}
	}

	return Result{
		TotalProblems:    total,
		CorrectAnswers:   correct,
		IncorrectAnswers: total - correct,
		Score:            score,
		Grade:            translate(bucket.gradeKey, nil),
		Feedback:         translate(bucket.feedbackKey, map[string]any{"score": score}),
	}
}
