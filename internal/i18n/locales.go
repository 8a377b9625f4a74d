package i18n

// locales holds the bundled translation tables. Keys are shared across
// locales; missing entries fall back to English.
var locales = map[string]map[string]string{
	"en": {
		"quiz.grade.excellent":        "Excellent",
		"quiz.grade.good":             "Good",
		"quiz.grade.average":          "Average",
		"quiz.grade.passing":          "Passing",
		"quiz.grade.needsImprovement": "Needs Improvement",

		"quiz.feedback.excellent":        "Outstanding! You scored {{score}}%.",
		"quiz.feedback.good":             "Great work! You scored {{score}}%.",
		"quiz.feedback.average":          "Good effort! You scored {{score}}%.",
		"quiz.feedback.passing":          "You passed with {{score}}%. Keep practicing!",
		"quiz.feedback.needsImprovement": "You scored {{score}}%. More practice will help!",

		"quiz.title":        "Quiz",
		"quiz.loading":      "Preparing problems...",
		"quiz.progress":     "Problem {{current}} of {{total}}",
		"quiz.elapsed":      "Time: {{time}}",
		"quiz.answered":     "Answered",
		"quiz.correct":      "Correct!",
		"quiz.incorrect":    "Not quite, the answer was {{answer}}",
		"quiz.prompt":       "Type your answer...",
		"summary.title":     "Quiz complete!",
		"summary.score":     "Score: {{score}}%",
		"summary.breakdown": "{{correct}} correct, {{incorrect}} incorrect of {{total}}",
		"summary.retry":     "Press R to retry",
	},
	"es": {
		"quiz.grade.excellent":        "Excelente",
		"quiz.grade.good":             "Bien",
		"quiz.grade.average":          "Regular",
		"quiz.grade.passing":          "Aprobado",
		"quiz.grade.needsImprovement": "Necesita mejorar",

		"quiz.feedback.excellent":        "¡Impresionante! Obtuviste {{score}}%.",
		"quiz.feedback.good":             "¡Buen trabajo! Obtuviste {{score}}%.",
		"quiz.feedback.average":          "¡Buen esfuerzo! Obtuviste {{score}}%.",
		"quiz.feedback.passing":          "Aprobaste con {{score}}%. ¡Sigue practicando!",
		"quiz.feedback.needsImprovement": "Obtuviste {{score}}%. ¡Más práctica te ayudará!",

		"quiz.title":        "Cuestionario",
		"quiz.loading":      "Preparando problemas...",
		"quiz.progress":     "Problema {{current}} de {{total}}",
		"quiz.elapsed":      "Tiempo: {{time}}",
		"quiz.answered":     "Respondido",
		"quiz.correct":      "¡Correcto!",
		"quiz.incorrect":    "Casi, la respuesta era {{answer}}",
		"quiz.prompt":       "Escribe tu respuesta...",
		"summary.title":     "¡Cuestionario completado!",
		"summary.score":     "Puntuación: {{score}}%",
		"summary.breakdown": "{{correct}} correctas, {{incorrect}} incorrectas de {{total}}",
		"summary.retry":     "Pulsa R para reintentar",
	},
	"zh": {
		"quiz.grade.excellent":        "优秀",
		"quiz.grade.good":             "良好",
		"quiz.grade.average":          "中等",
		"quiz.grade.passing":          "及格",
		"quiz.grade.needsImprovement": "需要努力",

		"quiz.feedback.excellent":        "太棒了！你得了{{score}}分。",
		"quiz.feedback.good":             "做得好！你得了{{score}}分。",
		"quiz.feedback.average":          "不错的努力！你得了{{score}}分。",
		"quiz.feedback.passing":          "你以{{score}}分及格了，继续练习！",
		"quiz.feedback.needsImprovement": "你得了{{score}}分，多加练习会更好！",

		"quiz.title":        "测验",
		"quiz.loading":      "正在准备题目...",
		"quiz.progress":     "第 {{current}} 题，共 {{total}} 题",
		"quiz.elapsed":      "用时：{{time}}",
		"quiz.answered":     "已作答",
		"quiz.correct":      "答对了！",
		"quiz.incorrect":    "差一点，正确答案是 {{answer}}",
		"quiz.prompt":       "输入你的答案...",
		"summary.title":     "测验完成！",
		"summary.score":     "得分：{{score}}%",
		"summary.breakdown": "共 {{total}} 题，答对 {{correct}} 题，答错 {{incorrect}} 题",
		"summary.retry":     "按 R 重试",
	},
}
