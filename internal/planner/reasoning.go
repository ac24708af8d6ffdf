package planner

import (
	"fmt"

	"github.com/tandemlab/tandem/internal/domain"
)

var moodReasons = map[domain.Mood]string{
	domain.MoodTired:     "ya que hoy están cansados, elegí actividades relajantes",
	domain.MoodEnergetic: "tienen energía hoy, así que armé algo más dinámico",
	domain.MoodCalm:      "para mantener ese estado tranquilo que buscan",
	domain.MoodFun:       "porque hoy quieren reír y pasarla bien",
}

var surpriseReasons = map[domain.SurpriseLevel]string{
	domain.SurpriseSafe:        "con actividades que sé que les gustan",
	domain.SurpriseBalanced:    "mezclando lo conocido con alguna variante",
	domain.SurpriseAdventurous: "con algunas sorpresas interesantes",
	domain.SurpriseWild:        "con varias cosas nuevas para explorar",
}

var moodTitles = map[domain.Mood]string{
	domain.MoodTired:     "Plan para descansar",
	domain.MoodEnergetic: "Plan energético",
	domain.MoodCalm:      "Plan tranquilo",
	domain.MoodFun:       "Plan para reír",
}

// Reasoning renders the one-sentence rationale from the fixed mood and
// surprise templates.
func Reasoning(targetMin int, mood domain.Mood, surprise int) string {
	moodText, ok := moodReasons[mood]
	if !ok {
		moodText = "según sus preferencias"
	}
	surpriseText := surpriseReasons[domain.SurpriseLevelFor(surprise)]
	return fmt.Sprintf("Este plan es para %d minutos, %s, %s.", targetMin, moodText, surpriseText)
}

// Title returns the mood title, or the generic fallback.
func Title(mood domain.Mood) string {
	if t, ok := moodTitles[mood]; ok {
		return t
	}
	return "Su plan de hoy"
}

// EmptyPoolReasoning explains a degraded plan whose constraints removed
// every candidate.
func EmptyPoolReasoning() string {
	return "Los filtros fueron demasiado estrictos y no quedó ninguna actividad disponible. Aflojen alguna restricción e intenten de nuevo."
}
