package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/tandemlab/tandem/internal/cli/formatter"
)

// wizardAnswers holds the parameters collected by the generate wizard.
type wizardAnswers struct {
	Minutes   int
	Mood      string
	TimeOfDay string
	Surprise  int
	Weights   map[string]int
}

// tandemHuhTheme styles huh forms to match the formatter palette.
func tandemHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runGenerateWizard collects the generation parameters interactively.
// profileNames receive one weight question each.
func runGenerateWizard(defaultMinutes, defaultSurprise int, profileNames []string) (wizardAnswers, error) {
	answers := wizardAnswers{Weights: make(map[string]int, len(profileNames))}
	minutes := strconv.Itoa(defaultMinutes)
	surprise := strconv.Itoa(defaultSurprise)

	weightValues := make([]string, len(profileNames))
	fields := []huh.Field{
		huh.NewInput().
			Title("¿Cuántos minutos tienen?").
			Placeholder("60").
			Value(&minutes).
			Validate(validatePositiveInt),
		huh.NewSelect[string]().
			Title("¿Cómo están hoy?").
			Options(
				huh.NewOption("Cansados", "tired"),
				huh.NewOption("Con energía", "energetic"),
				huh.NewOption("Tranquilos", "calm"),
				huh.NewOption("Con ganas de reír", "fun"),
				huh.NewOption("(sin especificar)", ""),
			).
			Value(&answers.Mood),
		huh.NewSelect[string]().
			Title("¿Momento del día?").
			Options(
				huh.NewOption("Mañana", "morning"),
				huh.NewOption("Tarde", "afternoon"),
				huh.NewOption("Noche", "evening"),
				huh.NewOption("Madrugada", "night"),
				huh.NewOption("(sin especificar)", ""),
			).
			Value(&answers.TimeOfDay),
		huh.NewInput().
			Title("Sorpresa (0-100)").
			Placeholder("30").
			Value(&surprise).
			Validate(validateDial),
	}

	for i, name := range profileNames {
		weightValues[i] = "50"
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Peso para %s (0-100)", name)).
			Placeholder("50").
			Value(&weightValues[i]).
			Validate(validateDial))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(tandemHuhTheme()).
		WithShowHelp(false)

	if err := form.Run(); err != nil {
		return answers, fmt.Errorf("running wizard: %w", err)
	}

	answers.Minutes, _ = strconv.Atoi(minutes)
	answers.Surprise, _ = strconv.Atoi(surprise)
	for i, name := range profileNames {
		w, _ := strconv.Atoi(weightValues[i])
		answers.Weights[name] = w
	}
	return answers, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("debe ser un número positivo")
	}
	return nil
}

func validateDial(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("debe estar entre 0 y 100")
	}
	return nil
}
