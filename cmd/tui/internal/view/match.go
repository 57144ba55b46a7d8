package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/nomadmatch/internal/match"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

type matchState int

const (
	matchStateForm matchState = iota
	matchStateLoading
	matchStateResults
)

const (
	keyBudget   = "budget"
	keyClimate  = "climate"
	keyInternet = "internet"
	keyVisa     = "visa"
	keyVibe     = "vibe"
)

var _ View = MatchModel{}

type MatchModel struct {
	CommonModel
	svc  *match.Service
	flow *match.Flow

	session match.Session
	state   matchState
	form    *huh.Form
	spinner spinner.Model
	result  match.Result
}

// NewMatchModel starts a fresh form. The session is captured now, so a tier change
// only affects the next search.
func NewMatchModel(svc *match.Service, flow *match.Flow, sess match.Session) MatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	return MatchModel{
		svc:     svc,
		flow:    flow,
		session: sess,
		state:   matchStateForm,
		form:    buildPreferenceForm(),
		spinner: s,
	}
}

func (m MatchModel) Title() string { return "Find Matches" }

func (m MatchModel) ShortHelp() string {
	switch m.state {
	case matchStateLoading:
		return "Esc: cancel"
	case matchStateResults:
		return "Esc: back to menu | n: new search"
	}

	return "Esc: back | Enter: confirm"
}

func (m MatchModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(matchResultMsg); ok {
		return m.applyResult(res.result)
	}

	switch m.state {
	case matchStateForm:
		return m.updateForm(msg)
	case matchStateLoading:
		return m.updateLoading(msg)
	case matchStateResults:
		return m.updateResults(msg)
	}

	return m, nil
}

func (m MatchModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	req := m.flow.Start(m.svc.Prepare(m.input(), m.session))
	m.state = matchStateLoading

	return m, tea.Batch(m.spinner.Tick, m.runMatchCmd(req))
}

func (m MatchModel) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.flow.Reset()
		return m.restart()
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m MatchModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMsg.Type == tea.KeyEsc:
		m.flow.Reset()
		return m, Back
	case keyMsg.String() == "n":
		m.flow.Reset()
		return m.restart()
	}

	return m, nil
}

// applyResult ignores results of superseded or cancelled requests.
func (m MatchModel) applyResult(res match.Result) (tea.Model, tea.Cmd) {
	if !m.flow.Complete(res) {
		return m, nil
	}

	m.result = res
	m.state = matchStateResults

	return m, nil
}

func (m MatchModel) restart() (tea.Model, tea.Cmd) {
	m.form = buildPreferenceForm()
	m.state = matchStateForm
	m.result = match.Result{}

	return m, m.form.Init()
}

func (m MatchModel) input() preference.Input {
	return preference.Input{
		Budget:   m.form.GetString(keyBudget),
		Climate:  m.form.GetString(keyClimate),
		Internet: m.form.GetString(keyInternet),
		Visa:     m.form.GetString(keyVisa),
		Vibe:     m.form.GetString(keyVibe),
	}
}

func buildPreferenceForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key(keyBudget).
				Title("Budget").
				Options(options(
					preference.BudgetVeryAffordable,
					preference.BudgetAffordable,
					preference.BudgetModerate,
					preference.BudgetExpensive,
					preference.BudgetVeryExpensive,
				)...),
			huh.NewSelect[string]().
				Key(keyClimate).
				Title("Climate").
				Options(options(
					preference.ClimateWarm,
					preference.ClimateMild,
					preference.ClimateHot,
					preference.ClimateCool,
				)...),
			huh.NewSelect[string]().
				Key(keyInternet).
				Title("Internet").
				Options(options(
					preference.InternetPoor,
					preference.InternetGood,
					preference.InternetExcellent,
				)...),
			huh.NewSelect[string]().
				Key(keyVisa).
				Title("Digital nomad visa required?").
				Options(options(preference.VisaYes, preference.VisaNo)...),
			huh.NewSelect[string]().
				Key(keyVibe).
				Title("Vibe").
				Options(options(
					preference.VibeBeach,
					preference.VibeTech,
					preference.VibeNightlife,
					preference.VibeHistoric,
					preference.VibeNature,
					preference.VibeAffordable,
					preference.VibeCreative,
				)...),
		),
	).WithWidth(50).WithShowHelp(false)
}

// options prepends "Any", which leaves the preference unset.
func options[T ~string](values ...T) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values)+1)
	opts = append(opts, huh.NewOption("Any", ""))

	for _, v := range values {
		opts = append(opts, huh.NewOption(string(v), string(v)))
	}

	return opts
}

func (m MatchModel) View() string {
	switch m.state {
	case matchStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case matchStateLoading:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Finding cities for you...", m.spinner.View()),
		)

	case matchStateResults:
		return m.viewResults()
	}

	return ""
}

func (m MatchModel) viewResults() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(successColor).Render("Your matches")
	if m.result.Source == match.SourceFallback {
		header += labelStyle.Render("  (offline, local ranking)")
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			RenderResult(m.result),
			"",
			labelStyle.Render(m.ShortHelp()),
		),
	)
}

type matchResultMsg struct {
	result match.Result
}

func (m MatchModel) runMatchCmd(req match.Request) tea.Cmd {
	return func() tea.Msg {
		return matchResultMsg{result: m.svc.Run(context.Background(), req)}
	}
}
