package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/nomadmatch/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/nomadmatch/internal/catalog"
	"github.com/MrJamesThe3rd/nomadmatch/internal/config"
	"github.com/MrJamesThe3rd/nomadmatch/internal/logging"
	"github.com/MrJamesThe3rd/nomadmatch/internal/match"
	"github.com/MrJamesThe3rd/nomadmatch/internal/matcher"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
	"github.com/MrJamesThe3rd/nomadmatch/internal/ranking"
)

type model struct {
	client   *matcher.Client
	matchSvc *match.Service
	flow     *match.Flow

	tier   preference.Tier
	health *matcher.Health

	currentView View
	matchView   view.MatchModel
}

type View int

const (
	ViewMenu  View = 0
	ViewMatch View = 1
)

type healthMsg struct {
	health matcher.Health
}

func initialModel(cfg *config.Config, logger *slog.Logger) model {
	candidates, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		fmt.Fprintln(os.Stderr, "failed to load catalog:", err)
		os.Exit(1)
	}

	client := matcher.NewClient(cfg.Matcher.BaseURL, cfg.Matcher.Timeout, cfg.Matcher.HealthTTL)
	dispatcher := match.NewDispatcher(client, ranking.NewRanker(candidates, ranking.DefaultRules()), cfg.Matcher.NumResults, logger)

	return model{
		client:      client,
		matchSvc:    match.NewService(preference.NewEncoder(preference.DefaultTables()), dispatcher, nil, logger),
		flow:        match.NewFlow(),
		tier:        preference.TierFree,
		currentView: ViewMenu,
	}
}

func (m model) session() match.Session {
	return match.Session{Tier: m.tier}
}

func (m model) Init() tea.Cmd {
	return m.probeHealthCmd()
}

func (m model) probeHealthCmd() tea.Cmd {
	return func() tea.Msg {
		return healthMsg{health: m.client.Health(context.Background())}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case healthMsg:
		m.health = &msg.health
		return m, nil
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewMatch
				m.matchView = view.NewMatchModel(m.matchSvc, m.flow, m.session())

				return m, m.matchView.Init()
			case "2":
				m.tier = toggle(m.tier)
				return m, nil
			case "r":
				return m, m.probeHealthCmd()
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, m.probeHealthCmd()
	}

	if m.currentView == ViewMatch {
		var newModel tea.Model
		newModel, cmd = m.matchView.Update(msg)
		m.matchView = newModel.(view.MatchModel)
	}

	return m, cmd
}

func toggle(t preference.Tier) preference.Tier {
	if t == preference.TierPremium {
		return preference.TierFree
	}

	return preference.TierPremium
}

func (m model) statusLine() string {
	if m.health == nil {
		return view.MutedStyle.Render("checking API...")
	}

	if m.health.Reachable {
		return view.SuccessStyle.Render("API connected")
	}

	return view.ErrorStyle.Render("offline, local ranking")
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"NomadMatch " + m.statusLine() + "\n\n" +
				"1. Find Matches\n" +
				fmt.Sprintf("2. Toggle Tier (current: %s)\n", m.tier) +
				"r. Recheck API\n\n" +
				"q. Quit",
		)
	case ViewMatch:
		return m.matchView.View()
	}

	return "Unknown View"
}

// logWriter keeps slog output off the terminal the TUI draws on.
func logWriter(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}

	return f, func() { _ = f.Close() }
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	w, closeLog := logWriter(cfg.TUI.LogFile)
	defer closeLog()

	logger := logging.New(cfg.App.Env, cfg.App.LogLevel, w)
	slog.SetDefault(logger)

	p := tea.NewProgram(initialModel(cfg, logger))
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		closeLog()
		os.Exit(1)
	}
}
