package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/models"
)

const statsRecentLimit = 10

// StatsModel is the Bubble Tea model for the statistics screen. The data
// comes from the local focus log, so the screen works without a session.
type StatsModel struct {
	ctx   context.Context
	stats service.ClientStatsService

	totals   models.FocusStats
	sessions []models.FocusSession
	loaded   bool
	errMsg   string
}

func NewStatsModel(ctx context.Context, stats service.ClientStatsService) *StatsModel {
	return &StatsModel{ctx: ctx, stats: stats}
}

func (m *StatsModel) Init() tea.Cmd {
	m.loaded = false
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.totals = msg.stats
		m.sessions = msg.sessions
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
	}

	return m, nil
}

func (m *StatsModel) View() string {
	var b strings.Builder

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	case !m.loaded:
		b.WriteString("Загрузка статистики...")
	default:
		fmt.Fprintf(&b, "Всего циклов: %d\n", m.totals.Sessions)
		fmt.Fprintf(&b, "Всего баллов: %d\n\n", m.totals.PointsAwarded)

		if len(m.sessions) == 0 {
			b.WriteString("Циклы фокуса ещё не завершались.")
		} else {
			b.WriteString("Завершён            │ Баллы\n")
			b.WriteString("────────────────────┼──────\n")
			for _, s := range m.sessions {
				fmt.Fprintf(&b, "%s │ %5d\n", s.CompletedAt.Local().Format("02.01.2006 15:04:05"), s.PointsAwarded)
			}
		}
	}

	return renderPage("СТАТИСТИКА", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func (m *StatsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	stats := m.stats

	return func() tea.Msg {
		totals, err := stats.Stats(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}

		sessions, err := stats.RecentSessions(ctx, statsRecentLimit)
		return statsLoadedMsg{stats: totals, sessions: sessions, err: err}
	}
}
