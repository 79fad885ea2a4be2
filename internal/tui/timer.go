// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebelikov/lotus/internal/service"
)

// defaultFocusDuration is the length of one focus cycle when the config
// does not override it.
const defaultFocusDuration = 25 * time.Minute

// TimerModel is the Bubble Tea model for the focus timer screen. It counts
// down a single focus cycle; when the countdown reaches zero it reports the
// completed cycle through [service.ClientPointsService].
type TimerModel struct {
	ctx    context.Context
	points service.ClientPointsService

	duration  time.Duration
	timer     timer.Model
	started   bool
	claiming  bool
	statusMsg string
	errMsg    string
}

func NewTimerModel(ctx context.Context, points service.ClientPointsService, duration time.Duration) *TimerModel {
	if duration <= 0 {
		duration = defaultFocusDuration
	}

	return &TimerModel{
		ctx:      ctx,
		points:   points,
		duration: duration,
		timer:    timer.NewWithInterval(duration, time.Second),
	}
}

func (m *TimerModel) Init() tea.Cmd {
	return nil
}

func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(msg, keys.space):
			if m.claiming {
				return m, nil
			}
			m.statusMsg = ""
			m.errMsg = ""
			if !m.started {
				m.started = true
				return m, m.timer.Init()
			}
			return m, m.timer.Toggle()
		case key.Matches(msg, keys.reset):
			if m.claiming {
				return m, nil
			}
			m.timer = timer.NewWithInterval(m.duration, time.Second)
			m.started = false
			m.statusMsg = ""
			m.errMsg = ""
			return m, nil
		}
		return m, nil

	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		m.claiming = true
		return m, tea.Batch(ringBell, m.cmdCompleteCycle())

	case cycleDoneMsg:
		m.claiming = false
		m.started = false
		m.timer = timer.NewWithInterval(m.duration, time.Second)

		switch {
		case msg.err == nil:
			m.statusMsg = fmt.Sprintf("Цикл завершён: +%d баллов", msg.session.PointsAwarded)
			setSessionPoints(msg.newPoints)
		case errors.Is(msg.err, service.ErrNotLoggedIn):
			// the cycle is already saved in the local log; without a
			// session the award cannot be claimed, so hand over to the
			// login screen
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		default:
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m *TimerModel) View() string {
	var b strings.Builder
	b.WriteString(sessionHeader())
	b.WriteString("\n\n")
	b.WriteString(timerStyle.Render(formatClock(m.timer.Timeout)))
	b.WriteString("\n\n")

	switch {
	case m.claiming:
		b.WriteString("Запись цикла...")
	case !m.started:
		fmt.Fprintf(&b, "Нажмите пробел, чтобы начать цикл фокуса (%d мин)", int(m.duration.Minutes()))
	case m.timer.Running():
		b.WriteString("Идёт цикл фокуса")
	default:
		b.WriteString("Пауза")
	}
	b.WriteString("\n")

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ТАЙМЕР ФОКУСА", strings.TrimRight(b.String(), "\n"), "пробел: старт/пауза │ r: сброс │ esc: назад")
}

// ringBell sounds the terminal bell once per completed cycle. It is a
// command rather than View output so View stays a pure render.
func ringBell() tea.Msg {
	fmt.Print("\a")
	return nil
}

func (m *TimerModel) cmdCompleteCycle() tea.Cmd {
	ctx := m.ctx
	points := m.points

	return func() tea.Msg {
		session, newPoints, err := points.CompleteFocusCycle(ctx)
		return cycleDoneMsg{session: session, newPoints: newPoints, err: err}
	}
}
