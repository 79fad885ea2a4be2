package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuEntry couples a visible label with the page it opens and whether an
// open session is required.
type menuEntry struct {
	label      string
	page       string
	needsLogin bool
}

type MenuModel struct {
	entries []menuEntry
	idx     int
	status  string
	errMsg  string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		entries: []menuEntry{
			{label: "Войти", page: "login"},
			{label: "Зарегистрироваться", page: "register"},
			{label: "Таймер фокуса", page: "timer"},
			{label: "Профиль", page: "profile", needsLogin: true},
			{label: "Статистика", page: "stats"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch notice := msg.(type) {
	case RegisterSuccessNotice:
		if notice.Username != "" {
			m.status = "Пользователь " + notice.Username + " успешно зарегистрирован"
		} else {
			m.status = "Регистрация прошла успешно"
		}
		m.errMsg = ""
		return m, nil
	case LoginSuccessNotice:
		m.status = "Вы вошли как " + notice.Username
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry := m.entries[m.idx]
		if entry.needsLogin && !sessionOpen() {
			m.errMsg = "Сначала войдите в систему"
			return m, nil
		}
		m.status = ""
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: entry.page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString(sessionHeader())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	}

	actionColWidth := lipgloss.Width("Действие")
	for _, entry := range m.entries {
		if w := lipgloss.Width(entry.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", 4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, entry := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", fmt.Sprintf("%s %d", cursor, i+1), actionColWidth, entry.label))
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}
