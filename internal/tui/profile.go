// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package tui

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/models"
)

// ProfileModel is the Bubble Tea model for the profile screen. It loads the
// profile from the server on entry and supports a view mode and an edit
// mode; the edit mode submits a partial update, optionally with a new
// avatar read from a local file path.
type ProfileModel struct {
	ctx     context.Context
	profile service.ClientProfileService

	user    models.User
	loaded  bool
	editing bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	statusMsg  string
	errMsg     string
}

const (
	profileInputFirstName = iota
	profileInputLastName
	profileInputAvatarPath
)

func NewProfileModel(ctx context.Context, profile service.ClientProfileService) *ProfileModel {
	firstNameInput := textinput.New()
	firstNameInput.Placeholder = "имя"
	firstNameInput.CharLimit = 64
	firstNameInput.Width = 40

	lastNameInput := textinput.New()
	lastNameInput.Placeholder = "фамилия"
	lastNameInput.CharLimit = 64
	lastNameInput.Width = 40

	avatarPathInput := textinput.New()
	avatarPathInput.Placeholder = "путь к файлу аватара"
	avatarPathInput.CharLimit = 512
	avatarPathInput.Width = 40

	return &ProfileModel{
		ctx:     ctx,
		profile: profile,
		inputs:  []textinput.Model{firstNameInput, lastNameInput, avatarPathInput},
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loaded = false
	m.editing = false
	m.submitting = false
	m.statusMsg = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.loaded = true
		return m, nil

	case profileSavedMsg:
		m.submitting = false
		switch {
		case msg.err == nil:
			// the reply carries only the updated columns; merge them into
			// the loaded profile
			m.user.FirstName = msg.updated.FirstName
			m.user.LastName = msg.updated.LastName
			m.user.AvatarURL = msg.updated.AvatarURL
			m.editing = false
			m.statusMsg = "Профиль обновлён"
		case errors.Is(msg.err, store.ErrNoFieldsToUpdate):
			m.editing = false
			m.statusMsg = "Нет изменений"
		default:
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil

	case copiedMsg:
		m.statusMsg = "Ссылка на аватар скопирована"
		return m, clearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEdit(msg)
		}
		return m.updateView(msg)
	}

	return m, nil
}

func (m *ProfileModel) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case key.Matches(msg, keys.edit):
		if !m.loaded {
			return m, nil
		}
		m.enterEdit()
		return m, textinput.Blink
	case key.Matches(msg, keys.copy):
		if m.user.AvatarURL == "" {
			m.errMsg = "Аватар не установлен"
			return m, nil
		}
		m.errMsg = ""
		return m, cmdCopyToClipboard(m.user.AvatarURL)
	}
	return m, nil
}

func (m *ProfileModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}

		update, avatar, err := m.buildUpdate()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSave(update, avatar)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ProfileModel) View() string {
	if m.editing {
		return m.viewEdit()
	}
	return m.viewProfile()
}

func (m *ProfileModel) viewProfile() string {
	var b strings.Builder
	if !m.loaded {
		b.WriteString("Загрузка профиля...")
	} else {
		b.WriteString("Поле     │ Значение\n")
		b.WriteString("─────────┼────────────────────────────────────────────\n")
		fmt.Fprintf(&b, "Имя акк. │ %s\n", m.user.Username)
		fmt.Fprintf(&b, "Email    │ %s\n", m.user.Email)
		fmt.Fprintf(&b, "Имя      │ %s\n", valueOrDash(m.user.FirstName))
		fmt.Fprintf(&b, "Фамилия  │ %s\n", valueOrDash(m.user.LastName))
		fmt.Fprintf(&b, "Аватар   │ %s\n", valueOrDash(m.user.AvatarURL))
		fmt.Fprintf(&b, "Баллы    │ %d\n", m.user.Points)
	}

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

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "e: редактировать │ c: копировать ссылку на аватар │ esc: назад")
}

func (m *ProfileModel) viewEdit() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Имя      │ [")
	b.WriteString(m.inputs[profileInputFirstName].View())
	b.WriteString("]\n")
	b.WriteString("Фамилия  │ [")
	b.WriteString(m.inputs[profileInputLastName].View())
	b.WriteString("]\n")
	b.WriteString("Аватар   │ [")
	b.WriteString(m.inputs[profileInputAvatarPath].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕДАКТИРОВАНИЕ ПРОФИЛЯ", strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ enter: сохранить")
}

func (m *ProfileModel) enterEdit() {
	m.editing = true
	m.statusMsg = ""
	m.errMsg = ""
	m.inputs[profileInputFirstName].SetValue(m.user.FirstName)
	m.inputs[profileInputLastName].SetValue(m.user.LastName)
	m.inputs[profileInputAvatarPath].SetValue("")
	m.setFocus(profileInputFirstName)
}

// buildUpdate assembles a partial update from the edit form: only fields
// that differ from the loaded profile are included. An empty value for a
// previously set field clears it.
func (m *ProfileModel) buildUpdate() (models.ProfileUpdate, *models.AvatarUpload, error) {
	var update models.ProfileUpdate

	if firstName := m.inputs[profileInputFirstName].Value(); firstName != m.user.FirstName {
		update.FirstName = &firstName
	}
	if lastName := m.inputs[profileInputLastName].Value(); lastName != m.user.LastName {
		update.LastName = &lastName
	}

	avatarPath := strings.TrimSpace(m.inputs[profileInputAvatarPath].Value())
	if avatarPath == "" {
		return update, nil, nil
	}

	avatar, err := readAvatarFile(avatarPath)
	if err != nil {
		return models.ProfileUpdate{}, nil, err
	}
	return update, avatar, nil
}

func readAvatarFile(path string) (*models.AvatarUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл аватара: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &models.AvatarUpload{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		user, err := profile.GetProfile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdSave(update models.ProfileUpdate, avatar *models.AvatarUpload) tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		updated, err := profile.UpdateProfile(ctx, update, avatar)
		return profileSavedMsg{updated: updated, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *ProfileModel) setFocus(idx int) {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}
