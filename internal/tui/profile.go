package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"legal-qa-bot/internal/domain"
)

// profileModel is the profile-edit modal: name and photo URL.
type profileModel struct {
	current domain.User
	name    textinput.Model
	photo   textinput.Model
	focus   int
	saving  bool
}

func newProfileModel(current domain.User) profileModel {
	name := textinput.New()
	name.Prompt = "ФИО: "
	name.SetValue(current.Name)
	name.Focus()
	name.Width = 40

	photo := textinput.New()
	photo.Prompt = "URL фото: "
	photo.Placeholder = "https://example.com/photo.jpg"
	photo.SetValue(current.Photo)
	photo.Width = 40

	return profileModel{
		current: current,
		name:    name,
		photo:   photo,
	}
}

func (m chatModel) updateProfileModal(msg tea.Msg) (chatModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.modal = modalNone
			return m, nil
		case "tab", "shift+tab", "up", "down":
			m.profile.focus = (m.profile.focus + 1) % 2
			if m.profile.focus == 0 {
				m.profile.name.Focus()
				m.profile.photo.Blur()
			} else {
				m.profile.photo.Focus()
				m.profile.name.Blur()
			}
			return m, textinput.Blink
		case "enter":
			if m.profile.saving {
				return m, nil
			}
			name := strings.TrimSpace(m.profile.name.Value())
			if name == "" {
				return m, nil
			}
			m.profile.saving = true
			return m, m.saveProfileCmd(name, strings.TrimSpace(m.profile.photo.Value()))
		}
	}

	var cmd tea.Cmd
	if m.profile.focus == 0 {
		m.profile.name, cmd = m.profile.name.Update(msg)
	} else {
		m.profile.photo, cmd = m.profile.photo.Update(msg)
	}
	return m, cmd
}

// saveProfileCmd writes the edit through the backend when possible and
// always through the session store, keeping everything but name and photo
// untouched.
func (m chatModel) saveProfileCmd(name, photo string) tea.Cmd {
	api := m.api
	store := m.store
	current := m.profile.current
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		updated := current
		updated.Name = name
		updated.Photo = photo

		if token := store.Token(); api != nil && token != "" {
			if user, err := api.UpdateProfile(ctx, token, name, photo); err == nil {
				updated = user
			}
		}

		if err := store.UpdateUser(updated); err != nil {
			return profileSavedMsg{err: err}
		}
		return profileSavedMsg{user: updated}
	}
}

func (m profileModel) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Редактировать профиль"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Обновите информацию о вашем профиле"))
	b.WriteString("\n\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(m.photo.View())
	b.WriteString("\n\n")
	if m.saving {
		b.WriteString(subtitleStyle.Render("Сохранение..."))
	} else {
		b.WriteString(helpStyle.Render("Enter — сохранить · Esc — отмена"))
	}
	return modalStyle.Render(b.String())
}
