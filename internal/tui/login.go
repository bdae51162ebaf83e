package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"legal-qa-bot/internal/client"
	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/session"
)

const loginTimeout = 15 * time.Second

// loginModel is the unauthenticated view: email + password form.
// States: idle -> submitting -> authenticated (root switches view) or back
// to idle with an error line.
type loginModel struct {
	api   *client.API
	store *session.Store

	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	errTitle   string
	errDetail  string
	width      int
}

func newLoginModel(api *client.API, store *session.Store) loginModel {
	email := textinput.New()
	email.Placeholder = "example@email.com"
	email.Prompt = "Email: "
	email.Focus()
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "••••••••"
	password.Prompt = "Пароль: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 40

	return loginModel{
		api:      api,
		store:    store,
		email:    email,
		password: password,
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errTitle = "Ошибка входа"
			m.errDetail = msg.err.Error()
			if m.errDetail == "" {
				m.errDetail = "Проверьте учетные данные и попробуйте снова."
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, textinput.Blink
		case "enter":
			// Submit control is disabled while a request is in flight and
			// while required fields are empty.
			if m.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.email.Value())
			password := m.password.Value()
			if email == "" || password == "" {
				return m, nil
			}
			m.submitting = true
			m.errTitle = ""
			m.errDetail = ""
			return m, m.submitCmd(email, password)
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submitCmd issues exactly one login request and, on success, writes the
// session through the store.
func (m loginModel) submitCmd(email, password string) tea.Cmd {
	api := m.api
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loginTimeout)
		defer cancel()

		token, err := api.Login(ctx, email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := store.Login(ctx, token); err != nil {
			return loginResultMsg{err: err}
		}

		// Display only: the token embeds the email by demo convention.
		display, ok := domain.EmailFromToken(token)
		if !ok {
			display = "Гость"
		}
		return loginResultMsg{displayEmail: display}
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Q&A Bot"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Войдите в систему для доступа к чату"))
	b.WriteString("\n\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(subtitleStyle.Render("Вход..."))
	} else if m.errTitle != "" {
		b.WriteString(errorStyle.Render(m.errTitle + ": " + m.errDetail))
	} else {
		b.WriteString(helpStyle.Render("Enter — войти · Tab — переключить поле · Ctrl+C — выход"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
