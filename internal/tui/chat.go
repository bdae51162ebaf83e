package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"legal-qa-bot/internal/chat"
	"legal-qa-bot/internal/client"
	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/session"
)

const answerTimeout = 60 * time.Second

type modalKind int

const (
	modalNone modalKind = iota
	modalProfile
	modalUpgrade
)

// chatModel is the authenticated view: transcript, sidebar and send box,
// plus the profile-edit and status-upgrade modals.
type chatModel struct {
	store      *session.Store
	api        *client.API
	controller *chat.Controller
	history    *chat.History

	input   textinput.Model
	spin    spinner.Model
	modal   modalKind
	profile profileModel

	notice  string
	errText string
	width   int
	height  int
}

func newChatModel(store *session.Store, api *client.API, controller *chat.Controller, history *chat.History) chatModel {
	input := textinput.New()
	input.Placeholder = "Введите ваш вопрос..."
	input.Prompt = "> "
	input.Focus()
	input.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

	return chatModel{
		store:      store,
		api:        api,
		controller: controller,
		history:    history,
		input:      input,
		spin:       spin,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-40, 20)
		return m, nil

	case spinner.TickMsg:
		if !m.controller.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case answerDoneMsg:
		if msg.err != nil {
			m.errText = "Не удалось получить ответ. Ctrl+R — повторить отправку."
		} else {
			m.errText = ""
		}
		return m, nil

	case profileSavedMsg:
		m.modal = modalNone
		if msg.err != nil {
			m.errText = "Не удалось обновить профиль"
		} else {
			m.notice = "Профиль обновлен"
		}
		return m, nil

	case upgradeSentMsg:
		if msg.err != nil {
			m.errText = "Не удалось отправить запрос: " + msg.err.Error()
		} else {
			m.modal = modalNone
			m.notice = fmt.Sprintf("Запрос на статус «%s» отправлен", msg.requested)
		}
		return m, nil
	}

	if m.modal == modalProfile {
		return m.updateProfileModal(msg)
	}
	if m.modal == modalUpgrade {
		return m.updateUpgradeModal(msg)
	}
	return m.updateMain(msg)
}

func (m chatModel) updateMain(msg tea.Msg) (chatModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit

		case "ctrl+l":
			if err := m.store.Logout(); err != nil {
				m.errText = "Не удалось выйти: " + err.Error()
				return m, nil
			}
			m.controller.Reset()
			return m, func() tea.Msg { return loggedOutMsg{} }

		case "ctrl+n":
			m.controller.Reset()
			m.notice = "Новый чат"
			m.errText = ""
			return m, nil

		case "ctrl+e":
			user, _ := m.store.User()
			m.profile = newProfileModel(user)
			m.modal = modalProfile
			return m, textinput.Blink

		case "ctrl+s":
			m.modal = modalUpgrade
			return m, nil

		case "ctrl+r":
			if m.controller.Pending() || !m.controller.HasFailedTurn() {
				return m, nil
			}
			m.errText = ""
			return m, tea.Batch(m.retryCmd(), m.spin.Tick)

		case "enter":
			// Sends are dropped, not queued, while one is in flight.
			text := m.input.Value()
			if strings.TrimSpace(text) == "" || m.controller.Pending() {
				return m, nil
			}
			m.input.SetValue("")
			m.notice = ""
			m.errText = ""
			return m, tea.Batch(m.sendCmd(text), m.spin.Tick)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) sendCmd(text string) tea.Cmd {
	ctrl := m.controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), answerTimeout)
		defer cancel()
		err := ctrl.Send(ctx, text)
		if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrBusy) {
			err = nil
		}
		return answerDoneMsg{err: err}
	}
}

func (m chatModel) retryCmd() tea.Cmd {
	ctrl := m.controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), answerTimeout)
		defer cancel()
		err := ctrl.Retry(ctx)
		if errors.Is(err, chat.ErrBusy) || errors.Is(err, chat.ErrNoFailedTurn) {
			err = nil
		}
		return answerDoneMsg{err: err}
	}
}

func (m chatModel) View() string {
	sidebar := m.sidebarView()

	var main string
	switch m.modal {
	case modalProfile:
		main = m.profile.View()
	case modalUpgrade:
		main = m.upgradeView()
	default:
		main = m.mainView()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

func (m chatModel) mainView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Q&A Bot"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("Задайте вопрос о законодательстве"))
	b.WriteString("\n\n")

	messages := m.controller.Messages()
	if len(messages) == 0 {
		name := ""
		if user, ok := m.store.User(); ok {
			name = user.Name
		}
		b.WriteString(fmt.Sprintf("Добро пожаловать, %s!\n", name))
		b.WriteString(subtitleStyle.Render("Задайте вопрос, чтобы начать консультацию"))
		b.WriteString("\n")
	} else {
		for _, msg := range messages {
			b.WriteString(m.renderMessage(msg))
		}
	}

	if m.controller.Pending() {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(subtitleStyle.Render(" Бот печатает..."))
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter — отправить · Ctrl+N — новый чат · Ctrl+E — профиль · Ctrl+S — статус · Ctrl+L — выход"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m chatModel) renderMessage(msg domain.ChatMessage) string {
	var b strings.Builder
	switch msg.Role {
	case domain.RoleUser:
		b.WriteString(userPrefixStyle.Render("Вы"))
		b.WriteString("> ")
		b.WriteString(msg.Content)
		if msg.Delivery == domain.DeliveryFailed {
			b.WriteString("  ")
			b.WriteString(failedStyle.Render("⚠ не отправлено"))
		}
		b.WriteString("\n")
	case domain.RoleBot:
		b.WriteString(botPrefixStyle.Render("Бот"))
		b.WriteString("> ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
		if len(msg.Sources) > 0 {
			b.WriteString(sourceStyle.Render(fmt.Sprintf("Источники (%d):", len(msg.Sources))))
			b.WriteString("\n")
			for _, src := range msg.Sources {
				b.WriteString(sourceStyle.Render(fmt.Sprintf("[%d] %s — %s", src.ID, src.Title, src.Content)))
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m chatModel) sidebarView() string {
	var b strings.Builder
	user, ok := m.store.User()
	if ok {
		b.WriteString(labelStyle.Render(user.Name))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(string(user.Status)))
		b.WriteString("\n\n")
		b.WriteString(m.limitLine(user))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("НЕДАВНИЕ ЧАТЫ"))
	b.WriteString("\n")
	recent := m.history.Recent(8)
	if len(recent) == 0 {
		b.WriteString(subtitleStyle.Render("пока пусто"))
		b.WriteString("\n")
	}
	for _, c := range recent {
		b.WriteString("· ")
		b.WriteString(c.Title)
		b.WriteString("\n")
	}

	return sidebarStyle.Render(b.String())
}

func (m chatModel) limitLine(user domain.User) string {
	remaining := user.RequestsLimit - user.RequestsUsed
	line := fmt.Sprintf("Осталось: %d из %d", remaining, user.RequestsLimit)
	if user.RequestsLimit <= 0 {
		return line
	}
	usage := float64(user.RequestsUsed) / float64(user.RequestsLimit) * 100
	switch {
	case usage < 20:
		return limitOKStyle.Render(line)
	case usage < 50:
		return limitWarnStyle.Render(line)
	default:
		return limitDangStyle.Render(line)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
