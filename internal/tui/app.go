package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"legal-qa-bot/internal/chat"
	"legal-qa-bot/internal/client"
	"legal-qa-bot/internal/session"
)

type view int

const (
	viewLogin view = iota
	viewChat
)

// App is the root model. It routes between the unauthenticated login view
// and the authenticated chat view based on the session store.
type App struct {
	logger *zap.Logger
	store  *session.Store
	api    *client.API

	view  view
	login loginModel
	chat  chatModel
}

func NewApp(logger *zap.Logger, store *session.Store, api *client.API, controller *chat.Controller, history *chat.History) App {
	a := App{
		logger: logger,
		store:  store,
		api:    api,
		login:  newLoginModel(api, store),
		chat:   newChatModel(store, api, controller, history),
	}
	if store.IsAuthenticated() {
		a.view = viewChat
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.view == viewChat {
		return a.chat.Init()
	}
	return a.login.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		var loginCmd, chatCmd tea.Cmd
		a.login, loginCmd = a.login.Update(msg)
		a.chat, chatCmd = a.chat.Update(msg)
		return a, tea.Batch(loginCmd, chatCmd)

	case loginResultMsg:
		if msg.err == nil {
			a.view = viewChat
			a.chat.notice = fmt.Sprintf("Успешный вход, %s. Добро пожаловать в Q&A Bot!", msg.displayEmail)
			return a, a.chat.Init()
		}
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd

	case loggedOutMsg:
		a.view = viewLogin
		a.login = newLoginModel(a.api, a.store)
		return a, a.login.Init()
	}

	var cmd tea.Cmd
	if a.view == viewChat {
		a.chat, cmd = a.chat.Update(msg)
	} else {
		a.login, cmd = a.login.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.view == viewChat {
		return a.chat.View()
	}
	return a.login.View()
}
