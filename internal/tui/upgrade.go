package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"legal-qa-bot/internal/domain"
)

// operatorEmail is where upgrade requests with documents go.
const operatorEmail = "apppla@yandex.ru"

func (m chatModel) updateUpgradeModal(msg tea.Msg) (chatModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter":
			m.modal = modalNone
			return m, nil
		case "1":
			return m, m.requestUpgradeCmd(domain.StatusStudent)
		case "2":
			return m, m.requestUpgradeCmd(domain.StatusLegalEntity)
		case "3":
			return m, m.requestUpgradeCmd(domain.StatusDeputy)
		}
	}
	return m, nil
}

func (m chatModel) requestUpgradeCmd(requested domain.UserStatus) tea.Cmd {
	api := m.api
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := api.RequestUpgrade(ctx, store.Token(), requested, "Запрос отправлен из терминального клиента.")
		return upgradeSentMsg{requested: requested, err: err}
	}
}

func (m chatModel) upgradeView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Повышение уровня доступа"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Для повышения уровня доступа отправьте запрос с подтверждающими документами"))
	b.WriteString("\n\n")
	b.WriteString("Отправьте запрос на электронную почту: " + operatorEmail)
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Требования для каждого статуса:"))
	b.WriteString("\n")
	b.WriteString("[1] Студент — скан студенческого билета\n")
	b.WriteString("[2] Юр. Лицо — ИНН и ОГРН организации\n")
	b.WriteString("[3] Депутат — удостоверение депутата\n")
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Что указать в письме:"))
	b.WriteString("\n")
	b.WriteString("· Ваше полное имя (ФИО)\n")
	b.WriteString("· Email, используемый для входа в систему\n")
	b.WriteString("· Желаемый статус\n")
	b.WriteString("· Прикрепленные подтверждающие документы\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("1/2/3 — отправить запрос · Esc — закрыть"))
	return modalStyle.Render(b.String())
}
