package email

import (
	"context"
	"errors"

	"legal-qa-bot/internal/domain"
)

// Sender delivers status-upgrade requests to the operator mailbox.
type Sender interface {
	SendUpgradeRequest(ctx context.Context, toEmail string, accountEmail string, requested domain.UserStatus, message string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendUpgradeRequest(_ context.Context, _ string, _ string, _ domain.UserStatus, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
