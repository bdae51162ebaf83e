package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"legal-qa-bot/internal/domain"
)

type recordingSender struct {
	lastTo        string
	lastAccount   string
	lastRequested domain.UserStatus
	lastMessage   string
	err           error
}

func (m *recordingSender) SendUpgradeRequest(_ context.Context, toEmail, accountEmail string, requested domain.UserStatus, message string) error {
	m.lastTo = toEmail
	m.lastAccount = accountEmail
	m.lastRequested = requested
	m.lastMessage = message
	return m.err
}

func TestUpgradeService_SendsToOperator(t *testing.T) {
	sender := &recordingSender{}
	svc := NewUpgradeService(zap.NewNop(), sender, "operator@example.com")

	err := svc.RequestUpgrade(context.Background(), domain.TokenForEmail("user@example.com"), domain.StatusStudent, "документы приложены")
	if err != nil {
		t.Fatalf("request upgrade: %v", err)
	}
	if sender.lastTo != "operator@example.com" {
		t.Fatalf("expected operator mailbox, got %q", sender.lastTo)
	}
	if sender.lastAccount != "user@example.com" || sender.lastRequested != domain.StatusStudent {
		t.Fatalf("unexpected request account=%q status=%q", sender.lastAccount, sender.lastRequested)
	}
	if sender.lastMessage != "документы приложены" {
		t.Fatalf("message not forwarded, got %q", sender.lastMessage)
	}
}

func TestUpgradeService_InvalidToken(t *testing.T) {
	svc := NewUpgradeService(zap.NewNop(), &recordingSender{}, "operator@example.com")

	err := svc.RequestUpgrade(context.Background(), "garbage", domain.StatusStudent, "")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUpgradeService_RejectsUnknownAndBasicStatus(t *testing.T) {
	svc := NewUpgradeService(zap.NewNop(), &recordingSender{}, "operator@example.com")
	token := domain.TokenForEmail("user@example.com")

	if err := svc.RequestUpgrade(context.Background(), token, "Президент", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for unknown status, got %v", err)
	}
	if err := svc.RequestUpgrade(context.Background(), token, domain.StatusBasic, ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for basic status, got %v", err)
	}
}

func TestUpgradeService_SendFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	svc := NewUpgradeService(zap.NewNop(), sender, "operator@example.com")

	err := svc.RequestUpgrade(context.Background(), domain.TokenForEmail("user@example.com"), domain.StatusDeputy, "")
	if !errors.Is(err, ErrEmailSendFailure) {
		t.Fatalf("expected ErrEmailSendFailure, got %v", err)
	}
}
