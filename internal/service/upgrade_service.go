package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/email"
)

var (
	ErrInvalidStatus    = errors.New("unknown status")
	ErrEmailSendFailure = errors.New("email send failed")
)

// UpgradeService forwards status-upgrade requests to the operator mailbox.
// Upgrades are manual: an operator reviews the attached documents and changes
// the account tier out of band.
type UpgradeService struct {
	logger        *zap.Logger
	sender        email.Sender
	operatorEmail string
}

func NewUpgradeService(logger *zap.Logger, sender email.Sender, operatorEmail string) *UpgradeService {
	return &UpgradeService{
		logger:        logger,
		sender:        sender,
		operatorEmail: operatorEmail,
	}
}

// RequestUpgrade mails the request for the token's account.
func (s *UpgradeService) RequestUpgrade(ctx context.Context, token string, requested domain.UserStatus, message string) error {
	emailAddr, ok := domain.EmailFromToken(token)
	if !ok {
		return ErrInvalidToken
	}
	if !domain.ValidStatus(requested) || requested == domain.StatusBasic {
		return ErrInvalidStatus
	}
	if s.sender == nil {
		return ErrEmailSendFailure
	}

	if err := s.sender.SendUpgradeRequest(ctx, s.operatorEmail, emailAddr, requested, message); err != nil {
		s.logger.Warn("send upgrade request failed", zap.Error(err), zap.String("email", emailAddr))
		return ErrEmailSendFailure
	}
	return nil
}
