package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/repository"
)

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidToken  = errors.New("invalid token")
	ErrDuplicateEmail = repository.ErrDuplicateEmail
)

// placeholderName is what profiles show until the account sets a real name.
const placeholderName = "Иван Иванов"

// AccountService owns registration and profile reads/writes. Login itself is
// not here: the demo login endpoint accepts any credentials and never touches
// the account store.
type AccountService struct {
	logger       *zap.Logger
	accounts     repository.AccountRepository
	quota        QuotaCounter
	defaultLimit int
}

func NewAccountService(logger *zap.Logger, accounts repository.AccountRepository, quota QuotaCounter, defaultLimit int) *AccountService {
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	if quota == nil {
		quota = NewMemoryQuotaCounter()
	}
	return &AccountService{
		logger:       logger,
		accounts:     accounts,
		quota:        quota,
		defaultLimit: defaultLimit,
	}
}

// Register stores a new account with a bcrypt password hash.
func (s *AccountService) Register(ctx context.Context, emailAddr, password, name string) (domain.Account, error) {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return domain.Account{}, ErrInvalidEmail
	}

	var passwordHash string
	if password = strings.TrimSpace(password); password != "" {
		hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return domain.Account{}, err
		}
		passwordHash = string(hashBytes)
	}

	account := domain.Account{
		ID:            uuid.NewString(),
		Email:         emailAddr,
		Name:          strings.TrimSpace(name),
		PasswordHash:  passwordHash,
		Status:        domain.StatusBasic,
		RequestsLimit: s.defaultLimit,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

// ProfileForToken resolves the profile behind a demo token. Unregistered
// accounts get the placeholder profile, matching the original demo where
// login fabricates a fixed user.
func (s *AccountService) ProfileForToken(ctx context.Context, token string) (domain.User, error) {
	account, err := s.accountForToken(ctx, token)
	if err != nil {
		return domain.User{}, err
	}

	used, err := s.quota.Get(ctx, account.Email)
	if err != nil {
		s.logger.Warn("quota read failed", zap.Error(err), zap.String("email", account.Email))
		used = 0
	}
	return account.Profile(used), nil
}

// UpdateProfile replaces name and photo for the token's account. An account
// that only ever logged in (never registered) is created on first write.
func (s *AccountService) UpdateProfile(ctx context.Context, token, name, photo string) (domain.User, error) {
	account, err := s.accountForToken(ctx, token)
	if err != nil {
		return domain.User{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = account.Name
	}

	if account.ID == "" {
		account.ID = uuid.NewString()
		account.Name = name
		account.Photo = photo
		account.CreatedAt = time.Now().UTC()
		if err := s.accounts.Create(ctx, account); err != nil {
			return domain.User{}, err
		}
	} else {
		if err := s.accounts.UpdateProfile(ctx, account.Email, name, photo); err != nil {
			return domain.User{}, err
		}
		account.Name = name
		account.Photo = photo
	}

	used, err := s.quota.Get(ctx, account.Email)
	if err != nil {
		used = 0
	}
	return account.Profile(used), nil
}

// SpendRequest counts one answered question against the token's account and
// returns the new total.
func (s *AccountService) SpendRequest(ctx context.Context, token string) (int, error) {
	emailAddr, ok := domain.EmailFromToken(token)
	if !ok {
		return 0, ErrInvalidToken
	}
	return s.quota.Increment(ctx, emailAddr)
}

func (s *AccountService) accountForToken(ctx context.Context, token string) (domain.Account, error) {
	emailAddr, ok := domain.EmailFromToken(token)
	if !ok {
		return domain.Account{}, ErrInvalidToken
	}

	account, err := s.accounts.GetByEmail(ctx, emailAddr)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, err
		}
		// Unregistered demo account: synthesize the placeholder.
		account = domain.Account{
			Email:         emailAddr,
			Name:          placeholderName,
			Status:        domain.StatusBasic,
			RequestsLimit: s.defaultLimit,
		}
	}
	return account, nil
}

func normalizeEmail(emailAddr string) string {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if !strings.Contains(emailAddr, "@") {
		return ""
	}
	return emailAddr
}
