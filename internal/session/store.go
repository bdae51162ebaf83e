package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"legal-qa-bot/internal/domain"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// AccountFetcher resolves the profile behind a validated token.
type AccountFetcher interface {
	FetchProfile(ctx context.Context, token string) (domain.User, error)
}

// StaticAccountFetcher returns the fixed demo profile regardless of token.
// Stands in for a real account service.
type StaticAccountFetcher struct{}

func (StaticAccountFetcher) FetchProfile(_ context.Context, _ string) (domain.User, error) {
	return domain.User{
		Name:          "Иван Иванов",
		Status:        domain.StatusBasic,
		RequestsUsed:  15,
		RequestsLimit: 100,
	}, nil
}

// FallbackFetcher tries primary and falls back to secondary on error, so the
// client stays usable when the backend has no profile route.
type FallbackFetcher struct {
	Primary   AccountFetcher
	Secondary AccountFetcher
}

func (f FallbackFetcher) FetchProfile(ctx context.Context, token string) (domain.User, error) {
	user, err := f.Primary.FetchProfile(ctx, token)
	if err != nil && f.Secondary != nil {
		return f.Secondary.FetchProfile(ctx, token)
	}
	return user, err
}

// Store holds the current identity: token plus profile. Token and user are
// only ever written together under the lock, so a non-nil user implies a
// non-empty token. Explicitly passed to the views that need it; there is no
// package-level instance.
type Store struct {
	mu       sync.RWMutex
	logger   *zap.Logger
	tokens   TokenStorage
	accounts AccountFetcher

	token string
	user  *domain.User
}

func NewStore(logger *zap.Logger, tokens TokenStorage, accounts AccountFetcher) *Store {
	if accounts == nil {
		accounts = StaticAccountFetcher{}
	}
	return &Store{
		logger:   logger,
		tokens:   tokens,
		accounts: accounts,
	}
}

// Hydrate restores the session from durable storage. Returns true when a
// token was found. A missing or corrupt entry leaves the store
// unauthenticated without error.
func (s *Store) Hydrate(ctx context.Context) bool {
	token, err := s.tokens.Load()
	if err != nil || token == "" {
		return false
	}

	user := s.fetchProfile(ctx, token)

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	return true
}

// Login persists the token durably and loads the profile behind it.
func (s *Store) Login(ctx context.Context, token string) error {
	if token == "" {
		return ErrNotAuthenticated
	}
	if err := s.tokens.Save(token); err != nil {
		return err
	}

	user := s.fetchProfile(ctx, token)

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Logout clears durable storage and the in-memory identity. No network call.
func (s *Store) Logout() error {
	err := s.tokens.Clear()

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	return err
}

// UpdateUser replaces the profile wholesale. Rejected when unauthenticated
// so the token-implies-user invariant cannot flip.
func (s *Store) UpdateUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return ErrNotAuthenticated
	}
	s.user = &user
	return nil
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current bearer token, "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current profile.
func (s *Store) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Store) fetchProfile(ctx context.Context, token string) domain.User {
	user, err := s.accounts.FetchProfile(ctx, token)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("profile fetch failed, using placeholder", zap.Error(err))
		}
		user, _ = StaticAccountFetcher{}.FetchProfile(ctx, token)
	}
	return user
}
