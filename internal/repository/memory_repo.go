package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"legal-qa-bot/internal/domain"
)

// SeedLaws is the in-memory demo corpus served when no database is
// configured. Matches the demo backend's fixture data.
func SeedLaws() []domain.Law {
	return []domain.Law{
		{ID: 1, Title: "Закон о труде", Text: "Текст закона о труде..."},
		{ID: 2, Title: "Инструкция по безопасности", Text: "Текст инструкции..."},
		{ID: 3, Title: "Закон о защите данных", Text: "Текст закона о данных..."},
	}
}

// MemoryLawRepository serves a fixed law list without a database.
type MemoryLawRepository struct {
	laws []domain.Law
}

func NewMemoryLawRepository(laws []domain.Law) *MemoryLawRepository {
	if laws == nil {
		laws = SeedLaws()
	}
	return &MemoryLawRepository{laws: laws}
}

func (r *MemoryLawRepository) List(_ context.Context) ([]domain.Law, error) {
	out := make([]domain.Law, len(r.laws))
	copy(out, r.laws)
	return out, nil
}

func (r *MemoryLawRepository) GetByID(_ context.Context, id int) (domain.Law, error) {
	for _, l := range r.laws {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Law{}, pgx.ErrNoRows
}

// MemoryAccountRepository keeps registered accounts in process memory.
// Demo-only: accounts vanish on restart.
type MemoryAccountRepository struct {
	mu      sync.RWMutex
	byEmail map[string]domain.Account
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		byEmail: make(map[string]domain.Account),
	}
}

func (r *MemoryAccountRepository) Create(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[account.Email]; ok {
		return ErrDuplicateEmail
	}
	r.byEmail[account.Email] = account
	return nil
}

func (r *MemoryAccountRepository) GetByEmail(_ context.Context, email string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.byEmail[email]
	if !ok {
		return domain.Account{}, pgx.ErrNoRows
	}
	return account, nil
}

func (r *MemoryAccountRepository) UpdateProfile(_ context.Context, email, name, photo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.byEmail[email]
	if !ok {
		return pgx.ErrNoRows
	}
	account.Name = name
	account.Photo = photo
	r.byEmail[email] = account
	return nil
}
