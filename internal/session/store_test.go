package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"legal-qa-bot/internal/domain"
)

type memoryTokenStorage struct {
	token   string
	saveErr error
}

func (m *memoryTokenStorage) Load() (string, error) { return m.token, nil }

func (m *memoryTokenStorage) Save(token string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.token = token
	return nil
}

func (m *memoryTokenStorage) Clear() error {
	m.token = ""
	return nil
}

type fixedFetcher struct {
	user domain.User
	err  error
}

func (f fixedFetcher) FetchProfile(_ context.Context, _ string) (domain.User, error) {
	return f.user, f.err
}

func TestStoreLogin_SetsTokenAndUserTogether(t *testing.T) {
	storage := &memoryTokenStorage{}
	store := NewStore(zap.NewNop(), storage, fixedFetcher{user: domain.User{Name: "Анна", Status: domain.StatusBasic, RequestsLimit: 100}})

	if store.IsAuthenticated() {
		t.Fatalf("expected unauthenticated store before login")
	}

	if err := store.Login(context.Background(), "demo-token-for-a@b.c"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !store.IsAuthenticated() || store.Token() != "demo-token-for-a@b.c" {
		t.Fatalf("expected authenticated store with token")
	}
	user, ok := store.User()
	if !ok || user.Name != "Анна" {
		t.Fatalf("expected fetched profile, got %+v ok=%v", user, ok)
	}
	if storage.token != "demo-token-for-a@b.c" {
		t.Fatalf("token not persisted durably")
	}
}

func TestStoreLogin_EmptyTokenRejected(t *testing.T) {
	store := NewStore(zap.NewNop(), &memoryTokenStorage{}, nil)

	if err := store.Login(context.Background(), ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestStoreLogin_SaveFailureLeavesStoreUnauthenticated(t *testing.T) {
	storage := &memoryTokenStorage{saveErr: errors.New("disk full")}
	store := NewStore(zap.NewNop(), storage, nil)

	if err := store.Login(context.Background(), "demo-token-for-a@b.c"); err == nil {
		t.Fatalf("expected save error to surface")
	}
	if store.IsAuthenticated() {
		t.Fatalf("failed login must not authenticate")
	}
	if _, ok := store.User(); ok {
		t.Fatalf("failed login must not set a user")
	}
}

func TestStoreLogout_ClearsEverything(t *testing.T) {
	storage := &memoryTokenStorage{}
	store := NewStore(zap.NewNop(), storage, nil)

	if err := store.Login(context.Background(), "demo-token-for-a@b.c"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.IsAuthenticated() || store.Token() != "" {
		t.Fatalf("expected cleared session")
	}
	if _, ok := store.User(); ok {
		t.Fatalf("expected no user after logout")
	}
	if storage.token != "" {
		t.Fatalf("expected cleared durable token")
	}
}

func TestStoreHydrate_RestoresSavedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	storage, err := NewFileTokenStorage(path)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	if err := storage.Save("demo-token-for-a@b.c"); err != nil {
		t.Fatalf("save: %v", err)
	}

	store := NewStore(zap.NewNop(), storage, nil)
	if !store.Hydrate(context.Background()) {
		t.Fatalf("expected hydrate to find a token")
	}
	if store.Token() != "demo-token-for-a@b.c" {
		t.Fatalf("unexpected token %q", store.Token())
	}
	if _, ok := store.User(); !ok {
		t.Fatalf("hydrated session must carry a profile")
	}
}

func TestStoreHydrate_MissingTokenStaysUnauthenticated(t *testing.T) {
	storage, err := NewFileTokenStorage(filepath.Join(t.TempDir(), "token"))
	if err != nil {
		t.Fatalf("storage: %v", err)
	}

	store := NewStore(zap.NewNop(), storage, nil)
	if store.Hydrate(context.Background()) {
		t.Fatalf("expected hydrate to report no session")
	}
	if store.IsAuthenticated() {
		t.Fatalf("expected unauthenticated store")
	}
}

func TestStoreUpdateUser_RequiresAuthentication(t *testing.T) {
	store := NewStore(zap.NewNop(), &memoryTokenStorage{}, nil)

	if err := store.UpdateUser(domain.User{Name: "Анна"}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	if err := store.Login(context.Background(), "demo-token-for-a@b.c"); err != nil {
		t.Fatalf("login: %v", err)
	}
	updated := domain.User{Name: "Петр", Status: domain.StatusStudent, RequestsUsed: 3, RequestsLimit: 200}
	if err := store.UpdateUser(updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	user, _ := store.User()
	if user != updated {
		t.Fatalf("expected stored profile %+v, got %+v", updated, user)
	}
}

func TestStoreFetchFallback_UsesPlaceholderOnError(t *testing.T) {
	store := NewStore(zap.NewNop(), &memoryTokenStorage{}, fixedFetcher{err: errors.New("backend down")})

	if err := store.Login(context.Background(), "demo-token-for-a@b.c"); err != nil {
		t.Fatalf("login: %v", err)
	}
	user, ok := store.User()
	if !ok || user.Name != "Иван Иванов" {
		t.Fatalf("expected placeholder profile, got %+v", user)
	}
}

func TestFallbackFetcher_PrimaryWinsWhenHealthy(t *testing.T) {
	f := FallbackFetcher{
		Primary:   fixedFetcher{user: domain.User{Name: "Основной"}},
		Secondary: fixedFetcher{user: domain.User{Name: "Запасной"}},
	}

	user, err := f.FetchProfile(context.Background(), "t")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if user.Name != "Основной" {
		t.Fatalf("expected primary profile, got %q", user.Name)
	}

	f.Primary = fixedFetcher{err: errors.New("down")}
	user, err = f.FetchProfile(context.Background(), "t")
	if err != nil {
		t.Fatalf("fallback fetch: %v", err)
	}
	if user.Name != "Запасной" {
		t.Fatalf("expected secondary profile, got %q", user.Name)
	}
}
