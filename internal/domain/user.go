package domain

import "time"

// UserStatus is the closed set of access tiers a profile can hold.
type UserStatus string

const (
	StatusBasic       UserStatus = "Базовый"
	StatusStudent     UserStatus = "Студент"
	StatusLegalEntity UserStatus = "Юр. Лицо"
	StatusDeputy      UserStatus = "Депутат"
)

// ValidStatus reports whether s is one of the known tiers.
func ValidStatus(s UserStatus) bool {
	switch s {
	case StatusBasic, StatusStudent, StatusLegalEntity, StatusDeputy:
		return true
	}
	return false
}

// User is the profile the client renders. RequestsUsed <= RequestsLimit is
// expected but not enforced; the quota counter is the source of truth.
type User struct {
	Name          string     `json:"name"`
	Status        UserStatus `json:"status"`
	RequestsUsed  int        `json:"requests_used"`
	RequestsLimit int        `json:"requests_limit"`
	Photo         string     `json:"photo,omitempty"`
}

// Account is the server-side registration record behind a User profile.
type Account struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name,omitempty"`
	PasswordHash  string     `json:"-"`
	Status        UserStatus `json:"status"`
	RequestsLimit int        `json:"requests_limit"`
	Photo         string     `json:"photo,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Profile builds the client-facing view of an account.
func (a Account) Profile(requestsUsed int) User {
	return User{
		Name:          a.Name,
		Status:        a.Status,
		RequestsUsed:  requestsUsed,
		RequestsLimit: a.RequestsLimit,
		Photo:         a.Photo,
	}
}
