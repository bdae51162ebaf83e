package domain

import "time"

// Role identifies who produced a chat turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// DeliveryState tracks the two-phase life of a user turn: appended
// provisionally, then confirmed or failed once the answer call settles.
// Bot turns are always Sent.
type DeliveryState string

const (
	DeliveryPending DeliveryState = "pending"
	DeliverySent    DeliveryState = "sent"
	DeliveryFailed  DeliveryState = "failed"
)

// Source is a citation attached to a bot turn. ID is the citation order
// within its message. Immutable once attached.
type Source struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChatMessage is one turn in a conversation. Never mutated after the
// delivery state settles; there is no edit or delete operation.
type ChatMessage struct {
	ID        string        `json:"id"`
	Role      Role          `json:"role"`
	Content   string        `json:"content"`
	Sources   []Source      `json:"sources,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Delivery  DeliveryState `json:"delivery"`
}

// Chat is a conversation record for the recent-chats list.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Answer is what the answer service returns for one question.
type Answer struct {
	Text    string   `json:"answer"`
	Sources []Source `json:"sources"`
}
