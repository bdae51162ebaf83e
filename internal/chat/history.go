package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"legal-qa-bot/internal/domain"
)

const maxTitleLen = 40

// History keeps records of started conversations for the sidebar. In-memory
// only; a multi-chat backend would persist these alongside their logs.
type History struct {
	mu    sync.RWMutex
	chats []domain.Chat
}

func NewHistory() *History {
	return &History{}
}

// Add records a new conversation titled after its first question.
func (h *History) Add(firstQuestion string) domain.Chat {
	chat := domain.Chat{
		ID:        uuid.NewString(),
		Title:     titleFrom(firstQuestion),
		CreatedAt: time.Now().UTC(),
	}

	h.mu.Lock()
	h.chats = append([]domain.Chat{chat}, h.chats...)
	h.mu.Unlock()
	return chat
}

// Recent returns up to limit records, newest first.
func (h *History) Recent(limit int) []domain.Chat {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if limit <= 0 || limit > len(h.chats) {
		limit = len(h.chats)
	}
	out := make([]domain.Chat, limit)
	copy(out, h.chats[:limit])
	return out
}

func titleFrom(question string) string {
	runes := []rune(question)
	if len(runes) <= maxTitleLen {
		return question
	}
	return string(runes[:maxTitleLen]) + "…"
}
