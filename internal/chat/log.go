package chat

import "legal-qa-bot/internal/domain"

// Log is the append-only sequence of chat turns for one conversation.
// Insertion order is display order; turns are never removed, only their
// delivery state settles. Not safe for concurrent use: the Controller owns
// it and serializes access.
type Log struct {
	messages []domain.ChatMessage
	epoch    uint64
}

func NewLog() *Log {
	return &Log{}
}

// Append adds a turn at the end.
func (l *Log) Append(msg domain.ChatMessage) {
	l.messages = append(l.messages, msg)
}

// SetDelivery settles the delivery state of the turn with the given id.
func (l *Log) SetDelivery(id string, state domain.DeliveryState) {
	for i := range l.messages {
		if l.messages[i].ID == id {
			l.messages[i].Delivery = state
			return
		}
	}
}

// Messages returns a copy of the turns in insertion order.
func (l *Log) Messages() []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of turns.
func (l *Log) Len() int {
	return len(l.messages)
}

// LastFailed returns the most recent failed user turn, if any.
func (l *Log) LastFailed() (domain.ChatMessage, bool) {
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Role == domain.RoleUser && l.messages[i].Delivery == domain.DeliveryFailed {
			return l.messages[i], true
		}
	}
	return domain.ChatMessage{}, false
}

// Reset clears the log and bumps the epoch. Results of calls started under
// an older epoch must be discarded by the caller.
func (l *Log) Reset() {
	l.messages = nil
	l.epoch++
}

// Epoch identifies the current conversation generation.
func (l *Log) Epoch() uint64 {
	return l.epoch
}
