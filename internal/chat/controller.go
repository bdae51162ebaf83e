package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/service"
)

var (
	// ErrEmptyMessage rejects whitespace-only input. The log is unchanged.
	ErrEmptyMessage = errors.New("empty message")
	// ErrBusy rejects a send while another is in flight. Dropped, not queued.
	ErrBusy = errors.New("send already in flight")
	// ErrNoFailedTurn means Retry found nothing to resend.
	ErrNoFailedTurn = errors.New("no failed turn to retry")
)

// Controller orchestrates one conversation: it appends the user turn
// provisionally, calls the answer service, and settles the outcome. At most
// one send is in flight at a time.
type Controller struct {
	mu       sync.Mutex
	log      *Log
	answerer service.Answerer
	history  *History
	logger   *zap.Logger

	inFlight bool
	chatID   string
}

func NewController(logger *zap.Logger, answerer service.Answerer, history *History) *Controller {
	return &Controller{
		log:      NewLog(),
		answerer: answerer,
		history:  history,
		logger:   logger,
	}
}

// Send appends text as a user turn and asks the answer service for the bot
// turn. Blocks until the answer settles; run it off the UI loop. Empty input
// and concurrent sends are no-ops that leave the log unchanged.
func (c *Controller) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	c.inFlight = true
	epoch := c.log.Epoch()

	userMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: time.Now().UTC(),
		Delivery:  domain.DeliveryPending,
	}
	c.log.Append(userMsg)

	if c.history != nil && c.chatID == "" {
		c.chatID = c.history.Add(text).ID
	}
	c.mu.Unlock()

	return c.completeSend(ctx, epoch, userMsg.ID, text)
}

// Retry resends the most recent failed user turn without appending a new one.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	failed, ok := c.log.LastFailed()
	if !ok {
		c.mu.Unlock()
		return ErrNoFailedTurn
	}
	c.inFlight = true
	epoch := c.log.Epoch()
	c.log.SetDelivery(failed.ID, domain.DeliveryPending)
	c.mu.Unlock()

	return c.completeSend(ctx, epoch, failed.ID, failed.Content)
}

func (c *Controller) completeSend(ctx context.Context, epoch uint64, userMsgID, text string) error {
	answer, err := c.answerer.Answer(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	// The conversation was reset while the call was in flight; the result
	// belongs to a log that no longer exists.
	if c.log.Epoch() != epoch {
		return nil
	}

	if err != nil {
		c.log.SetDelivery(userMsgID, domain.DeliveryFailed)
		if c.logger != nil {
			c.logger.Warn("answer service failed", zap.Error(err))
		}
		return fmt.Errorf("answer service: %w", err)
	}

	c.log.SetDelivery(userMsgID, domain.DeliverySent)
	c.log.Append(domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleBot,
		Content:   answer.Text,
		Sources:   answer.Sources,
		Timestamp: time.Now().UTC(),
		Delivery:  domain.DeliverySent,
	})
	return nil
}

// Messages returns a snapshot of the conversation.
func (c *Controller) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.log.Messages()
}

// Pending reports whether a send is in flight.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// HasFailedTurn reports whether Retry has anything to resend.
func (c *Controller) HasFailedTurn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.log.LastFailed()
	return ok
}

// Reset starts a new conversation. An in-flight answer keeps running and is
// discarded when it lands.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Reset()
	c.chatID = ""
}
