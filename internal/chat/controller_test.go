package chat

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/service"
)

// blockingAnswerer parks in Answer until released, so tests can observe the
// in-flight window.
type blockingAnswerer struct {
	started chan struct{}
	release chan struct{}
	answer  domain.Answer
	err     error
}

func newBlockingAnswerer() *blockingAnswerer {
	return &blockingAnswerer{
		started: make(chan struct{}),
		release: make(chan struct{}),
		answer:  domain.Answer{Text: "ответ", Sources: []domain.Source{{ID: 1, Title: "Источник", Content: "..."}}},
	}
}

func (a *blockingAnswerer) Answer(_ context.Context, _ string) (domain.Answer, error) {
	a.started <- struct{}{}
	<-a.release
	return a.answer, a.err
}

// flakyAnswerer fails the first failFirst calls and then succeeds.
type flakyAnswerer struct {
	calls     int
	failFirst int
	answer    domain.Answer
}

func (a *flakyAnswerer) Answer(_ context.Context, _ string) (domain.Answer, error) {
	a.calls++
	if a.calls <= a.failFirst {
		return domain.Answer{}, errors.New("answer service unavailable")
	}
	return a.answer, nil
}

func TestControllerSend_AppendsUserThenBot(t *testing.T) {
	answer := domain.Answer{Text: "ответ", Sources: []domain.Source{{ID: 1, Title: "Источник", Content: "..."}}}
	c := NewController(zap.NewNop(), &service.StaticAnswerer{Response: answer}, NewHistory())

	if err := c.Send(context.Background(), "вопрос"); err != nil {
		t.Fatalf("send: %v", err)
	}

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(msgs))
	}
	if msgs[0].Role != domain.RoleUser || msgs[0].Content != "вопрос" {
		t.Fatalf("unexpected user turn %+v", msgs[0])
	}
	if msgs[0].Delivery != domain.DeliverySent {
		t.Fatalf("expected user turn settled as sent, got %q", msgs[0].Delivery)
	}
	if msgs[1].Role != domain.RoleBot || msgs[1].Content != "ответ" {
		t.Fatalf("unexpected bot turn %+v", msgs[1])
	}
	if len(msgs[1].Sources) == 0 {
		t.Fatalf("expected bot turn to carry sources")
	}
}

func TestControllerSend_EmptyInputLeavesLogUnchanged(t *testing.T) {
	c := NewController(zap.NewNop(), &service.StaticAnswerer{}, NewHistory())

	if err := c.Send(context.Background(), "   \n\t "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if len(c.Messages()) != 0 {
		t.Fatalf("expected empty log, got %d turns", len(c.Messages()))
	}
}

func TestControllerSend_DropsConcurrentSend(t *testing.T) {
	ans := newBlockingAnswerer()
	c := NewController(zap.NewNop(), ans, NewHistory())

	errCh := make(chan error, 1)
	go func() { errCh <- c.Send(context.Background(), "первый") }()
	<-ans.started

	if !c.Pending() {
		t.Fatalf("expected pending while answer is in flight")
	}
	if err := c.Send(context.Background(), "второй"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(ans.release)
	if err := <-errCh; err != nil {
		t.Fatalf("first send: %v", err)
	}

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("dropped send must not append, got %d turns", len(msgs))
	}
	if msgs[0].Content != "первый" {
		t.Fatalf("unexpected user turn %+v", msgs[0])
	}
}

func TestControllerSend_FailureMarksTurnFailed(t *testing.T) {
	c := NewController(zap.NewNop(), &service.StaticAnswerer{Err: errors.New("boom")}, NewHistory())

	if err := c.Send(context.Background(), "вопрос"); err == nil {
		t.Fatalf("expected error from send")
	}

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected only the user turn, got %d", len(msgs))
	}
	if msgs[0].Delivery != domain.DeliveryFailed {
		t.Fatalf("expected failed delivery, got %q", msgs[0].Delivery)
	}
	if !c.HasFailedTurn() {
		t.Fatalf("expected a retryable turn")
	}
}

func TestControllerRetry_ResendsFailedTurn(t *testing.T) {
	ans := &flakyAnswerer{
		failFirst: 1,
		answer:    domain.Answer{Text: "ответ", Sources: []domain.Source{{ID: 1, Title: "Источник"}}},
	}
	c := NewController(zap.NewNop(), ans, NewHistory())

	if err := c.Send(context.Background(), "вопрос"); err == nil {
		t.Fatalf("expected first send to fail")
	}
	if err := c.Retry(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("retry must reuse the user turn, got %d turns", len(msgs))
	}
	if msgs[0].Delivery != domain.DeliverySent {
		t.Fatalf("expected user turn settled as sent, got %q", msgs[0].Delivery)
	}
	if msgs[1].Role != domain.RoleBot {
		t.Fatalf("expected bot turn after retry, got %+v", msgs[1])
	}
	if c.HasFailedTurn() {
		t.Fatalf("expected no retryable turn left")
	}
}

func TestControllerRetry_NothingToResend(t *testing.T) {
	c := NewController(zap.NewNop(), &service.StaticAnswerer{}, NewHistory())

	if err := c.Retry(context.Background()); !errors.Is(err, ErrNoFailedTurn) {
		t.Fatalf("expected ErrNoFailedTurn, got %v", err)
	}
}

func TestControllerReset_DiscardsInFlightAnswer(t *testing.T) {
	ans := newBlockingAnswerer()
	c := NewController(zap.NewNop(), ans, NewHistory())

	errCh := make(chan error, 1)
	go func() { errCh <- c.Send(context.Background(), "вопрос") }()
	<-ans.started

	c.Reset()
	close(ans.release)

	if err := <-errCh; err != nil {
		t.Fatalf("discarded answer must not surface an error, got %v", err)
	}
	if len(c.Messages()) != 0 {
		t.Fatalf("expected fresh log after reset, got %d turns", len(c.Messages()))
	}
	if c.Pending() {
		t.Fatalf("expected no pending send after discard")
	}
}

func TestControllerSend_RecordsChatInHistory(t *testing.T) {
	history := NewHistory()
	c := NewController(zap.NewNop(), &service.StaticAnswerer{Response: domain.Answer{Text: "ответ"}}, history)

	if err := c.Send(context.Background(), "первый вопрос"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := c.Send(context.Background(), "второй вопрос"); err != nil {
		t.Fatalf("send: %v", err)
	}

	recent := history.Recent(0)
	if len(recent) != 1 {
		t.Fatalf("one conversation must yield one record, got %d", len(recent))
	}
	if recent[0].Title != "первый вопрос" {
		t.Fatalf("expected title from first question, got %q", recent[0].Title)
	}

	c.Reset()
	if err := c.Send(context.Background(), "новый чат"); err != nil {
		t.Fatalf("send: %v", err)
	}
	recent = history.Recent(0)
	if len(recent) != 2 || recent[0].Title != "новый чат" {
		t.Fatalf("expected new record first, got %+v", recent)
	}
}
