package service

import (
	"context"
	"testing"
	"time"

	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/repository"
)

func TestCannedAnswerer_AnswerCarriesSources(t *testing.T) {
	a := NewCannedAnswerer(0)

	answer, err := a.Answer(context.Background(), "любой вопрос")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer.Text == "" {
		t.Fatalf("expected non-empty answer text")
	}
	if len(answer.Sources) != 2 {
		t.Fatalf("expected 2 canned sources, got %d", len(answer.Sources))
	}
	if answer.Sources[0].Title == "" || answer.Sources[0].ID != 1 {
		t.Fatalf("unexpected source %+v", answer.Sources[0])
	}
}

func TestCannedAnswerer_CancelledContext(t *testing.T) {
	a := NewCannedAnswerer(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.Answer(ctx, "q"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestRetrievalAnswerer_SourcesFollowSearch(t *testing.T) {
	search := NewSearchService(repository.NewMemoryLawRepository(nil))
	a := NewRetrievalAnswerer(search)

	answer, err := a.Answer(context.Background(), "труд")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if len(answer.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(answer.Sources))
	}
	if answer.Sources[0].Title != "Закон о труде" {
		t.Fatalf("expected labor law cited first, got %+v", answer.Sources[0])
	}
	if answer.Sources[0].ID != 1 || answer.Sources[1].ID != 2 {
		t.Fatalf("source ids must be sequential, got %+v", answer.Sources)
	}
}

func TestRetrievalAnswerer_FallsBackToCannedSources(t *testing.T) {
	search := NewSearchService(repository.NewMemoryLawRepository([]domain.Law{}))
	a := NewRetrievalAnswerer(search)

	answer, err := a.Answer(context.Background(), "что угодно")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if len(answer.Sources) != 2 {
		t.Fatalf("expected canned fallback sources, got %d", len(answer.Sources))
	}
}
