package service

import (
	"context"
	"time"

	"legal-qa-bot/internal/domain"
)

// Answerer is the answer-service contract: full question text in, answer
// with cited sources out. The real retrieval-augmented backend plugs in
// here; everything in this repository is a stand-in.
type Answerer interface {
	Answer(ctx context.Context, query string) (domain.Answer, error)
}

const cannedAnswerText = "Согласно действующему законодательству, статья 45 Закона N 229-ФЗ " +
	"\"Об исполнительном производстве\" устанавливает порядок обращения взыскания " +
	"на имущество должника. В соответствии с данной статьей, взыскание может быть " +
	"обращено на любое имущество должника, за исключением случаев, предусмотренных законом."

func cannedSources() []domain.Source {
	return []domain.Source{
		{ID: 1, Title: "Статья 45, Закон N 229-ФЗ", Content: "Об исполнительном производстве..."},
		{ID: 2, Title: "ГК РФ, Статья 307", Content: "В силу обязательства одно лицо..."},
	}
}

// CannedAnswerer replays a fixed answer after a fixed delay, simulating the
// latency of a real answer service.
type CannedAnswerer struct {
	delay time.Duration
}

func NewCannedAnswerer(delay time.Duration) *CannedAnswerer {
	return &CannedAnswerer{delay: delay}
}

func (a *CannedAnswerer) Answer(ctx context.Context, _ string) (domain.Answer, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.Answer{}, ctx.Err()
		case <-timer.C:
		}
	}
	return domain.Answer{
		Text:    cannedAnswerText,
		Sources: cannedSources(),
	}, nil
}

// RetrievalAnswerer backs the canned answer text with sources taken from the
// search stub, so citations at least reflect the question.
type RetrievalAnswerer struct {
	search *SearchService
}

func NewRetrievalAnswerer(search *SearchService) *RetrievalAnswerer {
	return &RetrievalAnswerer{search: search}
}

func (a *RetrievalAnswerer) Answer(ctx context.Context, query string) (domain.Answer, error) {
	hits, err := a.search.Search(ctx, query, 2)
	if err != nil {
		return domain.Answer{}, err
	}

	sources := make([]domain.Source, 0, len(hits))
	for i, hit := range hits {
		sources = append(sources, domain.Source{
			ID:      i + 1,
			Title:   hit.Title,
			Content: hit.Text,
		})
	}
	if len(sources) == 0 {
		sources = cannedSources()
	}

	return domain.Answer{
		Text:    cannedAnswerText,
		Sources: sources,
	}, nil
}

// StaticAnswerer returns a fixed answer or error; test helper.
type StaticAnswerer struct {
	Response domain.Answer
	Err      error
}

func (a *StaticAnswerer) Answer(_ context.Context, _ string) (domain.Answer, error) {
	return a.Response, a.Err
}
