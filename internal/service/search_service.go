package service

import (
	"context"
	"sort"
	"strings"

	"legal-qa-bot/internal/domain"
)

const defaultTopK = 5

// SearchService scores laws by substring match. A stub standing in for real
// vector search; scores are 1.0 on a title/text hit and 0.0 otherwise.
type SearchService struct {
	laws repositoryLawLister
}

type repositoryLawLister interface {
	List(ctx context.Context) ([]domain.Law, error)
}

func NewSearchService(laws repositoryLawLister) *SearchService {
	return &SearchService{laws: laws}
}

func (s *SearchService) Search(ctx context.Context, query string, topK int) ([]domain.SearchHit, error) {
	if topK <= 0 {
		topK = defaultTopK
	}

	laws, err := s.laws.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	hits := make([]domain.SearchHit, 0, len(laws))
	for _, l := range laws {
		score := 0.0
		if strings.Contains(strings.ToLower(l.Title), q) || strings.Contains(strings.ToLower(l.Text), q) {
			score = 1.0
		}
		hits = append(hits, domain.SearchHit{
			ID:    l.ID,
			Title: l.Title,
			Text:  l.Text,
			Score: score,
		})
	}

	// Stable sort keeps corpus order among equal scores.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}
