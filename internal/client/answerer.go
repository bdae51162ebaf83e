package client

import (
	"context"

	"legal-qa-bot/internal/domain"
)

// QueryAnswerer answers questions through POST /api/query, attaching the
// bearer token the session currently holds.
type QueryAnswerer struct {
	api   *API
	token func() string
}

func NewQueryAnswerer(api *API, token func() string) *QueryAnswerer {
	return &QueryAnswerer{api: api, token: token}
}

func (q *QueryAnswerer) Answer(ctx context.Context, query string) (domain.Answer, error) {
	return q.api.Query(ctx, q.token(), query)
}
