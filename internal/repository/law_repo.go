package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"legal-qa-bot/internal/domain"
)

// LawRepository is the read contract for the demo law corpus.
type LawRepository interface {
	List(ctx context.Context) ([]domain.Law, error)
	GetByID(ctx context.Context, id int) (domain.Law, error)
}

// PgLawRepository implements LawRepository on pgxpool.
type PgLawRepository struct {
	pool *pgxpool.Pool
}

func NewPgLawRepository(pool *pgxpool.Pool) *PgLawRepository {
	return &PgLawRepository{pool: pool}
}

func (r *PgLawRepository) List(ctx context.Context) ([]domain.Law, error) {
	const query = `
		SELECT id, title, text
		FROM laws
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var laws []domain.Law
	for rows.Next() {
		var l domain.Law
		if err := rows.Scan(&l.ID, &l.Title, &l.Text); err != nil {
			return nil, err
		}
		laws = append(laws, l)
	}
	return laws, rows.Err()
}

func (r *PgLawRepository) GetByID(ctx context.Context, id int) (domain.Law, error) {
	const query = `
		SELECT id, title, text
		FROM laws
		WHERE id = $1
	`
	var l domain.Law
	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.Title, &l.Text)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Law{}, err
	}
	return l, err
}
