package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

// PassageRepository handles shared reading passage data access.
type PassageRepository struct {
	pool *pgxpool.Pool
}

// NewPassageRepository creates a new PassageRepository.
func NewPassageRepository(pool *pgxpool.Pool) *PassageRepository {
	return &PassageRepository{pool: pool}
}

// Create inserts a new passage.
func (r *PassageRepository) Create(ctx context.Context, p *model.Passage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO passages (title, body) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Body).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// GetByID retrieves a passage by ID.
func (r *PassageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Passage, error) {
	p := &model.Passage{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, body, created_at, updated_at FROM passages WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByIDs retrieves the passages referenced by a question paper.
func (r *PassageRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Passage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, body, created_at, updated_at FROM passages WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passages []model.Passage
	for rows.Next() {
		var p model.Passage
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		passages = append(passages, p)
	}
	return passages, rows.Err()
}

// List retrieves all passages, newest first.
func (r *PassageRepository) List(ctx context.Context, limit, offset int) ([]model.Passage, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM passages`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, body, created_at, updated_at
		 FROM passages ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var passages []model.Passage
	for rows.Next() {
		var p model.Passage
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		passages = append(passages, p)
	}
	return passages, total, rows.Err()
}

// Update modifies a passage.
func (r *PassageRepository) Update(ctx context.Context, p *model.Passage) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE passages SET title = $1, body = $2, updated_at = NOW() WHERE id = $3`,
		p.Title, p.Body, p.ID)
	return err
}

// Delete removes a passage by ID.
func (r *PassageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM passages WHERE id = $1`, id)
	return err
}
