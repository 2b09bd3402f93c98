package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

var ErrDuplicateBoardCode = errors.New("exam board with this code already exists")

type ExamBoardRepository struct {
	pool *pgxpool.Pool
}

func NewExamBoardRepository(pool *pgxpool.Pool) *ExamBoardRepository {
	return &ExamBoardRepository{pool: pool}
}

func (r *ExamBoardRepository) Create(ctx context.Context, b *model.ExamBoard) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO exam_boards (code, name) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		b.Code, b.Name).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateBoardCode
		}
		return err
	}
	return nil
}

func (r *ExamBoardRepository) GetAll(ctx context.Context) ([]model.ExamBoard, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, name, created_at, updated_at FROM exam_boards ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []model.ExamBoard
	for rows.Next() {
		var b model.ExamBoard
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

func (r *ExamBoardRepository) Update(ctx context.Context, b *model.ExamBoard) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE exam_boards SET code = $1, name = $2, updated_at = NOW() WHERE id = $3`,
		b.Code, b.Name, b.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateBoardCode
		}
		return err
	}
	return nil
}

func (r *ExamBoardRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM exam_boards WHERE id = $1`, id)
	return err
}
