package store

import (
	"context"
	"errors"

	"marketplace/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateUser(ctx context.Context, input UserInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO users (name, email, role)
		VALUES ($1,$2,$3)
		RETURNING id`,
		input.Name, input.Email, input.Role,
	).Scan(&id)
	return id, err
}

func (s *Store) GetFreelancer(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := s.DB.QueryRow(ctx, `
		SELECT id, name, email, role, kpi_rank_points, kpi_rank, created_at, updated_at
		FROM users WHERE id=$1 AND role=$2`, id, domain.RoleFreelancer,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.KPIRankPoints, &u.KPIRank, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrFreelancerNotFound
	}
	return u, err
}

func (s *Store) UpdateFreelancerPoints(ctx context.Context, id int64, total int) error {
	_, err := s.DB.Exec(ctx, `
		UPDATE users SET kpi_rank_points=$1, updated_at=NOW() WHERE id=$2`,
		total, id,
	)
	return err
}

func (s *Store) UpdateFreelancerRank(ctx context.Context, id int64, rank domain.KPIRank) error {
	_, err := s.DB.Exec(ctx, `
		UPDATE users SET kpi_rank=$1, updated_at=NOW() WHERE id=$2`,
		rank, id,
	)
	return err
}
