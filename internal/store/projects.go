package store

import (
	"context"
	"errors"

	"marketplace/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateProject(ctx context.Context, input ProjectInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO projects (client_id, title, description, difficulty)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		input.ClientID, input.Title, input.Description, input.Difficulty,
	).Scan(&id)
	return id, err
}

func (s *Store) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	var p domain.Project
	err := s.DB.QueryRow(ctx, `
		SELECT id, client_id, title, description, difficulty, progress_percentage,
		       project_status, created_at, updated_at
		FROM projects WHERE id=$1`, id,
	).Scan(&p.ID, &p.ClientID, &p.Title, &p.Description, &p.Difficulty, &p.ProgressPercentage,
		&p.Status, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return p, err
}

func (s *Store) UpdateProjectProgress(ctx context.Context, id int64, percentage int) error {
	_, err := s.DB.Exec(ctx, `
		UPDATE projects SET progress_percentage=$1, updated_at=NOW() WHERE id=$2`,
		percentage, id,
	)
	return err
}

func (s *Store) UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	_, err := s.DB.Exec(ctx, `
		UPDATE projects SET project_status=$1, updated_at=NOW() WHERE id=$2`,
		status, id,
	)
	return err
}

func (s *Store) AssignFreelancer(ctx context.Context, projectID, freelancerID int64) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO project_freelancers (project_id, freelancer_id)
		VALUES ($1,$2)
		ON CONFLICT (project_id, freelancer_id) DO NOTHING`,
		projectID, freelancerID,
	)
	return err
}

func (s *Store) ListProjectFreelancers(ctx context.Context, projectID int64) ([]domain.User, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT u.id, u.name, u.email, u.role, u.kpi_rank_points, u.kpi_rank, u.created_at, u.updated_at
		FROM users u
		JOIN project_freelancers pf ON pf.freelancer_id = u.id
		WHERE pf.project_id=$1
		ORDER BY u.id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.KPIRankPoints, &u.KPIRank, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
