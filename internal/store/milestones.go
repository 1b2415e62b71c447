package store

import (
	"context"
	"errors"

	"marketplace/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateMilestone(ctx context.Context, input MilestoneInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO milestones (project_id, title, description, priority_rank, deadline)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		input.ProjectID, input.Title, input.Description, input.PriorityRank, input.Deadline,
	).Scan(&id)
	return id, err
}

func (s *Store) GetMilestone(ctx context.Context, id int64) (domain.Milestone, error) {
	var m domain.Milestone
	err := s.DB.QueryRow(ctx, `
		SELECT id, project_id, title, description, priority_rank, total_progress_points,
		       progress, is_completed, deadline, created_at, updated_at
		FROM milestones WHERE id=$1`, id,
	).Scan(&m.ID, &m.ProjectID, &m.Title, &m.Description, &m.PriorityRank, &m.TotalProgressPoints,
		&m.Progress, &m.IsCompleted, &m.Deadline, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Milestone{}, domain.ErrMilestoneNotFound
	}
	return m, err
}

func (s *Store) ListMilestonesByProject(ctx context.Context, projectID int64) ([]domain.Milestone, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, project_id, title, description, priority_rank, total_progress_points,
		       progress, is_completed, deadline, created_at, updated_at
		FROM milestones WHERE project_id=$1 ORDER BY id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var milestones []domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Description, &m.PriorityRank, &m.TotalProgressPoints,
			&m.Progress, &m.IsCompleted, &m.Deadline, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (s *Store) UpdateMilestone(ctx context.Context, input MilestoneUpdateInput) error {
	_, err := s.DB.Exec(ctx, `
		UPDATE milestones
		SET title=$1, description=$2, priority_rank=$3, deadline=$4, updated_at=NOW()
		WHERE id=$5`,
		input.Title, input.Description, input.PriorityRank, input.Deadline, input.ID,
	)
	return err
}

func (s *Store) UpdateMilestoneProgress(ctx context.Context, id int64, progress int, completed bool) error {
	_, err := s.DB.Exec(ctx, `
		UPDATE milestones SET progress=$1, is_completed=$2, updated_at=NOW() WHERE id=$3`,
		progress, completed, id,
	)
	return err
}

// UpdateMilestonePoints writes the re-weighted allocation for a whole sibling
// set in one transaction, so a crash cannot leave the sum invariant violated.
func (s *Store) UpdateMilestonePoints(ctx context.Context, updates []MilestonePointsUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, update := range updates {
		if _, err := tx.Exec(ctx, `
			UPDATE milestones SET total_progress_points=$1, updated_at=NOW() WHERE id=$2`,
			update.TotalProgressPoints, update.ID,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) DeleteMilestone(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM milestones WHERE id=$1`, id)
	return err
}
