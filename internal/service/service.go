package service

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/progress"
	"marketplace/internal/store"
)

type Store interface {
	CreateUser(ctx context.Context, input store.UserInput) (int64, error)
	GetFreelancer(ctx context.Context, id int64) (domain.User, error)
	UpdateFreelancerPoints(ctx context.Context, id int64, total int) error
	UpdateFreelancerRank(ctx context.Context, id int64, rank domain.KPIRank) error

	CreateProject(ctx context.Context, input store.ProjectInput) (int64, error)
	GetProject(ctx context.Context, id int64) (domain.Project, error)
	UpdateProjectProgress(ctx context.Context, id int64, percentage int) error
	UpdateProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
	AssignFreelancer(ctx context.Context, projectID, freelancerID int64) error
	ListProjectFreelancers(ctx context.Context, projectID int64) ([]domain.User, error)

	CreateMilestone(ctx context.Context, input store.MilestoneInput) (int64, error)
	GetMilestone(ctx context.Context, id int64) (domain.Milestone, error)
	ListMilestonesByProject(ctx context.Context, projectID int64) ([]domain.Milestone, error)
	UpdateMilestone(ctx context.Context, input store.MilestoneUpdateInput) error
	UpdateMilestoneProgress(ctx context.Context, id int64, progress int, completed bool) error
	UpdateMilestonePoints(ctx context.Context, updates []store.MilestonePointsUpdate) error
	DeleteMilestone(ctx context.Context, id int64) error
}

type Service struct {
	store Store
	locks *projectLocks
}

func New(store Store) *Service {
	return &Service{store: store, locks: newProjectLocks()}
}

func (s *Service) CreateUser(ctx context.Context, input store.UserInput) (int64, error) {
	return s.store.CreateUser(ctx, input)
}

func (s *Service) GetFreelancer(ctx context.Context, id int64) (domain.User, error) {
	return s.store.GetFreelancer(ctx, id)
}

func (s *Service) CreateProject(ctx context.Context, input store.ProjectInput) (int64, error) {
	return s.store.CreateProject(ctx, input)
}

func (s *Service) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	milestones, err := s.store.ListMilestonesByProject(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	project.Milestones = milestones
	return project, nil
}

func (s *Service) AssignFreelancer(ctx context.Context, projectID, freelancerID int64) error {
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.store.GetFreelancer(ctx, freelancerID); err != nil {
		return err
	}
	return s.store.AssignFreelancer(ctx, projectID, freelancerID)
}

// CreateMilestone persists a new milestone and re-weights the whole sibling
// set so the new entrant is included in the 100-point allocation.
func (s *Service) CreateMilestone(ctx context.Context, input store.MilestoneInput) (int64, error) {
	if _, err := s.store.GetProject(ctx, input.ProjectID); err != nil {
		return 0, err
	}
	unlock := s.locks.lock(input.ProjectID)
	defer unlock()

	id, err := s.store.CreateMilestone(ctx, input)
	if err != nil {
		return 0, err
	}
	if err := s.redistribute(ctx, input.ProjectID); err != nil {
		return 0, err
	}
	return id, s.syncProjectProgress(ctx, input.ProjectID)
}

func (s *Service) UpdateMilestone(ctx context.Context, input store.MilestoneUpdateInput) error {
	milestone, err := s.store.GetMilestone(ctx, input.ID)
	if err != nil {
		return err
	}
	unlock := s.locks.lock(milestone.ProjectID)
	defer unlock()

	if err := s.store.UpdateMilestone(ctx, input); err != nil {
		return err
	}
	if err := s.redistribute(ctx, milestone.ProjectID); err != nil {
		return err
	}
	return s.syncProjectProgress(ctx, milestone.ProjectID)
}

func (s *Service) DeleteMilestone(ctx context.Context, id int64) error {
	milestone, err := s.store.GetMilestone(ctx, id)
	if err != nil {
		return err
	}
	unlock := s.locks.lock(milestone.ProjectID)
	defer unlock()

	if err := s.store.DeleteMilestone(ctx, id); err != nil {
		return err
	}
	if err := s.redistribute(ctx, milestone.ProjectID); err != nil {
		return err
	}
	return s.syncProjectProgress(ctx, milestone.ProjectID)
}

// UpdateMilestoneProgress enforces the business rule that progress never moves
// backward and stays within the milestone's allocated points. Completion is
// derived, never set directly.
func (s *Service) UpdateMilestoneProgress(ctx context.Context, id int64, value int) error {
	milestone, err := s.store.GetMilestone(ctx, id)
	if err != nil {
		return err
	}
	unlock := s.locks.lock(milestone.ProjectID)
	defer unlock()

	// Re-read under the lock: a concurrent update or redistribution may have
	// changed the progress or the point allocation since the first read.
	milestone, err = s.store.GetMilestone(ctx, id)
	if err != nil {
		return err
	}
	if value < 0 || value > milestone.TotalProgressPoints {
		return domain.ErrProgressOutOfRange
	}
	if value < milestone.Progress {
		return domain.ErrProgressBackward
	}
	completed := value == milestone.TotalProgressPoints
	if err := s.store.UpdateMilestoneProgress(ctx, id, value, completed); err != nil {
		return err
	}
	return s.syncProjectProgress(ctx, milestone.ProjectID)
}

func (s *Service) CompleteMilestone(ctx context.Context, id int64) error {
	milestone, err := s.store.GetMilestone(ctx, id)
	if err != nil {
		return err
	}
	unlock := s.locks.lock(milestone.ProjectID)
	defer unlock()

	// Re-read under the lock so the completion write uses the current point
	// allocation, not one from before a concurrent redistribution.
	milestone, err = s.store.GetMilestone(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.UpdateMilestoneProgress(ctx, id, milestone.TotalProgressPoints, true); err != nil {
		return err
	}
	return s.syncProjectProgress(ctx, milestone.ProjectID)
}

func (s *Service) redistribute(ctx context.Context, projectID int64) error {
	milestones, err := s.store.ListMilestonesByProject(ctx, projectID)
	if err != nil {
		return err
	}
	distributed, err := progress.Distribute(milestones)
	if err != nil {
		return err
	}
	updates := make([]store.MilestonePointsUpdate, 0, len(distributed))
	for _, m := range distributed {
		updates = append(updates, store.MilestonePointsUpdate{
			ID:                  m.ID,
			TotalProgressPoints: m.TotalProgressPoints,
		})
	}
	return s.store.UpdateMilestonePoints(ctx, updates)
}

// syncProjectProgress is the single source of truth for the project-level
// percentage. A project with no milestones keeps whatever value it already
// has. Reaching 100 flips the project to COMPLETED; the transition is one-way.
func (s *Service) syncProjectProgress(ctx context.Context, projectID int64) error {
	milestones, err := s.store.ListMilestonesByProject(ctx, projectID)
	if err != nil {
		return err
	}
	if len(milestones) == 0 {
		return nil
	}
	percentage := progress.Overall(milestones)
	if err := s.store.UpdateProjectProgress(ctx, projectID, percentage); err != nil {
		return err
	}
	if percentage >= 100 {
		return s.store.UpdateProjectStatus(ctx, projectID, domain.ProjectStatusCompleted)
	}
	return nil
}
