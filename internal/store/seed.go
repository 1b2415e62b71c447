package store

import (
	"context"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/progress"
)

// SeedDemo creates a demo client, three freelancers and one project with
// milestones so a fresh environment has something to look at.
func (s *Store) SeedDemo(ctx context.Context) error {
	var clientID int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO users (name, email, role)
		VALUES ('Demo Client', 'client@example.com', $1)
		ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
		RETURNING id`, domain.RoleClient,
	).Scan(&clientID)
	if err != nil {
		return err
	}

	freelancers := []struct {
		name  string
		email string
	}{
		{"Ada Freelancer", "ada@example.com"},
		{"Ben Freelancer", "ben@example.com"},
		{"Cleo Freelancer", "cleo@example.com"},
	}
	freelancerIDs := make([]int64, 0, len(freelancers))
	for _, f := range freelancers {
		var id int64
		err := s.DB.QueryRow(ctx, `
			INSERT INTO users (name, email, role)
			VALUES ($1,$2,$3)
			ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
			RETURNING id`, f.name, f.email, domain.RoleFreelancer,
		).Scan(&id)
		if err != nil {
			return err
		}
		freelancerIDs = append(freelancerIDs, id)
	}

	projectID, err := s.CreateProject(ctx, ProjectInput{
		ClientID:    clientID,
		Title:       "Marketplace landing page",
		Description: "Design and build the public landing page.",
		Difficulty:  domain.DifficultyMedium,
	})
	if err != nil {
		return err
	}
	for _, id := range freelancerIDs {
		if err := s.AssignFreelancer(ctx, projectID, id); err != nil {
			return err
		}
	}

	deadline := time.Now().AddDate(0, 1, 0)
	milestones := []MilestoneInput{
		{ProjectID: projectID, Title: "Wireframes", Description: "Low fidelity layout.", PriorityRank: 1, Deadline: deadline},
		{ProjectID: projectID, Title: "Visual design", Description: "High fidelity mockups.", PriorityRank: 2, Deadline: deadline.AddDate(0, 0, 14)},
		{ProjectID: projectID, Title: "Implementation", Description: "Responsive build.", PriorityRank: 3, Deadline: deadline.AddDate(0, 1, 0)},
	}
	created := make([]domain.Milestone, 0, len(milestones))
	for _, m := range milestones {
		id, err := s.CreateMilestone(ctx, m)
		if err != nil {
			return err
		}
		created = append(created, domain.Milestone{ID: id, PriorityRank: m.PriorityRank})
	}

	distributed, err := progress.Distribute(created)
	if err != nil {
		return err
	}
	updates := make([]MilestonePointsUpdate, 0, len(distributed))
	for _, m := range distributed {
		updates = append(updates, MilestonePointsUpdate{ID: m.ID, TotalProgressPoints: m.TotalProgressPoints})
	}
	return s.UpdateMilestonePoints(ctx, updates)
}
