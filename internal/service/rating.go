package service

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/kpi"
)

type RatingResult struct {
	FreelancerID int64
	Earned       int
	TotalPoints  int
	Rank         domain.KPIRank
}

// RateProject applies a client's completion rating to every freelancer
// assigned to the project. Each freelancer is updated independently with the
// same rating and difficulty against their own running total.
func (s *Service) RateProject(ctx context.Context, projectID int64, rating int) ([]RatingResult, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if project.Status != domain.ProjectStatusCompleted {
		return nil, domain.ErrProjectNotCompleted
	}
	freelancers, err := s.store.ListProjectFreelancers(ctx, projectID)
	if err != nil {
		return nil, err
	}
	results := make([]RatingResult, 0, len(freelancers))
	for _, freelancer := range freelancers {
		result, err := s.AwardPoints(ctx, freelancer.ID, project.Difficulty, rating)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// AwardPoints credits one freelancer for a rated project and re-derives the
// rank tier from the new total. The rank write is skipped when the tier is
// unchanged.
func (s *Service) AwardPoints(ctx context.Context, freelancerID int64, difficulty domain.Difficulty, rating int) (RatingResult, error) {
	earned, err := kpi.EarnedPoints(difficulty, rating)
	if err != nil {
		return RatingResult{}, err
	}
	freelancer, err := s.store.GetFreelancer(ctx, freelancerID)
	if err != nil {
		return RatingResult{}, err
	}
	total := freelancer.KPIRankPoints + earned
	if err := s.store.UpdateFreelancerPoints(ctx, freelancerID, total); err != nil {
		return RatingResult{}, err
	}
	rank := kpi.RankForPoints(total)
	if rank != freelancer.KPIRank {
		if err := s.store.UpdateFreelancerRank(ctx, freelancerID, rank); err != nil {
			return RatingResult{}, err
		}
	}
	return RatingResult{
		FreelancerID: freelancerID,
		Earned:       earned,
		TotalPoints:  total,
		Rank:         rank,
	}, nil
}
