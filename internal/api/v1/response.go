package v1

import (
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/service"
)

type projectResponse struct {
	ID                 int64       `json:"id"`
	ClientID           int64       `json:"client_id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Difficulty         string      `json:"difficulty"`
	ProgressPercentage int         `json:"progress_percentage"`
	Status             string      `json:"status"`
	Milestones         []milestone `json:"milestones"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

type milestone struct {
	ID                  int64     `json:"id"`
	ProjectID           int64     `json:"project_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	PriorityRank        int       `json:"priority_rank"`
	TotalProgressPoints int       `json:"total_progress_points"`
	Progress            int       `json:"progress"`
	IsCompleted         bool      `json:"is_completed"`
	Deadline            time.Time `json:"deadline"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type freelancerResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	KPIRankPoints int    `json:"kpi_rank_points"`
	KPIRank       string `json:"kpi_rank"`
}

type ratingResponse struct {
	Results []ratingResult `json:"results"`
}

type ratingResult struct {
	FreelancerID int64  `json:"freelancer_id"`
	Earned       int    `json:"earned"`
	TotalPoints  int    `json:"total_points"`
	Rank         string `json:"rank"`
}

func mapProjectResponse(project domain.Project) projectResponse {
	milestones := make([]milestone, 0, len(project.Milestones))
	for _, m := range project.Milestones {
		milestones = append(milestones, mapMilestone(m))
	}
	return projectResponse{
		ID:                 project.ID,
		ClientID:           project.ClientID,
		Title:              project.Title,
		Description:        project.Description,
		Difficulty:         string(project.Difficulty),
		ProgressPercentage: project.ProgressPercentage,
		Status:             string(project.Status),
		Milestones:         milestones,
		CreatedAt:          project.CreatedAt,
		UpdatedAt:          project.UpdatedAt,
	}
}

func mapMilestone(m domain.Milestone) milestone {
	return milestone{
		ID:                  m.ID,
		ProjectID:           m.ProjectID,
		Title:               m.Title,
		Description:         m.Description,
		PriorityRank:        m.PriorityRank,
		TotalProgressPoints: m.TotalProgressPoints,
		Progress:            m.Progress,
		IsCompleted:         m.IsCompleted,
		Deadline:            m.Deadline,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func mapFreelancerResponse(user domain.User) freelancerResponse {
	return freelancerResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		KPIRankPoints: user.KPIRankPoints,
		KPIRank:       string(user.KPIRank),
	}
}

func mapRatingResponse(results []service.RatingResult) ratingResponse {
	items := make([]ratingResult, 0, len(results))
	for _, result := range results {
		items = append(items, ratingResult{
			FreelancerID: result.FreelancerID,
			Earned:       result.Earned,
			TotalPoints:  result.TotalPoints,
			Rank:         string(result.Rank),
		})
	}
	return ratingResponse{Results: items}
}
