package domain

import "time"

type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleFreelancer Role = "FREELANCER"
	RoleAdmin      Role = "ADMIN"
)

type ProjectStatus string

const (
	ProjectStatusPending   ProjectStatus = "PENDING"
	ProjectStatusOngoing   ProjectStatus = "ONGOING"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

type KPIRank string

const (
	RankBronze    KPIRank = "BRONZE"
	RankSilver    KPIRank = "SILVER"
	RankGold      KPIRank = "GOLD"
	RankPlatinum  KPIRank = "PLATINUM"
	RankDiamond   KPIRank = "DIAMOND"
	RankCrown     KPIRank = "CROWN"
	RankAce       KPIRank = "ACE"
	RankConqueror KPIRank = "CONQUEROR"
)

type User struct {
	ID            int64
	Name          string
	Email         string
	Role          Role
	KPIRankPoints int
	KPIRank       KPIRank
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Project struct {
	ID                 int64
	ClientID           int64
	Title              string
	Description        string
	Difficulty         Difficulty
	ProgressPercentage int
	Status             ProjectStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Milestones         []Milestone
}

// Milestone holds its share of the project's 100-point completion scale.
// TotalProgressPoints is recomputed whenever the sibling set changes.
type Milestone struct {
	ID                  int64
	ProjectID           int64
	Title               string
	Description         string
	PriorityRank        int
	TotalProgressPoints int
	Progress            int
	IsCompleted         bool
	Deadline            time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
