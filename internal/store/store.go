package store

import (
	"time"

	"marketplace/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type UserInput struct {
	Name  string
	Email string
	Role  domain.Role
}

type ProjectInput struct {
	ClientID    int64
	Title       string
	Description string
	Difficulty  domain.Difficulty
}

type MilestoneInput struct {
	ProjectID    int64
	Title        string
	Description  string
	PriorityRank int
	Deadline     time.Time
}

type MilestoneUpdateInput struct {
	ID           int64
	Title        string
	Description  string
	PriorityRank int
	Deadline     time.Time
}

type MilestonePointsUpdate struct {
	ID                  int64
	TotalProgressPoints int
}
