package domain

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrMilestoneNotFound  = errors.New("milestone not found")
	ErrFreelancerNotFound = errors.New("freelancer not found")

	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidDifficulty = errors.New("invalid project difficulty")
	ErrInvalidPriority   = errors.New("invalid priority ranks")

	ErrProgressOutOfRange = errors.New("progress exceeds milestone points")
	ErrProgressBackward   = errors.New("progress cannot move backward")

	// ErrProjectNotCompleted is returned when a client rates a project
	// that has not reached COMPLETED status yet.
	ErrProjectNotCompleted = errors.New("project is not completed")
)
