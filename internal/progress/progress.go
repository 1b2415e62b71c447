package progress

import (
	"math"

	"marketplace/internal/domain"
)

// Distribute allocates 100 progress points across a project's milestones
// proportionally to their priority ranks. The input slice is not modified;
// the result has the same length and order with TotalProgressPoints replaced.
// Per-item rounding can make the sum land at 100 ± (len-1); the drift is
// intentional and not corrected.
func Distribute(milestones []domain.Milestone) ([]domain.Milestone, error) {
	if len(milestones) == 0 {
		return milestones, nil
	}
	totalPriority := 0
	for _, m := range milestones {
		totalPriority += priorityOrDefault(m.PriorityRank)
	}
	if totalPriority <= 0 {
		return nil, domain.ErrInvalidPriority
	}
	out := make([]domain.Milestone, len(milestones))
	copy(out, milestones)
	for i := range out {
		weight := float64(priorityOrDefault(out[i].PriorityRank)) / float64(totalPriority)
		points := int(math.Round(100 * weight))
		if points <= 0 {
			points = 1
		}
		out[i].TotalProgressPoints = points
	}
	return out, nil
}

// Overall returns the project completion percentage for a milestone set.
// Ceiling rounding: any nonzero progress reports at least 1%, and 100 is
// reached only when progress equals the allocated points.
func Overall(milestones []domain.Milestone) int {
	var totalPoints, totalProgress int
	for _, m := range milestones {
		totalPoints += m.TotalProgressPoints
		totalProgress += m.Progress
	}
	if totalPoints <= 0 {
		return 0
	}
	percentage := int(math.Ceil(float64(totalProgress*100) / float64(totalPoints)))
	if percentage > 100 {
		// Stale progress can exceed a re-weighted allocation until the next
		// progress update; the reported percentage stays within 0..100.
		return 100
	}
	return percentage
}

func priorityOrDefault(rank int) int {
	if rank <= 0 {
		return 1
	}
	return rank
}
