package kpi

import (
	"math"

	"marketplace/internal/domain"
)

var basePoints = map[domain.Difficulty]int{
	domain.DifficultyEasy:   20,
	domain.DifficultyMedium: 40,
	domain.DifficultyHard:   60,
}

type tier struct {
	Rank domain.KPIRank
	Min  int
}

// Ascending threshold order; the highest qualifying tier wins.
var tiers = []tier{
	{domain.RankBronze, 0},
	{domain.RankSilver, 200},
	{domain.RankGold, 500},
	{domain.RankPlatinum, 1000},
	{domain.RankDiamond, 1500},
	{domain.RankCrown, 1800},
	{domain.RankAce, 2000},
	{domain.RankConqueror, 2500},
}

// EarnedPoints converts a client rating into KPI rank points scaled by the
// project difficulty: round(rating/5 * base), base 20/40/60 for easy/medium/hard.
func EarnedPoints(difficulty domain.Difficulty, rating int) (int, error) {
	if rating < 1 || rating > 5 {
		return 0, domain.ErrInvalidRating
	}
	base, ok := basePoints[difficulty]
	if !ok {
		return 0, domain.ErrInvalidDifficulty
	}
	return int(math.Round(float64(rating) / 5 * float64(base))), nil
}

// RankForPoints re-derives the rank tier from a cumulative point total. It
// does not enforce monotonicity: if points ever drop, the rank drops with
// them on the next recomputation.
func RankForPoints(points int) domain.KPIRank {
	rank := tiers[0].Rank
	for _, t := range tiers {
		if t.Min <= points {
			rank = t.Rank
		}
	}
	return rank
}
