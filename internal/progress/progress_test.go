package progress

import (
	"testing"

	"marketplace/internal/domain"
)

func TestDistributeSingleMilestone(t *testing.T) {
	out, err := Distribute([]domain.Milestone{{ID: 1, PriorityRank: 5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].TotalProgressPoints != 100 {
		t.Fatalf("expected 100 got %d", out[0].TotalProgressPoints)
	}
}

func TestDistributeEqualPriorities(t *testing.T) {
	milestones := []domain.Milestone{
		{ID: 1, PriorityRank: 1},
		{ID: 2, PriorityRank: 1},
		{ID: 3, PriorityRank: 1},
		{ID: 4, PriorityRank: 1},
	}
	out, err := Distribute(milestones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := 0
	for _, m := range out {
		if m.TotalProgressPoints != 25 {
			t.Fatalf("expected 25 got %d", m.TotalProgressPoints)
		}
		sum += m.TotalProgressPoints
	}
	if sum != 100 {
		t.Fatalf("expected sum 100 got %d", sum)
	}
}

func TestDistributeWeighted(t *testing.T) {
	out, err := Distribute([]domain.Milestone{
		{ID: 1, PriorityRank: 1},
		{ID: 2, PriorityRank: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].TotalProgressPoints != 25 || out[1].TotalProgressPoints != 75 {
		t.Fatalf("expected 25/75 got %d/%d", out[0].TotalProgressPoints, out[1].TotalProgressPoints)
	}
}

func TestDistributeDefaultsMissingPriority(t *testing.T) {
	out, err := Distribute([]domain.Milestone{{ID: 1}, {ID: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].TotalProgressPoints != 50 || out[1].TotalProgressPoints != 50 {
		t.Fatalf("expected 50/50 got %d/%d", out[0].TotalProgressPoints, out[1].TotalProgressPoints)
	}
}

func TestDistributeSumInvariant(t *testing.T) {
	cases := []struct {
		name       string
		priorities []int
	}{
		{name: "mixed", priorities: []int{1, 2, 3, 4, 5}},
		{name: "skewed", priorities: []int{1, 1, 1, 97}},
		{name: "tiny weights", priorities: []int{1, 1, 1000}},
		{name: "sevens", priorities: []int{7, 7, 7}},
	}
	for _, tc := range cases {
		milestones := make([]domain.Milestone, 0, len(tc.priorities))
		for i, p := range tc.priorities {
			milestones = append(milestones, domain.Milestone{ID: int64(i + 1), PriorityRank: p})
		}
		out, err := Distribute(milestones)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		sum := 0
		for _, m := range out {
			if m.TotalProgressPoints < 1 {
				t.Fatalf("%s: milestone %d got %d points", tc.name, m.ID, m.TotalProgressPoints)
			}
			sum += m.TotalProgressPoints
		}
		tolerance := len(tc.priorities) - 1
		if sum < 100-tolerance || sum > 100+tolerance {
			t.Fatalf("%s: sum %d outside 100±%d", tc.name, sum, tolerance)
		}
	}
}

func TestDistributeEmptyAndInput(t *testing.T) {
	out, err := Distribute(nil)
	if err != nil || len(out) != 0 {
		t.Fatalf("expected empty no-op, got %v %v", out, err)
	}

	in := []domain.Milestone{{ID: 1, PriorityRank: 2}, {ID: 2, PriorityRank: 2}}
	if _, err := Distribute(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in[0].TotalProgressPoints != 0 || in[1].TotalProgressPoints != 0 {
		t.Fatalf("input slice was mutated")
	}
}

func TestOverallCeiling(t *testing.T) {
	milestones := []domain.Milestone{
		{TotalProgressPoints: 50, Progress: 1},
		{TotalProgressPoints: 50, Progress: 0},
	}
	if got := Overall(milestones); got != 1 {
		t.Fatalf("expected 1 got %d", got)
	}
}

func TestOverall(t *testing.T) {
	cases := []struct {
		name       string
		milestones []domain.Milestone
		expect     int
	}{
		{name: "empty", milestones: nil, expect: 0},
		{name: "zero points", milestones: []domain.Milestone{{TotalProgressPoints: 0, Progress: 0}}, expect: 0},
		{name: "half", milestones: []domain.Milestone{{TotalProgressPoints: 50, Progress: 25}, {TotalProgressPoints: 50, Progress: 25}}, expect: 50},
		{name: "complete", milestones: []domain.Milestone{{TotalProgressPoints: 60, Progress: 60}, {TotalProgressPoints: 40, Progress: 40}}, expect: 100},
		{name: "near complete stays below 100", milestones: []domain.Milestone{{TotalProgressPoints: 100, Progress: 99}}, expect: 99},
		{name: "negligible progress rounds up", milestones: []domain.Milestone{{TotalProgressPoints: 1000, Progress: 1}}, expect: 1},
		{name: "stale progress clamps to 100", milestones: []domain.Milestone{{TotalProgressPoints: 33, Progress: 50}, {TotalProgressPoints: 33, Progress: 50}, {TotalProgressPoints: 33, Progress: 0}}, expect: 100},
	}
	for _, tc := range cases {
		if got := Overall(tc.milestones); got != tc.expect {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.expect, got)
		}
	}
}
