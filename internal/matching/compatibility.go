package matching

import (
	"github.com/edufi/edufi/internal/catalog"
)

// Score weights.
const (
	baseScore        = 50
	sameLocationBump = 10
	sameStreamBump   = 15
	sharedGoalBump   = 5
	sharedSkillBump  = 3

	MinScore = 0
	MaxScore = 100
)

// Score returns the compatibility of two profiles in [MinScore, MaxScore].
// Location and stream compare exactly; goals and skills count every distinct
// shared value once. Score(a, b) == Score(b, a).
func Score(a, b catalog.Traits) int {
	score := baseScore

	if a.Location == b.Location {
		score += sameLocationBump
	}
	if a.Stream == b.Stream {
		score += sameStreamBump
	}

	score += sharedGoalBump * countShared(a.Goals, b.Goals)
	score += sharedSkillBump * countShared(a.Skills, b.Skills)

	return min(max(score, MinScore), MaxScore)
}

// countShared returns the size of the intersection of a and b as sets.
func countShared(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	other := make(map[string]struct{}, len(b))
	for _, v := range b {
		other[v] = struct{}{}
	}

	shared := 0
	seen := make(map[string]struct{}, len(a))
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := other[v]; ok {
			shared++
		}
	}
	return shared
}
