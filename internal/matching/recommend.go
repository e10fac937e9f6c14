package matching

import (
	"time"

	"github.com/edufi/edufi/internal/catalog"
)

const (
	lowBudgetLimit     = 100000
	meritRankLimit     = 10000
	meritDeadlineAfter = 30 * 24 * time.Hour
	defaultLocation    = "Mumbai"
)

// Recommendations groups suggestions by category. Every list is non-nil.
type Recommendations struct {
	Colleges        []*catalog.College        `json:"colleges"`
	CoachingCenters []*catalog.CoachingCenter `json:"coaching_centers"`
	Scholarships    []*catalog.Scholarship    `json:"scholarships"`
	Internships     []*catalog.Internship     `json:"internships"`
}

// Recommender produces placeholder suggestions from two fixed rules: a low
// budget earns a government college, a good rank earns a merit scholarship.
// There is no ranking and no catalog lookup.
type Recommender struct {
	now func() time.Time
}

func NewRecommender(now func() time.Time) *Recommender {
	if now == nil {
		now = time.Now
	}
	return &Recommender{now: now}
}

func (r *Recommender) Recommend(user *catalog.User) *Recommendations {
	recs := &Recommendations{
		Colleges:        []*catalog.College{},
		CoachingCenters: []*catalog.CoachingCenter{},
		Scholarships:    []*catalog.Scholarship{},
		Internships:     []*catalog.Internship{},
	}
	if user == nil {
		return recs
	}

	if provided(user.Budget) && *user.Budget < lowBudgetLimit {
		location := user.Location
		if location == "" {
			location = defaultLocation
		}
		recs.Colleges = append(recs.Colleges, &catalog.College{
			Name:     "Government College",
			Location: location,
			Fees:     15000,
			Rating:   4.2,
		})
	}

	if provided(user.Rank) && *user.Rank < meritRankLimit {
		recs.Scholarships = append(recs.Scholarships, &catalog.Scholarship{
			Title:    "Merit-based Scholarship",
			Amount:   50000,
			Deadline: r.now().Add(meritDeadlineAfter),
		})
	}

	return recs
}

// provided reports whether an optional profile number was actually filled
// in. Zero and negative values count as unset.
func provided(v *int) bool {
	return v != nil && *v > 0
}
