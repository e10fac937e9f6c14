package matching

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/edufi/edufi/internal/catalog"
)

// Assessment is the verdict on one EduSwipe candidate.
type Assessment struct {
	CandidateID string
	Score       int
	Fit         bool
	Reason      string
}

type Matcher interface {
	Evaluate(ctx context.Context, self catalog.Traits, candidate *catalog.Profile) (*Assessment, error)
}

// CompatibilityMatcher judges candidates by their compatibility score.
type CompatibilityMatcher struct {
	minScore int
	logger   *zap.Logger
}

var _ Matcher = (*CompatibilityMatcher)(nil)

func NewCompatibilityMatcher(minScore int, logger *zap.Logger) *CompatibilityMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CompatibilityMatcher{
		minScore: min(max(minScore, MinScore), MaxScore),
		logger:   logger,
	}
}

func (m *CompatibilityMatcher) Evaluate(ctx context.Context, self catalog.Traits, candidate *catalog.Profile) (*Assessment, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate profile is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	other := candidate.Traits()
	score := Score(self, other)

	assessment := &Assessment{
		CandidateID: candidate.ID,
		Score:       score,
		Fit:         score >= m.minScore,
		Reason:      explain(self, other),
	}

	if !assessment.Fit {
		m.logger.Debug("set fit to false by score threshold",
			zap.String("profile_id", candidate.ID),
			zap.Int("score", score),
			zap.Int("threshold", m.minScore),
		)
	}

	return assessment, nil
}

func explain(a, b catalog.Traits) string {
	reasons := make([]string, 0, 4)
	if a.Location == b.Location && a.Location != "" {
		reasons = append(reasons, "same location")
	}
	if a.Stream == b.Stream && a.Stream != "" {
		reasons = append(reasons, "same stream")
	}
	if n := countShared(a.Goals, b.Goals); n > 0 {
		reasons = append(reasons, plural(n, "shared goal"))
	}
	if n := countShared(a.Skills, b.Skills); n > 0 {
		reasons = append(reasons, plural(n, "shared skill"))
	}

	if len(reasons) == 0 {
		return "nothing in common"
	}
	return strings.Join(reasons, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
