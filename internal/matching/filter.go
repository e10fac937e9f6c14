package matching

import (
	"context"
	"fmt"
	"maps"
	"strconv"

	"go.uber.org/zap"

	"github.com/edufi/edufi/internal/catalog"
	"github.com/edufi/edufi/internal/filtering"
)

type compatibilityFilter struct {
	enabled     bool
	reason      string
	minScore    int
	deps        *CompatibilityFilterDeps
	assessments map[string]*Assessment
}

type CompatibilityFilterDeps struct {
	Logger  *zap.Logger
	Matcher Matcher
	Self    catalog.Traits
}

// NewCompatibilityFilter creates the EduSwipe step that drops candidates the
// matcher does not find fit.
func NewCompatibilityFilter(minScore int, deps *CompatibilityFilterDeps) filtering.Filter[*catalog.Profile] {
	return &compatibilityFilter{
		enabled:  true,
		minScore: minScore,
		deps:     deps,
	}
}

func (f *compatibilityFilter) Name() string { return "compatibility" }

func (f *compatibilityFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *compatibilityFilter) IsEnabled() bool { return f.enabled }

func (f *compatibilityFilter) Validate() error {
	if f.deps == nil || f.deps.Matcher == nil {
		return fmt.Errorf("matcher is required")
	}
	if f.deps.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	return nil
}

func (f *compatibilityFilter) Apply(ctx context.Context, profiles []*catalog.Profile) ([]*catalog.Profile, filtering.Step, error) {
	approved := make([]*catalog.Profile, 0, len(profiles))
	assessments := make(map[string]*Assessment, len(profiles))

	for _, profile := range profiles {
		assessment, err := f.deps.Matcher.Evaluate(ctx, f.deps.Self, profile)
		if err != nil {
			return nil, filtering.Step{}, fmt.Errorf("evaluate profile %s: %w", profile.ID, err)
		}

		if !assessment.Fit {
			f.deps.Logger.Info("profile rejected by compatibility",
				zap.String("profile_id", profile.ID),
				zap.Int("score", assessment.Score),
				zap.String("reason", assessment.Reason),
			)
			continue
		}

		assessments[profile.ID] = assessment
		approved = append(approved, profile)
	}

	f.assessments = assessments

	return approved, filtering.Step{
		Initial: len(profiles),
		Dropped: len(profiles) - len(approved),
		Left:    len(approved),
	}, nil
}

// Assessments returns the verdicts of the approved profiles keyed by profile id.
func (f *compatibilityFilter) Assessments() map[string]*Assessment {
	if f.assessments == nil {
		return map[string]*Assessment{}
	}
	return maps.Clone(f.assessments)
}

func (f *compatibilityFilter) Status() filtering.Status {
	return filtering.Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{
			"minimum_score": strconv.Itoa(f.minScore),
		},
	}
}

// AssessmentsOf returns the assessments collected by the compatibility step
// among steps, if any.
func AssessmentsOf(steps []filtering.Filter[*catalog.Profile]) map[string]*Assessment {
	collected := make(map[string]*Assessment)
	for _, step := range steps {
		if collector, ok := step.(interface {
			Assessments() map[string]*Assessment
		}); ok {
			maps.Copy(collected, collector.Assessments())
		}
	}
	return collected
}
