package matching

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/edufi/edufi/internal/catalog"
	"github.com/edufi/edufi/internal/filtering"
)

var seeker = catalog.Traits{
	Location: "Mumbai",
	Stream:   "Computer Science",
	Goals:    []string{"Build a startup", "Learn AI/ML"},
	Skills:   []string{"React", "Python"},
}

func candidates() []*catalog.Profile {
	return []*catalog.Profile{
		{ID: "p1", Name: "Close", Location: "Mumbai", Stream: "Computer Science", Goals: []string{"Learn AI/ML"}, Skills: []string{"React"}},
		{ID: "p2", Name: "Far", Location: "Delhi", Stream: "Marketing"},
		{ID: "p3", Name: "Middle", Location: "Pune", Stream: "Computer Science", Skills: []string{"Python"}},
	}
}

func TestCompatibilityMatcherEvaluate(t *testing.T) {
	matcher := NewCompatibilityMatcher(70, zap.NewNop())

	assessment, err := matcher.Evaluate(context.Background(), seeker, candidates()[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Score != 83 || !assessment.Fit {
		t.Fatalf("unexpected assessment: %+v", assessment)
	}
	if assessment.Reason != "same location, same stream, 1 shared goal, 1 shared skill" {
		t.Fatalf("unexpected reason: %q", assessment.Reason)
	}

	assessment, err = matcher.Evaluate(context.Background(), seeker, candidates()[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Fit || assessment.Reason != "nothing in common" {
		t.Fatalf("unexpected assessment: %+v", assessment)
	}

	if _, err := matcher.Evaluate(context.Background(), seeker, nil); err == nil {
		t.Fatalf("expected error for nil candidate")
	}
}

func TestCompatibilityFilter(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	steps := []filtering.Filter[*catalog.Profile]{
		filtering.NewSearch[*catalog.Profile]("", catalog.ProfileSearchFields),
		NewCompatibilityFilter(65, &CompatibilityFilterDeps{
			Logger:  logger,
			Matcher: NewCompatibilityMatcher(65, logger),
			Self:    seeker,
		}),
	}

	input := candidates()
	got, err := filtering.Run(context.Background(), logger, steps, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p3" {
		t.Fatalf("unexpected profiles: %+v", got)
	}
	if len(input) != 3 {
		t.Fatalf("input was modified")
	}

	assessments := AssessmentsOf(steps)
	if len(assessments) != 2 || assessments["p3"].Score != 68 {
		t.Fatalf("unexpected assessments: %+v", assessments)
	}

	if observed.FilterMessage("profile rejected by compatibility").Len() != 1 {
		t.Fatalf("expected one rejection log entry")
	}

	statuses := filtering.Describe(steps)
	if statuses[1].Details["minimum_score"] != "65" {
		t.Fatalf("unexpected status: %+v", statuses[1])
	}
}

type failingMatcher struct{}

func (failingMatcher) Evaluate(context.Context, catalog.Traits, *catalog.Profile) (*Assessment, error) {
	return nil, errors.New("boom")
}

func TestCompatibilityFilterErrors(t *testing.T) {
	steps := []filtering.Filter[*catalog.Profile]{
		NewCompatibilityFilter(0, &CompatibilityFilterDeps{Logger: zap.NewNop()}),
	}
	if _, err := filtering.Run(context.Background(), nil, steps, candidates()); err == nil {
		t.Fatalf("expected validation error without matcher")
	}

	steps = []filtering.Filter[*catalog.Profile]{
		NewCompatibilityFilter(0, &CompatibilityFilterDeps{Logger: zap.NewNop(), Matcher: failingMatcher{}}),
	}
	if _, err := filtering.Run(context.Background(), nil, steps, candidates()); err == nil {
		t.Fatalf("expected matcher error to propagate")
	}

	filtering.DisableByName(steps, "compatibility", "turned off")
	got, err := filtering.Run(context.Background(), nil, steps, candidates())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("disabled step must keep every profile, got %d", len(got))
	}
}
