package filtering

import (
	"context"
	"maps"
	"slices"
)

// Criteria is the set of active predicates derived from user input. The zero
// value selects everything.
type Criteria struct {
	Search       string
	SearchFields []string
	// Equals maps a field to the value it must hold. Empty values are ignored.
	Equals map[string]string
	// Exclude maps a field to values that remove a record.
	Exclude map[string][]string
	Minimum *Bound
	Maximum *Bound
}

// Steps compiles criteria into filtering steps. Unset predicates and invalid
// bounds produce no step.
func Steps[T Record](c Criteria) []Filter[T] {
	steps := make([]Filter[T], 0)

	if c.Search != "" {
		steps = append(steps, NewSearch[T](c.Search, c.SearchFields))
	}

	for _, field := range slices.Sorted(maps.Keys(c.Equals)) {
		if value := c.Equals[field]; value != "" {
			steps = append(steps, NewEquals[T](field, value))
		}
	}

	for _, field := range slices.Sorted(maps.Keys(c.Exclude)) {
		if values := c.Exclude[field]; len(values) > 0 {
			steps = append(steps, NewExclude[T](field, values))
		}
	}

	if c.Minimum.valid() {
		steps = append(steps, NewMinimum[T](c.Minimum))
	}
	if c.Maximum.valid() {
		steps = append(steps, NewMaximum[T](c.Maximum))
	}

	return steps
}

// Apply returns the records satisfying every active predicate of c, in their
// original order. The input slice is never modified; when no predicate is
// active it is returned as is.
func Apply[T Record](records []T, c Criteria) []T {
	// Steps built from criteria always validate and the background context
	// never cancels, so Run cannot fail here.
	filtered, _ := Run(context.Background(), nil, Steps[T](c), records)
	return filtered
}
