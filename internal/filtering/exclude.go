package filtering

import (
	"context"
	"slices"
	"strings"
)

type excludeFilter[T Record] struct {
	field  string
	values []string
}

// NewExclude creates a filter that removes records whose field holds one of
// values.
func NewExclude[T Record](field string, values []string) Filter[T] {
	return &excludeFilter[T]{
		field:  field,
		values: values,
	}
}

func (f *excludeFilter[T]) Name() string { return "excluded_" + f.field }

func (f *excludeFilter[T]) Disable(string) {}

func (f *excludeFilter[T]) IsEnabled() bool { return true }

func (f *excludeFilter[T]) Validate() error { return nil }

func (f *excludeFilter[T]) Apply(_ context.Context, items []T) ([]T, Step, error) {
	if len(f.values) == 0 {
		return items, Step{Initial: len(items), Left: len(items)}, nil
	}

	kept, step := keep(items, func(item T) bool {
		return !slices.Contains(f.values, item.GetStringField(f.field))
	})

	return kept, step, nil
}

func (f *excludeFilter[T]) Status() Status {
	details := map[string]string{}
	if len(f.values) > 0 {
		details[f.field] = strings.Join(f.values, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
