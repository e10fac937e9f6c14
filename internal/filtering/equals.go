package filtering

import (
	"context"
)

type equalsFilter[T Record] struct {
	field string
	value string
}

// NewEquals creates a filter that keeps records whose field equals value
// exactly. An empty value keeps everything.
func NewEquals[T Record](field, value string) Filter[T] {
	return &equalsFilter[T]{
		field: field,
		value: value,
	}
}

func (f *equalsFilter[T]) Name() string { return "equals_" + f.field }

func (f *equalsFilter[T]) Disable(string) {}

func (f *equalsFilter[T]) IsEnabled() bool { return true }

func (f *equalsFilter[T]) Validate() error { return nil }

func (f *equalsFilter[T]) Apply(_ context.Context, items []T) ([]T, Step, error) {
	if f.value == "" {
		return items, Step{Initial: len(items), Left: len(items)}, nil
	}

	kept, step := keep(items, func(item T) bool {
		return item.GetStringField(f.field) == f.value
	})

	return kept, step, nil
}

func (f *equalsFilter[T]) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{f.field: f.value},
	}
}
