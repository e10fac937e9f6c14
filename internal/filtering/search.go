package filtering

import (
	"context"
	"strings"
)

type searchFilter[T Record] struct {
	enabled bool
	reason  string
	term    string
	fields  []string
}

// NewSearch creates a filter that keeps records where any of fields contains
// term, ignoring case. An empty term keeps everything.
func NewSearch[T Record](term string, fields []string) Filter[T] {
	return &searchFilter[T]{
		enabled: true,
		term:    term,
		fields:  fields,
	}
}

func (f *searchFilter[T]) Name() string { return "search" }

func (f *searchFilter[T]) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *searchFilter[T]) IsEnabled() bool { return f.enabled }

func (f *searchFilter[T]) Validate() error { return nil }

func (f *searchFilter[T]) Apply(_ context.Context, items []T) ([]T, Step, error) {
	if f.term == "" {
		return items, Step{Initial: len(items), Left: len(items)}, nil
	}

	needle := strings.ToLower(f.term)
	kept, step := keep(items, func(item T) bool {
		for _, field := range f.fields {
			if strings.Contains(strings.ToLower(item.GetStringField(field)), needle) {
				return true
			}
		}
		return false
	})

	return kept, step, nil
}

func (f *searchFilter[T]) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.enabled,
		Reason:  f.reason,
		Details: map[string]string{
			"term":   f.term,
			"fields": strings.Join(f.fields, ","),
		},
	}
}
