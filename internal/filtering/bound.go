package filtering

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var ErrInvalidBound = errors.New("invalid numeric bound")

// Bound is a numeric limit on a single field.
type Bound struct {
	Field string
	Value float64
}

func (b *Bound) valid() bool {
	return b != nil && b.Field != "" && !math.IsNaN(b.Value) && !math.IsInf(b.Value, 0)
}

// ParseBound converts user input into a bound on field. Blank input yields no
// bound; anything that is not a finite number is rejected with ErrInvalidBound.
func ParseBound(field, raw string) (*Bound, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidBound, field, raw)
	}

	bound := &Bound{Field: field, Value: value}
	if !bound.valid() {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidBound, field, raw)
	}
	return bound, nil
}

type boundFilter[T Record] struct {
	bound   *Bound
	minimum bool
}

// NewMinimum creates a filter that keeps records whose numeric field is at
// least the bound value. Records without the field are dropped.
func NewMinimum[T Record](bound *Bound) Filter[T] {
	return &boundFilter[T]{bound: bound, minimum: true}
}

// NewMaximum creates a filter that keeps records whose numeric field is at
// most the bound value. Records without the field are dropped.
func NewMaximum[T Record](bound *Bound) Filter[T] {
	return &boundFilter[T]{bound: bound}
}

func (f *boundFilter[T]) Name() string {
	field := ""
	if f.bound != nil {
		field = f.bound.Field
	}
	if f.minimum {
		return "minimum_" + field
	}
	return "maximum_" + field
}

func (f *boundFilter[T]) Disable(string) {}

func (f *boundFilter[T]) IsEnabled() bool { return true }

func (f *boundFilter[T]) Validate() error {
	if !f.bound.valid() {
		return ErrInvalidBound
	}
	return nil
}

func (f *boundFilter[T]) Apply(_ context.Context, items []T) ([]T, Step, error) {
	kept, step := keep(items, func(item T) bool {
		value, ok := item.GetNumberField(f.bound.Field)
		if !ok {
			return false
		}
		if f.minimum {
			return value >= f.bound.Value
		}
		return value <= f.bound.Value
	})

	return kept, step, nil
}

func (f *boundFilter[T]) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{
			f.bound.Field: strconv.FormatFloat(f.bound.Value, 'f', -1, 64),
		},
	}
}
