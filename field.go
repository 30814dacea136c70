package cron

import (
	"strconv"
)

// Any is the wildcard token accepted in the minute and hour fields.
const Any = "*"

// Field describes a bounded integer field of a crontab record. Valid values
// are 0 through Max inclusive.
type Field struct {
	Name string
	Max  int
}

var (
	// Minute is the minute-of-hour field.
	Minute = Field{Name: "minute", Max: 59}

	// Hour is the hour-of-day field.
	Hour = Field{Name: "hour", Max: 23}
)

// FieldSpec is either a wildcard or a single exact value.
type FieldSpec struct {
	wildcard bool
	value    int
}

// Wildcard matches every value of a field.
func Wildcard() FieldSpec {
	return FieldSpec{wildcard: true}
}

// Exact matches v only.
func Exact(v int) FieldSpec {
	return FieldSpec{value: v}
}

// IsWildcard reports whether the spec matches every value.
func (s FieldSpec) IsWildcard() bool { return s.wildcard }

// Value returns the exact value. It is meaningless for a wildcard.
func (s FieldSpec) Value() int { return s.value }

func (s FieldSpec) String() string {
	if s.wildcard {
		return Any
	}
	return strconv.Itoa(s.value)
}

// ParseField parses a single crontab field, either "*" or a decimal integer
// inside the field's range.
func ParseField(s string, field Field) (FieldSpec, error) {
	if s == Any {
		return Wildcard(), nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return FieldSpec{}, &ConfigurationError{Field: field.Name, Value: s, Reason: "not a number or " + Any}
	}

	spec := Exact(v)
	if err := field.check(spec); err != nil {
		return FieldSpec{}, err
	}
	return spec, nil
}

// Expand returns every value matched by spec, in ascending order.
func Expand(spec FieldSpec, field Field) ([]int, error) {
	if err := field.check(spec); err != nil {
		return nil, err
	}

	if !spec.wildcard {
		return []int{spec.value}, nil
	}

	values := make([]int, 0, field.Max+1)
	for v := 0; v <= field.Max; v++ {
		values = append(values, v)
	}
	return values, nil
}

func (f Field) check(spec FieldSpec) error {
	if spec.wildcard {
		return nil
	}
	if spec.value < 0 || spec.value > f.Max {
		return &ConfigurationError{
			Field:  f.Name,
			Value:  strconv.Itoa(spec.value),
			Reason: "must be between 0 and " + strconv.Itoa(f.Max),
		}
	}
	return nil
}
