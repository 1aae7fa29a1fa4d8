package intent

import "fmt"

// Constraint is a single attribute requirement: either an exact categorical
// value or an inclusive numeric range.
type Constraint struct {
	value string
	min   *float64
	max   *float64
}

// NewValue creates an exact-match constraint.
func NewValue(value string) (Constraint, error) {
	if value == "" {
		return Constraint{}, fmt.Errorf("constraint value is required")
	}
	return Constraint{value: value}, nil
}

// NewRange creates an inclusive numeric range constraint.
// At least one bound is required; a point value uses min == max.
func NewRange(min, max *float64) (Constraint, error) {
	if min == nil && max == nil {
		return Constraint{}, fmt.Errorf("at least one range bound is required")
	}
	if min != nil && max != nil && *min > *max {
		return Constraint{}, fmt.Errorf("range min %g exceeds max %g", *min, *max)
	}
	return Constraint{min: min, max: max}, nil
}

// NewNumber creates a point-value numeric constraint (min == max == v).
func NewNumber(v float64) Constraint {
	c, _ := NewRange(&v, &v)
	return c
}

// IsValue reports whether this is an exact-match constraint.
func (c Constraint) IsValue() bool { return c.value != "" }

// IsRange reports whether this is a numeric range constraint.
func (c Constraint) IsRange() bool { return c.min != nil || c.max != nil }

// IsZero reports whether the constraint is empty.
func (c Constraint) IsZero() bool { return !c.IsValue() && !c.IsRange() }

// Value returns the exact-match value.
func (c Constraint) Value() string { return c.value }

// Min returns the inclusive lower bound (nil = unbounded).
func (c Constraint) Min() *float64 { return c.min }

// Max returns the inclusive upper bound (nil = unbounded).
func (c Constraint) Max() *float64 { return c.max }

// Matches reports whether a document attribute satisfies the constraint.
// tag is the document's categorical value, num its numeric value; hasNum
// indicates whether the document carries the numeric attribute at all.
func (c Constraint) Matches(tag string, num float64, hasNum bool) bool {
	if c.IsValue() {
		return tag == c.value
	}
	if !hasNum {
		return false
	}
	if c.min != nil && num < *c.min {
		return false
	}
	if c.max != nil && num > *c.max {
		return false
	}
	return true
}
