package design

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds reported by the member solvers. All of them except
// ErrUnknownArchetype are recoverable: solvers record them in Result.Issues
// and still return a well-formed result.
var (
	ErrInvalidGeometry      = errors.New("invalid geometry")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidMaterialGrade = errors.New("material grade not tabulated")
	ErrDegenerateSection    = errors.New("degenerate section")
	ErrZeroCapacity         = errors.New("zero capacity")
	ErrUnknownArchetype     = errors.New("unknown member archetype")
)

// Field names a numeric input for validation messages
type Field struct {
	Name  string
	Value float64
}

// F is shorthand for building a Field
func F(name string, value float64) Field {
	return Field{Name: name, Value: value}
}

// RequirePositive returns an ErrInvalidGeometry error naming every field
// that is NaN, infinite, zero or negative. It returns nil when all are valid.
func RequirePositive(fields ...Field) error {
	for _, f := range fields {
		if !isFinite(f.Value) || f.Value <= 0 {
			return fmt.Errorf("%w: %s=%.4g must be positive", ErrInvalidGeometry, f.Name, f.Value)
		}
	}
	return nil
}

// RequireNonNegative returns an ErrInvalidInput error for the first field
// that is NaN, infinite or negative.
func RequireNonNegative(fields ...Field) error {
	for _, f := range fields {
		if !isFinite(f.Value) || f.Value < 0 {
			return fmt.Errorf("%w: %s=%.4g must be zero or positive", ErrInvalidInput, f.Name, f.Value)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
