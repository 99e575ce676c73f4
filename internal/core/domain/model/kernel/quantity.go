package kernel

import (
	"fmt"

	"pipeyard/internal/pkg/errs"
)

// Quantity is a value object describing an amount of pipe: joint count,
// total length in feet and total weight in pounds.
//
// The zero value is a valid "nothing" quantity. Records frequently arrive
// with some or all figures missing (manifests not yet parsed, estimates
// not yet entered); a missing figure is zero, never an error.
//
// Quantity is immutable; arithmetic returns new values.
type Quantity struct {
	joints    int
	lengthFt  float64
	weightLbs float64
}

// NewQuantity creates a Quantity. All figures must be non-negative.
func NewQuantity(joints int, lengthFt, weightLbs float64) (Quantity, error) {
	if joints < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("joints", fmt.Errorf("%d is negative", joints))
	}
	if lengthFt < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("lengthFt", fmt.Errorf("%g is negative", lengthFt))
	}
	if weightLbs < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("weightLbs", fmt.Errorf("%g is negative", weightLbs))
	}

	return Quantity{
		joints:    joints,
		lengthFt:  lengthFt,
		weightLbs: weightLbs,
	}, nil
}

// JointsQuantity creates a Quantity carrying only a joint count.
func JointsQuantity(joints int) (Quantity, error) {
	return NewQuantity(joints, 0, 0)
}

// Joints returns the joint count.
func (q Quantity) Joints() int {
	return q.joints
}

// LengthFt returns the total length in feet.
func (q Quantity) LengthFt() float64 {
	return q.lengthFt
}

// WeightLbs returns the total weight in pounds.
func (q Quantity) WeightLbs() float64 {
	return q.weightLbs
}

// IsZero reports whether no figure is set.
func (q Quantity) IsZero() bool {
	return q.joints == 0 && q.lengthFt == 0 && q.weightLbs == 0
}

// Add returns the component-wise sum of two quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{
		joints:    q.joints + other.joints,
		lengthFt:  q.lengthFt + other.lengthFt,
		weightLbs: q.weightLbs + other.weightLbs,
	}
}

// IsEqual reports whether two quantities carry identical figures.
func (q Quantity) IsEqual(other Quantity) bool {
	return q == other
}
