package geom

import (
	"errors"
	"math"
)

var (
	// ErrTooFewComponents is returned when a symmetry operation string
	// contains fewer than two comma-separated components.
	ErrTooFewComponents = errors.New("geom: not enough dimensions in symmetry operation")
	// ErrTooManyComponents is returned when a symmetry operation string
	// contains more than two comma-separated components.
	ErrTooManyComponents = errors.New("geom: too many dimensions in symmetry operation")
	// ErrInvalidOperation is returned when a symmetry operation string
	// contains a character outside the x/y/sign/fraction grammar.
	ErrInvalidOperation = errors.New("geom: invalid value in symmetry operation")
)

// Vec is a point or direction in the plane.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum v + w.
func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y} }

// Sub returns the component-wise difference v - w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec { return Vec{s * v.X, s * v.Y} }

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// NormSquared returns the squared Euclidean length of v.
//
// Prefer this over Norm in hot paths: it avoids the square root.
func (v Vec) NormSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}
