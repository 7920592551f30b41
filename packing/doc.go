// Package packing ties shapes, cells and wallpaper symmetry into
// optimisable crystal states.
//
// A state is one candidate crystal structure: a shape, a unit cell
// and the occupied Wyckoff sites placing copies of the shape inside
// the cell. Two state kinds exist:
//
//   - 📦 PackedState - hard shapes. The score is the packing
//     fraction, the share of the cell covered by shapes; a state with
//     overlapping shapes is invalid and scores ErrIntersection.
//   - 🧲 PotentialState - soft shapes. The score is the negated
//     interaction energy per shape; every configuration is valid.
//
// Scores are oriented so that HIGHER IS BETTER, which is the
// direction the optimiser maximises.
//
// States expose their degrees of freedom through GenerateBasis: the
// variable cell parameters followed by the x, y and rotation of every
// occupied site. Mutating those basis values is the only way the
// optimiser changes a state.
package packing
