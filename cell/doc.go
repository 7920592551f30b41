// Package cell models the two-dimensional unit cell of a crystal.
//
// A unit cell is the repeating tile of a crystal structure. It is
// described by two side lengths and the angle between them, with the
// crystal family dictating which of those parameters may vary:
//
//   - 📐 Monoclinic - two free lengths and a free angle.
//   - ▭ Orthorhombic - two free lengths, angle fixed at 90°.
//   - ⬡ Hexagonal - one free length (sides tied), angle fixed at 60°.
//   - ◻ Tetragonal - one free length (sides tied), angle fixed at 90°.
//
// Particle positions inside a cell are stored in fractional
// coordinates, so resizing the cell never moves particles relative to
// it. ToCartesian and CartesianTransform project those fractional
// values into real space, and PeriodicImages enumerates the
// neighbouring copies of a transform needed for overlap and energy
// checks across the cell boundary.
//
// The optimiser mutates cell parameters through DegreesOfFreedom,
// which exposes each variable parameter as a bounded basis value.
package cell
