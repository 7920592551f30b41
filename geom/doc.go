// Package geom provides the planar geometry primitives the packing
// engine is built from: rigid-body transforms, line segments and the
// parser for crystallographic symmetry operations.
//
// 🚀 What lives here?
//
//	• Vec        — a plain 2D vector/point.
//	• Transform  — an isometry (rotation/reflection + translation),
//	  composable and directly expressible as an SVG matrix.
//	• Line       — a segment with a robust crossing test.
//	• FromOperations — parse symmetry strings such as "x,y",
//	  "-x,-y" or "-x+1/2,y" into a Transform.
//
// Positions inside a unit cell are stored in fractional coordinates;
// the cell package converts Transforms produced here into Cartesian
// space. All types are immutable value types: methods return copies,
// never mutate the receiver.
//
// Performance:
//
//   - Every operation is O(1); FromOperations is O(len(input)).
package geom
