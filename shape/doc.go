// Package shape defines the molecular shapes that get packed: hard
// circle clusters, hard polygons and soft Lennard-Jones clusters.
//
// 🚀 What is a shape here?
//
//	A rigid 2D body described in its own local frame, centred near
//	the origin. The packing state places copies of one shape at many
//	symmetry-related positions; shapes therefore expose exactly what
//	the packing score needs:
//	  • Area            — for packing fractions
//	  • EnclosingRadius — for initial cell sizing and SVG padding
//	  • Transformed     — a copy mapped through an isometry
//	  • Intersects / Energy — the hard or soft pair interaction
//
// ✨ Shape families:
//   - MolShape  — a cluster of circles (Atom); hard overlap test.
//     Constructors: NewTrimer, NewCircle.
//   - LineShape — a polygon from radial points; hard edge-crossing
//     test. Constructors: FromRadial, Polygon.
//   - LJShape   — a cluster of Lennard-Jones particles; smooth pair
//     energy instead of a boolean test. Constructors: NewLJTrimer,
//     NewLJCircle.
//
// The Hard and Soft type parameters keep pair interactions fully
// typed: a MolShape can only be tested against another MolShape.
package shape
