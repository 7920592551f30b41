// Package cryspack searches for optimal packings of 2D molecular
// crystals using Monte-Carlo simulated annealing under wallpaper-group
// symmetry.
//
// 🚀 What is cryspack?
//
//	A crystal structure search engine that brings together:
//		• Shapes: hard circle molecules, polygons and soft Lennard-Jones particles
//		• Symmetry: the wallpaper groups and their Wyckoff sites
//		• Cells: the four 2D crystal families with their degrees of freedom
//		• Annealing: a frame-driven loop for interactive use and a batch
//		  schedule with parallel replications for structure search
//		• Rendering: every state as a standalone SVG document
//
// ✨ Why cryspack?
//
//   - Deterministic – seed a run and reproduce the whole ensemble
//   - Symmetry-aware – one placed molecule, the group does the rest
//   - Honest scoring – packing fraction for hard shapes, interaction
//     energy for soft ones, both oriented so higher is better
//
// The packages, bottom up:
//
//	geom/      — vectors, planar transforms & the symmetry-operation parser
//	basis/     — bounded, revertible degrees of freedom
//	svg/       — a small SVG element builder
//	shape/     — molecules: circles, trimers, polygons & Lennard-Jones
//	cell/      — 2D unit cells & crystal families
//	wallpaper/ — wallpaper groups & Wyckoff sites
//	packing/   — optimisable crystal states
//	optimise/  — the annealing loops & parallel replication
//
// The cryspack binary under cmd/ drives it all: batch searches saving
// the best structure as JSON + SVG, and a live websocket viewer
// streaming optimisation frames.
//
//	go get github.com/katalvlaran/cryspack
package cryspack
