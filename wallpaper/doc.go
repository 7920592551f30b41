// Package wallpaper defines the crystallographic wallpaper groups
// used to generate symmetric packings.
//
// A wallpaper group is the highest level description of the symmetry
// of a 2D crystal. Each group carries:
//
//   - 🧭 the crystal family its unit cell belongs to, and
//   - 🪞 the Wyckoff site symmetries, written in crystallographic
//     shorthand ("x,y", "-x,-y", "-x+1/2,y", ...), which replicate a
//     single placed molecule into every symmetric copy.
//
// The seven groups compatible with this engine's Monoclinic and
// Orthorhombic cells are built in; Lookup resolves them by name.
// Further groups can be supplied at runtime from a YAML definition
// file via LoadGroups.
package wallpaper
