package packing

import (
	"math"

	"github.com/katalvlaran/cryspack/cell"
	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/svg"
)

// cellOutline renders the unit cell boundary.
func cellOutline(c *cell.Cell) svg.Element {
	corners := c.Corners()

	var d svg.PathData
	d = d.MoveTo(corners[0].X, corners[0].Y)
	for _, p := range corners[1:] {
		d = d.LineTo(p.X, p.Y)
	}

	return svg.Group().Add(d.Close().Path().
		Set("fill", "None").
		Set("stroke", "grey").
		Set("stroke-width", 0.1))
}

// useTransform places a referenced definition under a real-space
// transform.
func useTransform(href string, t geom.Transform) svg.Element {
	return svg.Use(href).Set("transform",
		svg.Matrix(t.XX, t.YX, t.XY, t.YY, t.TX, t.TY))
}

// stateDocument lays a state out as a standalone SVG document: a 3x3
// tiling of cell outlines, the home shapes filled blue and the first
// shell of periodic copies green.
//
// The view box is sized from the cell corners scaled out to the
// tiling, padded by the shape's enclosing radius.
func stateDocument(c *cell.Cell, mol svg.Element, padding float64, positions []geom.Transform) svg.Element {
	var minX, minY, width, height float64
	for _, p := range c.Corners() {
		var scaled = p.Scale(3)
		minX = math.Min(scaled.X-padding, minX)
		minY = math.Min(scaled.Y-padding, minY)
		width = math.Max(2*(scaled.X+padding), width)
		height = math.Max(2*(scaled.Y+padding), height)
	}

	doc := svg.Document(minX, minY, width, height).
		Add(svg.Defs().
			Add(cellOutline(c).Set("id", "cell")).
			Add(mol.Set("id", "mol")))

	for _, t := range c.Images(geom.Identity(), 1, true) {
		doc = doc.Add(useTransform("cell", t))
	}

	for _, pos := range positions {
		doc = doc.Add(useTransform("mol", c.CartesianTransform(pos)).Set("fill", "blue"))
		for _, img := range c.Images(pos, 1, false) {
			doc = doc.Add(useTransform("mol", img).Set("fill", "green"))
		}
	}

	return doc
}
