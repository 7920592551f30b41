package svg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cryspack/svg"
)

// TestElement_Render checks tag, attribute and nesting output.
func TestElement_Render(t *testing.T) {
	got := svg.Group().
		Add(svg.Circle(0, 0, 1)).
		Add(svg.Circle(1, 2, 0.5)).
		String()

	assert.Equal(t, `<g><circle r="1" cx="0" cy="0"/><circle r="0.5" cx="1" cy="2"/></g>`, got)
}

// TestElement_Immutable verifies Set/Add return copies, so a shared
// definition is not disturbed by reuse.
func TestElement_Immutable(t *testing.T) {
	base := svg.Circle(0, 0, 1)
	blue := base.Set("fill", "blue")
	green := base.Set("fill", "green")

	assert.Contains(t, blue.String(), `fill="blue"`)
	assert.Contains(t, green.String(), `fill="green"`)
	assert.NotContains(t, base.String(), "fill")
}

// TestPathData builds a closed square path.
func TestPathData(t *testing.T) {
	d := svg.PathData{}.
		MoveTo(0, 0).
		LineTo(1, 0).
		LineTo(1, 1).
		LineTo(0, 1).
		Close()

	assert.Equal(t, "M0,0 L1,0 L1,1 L0,1 Z", d.String())
	assert.Equal(t, `<path d="M0,0 L1,0 L1,1 L0,1 Z"/>`, d.Path().String())
}

// TestDocument produces a standalone svg root.
func TestDocument(t *testing.T) {
	doc := svg.Document(-1, -1, 2, 2).Add(svg.Circle(0, 0, 1))

	out := doc.String()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-1 -1 2 2">`), out)
	assert.True(t, strings.HasSuffix(out, "</svg>"), out)
}

// TestMatrix renders transform entries in a b c d e f order.
func TestMatrix(t *testing.T) {
	assert.Equal(t, "matrix(1 0 0 1 2.5 -3)", svg.Matrix(1, 0, 0, 1, 2.5, -3))
}
