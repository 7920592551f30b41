// Package svg builds Scalable Vector Graphics markup for packing
// states.
//
// 🚀 Scope
//
//	A deliberately small element builder: enough of SVG to express a
//	unit cell outline, a molecule as a <g> of circles or a closed
//	path, and <use> references placing copies of both under affine
//	transforms. Elements are immutable values; Set and Add return
//	extended copies, so definitions can be shared and reused.
//
// The output of Document is standalone renderable markup — it opens
// with the xmlns declaration and a viewBox, exactly what a browser or
// vector editor expects to receive after every optimisation frame.
package svg

import (
	"strconv"
	"strings"
)

// Attr is one rendered attribute of an element.
type Attr struct {
	Key   string
	Value string
}

// Element is an SVG node: a tag, ordered attributes and children.
type Element struct {
	tag      string
	attrs    []Attr
	children []Element
	text     string
}

// New returns an empty element with the given tag.
func New(tag string) Element {
	return Element{tag: tag}
}

// Set returns a copy of e with the attribute appended. Values are
// formatted with Number for float64 and strconv for integers.
func (e Element) Set(key string, value any) Element {
	var rendered string
	switch v := value.(type) {
	case string:
		rendered = v
	case float64:
		rendered = Number(v)
	case int:
		rendered = strconv.Itoa(v)
	default:
		rendered = ""
	}

	attrs := make([]Attr, len(e.attrs), len(e.attrs)+1)
	copy(attrs, e.attrs)
	e.attrs = append(attrs, Attr{Key: key, Value: rendered})

	return e
}

// Add returns a copy of e with the child appended.
func (e Element) Add(child Element) Element {
	children := make([]Element, len(e.children), len(e.children)+1)
	copy(children, e.children)
	e.children = append(children, child)

	return e
}

// String renders the element and its subtree as markup.
func (e Element) String() string {
	var b strings.Builder
	e.render(&b)

	return b.String()
}

func (e Element) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	if len(e.children) == 0 && e.text == "" {
		b.WriteString("/>")

		return
	}
	b.WriteByte('>')
	b.WriteString(e.text)
	for _, c := range e.children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

// Number formats a float the way SVG coordinates are usually written:
// shortest round-trip representation, no exponent for common scales.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Circle returns a <circle> at (cx, cy) with radius r.
func Circle(cx, cy, r float64) Element {
	return New("circle").Set("r", r).Set("cx", cx).Set("cy", cy)
}

// Group returns an empty <g> container.
func Group() Element { return New("g") }

// Defs returns an empty <defs> container.
func Defs() Element { return New("defs") }

// Use returns a <use> element referencing the definition id.
func Use(href string) Element {
	return New("use").Set("href", "#"+href)
}

// Document returns a root <svg> with the given viewBox.
func Document(minX, minY, width, height float64) Element {
	viewBox := strings.Join([]string{
		Number(minX), Number(minY), Number(width), Number(height),
	}, " ")

	return New("svg").
		Set("xmlns", "http://www.w3.org/2000/svg").
		Set("viewBox", viewBox)
}

// Matrix renders the six entries of an affine transform in SVG
// matrix(a b c d e f) order: column-major rotation block then the
// translation.
func Matrix(xx, yx, xy, yy, tx, ty float64) string {
	parts := []string{
		Number(xx), Number(yx), Number(xy), Number(yy), Number(tx), Number(ty),
	}

	return "matrix(" + strings.Join(parts, " ") + ")"
}
