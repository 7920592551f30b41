package svg

import "strings"

// PathData accumulates the d attribute of a <path> element.
//
// The zero value is ready to use.
type PathData struct {
	cmds []string
}

// MoveTo appends an absolute moveto command.
func (p PathData) MoveTo(x, y float64) PathData {
	return p.append("M" + Number(x) + "," + Number(y))
}

// LineTo appends an absolute lineto command.
func (p PathData) LineTo(x, y float64) PathData {
	return p.append("L" + Number(x) + "," + Number(y))
}

// LineBy appends a relative lineto command.
func (p PathData) LineBy(dx, dy float64) PathData {
	return p.append("l" + Number(dx) + "," + Number(dy))
}

// Close appends a closepath command.
func (p PathData) Close() PathData {
	return p.append("Z")
}

// String renders the accumulated command list.
func (p PathData) String() string {
	return strings.Join(p.cmds, " ")
}

// Path returns a <path> element carrying the accumulated data.
func (p PathData) Path() Element {
	return New("path").Set("d", p.String())
}

func (p PathData) append(cmd string) PathData {
	cmds := make([]string, len(p.cmds), len(p.cmds)+1)
	copy(cmds, p.cmds)
	p.cmds = append(cmds, cmd)

	return p
}
