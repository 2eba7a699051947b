package robot

import (
	"bufio"
	"io"
)

// Render draws the bounding box of all painted panels, one text row per
// panel row: '#' for panels painted 1, '.' for everything else.
func (r *Robot) Render(w io.Writer) error {
	if len(r.panels) == 0 {
		return nil
	}

	var lo, hi Point
	first := true
	for pt := range r.panels {
		if first {
			lo, hi, first = pt, pt, false
			continue
		}
		if pt.X < lo.X {
			lo.X = pt.X
		}
		if pt.Y < lo.Y {
			lo.Y = pt.Y
		}
		if pt.X > hi.X {
			hi.X = pt.X
		}
		if pt.Y > hi.Y {
			hi.Y = pt.Y
		}
	}

	bw := bufio.NewWriter(w)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if r.panels[Point{x, y}] == 1 {
				bw.WriteByte('#')
			} else {
				bw.WriteByte('.')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
