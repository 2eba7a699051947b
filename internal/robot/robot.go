// Package robot implements a hull painting robot driven by a machine's
// output stream.
//
// Values written to the robot alternate between two meanings: the first of
// each pair is a colour to paint the panel under the robot, the second is a
// turn command (0 turns left, anything else turns right) after which the
// robot moves forward one panel. Reading from the robot yields the colour of
// the panel it currently stands on, which the machine uses as its camera.
package robot

import (
	"fmt"
	"sort"
)

// Point is a panel coordinate; y grows southward.
type Point struct{ X, Y int }

func (pt Point) String() string { return fmt.Sprintf("(%v,%v)", pt.X, pt.Y) }

// Heading is one of the four cardinal directions.
type Heading uint8

// Headings, in clockwise order.
const (
	North Heading = iota
	East
	South
	West
)

var headingNames = [...]string{"north", "east", "south", "west"}

func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}
	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// Left returns the heading after a 90 degree counter-clockwise turn.
func (h Heading) Left() Heading { return (h + 3) % 4 }

// Right returns the heading after a 90 degree clockwise turn.
func (h Heading) Right() Heading { return (h + 1) % 4 }

// Step returns the point one panel away from pt along h.
func (h Heading) Step(pt Point) Point {
	switch h {
	case North:
		pt.Y--
	case South:
		pt.Y++
	case West:
		pt.X--
	case East:
		pt.X++
	}
	return pt
}

// Turn commands.
const (
	TurnLeft  = 0
	TurnRight = 1
)

// Robot tracks position, heading and every panel painted so far.
// The zero value is not usable; use New.
type Robot struct {
	pos     Point
	heading Heading
	panels  map[Point]int64

	turning bool  // next write is a turn command rather than a colour
	camera  int64 // value returned by the next read

	logfn func(mess string, args ...interface{})
}

// New returns a robot at the origin, facing north, whose camera initially
// reports start for the panel it stands on.
func New(start int64) *Robot {
	return &Robot{
		panels: make(map[Point]int64),
		camera: start,
	}
}

// SetLogf installs a printf-style trace function; nil disables tracing.
func (r *Robot) SetLogf(logfn func(mess string, args ...interface{})) { r.logfn = logfn }

func (r *Robot) logf(mess string, args ...interface{}) {
	if r.logfn != nil {
		r.logfn(mess, args...)
	}
}

// ReadInt returns the colour of the current panel, as of the last move.
func (r *Robot) ReadInt() (int64, error) { return r.camera, nil }

// WriteInt consumes one output value, alternately painting and moving.
func (r *Robot) WriteInt(val int64) error {
	if !r.turning {
		r.panels[r.pos] = val
		r.logf("paint %v %v", r.pos, val)
	} else {
		if val == TurnLeft {
			r.heading = r.heading.Left()
		} else {
			r.heading = r.heading.Right()
		}
		r.pos = r.heading.Step(r.pos)
		r.camera = r.panels[r.pos]
		r.logf("turn %v move %v see %v", r.heading, r.pos, r.camera)
	}
	r.turning = !r.turning
	return nil
}

// Turning returns true when the next written value is a turn command.
func (r *Robot) Turning() bool { return r.turning }

// Position returns the current panel.
func (r *Robot) Position() Point { return r.pos }

// Heading returns the current heading.
func (r *Robot) Heading() Heading { return r.heading }

// Painted returns how many distinct panels have been painted at least once.
func (r *Robot) Painted() int { return len(r.panels) }

// Color returns the last colour painted at pt, and whether pt was ever painted.
func (r *Robot) Color(pt Point) (int64, bool) {
	c, ok := r.panels[pt]
	return c, ok
}

// Panel is one painted panel.
type Panel struct {
	Point
	Color int64
}

// Panels returns every painted panel ordered by row, then column.
func (r *Robot) Panels() []Panel {
	panels := make([]Panel, 0, len(r.panels))
	for pt, c := range r.panels {
		panels = append(panels, Panel{pt, c})
	}
	sort.Slice(panels, func(i, j int) bool {
		a, b := panels[i], panels[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return panels
}
