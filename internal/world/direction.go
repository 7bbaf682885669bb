package world

import "fmt"

// Direction names one of the six face-adjacent neighbors of a chunk or block.
type Direction uint8

const (
	DirFront  Direction = iota // -Z
	DirBack                    // +Z
	DirLeft                    // -X
	DirRight                   // +X
	DirBottom                  // -Y
	DirTop                     // +Y

	NumDirections = 6
)

// Directions lists every direction in mesh emission order.
var Directions = [NumDirections]Direction{DirFront, DirBack, DirLeft, DirRight, DirBottom, DirTop}

// Offset returns the unit step along the direction.
func (d Direction) Offset() (dx, dy, dz int) {
	switch d {
	case DirFront:
		return 0, 0, -1
	case DirBack:
		return 0, 0, 1
	case DirLeft:
		return -1, 0, 0
	case DirRight:
		return 1, 0, 0
	case DirBottom:
		return 0, -1, 0
	case DirTop:
		return 0, 1, 0
	}
	panic(fmt.Sprintf("world: invalid direction %d", d))
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirFront:
		return DirBack
	case DirBack:
		return DirFront
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirBottom:
		return DirTop
	case DirTop:
		return DirBottom
	}
	panic(fmt.Sprintf("world: invalid direction %d", d))
}

// Vertical reports whether the direction is along the Y axis.
func (d Direction) Vertical() bool {
	return d == DirBottom || d == DirTop
}

func (d Direction) String() string {
	switch d {
	case DirFront:
		return "front"
	case DirBack:
		return "back"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirBottom:
		return "bottom"
	case DirTop:
		return "top"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
