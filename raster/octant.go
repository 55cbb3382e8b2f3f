// SPDX-License-Identifier: MIT

package raster

import "strconv"

// Octant identifies the angular region of a segment around its start point,
// numbered 1..8 counter-clockwise from the positive x axis (y up).
// OctantNone marks horizontal and vertical segments, which never reach the
// octant walks.
type Octant int

// Octants. On an exact diagonal (|dy| == |dx|) the shallow octant wins.
const (
	OctantNone Octant = iota
	Octant1           // dx>0, dy>0, dy ≤ dx
	Octant2           // dx>0, dy>0, dy > dx
	Octant3           // dx<0, dy>0, dy > |dx|
	Octant4           // dx<0, dy>0, dy ≤ |dx|
	Octant5           // dx<0, dy<0, |dy| ≤ |dx|
	Octant6           // dx<0, dy<0, |dy| > |dx|
	Octant7           // dx>0, dy<0, |dy| > dx
	Octant8           // dx>0, dy<0, |dy| ≤ dx
)

// String returns "octant N" or "none".
func (o Octant) String() string {
	if o < Octant1 || o > Octant8 {
		return "none"
	}

	return "octant " + strconv.Itoa(int(o))
}

// Shallow reports whether the octant steps along x (|dy| ≤ |dx|).
func (o Octant) Shallow() bool {
	switch o {
	case Octant1, Octant4, Octant5, Octant8:
		return true
	}

	return false
}

// Swapped reports whether the octant is drawn with its endpoints exchanged
// (octants 4..7 mirror onto 8, 1, 2, 3).
func (o Octant) Swapped() bool {
	return o >= Octant4 && o <= Octant7
}

// ResolveOctant classifies the segment (x0,y0)→(x1,y1).
// Returns OctantNone when dx == 0 or dy == 0.
func ResolveOctant(x0, y0, x1, y1 int) Octant {
	dx, dy := x1-x0, y1-y0
	if dx == 0 || dy == 0 {
		return OctantNone
	}
	shallow := abs(dy) <= abs(dx)

	switch {
	case dx > 0 && dy > 0:
		if shallow {
			return Octant1
		}
		return Octant2
	case dx < 0 && dy > 0:
		if shallow {
			return Octant4
		}
		return Octant3
	case dx < 0 && dy < 0:
		if shallow {
			return Octant5
		}
		return Octant6
	default: // dx > 0 && dy < 0
		if shallow {
			return Octant8
		}
		return Octant7
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
