package s2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// geometry.go is the projection collaborator described in §6 of the
// design: the pure, re-entrant functions that relate a point on the unit
// sphere to a (face, u, v) triple, a face to (s, t) and (i, j) grid
// coordinates, and back. Nothing above this file reaches into the sphere
// or the cube directly; every other component calls through these
// functions, which is what makes them swappable in principle without
// touching CellID's bit algebra.

// Point is a point in 3-space, generally assumed to be on the unit
// sphere for anything that interprets it as an S2 point.
type Point struct {
	r3.Vec
}

// LatLng is a point on the sphere expressed as latitude and longitude, in
// radians.
type LatLng struct {
	Lat, Lng float64
}

// PointFromLatLng converts ll to the corresponding unit-length Point.
func PointFromLatLng(ll LatLng) Point {
	cosLat := math.Cos(ll.Lat)
	return Point{r3.Vec{
		X: cosLat * math.Cos(ll.Lng),
		Y: cosLat * math.Sin(ll.Lng),
		Z: math.Sin(ll.Lat),
	}}
}

// LatLngFromPoint converts p to latitude/longitude, in radians. p need
// not be normalized.
func LatLngFromPoint(p Point) LatLng {
	x, y, z := p.X, p.Y, p.Z
	return LatLng{
		Lat: math.Atan2(z, math.Hypot(x, y)),
		Lng: math.Atan2(y, x),
	}
}

// faceUVToXYZ converts a point (face, u, v), u,v in [-1,1], to the
// corresponding unnormalized point in 3-space. The six cases are the
// inverse of xyzToFaceUV's face assignment below; faces are numbered so
// that opposite faces (0,3), (1,4), (2,5) have antiparallel normals.
func faceUVToXYZ(face int, u, v float64) r3.Vec {
	switch face {
	case 0:
		return r3.Vec{X: 1, Y: u, Z: v}
	case 1:
		return r3.Vec{X: -u, Y: 1, Z: v}
	case 2:
		return r3.Vec{X: -u, Y: -v, Z: 1}
	case 3:
		return r3.Vec{X: -1, Y: -v, Z: -u}
	case 4:
		return r3.Vec{X: v, Y: -1, Z: -u}
	default:
		return r3.Vec{X: v, Y: u, Z: -1}
	}
}

// xyzToFaceUV returns the face that p (not necessarily normalized)
// projects onto, and its (u, v) coordinates on that face. The face is
// chosen by the largest-magnitude axis of p, which is always the one the
// point projects cleanly onto, so u and v always lie in [-1,1]
// (cellIDFromFaceIJWrap relies on this to reproject a point just beyond
// one face's edge onto the adjacent face).
func xyzToFaceUV(p r3.Vec) (face int, u, v float64) {
	x, y, z := p.X, p.Y, p.Z
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	switch {
	case ax >= ay && ax >= az:
		if x < 0 {
			face = 3
		} else {
			face = 0
		}
	case ay >= ax && ay >= az:
		if y < 0 {
			face = 4
		} else {
			face = 1
		}
	default:
		if z < 0 {
			face = 5
		} else {
			face = 2
		}
	}
	u, v = faceXYZToUV(face, p)
	return face, u, v
}

// faceXYZToUV is the per-face projection used by xyzToFaceUV once the
// face has been chosen; it is the algebraic inverse of faceUVToXYZ.
func faceXYZToUV(face int, p r3.Vec) (u, v float64) {
	x, y, z := p.X, p.Y, p.Z
	switch face {
	case 0:
		return y / x, z / x
	case 1:
		return -x / y, z / y
	case 2:
		return -x / z, -y / z
	case 3:
		return z / x, y / x
	case 4:
		return z / y, -x / y
	default:
		return -y / z, -x / z
	}
}

// uvToST converts a u- or v-coordinate, in [-1,1], to an s- or
// t-coordinate, in [0,1], via the quadratic warp that makes S2 cell areas
// vary less across a face than a straight linear mapping would.
func uvToST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}

// stToUV is the inverse of uvToST.
func stToUV(s float64) float64 {
	if s >= 0.5 {
		return (1.0 / 3.0) * (4*s*s - 1)
	}
	return (1.0 / 3.0) * (1 - 4*(1-s)*(1-s))
}

// stToIJ converts an s- or t-coordinate, in [0,1], to the corresponding
// leaf-cell i- or j-index, in [0, MaxSize).
func stToIJ(s float64) int {
	return clamp(int(math.Floor(MaxSize*s)), 0, MaxSize-1)
}

// ijToSTMin converts the i- or j-index of a leaf cell to the minimum
// s- or t-value contained by that cell. i may range up to MaxSize
// inclusive, one position beyond the normal index range.
func ijToSTMin(i int) float64 {
	return float64(i) / MaxSize
}

// siTiToST converts a doubled leaf-grid coordinate (used so that an
// interior cell's center falls on an odd lattice point) to an s- or
// t-coordinate.
func siTiToST(si int) float64 {
	return float64(si) / (2 * MaxSize)
}

// faceSiTiToXYZ converts doubled face-grid coordinates to a 3-space
// point.
func faceSiTiToXYZ(face, si, ti int) r3.Vec {
	return faceUVToXYZ(face, stToUV(siTiToST(si)), stToUV(siTiToST(ti)))
}

// clamp returns the value in [lo, hi] closest to x.
func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
