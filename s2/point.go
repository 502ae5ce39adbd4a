package s2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// CellIDFromPoint returns the leaf cell containing p.
func CellIDFromPoint(p Point) CellID {
	return cellIDFromPoint(p.Vec)
}

// CellIDFromLatLng returns the leaf cell containing ll.
func CellIDFromLatLng(ll LatLng) CellID {
	return cellIDFromPoint(PointFromLatLng(ll).Vec)
}

// Point returns the center of ci on the unit sphere.
func (ci CellID) Point() Point {
	raw := ci.rawPoint()
	norm := math.Sqrt(r3.Dot(raw, raw))
	return Point{r3.Scale(1/norm, raw)}
}

// LatLng returns the center of ci on the sphere, as latitude/longitude.
func (ci CellID) LatLng() LatLng {
	return LatLngFromPoint(Point{ci.rawPoint()})
}

// rawPoint returns an unnormalized vector from the origin through the
// center of ci; callers that need a unit vector should normalize it.
func (ci CellID) rawPoint() r3.Vec {
	face, si, ti := ci.faceSiTi()
	return faceSiTiToXYZ(face, si, ti)
}

// faceSiTi returns the face and doubled (si, ti) grid coordinates of the
// center of ci. Doubling places an interior cell's center on an odd
// lattice point, which is what lets a single integer pair describe
// centers at every level uniformly.
func (ci CellID) faceSiTi() (face, si, ti int) {
	face, i, j, _ := ci.faceIJOrientation()
	delta := 0
	if ci.IsLeaf() {
		delta = 1
	} else if (i^(int(ci)>>2))&1 != 0 {
		delta = 2
	}
	return face, 2*i + delta, 2*j + delta
}

// CenterST returns the (s, t) coordinates of the center of ci.
func (ci CellID) CenterST() (s, t float64) {
	_, si, ti := ci.faceSiTi()
	return siTiToST(si), siTiToST(ti)
}

// CenterUV returns the (u, v) coordinates of the center of ci.
func (ci CellID) CenterUV() (u, v float64) {
	s, t := ci.CenterST()
	return stToUV(s), stToUV(t)
}

// BoundST returns the bounding rectangle of ci in (s, t) space: a square
// centered on CenterST with side length equal to the cell's size at its
// level.
func (ci CellID) BoundST() r2.Box {
	size := sizeST(ci.Level())
	cs, ct := ci.CenterST()
	return r2.NewBox(cs-size/2, ct-size/2, cs+size/2, ct+size/2)
}

// BoundUV returns the bounding rectangle of ci in (u, v) space.
func (ci CellID) BoundUV() r2.Box {
	_, i, j, _ := ci.faceIJOrientation()
	return ijLevelToBoundUV(i, j, ci.Level())
}

// sizeST returns the side length, in (s,t) units, of a cell at level.
func sizeST(level int) float64 {
	return float64(sizeIJ(level)) / MaxSize
}

// ijLevelToBoundUV returns the bounds in (u,v)-space of the cell at the
// given level containing the leaf cell with (i, j) coordinates.
func ijLevelToBoundUV(i, j, level int) r2.Box {
	cellSize := sizeIJ(level)
	iLo := i &^ (cellSize - 1)
	jLo := j &^ (cellSize - 1)
	uLo := stToUV(ijToSTMin(iLo))
	uHi := stToUV(ijToSTMin(iLo + cellSize))
	vLo := stToUV(ijToSTMin(jLo))
	vHi := stToUV(ijToSTMin(jLo + cellSize))
	return r2.NewBox(uLo, vLo, uHi, vHi)
}
