package s2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// cellIDFromFaceIJ returns a leaf cell given its cube face (0..5) and
// (i, j) leaf-grid coordinates, by threading the per-face orientation
// through eight 4-bit lookupPos steps (one per 4 bits of i and j).
func cellIDFromFaceIJ(face, i, j int) CellID {
	// This value is shifted one bit to the left at the end of the
	// function to make room for the lsb marker.
	n := uint64(face) << (posBits - 1)

	// Alternating faces have opposite Hilbert curve orientations; this
	// is what keeps every face a right-handed coordinate system.
	bits := face & swapMask

	// Each iteration maps 4 bits of i and 4 bits of j into 8 bits of
	// Hilbert curve position via a 10-bit key "iiiijjjjoo".
	for k := 7; k >= 0; k-- {
		const mask = (1 << lookupBits) - 1
		bits += ((i >> uint(k*lookupBits)) & mask) << (lookupBits + 2)
		bits += ((j >> uint(k*lookupBits)) & mask) << 2
		bits = lookupPos[bits]
		n |= uint64(bits>>2) << uint(k*2*lookupBits)
		bits &= swapMask | invertMask
	}
	return CellID(n*2 + 1)
}

// faceIJOrientation decodes ci into its (face, i, j) leaf-grid
// coordinates and the Hilbert curve orientation of the cell, by running
// the cellIDFromFaceIJ recursion in reverse through lookupIJ.
func (ci CellID) faceIJOrientation() (face, i, j, orientation int) {
	face = ci.Face()
	bits := face & swapMask
	nbits := MaxLevel - 7*lookupBits // first iteration skips the face bits

	for k := 7; k >= 0; k-- {
		bits += (int(uint64(ci)>>uint(k*2*lookupBits+1)) & ((1 << uint(2*nbits)) - 1)) << 2
		bits = lookupIJ[bits]
		i += (bits >> (lookupBits + 2)) << uint(k*lookupBits)
		j += ((bits >> 2) & ((1 << lookupBits) - 1)) << uint(k*lookupBits)
		bits &= swapMask | invertMask
		nbits = lookupBits // subsequent iterations consume a full 4 bits
	}

	// The position of a non-leaf cell at level L consists of a 2*L-bit
	// prefix followed by a suffix of the form 10*. Each "00" pair in that
	// suffix flips the swap bit relative to the face's base orientation;
	// the "10" itself does not. posToOrientation[2] == 0 and
	// posToOrientation[0] == swapMask make the net effect a single swap
	// flip when the number of "00" pairs is odd, which is exactly when the
	// lsb sits at a non-zero bit position that is a multiple of 4.
	if ci.lsb()&0x1111111111111110 != 0 {
		bits ^= swapMask
	}
	orientation = bits
	return face, i, j, orientation
}

// cellIDFromFaceIJWrap is like cellIDFromFaceIJ but (i, j) may lie just
// outside the face's valid range; it reprojects the point through 3-space
// to land on the correct adjacent face across a cube edge.
func cellIDFromFaceIJWrap(face, i, j int) CellID {
	// Clamping first prevents 32-bit overflow when called from the
	// neighbor algebra with i or j one step out of range.
	i = clamp(i, -1, MaxSize)
	j = clamp(j, -1, MaxSize)

	// Project (i, j) to a point just outside the original face's
	// boundary, then let xyzToFaceUV pick the adjacent face it actually
	// lands on. The 1+epsilon clamp keeps the point from falling back
	// onto the starting face after the reprojection's divide.
	const scale = 1.0 / MaxSize
	limit := math.Nextafter(1, 2)
	u := math.Max(-limit, math.Min(limit, scale*float64((i<<1)+1-MaxSize)))
	v := math.Max(-limit, math.Min(limit, scale*float64((j<<1)+1-MaxSize)))

	newFace, newU, newV := xyzToFaceUV(faceUVToXYZ(face, u, v))
	return cellIDFromFaceIJ(newFace, stToIJ(0.5*(newU+1)), stToIJ(0.5*(newV+1)))
}

// cellIDFromFaceIJSame dispatches to cellIDFromFaceIJ or
// cellIDFromFaceIJWrap depending on whether (i, j) is known to remain on
// the same face.
func cellIDFromFaceIJSame(face, i, j int, sameFace bool) CellID {
	if sameFace {
		return cellIDFromFaceIJ(face, i, j)
	}
	return cellIDFromFaceIJWrap(face, i, j)
}

// cellIDFromPoint returns the leaf cell containing the unnormalized point
// p (interpreted as a point on the unit sphere from the origin).
func cellIDFromPoint(p r3.Vec) CellID {
	face, u, v := xyzToFaceUV(p)
	i := stToIJ(uvToST(u))
	j := stToIJ(uvToST(v))
	return cellIDFromFaceIJ(face, i, j)
}
