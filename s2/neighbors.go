package s2

// EdgeNeighbors returns the four cells, at ci's level, that are adjacent
// across ci's four edges. Edges 0, 1, 2, 3 are in the down, right, up,
// left directions of face space. All four are distinct, even when one or
// more of them crosses a cube edge onto a different face.
func (ci CellID) EdgeNeighbors() [4]CellID {
	level := ci.Level()
	size := sizeIJ(level)
	face, i, j, _ := ci.faceIJOrientation()
	return [4]CellID{
		cellIDFromFaceIJSame(face, i, j-size, j-size >= 0).Parent(level),
		cellIDFromFaceIJSame(face, i+size, j, i+size < MaxSize).Parent(level),
		cellIDFromFaceIJSame(face, i, j+size, j+size < MaxSize).Parent(level),
		cellIDFromFaceIJSame(face, i-size, j, i-size >= 0).Parent(level),
	}
}

// AppendVertexNeighbors appends to out the cells at the given level that
// share ci's closest vertex to that level's ancestor of ci. level must be
// strictly less than ci.Level(). The result is the ancestor itself plus
// either two neighbors (if the vertex is one of the cube's eight corners,
// where only three cells meet) or three, so 3 or 4 cells in all.
func (ci CellID) AppendVertexNeighbors(level int, out *[]CellID) {
	if level >= ci.Level() {
		return
	}
	face, i, j, _ := ci.faceIJOrientation()

	// Look at the next bit of i and j below level to find which quadrant
	// of ci's ancestor at level this cell lies in, and hence which
	// neighboring cell is closest in each direction.
	halfsize := sizeIJ(level + 1)
	size := halfsize << 1
	var isame, jsame bool
	var ioffset, joffset int
	if i&halfsize != 0 {
		ioffset = size
		isame = i+size < MaxSize
	} else {
		ioffset = -size
		isame = i-size >= 0
	}
	if j&halfsize != 0 {
		joffset = size
		jsame = j+size < MaxSize
	} else {
		joffset = -size
		jsame = j-size >= 0
	}

	*out = append(*out, ci.Parent(level))
	*out = append(*out, cellIDFromFaceIJSame(face, i+ioffset, j, isame).Parent(level))
	*out = append(*out, cellIDFromFaceIJSame(face, i, j+joffset, jsame).Parent(level))
	// If both the i- and j-neighbors cross to a different face, the
	// diagonal neighbor does not exist: this vertex is a cube corner with
	// only three adjacent cells.
	if isame || jsame {
		*out = append(*out, cellIDFromFaceIJSame(face, i+ioffset, j+joffset, isame && jsame).Parent(level))
	}
}

// AppendAllNeighbors appends to out all cells at nbrLevel that are
// adjacent to ci, including diagonal neighbors. nbrLevel must be no
// smaller than ci.Level(). The loop test sits at the tail so the final
// iteration's k never overflows a 32-bit int.
func (ci CellID) AppendAllNeighbors(nbrLevel int, out *[]CellID) {
	face, i, j, _ := ci.faceIJOrientation()

	// Normalize (i, j) to the lower-left corner of ci, since nbrLevel may
	// be deeper than ci's own level.
	size := sizeIJ(ci.Level())
	i &^= size - 1
	j &^= size - 1

	nbrSize := sizeIJ(nbrLevel)

	for k := -nbrSize; ; k += nbrSize {
		var sameFace bool
		switch {
		case k < 0:
			sameFace = j+k >= 0
		case k >= size:
			sameFace = j+k < MaxSize
		default:
			sameFace = true
			// North and south neighbors.
			*out = append(*out, cellIDFromFaceIJSame(face, i+k, j-nbrSize, j-size >= 0).Parent(nbrLevel))
			*out = append(*out, cellIDFromFaceIJSame(face, i+k, j+size, j+size < MaxSize).Parent(nbrLevel))
		}
		// East, west, and (at the diagonal corners) the corner neighbors.
		*out = append(*out, cellIDFromFaceIJSame(face, i-nbrSize, j+k, sameFace && i-size >= 0).Parent(nbrLevel))
		*out = append(*out, cellIDFromFaceIJSame(face, i+size, j+k, sameFace && i+size < MaxSize).Parent(nbrLevel))
		if k >= size {
			break
		}
	}
}
