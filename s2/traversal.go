package s2

import "math/bits"

// ChildBegin returns the first child, in Hilbert curve order, of ci.
//
//	for c := parent.ChildBegin(); c != parent.ChildEnd(); c = c.Next() {
//		...
//	}
func (ci CellID) ChildBegin() CellID {
	lsb := ci.lsb()
	return CellID(uint64(ci) - lsb + lsb>>2)
}

// ChildBeginAtLevel returns the first cell, in Hilbert curve order, among
// the descendants of ci at the given level. level must be no smaller than
// ci.Level().
func (ci CellID) ChildBeginAtLevel(level int) CellID {
	return CellID(uint64(ci) - ci.lsb() + lsbForLevel(level))
}

// ChildEnd returns the cell following the last child, in Hilbert curve
// order, of ci. The result may not be a valid cell.
func (ci CellID) ChildEnd() CellID {
	lsb := ci.lsb()
	return CellID(uint64(ci) + lsb + lsb>>2)
}

// ChildEndAtLevel returns the cell following the last descendant of ci at
// the given level, in Hilbert curve order. The result may not be valid.
func (ci CellID) ChildEndAtLevel(level int) CellID {
	return CellID(uint64(ci) + ci.lsb() + lsbForLevel(level))
}

// Next returns the next cell along the Hilbert curve at ci's level.
func (ci CellID) Next() CellID {
	return CellID(uint64(ci) + ci.lsb()<<1)
}

// Prev returns the previous cell along the Hilbert curve at ci's level.
func (ci CellID) Prev() CellID {
	return CellID(uint64(ci) - ci.lsb()<<1)
}

// stepShift returns the bit shift that turns a step count at ci's level
// into a raw id delta: advancing by one step adds 2*lsb(ci) to the id.
func (ci CellID) stepShift() uint {
	return uint(2*(MaxLevel-ci.Level()) + 1)
}

// Advance returns the cell reached by moving steps positions along the
// Hilbert curve at ci's level, clamped so the result stays within
// [CellIDBegin(level), CellIDEnd(level)].
func (ci CellID) Advance(steps int64) CellID {
	if steps == 0 {
		return ci
	}
	shift := ci.stepShift()
	if steps < 0 {
		minSteps := -int64(uint64(ci) >> shift)
		if steps < minSteps {
			steps = minSteps
		}
	} else {
		maxSteps := int64((wrapOffset + ci.lsb() - uint64(ci)) >> shift)
		if steps > maxSteps {
			steps = maxSteps
		}
	}
	// The shift of a (possibly negative) step count must be done in
	// unsigned arithmetic to avoid relying on signed-shift behavior.
	return CellID(uint64(ci) + (uint64(steps) << shift))
}

// DistanceFromBegin returns the number of steps along the Hilbert curve
// at ci's level between CellIDBegin(ci.Level()) and ci.
func (ci CellID) DistanceFromBegin() int64 {
	return int64(uint64(ci) >> ci.stepShift())
}

// AdvanceWrap is like Advance but wraps around instead of clamping: it
// treats the cells at ci's level as a ring rather than a line. ci must be
// a valid cell.
func (ci CellID) AdvanceWrap(steps int64) CellID {
	if steps == 0 {
		return ci
	}
	shift := ci.stepShift()
	if steps < 0 {
		minSteps := -int64(uint64(ci) >> shift)
		if steps < minSteps {
			stepWrap := int64(wrapOffset >> shift)
			steps %= stepWrap
			if steps < minSteps {
				steps += stepWrap
			}
		}
	} else {
		// Unlike Advance, the end-of-level sentinel is never returned.
		maxSteps := int64((wrapOffset - uint64(ci)) >> shift)
		if steps > maxSteps {
			stepWrap := int64(wrapOffset >> shift)
			steps %= stepWrap
			if steps > maxSteps {
				steps -= stepWrap
			}
		}
	}
	return CellID(uint64(ci) + (uint64(steps) << shift))
}

// MaximumTile returns the largest cell c such that c.RangeMin() ==
// ci.RangeMin() and c.RangeMax() < limit, or limit itself if no such cell
// is larger than limit.
//
// This is the tiling primitive used when covering a contiguous range of
// cell ids with the fewest possible cells: starting from ci, shrink it if
// it overruns limit, or grow it for as long as doing so still starts at
// the same range minimum and still fits under limit.
func (ci CellID) MaximumTile(limit CellID) CellID {
	id := ci
	start := id.RangeMin()
	if start >= limit.RangeMin() {
		return limit
	}

	if id.RangeMax() >= limit {
		// id is too large; shrink it. Because start < limit.RangeMin(),
		// this always terminates at or before a leaf cell.
		for {
			id = id.Child(0)
			if id.RangeMax() < limit {
				break
			}
		}
		return id
	}

	// id may be too small; grow it for as long as doing so doesn't
	// change the range minimum or overrun limit.
	for !id.IsFace() {
		parent := id.immediateParent()
		if parent.RangeMin() != start || parent.RangeMax() >= limit {
			break
		}
		id = parent
	}
	return id
}

// GetCommonAncestorLevel returns the level of the deepest cell that is an
// ancestor of (or equal to) both ci and other, or -1 if they lie on
// different faces and so share no ancestor.
func (ci CellID) GetCommonAncestorLevel(other CellID) int {
	x := uint64(ci) ^ uint64(other)
	if l := ci.lsb(); l > x {
		x = l
	}
	if l := other.lsb(); l > x {
		x = l
	}
	// Map the position of the most significant set bit to a level:
	// {0}->30, {1,2}->29, {3,4}->28, ..., {61,62,63}->-1.
	msb := bits.Len64(x) - 1
	level := 60 - msb
	if level < -1 {
		level = -1
	}
	return level >> 1
}
