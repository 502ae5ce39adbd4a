package s2

import "testing"

func TestCellIDFromFaceIJOrigin(t *testing.T) {
	got := cellIDFromFaceIJ(0, 0, 0)
	want := CellID(0x0000000000000001)
	if got != want {
		t.Fatalf("cellIDFromFaceIJ(0,0,0) = %#x, want %#x", uint64(got), uint64(want))
	}
	if got.Level() != MaxLevel {
		t.Errorf("Level() = %d, want %d", got.Level(), MaxLevel)
	}
	// A leaf cell's low-order hex digit is always odd, so no trailing
	// zero digits can be stripped: the token is the full 16 hex digits.
	if got.ToToken() != "0000000000000001" {
		t.Errorf("ToToken() = %q, want %q", got.ToToken(), "0000000000000001")
	}
}

func TestFaceLevelZeroCell(t *testing.T) {
	leaf := cellIDFromFaceIJ(5, 0, 0)
	face := leaf.Parent(0)
	want := CellID(0xb000000000000000)
	if face != want {
		t.Fatalf("face-5 leaf.Parent(0) = %#x, want %#x", uint64(face), uint64(want))
	}
	if face.ToToken() != "b" {
		t.Errorf("ToToken() = %q, want %q", face.ToToken(), "b")
	}
}

func TestIsValid(t *testing.T) {
	if CellID(0).IsValid() {
		t.Error("zero CellID reported valid")
	}
	if !CellIDFromFace(0).IsValid() {
		t.Error("CellIDFromFace(0) reported invalid")
	}
	if CellID(7 << posBits).IsValid() {
		t.Error("face==7 should be invalid")
	}
}

func TestLevelAndLsb(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		id := CellIDFromFacePosLevel(3, 0, level)
		if got := id.Level(); got != level {
			t.Errorf("level %d: Level() = %d", level, got)
		}
		wantLsb := lsbForLevel(level)
		if id.lsb() != wantLsb {
			t.Errorf("level %d: lsb = %#x, want %#x", level, id.lsb(), wantLsb)
		}
	}
}

func TestParentChildRoundTrip(t *testing.T) {
	id := CellIDFromFacePosLevel(2, 0x1234567, 20)
	for _, k := range []int{0, 1, 2, 3} {
		c := id.Child(k)
		if c.Level() != id.Level()+1 {
			t.Fatalf("Child(%d).Level() = %d, want %d", k, c.Level(), id.Level()+1)
		}
		if p := c.Parent(id.Level()); p != id {
			t.Errorf("Child(%d).Parent(%d) = %v, want %v", k, id.Level(), p, id)
		}
		if c.ChildPosition(c.Level()) != k {
			t.Errorf("Child(%d).ChildPosition = %d, want %d", k, c.ChildPosition(c.Level()), k)
		}
	}
}

func TestChildrenMatchChild(t *testing.T) {
	id := CellIDFromFacePosLevel(1, 0xabc, 10)
	ch := id.Children()
	for k := 0; k < 4; k++ {
		if ch[k] != id.Child(k) {
			t.Errorf("Children()[%d] = %v, want %v", k, ch[k], id.Child(k))
		}
	}
}

func TestRangeContains(t *testing.T) {
	id := CellIDFromFacePosLevel(4, 0x55555, 8)
	lo, hi := id.RangeMin(), id.RangeMax()
	if lo > id || id > hi {
		t.Fatalf("id %v not within its own range [%v, %v]", id, lo, hi)
	}
	for k := 0; k < 4; k++ {
		c := id.Child(k)
		if !id.Contains(c) {
			t.Errorf("parent does not contain child %d", k)
		}
		if c.RangeMin() < lo || c.RangeMax() > hi {
			t.Errorf("child %d range escapes parent range", k)
		}
	}
	if !id.Intersects(id) {
		t.Error("cell should intersect itself")
	}
}

func TestStringFormat(t *testing.T) {
	id := CellIDFromFacePosLevel(3, 0, 0).Child(2).Child(1)
	want := "3/21"
	if got := id.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := CellID(6 << posBits).String(); got != "Invalid: c000000000000000" {
		t.Errorf("invalid id String() = %q, want the hex-dump form", got)
	}
}

func TestSentinelGreaterThanAnyValidID(t *testing.T) {
	if Sentinel() <= CellIDFromFacePosLevel(5, 0, MaxLevel) {
		t.Error("Sentinel() should exceed every valid cell id")
	}
}
