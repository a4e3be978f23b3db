package math

import "testing"

func TestEmptyBox3(t *testing.T) {
	b := EmptyBox3()
	if !b.IsEmpty() {
		t.Fatal("EmptyBox3 should be empty")
	}
	if b.Center() != (Vec3{}) {
		t.Errorf("empty box center = %v, want origin", b.Center())
	}
	if b.Size() != (Vec3{}) {
		t.Errorf("empty box size = %v, want zero", b.Size())
	}
}

func TestBox3ExpandByPoint(t *testing.T) {
	b := EmptyBox3().
		ExpandByPoint(Vec3{-1, 0, 2}).
		ExpandByPoint(Vec3{3, 4, -2})

	if b.Min != (Vec3{-1, 0, -2}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (Vec3{3, 4, 2}) {
		t.Errorf("Max = %v", b.Max)
	}
	if b.Center() != (Vec3{1, 2, 0}) {
		t.Errorf("Center = %v, want (1, 2, 0)", b.Center())
	}
	if b.Size() != (Vec3{4, 4, 4}) {
		t.Errorf("Size = %v, want (4, 4, 4)", b.Size())
	}
}

func TestBox3Union(t *testing.T) {
	a := Box3{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	b := Box3{Min: Vec3{-1, 2, 0}, Max: Vec3{0, 3, 5}}

	u := a.Union(b)
	want := Box3{Min: Vec3{-1, 0, 0}, Max: Vec3{1, 3, 5}}
	if u != want {
		t.Errorf("Union = %v, want %v", u, want)
	}
	if got := a.Union(EmptyBox3()); got != a {
		t.Errorf("union with empty box should be identity, got %v", got)
	}
	if got := EmptyBox3().Union(a); got != a {
		t.Errorf("empty box union should return other, got %v", got)
	}
}

func TestBox3ApplyMat4(t *testing.T) {
	b := Box3{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}

	moved := b.ApplyMat4(Translate(10, 0, 0))
	if moved.Center() != (Vec3{10, 0, 0}) {
		t.Errorf("translated center = %v, want (10, 0, 0)", moved.Center())
	}

	scaled := b.ApplyMat4(Scale(2, 3, 4))
	if scaled.Size() != (Vec3{4, 6, 8}) {
		t.Errorf("scaled size = %v, want (4, 6, 8)", scaled.Size())
	}

	if !EmptyBox3().ApplyMat4(Translate(1, 2, 3)).IsEmpty() {
		t.Error("transforming an empty box should keep it empty")
	}
}
