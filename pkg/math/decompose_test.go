package math

import (
	"math"
	"testing"
)

func TestEulerRoundTrip(t *testing.T) {
	tests := []Euler{
		{},
		{X: float32(math.Pi / 2)},
		{X: 0.3, Y: -0.4, Z: 1.1},
		{X: -1.2, Y: 0.7, Z: -0.2},
	}
	for _, e := range tests {
		got := EulerFromMat4(e.Mat4())
		if !(Vec3{got.X, got.Y, got.Z}).ApproxEqual(Vec3{e.X, e.Y, e.Z}, 0.0001) {
			t.Errorf("EulerFromMat4(%v.Mat4()) = %v", e, got)
		}
	}
}

func TestEulerFromQuat(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.5)
	e := EulerFromQuat(q)
	if abs(e.X) > 0.0001 || abs(e.Y-0.5) > 0.0001 || abs(e.Z) > 0.0001 {
		t.Errorf("EulerFromQuat(yaw 0.5) = %v", e)
	}
}

func TestDecompose(t *testing.T) {
	wantPos := Vec3{1, -2, 3}
	wantRot := Euler{X: 0.2, Y: 0.4, Z: -0.6}
	wantScale := Vec3{2, 0.5, 3}

	pos, rot, scale := Decompose(Compose(wantPos, wantRot.Mat4(), wantScale))

	if !pos.ApproxEqual(wantPos, 0.0001) {
		t.Errorf("position = %v, want %v", pos, wantPos)
	}
	if !(Vec3{rot.X, rot.Y, rot.Z}).ApproxEqual(Vec3{wantRot.X, wantRot.Y, wantRot.Z}, 0.0001) {
		t.Errorf("rotation = %v, want %v", rot, wantRot)
	}
	if !scale.ApproxEqual(wantScale, 0.0001) {
		t.Errorf("scale = %v, want %v", scale, wantScale)
	}
}

func TestDecomposeMirrored(t *testing.T) {
	_, _, scale := Decompose(Scale(-1, 1, 1))
	if !scale.ApproxEqual(Vec3{-1, 1, 1}, 0.0001) {
		t.Errorf("mirrored scale = %v, want (-1, 1, 1)", scale)
	}
}
