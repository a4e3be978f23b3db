package math

// Euler is a rotation expressed as angles in radians about the X, Y and Z
// axes, applied in XYZ order (the matrix is Rx * Ry * Rz).
type Euler struct {
	X, Y, Z float32
}

// Mat4 returns the rotation matrix for e.
func (e Euler) Mat4() Mat4 {
	return RotateX(e.X).Mul(RotateY(e.Y)).Mul(RotateZ(e.Z))
}

// IsZero reports whether e is the identity rotation.
func (e Euler) IsZero() bool {
	return e.X == 0 && e.Y == 0 && e.Z == 0
}
