package math

import "github.com/chewxy/math32"

// EulerFromMat4 extracts XYZ-order Euler angles from the rotation part of m.
// m must be a pure rotation (unit columns).
func EulerFromMat4(m Mat4) Euler {
	// Row-major names: mRC is row R, column C.
	m11, m12, m13 := m[0], m[4], m[8]
	m22, m23 := m[5], m[9]
	m32, m33 := m[6], m[10]

	var e Euler
	e.Y = math32.Asin(Clamp(m13, -1, 1))
	if math32.Abs(m13) < 0.9999999 {
		e.X = math32.Atan2(-m23, m33)
		e.Z = math32.Atan2(-m12, m11)
	} else {
		// Gimbal lock: fold Z into X.
		e.X = math32.Atan2(m32, m22)
		e.Z = 0
	}
	return e
}

// EulerFromQuat converts a quaternion to XYZ-order Euler angles.
func EulerFromQuat(q Quat) Euler {
	return EulerFromMat4(q.ToMat4())
}

// Decompose splits an affine transform into translation, rotation and scale.
// Shear is discarded. A negative determinant is folded into scale.X.
func Decompose(m Mat4) (position Vec3, rotation Euler, scale Vec3) {
	position = Vec3{m[12], m[13], m[14]}

	sx := Vec3{m[0], m[1], m[2]}.Length()
	sy := Vec3{m[4], m[5], m[6]}.Length()
	sz := Vec3{m[8], m[9], m[10]}.Length()
	if determinant3(m) < 0 {
		sx = -sx
	}
	scale = Vec3{sx, sy, sz}

	r := m
	r[12], r[13], r[14] = 0, 0, 0
	if sx != 0 {
		r[0], r[1], r[2] = r[0]/sx, r[1]/sx, r[2]/sx
	}
	if sy != 0 {
		r[4], r[5], r[6] = r[4]/sy, r[5]/sy, r[6]/sy
	}
	if sz != 0 {
		r[8], r[9], r[10] = r[8]/sz, r[9]/sz, r[10]/sz
	}
	rotation = EulerFromMat4(r)
	return position, rotation, scale
}

// determinant3 returns the determinant of the upper 3x3 of m.
func determinant3(m Mat4) float32 {
	return m[0]*(m[5]*m[10]-m[9]*m[6]) -
		m[4]*(m[1]*m[10]-m[9]*m[2]) +
		m[8]*(m[1]*m[6]-m[5]*m[2])
}
