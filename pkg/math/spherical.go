package math

import "github.com/chewxy/math32"

// Spherical holds spherical coordinates with Y up.
// Phi is the polar angle from +Y, Theta the azimuth around Y measured from +Z.
type Spherical struct {
	Radius float32
	Phi    float32
	Theta  float32
}

// polarEpsilon keeps Phi away from the poles where the view up vector
// becomes parallel to the view direction.
const polarEpsilon = 0.000001

// SphericalFromVec3 converts a Cartesian offset to spherical coordinates.
func SphericalFromVec3(v Vec3) Spherical {
	r := v.Length()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math32.Atan2(v.X, v.Z),
		Phi:    math32.Acos(Clamp(v.Y/r, -1, 1)),
	}
}

// Vec3 converts back to a Cartesian offset.
func (s Spherical) Vec3() Vec3 {
	sinPhi, cosPhi := math32.Sincos(s.Phi)
	sinTheta, cosTheta := math32.Sincos(s.Theta)
	return Vec3{
		X: s.Radius * sinPhi * sinTheta,
		Y: s.Radius * cosPhi,
		Z: s.Radius * sinPhi * cosTheta,
	}
}

// MakeSafe clamps Phi into the open interval (0, Pi).
func (s Spherical) MakeSafe() Spherical {
	s.Phi = Clamp(s.Phi, polarEpsilon, math32.Pi-polarEpsilon)
	return s
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
