package vecmath

import "math"

// Mat4 is a 4×4 matrix stored row-major: m[r*4+c]. Value type, zero
// heap allocation.
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Scale(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

func Mat4Translate(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[3], m[7], m[11] = x, y, z
	return m
}

// Mat4RotateX builds a rotation matrix around the X axis, angle in radians.
func Mat4RotateX(a float32) Mat4 {
	c, s := float32(math.Cos(float64(a))), float32(math.Sin(float64(a)))
	m := Mat4Identity()
	m[5], m[6] = c, -s
	m[9], m[10] = s, c
	return m
}

// Mat4RotateY builds a rotation matrix around the Y axis, angle in radians.
func Mat4RotateY(a float32) Mat4 {
	c, s := float32(math.Cos(float64(a))), float32(math.Sin(float64(a)))
	m := Mat4Identity()
	m[0], m[2] = c, s
	m[8], m[10] = -s, c
	return m
}

// Mat4RotateZ builds a rotation matrix around the Z axis, angle in radians.
func Mat4RotateZ(a float32) Mat4 {
	c, s := float32(math.Cos(float64(a))), float32(math.Sin(float64(a)))
	m := Mat4Identity()
	m[0], m[1] = c, -s
	m[4], m[5] = s, c
	return m
}

// Mat4Perspective builds a right-handed perspective projection with +z
// into the screen. The resulting w of a transformed point equals its
// input z, so a later perspective divide yields NDC in [-1,1] for
// visible points.
func Mat4Perspective(fovY, aspect, zNear, zFar float32) Mat4 {
	f := float32(1.0 / math.Tan(float64(fovY)/2))
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = zFar / (zFar - zNear)
	m[11] = (-zFar * zNear) / (zFar - zNear)
	m[14] = 1
	return m
}

// Mat4LookAt builds a view matrix from an orthonormal basis formed by
// eye, target and up, composed with a -eye translation.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	zAxis := target.Sub(eye).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		xAxis[0], xAxis[1], xAxis[2], -xAxis.Dot(eye),
		yAxis[0], yAxis[1], yAxis[2], -yAxis.Dot(eye),
		zAxis[0], zAxis[1], zAxis[2], -zAxis.Dot(eye),
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulVec4 returns m × v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}
