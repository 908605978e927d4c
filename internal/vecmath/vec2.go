package vecmath

import "math"

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2 [2]float32

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a[0] + b[0], a[1] + b[1]} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a[0] - b[0], a[1] - b[1]} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }

func (a Vec2) Dot(b Vec2) float32 { return a[0]*b[0] + a[1]*b[1] }

func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1])))
}

// Normalize returns the unit vector, or v unchanged if its norm is 0.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v[0] / l, v[1] / l}
}
