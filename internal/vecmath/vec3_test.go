package vecmath

import "testing"

func almostEqual3(a, b Vec3, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

func TestVec3NormalizeZero(t *testing.T) {
	v := Vec3{0, 0, 0}
	got := v.Normalize()
	if got != v {
		t.Fatalf("Normalize(zero) = %v, want unchanged zero vector", got)
	}
}

func TestVec3NormalizeUnitLength(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.Normalize()
	if !almostEqual3(got, Vec3{0.6, 0.8, 0}, 1e-5) {
		t.Fatalf("Normalize({3,4,0}) = %v, want {0.6,0.8,0}", got)
	}
}

func TestVec3RotateXRoundTrip(t *testing.T) {
	v := Vec3{1, 2, 3}
	theta := float32(0.7)
	got := v.RotateX(theta).RotateX(-theta)
	if !almostEqual3(got, v, 1e-5) {
		t.Fatalf("rotate then inverse-rotate = %v, want %v", got, v)
	}
}

func TestVec3CrossDot(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	c := a.Cross(b)
	if c != (Vec3{0, 0, 1}) {
		t.Fatalf("Cross = %v, want {0,0,1}", c)
	}
	if a.Dot(b) != 0 {
		t.Fatalf("Dot of orthogonal vectors = %v, want 0", a.Dot(b))
	}
}
