package raster

import "testing"

func TestRasterizeTriangleFillsInterior(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	v0 := Vertex{X: 2, Y: 2, Z: 0, W: 1}
	v1 := Vertex{X: 17, Y: 2, Z: 0, W: 1}
	v2 := Vertex{X: 10, Y: 17, Z: 0, W: 1}

	RasterizeTriangle(fb, v0, v1, v2, 0xFFFF0000)

	if fb.Color[10*20+10] != 0xFFFF0000 {
		t.Fatalf("center pixel = %#x, want 0xFFFF0000", fb.Color[10*20+10])
	}
	if fb.Color[0] != 0xFF000000 {
		t.Fatalf("corner pixel = %#x, want untouched background", fb.Color[0])
	}
}

func TestRasterizeTriangleRespectsDepthTest(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	near := Vertex{X: 5, Y: 5, Z: 0, W: 1}
	nearB := Vertex{X: 15, Y: 5, Z: 0, W: 1}
	nearC := Vertex{X: 10, Y: 15, Z: 0, W: 1}
	RasterizeTriangle(fb, near, nearB, nearC, 0xFF00FF00)

	far := Vertex{X: 5, Y: 5, Z: 0, W: 2}
	farB := Vertex{X: 15, Y: 5, Z: 0, W: 2}
	farC := Vertex{X: 10, Y: 15, Z: 0, W: 2}
	RasterizeTriangle(fb, far, farB, farC, 0xFFFF0000)

	if fb.Color[10*20+10] != 0xFF00FF00 {
		t.Fatalf("center pixel = %#x, want the nearer green triangle to win", fb.Color[10*20+10])
	}
}

func TestRasterizeTriangleTexturedFallsBackWhenTextureNil(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	v0 := Vertex{X: 2, Y: 2, Z: 0, W: 1}
	v1 := Vertex{X: 17, Y: 2, Z: 0, W: 1}
	v2 := Vertex{X: 10, Y: 17, Z: 0, W: 1}

	RasterizeTriangleTextured(fb, v0, v1, v2, nil, 0xFF112233)

	if fb.Color[10*20+10] != 0xFF112233 {
		t.Fatalf("center pixel = %#x, want fallback color 0xFF112233", fb.Color[10*20+10])
	}
}

func TestSortByYPreservesVertexAlignment(t *testing.T) {
	v0 := Vertex{X: 1, Y: 9, U: 0.1}
	v1 := Vertex{X: 2, Y: 3, U: 0.2}
	v2 := Vertex{X: 3, Y: 6, U: 0.3}

	s0, s1, s2 := sortByY(v0, v1, v2)
	if s0.Y > s1.Y || s1.Y > s2.Y {
		t.Fatalf("not sorted ascending: %v %v %v", s0.Y, s1.Y, s2.Y)
	}
	if s0.U != 0.2 || s1.U != 0.3 || s2.U != 0.1 {
		t.Fatalf("U not carried with its vertex after sort: %v %v %v", s0.U, s1.U, s2.U)
	}
}
