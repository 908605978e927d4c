package raster

import "go3drender/internal/scene"

// Vertex is a single rasterizer-ready vertex: screen-space (x,y), the
// NDC z and original (pre-divide) w carried for depth testing and
// perspective-correct interpolation, and a texture coordinate.
type Vertex struct {
	X, Y int32
	Z, W float32
	U, V float32
}

const (
	solidEpsilon    = 1e-5
	texturedEpsilon = 1e-6
)

// sortByY returns v0,v1,v2 reordered so Y is ascending, preserving the
// X/Z/W/U/V alignment of each swapped vertex.
func sortByY(v0, v1, v2 Vertex) (Vertex, Vertex, Vertex) {
	if v0.Y > v1.Y {
		v0, v1 = v1, v0
	}
	if v1.Y > v2.Y {
		v1, v2 = v2, v1
	}
	if v0.Y > v1.Y {
		v0, v1 = v1, v0
	}
	return v0, v1, v2
}

// barycentric returns the signed-area barycentric weights of p against
// triangle a,b,c, plus the signed area itself (zero for a degenerate
// triangle — callers must check before dividing).
func barycentric(a, b, c, p [2]float32) (alpha, beta, gamma, areaABC float32) {
	areaABC = (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	if areaABC == 0 {
		return 0, 0, 0, 0
	}
	cb0, cb1 := c[0]-b[0], c[1]-b[1]
	pb0, pb1 := p[0]-b[0], p[1]-b[1]
	alpha = (cb0*pb1 - pb0*cb1) / areaABC

	ca0, ca1 := c[0]-a[0], c[1]-a[1]
	pa0, pa1 := p[0]-a[0], p[1]-a[1]
	beta = (pa0*ca1 - ca0*pa1) / areaABC

	gamma = 1 - alpha - beta
	return
}

// RasterizeTriangle rasterizes a flat-shaded, untextured triangle:
// color is the already light-modulated face color for every pixel that
// passes the depth test.
func RasterizeTriangle(fb *FrameBuffer, v0, v1, v2 Vertex, color uint32) {
	rasterize(fb, v0, v1, v2, solidEpsilon, func(x, y int, a, b, g float32) {
		drawSolidPixel(fb, x, y, a, b, g, v0, v1, v2, color)
	})
}

// RasterizeTriangleTextured rasterizes a triangle sampling tex with
// perspective-correct UVs. If tex is nil it falls back to the solid
// color, matching the pipeline's hasUV-fallback convention.
func RasterizeTriangleTextured(fb *FrameBuffer, v0, v1, v2 Vertex, tex *scene.Texture, color uint32) {
	if tex == nil {
		RasterizeTriangle(fb, v0, v1, v2, color)
		return
	}
	rasterize(fb, v0, v1, v2, texturedEpsilon, func(x, y int, a, b, g float32) {
		drawTexturedPixel(fb, x, y, a, b, g, v0, v1, v2, tex)
	})
}

// rasterize implements the flat-bottom/flat-top scanline split shared
// by the solid and textured paths, calling fill for every candidate
// pixel inside each scanline's x-span.
func rasterize(fb *FrameBuffer, v0, v1, v2 Vertex, eps float32, fill func(x, y int, alpha, beta, gamma float32)) {
	v0, v1, v2 = sortByY(v0, v1, v2)
	v0.V, v1.V, v2.V = 1-v0.V, 1-v1.V, 1-v2.V

	a := [2]float32{float32(v0.X), float32(v0.Y)}
	b := [2]float32{float32(v1.X), float32(v1.Y)}
	c := [2]float32{float32(v2.X), float32(v2.Y)}

	pixelFill := func(x, y int) {
		alpha, beta, gamma, areaABC := barycentric(a, b, c, [2]float32{float32(x), float32(y)})
		if areaABC == 0 {
			return
		}
		if alpha < -eps || beta < -eps || gamma < -eps {
			return
		}
		fill(x, y, alpha, beta, gamma)
	}

	if v1.Y != v0.Y {
		invY10 := 1.0 / float32(v1.Y-v0.Y)
		invY20 := 1.0 / float32(v2.Y-v0.Y)
		for y := int(v0.Y); y <= int(v1.Y); y++ {
			xStart := float32(v1.X) + (float32(y)-float32(v1.Y))*(float32(v1.X)-float32(v0.X))*invY10
			xEnd := float32(v0.X) + (float32(y)-float32(v0.Y))*(float32(v2.X)-float32(v0.X))*invY20
			if xStart > xEnd {
				xStart, xEnd = xEnd, xStart
			}
			for x := int(xStart); x <= int(xEnd); x++ {
				pixelFill(x, y)
			}
		}
	}

	if v2.Y != v1.Y {
		invY21 := 1.0 / float32(v2.Y-v1.Y)
		invY20 := 1.0 / float32(v2.Y-v0.Y)
		for y := int(v1.Y); y <= int(v2.Y); y++ {
			xStart := float32(v1.X) + (float32(y)-float32(v1.Y))*(float32(v2.X)-float32(v1.X))*invY21
			xEnd := float32(v0.X) + (float32(y)-float32(v0.Y))*(float32(v2.X)-float32(v0.X))*invY20
			if xStart > xEnd {
				xStart, xEnd = xEnd, xStart
			}
			for x := int(xStart); x <= int(xEnd); x++ {
				pixelFill(x, y)
			}
		}
	}
}

func drawSolidPixel(fb *FrameBuffer, x, y int, alpha, beta, gamma float32, v0, v1, v2 Vertex, color uint32) {
	reciprocalW := alpha/v0.W + beta/v1.W + gamma/v2.W
	depth := 1 - reciprocalW
	if depth >= fb.ZBufferAt(x, y) {
		return
	}
	fb.DrawPixel(x, y, color)
	fb.UpdateZBufferAt(x, y, depth)
}

func drawTexturedPixel(fb *FrameBuffer, x, y int, alpha, beta, gamma float32, v0, v1, v2 Vertex, tex *scene.Texture) {
	idx := y*fb.Width + x
	if idx < 0 || idx >= fb.Width*fb.Height {
		return
	}

	reciprocalW := alpha/v0.W + beta/v1.W + gamma/v2.W
	depth := 1 - reciprocalW
	if depth >= fb.ZBufferAt(x, y) {
		return
	}

	interpU := alpha*v0.U/v0.W + beta*v1.U/v1.W + gamma*v2.U/v2.W
	interpV := alpha*v0.V/v0.W + beta*v1.V/v1.W + gamma*v2.V/v2.W
	u := interpU / reciprocalW
	v := interpV / reciprocalW

	color := SampleTexture(tex, u, v)
	fb.DrawPixel(x, y, color)
	fb.UpdateZBufferAt(x, y, depth)
}
