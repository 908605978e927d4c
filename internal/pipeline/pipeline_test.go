package pipeline

import (
	"testing"

	"go3drender/internal/camera"
	"go3drender/internal/light"
	"go3drender/internal/raster"
	"go3drender/internal/scene"
	"go3drender/internal/vecmath"
)

func countNonBackground(fb *raster.FrameBuffer) int {
	n := 0
	for _, c := range fb.Color {
		if c != 0xFF000000 {
			n++
		}
	}
	return n
}

func newTestPipeline(w, h int) *Pipeline {
	fb := raster.NewFrameBuffer(w, h)
	world := scene.NewWorld(camera.NewCamera(vecmath.Vec3{0, 0, 0}))
	world.Light = light.NewLight(vecmath.Vec3{0, 0, 1})
	return New(fb, world, 1.0, float32(w)/float32(h), 1.0, 50.0)
}

func TestBackfaceCullingDropsAwayFacingTriangle(t *testing.T) {
	p := newTestPipeline(100, 100)
	// Light the triangle's away-facing side, so that when it is drawn it
	// is not shaded to pure black (the clear color).
	p.World.Light = light.NewLight(vecmath.Vec3{0, 0, -1})

	// A triangle in front of the camera (at z=5) whose winding makes its
	// normal point away from the origin.
	mesh := scene.NewMesh("tri", []vecmath.Vec3{
		{-1, -1, 5},
		{1, -1, 5},
		{0, 1, 5},
	}, []scene.Face{
		{A: 0, B: 1, C: 2, Color: 0xFFFFFFFF},
	}, scene.NoTexture)
	p.World.AddMesh(mesh)

	p.CullMode = CullBackface
	p.RenderMode = FillTriangle
	p.RenderFrame()
	culled := countNonBackground(p.FB)

	p.CullMode = CullNone
	p.RenderFrame()
	unculled := countNonBackground(p.FB)

	if culled != 0 {
		t.Fatalf("BACKFACE culling left %d lit pixels, want 0", culled)
	}
	if unculled == 0 {
		t.Fatalf("CullNone produced 0 lit pixels, want >0")
	}
}

func TestShadingCinematicProducesDifferentColorThanLambertian(t *testing.T) {
	mesh := scene.NewMesh("tri", []vecmath.Vec3{
		{-1, -1, 5},
		{1, -1, 5},
		{0, 1, 5},
	}, []scene.Face{
		{A: 0, B: 1, C: 2, Color: 0xFFFFFFFF},
	}, scene.NoTexture)

	lambertian := newTestPipeline(50, 50)
	lambertian.World.AddMesh(mesh)
	lambertian.CullMode = CullNone
	lambertian.RenderMode = FillTriangle
	lambertian.RenderFrame()

	cinematic := newTestPipeline(50, 50)
	cinematic.World.AddMesh(mesh)
	cinematic.CullMode = CullNone
	cinematic.RenderMode = FillTriangle
	cinematic.Shading = ShadingCinematic
	cinematic.RenderFrame()

	if countNonBackground(cinematic.FB) == 0 {
		t.Fatalf("ShadingCinematic produced 0 lit pixels, want >0")
	}

	same := true
	for i := range lambertian.FB.Color {
		if lambertian.FB.Color[i] != cinematic.FB.Color[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("ShadingCinematic produced an identical frame to ShadingLambertian, want a different lit result")
	}
}

func TestPerspectiveCorrectUVMidpointIsForeshortened(t *testing.T) {
	// A top edge from a near vertex (w=1, u=0) to a far vertex (w=2,
	// u=1). Perspective-correct interpolation at the screen-space
	// midpoint must pull u toward the near (smaller-w) side, away from
	// the naive non-perspective 0.5.
	v0 := raster.Vertex{X: 0, Y: 0, Z: 0, W: 1, U: 0, V: 0}
	v1 := raster.Vertex{X: 100, Y: 0, Z: 0, W: 2, U: 1, V: 0}
	v2 := raster.Vertex{X: 100, Y: 100, Z: 0, W: 2, U: 1, V: 1}

	alpha, beta, gamma, area := barycentricFor(v0, v1, v2, 50, 0)
	if area == 0 {
		t.Fatalf("degenerate triangle in test setup")
	}

	reciprocalW := alpha/v0.W + beta/v1.W + gamma/v2.W
	interpU := alpha*v0.U/v0.W + beta*v1.U/v1.W + gamma*v2.U/v2.W
	u := interpU / reciprocalW

	if u >= 0.5 {
		t.Fatalf("perspective-correct u at the screen midpoint = %v, want < 0.5 (foreshortened toward the near vertex)", u)
	}
	if u <= 0 {
		t.Fatalf("perspective-correct u at the screen midpoint = %v, want > 0", u)
	}
}

// barycentricFor mirrors the rasterizer's barycentric formula for a
// screen-space point against a,b,c without going through the
// unexported rasterize() pixel loop.
func barycentricFor(a, b, c raster.Vertex, px, py float32) (alpha, beta, gamma, area float32) {
	ax, ay := float32(a.X), float32(a.Y)
	bx, by := float32(b.X), float32(b.Y)
	cx, cy := float32(c.X), float32(c.Y)

	area = (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	if area == 0 {
		return 0, 0, 0, 0
	}
	alpha = ((cx-bx)*(py-by) - (px-bx)*(cy-by)) / area
	beta = ((px-ax)*(cy-ay) - (cx-ax)*(py-ay)) / area
	gamma = 1 - alpha - beta
	return
}
