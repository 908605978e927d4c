package batch

import (
	"math"
	"testing"

	"go3drender/internal/camera"
	"go3drender/internal/light"
	"go3drender/internal/pipeline"
	"go3drender/internal/scene"
	"go3drender/internal/vecmath"
)

func testMesh() *scene.Mesh {
	verts := []vecmath.Vec3{
		{-1, -1, 0}, {1, -1, 0}, {0, 1, 0},
	}
	faces := []scene.Face{
		{A: 0, B: 1, C: 2, Color: 0xFFFFFFFF},
	}
	return scene.NewMesh("tri", verts, faces, scene.NoTexture)
}

func TestRenderTurntableProducesOneFramePerAngle(t *testing.T) {
	world := scene.NewWorld(camera.NewCamera(vecmath.Vec3{}))
	world.Light = light.NewLight(vecmath.Vec3{0, 0, 1})

	cfg := Config{
		Mesh:       testMesh(),
		World:      world,
		Width:      16,
		Height:     16,
		FovY:       1.0,
		ZNear:      0.1,
		ZFar:       50,
		Radius:     5,
		RenderMode: pipeline.FillTriangle,
		CullMode:   pipeline.CullNone,
		Workers:    4,
	}
	angles := []float32{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}

	frames := RenderTurntable(cfg, angles)

	if len(frames) != len(angles) {
		t.Fatalf("len(frames) = %d, want %d", len(frames), len(angles))
	}
	for i, f := range frames {
		if f.Angle != angles[i] {
			t.Fatalf("frames[%d].Angle = %v, want %v (order must match input)", i, f.Angle, angles[i])
		}
		if f.FB == nil || f.FB.Width != 16 || f.FB.Height != 16 {
			t.Fatalf("frames[%d].FB not a fresh 16x16 buffer", i)
		}
	}
}

func TestRenderTurntableDoesNotMutateSourceMesh(t *testing.T) {
	mesh := testMesh()
	world := scene.NewWorld(camera.NewCamera(vecmath.Vec3{}))
	world.Light = light.NewLight(vecmath.Vec3{0, 0, 1})

	before := mesh.Rotation
	cfg := Config{
		Mesh: mesh, World: world,
		Width: 8, Height: 8,
		FovY: 1.0, ZNear: 0.1, ZFar: 50, Radius: 5,
		RenderMode: pipeline.FillTriangle, CullMode: pipeline.CullNone,
		Workers: 4,
	}
	RenderTurntable(cfg, []float32{0, 1, 2, 3})

	if mesh.Rotation != before {
		t.Fatalf("source mesh Rotation mutated by RenderTurntable: %v != %v", mesh.Rotation, before)
	}
}

func TestOrbitPositionMatchesRadius(t *testing.T) {
	p := orbitPosition(2, 0)
	if p[0] != 0 || p[2] != -2 {
		t.Fatalf("orbitPosition(2, 0) = %v, want (0, 0, -2)", p)
	}
}
