// Package pipeline drives the per-frame transform → cull → clip →
// project → shade → rasterize sequence and owns the render-mode state
// machine the input layer flips between frames.
package pipeline

import (
	"math"

	"go3drender/internal/light"
	"go3drender/internal/raster"
	"go3drender/internal/scene"
	"go3drender/internal/vecmath"
)

// RenderMode selects which primitives the draw stage emits for each
// triangle in the render list. Transitions are driven entirely by
// external input; there is no terminal state.
type RenderMode int

const (
	WireVertex RenderMode = iota
	Wire
	FillTriangle
	FillTriangleWire
	Textured
	TexturedWire
)

// CullMode selects whether backfacing triangles are dropped before
// they reach the render list.
type CullMode int

const (
	CullNone CullMode = iota
	CullBackface
)

// ShadingMode selects which lighting model processMesh applies to a
// face's color before it reaches the render list.
type ShadingMode int

const (
	// ShadingLambertian is the default: t = -dot(normal, light.Direction)
	// fed through light.ApplyIntensity, exactly spec's plain model.
	ShadingLambertian ShadingMode = iota
	// ShadingCinematic runs light.ShadeCinematic's hemisphere-fill +
	// rim + Blinn-Phong-spec + ACES tonemap path instead. Opt-in only;
	// never the default for a freshly-built Pipeline.
	ShadingCinematic
)

// MaxTriangles bounds the per-frame render list; triangles pushed past
// capacity are dropped silently.
const MaxTriangles = 10000

// RenderTriangle is a fully projected triangle ready for rasterization:
// Points carry screen-space x,y, NDC z and the original (pre-divide) w.
type RenderTriangle struct {
	Points    [3]vecmath.Vec4
	TexCoords [3]vecmath.Tex2
	Color     uint32
	Texture   scene.TextureHandle
}

// Pipeline owns the framebuffer, the scene it renders and the
// per-frame render list, plus the projection parameters fixed at init.
type Pipeline struct {
	FB    *raster.FrameBuffer
	World *scene.World

	RenderMode RenderMode
	CullMode   CullMode

	// Shading selects the lighting model processMesh applies; see
	// ShadingMode. Cinematic defaults to light.DefaultCinematicConfig()
	// until overridden via SetCinematicConfig.
	Shading   ShadingMode
	cinematic light.CinematicConfig

	fovY, aspect, zNear, zFar float32
	proj                      vecmath.Mat4

	renderList []RenderTriangle
}

// SetCinematicConfig replaces the CinematicConfig used when
// Shading == ShadingCinematic.
func (p *Pipeline) SetCinematicConfig(c light.CinematicConfig) {
	p.cinematic = c
}

// New builds a Pipeline with the default startup state: TEXTURED render
// mode, BACKFACE culling.
func New(fb *raster.FrameBuffer, world *scene.World, fovY, aspect, zNear, zFar float32) *Pipeline {
	return &Pipeline{
		FB:         fb,
		World:      world,
		RenderMode: Textured,
		CullMode:   CullBackface,
		Shading:    ShadingLambertian,
		cinematic:  light.DefaultCinematicConfig(),
		fovY:       fovY,
		aspect:     aspect,
		zNear:      zNear,
		zFar:       zFar,
		proj:       vecmath.Mat4Perspective(fovY, aspect, zNear, zFar),
		renderList: make([]RenderTriangle, 0, MaxTriangles),
	}
}

// FovX derives the horizontal field of view from FovY and the aspect
// ratio, the same relation init_frustum_planes needs alongside FovY.
func (p *Pipeline) FovX() float32 {
	return float32(math.Atan(math.Tan(float64(p.fovY)/2)*float64(p.aspect))) * 2
}

func (p *Pipeline) push(t RenderTriangle) {
	if len(p.renderList) >= MaxTriangles {
		return
	}
	p.renderList = append(p.renderList, t)
}

// RenderFrame clears the framebuffer, walks every mesh through the
// transform/cull/clip/project/shade stages, then draws the resulting
// render list according to RenderMode.
func (p *Pipeline) RenderFrame() {
	p.FB.ClearColor(0xFF000000)
	p.FB.ClearDepth()
	p.renderList = p.renderList[:0]

	view := p.viewMatrix()
	for _, mesh := range p.World.Meshes {
		p.processMesh(mesh, view)
	}

	p.draw()
}

func (p *Pipeline) viewMatrix() vecmath.Mat4 {
	cam := p.World.Camera
	return vecmath.Mat4LookAt(cam.Position, cam.GetLookAtTarget(), vecmath.Vec3{0, 1, 0})
}
