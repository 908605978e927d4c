package pipeline

import (
	"go3drender/internal/clip"
	"go3drender/internal/light"
	"go3drender/internal/scene"
	"go3drender/internal/vecmath"
)

func (p *Pipeline) processMesh(mesh *scene.Mesh, view vecmath.Mat4) {
	world := mesh.WorldMatrix()
	worldView := vecmath.Mat4Mul(view, world)
	planes := clip.InitFrustumPlanes(p.FovX(), p.fovY, p.zNear, p.zFar)

	for _, face := range mesh.Faces {
		if !face.Valid(len(mesh.Vertices)) {
			continue
		}

		a := worldView.MulVec4(mesh.Vertices[face.A].ToVec4(1)).ToVec3()
		b := worldView.MulVec4(mesh.Vertices[face.B].ToVec4(1)).ToVec3()
		c := worldView.MulVec4(mesh.Vertices[face.C].ToVec4(1)).ToVec3()

		normal := b.Sub(a).Normalize().Cross(c.Sub(a).Normalize()).Normalize()
		if normal == (vecmath.Vec3{}) {
			continue // degenerate face
		}

		if p.CullMode == CullBackface {
			cameraRay := vecmath.Vec3{}.Sub(a)
			if normal.Dot(cameraRay) < 0 {
				continue
			}
		}

		polygon := clip.NewTriangle(a, b, c, face.AUV, face.BUV, face.CUV)
		polygon = clip.ClipPolygon(polygon, planes)
		if polygon.Count == 0 {
			continue
		}

		color := p.shade(face.Color, normal)

		for _, tri := range clip.TrianglesFromPolygon(polygon) {
			p.emitTriangle(tri, color, mesh.Texture)
		}
	}
}

// shade applies the active ShadingMode to a face color and normal.
func (p *Pipeline) shade(color uint32, normal vecmath.Vec3) uint32 {
	if p.Shading == ShadingCinematic {
		return light.ShadeCinematic(color, normal, &p.cinematic)
	}
	return light.ApplyIntensity(color, -normal.Dot(p.World.Light.Direction))
}

// emitTriangle projects a camera-space ClipTriangle to screen space and, if
// it survives the w=0 guard, pushes a RenderTriangle.
func (p *Pipeline) emitTriangle(tri clip.ClipTriangle, color uint32, tex scene.TextureHandle) {
	var out RenderTriangle
	out.TexCoords = tri.TexCoords
	out.Color = color
	out.Texture = tex

	for i, v := range tri.Points {
		clipSpace := p.proj.MulVec4(v)
		if clipSpace[3] == 0 {
			return
		}

		x := clipSpace[0] / clipSpace[3]
		y := clipSpace[1] / clipSpace[3]
		z := clipSpace[2] / clipSpace[3]
		y = -y

		x = x*float32(p.FB.Width)/2 + float32(p.FB.Width)/2
		y = y*float32(p.FB.Height)/2 + float32(p.FB.Height)/2

		out.Points[i] = vecmath.Vec4{x, y, z, clipSpace[3]}
	}

	p.push(out)
}
