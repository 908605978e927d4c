// Package scene holds the immutable geometry/texture handles that the
// pipeline reads each frame, plus the mutable per-mesh transform and the
// single owning World context (camera, light, mesh list) the driver
// threads through the render loop instead of scattering globals.
package scene

import "go3drender/internal/vecmath"

// Texture is an immutable RGBA bitmap. Pixels are packed 0xAARRGGBB,
// matching the framebuffer format.
type Texture struct {
	Width, Height int
	Pixels        []uint32
}

// At returns the packed pixel at (x,y), wrapping both axes.
func (t *Texture) At(x, y int) uint32 {
	if t.Width == 0 || t.Height == 0 {
		return 0
	}
	x = ((x % t.Width) + t.Width) % t.Width
	y = ((y % t.Height) + t.Height) % t.Height
	return t.Pixels[y*t.Width+x]
}

// TextureHandle is an index into a World's texture table. Multiple
// meshes/faces may share one handle; the rasterizer only reads.
type TextureHandle int

// NoTexture marks a face/mesh with no texture (solid color fill).
const NoTexture TextureHandle = -1

// Face indexes into its mesh's vertex array and carries its own
// per-vertex UVs and flat color. UVs live on the face, not the vertex,
// so a shared vertex can carry different UVs per face.
type Face struct {
	A, B, C       uint32
	AUV, BUV, CUV vecmath.Tex2
	Color         uint32 // packed 0xAARRGGBB
}

// Mesh is an immutable vertex/face array plus a mutable per-frame
// transform (rotation, scale, translation).
type Mesh struct {
	Name     string
	Vertices []vecmath.Vec3
	Faces    []Face
	Texture  TextureHandle

	Rotation    vecmath.Vec3
	Scale       vecmath.Vec3
	Translation vecmath.Vec3
}

// NewMesh returns a Mesh with identity scale and zeroed rotation/translation.
func NewMesh(name string, vertices []vecmath.Vec3, faces []Face, tex TextureHandle) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Faces:    faces,
		Texture:  tex,
		Scale:    vecmath.Vec3{1, 1, 1},
	}
}

// WorldMatrix builds T · Rx · Ry · Rz · S, the order the pipeline applies
// per-vertex: scale first, then rotate about Z, Y, X, then translate.
func (m *Mesh) WorldMatrix() vecmath.Mat4 {
	s := vecmath.Mat4Scale(m.Scale[0], m.Scale[1], m.Scale[2])
	rx := vecmath.Mat4RotateX(m.Rotation[0])
	ry := vecmath.Mat4RotateY(m.Rotation[1])
	rz := vecmath.Mat4RotateZ(m.Rotation[2])
	t := vecmath.Mat4Translate(m.Translation[0], m.Translation[1], m.Translation[2])
	return vecmath.Mat4Mul(t, vecmath.Mat4Mul(rx, vecmath.Mat4Mul(ry, vecmath.Mat4Mul(rz, s))))
}

// Valid reports whether a face's indices are all within range for the
// owning mesh's vertex array.
func (f *Face) Valid(vertexCount int) bool {
	n := uint32(vertexCount)
	return f.A < n && f.B < n && f.C < n
}
