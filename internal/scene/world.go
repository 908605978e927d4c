package scene

import (
	"go3drender/internal/camera"
	"go3drender/internal/light"
)

// World is the single owning context the driver threads through the
// render loop each frame: the mesh list, the active light and camera,
// and the texture table faces index into by handle. Nothing in the
// pipeline keeps package-level state; everything hangs off a World.
type World struct {
	Meshes   []*Mesh
	Textures []*Texture
	Light    light.Light
	Camera   *camera.Camera
}

// NewWorld returns an empty World with the given camera.
func NewWorld(cam *camera.Camera) *World {
	return &World{Camera: cam}
}

// AddTexture appends tex to the table and returns its handle.
func (w *World) AddTexture(tex *Texture) TextureHandle {
	w.Textures = append(w.Textures, tex)
	return TextureHandle(len(w.Textures) - 1)
}

// TextureAt resolves a handle to its Texture, or nil for NoTexture or
// an out-of-range handle.
func (w *World) TextureAt(h TextureHandle) *Texture {
	if h < 0 || int(h) >= len(w.Textures) {
		return nil
	}
	return w.Textures[h]
}

// AddMesh appends m to the scene.
func (w *World) AddMesh(m *Mesh) {
	w.Meshes = append(w.Meshes, m)
}
