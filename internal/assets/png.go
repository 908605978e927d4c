// Package assets loads meshes and textures from disk into the in-memory
// scene types the pipeline reads each frame.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"go3drender/internal/scene"
)

// LoadTexturePNG decodes a PNG file into a scene.Texture with pixels
// packed 0xAARRGGBB, matching the framebuffer format.
func LoadTexturePNG(path string) (*scene.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}

	return toTexture(img), nil
}

func toTexture(src image.Image) *scene.Texture {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]uint32, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pixels[y*w+x] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}

	return &scene.Texture{Width: w, Height: h, Pixels: pixels}
}
