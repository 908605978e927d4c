// Package postprocess composites independently-rendered frames into a
// single output image. This never touches a live per-frame core render
// pass — every input frame already went through its own complete
// pipeline.RenderFrame call.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"go3drender/internal/raster"
)

// ToNRGBA converts a framebuffer's packed 0xAARRGGBB pixels into a
// standard image.NRGBA for use with the image/draw resize pipeline.
func ToNRGBA(fb *raster.FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.Color[y*fb.Width+x]
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8((c >> 16) & 0xFF)
			img.Pix[i+1] = uint8((c >> 8) & 0xFF)
			img.Pix[i+2] = uint8(c & 0xFF)
			img.Pix[i+3] = uint8((c >> 24) & 0xFF)
		}
	}
	return img
}

// ContactSheet lays out frames left-to-right, top-to-bottom into a grid
// of cellSize×cellSize thumbnails, resizing each with a CatmullRom
// filter (smoother than nearest, cheaper than Lanczos). cols is the
// number of columns; rows is derived from len(frames).
func ContactSheet(frames []*raster.FrameBuffer, cols, cellSize int) *image.NRGBA {
	if len(frames) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	rows := (len(frames) + cols - 1) / cols

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*cellSize, rows*cellSize))
	for i, fb := range frames {
		src := ToNRGBA(fb)

		col := i % cols
		row := i / cols
		dstRect := image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)

		draw.CatmullRom.Scale(sheet, dstRect, src, src.Bounds(), draw.Src, nil)
	}
	return sheet
}
