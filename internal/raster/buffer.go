// Package raster owns the framebuffer and the two triangle rasterizers
// (solid and textured) that turn a projected RenderTriangle into pixels.
package raster

// FrameBuffer holds the rendering target as flat slices for cache
// locality: one packed color per pixel and a parallel depth value.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint32  // packed 0xAARRGGBB, len = W*H
	ZBuf   []float32 // 1 - 1/w per pixel, len = W*H, smaller is closer
}

// NewFrameBuffer allocates a color buffer cleared to opaque black and a
// z-buffer cleared to 1.0 (the far value).
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint32, w*h),
		ZBuf:   make([]float32, w*h),
	}
	fb.ClearColor(0xFF000000)
	fb.ClearDepth()
	return fb
}

// ClearColor fills the entire color buffer with c.
func (fb *FrameBuffer) ClearColor(c uint32) {
	for i := range fb.Color {
		fb.Color[i] = c
	}
}

// ClearDepth resets every z-buffer entry to 1.0.
func (fb *FrameBuffer) ClearDepth() {
	for i := range fb.ZBuf {
		fb.ZBuf[i] = 1.0
	}
}

func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// DrawPixel writes c at (x,y), or does nothing if out of bounds.
func (fb *FrameBuffer) DrawPixel(x, y int, c uint32) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.Color[y*fb.Width+x] = c
}

// ZBufferAt returns the stored depth at (x,y), or 1.0 if out of bounds.
func (fb *FrameBuffer) ZBufferAt(x, y int) float32 {
	if !fb.inBounds(x, y) {
		return 1.0
	}
	return fb.ZBuf[y*fb.Width+x]
}

// UpdateZBufferAt stores v at (x,y), or does nothing if out of bounds.
func (fb *FrameBuffer) UpdateZBufferAt(x, y int, v float32) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.ZBuf[y*fb.Width+x] = v
}

// DrawLine draws a DDA line from (x0,y0) to (x1,y1) inclusive, rounding
// each step to the nearest pixel.
func (fb *FrameBuffer) DrawLine(x0, y0, x1, y1 int, c uint32) {
	deltaX := x1 - x0
	deltaY := y1 - y0

	longest := abs(deltaX)
	if abs(deltaY) > longest {
		longest = abs(deltaY)
	}
	if longest == 0 {
		fb.DrawPixel(x0, y0, c)
		return
	}

	xInc := float32(deltaX) / float32(longest)
	yInc := float32(deltaY) / float32(longest)

	curX, curY := float32(x0), float32(y0)
	for i := 0; i <= longest; i++ {
		fb.DrawPixel(roundToInt(curX), roundToInt(curY), c)
		curX += xInc
		curY += yInc
	}
}

// DrawRect fills the w×h rectangle with its top-left at (x,y).
func (fb *FrameBuffer) DrawRect(x, y, w, h int, c uint32) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			fb.DrawPixel(x+col, y+row, c)
		}
	}
}

// DrawGrid writes a dim marker at every 10th row/column intersection,
// skipping the first row and column.
func (fb *FrameBuffer) DrawGrid(c uint32) {
	for y := 0; y < fb.Height; y += 10 {
		if y == 0 {
			continue
		}
		for x := 0; x < fb.Width; x += 10 {
			if x == 0 {
				continue
			}
			fb.DrawPixel(x, y, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func roundToInt(v float32) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}
