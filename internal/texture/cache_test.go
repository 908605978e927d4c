package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go3drender/internal/scene"
)

func writeTempPNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 0, B: 0, A: 255})
		}
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return path
}

func TestCacheLoadReturnsSameInstanceOnSecondCall(t *testing.T) {
	path := writeTempPNG(t)
	c := NewCache()

	first, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first != second {
		t.Fatalf("Load() returned different *scene.Texture pointers for the same path")
	}
}

func TestCacheLoadConcurrentCallersShareOneTexture(t *testing.T) {
	path := writeTempPNG(t)
	c := NewCache()

	const n = 16
	results := make([]*scene.Texture, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tex, err := c.Load(path)
			if err != nil {
				t.Errorf("Load: %v", err)
				return
			}
			results[i] = tex
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("concurrent Load calls returned different texture instances")
		}
	}
}

func TestCacheLoadMissingFileReturnsError(t *testing.T) {
	c := NewCache()
	if _, err := c.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("Load() of missing file = nil error, want error")
	}
}
