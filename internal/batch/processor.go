// Package batch renders many independent frames of the same scene in
// parallel — e.g. one frame per turntable angle — using a worker pool.
// Each frame gets its own Pipeline and FrameBuffer; nothing here shares
// mutable per-frame state across goroutines, preserving the single-
// threaded ordering the pipeline's core render loop assumes.
package batch

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go3drender/internal/camera"
	"go3drender/internal/pipeline"
	"go3drender/internal/raster"
	"go3drender/internal/scene"
	"go3drender/internal/vecmath"
)

// Config holds the shared, read-only resources every frame renders
// against.
type Config struct {
	Mesh   *scene.Mesh
	World  *scene.World
	Width  int
	Height int
	FovY   float32
	ZNear  float32
	ZFar   float32
	Radius float32

	RenderMode pipeline.RenderMode
	CullMode   pipeline.CullMode
	Shading    pipeline.ShadingMode

	Workers int
}

// Frame is one turntable frame: the camera's orbit angle and the
// resulting framebuffer.
type Frame struct {
	Angle float32
	FB    *raster.FrameBuffer
}

// RenderTurntable renders one frame per angle in angles, distributing
// work across cfg.Workers goroutines. Results are returned in the same
// order as angles regardless of completion order.
func RenderTurntable(cfg Config, angles []float32) []Frame {
	total := len(angles)
	results := make([]Frame, total)
	var processed atomic.Int64

	start := time.Now()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = renderFrame(cfg, angles[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range angles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(done)

	return results
}

// renderFrame builds a fully independent Pipeline for one angle: its
// own framebuffer, its own camera orbiting at Radius, and a mesh value
// that shares the source mesh's immutable vertex/face slices but owns
// its own transform fields.
func renderFrame(cfg Config, angle float32) Frame {
	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)

	cam := camera.NewCamera(orbitPosition(cfg.Radius, angle))
	cam.RotateYaw(-angle)

	world := scene.NewWorld(cam)
	world.Textures = cfg.World.Textures
	world.Light = cfg.World.Light

	mesh := *cfg.Mesh
	world.AddMesh(&mesh)

	p := pipeline.New(fb, world, cfg.FovY, float32(cfg.Width)/float32(cfg.Height), cfg.ZNear, cfg.ZFar)
	p.RenderMode = cfg.RenderMode
	p.CullMode = cfg.CullMode
	p.Shading = cfg.Shading
	p.RenderFrame()

	return Frame{Angle: angle, FB: fb}
}

func orbitPosition(radius, angle float32) vecmath.Vec3 {
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))
	return vecmath.Vec3{radius * sin, 0, -radius * cos}
}
