// Command turntable renders a mesh from a ring of camera angles in
// parallel and composites the frames into a single contact-sheet WebP.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"go3drender/internal/assets"
	"go3drender/internal/batch"
	"go3drender/internal/camera"
	"go3drender/internal/config"
	"go3drender/internal/light"
	"go3drender/internal/pipeline"
	"go3drender/internal/postprocess"
	"go3drender/internal/raster"
	"go3drender/internal/scene"
	"go3drender/internal/vecmath"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	meshPath := flag.String("mesh", "", "Path to a .obj mesh file")
	texturePath := flag.String("texture", "", "Path to a PNG texture file")
	outputPath := flag.String("output", "", "Output contact-sheet WebP path")
	frames := flag.Int("frames", 12, "Number of turntable angles")
	cellSize := flag.Int("cell-size", 128, "Contact-sheet thumbnail size in pixels")
	cols := flag.Int("cols", 4, "Contact-sheet columns")
	radius := flag.Float64("radius", 5.0, "Camera orbit radius")
	workers := flag.Int("workers", 0, "Worker goroutines (default: NumCPU)")
	renderMode := flag.String("mode", "", "textured|textured_wire|fill_triangle|fill_triangle_wire|wire|wire_vertex")
	shading := flag.String("shading", "", "lambertian|cinematic")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		MeshPath:    *meshPath,
		TexturePath: *texturePath,
		OutputPath:  *outputPath,
		Workers:     *workers,
	})
	if *renderMode != "" {
		cfg.RenderMode = *renderMode
	}
	if *shading != "" {
		cfg.Shading = *shading
	}

	if cfg.MeshPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -mesh or config mesh_path is required.")
		os.Exit(1)
	}

	world := scene.NewWorld(camera.NewCamera(vecmath.Vec3{}))
	world.Light = light.NewLight(vecmath.Vec3{0.3, 0.5, 1})

	texHandle := scene.NoTexture
	if cfg.TexturePath != "" {
		tex, err := assets.LoadTexturePNG(cfg.TexturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		texHandle = world.AddTexture(tex)
	}

	mesh, err := assets.LoadOBJ(cfg.MeshPath, texHandle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	angles := make([]float32, *frames)
	for i := range angles {
		angles[i] = float32(i) * 2 * math.Pi / float32(*frames)
	}

	batchCfg := batch.Config{
		Mesh:       mesh,
		World:      world,
		Width:      *cellSize,
		Height:     *cellSize,
		FovY:       float32(cfg.FovY),
		ZNear:      float32(cfg.ZNear),
		ZFar:       float32(cfg.ZFar),
		Radius:     float32(*radius),
		RenderMode: pipeline.ParseRenderMode(cfg.RenderMode),
		CullMode:   pipeline.ParseCullMode(cfg.CullMode),
		Shading:    pipeline.ParseShadingMode(cfg.Shading),
		Workers:    cfg.Workers,
	}

	results := batch.RenderTurntable(batchCfg, angles)

	fbs := make([]*raster.FrameBuffer, len(results))
	for i, r := range results {
		fbs[i] = r.FB
	}

	sheet := postprocess.ContactSheet(fbs, *cols, *cellSize)

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := nativewebp.Encode(out, sheet, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding WebP: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d frames, %dx%d cells)\n", cfg.OutputPath, len(results), *cellSize, *cellSize)
}
