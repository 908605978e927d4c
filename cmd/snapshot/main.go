// Command snapshot renders a single frame of a mesh and texture from a
// fixed camera pose and writes it to a WebP file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"go3drender/internal/assets"
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
	outputPath := flag.String("output", "", "Output WebP path")
	width := flag.Int("width", 0, "Render width")
	height := flag.Int("height", 0, "Render height")
	renderMode := flag.String("mode", "", "textured|textured_wire|fill_triangle|fill_triangle_wire|wire|wire_vertex")
	cullMode := flag.String("cull", "", "backface|none")
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
		Width:       *width,
		Height:      *height,
	})
	if *renderMode != "" {
		cfg.RenderMode = *renderMode
	}
	if *cullMode != "" {
		cfg.CullMode = *cullMode
	}
	if *shading != "" {
		cfg.Shading = *shading
	}

	if cfg.MeshPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -mesh or config mesh_path is required.")
		os.Exit(1)
	}

	world := scene.NewWorld(camera.NewCamera(vecmath.Vec3{0, 0, -5}))
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
	world.AddMesh(mesh)

	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	p := pipeline.New(fb, world, float32(cfg.FovY), float32(cfg.Width)/float32(cfg.Height), float32(cfg.ZNear), float32(cfg.ZFar))
	p.RenderMode = pipeline.ParseRenderMode(cfg.RenderMode)
	p.CullMode = pipeline.ParseCullMode(cfg.CullMode)
	p.Shading = pipeline.ParseShadingMode(cfg.Shading)
	p.RenderFrame()

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := nativewebp.Encode(out, postprocess.ToNRGBA(fb), nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding WebP: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", cfg.OutputPath, cfg.Width, cfg.Height)
}
