package light

import (
	"math"

	"go3drender/internal/vecmath"
)

// CinematicConfig is an optional, richer shading model kept alongside
// the flat Lambertian path: hemisphere fill, a rim light and a
// Blinn-Phong specular term, finished with an ACES tonemap. Nothing in
// the core pipeline calls this by default; it exists for tools (e.g.
// the snapshot/turntable commands) that want a less flat look without
// touching the per-frame ApplyIntensity contract.
type CinematicConfig struct {
	LightDir vecmath.Vec3
	RimDir   vecmath.Vec3
	ViewDir  vecmath.Vec3
	HalfMain vecmath.Vec3

	Ambient  float32
	Hemi     float32
	Direct   float32
	Rim      float32
	SpecInt  float32
	SpecPow  float32
	Exposure float32
}

// DefaultCinematicConfig returns a three-light setup: key, rim and a
// sky/ground hemisphere fill.
func DefaultCinematicConfig() CinematicConfig {
	lightDir := vecmath.Vec3{0.45, 0.65, 0.35}.Normalize()
	rimDir := vecmath.Vec3{-0.4, 0.3, -0.55}.Normalize()
	viewDir := vecmath.Vec3{0, 0, -1}.Normalize()
	halfMain := lightDir.Sub(viewDir).Normalize()

	return CinematicConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		ViewDir:  viewDir,
		HalfMain: halfMain,
		Ambient:  0.30,
		Hemi:     0.35,
		Direct:   0.95,
		Rim:      0.35,
		SpecInt:  0.30,
		SpecPow:  16.0,
		Exposure: 1.05,
	}
}

// ComputeShade returns a combined lighting scalar (unclamped, may
// exceed 1) for a face normal.
func (c *CinematicConfig) ComputeShade(normal vecmath.Vec3) float32 {
	ndlMain := abs32(normal.Dot(c.LightDir))
	ndlRim := abs32(normal.Dot(c.RimDir))

	hemi := (1-abs32(normal[1]))*0.5 + 0.5
	hemiLight := hemi * c.Hemi

	ndh := normal.Dot(c.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := float32(math.Pow(float64(ndh), float64(c.SpecPow))) * c.SpecInt

	return c.Ambient + hemiLight + ndlMain*c.Direct + ndlRim*c.Rim + spec
}

// ACESTonemap applies the ACES filmic tonemap curve to a linear value.
func ACESTonemap(x float32) float32 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// ShadeCinematic shades a packed color by a face normal using c, tone
// maps the result through ACES and re-applies a simple gamma, clamping
// each channel to [0,255]. Alpha passes through unchanged.
func ShadeCinematic(color uint32, normal vecmath.Vec3, c *CinematicConfig) uint32 {
	shade := c.ComputeShade(normal) * c.Exposure

	a := color & 0xFF000000
	r := toneChannel(float32((color>>16)&0xFF), shade)
	g := toneChannel(float32((color>>8)&0xFF), shade)
	b := toneChannel(float32(color&0xFF), shade)

	return a | r<<16 | g<<8 | b
}

func toneChannel(c8 float32, shade float32) uint32 {
	linear := float32(math.Pow(float64(c8)/255.0, 2.2)) * shade
	mapped := ACESTonemap(linear)
	srgb := float32(math.Pow(float64(mapped), 1.0/2.2)) * 255.0
	if srgb < 0 {
		srgb = 0
	} else if srgb > 255 {
		srgb = 255
	}
	return uint32(srgb)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
