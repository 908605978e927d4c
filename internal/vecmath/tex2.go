package vecmath

// Tex2 is a texture coordinate pair. By convention v is Y-up at input;
// the rasterizer flips it to Y-down before sampling.
type Tex2 struct {
	U, V float32
}

// Tex2Lerp returns the point t of the way from a to b.
func Tex2Lerp(a, b Tex2, t float32) Tex2 {
	return Tex2{
		U: a.U + (b.U-a.U)*t,
		V: a.V + (b.V-a.V)*t,
	}
}
