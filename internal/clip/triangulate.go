package clip

import "go3drender/internal/vecmath"

// MaxPolyTriangles bounds the fan triangulation of a clipped polygon:
// MaxVerts - 2.
const MaxPolyTriangles = MaxVerts - 2

// ClipTriangle is the output of TrianglesFromPolygon: a camera-space
// triangle (still pre-projection — Points carry a 1 in w) ready for the
// pipeline to multiply by the projection matrix.
type ClipTriangle struct {
	Points    [3]vecmath.Vec4
	TexCoords [3]vecmath.Tex2
}

// TrianglesFromPolygon fans a clipped polygon out from its first vertex:
// triangles (V0, Vi, Vi+1) for i = 1..Count-2.
func TrianglesFromPolygon(p Polygon) []ClipTriangle {
	if p.Count < 3 {
		return nil
	}

	out := make([]ClipTriangle, 0, MaxPolyTriangles)
	for i := 1; i < p.Count-1; i++ {
		out = append(out, ClipTriangle{
			Points: [3]vecmath.Vec4{
				p.Vertices[0].ToVec4(1),
				p.Vertices[i].ToVec4(1),
				p.Vertices[i+1].ToVec4(1),
			},
			TexCoords: [3]vecmath.Tex2{p.UVs[0], p.UVs[i], p.UVs[i+1]},
		})
	}
	return out
}
