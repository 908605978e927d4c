package clip

import "go3drender/internal/vecmath"

// MaxVerts bounds a clipped polygon: six plane cuts can add at most one
// vertex per cut beyond the starting triangle's three.
const MaxVerts = 10

// Polygon is scratch state for Sutherland-Hodgman clipping: parallel
// vertex and texture-coordinate arrays, sized up front so a single
// polygon never allocates mid-clip.
type Polygon struct {
	Vertices [MaxVerts]vecmath.Vec3
	UVs      [MaxVerts]vecmath.Tex2
	Count    int
}

// NewTriangle seeds a Polygon from a triangle's three vertices and UVs.
func NewTriangle(v0, v1, v2 vecmath.Vec3, uv0, uv1, uv2 vecmath.Tex2) Polygon {
	var p Polygon
	p.Vertices[0], p.Vertices[1], p.Vertices[2] = v0, v1, v2
	p.UVs[0], p.UVs[1], p.UVs[2] = uv0, uv1, uv2
	p.Count = 3
	return p
}

// ClipAgainstPlane clips p against a single plane using Sutherland-
// Hodgman and returns the resulting polygon. The input polygon is
// unchanged; an empty result (Count == 0) means nothing survived.
func ClipAgainstPlane(p Polygon, plane FrustumPlane) Polygon {
	var out Polygon
	if p.Count == 0 {
		return out
	}

	for i := 0; i < p.Count; i++ {
		current := p.Vertices[i]
		currentUV := p.UVs[i]
		next := p.Vertices[(i+1)%p.Count]
		nextUV := p.UVs[(i+1)%p.Count]

		dCurrent := plane.Normal.Dot(current.Sub(plane.Point))
		dNext := plane.Normal.Dot(next.Sub(plane.Point))

		if dCurrent*dNext < 0 {
			t := dCurrent / (dCurrent - dNext)
			out.append(lerpVec3(current, next, t), vecmath.Tex2Lerp(currentUV, nextUV, t))
		}
		if dNext >= 0 {
			out.append(next, nextUV)
		}
	}

	return out
}

// ClipPolygon runs p through all six frustum planes in order, returning
// the final clipped polygon (Count == 0 if nothing survived).
func ClipPolygon(p Polygon, planes [NumPlanes]FrustumPlane) Polygon {
	for _, plane := range planes {
		p = ClipAgainstPlane(p, plane)
		if p.Count == 0 {
			break
		}
	}
	if p.Count < 3 {
		p.Count = 0
	}
	return p
}

func (p *Polygon) append(v vecmath.Vec3, uv vecmath.Tex2) {
	if p.Count >= MaxVerts {
		return
	}
	p.Vertices[p.Count] = v
	p.UVs[p.Count] = uv
	p.Count++
}

func lerpVec3(a, b vecmath.Vec3, t float32) vecmath.Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}
