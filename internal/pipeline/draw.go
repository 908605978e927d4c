package pipeline

import "go3drender/internal/raster"

const vertexMarkerSize = 3

// draw walks the render list and invokes the primitives RenderMode
// calls for: solid/textured fill, wireframe, and vertex markers.
func (p *Pipeline) draw() {
	for _, t := range p.renderList {
		v0, v1, v2 := p.vertices(t)

		switch p.RenderMode {
		case FillTriangle:
			raster.RasterizeTriangle(p.FB, v0, v1, v2, t.Color)
		case FillTriangleWire:
			raster.RasterizeTriangle(p.FB, v0, v1, v2, t.Color)
			p.drawWire(t, 0xFF000000)
		case Textured:
			raster.RasterizeTriangleTextured(p.FB, v0, v1, v2, p.World.TextureAt(t.Texture), t.Color)
		case TexturedWire:
			raster.RasterizeTriangleTextured(p.FB, v0, v1, v2, p.World.TextureAt(t.Texture), t.Color)
			p.drawWire(t, 0xFF000000)
		case Wire:
			p.drawWire(t, t.Color)
		case WireVertex:
			p.drawWire(t, t.Color)
			p.drawVertexMarkers(t)
		}
	}
}

func (p *Pipeline) vertices(t RenderTriangle) (raster.Vertex, raster.Vertex, raster.Vertex) {
	toVertex := func(i int) raster.Vertex {
		pt := t.Points[i]
		uv := t.TexCoords[i]
		return raster.Vertex{
			X: int32(pt[0]),
			Y: int32(pt[1]),
			Z: pt[2],
			W: pt[3],
			U: uv.U,
			V: uv.V,
		}
	}
	return toVertex(0), toVertex(1), toVertex(2)
}

func (p *Pipeline) drawWire(t RenderTriangle, color uint32) {
	x := func(i int) int { return int(t.Points[i][0]) }
	y := func(i int) int { return int(t.Points[i][1]) }

	p.FB.DrawLine(x(0), y(0), x(1), y(1), color)
	p.FB.DrawLine(x(1), y(1), x(2), y(2), color)
	p.FB.DrawLine(x(2), y(2), x(0), y(0), color)
}

func (p *Pipeline) drawVertexMarkers(t RenderTriangle) {
	for _, pt := range t.Points {
		cx, cy := int(pt[0]), int(pt[1])
		p.FB.DrawRect(cx-vertexMarkerSize/2, cy-vertexMarkerSize/2, vertexMarkerSize, vertexMarkerSize, 0xFFFF0000)
	}
}
