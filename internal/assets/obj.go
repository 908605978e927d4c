package assets

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go3drender/internal/scene"
	"go3drender/internal/vecmath"
)

// LoadOBJ parses a Wavefront .obj file into vertices and faces. Only
// `v` and `f` lines are interpreted; `vt`/`vn` and everything else is
// ignored except that `vt` entries are kept to resolve the UV each
// face's `f` line references. Indices are 1-based on disk and are
// converted to 0-based before being stored on a Face.
func LoadOBJ(path string, tex scene.TextureHandle) (*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()

	var vertices []vecmath.Vec3
	var texCoords []vecmath.Tex2
	var faces []scene.Face

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("assets: %s:%d: %w", path, lineNo, err)
			}
			vertices = append(vertices, v)
		case "vt":
			uv, err := parseTex2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("assets: %s:%d: %w", path, lineNo, err)
			}
			texCoords = append(texCoords, uv)
		case "f":
			face, ok := parseFace(fields[1:], len(vertices), texCoords)
			if !ok {
				continue // malformed face line: skip, don't abort the load
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("assets: scan %s: %w", path, err)
	}

	name := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		name = path[i+1:]
	}
	return scene.NewMesh(name, vertices, faces, tex), nil
}

func parseVec3(fields []string) (vecmath.Vec3, error) {
	if len(fields) < 3 {
		return vecmath.Vec3{}, fmt.Errorf("vertex line has %d fields, want 3", len(fields))
	}
	var v vecmath.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return vecmath.Vec3{}, fmt.Errorf("parse vertex component %q: %w", fields[i], err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseTex2(fields []string) (vecmath.Tex2, error) {
	if len(fields) < 2 {
		return vecmath.Tex2{}, fmt.Errorf("texcoord line has %d fields, want 2", len(fields))
	}
	u, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return vecmath.Tex2{}, fmt.Errorf("parse u %q: %w", fields[0], err)
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return vecmath.Tex2{}, fmt.Errorf("parse v %q: %w", fields[1], err)
	}
	return vecmath.Tex2{U: float32(u), V: float32(v)}, nil
}

// parseFace reads a `f a/ta/na b/tb/nb c/tc/nc` line. Only the vertex
// and texture-coordinate indices are used; normal indices are ignored.
// Color defaults to opaque white since Wavefront .obj has no per-face
// color field; a caller wanting tinted faces sets Face.Color afterward.
func parseFace(fields []string, vertexCount int, texCoords []vecmath.Tex2) (scene.Face, bool) {
	if len(fields) != 3 {
		return scene.Face{}, false
	}

	face := scene.Face{Color: 0xFFFFFFFF}
	indices := [3]*uint32{&face.A, &face.B, &face.C}
	uvs := [3]*vecmath.Tex2{&face.AUV, &face.BUV, &face.CUV}

	for i, tok := range fields {
		parts := strings.Split(tok, "/")
		vIdx, err := strconv.Atoi(parts[0])
		if err != nil || vIdx < 1 || vIdx > vertexCount {
			return scene.Face{}, false
		}
		*indices[i] = uint32(vIdx - 1)

		if len(parts) >= 2 && parts[1] != "" {
			tIdx, err := strconv.Atoi(parts[1])
			if err == nil && tIdx >= 1 && tIdx <= len(texCoords) {
				*uvs[i] = texCoords[tIdx-1]
			}
		}
	}

	return face, true
}
