// Package objfile parses Wavefront OBJ text into a nested shape
// group: vertices and normals accumulate as the file is read, faces
// fan-triangulate into flat or smooth Triangle objects, and named
// groups ("g") become subgroups of the returned root.
package objfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jumballaya/raytracer/pkg/math3d"
	"github.com/jumballaya/raytracer/pkg/shape"
)

// Parser holds the accumulated state of an in-progress OBJ parse.
type Parser struct {
	vertices []math3d.Point
	normals  []math3d.Vector

	defaultGroup []*shape.Object
	namedGroups  map[string][]*shape.Object
	groupOrder   []string

	LinesIgnored int
}

// newParser returns a Parser ready to read from the start of a file.
func newParser() *Parser {
	return &Parser{
		namedGroups: make(map[string][]*shape.Object),
	}
}

// Parse reads OBJ text from r and returns the resulting root group.
func Parse(r io.Reader) (*shape.Object, error) {
	p := newParser()
	if err := p.Read(r); err != nil {
		return nil, err
	}
	return p.ToGroup(), nil
}

// Load reads and parses the OBJ file at path, surfacing any I/O error
// to the caller rather than catching it.
func Load(path string) (*shape.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Read tokenizes every line of r, dispatching on the leading
// directive. Malformed or unrecognized lines increment LinesIgnored
// rather than aborting the parse.
func (p *Parser) Read(r io.Reader) error {
	currentGroup := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			pt, ok := parsePoint(fields[1:])
			if !ok {
				p.LinesIgnored++
				continue
			}
			p.vertices = append(p.vertices, pt)

		case "vn":
			v, ok := parseVector(fields[1:])
			if !ok {
				p.LinesIgnored++
				continue
			}
			p.normals = append(p.normals, v)

		case "f":
			tris, ok := p.parseFace(fields[1:])
			if !ok {
				p.LinesIgnored++
				continue
			}
			p.addTriangles(currentGroup, tris)

		case "g":
			if len(fields) < 2 {
				p.LinesIgnored++
				continue
			}
			currentGroup = fields[1]
			if _, exists := p.namedGroups[currentGroup]; !exists {
				p.namedGroups[currentGroup] = nil
				p.groupOrder = append(p.groupOrder, currentGroup)
			}

		default:
			p.LinesIgnored++
		}
	}

	return scanner.Err()
}

func parsePoint(fields []string) (math3d.Point, bool) {
	v, ok := parseFloats(fields, 3)
	if !ok {
		return math3d.Point{}, false
	}
	return math3d.P3(v[0], v[1], v[2]), true
}

func parseVector(fields []string) (math3d.Vector, bool) {
	v, ok := parseFloats(fields, 3)
	if !ok {
		return math3d.Vector{}, false
	}
	return math3d.V3(v[0], v[1], v[2]), true
}

func parseFloats(fields []string, n int) ([]float64, bool) {
	if len(fields) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// faceVertex is one "i", "i/t", "i//n", or "i/t/n" token: a 1-based
// vertex index and an optional 1-based normal index (0 = absent).
type faceVertex struct {
	vertex int
	normal int
}

func (p *Parser) parseFaceVertex(tok string) (faceVertex, bool) {
	parts := strings.Split(tok, "/")
	vi, err := strconv.Atoi(parts[0])
	if err != nil || vi < 1 || vi > len(p.vertices) {
		return faceVertex{}, false
	}

	fv := faceVertex{vertex: vi}
	if len(parts) == 3 && parts[2] != "" {
		ni, err := strconv.Atoi(parts[2])
		if err != nil || ni < 1 || ni > len(p.normals) {
			return faceVertex{}, false
		}
		fv.normal = ni
	}
	return fv, true
}

// parseFace fan-triangulates a face with an arbitrary number of
// vertices: (v0,v1,v2), (v0,v2,v3), ... A triangle whose three
// vertices all carry a normal becomes a SmoothTriangle; otherwise a
// flat Triangle.
func (p *Parser) parseFace(fields []string) ([]*shape.Object, bool) {
	if len(fields) < 3 {
		return nil, false
	}

	verts := make([]faceVertex, 0, len(fields))
	for _, f := range fields {
		fv, ok := p.parseFaceVertex(f)
		if !ok {
			return nil, false
		}
		verts = append(verts, fv)
	}

	var tris []*shape.Object
	for i := 1; i < len(verts)-1; i++ {
		a, b, c := verts[0], verts[i], verts[i+1]
		tris = append(tris, p.makeTriangle(a, b, c))
	}
	return tris, true
}

func (p *Parser) makeTriangle(a, b, c faceVertex) *shape.Object {
	p1, p2, p3 := p.vertices[a.vertex-1], p.vertices[b.vertex-1], p.vertices[c.vertex-1]

	if a.normal != 0 && b.normal != 0 && c.normal != 0 {
		n1, n2, n3 := p.normals[a.normal-1], p.normals[b.normal-1], p.normals[c.normal-1]
		return shape.NewSmoothTriangle(p1, p2, p3, n1, n2, n3)
	}
	return shape.NewTriangle(p1, p2, p3)
}

func (p *Parser) addTriangles(group string, tris []*shape.Object) {
	if group == "" {
		p.defaultGroup = append(p.defaultGroup, tris...)
		return
	}
	p.namedGroups[group] = append(p.namedGroups[group], tris...)
}

// ToGroup builds the canonical group tree: a single group if exactly
// one named group was produced and there are no ungrouped faces, else
// a root group containing each named subgroup plus the ungrouped
// faces directly.
func (p *Parser) ToGroup() *shape.Object {
	if len(p.groupOrder) == 1 && len(p.defaultGroup) == 0 {
		return shape.NewGroup(math3d.Identity4(), p.namedGroups[p.groupOrder[0]]...)
	}

	children := append([]*shape.Object(nil), p.defaultGroup...)
	for _, name := range p.groupOrder {
		children = append(children, shape.NewGroup(math3d.Identity4(), p.namedGroups[name]...))
	}
	return shape.NewGroup(math3d.Identity4(), children...)
}
