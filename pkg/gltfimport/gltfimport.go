// Package gltfimport loads glTF/GLB meshes into the same nested
// shape-group representation produced by the OBJ parser: triangle
// primitives become flat or smooth Triangle objects depending on
// whether per-vertex normals are present, wrapped in one group per
// glTF mesh.
//
// This is a supplement beyond OBJ import: embedded-texture and
// material data are ignored, since textured surfaces are out of
// scope for the shading pipeline this importer feeds.
package gltfimport

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/jumballaya/raytracer/pkg/math3d"
	"github.com/jumballaya/raytracer/pkg/shape"
)

// Load reads the glTF or GLB file at path and returns a group
// containing one subgroup per mesh in the document.
func Load(path string) (*shape.Object, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltfimport: open %s: %w", path, err)
	}

	var meshGroups []*shape.Object
	for _, m := range doc.Meshes {
		tris, err := triangulateMesh(doc, m)
		if err != nil {
			return nil, fmt.Errorf("gltfimport: mesh %q: %w", m.Name, err)
		}
		meshGroups = append(meshGroups, shape.NewGroup(math3d.Identity4(), tris...))
	}

	return shape.NewGroup(math3d.Identity4(), meshGroups...), nil
}

func triangulateMesh(doc *gltf.Document, m *gltf.Mesh) ([]*shape.Object, error) {
	var tris []*shape.Object

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		var normals []math3d.Vector
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = readNormals(doc, normIdx)
			if err != nil {
				return nil, fmt.Errorf("read normals: %w", err)
			}
		}

		indices, err := faceIndices(doc, prim, len(positions))
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}

		for i := 0; i+2 < len(indices); i += 3 {
			ia, ib, ic := indices[i], indices[i+1], indices[i+2]
			tris = append(tris, makeTriangle(positions, normals, ia, ib, ic))
		}
	}

	return tris, nil
}

func makeTriangle(positions []math3d.Point, normals []math3d.Vector, a, b, c int) *shape.Object {
	p1, p2, p3 := positions[a], positions[b], positions[c]

	if a < len(normals) && b < len(normals) && c < len(normals) {
		return shape.NewSmoothTriangle(p1, p2, p3, normals[a], normals[b], normals[c])
	}
	return shape.NewTriangle(p1, p2, p3)
}

func faceIndices(doc *gltf.Document, prim *gltf.Primitive, vertexCount int) ([]int, error) {
	if prim.Indices == nil {
		out := make([]int, vertexCount)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	data, err := readAccessorData(doc, doc.Accessors[*prim.Indices])
	if err != nil {
		return nil, err
	}

	switch v := data.(type) {
	case []uint8:
		return widenIndices(v), nil
	case []uint16:
		return widenIndices(v), nil
	case []uint32:
		return widenIndices(v), nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

func widenIndices[T uint8 | uint16 | uint32](in []T) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

func readPositions(doc *gltf.Document, accessorIdx int) ([]math3d.Point, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}

	out := make([]math3d.Point, len(floats))
	for i, f := range floats {
		out[i] = math3d.P3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return out, nil
}

func readNormals(doc *gltf.Document, accessorIdx int) ([]math3d.Vector, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}

	out := make([]math3d.Vector, len(floats))
	for i, f := range floats {
		out[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return out, nil
}

// readAccessorData reads raw data from an embedded-buffer glTF
// accessor. External (URI-referenced) buffers are not supported: GLB
// is the expected input format.
func readAccessorData(doc *gltf.Document, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.Data == nil {
		return nil, fmt.Errorf("external buffers not supported")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	switch accessor.Type {
	case gltf.AccessorVec3:
		if stride == 0 {
			stride = 12
		}
		out := make([][3]float32, count)
		for i := 0; i < count; i++ {
			offset := start + i*stride
			for j := 0; j < 3; j++ {
				out[i][j] = readFloat32(buffer.Data[offset+j*4:])
			}
		}
		return out, nil

	case gltf.AccessorScalar:
		if stride == 0 {
			switch accessor.ComponentType {
			case gltf.ComponentUbyte:
				stride = 1
			case gltf.ComponentUshort:
				stride = 2
			case gltf.ComponentUint:
				stride = 4
			}
		}
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			out := make([]uint8, count)
			for i := 0; i < count; i++ {
				out[i] = buffer.Data[start+i*stride]
			}
			return out, nil
		case gltf.ComponentUshort:
			out := make([]uint16, count)
			for i := 0; i < count; i++ {
				offset := start + i*stride
				out[i] = uint16(buffer.Data[offset]) | uint16(buffer.Data[offset+1])<<8
			}
			return out, nil
		case gltf.ComponentUint:
			out := make([]uint32, count)
			for i := 0; i < count; i++ {
				offset := start + i*stride
				out[i] = uint32(buffer.Data[offset]) |
					uint32(buffer.Data[offset+1])<<8 |
					uint32(buffer.Data[offset+2])<<16 |
					uint32(buffer.Data[offset+3])<<24
			}
			return out, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
