package api

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/voxelsplace/voxmesh/collide"
	"github.com/voxelsplace/voxmesh/mesh"
)

// Topology selects how quads reach the renderer.
type Topology int

const (
	// TopologyPoints writes one point per quad; the renderer expands it using
	// the face tag in TEXCOORD_0.x.
	TopologyPoints Topology = iota
	// TopologyTriangles writes four vertices and two triangles per quad.
	TopologyTriangles
)

func (t Topology) String() string {
	if t == TopologyTriangles {
		return "triangles"
	}
	return "points"
}

func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "points", "point", "":
		return TopologyPoints, nil
	case "triangles", "tris":
		return TopologyTriangles, nil
	}
	return TopologyPoints, fmt.Errorf("unknown topology %q", s)
}

func (t Topology) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Topology) UnmarshalText(b []byte) error {
	v, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

const defaultGenerator = "voxmesh"

// materials are indexed by mesh.Kind.
func materials() []*gltf.Material {
	pbr := func() *gltf.PBRMetallicRoughness {
		return &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float64{1, 1, 1, 1}, MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	}
	return []*gltf.Material{
		mesh.Opaque:      {Name: "opaque", PBRMetallicRoughness: pbr(), AlphaMode: gltf.AlphaOpaque},
		mesh.Translucent: {Name: "translucent", PBRMetallicRoughness: pbr(), AlphaMode: gltf.AlphaBlend, DoubleSided: true},
	}
}

// ModelToGLB encodes m as a binary glTF document. The surface becomes one mesh
// with a primitive per batch range; each collision box becomes a mesh-less
// node centred on the box and scaled to its extents.
func ModelToGLB(m *Model, topo Topology, generator string) ([]byte, error) {
	if generator == "" {
		generator = defaultGenerator
	}
	doc := gltf.NewDocument()
	doc.Asset.Generator = generator

	if m.Mesh != nil && !m.Mesh.IsEmpty() {
		doc.Materials = materials()
		var prims []*gltf.Primitive
		switch topo {
		case TopologyPoints:
			prims = writePoints(doc, m.Mesh)
		case TopologyTriangles:
			prims = writeTriangles(doc, mesh.Triangulate(m.Mesh))
		default:
			return nil, fmt.Errorf("unknown topology %d", topo)
		}
		doc.Meshes = []*gltf.Mesh{{Name: "VoxelMesh", Primitives: prims}}
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "VoxelMesh", Mesh: gltf.Index(0)})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	for i, b := range m.Boxes {
		doc.Nodes = append(doc.Nodes, colliderNode(i, b))
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writePoints(doc *gltf.Document, m *mesh.Mesh) []*gltf.Primitive {
	positions := make([][3]float32, m.Len())
	uvs := make([][2]float32, m.Len())
	for i := range positions {
		positions[i] = m.Positions[i]
		uvs[i] = m.UVs[i]
	}
	posAccessor := modeler.WritePosition(doc, positions)
	colorAccessor := modeler.WriteColor(doc, m.Colors)
	uvAccessor := modeler.WriteTextureCoord(doc, uvs)

	prims := make([]*gltf.Primitive, 0, len(m.Ranges))
	for _, r := range m.Ranges {
		indicesAccessor := modeler.WriteIndices(doc, r.Indices())
		prims = append(prims, &gltf.Primitive{
			Attributes: map[string]int{
				gltf.POSITION:   posAccessor,
				gltf.COLOR_0:    colorAccessor,
				gltf.TEXCOORD_0: uvAccessor,
			},
			Indices:  gltf.Index(indicesAccessor),
			Material: gltf.Index(int(r.Kind)),
			Mode:     gltf.PrimitivePoints,
		})
	}
	return prims
}

func writeTriangles(doc *gltf.Document, t *mesh.TriMesh) []*gltf.Primitive {
	positions := make([][3]float32, len(t.Positions))
	normals := make([][3]float32, len(t.Normals))
	for i := range positions {
		positions[i] = t.Positions[i]
		normals[i] = t.Normals[i]
	}
	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, t.Colors)

	prims := make([]*gltf.Primitive, 0, len(t.Ranges))
	for _, r := range t.Ranges {
		indicesAccessor := modeler.WriteIndices(doc, t.RangeIndices(r))
		prims = append(prims, &gltf.Primitive{
			Attributes: map[string]int{
				gltf.POSITION: posAccessor,
				gltf.NORMAL:   normalAccessor,
				gltf.COLOR_0:  colorAccessor,
			},
			Indices:  gltf.Index(indicesAccessor),
			Material: gltf.Index(int(r.Kind)),
		})
	}
	return prims
}

func colliderNode(i int, b collide.Box) *gltf.Node {
	return &gltf.Node{
		Name:        fmt.Sprintf("collider_%d", i),
		Translation: vec64(b.Center()),
		Scale:       vec64(b.Size()),
		Extras: map[string]any{
			"collider": "box",
			"origin":   b.Origin,
			"extents":  b.Extents,
		},
	}
}

// vec64 widens a box vector to the glTF node transform precision.
func vec64(v mgl32.Vec3) [3]float64 {
	return [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
}
