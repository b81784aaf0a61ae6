package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"block-sandbox/internal/scene"
)

const (
	sphereRings  = 16
	sphereSlices = 16
)

// cached holds the unit mesh and materials for one shape. texturedMtl is used when drawing
// with an albedo texture (same mesh, different shader).
type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
}

// meshes maps shapes to unit meshes: a 1x1x1 cube and a sphere of radius 1. Meshes and the
// two lit shaders are created on first use so GPU resources are allocated after the
// window/OpenGL context exists. Every shape shares the same pair of shaders.
type meshes struct {
	cache       map[scene.Shape]cached
	lit         litShader
	litTextured litShader
	loaded      bool
}

func newMeshes() *meshes {
	return &meshes{cache: make(map[scene.Shape]cached)}
}

func (m *meshes) loadShaders() {
	if m.loaded {
		return
	}
	m.lit = loadLitShader(false)
	m.litTextured = loadLitShader(true)
	m.loaded = true
}

func (m *meshes) get(shape scene.Shape) (cached, bool) {
	if c, ok := m.cache[shape]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch shape {
	case scene.ShapeBox:
		mesh = rl.GenMeshCube(1, 1, 1)
	case scene.ShapeSphere:
		mesh = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	default:
		return cached{}, false
	}
	m.loadShaders()
	mtl := rl.LoadMaterialDefault()
	if m.lit.valid {
		mtl.Shader = m.lit.shader
	}
	texturedMtl := rl.LoadMaterialDefault()
	if albedo := texturedMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if m.litTextured.valid {
		texturedMtl.Shader = m.litTextured.shader
	}
	c := cached{mesh: mesh, mtl: mtl, texturedMtl: texturedMtl}
	m.cache[shape] = c
	return c, true
}

// transform scales the unit mesh to the node geometry and moves it to the node position.
func transform(n *scene.Node) rl.Matrix {
	var sx, sy, sz float32
	switch n.Geometry.Shape {
	case scene.ShapeSphere:
		sx, sy, sz = n.Geometry.Radius, n.Geometry.Radius, n.Geometry.Radius
	default:
		sx, sy, sz = n.Geometry.Size[0], n.Geometry.Size[1], n.Geometry.Size[2]
	}
	scaleM := rl.MatrixScale(sx, sy, sz)
	transM := rl.MatrixTranslate(n.Position[0], n.Position[1], n.Position[2])
	return rl.MatrixMultiply(scaleM, transM)
}

// draw draws n tinted with its material colour. Nodes without a material are drawn white.
func (m *meshes) draw(n *scene.Node, light *lighting) {
	c, ok := m.get(n.Geometry.Shape)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
		if n.Material != nil {
			albedo.Color = n.Material.Diffuse.RGBA()
		}
	}
	m.lit.apply(light)
	rl.DrawMesh(c.mesh, c.mtl, transform(n))
}

// drawTextured draws n with tex as albedo.
func (m *meshes) drawTextured(n *scene.Node, tex rl.Texture2D, light *lighting) {
	c, ok := m.get(n.Geometry.Shape)
	if !ok {
		return
	}
	rl.SetMaterialTexture(&c.texturedMtl, rl.MapAlbedo, tex)
	m.litTextured.apply(light)
	rl.DrawMesh(c.mesh, c.texturedMtl, transform(n))
}

// unload frees the meshes and the shared shaders. Materials are not unloaded: they only
// point at the shared shaders and raylib's default texture.
func (m *meshes) unload() {
	for shape, c := range m.cache {
		rl.UnloadMesh(&c.mesh)
		delete(m.cache, shape)
	}
	m.lit.unload()
	m.litTextured.unload()
	m.loaded = false
}
