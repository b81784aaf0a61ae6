// Package render draws a sandbox scene with raylib: every node with geometry as a lit,
// tinted mesh, the ground with a procedural texture, lit by the scene's sun.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"block-sandbox/internal/scene"
	"block-sandbox/internal/texture"
)

// SkyColor is the clear colour behind the scene.
var SkyColor = rl.NewColor(135, 196, 235, 255)

// Logger reports texture generation failures.
type Logger interface {
	Logf(format string, args ...any)
}

// View renders a scene through its camera node. GPU resources are created on the first Draw.
type View struct {
	meshes      *meshes
	textureSize int
	log         Logger

	groundTex    rl.Texture2D
	groundLoaded bool
	groundFor    scene.NodeID
}

// NewView returns a view that textures the ground with a textureSize x textureSize image.
func NewView(textureSize int, log Logger) *View {
	return &View{meshes: newMeshes(), textureSize: textureSize, log: log}
}

// Draw renders every node with geometry as seen by the scene camera. Call between
// BeginDrawing and EndDrawing. Without a camera nothing is drawn.
func (v *View) Draw(s *scene.Scene) {
	cam, ok := s.Lookup(scene.RoleCamera)
	if !ok || cam.Camera == nil {
		return
	}
	ground, _ := s.Lookup(scene.RoleGround)
	v.ensureGroundTexture(ground)

	light := sunLighting(s)
	light.viewPos = cam.Position

	rl.SetClipPlanes(float64(cam.Camera.ZNear), float64(cam.Camera.ZFar))
	rl.BeginMode3D(camera3D(cam))
	for _, n := range s.Nodes() {
		if n.Geometry == nil {
			continue
		}
		if n == ground && v.groundLoaded {
			v.meshes.drawTextured(n, v.groundTex, &light)
			continue
		}
		v.meshes.draw(n, &light)
	}
	rl.EndMode3D()
}

// Close releases GPU resources. Call before the window closes.
func (v *View) Close() {
	v.meshes.unload()
	if v.groundLoaded {
		rl.UnloadTexture(v.groundTex)
		v.groundLoaded = false
	}
}

// ensureGroundTexture generates and uploads the ground texture once per ground node, from
// the ground's own colour. Failure falls back to the flat tint.
func (v *View) ensureGroundTexture(ground *scene.Node) {
	if ground == nil || ground.Material == nil || ground.ID() == v.groundFor {
		return
	}
	v.groundFor = ground.ID()
	if v.groundLoaded {
		rl.UnloadTexture(v.groundTex)
		v.groundLoaded = false
	}
	img, err := texture.Ground(v.textureSize, ground.Material.Diffuse.RGBA())
	if err != nil {
		if v.log != nil {
			v.log.Logf("ground texture: %v", err)
		}
		return
	}
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	if !rl.IsTextureValid(tex) {
		return
	}
	v.groundTex = tex
	v.groundLoaded = true
}

// camera3D converts a camera node to a raylib camera. Up follows the node so the view stays
// defined when looking straight up or down.
func camera3D(n *scene.Node) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(n.Position),
		Target:     vec3(n.Position.Add(n.Forward())),
		Up:         vec3(n.Up()),
		Fovy:       n.Camera.FovY,
		Projection: rl.CameraPerspective,
	}
}

// sunLighting reads direction, colour and intensity from the sun node. Without a sun the
// scene is lit by ambient only.
func sunLighting(s *scene.Scene) lighting {
	sun, ok := s.Lookup(scene.RoleSun)
	if !ok || sun.Light == nil {
		return lighting{lightDir: [3]float32{0, 1, 0}}
	}
	c := sun.Light.Color
	return lighting{
		lightDir:  sun.Forward().Mul(-1),
		color:     [3]float32{c.R, c.G, c.B},
		intensity: mgl32.Clamp(sun.Light.Intensity/fullIntensity, 0, 1) * maxDiffuse,
	}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
