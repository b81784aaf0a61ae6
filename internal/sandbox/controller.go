// Package sandbox builds the initial world and turns gestures into scene mutations:
// tap places a block on the ground, long-press removes a block after a delay, pan turns
// the camera.
package sandbox

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"block-sandbox/internal/config"
	"block-sandbox/internal/gesture"
	"block-sandbox/internal/scene"
	"block-sandbox/internal/schedule"
)

// Logger receives one line per successful mutation.
type Logger interface {
	Logf(format string, args ...any)
}

// Stats is a snapshot for the debug HUD. Angles are in radians.
type Stats struct {
	Blocks          int
	PendingRemovals int
	Yaw, Pitch      float32
}

// Controller owns the sandbox scene and the deferred-removal queue. All methods must be
// called from the main loop.
type Controller struct {
	cfg      config.Config
	scene    *scene.Scene
	queue    *schedule.Queue
	log      Logger
	rng      *rand.Rand
	viewport scene.Viewport
	pending  int
}

// New returns a controller for an empty scene. Call Bootstrap before the first frame.
func New(cfg config.Config, s *scene.Scene, q *schedule.Queue, log Logger) *Controller {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Controller{
		cfg:      cfg,
		scene:    s,
		queue:    q,
		log:      log,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		viewport: scene.Viewport{Width: int(cfg.Window.Width), Height: int(cfg.Window.Height)},
	}
}

// Scene returns the scene the controller mutates.
func (c *Controller) Scene() *scene.Scene {
	return c.scene
}

// SetViewport sets the window size used to project gestures. Call when the window resizes.
func (c *Controller) SetViewport(width, height int) {
	c.viewport = scene.Viewport{Width: width, Height: height}
}

// Bootstrap populates the scene: sun, ground, clouds, camera. Run it once.
func (c *Controller) Bootstrap() error {
	c.addLight()
	c.createGround()
	if err := c.createClouds(); err != nil {
		return errors.Wrap(err, "create clouds")
	}
	c.setupCamera()
	return nil
}

// Bind registers the controller's gesture handlers on r.
func (c *Controller) Bind(r *gesture.Router) []gesture.Handle {
	return []gesture.Handle{
		r.OnTap(c.HandleTap),
		r.OnLongPress(c.HandleLongPress),
		r.OnPan(c.HandlePan),
	}
}

func (c *Controller) addLight() {
	sun := scene.NewNode(scene.RoleSun)
	sun.Light = &scene.Light{
		Kind:      scene.LightDirectional,
		Color:     scene.ColorOf(colornames.White),
		Intensity: c.cfg.Light.Intensity,
	}
	sun.Position = c.cfg.Light.Position
	sun.LookAt(mgl32.Vec3{})
	c.scene.Add(sun)
}

func (c *Controller) createGround() {
	w := c.cfg.World
	ground := scene.NewNode(scene.RoleGround)
	ground.Geometry = scene.Box(w.GroundSize, w.GroundThickness, w.GroundSize)
	ground.Material = &scene.Material{Diffuse: c.randomColor()}
	// Top face at y = 0.
	ground.Position = mgl32.Vec3{0, -w.GroundThickness / 2, 0}
	c.scene.Add(ground)
}

func (c *Controller) createClouds() error {
	cl := c.cfg.Clouds
	tmpl := scene.NewNode(scene.RoleCloud)
	tmpl.Geometry = scene.Sphere(cl.Radius)
	tmpl.Material = &scene.Material{Diffuse: scene.ColorOf(colornames.White)}
	for i := 0; i < cl.Count; i++ {
		cloud, err := tmpl.Clone()
		if err != nil {
			return err
		}
		for axis := 0; axis < 3; axis++ {
			cloud.Position[axis] = cl.Min[axis] + c.rng.Float32()*(cl.Max[axis]-cl.Min[axis])
		}
		c.scene.Add(cloud)
	}
	return nil
}

func (c *Controller) setupCamera() {
	cc := c.cfg.Camera
	cam := scene.NewNode(scene.RoleCamera)
	cam.Camera = &scene.Camera{FovY: cc.FovY, ZNear: cc.ZNear, ZFar: cc.ZFar}
	cam.Position = cc.Position
	cam.LookAt(cc.Target)
	c.scene.Add(cam)
}

func (c *Controller) randomColor() scene.Color {
	return scene.Color{R: c.rng.Float32(), G: c.rng.Float32(), B: c.rng.Float32(), A: 1}
}

// pick returns the nearest node under a surface point. Without a camera or a usable
// viewport nothing is under any point.
func (c *Controller) pick(p mgl32.Vec2) (scene.Hit, bool) {
	cam, ok := c.scene.Lookup(scene.RoleCamera)
	if !ok {
		return scene.Hit{}, false
	}
	ray, err := scene.ScreenRay(cam, p, c.viewport)
	if err != nil {
		return scene.Hit{}, false
	}
	return c.scene.HitTest(ray)
}

// HandleTap places a block where the tap hits the ground. Taps on anything else, or on
// nothing, do nothing.
func (c *Controller) HandleTap(t gesture.Tap) {
	hit, ok := c.pick(t.Pos)
	if !ok {
		return
	}
	ground, ok := c.scene.Lookup(scene.RoleGround)
	if !ok || hit.Node != ground {
		return
	}
	size := c.cfg.World.BlockSize
	block := scene.NewNode(scene.RoleBlock)
	block.Geometry = scene.Box(size, size, size)
	block.Material = &scene.Material{Diffuse: c.randomColor()}
	block.Position = mgl32.Vec3{hit.Point[0], size / 2, hit.Point[2]}
	id := c.scene.Add(block)
	c.log.Logf("placed block %d at (%.2f, %.2f, %.2f)", id, block.Position[0], block.Position[1], block.Position[2])
}

// HandleLongPress schedules removal of the block under the press when the long-press
// begins. The removal cannot be cancelled; when it fires it removes the block only if
// it is still in the scene.
func (c *Controller) HandleLongPress(lp gesture.LongPress) {
	if lp.Phase != gesture.PhaseBegan {
		return
	}
	hit, ok := c.pick(lp.Pos)
	if !ok || hit.Node.Role != scene.RoleBlock {
		return
	}
	id := hit.Node.ID()
	c.pending++
	c.queue.After(c.cfg.RemovalDelay, func() {
		c.pending--
		c.removeBlock(id)
	})
}

func (c *Controller) removeBlock(id scene.NodeID) {
	n, ok := c.scene.Node(id)
	if !ok || n.Role != scene.RoleBlock {
		return
	}
	c.scene.Remove(id)
	c.log.Logf("removed block %d", id)
}

// HandlePan turns the camera by the pan translation, one degree per pixel: horizontal
// movement changes yaw, vertical movement changes pitch, and pitch stays within ±90°.
// The translation is consumed on every change. Without a registered camera the rotation
// is applied to a throwaway node.
func (c *Controller) HandlePan(p *gesture.Pan) {
	if p.Phase != gesture.PhaseChanged {
		return
	}
	cam, ok := c.scene.Lookup(scene.RoleCamera)
	if !ok {
		cam = scene.NewNode(scene.RoleCamera)
	}
	tr := p.Translation()
	cam.Rotate(-mgl32.DegToRad(tr[0]), -mgl32.DegToRad(tr[1]))
	p.SetTranslation(mgl32.Vec2{})
}

// Stats returns the current counters and camera angles.
func (c *Controller) Stats() Stats {
	st := Stats{
		Blocks:          c.scene.Count(scene.RoleBlock),
		PendingRemovals: c.pending,
	}
	if cam, ok := c.scene.Lookup(scene.RoleCamera); ok {
		st.Yaw, st.Pitch = cam.Rotation.Yaw, cam.Rotation.Pitch
	}
	return st
}
