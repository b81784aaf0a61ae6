package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// MaxPitch is the largest pitch a camera can look up or down (90°).
const MaxPitch = math32.Pi / 2

// Viewport is the size in pixels of the surface the camera renders to.
type Viewport struct {
	Width, Height int
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Aspect returns width / height.
func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// rotation returns the node's orientation as a homogeneous matrix: yaw about Y, then pitch about X.
func (n *Node) rotation() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(n.Rotation.Yaw).Mul4(mgl32.HomogRotate3DX(n.Rotation.Pitch))
}

// Forward returns the unit direction the node faces.
func (n *Node) Forward() mgl32.Vec3 {
	cp := math32.Cos(n.Rotation.Pitch)
	return mgl32.Vec3{
		-math32.Sin(n.Rotation.Yaw) * cp,
		math32.Sin(n.Rotation.Pitch),
		-math32.Cos(n.Rotation.Yaw) * cp,
	}
}

// Up returns the node's local +Y axis in world space.
func (n *Node) Up() mgl32.Vec3 {
	return n.rotation().Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
}

// LookAt orients the node to face target. A target equal to the node position is ignored.
func (n *Node) LookAt(target mgl32.Vec3) {
	d := target.Sub(n.Position)
	if d.Len() == 0 {
		return
	}
	d = d.Normalize()
	n.Rotation.Pitch = math32.Asin(mgl32.Clamp(d[1], -1, 1))
	n.Rotation.Yaw = math32.Atan2(-d[0], -d[2])
}

// Rotate adds yaw and pitch (radians) to the node orientation, then clamps pitch to
// [-MaxPitch, MaxPitch]. Yaw is left unbounded.
func (n *Node) Rotate(dYaw, dPitch float32) {
	n.Rotation.Yaw += dYaw
	n.Rotation.Pitch = mgl32.Clamp(n.Rotation.Pitch+dPitch, -MaxPitch, MaxPitch)
}

// ViewMatrix returns the world-to-view transform of the node. Unlike a look-at matrix it stays
// well defined when the node looks straight up or down.
func (n *Node) ViewMatrix() mgl32.Mat4 {
	world := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2]).Mul4(n.rotation())
	return world.Inv()
}

// Projection returns the perspective projection of a camera node for the viewport.
func (n *Node) Projection(vp Viewport) (mgl32.Mat4, error) {
	if n.Camera == nil {
		return mgl32.Mat4{}, errors.Errorf("node %d (%s) has no camera", n.id, n.Role)
	}
	if vp.Empty() {
		return mgl32.Mat4{}, errors.Errorf("empty viewport %dx%d", vp.Width, vp.Height)
	}
	return mgl32.Perspective(mgl32.DegToRad(n.Camera.FovY), vp.Aspect(), n.Camera.ZNear, n.Camera.ZFar), nil
}

// ScreenRay returns the world-space ray through a surface point of the viewport.
// Points use a top-left origin with Y growing downwards, like mouse coordinates.
func ScreenRay(cam *Node, p mgl32.Vec2, vp Viewport) (Ray, error) {
	proj, err := cam.Projection(vp)
	if err != nil {
		return Ray{}, err
	}
	view := cam.ViewMatrix()
	winY := float32(vp.Height) - p[1]
	near, err := mgl32.UnProject(mgl32.Vec3{p[0], winY, 0}, view, proj, 0, 0, vp.Width, vp.Height)
	if err != nil {
		return Ray{}, errors.Wrap(err, "unproject near plane")
	}
	far, err := mgl32.UnProject(mgl32.Vec3{p[0], winY, 1}, view, proj, 0, 0, vp.Width, vp.Height)
	if err != nil {
		return Ray{}, errors.Wrap(err, "unproject far plane")
	}
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}, nil
}

// ScreenPoint projects a world position to a top-left-origin surface point of the viewport.
func ScreenPoint(cam *Node, world mgl32.Vec3, vp Viewport) (mgl32.Vec2, error) {
	proj, err := cam.Projection(vp)
	if err != nil {
		return mgl32.Vec2{}, err
	}
	win := mgl32.Project(world, cam.ViewMatrix(), proj, 0, 0, vp.Width, vp.Height)
	return mgl32.Vec2{win[0], float32(vp.Height) - win[1]}, nil
}
