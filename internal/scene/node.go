package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

// NodeID identifies a node for the lifetime of its scene. IDs are never reused, so a removed
// node's ID stays unresolvable and can be held as a weak reference.
type NodeID uint64

// Role is the closed set of things a node can be in the sandbox.
type Role uint8

const (
	RoleNone Role = iota
	RoleGround
	RoleCamera
	RoleSun
	RoleCloud
	RoleBlock
)

// String returns the tag name of the role ("camera", "block", ...).
func (r Role) String() string {
	switch r {
	case RoleGround:
		return "ground"
	case RoleCamera:
		return "camera"
	case RoleSun:
		return "sun"
	case RoleCloud:
		return "cloud"
	case RoleBlock:
		return "block"
	default:
		return "none"
	}
}

// singleton reports whether at most one node of this role may be registered in a scene.
func (r Role) singleton() bool {
	switch r {
	case RoleGround, RoleCamera, RoleSun:
		return true
	}
	return false
}

// Shape selects the primitive a Geometry describes.
type Shape uint8

const (
	ShapeBox Shape = iota + 1
	ShapeSphere
)

// Geometry is an axis-aligned primitive centred on the node position.
// Size is used by boxes (width, height, length); Radius by spheres.
type Geometry struct {
	Shape  Shape
	Size   mgl32.Vec3
	Radius float32
}

// Box returns box geometry with the given width (X), height (Y) and length (Z).
func Box(width, height, length float32) *Geometry {
	return &Geometry{Shape: ShapeBox, Size: mgl32.Vec3{width, height, length}}
}

// Sphere returns sphere geometry of radius r.
func Sphere(r float32) *Geometry {
	return &Geometry{Shape: ShapeSphere, Radius: r}
}

// Extents returns the half size of the geometry's bounding box.
func (g *Geometry) Extents() mgl32.Vec3 {
	if g.Shape == ShapeSphere {
		return mgl32.Vec3{g.Radius, g.Radius, g.Radius}
	}
	return g.Size.Mul(0.5)
}

// Color is a non-premultiplied RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorOf converts any image/color value (e.g. colornames.White) to a Color.
func ColorOf(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// RGBA() is alpha-premultiplied 16-bit; undo both.
	fa := float32(a)
	return Color{R: float32(r) / fa, G: float32(g) / fa, B: float32(b) / fa, A: fa / 0xffff}
}

// RGBA returns the colour as 8-bit RGBA, the format raylib draws with.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Material is the surface appearance of a node's geometry.
type Material struct {
	Diffuse Color
}

// LightKind is the type of a light source. Only directional lights are used.
type LightKind uint8

const (
	LightDirectional LightKind = iota + 1
)

// Light is a light source attached to a node; its direction is the node's Forward().
type Light struct {
	Kind      LightKind
	Color     Color
	Intensity float32 // lumens, 1000 is a full-strength sun
}

// Camera is a perspective projection attached to a node; the view follows the node orientation.
type Camera struct {
	FovY  float32 // degrees
	ZNear float32
	ZFar  float32
}

// Euler holds a node orientation in radians. Pitch rotates about X, Yaw about Y.
// With both zero the node faces -Z.
type Euler struct {
	Pitch float32
	Yaw   float32
}

// Node is a positioned entity in the scene graph, optionally carrying geometry, material,
// light or camera. Nodes are owned by the scene they are added to.
type Node struct {
	id    NodeID
	scene *Scene

	Role     Role
	Position mgl32.Vec3
	Rotation Euler
	Geometry *Geometry
	Material *Material
	Light    *Light
	Camera   *Camera
}

// NewNode returns a detached node with the given role.
func NewNode(role Role) *Node {
	return &Node{Role: role}
}

// ID returns the node's identity, or 0 if it has never been added to a scene.
func (n *Node) ID() NodeID {
	return n.id
}

// Attached reports whether the node currently belongs to a scene.
func (n *Node) Attached() bool {
	return n.scene != nil
}

// Clone returns a detached deep copy of n: geometry, material, light and camera are copied,
// not shared, and the copy has no identity until added to a scene.
func (n *Node) Clone() (*Node, error) {
	c := &Node{}
	if err := copier.CopyWithOption(c, n, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	c.id, c.scene = 0, nil
	return c, nil
}
