package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line starting at Origin. Direction is expected to be normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit is the nearest intersection of a ray with a node's geometry.
type Hit struct {
	Node     *Node
	Point    mgl32.Vec3 // world coordinates
	Distance float32
}

// HitTest returns the nearest node whose geometry the ray intersects. Nodes without geometry
// (camera, sun) are never hit. Ties go to the node added first.
func (s *Scene) HitTest(r Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, id := range s.order {
		n := s.nodes[id]
		if n.Geometry == nil {
			continue
		}
		t, ok := intersect(r, n)
		if !ok || (found && t >= best.Distance) {
			continue
		}
		best = Hit{Node: n, Point: r.At(t), Distance: t}
		found = true
	}
	return best, found
}

func intersect(r Ray, n *Node) (float32, bool) {
	switch n.Geometry.Shape {
	case ShapeBox:
		half := n.Geometry.Extents()
		return intersectBox(r, n.Position.Sub(half), n.Position.Add(half))
	case ShapeSphere:
		return intersectSphere(r, n.Position, n.Geometry.Radius)
	}
	return 0, false
}

// intersectBox is the slab test against an axis-aligned box. A ray starting inside the box
// hits it at distance 0.
func intersectBox(r Ray, lo, hi mgl32.Vec3) (float32, bool) {
	tmin := float32(0)
	tmax := float32(math32.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < lo[axis] || o > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - o) / d
		t2 := (hi[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// intersectSphere solves |o + t*d - c|² = r² for the smallest t >= 0.
func intersectSphere(r Ray, center mgl32.Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
