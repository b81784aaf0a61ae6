package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func down(from mgl32.Vec3) Ray {
	return Ray{Origin: from, Direction: mgl32.Vec3{0, -1, 0}}
}

func groundScene() (*Scene, *Node) {
	s := New()
	g := NewNode(RoleGround)
	g.Geometry = Box(10, 0.1, 10)
	g.Position = mgl32.Vec3{0, -0.05, 0}
	s.Add(g)
	return s, g
}

func TestHitTestGround(t *testing.T) {
	s, g := groundScene()
	hit, ok := s.HitTest(down(mgl32.Vec3{1, 10, 2}))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Node != g {
		t.Errorf("hit %s, want ground", hit.Node.Role)
	}
	if !hit.Point.ApproxEqualThreshold(mgl32.Vec3{1, 0, 2}, eps) {
		t.Errorf("point = %v, want (1,0,2)", hit.Point)
	}
	if !mgl32.FloatEqualThreshold(hit.Distance, 10, eps) {
		t.Errorf("distance = %v, want 10", hit.Distance)
	}
}

func TestHitTestNearestWins(t *testing.T) {
	s, _ := groundScene()
	block := NewNode(RoleBlock)
	block.Geometry = Box(0.5, 0.5, 0.5)
	block.Position = mgl32.Vec3{1, 0.25, 2}
	s.Add(block)
	cloud := NewNode(RoleCloud)
	cloud.Geometry = Sphere(0.5)
	cloud.Position = mgl32.Vec3{-2, 6, 0}
	s.Add(cloud)

	tests := []struct {
		name  string
		ray   Ray
		want  Role
		point mgl32.Vec3
	}{
		{"block on ground", down(mgl32.Vec3{1, 10, 2}), RoleBlock, mgl32.Vec3{1, 0.5, 2}},
		{"cloud above ground", down(mgl32.Vec3{-2, 10, 0}), RoleCloud, mgl32.Vec3{-2, 6.5, 0}},
		{"bare ground", down(mgl32.Vec3{3, 10, 3}), RoleGround, mgl32.Vec3{3, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := s.HitTest(tt.ray)
			if !ok {
				t.Fatal("expected a hit")
			}
			if hit.Node.Role != tt.want {
				t.Errorf("hit %s, want %s", hit.Node.Role, tt.want)
			}
			if !hit.Point.ApproxEqualThreshold(tt.point, eps) {
				t.Errorf("point = %v, want %v", hit.Point, tt.point)
			}
		})
	}
}

func TestHitTestMisses(t *testing.T) {
	s, _ := groundScene()
	cam := NewNode(RoleCamera)
	cam.Position = mgl32.Vec3{0, 5, 0}
	s.Add(cam)

	tests := []struct {
		name string
		ray  Ray
	}{
		{"off the edge", down(mgl32.Vec3{6, 10, 0})},
		{"pointing away", Ray{Origin: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, 1, 0}}},
		{"parallel above", Ray{Origin: mgl32.Vec3{-20, 1, 0}, Direction: mgl32.Vec3{1, 0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := s.HitTest(tt.ray); ok {
				t.Errorf("unexpected hit on %s at %v", hit.Node.Role, hit.Point)
			}
		})
	}
}

func TestHitTestEmptyScene(t *testing.T) {
	if _, ok := New().HitTest(down(mgl32.Vec3{})); ok {
		t.Error("empty scene reported a hit")
	}
}

func TestHitTestTieGoesToFirstAdded(t *testing.T) {
	s := New()
	a := NewNode(RoleBlock)
	a.Geometry = Box(1, 1, 1)
	b := NewNode(RoleBlock)
	b.Geometry = Box(1, 1, 1)
	s.Add(a)
	s.Add(b)
	hit, ok := s.HitTest(down(mgl32.Vec3{0, 5, 0}))
	if !ok || hit.Node != a {
		t.Errorf("hit = %v, want first node", hit.Node)
	}
}

func TestIntersectSphereFromInside(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{1, 0, 0}}
	d, ok := intersectSphere(r, mgl32.Vec3{}, 2)
	if !ok || !mgl32.FloatEqualThreshold(d, 2, eps) {
		t.Errorf("intersectSphere = %v, %v; want 2, true", d, ok)
	}
}
