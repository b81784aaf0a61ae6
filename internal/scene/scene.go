// Package scene is the sandbox scene graph: nodes with a closed set of roles, a handle
// registry for the singleton roles, camera projection and ray hit-testing.
//
// A Scene is mutated only from the main loop; it has no locking.
package scene

// Scene owns every node in the sandbox. Nodes are kept in insertion order so drawing and
// hit-testing are deterministic.
type Scene struct {
	nodes   map[NodeID]*Node
	order   []NodeID
	handles map[Role]NodeID
	nextID  NodeID
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		nodes:   make(map[NodeID]*Node),
		handles: make(map[Role]NodeID),
	}
}

// Add attaches n to the scene and returns its new ID. Ground, camera and sun nodes are also
// registered as the scene's handle for their role, replacing any previous registration.
// Adding a node that is already attached returns its existing ID.
func (s *Scene) Add(n *Node) NodeID {
	if n.scene == s {
		return n.id
	}
	if n.scene != nil {
		n.scene.Remove(n.id)
	}
	s.nextID++
	n.id = s.nextID
	n.scene = s
	s.nodes[n.id] = n
	s.order = append(s.order, n.id)
	if n.Role.singleton() {
		s.handles[n.Role] = n.id
	}
	return n.id
}

// Remove detaches the node with the given ID. It reports false if no such node is attached,
// which makes removing an already removed node a no-op.
func (s *Scene) Remove(id NodeID) bool {
	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	delete(s.nodes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if h, ok := s.handles[n.Role]; ok && h == id {
		delete(s.handles, n.Role)
	}
	n.scene = nil
	return true
}

// Node resolves an ID to an attached node.
func (s *Scene) Node(id NodeID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Lookup returns the node registered for a singleton role (ground, camera, sun).
func (s *Scene) Lookup(role Role) (*Node, bool) {
	id, ok := s.handles[role]
	if !ok {
		return nil, false
	}
	return s.Node(id)
}

// Nodes returns the attached nodes in insertion order. The slice is freshly allocated.
func (s *Scene) Nodes() []*Node {
	out := make([]*Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id])
	}
	return out
}

// Count returns how many attached nodes have the given role.
func (s *Scene) Count(role Role) int {
	c := 0
	for _, n := range s.nodes {
		if n.Role == role {
			c++
		}
	}
	return c
}

// Len returns the number of attached nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}
