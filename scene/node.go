package scene

import (
	"sync/atomic"

	"github.com/mokiat/gomath/dprec"
)

type NodeID uint32

var lastNodeID atomic.Uint32

func nextNodeID() NodeID {
	return NodeID(lastNodeID.Add(1))
}

// Node is an element of a scene graph. Its transform fields are plain
// values owned by the node; nothing outside the node aliases them except
// through the node itself.
type Node struct {
	id       NodeID
	origin   NodeID
	parent   *Node
	children []*Node

	Name string

	Position dprec.Vec3
	// Rotation holds Euler angles in radians, applied in X, Y, Z order.
	Rotation dprec.Vec3
	Scale    dprec.Vec3

	Mesh *Mesh
}

func NewNode(name string) *Node {
	return &Node{
		id:    nextNodeID(),
		Name:  name,
		Scale: dprec.NewVec3(1.0, 1.0, 1.0),
	}
}

func (n *Node) ID() NodeID {
	return n.id
}

// Origin returns the id of the node this one was cloned from, following
// clone chains back to the first node. It is the node's own id for nodes
// that are not clones.
func (n *Node) Origin() NodeID {
	if n.origin != 0 {
		return n.origin
	}
	return n.id
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

// AddChild attaches the child to this node, detaching it from any
// previous parent first.
func (n *Node) AddChild(child *Node) {
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, sibling := range siblings {
		if sibling == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Traverse visits the node and its descendants depth first. Returning
// false from the visitor skips the visited node's children.
func (n *Node) Traverse(visit func(node *Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.children {
		child.Traverse(visit)
	}
}

// FindNode returns the first node in the subtree with the given name.
func (n *Node) FindNode(name string) *Node {
	var result *Node
	n.Traverse(func(node *Node) bool {
		if result != nil {
			return false
		}
		if node.Name == name {
			result = node
			return false
		}
		return true
	})
	return result
}

// Clone returns a deep structural copy of the subtree. The copy has new
// ids and no parent.
func (n *Node) Clone() *Node {
	result := &Node{
		id:       nextNodeID(),
		origin:   n.Origin(),
		Name:     n.Name,
		Position: n.Position,
		Rotation: n.Rotation,
		Scale:    n.Scale,
	}
	if n.Mesh != nil {
		mesh := *n.Mesh
		result.Mesh = &mesh
	}
	for _, child := range n.children {
		result.AddChild(child.Clone())
	}
	return result
}

// Pose returns a copy of the node's position and rotation.
func (n *Node) Pose() Pose {
	return Pose{
		Position: n.Position,
		Rotation: n.Rotation,
	}
}

type Pose struct {
	Position dprec.Vec3
	Rotation dprec.Vec3
}
