package ik

import "errors"

// ErrCapacityExceeded is returned by Attach when every child slot of the
// parent joint is already filled.
var ErrCapacityExceeded = errors.New("ik: joint child capacity exceeded")

// Joint is a node in a skeleton tree. Each joint stores its position and
// the length of the rigid segment connecting it to its parent; the solver
// re-imposes that length on every move.
//
// The child capacity is fixed when the joint is created. A joint with no
// children is a leaf and the usual effector candidate.
type Joint struct {
	pos      Point
	length   float64
	parent   *Joint
	children []*Joint
}

// NewJoint creates a new unattached joint at the origin with room for
// childCap attached children. The segment length is the distance to the
// parent the joint will be attached to; it is immutable after creation.
func NewJoint(length float64, childCap int) *Joint {
	return &Joint{
		length:   length,
		children: make([]*Joint, 0, childCap),
	}
}

// NewChain creates a serial chain of joints, one per segment length, each
// attached to the previous one. The first length belongs to the returned
// root (and is unused until the root itself is attached elsewhere; zero is
// conventional). Joints are laid out along the positive x axis at their
// segment distances so the chain starts in a valid pose.
//
// The returned slice is ordered root first.
func NewChain(lengths ...float64) []*Joint {
	joints := make([]*Joint, 0, len(lengths))
	x := 0.0
	for i, length := range lengths {
		j := NewJoint(length, 1)
		if i > 0 {
			x += length
			j.pos = Pt(x, 0)
			// Cannot fail: every joint in the chain has a free slot.
			_ = joints[i-1].Attach(j)
		}
		joints = append(joints, j)
	}
	return joints
}

// Attach links child into the first empty child slot of j and sets the
// child's parent reference. It returns ErrCapacityExceeded, without
// mutating either joint, when j has no slot left.
//
// Attaching a joint that already has a parent, or attaching so that the
// structure contains a cycle, is not checked and corrupts the tree.
func (j *Joint) Attach(child *Joint) error {
	if len(j.children) == cap(j.children) {
		return ErrCapacityExceeded
	}
	j.children = append(j.children, child)
	child.parent = j
	return nil
}

// Position returns the joint's current position.
func (j *Joint) Position() Point {
	return j.pos
}

// SetPosition places the joint at (x, y) without moving the rest of the
// tree. It is meant for establishing an initial pose after attachment;
// the pose must satisfy the segment lengths before solving.
func (j *Joint) SetPosition(x, y float64) {
	j.pos = Pt(x, y)
}

// SegmentLength returns the fixed distance between the joint and its parent.
func (j *Joint) SegmentLength() float64 {
	return j.length
}

// Parent returns the joint's parent, or nil for the tree root.
func (j *Joint) Parent() *Joint {
	return j.parent
}

// Children returns the joint's attached children. The returned slice is the
// joint's internal storage and must not be modified.
func (j *Joint) Children() []*Joint {
	return j.children
}

// IsRoot reports whether the joint has no parent.
func (j *Joint) IsRoot() bool {
	return j.parent == nil
}

// IsLeaf reports whether the joint has no attached children.
func (j *Joint) IsLeaf() bool {
	return len(j.children) == 0
}

// Root returns the root of the tree the joint belongs to.
func (j *Joint) Root() *Joint {
	for !j.IsRoot() {
		j = j.parent
	}
	return j
}

// Depth returns the number of segments between the joint and the tree root.
// The root itself has depth 0.
func (j *Joint) Depth() int {
	d := 0
	for !j.IsRoot() {
		j = j.parent
		d++
	}
	return d
}

// Count returns the number of joints in the branch rooted at j, including
// j itself.
func (j *Joint) Count() int {
	n := 1
	for _, child := range j.children {
		n += child.Count()
	}
	return n
}

// Reach returns the sum of segment lengths on the path from the joint up to
// the tree root: the maximum distance the joint can be placed from the root.
// A target farther from the root than Reach cannot be attained exactly.
func (j *Joint) Reach() float64 {
	r := 0.0
	for !j.IsRoot() {
		r += j.length
		j = j.parent
	}
	return r
}

// Translate rigidly moves the branch rooted at j so that j's position
// becomes (x, y). Every descendant shifts by the same offset, so all
// relative distances within the branch are preserved.
func (j *Joint) Translate(x, y float64) {
	j.TranslateBy(x-j.pos.X, y-j.pos.Y)
}

// TranslateBy rigidly moves the branch rooted at j by the offset (dx, dy).
func (j *Joint) TranslateBy(dx, dy float64) {
	translateBranch(j, Pt(dx, dy))
}

// DeleteBranch detaches j from its parent and clears every joint in the
// branch rooted at j. The branch is removed atomically: afterwards no joint
// in it is reachable from the tree, and no joint in it may be reused.
func (j *Joint) DeleteBranch() {
	if j.parent != nil {
		siblings := j.parent.children
		for i, c := range siblings {
			if c == j {
				j.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	clearBranch(j)
}

// clearBranch severs all links inside the branch so stale references held
// by the caller cannot keep the joints alive or observe a partial tree.
func clearBranch(j *Joint) {
	for _, child := range j.children {
		clearBranch(child)
	}
	j.parent = nil
	j.children = nil
}
