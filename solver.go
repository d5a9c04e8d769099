package ik

import "sync"

// Solver runs FABRIK solves over skeleton trees. Each Solver owns its path
// stack, so concurrent solves on independent trees are safe as long as each
// goroutine uses its own Solver. A single tree must never be solved from
// two goroutines at once.
//
// The zero value is not usable; create solvers with NewSolver.
type Solver struct {
	stack pathStack
}

// NewSolver creates a solver ready for use.
func NewSolver(opts ...SolverOption) *Solver {
	o := defaultSolverOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{stack: newPathStack(o.stackSize)}
}

// Solve repositions every joint in the effector's tree so the effector
// reaches (or approaches) the target at (targetX, targetY) while every
// segment keeps its length. The tree is updated in place.
//
// The solve runs in two phases. Reach-back walks from the effector up to
// the tree root, pulling each ancestor toward its child's new position and
// recording which child it arrived from at each branching joint.
// Reach-forward then snaps the root back onto its original position and
// retraces the recorded path down to the effector, pulling each joint
// toward its parent. Every sibling branch off that path is rigidly
// realigned in both phases, so it stays attached at the correct angle.
//
// Solve does not report whether the target was actually reached: an
// unreachable target leaves the effector as close as the segment lengths
// allow. The only error is ErrStackOverflow, a configuration limit; the
// tree is left in an unspecified (but length-preserving) pose when it
// occurs.
func (s *Solver) Solve(effector *Joint, targetX, targetY float64) error {
	target := Pt(targetX, targetY)
	Logger().Debug("ik: solve", "targetX", targetX, "targetY", targetY)

	s.stack.reset()
	root, rootOrig, err := s.reachBack(effector, target, 0)
	if err != nil {
		Logger().Warn("ik: solve aborted", "error", err)
		return err
	}
	s.reachForward(root, rootOrig, 0)
	return nil
}

// reachBack walks from j up to the tree root. distance is the segment
// length between j and the joint the walk arrived from (zero at the
// effector, which lands exactly on the target). It returns the tree root
// and the root's position before it moved, which seed reach-forward.
func (s *Solver) reachBack(j *Joint, target Point, distance float64) (root *Joint, rootOrig Point, err error) {
	org := j.pos

	if j.parent == nil {
		root, rootOrig = j, org
	}

	moveWithinDist(j, distance, target)

	// Any other branch hanging off j has to follow j's new orientation.
	// The branch the walk arrived from (top of the stack, nil at the
	// effector) is skipped: its joints move through the traversal itself.
	if len(j.children) > 1 {
		realignSiblings(j, org, s.stack.top())
	}

	if j.parent == nil {
		return root, rootOrig, nil
	}

	// Record the path taken at j's parent, but only where there is an
	// actual choice to make.
	if len(j.parent.children) > 1 {
		if err := s.stack.push(j); err != nil {
			return nil, Point{}, err
		}
	}

	return s.reachBack(j.parent, j.pos, j.length)
}

// reachForward retraces the path recorded by reachBack from the tree root
// down to the effector side. The root is called with its original position
// as target and distance zero, anchoring the chain.
func (s *Solver) reachForward(j *Joint, target Point, distance float64) {
	org := j.pos

	moveWithinDist(j, distance, target)

	if len(j.children) == 0 {
		return
	}

	var pathChild *Joint
	if len(j.children) > 1 {
		pathChild = s.stack.pop()
		realignSiblings(j, org, pathChild)
		// An empty stack means the effector is this joint: its branches
		// were realigned above and the path ends here.
		if pathChild == nil {
			return
		}
	} else {
		pathChild = j.children[0]
	}

	s.reachForward(pathChild, j.pos, pathChild.length)
}

// realignSiblings rigidly realigns every child branch of j except
// pathChild after j moved from org to its current position. With a parent
// above j the rotation frame is j's offset from that parent; the tree root
// has no such frame, so its branches are translated only.
func realignSiblings(j *Joint, org Point, pathChild *Joint) {
	if j.parent != nil {
		from := org.Sub(j.parent.pos)
		to := j.pos.Sub(j.parent.pos)
		for _, child := range j.children {
			if child != pathChild {
				alignBranch(child, from, to)
			}
		}
	} else {
		offset := j.pos.Sub(org)
		for _, child := range j.children {
			if child != pathChild {
				translateBranch(child, offset)
			}
		}
	}
}

// moveWithinDist is the length-preserving relocation primitive: it places j
// on the ray from target through j's old position, at exactly distance from
// the target. A joint already coincident with the target snaps onto it.
func moveWithinDist(j *Joint, distance float64, target Point) {
	d := j.pos.Sub(target)
	norm := d.Length()
	if norm == 0 {
		j.pos = target
		return
	}
	j.pos = target.Add(d.Mul(distance / norm))
}

// defaultSolver backs the package-level Solve. The mutex serializes
// callers; use per-goroutine Solvers for concurrent solving.
var (
	defaultSolverMu sync.Mutex
	defaultSolver   = NewSolver()
)

// Solve runs a solve on a shared package-level solver. It is safe for
// concurrent use on independent trees; for parallel solving without
// contention, create dedicated Solvers instead.
func Solve(effector *Joint, targetX, targetY float64) error {
	defaultSolverMu.Lock()
	defer defaultSolverMu.Unlock()
	return defaultSolver.Solve(effector, targetX, targetY)
}
