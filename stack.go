package ik

import "errors"

// ErrStackOverflow is returned by Solve when the skeleton has more
// branching joints on the effector-to-root path than the solver's path
// stack can record. Raise the limit with WithStackSize.
var ErrStackOverflow = errors.New("ik: path stack overflow")

// pathStack records, at each branching ancestor visited during reach-back,
// which child the traversal arrived from, so reach-forward can retrace the
// exact same path. Pushes and pops are balanced within one solve; the
// stack is empty between solves.
type pathStack struct {
	data []*Joint
}

func newPathStack(size int) pathStack {
	return pathStack{data: make([]*Joint, 0, size)}
}

func (s *pathStack) push(j *Joint) error {
	if len(s.data) == cap(s.data) {
		return ErrStackOverflow
	}
	s.data = append(s.data, j)
	return nil
}

// pop removes and returns the top joint, or nil if the stack is empty.
func (s *pathStack) pop() *Joint {
	if len(s.data) == 0 {
		return nil
	}
	j := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return j
}

// top returns the top joint without removing it, or nil if the stack is
// empty.
func (s *pathStack) top() *Joint {
	if len(s.data) == 0 {
		return nil
	}
	return s.data[len(s.data)-1]
}

func (s *pathStack) depth() int {
	return len(s.data)
}

// reset discards all entries, keeping capacity. Called before each solve so
// a previous aborted solve cannot leak stale path entries.
func (s *pathStack) reset() {
	s.data = s.data[:0]
}
