package ik

import (
	"errors"
	"math"
	"testing"
)

func TestNewJoint(t *testing.T) {
	j := NewJoint(5, 3)
	if got := j.Position(); got != Pt(0, 0) {
		t.Errorf("new joint position = %v, want origin", got)
	}
	if got := j.SegmentLength(); got != 5 {
		t.Errorf("SegmentLength() = %v, want 5", got)
	}
	if !j.IsRoot() || !j.IsLeaf() {
		t.Error("new joint should be both root and leaf")
	}
	if got := len(j.Children()); got != 0 {
		t.Errorf("new joint has %d children, want 0", got)
	}
}

func TestAttach(t *testing.T) {
	parent := NewJoint(0, 2)
	a := NewJoint(1, 0)
	b := NewJoint(2, 0)

	if err := parent.Attach(a); err != nil {
		t.Fatalf("first Attach() = %v, want nil", err)
	}
	if err := parent.Attach(b); err != nil {
		t.Fatalf("second Attach() = %v, want nil", err)
	}
	if a.Parent() != parent || b.Parent() != parent {
		t.Error("Attach did not set parent references")
	}
	if got := parent.Children(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Children() = %v joints, want [a b] in attachment order", len(got))
	}
}

func TestAttach_CapacityExceeded(t *testing.T) {
	// A joint created with capacity 1 must reject the second attachment
	// and leave the first child untouched.
	parent := NewJoint(0, 1)
	first := NewJoint(1, 0)
	extra := NewJoint(1, 0)

	if err := parent.Attach(first); err != nil {
		t.Fatalf("Attach() = %v, want nil", err)
	}
	err := parent.Attach(extra)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Attach() beyond capacity = %v, want ErrCapacityExceeded", err)
	}
	if len(parent.Children()) != 1 || parent.Children()[0] != first {
		t.Error("failed Attach mutated the existing children")
	}
	if extra.Parent() != nil {
		t.Error("failed Attach set the child's parent")
	}
}

func TestAttach_ZeroCapacity(t *testing.T) {
	leaf := NewJoint(0, 0)
	if err := leaf.Attach(NewJoint(1, 0)); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Attach() on zero-capacity joint = %v, want ErrCapacityExceeded", err)
	}
}

func TestNewChain(t *testing.T) {
	chain := NewChain(0, 3, 4, 5)
	if len(chain) != 4 {
		t.Fatalf("NewChain returned %d joints, want 4", len(chain))
	}

	wantX := []float64{0, 3, 7, 12}
	for i, j := range chain {
		if got := j.Position(); !got.Approx(Pt(wantX[i], 0), 1e-12) {
			t.Errorf("chain[%d] at %v, want (%v, 0)", i, got, wantX[i])
		}
	}
	for i := 1; i < len(chain); i++ {
		if chain[i].Parent() != chain[i-1] {
			t.Errorf("chain[%d] parent is not chain[%d]", i, i-1)
		}
	}
	if !chain[0].IsRoot() {
		t.Error("chain[0] should be the root")
	}
	if !chain[3].IsLeaf() {
		t.Error("chain[3] should be a leaf")
	}
}

func TestTreeQueries(t *testing.T) {
	// Y-shaped tree: root -> a -> {b, c}.
	root := NewJoint(0, 1)
	a := NewJoint(3, 2)
	b := NewJoint(2, 0)
	c := NewJoint(2, 0)
	mustAttach(t, root, a)
	mustAttach(t, a, b)
	mustAttach(t, a, c)

	tests := []struct {
		name  string
		joint *Joint
		depth int
		count int
		reach float64
	}{
		{"root", root, 0, 4, 0},
		{"a", a, 1, 3, 3},
		{"b", b, 2, 1, 5},
		{"c", c, 2, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.joint.Depth(); got != tt.depth {
				t.Errorf("Depth() = %d, want %d", got, tt.depth)
			}
			if got := tt.joint.Count(); got != tt.count {
				t.Errorf("Count() = %d, want %d", got, tt.count)
			}
			if got := tt.joint.Reach(); math.Abs(got-tt.reach) > 1e-12 {
				t.Errorf("Reach() = %v, want %v", got, tt.reach)
			}
			if got := tt.joint.Root(); got != root {
				t.Errorf("Root() != root")
			}
		})
	}
}

func TestTranslate_RigidMotion(t *testing.T) {
	chain := NewChain(0, 3, 4)
	side := NewJoint(2, 0)
	mustAttach(t, chain[2], side) // give the tree one more joint off the tip
	side.SetPosition(7, 2)

	// Chain is laid out at x = 0, 3, 7; side joint sits at (7, 2).
	before := snapshotPositions(chain[0])

	chain[0].Translate(10, -5)

	after := snapshotPositions(chain[0])
	if len(before) != len(after) {
		t.Fatalf("joint count changed: %d -> %d", len(before), len(after))
	}
	offset := Pt(10, -5)
	for i := range before {
		want := before[i].Add(offset)
		if !after[i].Approx(want, 1e-12) {
			t.Errorf("joint %d at %v after translate, want %v", i, after[i], want)
		}
	}
	if got := chain[0].Position(); !got.Approx(Pt(10, -5), 1e-12) {
		t.Errorf("root at %v, want (10, -5)", got)
	}
}

func TestTranslateBy(t *testing.T) {
	chain := NewChain(0, 5)
	chain[0].TranslateBy(1, 2)
	if got := chain[0].Position(); !got.Approx(Pt(1, 2), 1e-12) {
		t.Errorf("root at %v, want (1, 2)", got)
	}
	if got := chain[1].Position(); !got.Approx(Pt(6, 2), 1e-12) {
		t.Errorf("child at %v, want (6, 2)", got)
	}
}

func TestDeleteBranch(t *testing.T) {
	root := NewJoint(0, 2)
	a := NewJoint(1, 1)
	b := NewJoint(1, 0)
	leaf := NewJoint(1, 0)
	mustAttach(t, root, a)
	mustAttach(t, root, b)
	mustAttach(t, a, leaf)

	a.DeleteBranch()

	if got := root.Children(); len(got) != 1 || got[0] != b {
		t.Fatalf("root has %d children after DeleteBranch, want just b", len(got))
	}
	if a.Parent() != nil || leaf.Parent() != nil {
		t.Error("deleted joints still hold parent references")
	}
	if a.Children() != nil {
		t.Error("deleted branch root still holds children")
	}

	// The freed slot is usable again.
	if err := root.Attach(NewJoint(1, 0)); err != nil {
		t.Errorf("Attach into freed slot = %v, want nil", err)
	}
}

func TestDeleteBranch_Root(t *testing.T) {
	chain := NewChain(0, 1, 1)
	chain[0].DeleteBranch()
	if chain[1].Parent() != nil || chain[2].Parent() != nil {
		t.Error("deleting the whole tree left parent references behind")
	}
}

// mustAttach fails the test on attach errors, for fixtures that are known
// to fit.
func mustAttach(t *testing.T, parent, child *Joint) {
	t.Helper()
	if err := parent.Attach(child); err != nil {
		t.Fatalf("Attach() = %v, want nil", err)
	}
}

// snapshotPositions records every position in the branch in DFS order.
func snapshotPositions(root *Joint) []Point {
	pts := []Point{root.Position()}
	for _, child := range root.Children() {
		pts = append(pts, snapshotPositions(child)...)
	}
	return pts
}
