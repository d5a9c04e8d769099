package ik

import "math"

// rotation holds the entries of a 2D rotation matrix decomposed into the
// cosine and unsigned sine of the rotation angle plus a sign term:
//
//	cos:  cos(|angle|)
//	sin:  sin(|angle|)
//	sign: sgn(angle), +1 for counter-clockwise
//
// The sign is folded back in through the identities cos(-a) = cos(a) and
// sin(-a) = -sin(a), so the matrix is derived from the dot and cross
// products alone, with no inverse trigonometric call.
type rotation struct {
	cos, sin, sign float64
}

// identityRotation leaves positions unchanged.
var identityRotation = rotation{cos: 1, sin: 0, sign: 1}

// rotationBetween derives the rotation that maps the direction of from onto
// the direction of to.
//
// Degenerate inputs (either vector has zero length, or the cosine is not
// finite) yield the identity rotation; the caller still applies its
// translation, so coincident joints never inject NaNs into the tree.
func rotationBetween(from, to Point) rotation {
	denom := from.Length() * to.Length()
	if denom == 0 {
		return identityRotation
	}

	cos := from.Dot(to) / denom
	if !isFinite(cos) {
		return identityRotation
	}

	// Floating-point drift can push cos*cos slightly past 1; clamp the
	// squared sine at zero so the square root stays in its domain.
	sin2 := 1 - cos*cos
	sin := 0.0
	if sin2 > 0 {
		sin = math.Sqrt(sin2)
	}

	sign := -1.0
	if from.Cross(to) > 0 {
		sign = 1.0
	}

	return rotation{cos: cos, sin: sin, sign: sign}
}

// apply rotates p around pivot.
func (r rotation) apply(p, pivot Point) Point {
	d := p.Sub(pivot)
	return Point{
		X: r.cos*d.X - r.sign*r.sin*d.Y,
		Y: r.sign*r.sin*d.X + r.cos*d.Y,
	}.Add(pivot)
}

// alignBranch rigidly reattaches the branch rooted at root after root's
// parent moved. from and to are the parent's old and new positions relative
// to the grandparent, which fixes the rotation; the branch is translated by
// to-from and then rotated around the parent's new position.
//
// root's parent must itself have a parent; branches hanging off the tree
// root have no rotation frame and are handled by translateBranch instead.
func alignBranch(root *Joint, from, to Point) {
	rot := rotationBetween(from, to)
	offset := to.Sub(from)
	alignBranchPrecalc(root, root.parent.pos, rot, offset)
}

// alignBranchPrecalc applies a precalculated rigid transform to every joint
// in the branch: translate by offset, then rotate around pivot. Each
// joint's transform is independent given the same pivot and matrix, so the
// traversal order does not matter.
func alignBranchPrecalc(root *Joint, pivot Point, rot rotation, offset Point) {
	root.pos = rot.apply(root.pos.Add(offset), pivot)
	for _, child := range root.children {
		alignBranchPrecalc(child, pivot, rot, offset)
	}
}

// translateBranch shifts every joint in the branch by offset. Used both for
// rigid whole-branch translation and for realigning branches whose parent
// is the tree root.
func translateBranch(root *Joint, offset Point) {
	root.pos = root.pos.Add(offset)
	for _, child := range root.children {
		translateBranch(child, offset)
	}
}

// isFinite returns true if f is neither NaN nor infinite.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
