// Package ik provides a FABRIK-style inverse-kinematics solver for
// tree-shaped 2D skeletons.
//
// # Overview
//
// ik is a pure Go inverse-kinematics library for the GoGPU ecosystem. A
// skeleton is an n-ary tree of joints, each connected to its parent by a
// rigid segment of fixed length. Given a target point and an effector joint
// anywhere in the tree, [Solver.Solve] repositions every joint so the
// effector reaches (or approaches) the target while every segment keeps its
// length, and every sibling branch off the effector-to-root path is rigidly
// rotated and translated to stay correctly attached.
//
// # Quick Start
//
//	import "github.com/gogpu/ik"
//
//	// Build a three-segment arm along the x axis.
//	chain := ik.NewChain(0, 50, 50, 50)
//	root, hand := chain[0], chain[len(chain)-1]
//
//	// Pull the hand toward a target.
//	solver := ik.NewSolver()
//	if err := solver.Solve(hand, 60, 80); err != nil {
//		log.Fatal(err)
//	}
//
//	// Extract line segments for rendering.
//	buf := ik.NewVertexBuffer()
//	root.ExtractVertices(buf)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Joint, Solver, VertexBuffer, Point
//   - Solving core: reach-back/reach-forward traversal (solver.go),
//     rigid branch alignment (align.go)
//   - Rendering bridge: render/ draws skeletons through gogpu/gg
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, counter-clockwise positive
//
// # Limitations
//
// Joint angle constraints are not implemented yet; every joint rotates
// freely. The solver handles one effector/target pair per call and does not
// report reachability — compare the effector position against the target
// after solving if you need to know.
package ik

// Version is the current version of the library.
const Version = "0.2.0"
