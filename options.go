package ik

// DefaultStackSize is the path-stack capacity of a Solver created without
// options. It bounds the number of branching joints on a single
// effector-to-root path, not the total number of joints.
const DefaultStackSize = 1024

// SolverOption configures a Solver during creation.
//
// Example:
//
//	// Default configuration
//	solver := ik.NewSolver()
//
//	// Deeply branched skeletons
//	solver := ik.NewSolver(ik.WithStackSize(1 << 16))
type SolverOption func(*solverOptions)

type solverOptions struct {
	stackSize int
}

func defaultSolverOptions() solverOptions {
	return solverOptions{stackSize: DefaultStackSize}
}

// WithStackSize sets the capacity of the solver's path stack. Values below
// one are ignored.
func WithStackSize(n int) SolverOption {
	return func(o *solverOptions) {
		if n > 0 {
			o.stackSize = n
		}
	}
}
