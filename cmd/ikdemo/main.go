// Command ikdemo demonstrates the ik FABRIK solver by animating a branched
// skeleton chasing a moving target, writing one PNG per frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/gogpu/ik"
	"github.com/gogpu/ik/render"
)

func main() {
	var (
		width  = flag.Int("width", 640, "image width")
		height = flag.Int("height", 480, "image height")
		frames = flag.Int("frames", 24, "number of animation frames")
		output = flag.String("output", "ikdemo", "output file prefix")
	)
	flag.Parse()

	effector, root := buildSkeleton(float64(*width), float64(*height))

	r := render.New(*width, *height)
	solver := ik.NewSolver()

	cx, cy := float64(*width)/2, float64(*height)/2
	for frame := 0; frame < *frames; frame++ {
		// Target orbits the skeleton root.
		a := 2 * math.Pi * float64(frame) / float64(*frames)
		tx := cx + 150*math.Cos(a)
		ty := cy - 120 + 100*math.Sin(a)

		if err := solver.Solve(effector, tx, ty); err != nil {
			log.Fatalf("Solve failed: %v", err)
		}
		if err := r.Draw(root); err != nil {
			log.Fatalf("Draw failed: %v", err)
		}
		if err := r.MarkTarget(tx, ty); err != nil {
			log.Fatalf("Draw failed: %v", err)
		}

		path := fmt.Sprintf("%s_%03d.png", *output, frame)
		if err := r.SavePNG(path); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}

	log.Printf("Wrote %d frames to %s_*.png (%dx%d)\n", *frames, *output, *width, *height)
}

// buildSkeleton assembles a three-segment arm with a two-pronged fork at
// the wrist, rooted at the bottom center of the canvas. Returns the
// effector (one fork tip) and the tree root.
func buildSkeleton(width, height float64) (effector, root *ik.Joint) {
	arm := ik.NewChain(0, 90, 80, 60)
	root = arm[0]
	wrist := arm[len(arm)-1]

	// Replace the wrist's single slot with a fork of two fingers.
	fork := ik.NewJoint(60, 2)
	if err := wrist.Attach(fork); err != nil {
		log.Fatalf("Attach failed: %v", err)
	}
	fingerA := ik.NewJoint(40, 0)
	fingerB := ik.NewJoint(40, 0)
	for _, f := range []*ik.Joint{fingerA, fingerB} {
		if err := fork.Attach(f); err != nil {
			log.Fatalf("Attach failed: %v", err)
		}
	}

	// Lay the fork out past the wrist so the initial pose is valid.
	w := wrist.Position()
	fork.SetPosition(w.X+60, w.Y)
	fingerA.SetPosition(w.X+60+40*math.Cos(0.5), w.Y-40*math.Sin(0.5))
	fingerB.SetPosition(w.X+60+40*math.Cos(0.5), w.Y+40*math.Sin(0.5))

	root.Translate(width/2, height-40)
	return fingerA, root
}
