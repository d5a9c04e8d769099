// Package render draws skeleton trees through the gogpu/gg 2D graphics
// library. It consumes the vertex buffer produced by ik and is the only
// part of the module that knows about pixels; the solver itself has no
// rendering dependency.
package render

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ik"
)

// Style controls how a skeleton is drawn.
type Style struct {
	// Background fills the canvas before drawing. Default near-black.
	Background gg.RGBA
	// Bone is the color of segment lines. Default off-white.
	Bone gg.RGBA
	// JointDot is the color of joint markers. Default orange.
	JointDot gg.RGBA
	// LineWidth is the stroke width of segment lines in pixels.
	LineWidth float64
	// JointRadius is the radius of joint markers in pixels. Zero disables
	// the markers.
	JointRadius float64
}

// DefaultStyle returns the style used when none is given.
func DefaultStyle() Style {
	return Style{
		Background:  gg.RGB(0.08, 0.09, 0.11),
		Bone:        gg.RGB(0.92, 0.92, 0.88),
		JointDot:    gg.RGB(0.95, 0.55, 0.15),
		LineWidth:   2,
		JointRadius: 3.5,
	}
}

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithStyle replaces the default drawing style.
func WithStyle(s Style) Option {
	return func(r *Renderer) {
		r.style = s
	}
}

// Renderer rasterizes skeletons into a gg drawing context. It owns a
// reusable vertex buffer, so drawing a skeleton every frame does not
// allocate once the buffer has grown to the skeleton's size.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	dc    *gg.Context
	buf   *ik.VertexBuffer
	style Style
}

// New creates a renderer with a canvas of the given size in pixels.
func New(width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		dc:    gg.NewContext(width, height),
		buf:   ik.NewVertexBuffer(),
		style: DefaultStyle(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Context returns the underlying gg drawing context, for overlaying extra
// content (targets, labels) before saving.
func (r *Renderer) Context() *gg.Context {
	return r.dc
}

// Draw clears the canvas and draws the skeleton rooted at root: one stroked
// line per segment, plus a dot per joint when the style enables markers.
func (r *Renderer) Draw(root *ik.Joint) error {
	r.dc.ClearWithColor(r.style.Background)

	root.ExtractVertices(r.buf)
	pts := r.buf.Points()

	r.dc.SetColor(r.style.Bone.Color())
	r.dc.SetLineWidth(r.style.LineWidth)
	for i := 0; i+1 < len(pts); i += 2 {
		r.dc.DrawLine(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
		if err := r.dc.Stroke(); err != nil {
			return err
		}
	}

	if r.style.JointRadius > 0 {
		r.dc.SetColor(r.style.JointDot.Color())
		if err := r.drawJointDots(root); err != nil {
			return err
		}
	}
	return nil
}

// MarkTarget draws a small cross at the target position, for visualizing
// what the effector is being pulled toward.
func (r *Renderer) MarkTarget(x, y float64) error {
	const arm = 5.0
	r.dc.SetColor(r.style.JointDot.Color())
	r.dc.SetLineWidth(1)
	r.dc.DrawLine(x-arm, y, x+arm, y)
	if err := r.dc.Stroke(); err != nil {
		return err
	}
	r.dc.DrawLine(x, y-arm, x, y+arm)
	return r.dc.Stroke()
}

// SavePNG writes the current canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	ik.Logger().Debug("render: save png", "path", path)
	return r.dc.SavePNG(path)
}

func (r *Renderer) drawJointDots(j *ik.Joint) error {
	p := j.Position()
	r.dc.DrawCircle(p.X, p.Y, r.style.JointRadius)
	if err := r.dc.Fill(); err != nil {
		return err
	}
	for _, child := range j.Children() {
		if err := r.drawJointDots(child); err != nil {
			return err
		}
	}
	return nil
}
