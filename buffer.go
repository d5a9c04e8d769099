package ik

// initialVertexCap is the capacity of a freshly created vertex buffer.
const initialVertexCap = 16

// VertexBuffer is a growable sequence of 2D points holding line-segment
// endpoints pairwise: [parent, child, parent, child, ...]. It is owned by
// the caller and reused across extractions; Reset keeps the allocated
// capacity, and the buffer grows by doubling when full.
type VertexBuffer struct {
	data []Point
}

// NewVertexBuffer creates a vertex buffer with a small initial capacity.
func NewVertexBuffer() *VertexBuffer {
	return &VertexBuffer{data: make([]Point, 0, initialVertexCap)}
}

// push appends a point, doubling the underlying storage when full.
func (b *VertexBuffer) push(p Point) {
	if len(b.data) == cap(b.data) {
		grown := make([]Point, len(b.data), 2*max(cap(b.data), 1))
		copy(grown, b.data)
		b.data = grown
	}
	b.data = append(b.data, p)
}

// Len returns the number of points currently in the buffer.
func (b *VertexBuffer) Len() int {
	return len(b.data)
}

// Cap returns the buffer's current capacity in points.
func (b *VertexBuffer) Cap() int {
	return cap(b.data)
}

// Points returns the buffered points. The returned slice is the buffer's
// internal storage and is only valid until the next extraction or Reset.
func (b *VertexBuffer) Points() []Point {
	return b.data
}

// Reset empties the buffer, keeping its capacity for reuse.
func (b *VertexBuffer) Reset() {
	b.data = b.data[:0]
}

// Free releases the underlying storage, leaving the buffer empty with zero
// capacity. The buffer may be reused afterwards; the next push reallocates.
func (b *VertexBuffer) Free() {
	b.data = nil
}

// ExtractVertices repopulates buf with the line-segment endpoints of the
// branch rooted at j: for every parent/child edge, the parent position
// followed by the child position, in depth-first order. The buffer is reset
// first, so one buffer can be reused across frames without reallocating.
func (j *Joint) ExtractVertices(buf *VertexBuffer) {
	buf.Reset()
	appendVertices(j, buf)
}

func appendVertices(j *Joint, buf *VertexBuffer) {
	for _, child := range j.children {
		buf.push(j.pos)
		buf.push(child.pos)
		appendVertices(child, buf)
	}
}
