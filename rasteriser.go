// seehuhn.de/go/dotclock - a dot-matrix watchface renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dotclock

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasteriser turns filled paths into per-pixel coverage in the range 0
// (outside) to 1 (inside).  Partially covered pixels along the outline get
// fractional values, which is what gives the dots their smooth edges.
//
// A Rasteriser keeps its scratch buffers between calls, so that drawing
// many small dots does not allocate once the buffers have grown to size.
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the device rectangle outside of which nothing is emitted.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.  Must be positive.
	Flatness float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterised using a full 2D accumulation buffer.  Larger paths are
	// processed one scanline at a time using an active edge list.
	denseLimit int

	cover     []float32 // signed coverage change per pixel, overwritten by the result
	area      []float32 // coverage contribution within the pixel
	edges     []edge
	active    []int  // indices into edges, for the scanline method
	rowInUse  []bool // rows touched by at least one edge, for the dense method
	bboxFirst bool
	bbox      struct{ xMin, xMax, yMin, yMax float64 }
}

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// NewRasteriser allocates a Rasteriser which draws into the given clip
// rectangle, using the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		denseLimit: denseLimit,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffers keep their capacity.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.rowInUse = r.rowInUse[:0]
}

// FillNonZero fills p using the nonzero winding rule.
//
// For every scanline which has non-zero coverage, emit is called with the
// row index, the x coordinate of the first covered pixel and the coverage
// values from there on.  The slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd is like FillNonZero, but uses the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, evenOdd, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.buildEdges(p)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.fillDense(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// buildEdges converts p into device space edges and returns the covered
// pixel range, clipped.  ok is false if nothing can be visible.
func (r *Rasteriser) buildEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxFirst = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.xMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.xMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.yMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasteriser) toDevice(p vec.Vec2) (x, y float64) {
	m := r.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

// addEdge appends the segment from p0 to p1, given in path coordinates.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	x0, y0 := r.toDevice(p0)
	x1, y1 := r.toDevice(p1)

	dy := y1 - y0
	if math.Abs(dy) < horizontalLimit {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	lx, hx := min(x0, x1), max(x0, x1)
	ly, hy := min(y0, y1), max(y0, y1)
	if r.bboxFirst {
		r.bbox.xMin, r.bbox.xMax, r.bbox.yMin, r.bbox.yMax = lx, hx, ly, hy
		r.bboxFirst = false
		return
	}
	r.bbox.xMin = min(r.bbox.xMin, lx)
	r.bbox.xMax = max(r.bbox.xMax, hx)
	r.bbox.yMin = min(r.bbox.yMin, ly)
	r.bbox.yMax = max(r.bbox.yMax, hy)
}

// deviceLength returns the device space length of the path space vector v,
// ignoring the translation part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuad replaces a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCube replaces a cubic Bézier curve by line segments.  The number
// of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Each edge deposits two quantities per pixel it passes through on a
// scanline: cover, its signed vertical extent inside the pixel, and area,
// the part of that extent which lies to the right of the edge.  Summing
// cover from the left and adding the local area gives the signed coverage
// of every pixel, see integrate.

// accumulate adds the contribution of e on scanline y.  cover and area are
// indexed by x - xMin.  Contributions left of xMin are collected in the
// first cell, since they cover the whole visible part of the row.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	pl := int(math.Floor(left))
	pr := int(math.Floor(right))

	if pl >= xMax {
		return
	}
	if pr < xMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}

	deposit := func(pix int, y0, y1 float64) {
		c := sign * float32(y1-y0)
		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
			frac := xMid - float64(pix)
			cover[pix-xMin] += c
			area[pix-xMin] += c * float32(1-frac)
		}
	}

	if pl == pr {
		deposit(pl, yTop, yBot)
		return
	}

	// The edge crosses several pixel columns on this scanline.
	dydx := 1 / e.dxdy
	for pix := pl; pix <= pr; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi > lo {
			deposit(pix, lo, hi)
		}
	}
}

// integrate turns the accumulated cover and area of one row into coverage
// values, which are stored in cover.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == nonZero {
			cover[i] = min(raw, 1)
		} else {
			m := raw - 2*float32(int(raw/2))
			d := 1 - m
			if d < 0 {
				d = -d
			}
			cover[i] = 1 - d
		}
	}
}

// trimZeros strips leading and trailing zeros from a coverage row.
// It returns nil if the whole row is zero.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for hi > lo+1 && row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

// fillDense accumulates all edges into a buffer covering the whole
// bounding box, then integrates row by row.  This is the fast path for
// small shapes like the dots of a glyph.
func (r *Rasteriser) fillDense(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	w, h := xMax-xMin, yMax-yMin
	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	r.rowInUse = slices.Grow(r.rowInUse[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowInUse)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(e.top())), yMin)
		bot := min(int(math.Floor(e.bottom()))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			accumulate(e, y, r.cover[row*w:(row+1)*w], r.area[row*w:(row+1)*w], xMin, xMax)
			r.rowInUse[row] = true
		}
	}

	for row := range h {
		if !r.rowInUse[row] {
			continue
		}
		cov := r.cover[row*w : (row+1)*w]
		integrate(cov, r.area[row*w:(row+1)*w], rule)
		if trimmed, off := trimZeros(cov); trimmed != nil {
			emit(yMin+row, xMin+off, trimmed)
		}
	}
}

// fillScanlines processes one scanline at a time, keeping a list of the
// edges which intersect the current line.  Memory use is proportional to
// the width of the shape only.
func (r *Rasteriser) fillScanlines(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yf, yNext := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].top() < yNext {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yf {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			if min(yNext, e.bottom()) > max(yf, e.top()) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, off := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+off, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	// For dots of a few pixels this is well below what can be seen.
	defaultFlatness = 0.25

	// denseLimit is the default for Rasteriser.denseLimit.
	// TODO: measure the crossover point for magnified previews
	denseLimit = 65536

	// horizontalLimit is the smallest vertical extent of an edge which
	// can contribute coverage.
	horizontalLimit = 1e-10
)
