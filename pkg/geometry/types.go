// Package geometry provides the 2D primitives used by patch generation and
// exclusion-zone checking. All coordinates and lengths are in millimetres;
// angles are in degrees unless a name says otherwise.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects returns true if this rectangle intersects with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height && r.Y+r.Height > other.Y
}

// Intersection returns the overlapping region of two rectangles and whether
// one exists.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	x := math.Max(r.X, other.X)
	y := math.Max(r.Y, other.Y)
	x2 := math.Min(r.X+r.Width, other.X+other.Width)
	y2 := math.Min(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}, true
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	x2 := math.Max(r.X+r.Width, other.X+other.Width)
	y2 := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Arc represents a sector of a cylinder surface unrolled onto the scan plane:
// an angular span at a given radius over an axial extent.
type Arc struct {
	CenterX    float64 `json:"center_x"` // cylinder axis position
	CenterY    float64 `json:"center_y"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"start_angle"` // degrees
	EndAngle   float64 `json:"end_angle"`   // degrees
	AxialStart float64 `json:"axial_start"` // along the cylinder axis
	AxialEnd   float64 `json:"axial_end"`
}

// SpanDegrees returns the angular span of the arc.
func (a Arc) SpanDegrees() float64 {
	return a.EndAngle - a.StartAngle
}

// ArcLength returns the surface length of the angular span.
func (a Arc) ArcLength() float64 {
	return a.Radius * a.SpanDegrees() * math.Pi / 180
}

// AxialLength returns the extent of the arc along the cylinder axis.
func (a Arc) AxialLength() float64 {
	return a.AxialEnd - a.AxialStart
}

// Area returns the unrolled surface area of the sector.
func (a Arc) Area() float64 {
	return a.ArcLength() * a.AxialLength()
}

// Annulus represents a flat ring zone on an end face, bounded by two radii
// and an angular span.
type Annulus struct {
	CenterX     float64 `json:"center_x"`
	CenterY     float64 `json:"center_y"`
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	StartAngle  float64 `json:"start_angle"` // degrees
	EndAngle    float64 `json:"end_angle"`   // degrees
}

// Area returns the area of the annular sector.
func (a Annulus) Area() float64 {
	span := (a.EndAngle - a.StartAngle) * math.Pi / 180
	return 0.5 * span * (a.OuterRadius*a.OuterRadius - a.InnerRadius*a.InnerRadius)
}

// RadialWidth returns the width of the ring band.
func (a Annulus) RadialWidth() float64 {
	return a.OuterRadius - a.InnerRadius
}
