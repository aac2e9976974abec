package section

import (
	"math"
	"sort"
)

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Polygon is a section outline defined by vertices in a local coordinate
// system where Y points upward. Vertices may be listed in either direction;
// the section is assumed to be a simple polygon (no holes).
type Polygon struct {
	Vertices []Point `json:"vertices"`
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Second moments of area about centroidal axes
	Ixx float64 // about the horizontal axis (mm⁴)
	Iyy float64 // about the vertical axis (mm⁴)

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Rmin is the least radius of gyration (mm)
func (p Properties) Rmin() float64 {
	if p.Area <= 0 {
		return 0
	}
	return math.Sqrt(math.Min(p.Ixx, p.Iyy) / p.Area)
}

// Rectangle builds a b×h rectangle with its bottom-left corner at the origin
func Rectangle(b, h float64) Polygon {
	return Polygon{Vertices: []Point{{0, 0}, {b, 0}, {b, h}, {0, h}}}
}

// ISection builds a doubly symmetric I-section, counter-clockwise from the
// bottom-left corner of the bottom flange.
func ISection(bf, tf, h, tw float64) Polygon {
	webL := (bf - tw) / 2
	webR := webL + tw
	return Polygon{Vertices: []Point{
		{0, 0},
		{bf, 0},
		{bf, tf},
		{webR, tf},
		{webR, h - tf},
		{bf, h - tf},
		{bf, h},
		{0, h},
		{0, h - tf},
		{webL, h - tf},
		{webL, tf},
		{0, tf},
	}}
}

// Properties computes area, centroid and second moments with the shoelace
// formula
func (s Polygon) Properties() Properties {
	props := Properties{}
	n := len(s.Vertices)
	if n < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y
	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}
	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	var signedArea, sumX, sumY, sumXX, sumYY float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := s.Vertices[i].X, s.Vertices[i].Y
		xj, yj := s.Vertices[j].X, s.Vertices[j].Y
		cross := xi*yj - xj*yi
		signedArea += cross
		sumX += (xi + xj) * cross
		sumY += (yi + yj) * cross
		sumXX += (yi*yi + yi*yj + yj*yj) * cross
		sumYY += (xi*xi + xi*xj + xj*xj) * cross
	}
	signedArea /= 2
	if signedArea == 0 {
		return props
	}

	props.Area = math.Abs(signedArea)
	props.CentroidX = sumX / (6 * signedArea)
	props.CentroidY = sumY / (6 * signedArea)

	// Second moments about the origin carry the orientation sign
	sign := 1.0
	if signedArea < 0 {
		sign = -1
	}
	ixOrigin := sign * sumXX / 12
	iyOrigin := sign * sumYY / 12
	props.Ixx = ixOrigin - props.Area*props.CentroidY*props.CentroidY
	props.Iyy = iyOrigin - props.Area*props.CentroidX*props.CentroidX

	return props
}

// PlasticModulus about the horizontal centroidal axis (mm³). It takes the
// first moments of the parts above and below the centroid, which is exact for
// sections symmetric about that axis.
func (s Polygon) PlasticModulus() float64 {
	props := s.Properties()
	if props.Area == 0 {
		return 0
	}
	top := Polygon{Vertices: s.clip(props.CentroidY, true)}.Properties()
	bottom := Polygon{Vertices: s.clip(props.CentroidY, false)}.Properties()
	return top.Area*(top.CentroidY-props.CentroidY) + bottom.Area*(props.CentroidY-bottom.CentroidY)
}

// WidthAt calculates the width of the section at level y using horizontal
// line intersection with the polygon
func (s Polygon) WidthAt(y float64) float64 {
	intersections := s.intersectionsAt(y)
	if len(intersections) < 2 {
		return 0
	}

	sort.Float64s(intersections)

	// Total width is the sum of all inside segments
	var total float64
	for i := 0; i+1 < len(intersections); i += 2 {
		total += intersections[i+1] - intersections[i]
	}
	return total
}

func (s Polygon) intersectionsAt(y float64) []float64 {
	var xs []float64
	n := len(s.Vertices)
	for i := 0; i < n; i++ {
		v1, v2 := s.Vertices[i], s.Vertices[(i+1)%n]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	return xs
}

// clip keeps the part of the polygon above (or below) the line Y = level
func (s Polygon) clip(level float64, above bool) []Point {
	inside := func(p Point) bool {
		if above {
			return p.Y >= level
		}
		return p.Y <= level
	}

	var out []Point
	n := len(s.Vertices)
	for i := 0; i < n; i++ {
		curr := s.Vertices[i]
		next := s.Vertices[(i+1)%n]

		if inside(curr) {
			out = append(out, curr)
		}
		if inside(curr) != inside(next) {
			t := (level - curr.Y) / (next.Y - curr.Y)
			out = append(out, Point{X: curr.X + t*(next.X-curr.X), Y: level})
		}
	}
	return out
}

// ClipAbove returns the part of the section above level y, used to shade the
// compression zone in section diagrams
func (s Polygon) ClipAbove(y float64) Polygon {
	return Polygon{Vertices: s.clip(y, true)}
}
