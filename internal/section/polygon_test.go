package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleProperties(t *testing.T) {
	props := Rectangle(200, 400).Properties()

	assert.InDelta(t, 80000, props.Area, 1e-9)
	assert.InDelta(t, 100, props.CentroidX, 1e-9)
	assert.InDelta(t, 200, props.CentroidY, 1e-9)
	assert.InDelta(t, 200*math.Pow(400, 3)/12, props.Ixx, 1e-3)
	assert.InDelta(t, 400*math.Pow(200, 3)/12, props.Iyy, 1e-3)
	assert.InDelta(t, 200, props.Width, 1e-9)
	assert.InDelta(t, 400, props.Height, 1e-9)
}

func TestClockwiseVerticesGiveSameProperties(t *testing.T) {
	ccw := Rectangle(300, 500)
	cw := Polygon{Vertices: []Point{{0, 0}, {0, 500}, {300, 500}, {300, 0}}}

	a, b := ccw.Properties(), cw.Properties()
	assert.InDelta(t, a.Area, b.Area, 1e-9)
	assert.InDelta(t, a.Ixx, b.Ixx, 1e-3)
	assert.InDelta(t, a.Iyy, b.Iyy, 1e-3)
}

func TestISectionProperties(t *testing.T) {
	// ISMB 300: bf=140, tf=12.4, h=300, tw=7.5
	bf, tf, h, tw := 140.0, 12.4, 300.0, 7.5
	sec := ISection(bf, tf, h, tw)
	props := sec.Properties()

	area := 2*bf*tf + (h-2*tf)*tw
	assert.InDelta(t, area, props.Area, 1e-6)
	assert.InDelta(t, h/2, props.CentroidY, 1e-9)

	hw := h - 2*tf
	ixx := bf*math.Pow(h, 3)/12 - (bf-tw)*math.Pow(hw, 3)/12
	iyy := 2*tf*math.Pow(bf, 3)/12 + hw*math.Pow(tw, 3)/12
	assert.InDelta(t, ixx, props.Ixx, 1)
	assert.InDelta(t, iyy, props.Iyy, 1)
	assert.InDelta(t, math.Sqrt(iyy/area), props.Rmin(), 1e-6)

	zp := bf*tf*(h-tf) + tw*hw*hw/4
	assert.InDelta(t, zp, sec.PlasticModulus(), 1)
}

func TestWidthAt(t *testing.T) {
	sec := ISection(140, 12.4, 300, 7.5)

	assert.InDelta(t, 140, sec.WidthAt(5), 1e-9)
	assert.InDelta(t, 7.5, sec.WidthAt(150), 1e-9)
	assert.InDelta(t, 140, sec.WidthAt(295), 1e-9)
	assert.Zero(t, sec.WidthAt(400))
}

func TestClipAbove(t *testing.T) {
	top := Rectangle(200, 400).ClipAbove(300).Properties()
	assert.InDelta(t, 200*100, top.Area, 1e-9)
	assert.InDelta(t, 350, top.CentroidY, 1e-9)
}

func TestDegeneratePolygon(t *testing.T) {
	props := Polygon{Vertices: []Point{{0, 0}, {1, 1}}}.Properties()
	assert.Zero(t, props.Area)
	assert.Zero(t, props.Rmin())
}
