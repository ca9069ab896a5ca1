package geo_test

import (
	"testing"

	"github.com/HavenWatch/HW-Backend/internal/geo"
)

func square() geo.Polygon {
	return geo.Polygon{
		{Lat: 10, Lng: 20},
		{Lat: 10, Lng: 30},
		{Lat: 20, Lng: 30},
		{Lat: 20, Lng: 20},
	}
}

func TestContains_Square(t *testing.T) {
	sq := square()

	tests := []struct {
		name string
		pt   geo.Point
		want bool
	}{
		{"center", geo.Point{Lat: 15, Lng: 25}, true},
		{"origin", geo.Point{Lat: 0, Lng: 0}, false},
		{"west of box", geo.Point{Lat: 15, Lng: 10}, false},
		{"east of box", geo.Point{Lat: 15, Lng: 40}, false},
		{"north of box", geo.Point{Lat: 25, Lng: 25}, false},
		{"south of box", geo.Point{Lat: 5, Lng: 25}, false},
		{"near inside corner", geo.Point{Lat: 10.5, Lng: 20.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sq.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestContains_ConvexCentroid(t *testing.T) {
	// Irregular convex pentagon; its centroid must test inside.
	poly := geo.Polygon{
		{Lat: 0, Lng: 0},
		{Lat: 2, Lng: 4},
		{Lat: 6, Lng: 5},
		{Lat: 8, Lng: 2},
		{Lat: 5, Lng: -2},
	}

	var c geo.Point
	for _, v := range poly {
		c.Lat += v.Lat
		c.Lng += v.Lng
	}
	c.Lat /= float64(len(poly))
	c.Lng /= float64(len(poly))

	if !poly.Contains(c) {
		t.Errorf("centroid %v should be inside the polygon", c)
	}
}

func TestContains_OutsideBoundingBox(t *testing.T) {
	poly := geo.Polygon{
		{Lat: 1, Lng: 1},
		{Lat: 1, Lng: 3},
		{Lat: 4, Lng: 2},
	}

	// Points strictly outside the bounding box must always test outside.
	outside := []geo.Point{
		{Lat: 5, Lng: 2},
		{Lat: 0, Lng: 2},
		{Lat: 2, Lng: 4},
		{Lat: 2, Lng: 0},
		{Lat: -10, Lng: -10},
	}
	for _, pt := range outside {
		if poly.Contains(pt) {
			t.Errorf("point %v outside bounding box reported inside", pt)
		}
	}
}

func TestContains_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		poly geo.Polygon
	}{
		{"nil", nil},
		{"single vertex", geo.Polygon{{Lat: 1, Lng: 1}}},
		{"two vertices", geo.Polygon{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.poly.Contains(geo.Point{Lat: 1, Lng: 1}) {
				t.Error("degenerate polygon must contain nothing")
			}
		})
	}
}

func TestContains_Concave(t *testing.T) {
	// U-shape: the notch between the arms is outside.
	poly := geo.Polygon{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 7},
		{Lat: 3, Lng: 7},
		{Lat: 3, Lng: 3},
		{Lat: 10, Lng: 3},
		{Lat: 10, Lng: 0},
	}

	if !poly.Contains(geo.Point{Lat: 1, Lng: 5}) {
		t.Error("base of the U should be inside")
	}
	if poly.Contains(geo.Point{Lat: 7, Lng: 5}) {
		t.Error("notch of the U should be outside")
	}
	if !poly.Contains(geo.Point{Lat: 7, Lng: 8}) {
		t.Error("right arm of the U should be inside")
	}
}
