package geo_test

import (
	"testing"

	"github.com/HavenWatch/HW-Backend/internal/geo"
)

func TestParseBoundary_Delimited(t *testing.T) {
	poly := geo.ParseBoundary("10,20;10,30;20,30;20,20")
	if len(poly) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(poly))
	}
	if !poly.Contains(geo.Point{Lat: 15, Lng: 25}) {
		t.Error("(15,25) should be inside the parsed square")
	}
	if poly.Contains(geo.Point{Lat: 0, Lng: 0}) {
		t.Error("(0,0) should be outside the parsed square")
	}
}

func TestParseBoundary_DelimitedWithSpaces(t *testing.T) {
	poly := geo.ParseBoundary(" 10 , 20 ; 10 , 30 ; 20 , 30 ")
	if len(poly) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(poly))
	}
	if poly[0] != (geo.Point{Lat: 10, Lng: 20}) {
		t.Errorf("unexpected first vertex %v", poly[0])
	}
}

func TestParseBoundary_DropsMalformedVertices(t *testing.T) {
	// One garbage vertex and one with a missing longitude: both dropped,
	// the remaining square survives.
	poly := geo.ParseBoundary("10,20;oops;10,30;20,30;77;20,20")
	if len(poly) != 4 {
		t.Fatalf("expected 4 vertices after dropping malformed ones, got %d", len(poly))
	}
}

func TestParseBoundary_TooFewVerticesMatchesNothing(t *testing.T) {
	poly := geo.ParseBoundary("10,20;junk;more junk;20,30")
	if len(poly) != 2 {
		t.Fatalf("expected 2 surviving vertices, got %d", len(poly))
	}
	if poly.Contains(geo.Point{Lat: 15, Lng: 25}) {
		t.Error("a boundary with fewer than 3 vertices must contain nothing")
	}
}

func TestParseBoundary_JSONNestedArrays(t *testing.T) {
	poly := geo.ParseBoundary(`[[10,20],[10,30],[20,30],[20,20]]`)
	if len(poly) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(poly))
	}
	if !poly.Contains(geo.Point{Lat: 15, Lng: 25}) {
		t.Error("(15,25) should be inside the parsed square")
	}
}

func TestParseBoundary_JSONFlatArray(t *testing.T) {
	poly := geo.ParseBoundary(`[10,20,10,30,20,30,20,20]`)
	if len(poly) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(poly))
	}
}

func TestParseBoundary_JSONObjects(t *testing.T) {
	poly := geo.ParseBoundary(`{"points":[{"lat":10,"lng":20},{"lat":10,"lng":30},{"lat":20,"lng":30}]}`)
	if len(poly) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(poly))
	}
	if poly[2] != (geo.Point{Lat: 20, Lng: 30}) {
		t.Errorf("unexpected last vertex %v", poly[2])
	}
}

func TestParseBoundary_JSONQuotedNumbers(t *testing.T) {
	poly := geo.ParseBoundary(`[["10","20"],["10","30"],["20","30"]]`)
	if len(poly) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(poly))
	}
}

func TestParseBoundary_JSONMalformedPairDropped(t *testing.T) {
	// The object without recognizable keys is skipped; the quoted garbage
	// string contributes nothing.
	poly := geo.ParseBoundary(`[[10,20],{"foo":1,"bar":2},[10,30],"junk",[20,30]]`)
	if len(poly) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(poly))
	}
}

func TestParseBoundary_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"broken json", `[[10,20],`},
		{"all garbage", "a;b;c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly := geo.ParseBoundary(tt.raw)
			if len(poly) != 0 {
				t.Errorf("expected empty polygon, got %d vertices", len(poly))
			}
		})
	}
}
