package geo

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Polygon is an ordered ring of vertices. The closing edge from the last
// vertex back to the first is implicit.
type Polygon []Point

// Contains reports whether pt lies inside the polygon, using the even-odd
// (ray casting) rule: an edge counts when its two latitudes straddle the
// query latitude and the edge's longitude at that latitude lies east of the
// query point. An odd crossing count means inside.
//
// A polygon with fewer than 3 vertices contains nothing.
func (p Polygon) Contains(pt Point) bool {
	if len(p) < 3 {
		return false
	}

	inside := false
	j := len(p) - 1
	for i := 0; i < len(p); i++ {
		vi, vj := p[i], p[j]
		if (vi.Lat > pt.Lat) != (vj.Lat > pt.Lat) {
			crossLng := (vj.Lng-vi.Lng)*(pt.Lat-vi.Lat)/(vj.Lat-vi.Lat) + vi.Lng
			if pt.Lng < crossLng {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
