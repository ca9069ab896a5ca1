package geo

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
)

// Fence boundaries arrive in two encodings: a delimited text form
// ("lat1,lng1;lat2,lng2;...") and a loosely-structured JSON form of the same
// pairs (nested arrays, or objects with lat/lng-style keys). The encoding is
// picked by sniffing the first non-space character.
//
// Both parsers follow the drop-malformed-vertex policy: a vertex that fails
// numeric parsing is discarded with a diagnostic and the rest of the boundary
// is kept. A boundary that ends up with fewer than 3 vertices never contains
// any point (see Polygon.Contains), so a badly mangled fence degrades to
// "matches nothing" instead of breaking evaluation of the other fences.

// ParseBoundary parses a raw boundary string into a Polygon. Malformed
// vertices are dropped; a completely unparseable input yields an empty
// polygon.
func ParseBoundary(raw string) Polygon {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if trimmed[0] == '[' || trimmed[0] == '{' {
		return parseJSONBoundary(trimmed)
	}
	return parseDelimitedBoundary(trimmed)
}

func parseDelimitedBoundary(raw string) Polygon {
	var poly Polygon
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			log.Printf("[geo] dropping malformed vertex %q", pair)
			continue
		}
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if latErr != nil || lngErr != nil {
			log.Printf("[geo] dropping malformed vertex %q", pair)
			continue
		}
		poly = append(poly, Point{Lat: lat, Lng: lng})
	}
	return poly
}

func parseJSONBoundary(raw string) Polygon {
	var root interface{}
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		log.Printf("[geo] unparseable JSON boundary: %v", err)
		return nil
	}

	nums := collectScalars(root, nil)
	if len(nums)%2 != 0 {
		log.Printf("[geo] dropping unpaired trailing coordinate in JSON boundary")
	}

	var poly Polygon
	for i := 0; i+1 < len(nums); i += 2 {
		poly = append(poly, Point{Lat: nums[i], Lng: nums[i+1]})
	}
	return poly
}

// collectScalars walks the decoded JSON value and gathers numeric scalars in
// order, alternating latitude/longitude. Objects with lat/lng-style keys
// contribute their pair explicitly; any other object shape is dropped rather
// than guessing at key iteration order.
func collectScalars(v interface{}, out []float64) []float64 {
	switch t := v.(type) {
	case float64:
		return append(out, t)
	case string:
		// Some boundary editors emit coordinates as quoted numbers.
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return append(out, f)
		}
		return out
	case []interface{}:
		for _, el := range t {
			out = collectScalars(el, out)
		}
		return out
	case map[string]interface{}:
		lat, latOK := numField(t, "lat", "latitude", "y")
		lng, lngOK := numField(t, "lng", "lon", "longitude", "x")
		if latOK && lngOK {
			return append(out, lat, lng)
		}
		return out
	default:
		return out
	}
}

func numField(m map[string]interface{}, keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t, true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}
