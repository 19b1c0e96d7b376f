package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Pungieee/smart-property-pms/internal/mapper"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

// GeohashPrecision is the number of geohash characters kept for an area
// centroid. Five characters resolve to a few kilometres.
const GeohashPrecision = 5

// minHullPoints is the smallest number of distinct points that still
// forms a polygon.
const minHullPoints = 3

// AreaGeometry describes one sub-locality derived from the units that
// carry coordinates.
type AreaGeometry struct {
	Name      string           `json:"name"`
	UnitCount int              `json:"unitCount"`
	Centroid  Coordinate       `json:"centroid"`
	Geohash   string           `json:"geohash"`
	Hull      *geojson.Feature `json:"hull" swaggertype:"object"`
}

type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// BuildAreaGeometries groups located units by sub-locality and derives a
// centroid, geohash, and convex hull per area. Areas without three
// distinct located points are skipped; output is sorted by name.
func BuildAreaGeometries(records []models.RawRecord) []AreaGeometry {
	units := mapper.ToUnits(records)

	type group struct {
		points []orb.Point
		seen   map[string]bool
		count  int
	}

	groups := make(map[string]*group)
	for i := range units {
		if units[i].Latitude == nil || units[i].Longitude == nil {
			continue
		}

		name := units[i].SubLocality
		if name == "" {
			name = "Unknown"
		}

		g := groups[name]
		if g == nil {
			g = &group{seen: make(map[string]bool)}
			groups[name] = g
		}
		g.count++

		// Deduplicate positions so stacked units do not distort the hull
		point := orb.Point{*units[i].Longitude, *units[i].Latitude}
		key := fmt.Sprintf("%.6f,%.6f", point[1], point[0])
		if !g.seen[key] {
			g.points = append(g.points, point)
			g.seen[key] = true
		}
	}

	areas := make([]AreaGeometry, 0, len(groups))
	for name, g := range groups {
		if len(g.points) < minHullPoints {
			continue
		}

		hull := convexHull(g.points)
		if hull == nil {
			continue
		}

		feature := geojson.NewFeature(hull)
		feature.Properties = geojson.Properties{
			"area":        name,
			"point_count": len(g.points),
			"hull_type":   "convex",
		}

		centroid := centroidOf(g.points)
		areas = append(areas, AreaGeometry{
			Name:      name,
			UnitCount: g.count,
			Centroid:  Coordinate{Latitude: centroid[1], Longitude: centroid[0]},
			Geohash:   geohash.Encode(centroid[1], centroid[0])[:GeohashPrecision],
			Hull:      feature,
		})
	}

	sort.Slice(areas, func(i, j int) bool {
		return areas[i].Name < areas[j].Name
	})

	return areas
}

func centroidOf(points []orb.Point) orb.Point {
	var sumLng, sumLat float64
	for _, p := range points {
		sumLng += p[0]
		sumLat += p[1]
	}
	n := float64(len(points))
	return orb.Point{sumLng / n, sumLat / n}
}

func sqDist(p1, p2 orb.Point) float64 {
	dx := p2[0] - p1[0]
	dy := p2[1] - p1[1]
	return dx*dx + dy*dy
}

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// convexHull runs a Graham scan and returns a closed counterclockwise
// ring. Returns nil when the points are all collinear.
func convexHull(points []orb.Point) orb.Ring {
	if len(points) < minHullPoints {
		return nil
	}

	pts := make([]orb.Point, len(points))
	copy(pts, points)

	// Anchor on the lowest point, leftmost on ties
	anchorIdx := 0
	for i := 1; i < len(pts); i++ {
		if pts[i][1] < pts[anchorIdx][1] ||
			(pts[i][1] == pts[anchorIdx][1] && pts[i][0] < pts[anchorIdx][0]) {
			anchorIdx = i
		}
	}
	pts[0], pts[anchorIdx] = pts[anchorIdx], pts[0]
	anchor := pts[0]

	rest := pts[1:]
	sort.Slice(rest, func(i, j int) bool {
		angleI := math.Atan2(rest[i][1]-anchor[1], rest[i][0]-anchor[0])
		angleJ := math.Atan2(rest[j][1]-anchor[1], rest[j][0]-anchor[0])
		if angleI != angleJ {
			return angleI < angleJ
		}
		return sqDist(anchor, rest[i]) < sqDist(anchor, rest[j])
	})

	hull := []orb.Point{pts[0], pts[1]}
	for i := 2; i < len(pts); i++ {
		for len(hull) > 1 && cross(hull[len(hull)-2], hull[len(hull)-1], pts[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pts[i])
	}

	if len(hull) < minHullPoints {
		return nil
	}

	// Close the ring
	hull = append(hull, hull[0])

	return orb.Ring(hull)
}
