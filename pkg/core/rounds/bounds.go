package rounds

import "github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"

// BoundingBox is the geographic envelope of a set of visits, for map framing
type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

// BoundsOf returns the bounding box across all located visits' service-user
// coordinates. Returns nil when no visit has a known location.
func BoundsOf(visits []model.Visit, locations map[string]*model.Coordinate) *BoundingBox {
	var box *BoundingBox

	for _, visit := range visits {
		loc := locations[visit.ServiceUserID]
		if loc == nil {
			continue
		}

		if box == nil {
			box = &BoundingBox{North: loc.Lat, South: loc.Lat, East: loc.Long, West: loc.Long}
			continue
		}

		if loc.Lat > box.North {
			box.North = loc.Lat
		}
		if loc.Lat < box.South {
			box.South = loc.Lat
		}
		if loc.Long > box.East {
			box.East = loc.Long
		}
		if loc.Long < box.West {
			box.West = loc.Long
		}
	}

	return box
}
