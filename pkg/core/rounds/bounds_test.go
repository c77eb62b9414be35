package rounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

func TestBoundsOf_NoLocatedVisits(t *testing.T) {
	visits := []model.Visit{
		mkVisit("v1", "su1", "08:00", "08:30", 30),
	}

	assert.Nil(t, BoundsOf(visits, map[string]*model.Coordinate{}))
	assert.Nil(t, BoundsOf(nil, map[string]*model.Coordinate{}))
}

func TestBoundsOf_SingleVisit(t *testing.T) {
	visits := []model.Visit{
		mkVisit("v1", "su1", "08:00", "08:30", 30),
	}
	locations := map[string]*model.Coordinate{"su1": &homeA}

	box := BoundsOf(visits, locations)
	require.NotNil(t, box)
	assert.Equal(t, homeA.Lat, box.North)
	assert.Equal(t, homeA.Lat, box.South)
	assert.Equal(t, homeA.Long, box.East)
	assert.Equal(t, homeA.Long, box.West)
}

func TestBoundsOf_SpansAllLocatedVisits(t *testing.T) {
	visits := []model.Visit{
		mkVisit("v1", "su1", "08:00", "08:30", 30),
		mkVisit("v2", "su2", "09:00", "09:30", 30),
		mkVisit("v3", "su3", "10:00", "10:30", 30), // unlocated, ignored
	}
	locations := map[string]*model.Coordinate{
		"su1": {Lat: 51.55, Long: 0.05},
		"su2": {Lat: 51.60, Long: 0.10},
	}

	box := BoundsOf(visits, locations)
	require.NotNil(t, box)
	assert.Equal(t, 51.60, box.North)
	assert.Equal(t, 51.55, box.South)
	assert.Equal(t, 0.10, box.East)
	assert.Equal(t, 0.05, box.West)
}
