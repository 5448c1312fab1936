package domain_test

import (
	"testing"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func room(id, buildingID string, capacity int, status domain.RoomStatus) domain.Room {
	return domain.Room{
		Entity:     domain.Entity{ID: id},
		RoomNumber: id,
		BuildingID: buildingID,
		Capacity:   capacity,
		Status:     status,
	}
}

func occupation(roomID string, active bool) domain.RoomOccupation {
	return domain.RoomOccupation{RoomID: roomID, IsActive: active}
}

func TestComputeRoomOccupancy(t *testing.T) {
	r := room("r1", "b1", 2, domain.RoomAvailable)
	occs := []domain.RoomOccupation{
		occupation("r1", true),
		occupation("r1", false), // ended, must not count
		occupation("r2", true),  // other room
	}

	o := domain.ComputeRoomOccupancy(r, occs)

	assert.Equal(t, 1, o.ActiveCount)
	assert.Equal(t, 1, o.Remaining)
	assert.False(t, o.IsFull)
}

func TestComputeRoomOccupancy_Full(t *testing.T) {
	r := room("r1", "b1", 1, domain.RoomAvailable)
	o := domain.ComputeRoomOccupancy(r, []domain.RoomOccupation{occupation("r1", true)})

	assert.True(t, o.IsFull)
	assert.Equal(t, 0, o.Remaining)
}

func TestComputeBuildingSummary(t *testing.T) {
	b := domain.Building{Entity: domain.Entity{ID: "b1"}, Name: "Bloc A", QuarterID: "q1"}
	rooms := []domain.Room{
		room("r1", "b1", 2, domain.RoomAvailable),
		room("r2", "b1", 1, domain.RoomAvailable),
		room("r3", "b1", 1, domain.RoomMaintenance),
		room("r4", "other", 1, domain.RoomAvailable), // other building, ignored
	}
	occs := []domain.RoomOccupation{
		occupation("r1", true),
		occupation("r2", true),
	}

	s := domain.ComputeBuildingSummary(b, rooms, occs)

	assert.Equal(t, 3, s.TotalRooms)
	assert.Equal(t, 2, s.OccupiedRooms)
	// r1 has spare capacity, r2 is full, r3 is in maintenance
	assert.Equal(t, 1, s.AvailableRooms)
}

func TestComputeQuarterSummary(t *testing.T) {
	q := domain.Quarter{Entity: domain.Entity{ID: "q1"}, Name: "Centre"}
	buildings := []domain.Building{
		{Entity: domain.Entity{ID: "b1"}, QuarterID: "q1"},
		{Entity: domain.Entity{ID: "b2"}, QuarterID: "q1"},
		{Entity: domain.Entity{ID: "b3"}, QuarterID: "other"},
	}
	rooms := []domain.Room{
		room("r1", "b1", 2, domain.RoomAvailable),
		room("r2", "b2", 1, domain.RoomAvailable),
	}
	occs := []domain.RoomOccupation{occupation("r1", true)}

	s := domain.ComputeQuarterSummary(q, buildings, rooms, occs)

	assert.Equal(t, 2, s.TotalBuildings)
	assert.Equal(t, 2, s.TotalRooms)
	assert.Equal(t, 1, s.OccupiedRooms)
	assert.Equal(t, 2, s.AvailableRooms)
}

func TestComputeQuarterSummary_Empty(t *testing.T) {
	q := domain.Quarter{Entity: domain.Entity{ID: "q1"}}
	s := domain.ComputeQuarterSummary(q, nil, nil, nil)
	assert.Zero(t, s.TotalBuildings)
	assert.Zero(t, s.TotalRooms)
}
