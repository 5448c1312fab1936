package domain

// Occupancy rollups are derived on every read from the current snapshot of
// rooms and occupations; nothing here is ever stored back.

// RoomOccupancy is the derived occupancy state of a single room.
type RoomOccupancy struct {
	Room        Room
	ActiveCount int
	Remaining   int
	IsFull      bool
}

// BuildingSummary aggregates room counts for one building.
type BuildingSummary struct {
	Building       Building
	TotalRooms     int
	OccupiedRooms  int // at least one active occupation
	AvailableRooms int // declared available and spare capacity left
}

// QuarterSummary aggregates building and room counts for one quarter.
type QuarterSummary struct {
	Quarter        Quarter
	TotalBuildings int
	TotalRooms     int
	OccupiedRooms  int
	AvailableRooms int
}

// ComputeRoomOccupancy counts the active occupations of room. Occupations of
// other rooms and inactive occupations are ignored.
func ComputeRoomOccupancy(room Room, occupations []RoomOccupation) RoomOccupancy {
	active := 0
	for _, occ := range occupations {
		if occ.RoomID == room.ID && occ.IsActive {
			active++
		}
	}
	remaining := room.Capacity - active
	if remaining < 0 {
		remaining = 0
	}
	return RoomOccupancy{
		Room:        room,
		ActiveCount: active,
		Remaining:   remaining,
		IsFull:      room.Capacity > 0 && active >= room.Capacity,
	}
}

// ComputeBuildingSummary rolls up the rooms of building b. Rooms that belong
// to other buildings are ignored, so callers may pass an unfiltered snapshot.
func ComputeBuildingSummary(b Building, rooms []Room, occupations []RoomOccupation) BuildingSummary {
	s := BuildingSummary{Building: b}
	for _, room := range rooms {
		if room.BuildingID != b.ID {
			continue
		}
		s.TotalRooms++
		occ := ComputeRoomOccupancy(room, occupations)
		if occ.ActiveCount > 0 {
			s.OccupiedRooms++
		}
		if room.Status == RoomAvailable && !occ.IsFull {
			s.AvailableRooms++
		}
	}
	return s
}

// ComputeQuarterSummary rolls up every building of quarter q.
func ComputeQuarterSummary(q Quarter, buildings []Building, rooms []Room, occupations []RoomOccupation) QuarterSummary {
	s := QuarterSummary{Quarter: q}
	for _, b := range buildings {
		if b.QuarterID != q.ID {
			continue
		}
		s.TotalBuildings++
		bs := ComputeBuildingSummary(b, rooms, occupations)
		s.TotalRooms += bs.TotalRooms
		s.OccupiedRooms += bs.OccupiedRooms
		s.AvailableRooms += bs.AvailableRooms
	}
	return s
}
