package memory_test

import (
	"testing"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/memory"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestFilterRooms(t *testing.T) {
	rooms := memory.RoomFixtures()

	blocA := memory.FilterRooms(rooms, dto.RoomFilter{BuildingID: "1"})
	assert.Len(t, blocA, 3)

	available := memory.FilterRooms(rooms, dto.RoomFilter{Status: "available"})
	for _, r := range available {
		assert.Equal(t, domain.RoomAvailable, r.Status)
	}

	none := memory.FilterRooms(rooms, dto.RoomFilter{BuildingID: "1", Status: "maintenance"})
	assert.Empty(t, none)
}

func TestFilterOccupations_TriStateActive(t *testing.T) {
	occs := memory.OccupationFixtures()

	all := memory.FilterOccupations(occs, dto.OccupationFilter{})
	assert.Len(t, all, len(occs))

	active := true
	onlyActive := memory.FilterOccupations(occs, dto.OccupationFilter{IsActive: &active})
	assert.Len(t, onlyActive, 4)

	inactive := false
	ended := memory.FilterOccupations(occs, dto.OccupationFilter{IsActive: &inactive})
	assert.Len(t, ended, 1)
	assert.Equal(t, "5", ended[0].ID)
}

func TestFilterStudents(t *testing.T) {
	students := memory.StudentFixtures()

	graduated := memory.FilterStudents(students, dto.StudentFilter{Status: "graduated"})
	assert.Len(t, graduated, 1)
	assert.Equal(t, "STU-2023-045", graduated[0].Matricule)

	l3 := memory.FilterStudents(students, dto.StudentFilter{Level: "L3"})
	assert.Len(t, l3, 1)
}

func TestFilterUsers_ByRole(t *testing.T) {
	users := memory.UserFixtures()

	students := memory.FilterUsers(users, dto.UserFilter{Role: "student"})
	assert.Len(t, students, 5)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := memory.Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page.Items)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Limit)
}

func TestPaginate_OutOfRangePage(t *testing.T) {
	page := memory.Paginate([]int{1, 2}, 9, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Total)
}

func TestPaginate_Defaults(t *testing.T) {
	page := memory.Paginate([]int{1}, 0, 0)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
}

func TestSortRecords(t *testing.T) {
	rooms := memory.RoomFixtures()
	memory.SortRecords(rooms, "-id")
	assert.Equal(t, "7", rooms[0].ID)

	memory.SortRecords(rooms, "id")
	assert.Equal(t, "1", rooms[0].ID)
}
