package memory

import (
	"sort"
	"time"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// Pure filtering/paging helpers shared by the mock services and the mock
// backend handlers. Empty filter fields match everything.

func FilterBuildings(items []domain.Building, f dto.BuildingFilter) []domain.Building {
	out := items[:0:0]
	for _, b := range items {
		if f.QuarterID != "" && b.QuarterID != f.QuarterID {
			continue
		}
		out = append(out, b)
	}
	return out
}

func FilterRooms(items []domain.Room, f dto.RoomFilter) []domain.Room {
	out := items[:0:0]
	for _, r := range items {
		if f.BuildingID != "" && r.BuildingID != f.BuildingID {
			continue
		}
		if f.Status != "" && string(r.Status) != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

func FilterOccupations(items []domain.RoomOccupation, f dto.OccupationFilter) []domain.RoomOccupation {
	out := items[:0:0]
	for _, o := range items {
		if f.RoomID != "" && o.RoomID != f.RoomID {
			continue
		}
		if f.StudentID != "" && o.StudentID != f.StudentID {
			continue
		}
		if f.IsActive != nil && o.IsActive != *f.IsActive {
			continue
		}
		out = append(out, o)
	}
	return out
}

func FilterRentPayments(items []domain.RentPayment, f dto.RentPaymentFilter) []domain.RentPayment {
	out := items[:0:0]
	for _, p := range items {
		if f.OccupationID != "" && p.OccupationID != f.OccupationID {
			continue
		}
		out = append(out, p)
	}
	return out
}

func FilterStudents(items []domain.Student, f dto.StudentFilter) []domain.Student {
	out := items[:0:0]
	for _, s := range items {
		if f.Status != "" && string(s.Status) != f.Status {
			continue
		}
		if f.Level != "" && s.Level != f.Level {
			continue
		}
		out = append(out, s)
	}
	return out
}

func FilterUsers(items []domain.User, f dto.UserFilter) []domain.User {
	out := items[:0:0]
	for _, u := range items {
		if f.Role != "" && string(u.Role) != f.Role {
			continue
		}
		out = append(out, u)
	}
	return out
}

type timestamped interface {
	ports.Record
	Timestamps() (created, updated time.Time)
}

// SortRecords orders by the given sort key; a leading "-" reverses. Known
// keys are createdAt, updatedAt and id; anything else leaves the input order.
func SortRecords[T timestamped](items []T, key string) {
	desc := false
	if len(key) > 0 && key[0] == '-' {
		desc = true
		key = key[1:]
	}
	var less func(a, b T) bool
	switch key {
	case "createdAt":
		less = func(a, b T) bool {
			ca, _ := a.Timestamps()
			cb, _ := b.Timestamps()
			return ca.Before(cb)
		}
	case "updatedAt":
		less = func(a, b T) bool {
			_, ua := a.Timestamps()
			_, ub := b.Timestamps()
			return ua.Before(ub)
		}
	case "id":
		less = func(a, b T) bool { return a.EntityID() < b.EntityID() }
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// Paginate slices items into the backend's list envelope. Page and limit
// default to 1 and 10; an out-of-range page yields an empty items slice.
func Paginate[T any](items []T, page, limit int) dto.Paginated[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	end := start + limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return dto.Paginated[T]{
		Items: append([]T(nil), items[start:end]...),
		Total: len(items),
		Page:  page,
		Limit: limit,
	}
}
