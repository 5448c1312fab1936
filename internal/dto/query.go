package dto

import "strconv"

// ListParams carries the pagination and ordering options shared by every list
// endpoint. Zero values mean "not set" and are omitted from query strings.
type ListParams struct {
	Page  int
	Limit int
	Sort  string
}

// Query renders the set parameters. Absent keys are omitted, never sent empty.
func (p ListParams) Query() map[string]string {
	q := map[string]string{}
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Sort != "" {
		q["sort"] = p.Sort
	}
	return q
}

// BuildingFilter narrows building listings.
type BuildingFilter struct {
	QuarterID string
}

// RoomFilter narrows room listings.
type RoomFilter struct {
	BuildingID string
	Status     string
}

// OccupationFilter narrows occupation listings. IsActive is a tri-state:
// nil means "do not filter".
type OccupationFilter struct {
	RoomID    string
	StudentID string
	IsActive  *bool
}

// RentPaymentFilter narrows rent payment listings.
type RentPaymentFilter struct {
	OccupationID string
}

// StudentFilter narrows student listings. Level matches the backend's
// levelStudy field.
type StudentFilter struct {
	Status string
	Level  string
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role string
}
