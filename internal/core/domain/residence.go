package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomStatus enumerates the declared state of a room. Occupancy counts are
// never stored on the room; they are derived (see occupancy.go).
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

// Quarter is the top level of the residence hierarchy.
type Quarter struct {
	Entity
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// Building belongs to exactly one Quarter.
type Building struct {
	Entity
	Name        string `json:"name"`
	QuarterID   string `json:"quarterId"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// Room belongs to exactly one Building.
type Room struct {
	Entity
	RoomNumber  string          `json:"roomNumber"`
	BuildingID  string          `json:"buildingId"`
	Capacity    int             `json:"capacity"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	Status      RoomStatus      `json:"status"`
	Description string          `json:"description,omitempty"`
}

// RoomOccupation links a Student to a Room for the interval
// [StartDate, EndDate]. IsActive must be true iff EndDate is unset and the
// occupation has not been superseded.
type RoomOccupation struct {
	Entity
	RoomID      string          `json:"roomId"`
	StudentID   string          `json:"studentId"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	IsActive    bool            `json:"isActive"`
}

// RentPayment records a point-in-time payment against an occupation.
// Append-only; it never mutates occupation state.
type RentPayment struct {
	Entity
	OccupationID  string          `json:"occupationId"`
	StudentID     string          `json:"studentId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Period        string          `json:"period"` // e.g. "Janvier 2025"
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	ReceiptURL    string          `json:"receiptUrl,omitempty"`
}
