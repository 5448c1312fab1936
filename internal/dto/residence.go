package dto

import (
	"time"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Residence entities share their wire shape with the domain structs; only the
// create/patch bodies are declared here.

// CreateQuarterRequest is the body of POST /residence/quarters.
type CreateQuarterRequest struct {
	Name        string `json:"name" validate:"required" binding:"required"`
	City        string `json:"city" validate:"required" binding:"required"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// QuarterPatch is a partial update of a quarter.
type QuarterPatch struct {
	Name        *string `json:"name,omitempty"`
	City        *string `json:"city,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateBuildingRequest is the body of POST /residence/buildings.
type CreateBuildingRequest struct {
	Name        string `json:"name" validate:"required" binding:"required"`
	QuarterID   string `json:"quarterId" validate:"required" binding:"required"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// BuildingPatch is a partial update of a building.
type BuildingPatch struct {
	Name        *string `json:"name,omitempty"`
	QuarterID   *string `json:"quarterId,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateRoomRequest is the body of POST /residence/rooms.
type CreateRoomRequest struct {
	RoomNumber  string            `json:"roomNumber" validate:"required" binding:"required"`
	BuildingID  string            `json:"buildingId" validate:"required" binding:"required"`
	Capacity    int               `json:"capacity" validate:"required,min=1" binding:"required,min=1"`
	MonthlyRent decimal.Decimal   `json:"monthlyRent"`
	Status      domain.RoomStatus `json:"status,omitempty"`
	Description string            `json:"description,omitempty"`
}

// RoomPatch is a partial update of a room.
type RoomPatch struct {
	RoomNumber  *string            `json:"roomNumber,omitempty"`
	Capacity    *int               `json:"capacity,omitempty"`
	MonthlyRent *decimal.Decimal   `json:"monthlyRent,omitempty"`
	Status      *domain.RoomStatus `json:"status,omitempty"`
	Description *string            `json:"description,omitempty"`
}

// CreateOccupationRequest is the body of POST /residence/room-occupations.
type CreateOccupationRequest struct {
	RoomID      string          `json:"roomId" validate:"required" binding:"required"`
	StudentID   string          `json:"studentId" validate:"required" binding:"required"`
	StartDate   time.Time       `json:"startDate" validate:"required" binding:"required"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	IsActive    bool            `json:"isActive"`
}

// OccupationPatch is a partial update of an occupation.
type OccupationPatch struct {
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	MonthlyRent *decimal.Decimal `json:"monthlyRent,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
}

// CreateRentPaymentRequest is the body of POST /residence/rent-payments.
type CreateRentPaymentRequest struct {
	OccupationID  string          `json:"occupationId" validate:"required" binding:"required"`
	StudentID     string          `json:"studentId" validate:"required" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate" validate:"required" binding:"required"`
	Period        string          `json:"period" validate:"required" binding:"required"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	ReceiptURL    string          `json:"receiptUrl,omitempty"`
}

// RentPaymentPatch is a partial update of a rent payment.
type RentPaymentPatch struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentDate   *time.Time       `json:"paymentDate,omitempty"`
	Period        *string          `json:"period,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	ReceiptURL    *string          `json:"receiptUrl,omitempty"`
}
