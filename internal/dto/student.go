package dto

import (
	"time"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
)

// StudentWire is the backend's student shape. Two fields are named
// differently from the domain: registrationNumber (domain matricule) and
// levelStudy (domain level).
type StudentWire struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	RegistrationNumber string     `json:"registrationNumber"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	LevelStudy         string     `json:"levelStudy,omitempty"`
	Faculty            string     `json:"faculty,omitempty"`
	FieldOfStudy       string     `json:"fieldOfStudy,omitempty"`
	Country            string     `json:"country,omitempty"`
	City               string     `json:"city,omitempty"`
	Status             string     `json:"status,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// CreateStudentRequest is the wire body of POST /students.
type CreateStudentRequest struct {
	UserID             string     `json:"userId" validate:"required" binding:"required"`
	RegistrationNumber string     `json:"registrationNumber" validate:"required" binding:"required"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	LevelStudy         string     `json:"levelStudy,omitempty"`
	Faculty            string     `json:"faculty,omitempty"`
	FieldOfStudy       string     `json:"fieldOfStudy,omitempty"`
	Country            string     `json:"country,omitempty"`
	City               string     `json:"city,omitempty"`
	Status             string     `json:"status,omitempty"`
}

// StudentPatch is a partial update expressed with domain field names.
// Pointers distinguish omitted fields from zero values: a nil field is not
// sent at all.
type StudentPatch struct {
	Matricule    *string
	DateOfBirth  *time.Time
	Gender       *string
	Level        *string
	Faculty      *string
	FieldOfStudy *string
	Country      *string
	City         *string
	Status       *domain.StudentStatus
}

// StudentWirePatch is the PATCH /students/{id} body, wire field names,
// omitting everything the caller did not set.
type StudentWirePatch struct {
	RegistrationNumber *string               `json:"registrationNumber,omitempty"`
	DateOfBirth        *time.Time            `json:"dateOfBirth,omitempty"`
	Gender             *string               `json:"gender,omitempty"`
	LevelStudy         *string               `json:"levelStudy,omitempty"`
	Faculty            *string               `json:"faculty,omitempty"`
	FieldOfStudy       *string               `json:"fieldOfStudy,omitempty"`
	Country            *string               `json:"country,omitempty"`
	City               *string               `json:"city,omitempty"`
	Status             *domain.StudentStatus `json:"status,omitempty"`
}
