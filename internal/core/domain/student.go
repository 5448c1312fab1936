package domain

import "time"

// StudentStatus enumerates academic statuses.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentGraduated StudentStatus = "graduated"
	StudentSuspended StudentStatus = "suspended"
	StudentWithdrawn StudentStatus = "withdrawn"
	StudentOnLeave   StudentStatus = "on_leave"
)

// Student is the academic/demographic profile of a housed member, linked
// one-to-one to a User through UserID.
//
// The backend wire shape uses different names for two fields
// (matricule -> registrationNumber, level -> levelStudy); the translation
// lives in utils/mapping, not here.
type Student struct {
	Entity
	UserID       string        `json:"userId"`
	Matricule    string        `json:"matricule"`
	DateOfBirth  *time.Time    `json:"dateOfBirth,omitempty"`
	Gender       string        `json:"gender,omitempty"` // "M" or "F"
	Level        string        `json:"level,omitempty"`  // L1..L3, M1, M2
	Faculty      string        `json:"faculty,omitempty"`
	FieldOfStudy string        `json:"fieldOfStudy,omitempty"`
	Country      string        `json:"country,omitempty"`
	City         string        `json:"city,omitempty"`
	Status       StudentStatus `json:"status,omitempty"`
}
