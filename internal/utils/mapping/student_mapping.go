// Package mapping translates between the frontend domain shapes and the
// backend wire shapes. The student entity is the only one whose field names
// differ (matricule <-> registrationNumber, level <-> levelStudy); the
// translation is pure and bidirectional.
package mapping

import (
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// ToDomainStudent converts a wire student to the domain shape.
func ToDomainStudent(w dto.StudentWire) domain.Student {
	return domain.Student{
		Entity: domain.Entity{
			ID:        w.ID,
			CreatedAt: w.CreatedAt,
			UpdatedAt: w.UpdatedAt,
		},
		UserID:       w.UserID,
		Matricule:    w.RegistrationNumber,
		DateOfBirth:  w.DateOfBirth,
		Gender:       w.Gender,
		Level:        w.LevelStudy,
		Faculty:      w.Faculty,
		FieldOfStudy: w.FieldOfStudy,
		Country:      w.Country,
		City:         w.City,
		Status:       domain.StudentStatus(w.Status),
	}
}

// ToWireStudent converts a domain student to the wire shape.
func ToWireStudent(s domain.Student) dto.StudentWire {
	return dto.StudentWire{
		ID:                 s.ID,
		UserID:             s.UserID,
		RegistrationNumber: s.Matricule,
		DateOfBirth:        s.DateOfBirth,
		Gender:             s.Gender,
		LevelStudy:         s.Level,
		Faculty:            s.Faculty,
		FieldOfStudy:       s.FieldOfStudy,
		Country:            s.Country,
		City:               s.City,
		Status:             string(s.Status),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// ToDomainStudentSlice converts a slice of wire students.
func ToDomainStudentSlice(ws []dto.StudentWire) []domain.Student {
	out := make([]domain.Student, len(ws))
	for i, w := range ws {
		out[i] = ToDomainStudent(w)
	}
	return out
}

// ToWireStudentPatch renames the fields of a partial update. Only fields the
// caller actually set are carried over; everything else stays nil and is
// omitted from the request body.
func ToWireStudentPatch(p dto.StudentPatch) dto.StudentWirePatch {
	return dto.StudentWirePatch{
		RegistrationNumber: p.Matricule,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		LevelStudy:         p.Level,
		Faculty:            p.Faculty,
		FieldOfStudy:       p.FieldOfStudy,
		Country:            p.Country,
		City:               p.City,
		Status:             p.Status,
	}
}
