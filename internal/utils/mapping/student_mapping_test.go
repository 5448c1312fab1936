package mapping_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
	"github.com/AssoGestion/asso_gestion_app/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRoundTrip(t *testing.T) {
	dob := time.Date(2000, 5, 15, 0, 0, 0, 0, time.UTC)
	s := domain.Student{
		Entity:       domain.Entity{ID: "1", CreatedAt: dob, UpdatedAt: dob},
		UserID:       "4",
		Matricule:    "STU-2024-001",
		DateOfBirth:  &dob,
		Gender:       "M",
		Level:        "L3",
		Faculty:      "Sciences et Technologies",
		FieldOfStudy: "Informatique",
		Country:      "Congo",
		City:         "Brazzaville",
		Status:       domain.StudentActive,
	}

	back := mapping.ToDomainStudent(mapping.ToWireStudent(s))
	assert.Equal(t, s, back)
}

func TestToWireStudent_RenamesFields(t *testing.T) {
	w := mapping.ToWireStudent(domain.Student{Matricule: "STU-1", Level: "M2"})
	assert.Equal(t, "STU-1", w.RegistrationNumber)
	assert.Equal(t, "M2", w.LevelStudy)
}

func TestToWireStudentPatch_OmitsUnsetFields(t *testing.T) {
	level := "M2"
	patch := mapping.ToWireStudentPatch(dto.StudentPatch{Level: &level})

	body, err := json.Marshal(patch)
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(body, &sent))

	assert.Equal(t, map[string]any{"levelStudy": "M2"}, sent)
}

func TestToWireStudentPatch_CarriesAllSetFields(t *testing.T) {
	matricule := "STU-2"
	city := "Pointe-Noire"
	status := domain.StudentGraduated
	patch := mapping.ToWireStudentPatch(dto.StudentPatch{
		Matricule: &matricule,
		City:      &city,
		Status:    &status,
	})

	require.NotNil(t, patch.RegistrationNumber)
	assert.Equal(t, "STU-2", *patch.RegistrationNumber)
	require.NotNil(t, patch.City)
	assert.Equal(t, "Pointe-Noire", *patch.City)
	require.NotNil(t, patch.Status)
	assert.Nil(t, patch.LevelStudy)
	assert.Nil(t, patch.Gender)
}
