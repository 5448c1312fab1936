package rest

import (
	"context"

	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
	"github.com/AssoGestion/asso_gestion_app/internal/utils"
	"github.com/AssoGestion/asso_gestion_app/internal/utils/mapping"
)

// StudentService talks to the /students and /users endpoints. All student
// payloads cross the wire in the backend shape; the field-name translation
// happens here, never in callers.
type StudentService struct {
	client *apiclient.Client
}

var _ ports.StudentSvc = (*StudentService)(nil)

func NewStudentService(client *apiclient.Client) *StudentService {
	return &StudentService{client: client}
}

func (s *StudentService) ListStudents(ctx context.Context, f dto.StudentFilter, p dto.ListParams) ([]domain.Student, error) {
	params := listQuery(p).
		Set("status", f.Status).
		Set("levelStudy", f.Level)
	wires, err := listItems[dto.StudentWire](ctx, s.client, "/students", params)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainStudentSlice(wires), nil
}

func (s *StudentService) GetStudent(ctx context.Context, id string) (domain.Student, error) {
	return s.getStudent(ctx, "/students/"+id)
}

func (s *StudentService) GetStudentByUserID(ctx context.Context, userID string) (domain.Student, error) {
	return s.getStudent(ctx, "/students/user/"+userID)
}

func (s *StudentService) GetStudentByMatricule(ctx context.Context, matricule string) (domain.Student, error) {
	return s.getStudent(ctx, "/students/registration/"+matricule)
}

func (s *StudentService) getStudent(ctx context.Context, endpoint string) (domain.Student, error) {
	var w dto.StudentWire
	if err := s.client.Get(ctx, endpoint, &w); err != nil {
		return domain.Student{}, err
	}
	return mapping.ToDomainStudent(w), nil
}

func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (domain.Student, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return domain.Student{}, err
	}
	var w dto.StudentWire
	if err := s.client.Post(ctx, "/students", req, &w); err != nil {
		return domain.Student{}, err
	}
	return mapping.ToDomainStudent(w), nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, id string, patch dto.StudentPatch) (domain.Student, error) {
	var w dto.StudentWire
	if err := s.client.Patch(ctx, "/students/"+id, mapping.ToWireStudentPatch(patch), &w); err != nil {
		return domain.Student{}, err
	}
	return mapping.ToDomainStudent(w), nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, id string) (bool, error) {
	if err := s.client.Delete(ctx, "/students/"+id, nil); err != nil {
		return false, err
	}
	return true, nil
}

func (s *StudentService) ListUsers(ctx context.Context, f dto.UserFilter, p dto.ListParams) ([]domain.User, error) {
	params := listQuery(p).Set("role", f.Role)
	return listItems[domain.User](ctx, s.client, "/users", params)
}

func (s *StudentService) GetUser(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := s.client.Get(ctx, "/users/"+id, &u)
	return u, err
}
