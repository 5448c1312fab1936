package memory

import (
	"context"
	"fmt"

	"github.com/AssoGestion/asso_gestion_app/internal/apperrors"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// ResidenceService serves the residence hierarchy from seeded stores. It is
// the mock-mode counterpart of the REST adapter, selected by configuration
// at startup.
type ResidenceService struct {
	Quarters     *Store[domain.Quarter, *domain.Quarter]
	Buildings    *Store[domain.Building, *domain.Building]
	Rooms        *Store[domain.Room, *domain.Room]
	Occupations  *Store[domain.RoomOccupation, *domain.RoomOccupation]
	RentPayments *Store[domain.RentPayment, *domain.RentPayment]
}

var _ ports.ResidenceSvc = (*ResidenceService)(nil)

// NewResidenceService builds a mock residence service over the seed
// fixtures.
func NewResidenceService() *ResidenceService {
	return &ResidenceService{
		Quarters:     NewStore[domain.Quarter, *domain.Quarter](QuarterFixtures()),
		Buildings:    NewStore[domain.Building, *domain.Building](BuildingFixtures()),
		Rooms:        NewStore[domain.Room, *domain.Room](RoomFixtures()),
		Occupations:  NewStore[domain.RoomOccupation, *domain.RoomOccupation](OccupationFixtures()),
		RentPayments: NewStore[domain.RentPayment, *domain.RentPayment](RentPaymentFixtures()),
	}
}

func listPage[T any](items []T, p dto.ListParams) []T {
	// No pagination requested: the whole snapshot, like the by-parent
	// endpoints of the backend.
	if p.Page == 0 && p.Limit == 0 {
		return items
	}
	return Paginate(items, p.Page, p.Limit).Items
}

func (s *ResidenceService) ListQuarters(ctx context.Context, p dto.ListParams) ([]domain.Quarter, error) {
	items, err := s.Quarters.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	SortRecords(items, p.Sort)
	return listPage(items, p), nil
}

func (s *ResidenceService) GetQuarter(ctx context.Context, id string) (domain.Quarter, error) {
	return getRequired(ctx, s.Quarters, id, "quarter")
}

func (s *ResidenceService) CreateQuarter(ctx context.Context, req dto.CreateQuarterRequest) (domain.Quarter, error) {
	return s.Quarters.Create(ctx, domain.Quarter{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
	})
}

func (s *ResidenceService) UpdateQuarter(ctx context.Context, id string, patch dto.QuarterPatch) (domain.Quarter, error) {
	return s.Quarters.Update(ctx, id, func(q *domain.Quarter) {
		if patch.Name != nil {
			q.Name = *patch.Name
		}
		if patch.City != nil {
			q.City = *patch.City
		}
		if patch.Address != nil {
			q.Address = *patch.Address
		}
		if patch.Description != nil {
			q.Description = *patch.Description
		}
	})
}

func (s *ResidenceService) DeleteQuarter(ctx context.Context, id string) (bool, error) {
	return s.Quarters.Delete(ctx, id)
}

func (s *ResidenceService) ListBuildings(ctx context.Context, f dto.BuildingFilter, p dto.ListParams) ([]domain.Building, error) {
	items, err := s.Buildings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items = FilterBuildings(items, f)
	SortRecords(items, p.Sort)
	return listPage(items, p), nil
}

func (s *ResidenceService) BuildingsByQuarter(ctx context.Context, quarterID string) ([]domain.Building, error) {
	return s.ListBuildings(ctx, dto.BuildingFilter{QuarterID: quarterID}, dto.ListParams{})
}

func (s *ResidenceService) GetBuilding(ctx context.Context, id string) (domain.Building, error) {
	return getRequired(ctx, s.Buildings, id, "building")
}

func (s *ResidenceService) CreateBuilding(ctx context.Context, req dto.CreateBuildingRequest) (domain.Building, error) {
	return s.Buildings.Create(ctx, domain.Building{
		Name:        req.Name,
		QuarterID:   req.QuarterID,
		Address:     req.Address,
		Description: req.Description,
	})
}

func (s *ResidenceService) UpdateBuilding(ctx context.Context, id string, patch dto.BuildingPatch) (domain.Building, error) {
	return s.Buildings.Update(ctx, id, func(b *domain.Building) {
		if patch.Name != nil {
			b.Name = *patch.Name
		}
		if patch.QuarterID != nil {
			b.QuarterID = *patch.QuarterID
		}
		if patch.Address != nil {
			b.Address = *patch.Address
		}
		if patch.Description != nil {
			b.Description = *patch.Description
		}
	})
}

func (s *ResidenceService) DeleteBuilding(ctx context.Context, id string) (bool, error) {
	return s.Buildings.Delete(ctx, id)
}

func (s *ResidenceService) ListRooms(ctx context.Context, f dto.RoomFilter, p dto.ListParams) ([]domain.Room, error) {
	items, err := s.Rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items = FilterRooms(items, f)
	SortRecords(items, p.Sort)
	return listPage(items, p), nil
}

func (s *ResidenceService) RoomsByBuilding(ctx context.Context, buildingID string) ([]domain.Room, error) {
	return s.ListRooms(ctx, dto.RoomFilter{BuildingID: buildingID}, dto.ListParams{})
}

func (s *ResidenceService) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	return getRequired(ctx, s.Rooms, id, "room")
}

func (s *ResidenceService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (domain.Room, error) {
	status := req.Status
	if status == "" {
		status = domain.RoomAvailable
	}
	return s.Rooms.Create(ctx, domain.Room{
		RoomNumber:  req.RoomNumber,
		BuildingID:  req.BuildingID,
		Capacity:    req.Capacity,
		MonthlyRent: req.MonthlyRent,
		Status:      status,
		Description: req.Description,
	})
}

func (s *ResidenceService) UpdateRoom(ctx context.Context, id string, patch dto.RoomPatch) (domain.Room, error) {
	return s.Rooms.Update(ctx, id, func(r *domain.Room) {
		if patch.RoomNumber != nil {
			r.RoomNumber = *patch.RoomNumber
		}
		if patch.Capacity != nil {
			r.Capacity = *patch.Capacity
		}
		if patch.MonthlyRent != nil {
			r.MonthlyRent = *patch.MonthlyRent
		}
		if patch.Status != nil {
			r.Status = *patch.Status
		}
		if patch.Description != nil {
			r.Description = *patch.Description
		}
	})
}

func (s *ResidenceService) DeleteRoom(ctx context.Context, id string) (bool, error) {
	return s.Rooms.Delete(ctx, id)
}

func (s *ResidenceService) ListOccupations(ctx context.Context, f dto.OccupationFilter, p dto.ListParams) ([]domain.RoomOccupation, error) {
	items, err := s.Occupations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items = FilterOccupations(items, f)
	SortRecords(items, p.Sort)
	return listPage(items, p), nil
}

func (s *ResidenceService) OccupationsByRoom(ctx context.Context, roomID string) ([]domain.RoomOccupation, error) {
	return s.ListOccupations(ctx, dto.OccupationFilter{RoomID: roomID}, dto.ListParams{})
}

func (s *ResidenceService) OccupationsByStudent(ctx context.Context, studentID string) ([]domain.RoomOccupation, error) {
	return s.ListOccupations(ctx, dto.OccupationFilter{StudentID: studentID}, dto.ListParams{})
}

func (s *ResidenceService) ActiveOccupations(ctx context.Context) ([]domain.RoomOccupation, error) {
	active := true
	return s.ListOccupations(ctx, dto.OccupationFilter{IsActive: &active}, dto.ListParams{})
}

func (s *ResidenceService) GetOccupation(ctx context.Context, id string) (domain.RoomOccupation, error) {
	return getRequired(ctx, s.Occupations, id, "occupation")
}

func (s *ResidenceService) CreateOccupation(ctx context.Context, req dto.CreateOccupationRequest) (domain.RoomOccupation, error) {
	return s.Occupations.Create(ctx, domain.RoomOccupation{
		RoomID:      req.RoomID,
		StudentID:   req.StudentID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MonthlyRent: req.MonthlyRent,
		IsActive:    req.IsActive,
	})
}

func (s *ResidenceService) UpdateOccupation(ctx context.Context, id string, patch dto.OccupationPatch) (domain.RoomOccupation, error) {
	return s.Occupations.Update(ctx, id, func(o *domain.RoomOccupation) {
		if patch.StartDate != nil {
			o.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			o.EndDate = patch.EndDate
		}
		if patch.MonthlyRent != nil {
			o.MonthlyRent = *patch.MonthlyRent
		}
		if patch.IsActive != nil {
			o.IsActive = *patch.IsActive
		}
	})
}

func (s *ResidenceService) DeleteOccupation(ctx context.Context, id string) (bool, error) {
	return s.Occupations.Delete(ctx, id)
}

func (s *ResidenceService) ListRentPayments(ctx context.Context, f dto.RentPaymentFilter, p dto.ListParams) ([]domain.RentPayment, error) {
	items, err := s.RentPayments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items = FilterRentPayments(items, f)
	SortRecords(items, p.Sort)
	return listPage(items, p), nil
}

func (s *ResidenceService) GetRentPayment(ctx context.Context, id string) (domain.RentPayment, error) {
	return getRequired(ctx, s.RentPayments, id, "rent payment")
}

func (s *ResidenceService) CreateRentPayment(ctx context.Context, req dto.CreateRentPaymentRequest) (domain.RentPayment, error) {
	return s.RentPayments.Create(ctx, domain.RentPayment{
		OccupationID:  req.OccupationID,
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		Period:        req.Period,
		PaymentMethod: req.PaymentMethod,
		ReceiptURL:    req.ReceiptURL,
	})
}

func (s *ResidenceService) UpdateRentPayment(ctx context.Context, id string, patch dto.RentPaymentPatch) (domain.RentPayment, error) {
	return s.RentPayments.Update(ctx, id, func(rp *domain.RentPayment) {
		if patch.Amount != nil {
			rp.Amount = *patch.Amount
		}
		if patch.PaymentDate != nil {
			rp.PaymentDate = *patch.PaymentDate
		}
		if patch.Period != nil {
			rp.Period = *patch.Period
		}
		if patch.PaymentMethod != nil {
			rp.PaymentMethod = *patch.PaymentMethod
		}
		if patch.ReceiptURL != nil {
			rp.ReceiptURL = *patch.ReceiptURL
		}
	})
}

func (s *ResidenceService) DeleteRentPayment(ctx context.Context, id string) (bool, error) {
	return s.RentPayments.Delete(ctx, id)
}

// StudentService serves student profiles and the user directory from seeded
// stores.
type StudentService struct {
	Students *Store[domain.Student, *domain.Student]
	Users    *Store[domain.User, *domain.User]
}

var _ ports.StudentSvc = (*StudentService)(nil)

func NewStudentService() *StudentService {
	return &StudentService{
		Students: NewStore[domain.Student, *domain.Student](StudentFixtures()),
		Users:    NewStore[domain.User, *domain.User](UserFixtures()),
	}
}

func (s *StudentService) ListStudents(ctx context.Context, f dto.StudentFilter, p dto.ListParams) ([]domain.Student, error) {
	items, err := s.Students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items = FilterStudents(items, f)
	SortRecords(items, p.Sort)
	return listPage(items, p), nil
}

func (s *StudentService) GetStudent(ctx context.Context, id string) (domain.Student, error) {
	return getRequired(ctx, s.Students, id, "student")
}

func (s *StudentService) GetStudentByUserID(ctx context.Context, userID string) (domain.Student, error) {
	return s.findStudent(ctx, func(st domain.Student) bool { return st.UserID == userID })
}

func (s *StudentService) GetStudentByMatricule(ctx context.Context, matricule string) (domain.Student, error) {
	return s.findStudent(ctx, func(st domain.Student) bool { return st.Matricule == matricule })
}

func (s *StudentService) findStudent(ctx context.Context, match func(domain.Student) bool) (domain.Student, error) {
	items, err := s.Students.GetAll(ctx)
	if err != nil {
		return domain.Student{}, err
	}
	for _, st := range items {
		if match(st) {
			return st, nil
		}
	}
	return domain.Student{}, fmt.Errorf("student: %w", apperrors.ErrNotFound)
}

func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (domain.Student, error) {
	return s.Students.Create(ctx, domain.Student{
		UserID:       req.UserID,
		Matricule:    req.RegistrationNumber,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		Level:        req.LevelStudy,
		Faculty:      req.Faculty,
		FieldOfStudy: req.FieldOfStudy,
		Country:      req.Country,
		City:         req.City,
		Status:       domain.StudentStatus(req.Status),
	})
}

func (s *StudentService) UpdateStudent(ctx context.Context, id string, patch dto.StudentPatch) (domain.Student, error) {
	return s.Students.Update(ctx, id, func(st *domain.Student) {
		if patch.Matricule != nil {
			st.Matricule = *patch.Matricule
		}
		if patch.DateOfBirth != nil {
			st.DateOfBirth = patch.DateOfBirth
		}
		if patch.Gender != nil {
			st.Gender = *patch.Gender
		}
		if patch.Level != nil {
			st.Level = *patch.Level
		}
		if patch.Faculty != nil {
			st.Faculty = *patch.Faculty
		}
		if patch.FieldOfStudy != nil {
			st.FieldOfStudy = *patch.FieldOfStudy
		}
		if patch.Country != nil {
			st.Country = *patch.Country
		}
		if patch.City != nil {
			st.City = *patch.City
		}
		if patch.Status != nil {
			st.Status = *patch.Status
		}
	})
}

func (s *StudentService) DeleteStudent(ctx context.Context, id string) (bool, error) {
	return s.Students.Delete(ctx, id)
}

func (s *StudentService) ListUsers(ctx context.Context, f dto.UserFilter, p dto.ListParams) ([]domain.User, error) {
	items, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items = FilterUsers(items, f)
	SortRecords(items, p.Sort)
	return listPage(items, p), nil
}

func (s *StudentService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return getRequired(ctx, s.Users, id, "user")
}

func getRequired[T any, PT interface {
	ports.Mutable
	*T
}](ctx context.Context, store *Store[T, PT], id, what string) (T, error) {
	item, found, err := store.GetByID(ctx, id)
	if err != nil {
		return item, err
	}
	if !found {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", what, id, apperrors.ErrNotFound)
	}
	return item, nil
}
