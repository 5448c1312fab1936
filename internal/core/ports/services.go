package ports

import (
	"context"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// AuthSvc is the authentication surface consumed by the session manager.
type AuthSvc interface {
	Login(ctx context.Context, email, password string) (dto.AuthResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (dto.AuthResponse, error)
	// Logout is best-effort; implementations surface errors, the session
	// manager decides to swallow them.
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (dto.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) (string, error)
}

// ResidenceSvc exposes the residence hierarchy. List methods unwrap the
// backend's paginated envelope into plain slices; an empty result is never
// an error.
type ResidenceSvc interface {
	ListQuarters(ctx context.Context, p dto.ListParams) ([]domain.Quarter, error)
	GetQuarter(ctx context.Context, id string) (domain.Quarter, error)
	CreateQuarter(ctx context.Context, req dto.CreateQuarterRequest) (domain.Quarter, error)
	UpdateQuarter(ctx context.Context, id string, patch dto.QuarterPatch) (domain.Quarter, error)
	DeleteQuarter(ctx context.Context, id string) (bool, error)

	ListBuildings(ctx context.Context, f dto.BuildingFilter, p dto.ListParams) ([]domain.Building, error)
	BuildingsByQuarter(ctx context.Context, quarterID string) ([]domain.Building, error)
	GetBuilding(ctx context.Context, id string) (domain.Building, error)
	CreateBuilding(ctx context.Context, req dto.CreateBuildingRequest) (domain.Building, error)
	UpdateBuilding(ctx context.Context, id string, patch dto.BuildingPatch) (domain.Building, error)
	DeleteBuilding(ctx context.Context, id string) (bool, error)

	ListRooms(ctx context.Context, f dto.RoomFilter, p dto.ListParams) ([]domain.Room, error)
	RoomsByBuilding(ctx context.Context, buildingID string) ([]domain.Room, error)
	GetRoom(ctx context.Context, id string) (domain.Room, error)
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (domain.Room, error)
	UpdateRoom(ctx context.Context, id string, patch dto.RoomPatch) (domain.Room, error)
	DeleteRoom(ctx context.Context, id string) (bool, error)

	ListOccupations(ctx context.Context, f dto.OccupationFilter, p dto.ListParams) ([]domain.RoomOccupation, error)
	OccupationsByRoom(ctx context.Context, roomID string) ([]domain.RoomOccupation, error)
	OccupationsByStudent(ctx context.Context, studentID string) ([]domain.RoomOccupation, error)
	ActiveOccupations(ctx context.Context) ([]domain.RoomOccupation, error)
	GetOccupation(ctx context.Context, id string) (domain.RoomOccupation, error)
	CreateOccupation(ctx context.Context, req dto.CreateOccupationRequest) (domain.RoomOccupation, error)
	UpdateOccupation(ctx context.Context, id string, patch dto.OccupationPatch) (domain.RoomOccupation, error)
	DeleteOccupation(ctx context.Context, id string) (bool, error)

	ListRentPayments(ctx context.Context, f dto.RentPaymentFilter, p dto.ListParams) ([]domain.RentPayment, error)
	GetRentPayment(ctx context.Context, id string) (domain.RentPayment, error)
	CreateRentPayment(ctx context.Context, req dto.CreateRentPaymentRequest) (domain.RentPayment, error)
	UpdateRentPayment(ctx context.Context, id string, patch dto.RentPaymentPatch) (domain.RentPayment, error)
	DeleteRentPayment(ctx context.Context, id string) (bool, error)
}

// StudentSvc exposes student profiles and the read-only user directory.
type StudentSvc interface {
	ListStudents(ctx context.Context, f dto.StudentFilter, p dto.ListParams) ([]domain.Student, error)
	GetStudent(ctx context.Context, id string) (domain.Student, error)
	GetStudentByUserID(ctx context.Context, userID string) (domain.Student, error)
	GetStudentByMatricule(ctx context.Context, matricule string) (domain.Student, error)
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (domain.Student, error)
	UpdateStudent(ctx context.Context, id string, patch dto.StudentPatch) (domain.Student, error)
	DeleteStudent(ctx context.Context, id string) (bool, error)

	ListUsers(ctx context.Context, f dto.UserFilter, p dto.ListParams) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
}
