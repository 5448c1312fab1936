package rest

import (
	"context"
	"strconv"

	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
	"github.com/AssoGestion/asso_gestion_app/internal/utils"
)

// ResidenceService talks to the /residence/* endpoints.
type ResidenceService struct {
	client *apiclient.Client
}

var _ ports.ResidenceSvc = (*ResidenceService)(nil)

func NewResidenceService(client *apiclient.Client) *ResidenceService {
	return &ResidenceService{client: client}
}

// Quarters

func (s *ResidenceService) ListQuarters(ctx context.Context, p dto.ListParams) ([]domain.Quarter, error) {
	return listItems[domain.Quarter](ctx, s.client, "/residence/quarters", listQuery(p))
}

func (s *ResidenceService) GetQuarter(ctx context.Context, id string) (domain.Quarter, error) {
	var q domain.Quarter
	err := s.client.Get(ctx, "/residence/quarters/"+id, &q)
	return q, err
}

func (s *ResidenceService) CreateQuarter(ctx context.Context, req dto.CreateQuarterRequest) (domain.Quarter, error) {
	var q domain.Quarter
	if err := utils.ValidateStruct(req); err != nil {
		return q, err
	}
	err := s.client.Post(ctx, "/residence/quarters", req, &q)
	return q, err
}

func (s *ResidenceService) UpdateQuarter(ctx context.Context, id string, patch dto.QuarterPatch) (domain.Quarter, error) {
	var q domain.Quarter
	err := s.client.Patch(ctx, "/residence/quarters/"+id, patch, &q)
	return q, err
}

func (s *ResidenceService) DeleteQuarter(ctx context.Context, id string) (bool, error) {
	if err := s.client.Delete(ctx, "/residence/quarters/"+id, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Buildings

func (s *ResidenceService) ListBuildings(ctx context.Context, f dto.BuildingFilter, p dto.ListParams) ([]domain.Building, error) {
	params := listQuery(p).Set("quarterId", f.QuarterID)
	return listItems[domain.Building](ctx, s.client, "/residence/buildings", params)
}

func (s *ResidenceService) BuildingsByQuarter(ctx context.Context, quarterID string) ([]domain.Building, error) {
	return listArray[domain.Building](ctx, s.client, "/residence/buildings/quarter/"+quarterID)
}

func (s *ResidenceService) GetBuilding(ctx context.Context, id string) (domain.Building, error) {
	var b domain.Building
	err := s.client.Get(ctx, "/residence/buildings/"+id, &b)
	return b, err
}

func (s *ResidenceService) CreateBuilding(ctx context.Context, req dto.CreateBuildingRequest) (domain.Building, error) {
	var b domain.Building
	if err := utils.ValidateStruct(req); err != nil {
		return b, err
	}
	err := s.client.Post(ctx, "/residence/buildings", req, &b)
	return b, err
}

func (s *ResidenceService) UpdateBuilding(ctx context.Context, id string, patch dto.BuildingPatch) (domain.Building, error) {
	var b domain.Building
	err := s.client.Patch(ctx, "/residence/buildings/"+id, patch, &b)
	return b, err
}

func (s *ResidenceService) DeleteBuilding(ctx context.Context, id string) (bool, error) {
	if err := s.client.Delete(ctx, "/residence/buildings/"+id, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Rooms

func (s *ResidenceService) ListRooms(ctx context.Context, f dto.RoomFilter, p dto.ListParams) ([]domain.Room, error) {
	params := listQuery(p).
		Set("buildingId", f.BuildingID).
		Set("status", f.Status)
	return listItems[domain.Room](ctx, s.client, "/residence/rooms", params)
}

func (s *ResidenceService) RoomsByBuilding(ctx context.Context, buildingID string) ([]domain.Room, error) {
	return listArray[domain.Room](ctx, s.client, "/residence/rooms/building/"+buildingID)
}

func (s *ResidenceService) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	var r domain.Room
	err := s.client.Get(ctx, "/residence/rooms/"+id, &r)
	return r, err
}

func (s *ResidenceService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (domain.Room, error) {
	var r domain.Room
	if err := utils.ValidateStruct(req); err != nil {
		return r, err
	}
	err := s.client.Post(ctx, "/residence/rooms", req, &r)
	return r, err
}

func (s *ResidenceService) UpdateRoom(ctx context.Context, id string, patch dto.RoomPatch) (domain.Room, error) {
	var r domain.Room
	err := s.client.Patch(ctx, "/residence/rooms/"+id, patch, &r)
	return r, err
}

func (s *ResidenceService) DeleteRoom(ctx context.Context, id string) (bool, error) {
	if err := s.client.Delete(ctx, "/residence/rooms/"+id, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Occupations

func (s *ResidenceService) ListOccupations(ctx context.Context, f dto.OccupationFilter, p dto.ListParams) ([]domain.RoomOccupation, error) {
	params := listQuery(p).
		Set("roomId", f.RoomID).
		Set("studentId", f.StudentID)
	if f.IsActive != nil {
		params.Set("isActive", strconv.FormatBool(*f.IsActive))
	}
	return listItems[domain.RoomOccupation](ctx, s.client, "/residence/room-occupations", params)
}

func (s *ResidenceService) OccupationsByRoom(ctx context.Context, roomID string) ([]domain.RoomOccupation, error) {
	return listArray[domain.RoomOccupation](ctx, s.client, "/residence/room-occupations/room/"+roomID)
}

func (s *ResidenceService) OccupationsByStudent(ctx context.Context, studentID string) ([]domain.RoomOccupation, error) {
	return listArray[domain.RoomOccupation](ctx, s.client, "/residence/room-occupations/student/"+studentID)
}

func (s *ResidenceService) ActiveOccupations(ctx context.Context) ([]domain.RoomOccupation, error) {
	active := true
	return s.ListOccupations(ctx, dto.OccupationFilter{IsActive: &active}, dto.ListParams{})
}

func (s *ResidenceService) GetOccupation(ctx context.Context, id string) (domain.RoomOccupation, error) {
	var o domain.RoomOccupation
	err := s.client.Get(ctx, "/residence/room-occupations/"+id, &o)
	return o, err
}

func (s *ResidenceService) CreateOccupation(ctx context.Context, req dto.CreateOccupationRequest) (domain.RoomOccupation, error) {
	var o domain.RoomOccupation
	if err := utils.ValidateStruct(req); err != nil {
		return o, err
	}
	err := s.client.Post(ctx, "/residence/room-occupations", req, &o)
	return o, err
}

func (s *ResidenceService) UpdateOccupation(ctx context.Context, id string, patch dto.OccupationPatch) (domain.RoomOccupation, error) {
	var o domain.RoomOccupation
	err := s.client.Patch(ctx, "/residence/room-occupations/"+id, patch, &o)
	return o, err
}

func (s *ResidenceService) DeleteOccupation(ctx context.Context, id string) (bool, error) {
	if err := s.client.Delete(ctx, "/residence/room-occupations/"+id, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Rent payments

func (s *ResidenceService) ListRentPayments(ctx context.Context, f dto.RentPaymentFilter, p dto.ListParams) ([]domain.RentPayment, error) {
	params := listQuery(p).Set("occupationId", f.OccupationID)
	return listItems[domain.RentPayment](ctx, s.client, "/residence/rent-payments", params)
}

func (s *ResidenceService) GetRentPayment(ctx context.Context, id string) (domain.RentPayment, error) {
	var rp domain.RentPayment
	err := s.client.Get(ctx, "/residence/rent-payments/"+id, &rp)
	return rp, err
}

func (s *ResidenceService) CreateRentPayment(ctx context.Context, req dto.CreateRentPaymentRequest) (domain.RentPayment, error) {
	var rp domain.RentPayment
	if err := utils.ValidateStruct(req); err != nil {
		return rp, err
	}
	err := s.client.Post(ctx, "/residence/rent-payments", req, &rp)
	return rp, err
}

func (s *ResidenceService) UpdateRentPayment(ctx context.Context, id string, patch dto.RentPaymentPatch) (domain.RentPayment, error) {
	var rp domain.RentPayment
	err := s.client.Patch(ctx, "/residence/rent-payments/"+id, patch, &rp)
	return rp, err
}

func (s *ResidenceService) DeleteRentPayment(ctx context.Context, id string) (bool, error) {
	if err := s.client.Delete(ctx, "/residence/rent-payments/"+id, nil); err != nil {
		return false, err
	}
	return true, nil
}
