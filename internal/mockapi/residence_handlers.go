package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/memory"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// Quarters

func (s *Server) listQuarters(c *gin.Context) {
	quarters, err := s.quarters.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondList(c, quarters)
}

func (s *Server) getQuarter(c *gin.Context) {
	getByID(c, s.quarters, "quarter")
}

func (s *Server) createQuarter(c *gin.Context) {
	var req dto.CreateQuarterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	quarter, err := s.quarters.Create(c.Request.Context(), domain.Quarter{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "create", "quarter", quarter.ID, quarter.Name)
	c.JSON(http.StatusCreated, quarter)
}

func (s *Server) updateQuarter(c *gin.Context) {
	var patch dto.QuarterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	quarter, err := s.quarters.Update(c.Request.Context(), c.Param("id"), func(q *domain.Quarter) {
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
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "update", "quarter", quarter.ID, quarter.Name)
	c.JSON(http.StatusOK, quarter)
}

func (s *Server) deleteQuarter(c *gin.Context) {
	deleteByID(s, c, s.quarters, "quarter")
}

// Buildings

func (s *Server) listBuildings(c *gin.Context) {
	buildings, err := s.buildings.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterBuildings(buildings, dto.BuildingFilter{QuarterID: c.Query("quarterId")})
	respondList(c, filtered)
}

func (s *Server) buildingsByQuarter(c *gin.Context) {
	buildings, err := s.buildings.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterBuildings(buildings, dto.BuildingFilter{QuarterID: c.Param("quarterId")})
	c.JSON(http.StatusOK, filtered)
}

func (s *Server) getBuilding(c *gin.Context) {
	getByID(c, s.buildings, "building")
}

func (s *Server) createBuilding(c *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if _, found, _ := s.quarters.GetByID(c.Request.Context(), req.QuarterID); !found {
		respondError(c, http.StatusBadRequest, "quarter "+req.QuarterID+" does not exist", nil)
		return
	}
	building, err := s.buildings.Create(c.Request.Context(), domain.Building{
		Name:        req.Name,
		QuarterID:   req.QuarterID,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "create", "building", building.ID, building.Name)
	c.JSON(http.StatusCreated, building)
}

func (s *Server) updateBuilding(c *gin.Context) {
	var patch dto.BuildingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	building, err := s.buildings.Update(c.Request.Context(), c.Param("id"), func(b *domain.Building) {
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
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "update", "building", building.ID, building.Name)
	c.JSON(http.StatusOK, building)
}

func (s *Server) deleteBuilding(c *gin.Context) {
	deleteByID(s, c, s.buildings, "building")
}

// Rooms

func (s *Server) listRooms(c *gin.Context) {
	rooms, err := s.rooms.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterRooms(rooms, dto.RoomFilter{
		BuildingID: c.Query("buildingId"),
		Status:     c.Query("status"),
	})
	respondList(c, filtered)
}

func (s *Server) roomsByBuilding(c *gin.Context) {
	rooms, err := s.rooms.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterRooms(rooms, dto.RoomFilter{BuildingID: c.Param("buildingId")})
	c.JSON(http.StatusOK, filtered)
}

func (s *Server) getRoom(c *gin.Context) {
	getByID(c, s.rooms, "room")
}

func (s *Server) createRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if _, found, _ := s.buildings.GetByID(c.Request.Context(), req.BuildingID); !found {
		respondError(c, http.StatusBadRequest, "building "+req.BuildingID+" does not exist", nil)
		return
	}
	status := req.Status
	if status == "" {
		status = domain.RoomAvailable
	}
	room, err := s.rooms.Create(c.Request.Context(), domain.Room{
		RoomNumber:  req.RoomNumber,
		BuildingID:  req.BuildingID,
		Capacity:    req.Capacity,
		MonthlyRent: req.MonthlyRent,
		Status:      status,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "create", "room", room.ID, room.RoomNumber)
	c.JSON(http.StatusCreated, room)
}

func (s *Server) updateRoom(c *gin.Context) {
	var patch dto.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	room, err := s.rooms.Update(c.Request.Context(), c.Param("id"), func(r *domain.Room) {
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
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "update", "room", room.ID, room.RoomNumber)
	c.JSON(http.StatusOK, room)
}

func (s *Server) deleteRoom(c *gin.Context) {
	deleteByID(s, c, s.rooms, "room")
}

// Occupations

func (s *Server) listOccupations(c *gin.Context) {
	occupations, err := s.occupations.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filter := dto.OccupationFilter{
		RoomID:    c.Query("roomId"),
		StudentID: c.Query("studentId"),
	}
	if raw := c.Query("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "isActive must be a boolean", nil)
			return
		}
		filter.IsActive = &active
	}
	respondList(c, memory.FilterOccupations(occupations, filter))
}

func (s *Server) occupationsByRoom(c *gin.Context) {
	occupations, err := s.occupations.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterOccupations(occupations, dto.OccupationFilter{RoomID: c.Param("roomId")})
	c.JSON(http.StatusOK, filtered)
}

func (s *Server) occupationsByStudent(c *gin.Context) {
	occupations, err := s.occupations.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterOccupations(occupations, dto.OccupationFilter{StudentID: c.Param("studentId")})
	c.JSON(http.StatusOK, filtered)
}

func (s *Server) getOccupation(c *gin.Context) {
	getByID(c, s.occupations, "occupation")
}

// createOccupation enforces the occupancy invariants: the room must exist
// and, for an active occupation, must have spare capacity, and the student
// may hold at most one active occupation.
func (s *Server) createOccupation(c *gin.Context) {
	var req dto.CreateOccupationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	ctx := c.Request.Context()

	room, found, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusBadRequest, "room "+req.RoomID+" does not exist", nil)
		return
	}
	if _, found, _ := s.students.GetByID(ctx, req.StudentID); !found {
		respondError(c, http.StatusBadRequest, "student "+req.StudentID+" does not exist", nil)
		return
	}

	if req.IsActive {
		occupations, err := s.occupations.GetAll(ctx)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		if domain.ComputeRoomOccupancy(room, occupations).IsFull {
			respondError(c, http.StatusConflict, "room "+room.RoomNumber+" is at capacity", nil)
			return
		}
		for _, occ := range occupations {
			if occ.StudentID == req.StudentID && occ.IsActive {
				respondError(c, http.StatusConflict, "student already holds an active occupation", nil)
				return
			}
		}
	}

	occupation, err := s.occupations.Create(ctx, domain.RoomOccupation{
		RoomID:      req.RoomID,
		StudentID:   req.StudentID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MonthlyRent: req.MonthlyRent,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "create", "occupation", occupation.ID, "")
	c.JSON(http.StatusCreated, occupation)
}

func (s *Server) updateOccupation(c *gin.Context) {
	var patch dto.OccupationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	occupation, err := s.occupations.Update(c.Request.Context(), c.Param("id"), func(o *domain.RoomOccupation) {
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
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "update", "occupation", occupation.ID, "")
	c.JSON(http.StatusOK, occupation)
}

func (s *Server) deleteOccupation(c *gin.Context) {
	deleteByID(s, c, s.occupations, "occupation")
}

// Rent payments

func (s *Server) listRentPayments(c *gin.Context) {
	payments, err := s.rentPayments.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterRentPayments(payments, dto.RentPaymentFilter{OccupationID: c.Query("occupationId")})
	respondList(c, filtered)
}

func (s *Server) getRentPayment(c *gin.Context) {
	getByID(c, s.rentPayments, "rent payment")
}

func (s *Server) createRentPayment(c *gin.Context) {
	var req dto.CreateRentPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if _, found, _ := s.occupations.GetByID(c.Request.Context(), req.OccupationID); !found {
		respondError(c, http.StatusBadRequest, "occupation "+req.OccupationID+" does not exist", nil)
		return
	}
	payment, err := s.rentPayments.Create(c.Request.Context(), domain.RentPayment{
		OccupationID:  req.OccupationID,
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		Period:        req.Period,
		PaymentMethod: req.PaymentMethod,
		ReceiptURL:    req.ReceiptURL,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "create", "rent payment", payment.ID, payment.Period)
	c.JSON(http.StatusCreated, payment)
}

func (s *Server) updateRentPayment(c *gin.Context) {
	var patch dto.RentPaymentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	payment, err := s.rentPayments.Update(c.Request.Context(), c.Param("id"), func(p *domain.RentPayment) {
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.PaymentDate != nil {
			p.PaymentDate = *patch.PaymentDate
		}
		if patch.Period != nil {
			p.Period = *patch.Period
		}
		if patch.PaymentMethod != nil {
			p.PaymentMethod = *patch.PaymentMethod
		}
		if patch.ReceiptURL != nil {
			p.ReceiptURL = *patch.ReceiptURL
		}
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "update", "rent payment", payment.ID, payment.Period)
	c.JSON(http.StatusOK, payment)
}

func (s *Server) deleteRentPayment(c *gin.Context) {
	deleteByID(s, c, s.rentPayments, "rent payment")
}
