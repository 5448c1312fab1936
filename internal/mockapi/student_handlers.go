package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/memory"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
	"github.com/AssoGestion/asso_gestion_app/internal/utils/mapping"
)

// Students cross the wire in the backend shape (registrationNumber,
// levelStudy); the stores hold domain shapes, so every handler converts.

func (s *Server) listStudents(c *gin.Context) {
	students, err := s.students.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterStudents(students, dto.StudentFilter{
		Status: c.Query("status"),
		Level:  c.Query("levelStudy"),
	})
	p := listParams(c)
	memory.SortRecords(filtered, p.Sort)
	page := memory.Paginate(filtered, p.Page, p.Limit)
	c.JSON(http.StatusOK, dto.Paginated[dto.StudentWire]{
		Items: wireStudents(page.Items),
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

func wireStudents(students []domain.Student) []dto.StudentWire {
	out := make([]dto.StudentWire, len(students))
	for i, st := range students {
		out[i] = mapping.ToWireStudent(st)
	}
	return out
}

func (s *Server) getStudent(c *gin.Context) {
	student, found, err := s.students.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "student not found", nil)
		return
	}
	c.JSON(http.StatusOK, mapping.ToWireStudent(student))
}

func (s *Server) studentByUserID(c *gin.Context) {
	s.findStudent(c, func(st domain.Student) bool { return st.UserID == c.Param("userId") })
}

func (s *Server) studentByMatricule(c *gin.Context) {
	s.findStudent(c, func(st domain.Student) bool {
		return st.Matricule == c.Param("registrationNumber")
	})
}

func (s *Server) findStudent(c *gin.Context, match func(domain.Student) bool) {
	students, err := s.students.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	for _, st := range students {
		if match(st) {
			c.JSON(http.StatusOK, mapping.ToWireStudent(st))
			return
		}
	}
	respondError(c, http.StatusNotFound, "student not found", nil)
}

func (s *Server) createStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	ctx := c.Request.Context()

	if _, found, _ := s.users.GetByID(ctx, req.UserID); !found {
		respondError(c, http.StatusBadRequest, "user "+req.UserID+" does not exist", nil)
		return
	}
	existing, err := s.students.GetAll(ctx)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	for _, st := range existing {
		if st.Matricule == req.RegistrationNumber {
			respondError(c, http.StatusConflict, "registration number already in use", nil)
			return
		}
		if st.UserID == req.UserID {
			respondError(c, http.StatusConflict, "user already has a student profile", nil)
			return
		}
	}

	status := domain.StudentStatus(req.Status)
	if status == "" {
		status = domain.StudentActive
	}
	student, err := s.students.Create(ctx, domain.Student{
		UserID:       req.UserID,
		Matricule:    req.RegistrationNumber,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		Level:        req.LevelStudy,
		Faculty:      req.Faculty,
		FieldOfStudy: req.FieldOfStudy,
		Country:      req.Country,
		City:         req.City,
		Status:       status,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "create", "student", student.ID, student.Matricule)
	c.JSON(http.StatusCreated, mapping.ToWireStudent(student))
}

func (s *Server) updateStudent(c *gin.Context) {
	var patch dto.StudentWirePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindingError(c, err)
		return
	}
	student, err := s.students.Update(c.Request.Context(), c.Param("id"), func(st *domain.Student) {
		if patch.RegistrationNumber != nil {
			st.Matricule = *patch.RegistrationNumber
		}
		if patch.DateOfBirth != nil {
			st.DateOfBirth = patch.DateOfBirth
		}
		if patch.Gender != nil {
			st.Gender = *patch.Gender
		}
		if patch.LevelStudy != nil {
			st.Level = *patch.LevelStudy
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
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.audit(c, "update", "student", student.ID, student.Matricule)
	c.JSON(http.StatusOK, mapping.ToWireStudent(student))
}

func (s *Server) deleteStudent(c *gin.Context) {
	deleteByID(s, c, s.students, "student")
}

// Users (read-only directory)

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	filtered := memory.FilterUsers(users, dto.UserFilter{Role: c.Query("role")})
	respondList(c, filtered)
}

func (s *Server) getUser(c *gin.Context) {
	getByID(c, s.users, "user")
}
