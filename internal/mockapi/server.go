// Package mockapi is a self-contained development backend: a gin server
// implementing the same REST contract the real backend exposes, backed by
// the in-memory stores and seed fixtures. It exists so the client stack can
// be exercised end to end without the production system of record.
package mockapi

import (
	"log/slog"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/memory"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/platform/config"
)

// seedPassword is the password of every fixture account.
const seedPassword = "password123"

// Server holds the mock backend's state: one memory store per entity, plus
// bcrypt credentials keyed by email.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger

	users        *memory.Store[domain.User, *domain.User]
	students     *memory.Store[domain.Student, *domain.Student]
	quarters     *memory.Store[domain.Quarter, *domain.Quarter]
	buildings    *memory.Store[domain.Building, *domain.Building]
	rooms        *memory.Store[domain.Room, *domain.Room]
	occupations  *memory.Store[domain.RoomOccupation, *domain.RoomOccupation]
	rentPayments *memory.Store[domain.RentPayment, *domain.RentPayment]
	auditLogs    *memory.Store[domain.AuditLog, *domain.AuditLog]

	credMu      sync.RWMutex
	credentials map[string]string // email -> bcrypt hash
	resetTokens map[string]string // reset token -> email
}

// NewServer seeds the stores from the fixtures. Every fixture account logs
// in with seedPassword; the hash is computed once and shared.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:          cfg,
		logger:       logger,
		users:        memory.NewStore[domain.User, *domain.User](memory.UserFixtures()),
		students:     memory.NewStore[domain.Student, *domain.Student](memory.StudentFixtures()),
		quarters:     memory.NewStore[domain.Quarter, *domain.Quarter](memory.QuarterFixtures()),
		buildings:    memory.NewStore[domain.Building, *domain.Building](memory.BuildingFixtures()),
		rooms:        memory.NewStore[domain.Room, *domain.Room](memory.RoomFixtures()),
		occupations:  memory.NewStore[domain.RoomOccupation, *domain.RoomOccupation](memory.OccupationFixtures()),
		rentPayments: memory.NewStore[domain.RentPayment, *domain.RentPayment](memory.RentPaymentFixtures()),
		auditLogs:    memory.NewStore[domain.AuditLog, *domain.AuditLog](nil),
		credentials:  map[string]string{},
		resetTokens:  map[string]string{},
	}

	hash, err := hashSeedPassword()
	if err != nil {
		return nil, err
	}
	for _, u := range memory.UserFixtures() {
		s.credentials[u.Email] = hash
	}
	return s, nil
}

// Router builds the gin engine with the full middleware chain and every
// route of the backend contract.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogging(s.logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	rate, err := limiter.NewRateFromFormatted(s.cfg.RateLimit)
	if err == nil {
		r.Use(RateLimit(limiter.New(limitermem.NewStore(), rate)))
	} else {
		s.logger.Warn("Invalid RATE_LIMIT, rate limiting disabled", "value", s.cfg.RateLimit, "error", err)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", s.handleLogin)
		auth.POST("/register", s.handleRegister)
		auth.POST("/forgot-password", s.handleForgotPassword)
		auth.POST("/reset-password", s.handleResetPassword)

		authed := auth.Group("", Auth(s.cfg.JWTSecret))
		authed.POST("/logout", s.handleLogout)
		authed.GET("/profile", s.handleProfile)
		authed.POST("/refresh", s.handleRefresh)
	}

	protected := r.Group("", Auth(s.cfg.JWTSecret))

	residence := protected.Group("/residence")
	{
		residence.GET("/quarters", s.listQuarters)
		residence.GET("/quarters/:id", s.getQuarter)
		residence.POST("/quarters", s.createQuarter)
		residence.PATCH("/quarters/:id", s.updateQuarter)
		residence.DELETE("/quarters/:id", s.deleteQuarter)

		residence.GET("/buildings", s.listBuildings)
		residence.GET("/buildings/quarter/:quarterId", s.buildingsByQuarter)
		residence.GET("/buildings/:id", s.getBuilding)
		residence.POST("/buildings", s.createBuilding)
		residence.PATCH("/buildings/:id", s.updateBuilding)
		residence.DELETE("/buildings/:id", s.deleteBuilding)

		residence.GET("/rooms", s.listRooms)
		residence.GET("/rooms/building/:buildingId", s.roomsByBuilding)
		residence.GET("/rooms/:id", s.getRoom)
		residence.POST("/rooms", s.createRoom)
		residence.PATCH("/rooms/:id", s.updateRoom)
		residence.DELETE("/rooms/:id", s.deleteRoom)

		residence.GET("/room-occupations", s.listOccupations)
		residence.GET("/room-occupations/room/:roomId", s.occupationsByRoom)
		residence.GET("/room-occupations/student/:studentId", s.occupationsByStudent)
		residence.GET("/room-occupations/:id", s.getOccupation)
		residence.POST("/room-occupations", s.createOccupation)
		residence.PATCH("/room-occupations/:id", s.updateOccupation)
		residence.DELETE("/room-occupations/:id", s.deleteOccupation)

		residence.GET("/rent-payments", s.listRentPayments)
		residence.GET("/rent-payments/:id", s.getRentPayment)
		residence.POST("/rent-payments", s.createRentPayment)
		residence.PATCH("/rent-payments/:id", s.updateRentPayment)
		residence.DELETE("/rent-payments/:id", s.deleteRentPayment)
	}

	students := protected.Group("/students")
	{
		students.GET("", s.listStudents)
		students.GET("/user/:userId", s.studentByUserID)
		students.GET("/registration/:registrationNumber", s.studentByMatricule)
		students.GET("/:id", s.getStudent)
		students.POST("", s.createStudent)
		students.PATCH("/:id", s.updateStudent)
		students.DELETE("/:id", s.deleteStudent)
	}

	protected.GET("/users", s.listUsers)
	protected.GET("/users/:id", s.getUser)
	protected.GET("/audit-logs", s.listAuditLogs)

	return r
}

// audit appends an entry for a mutation performed by the authenticated user.
func (s *Server) audit(c *gin.Context, action, entity, targetID, details string) {
	claims := ClaimsFrom(c)
	entry := domain.AuditLog{
		Action:     action,
		EntityName: entity,
		TargetID:   targetID,
		Details:    details,
	}
	if claims != nil {
		entry.UserID = claims.Subject
		entry.UserName = claims.Email
	}
	if _, err := s.auditLogs.Create(c.Request.Context(), entry); err != nil {
		LoggerFrom(c).Warn("audit append failed", "error", err)
	}
}

func (s *Server) listAuditLogs(c *gin.Context) {
	logs, err := s.auditLogs.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	p := listParams(c)
	memory.SortRecords(logs, p.Sort)
	c.JSON(200, memory.Paginate(logs, p.Page, p.Limit))
}
