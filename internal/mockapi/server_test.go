package mockapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/rest"
	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
	"github.com/AssoGestion/asso_gestion_app/internal/platform/config"
	"github.com/AssoGestion/asso_gestion_app/internal/session"
)

// startBackend boots the mock backend under httptest and returns a client
// stack pointed at it.
func startBackend(t *testing.T) (*apiclient.Client, *apiclient.TokenHolder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "asso-gestion-test",
		RateLimit:         "1000-S",
	}
	srv, err := NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	tokens := &apiclient.TokenHolder{}
	return apiclient.New(ts.URL, 5*time.Second, tokens), tokens
}

func login(t *testing.T, client *apiclient.Client, tokens *apiclient.TokenHolder) {
	t.Helper()
	auth := rest.NewAuthService(client)
	resp, err := auth.Login(context.Background(), "jean.dupont@email.com", "password123")
	require.NoError(t, err)
	tokens.Set(resp.AccessToken)
}

func TestLoginAndProfile(t *testing.T) {
	client, tokens := startBackend(t)
	auth := rest.NewAuthService(client)

	resp, err := auth.Login(context.Background(), "jean.dupont@email.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "president", resp.User.Role)

	tokens.Set(resp.AccessToken)
	user, err := auth.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", user.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	client, _ := startBackend(t)
	auth := rest.NewAuthService(client)

	_, err := auth.Login(context.Background(), "jean.dupont@email.com", "nope")
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLogin_DisabledAccount(t *testing.T) {
	client, _ := startBackend(t)
	auth := rest.NewAuthService(client)

	_, err := auth.Login(context.Background(), "eric.samba@email.com", "password123")
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	client, _ := startBackend(t)
	svc := rest.NewResidenceService(client)

	_, err := svc.ListQuarters(context.Background(), dto.ListParams{})
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
}

func TestRegisterThenLogin(t *testing.T) {
	client, tokens := startBackend(t)
	auth := rest.NewAuthService(client)

	resp, err := auth.Signup(context.Background(), dto.SignupRequest{
		Name:     "Nouveau Membre",
		Email:    "nouveau@email.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "student", resp.User.Role)

	tokens.Set(resp.AccessToken)
	user, err := auth.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nouveau Membre", user.Name)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	client, _ := startBackend(t)
	auth := rest.NewAuthService(client)

	_, err := auth.Signup(context.Background(), dto.SignupRequest{
		Name:     "Doppelganger",
		Email:    "jean.dupont@email.com",
		Password: "hunter22",
	})
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusConflict))
}

func TestListRooms_PaginationEnvelope(t *testing.T) {
	client, tokens := startBackend(t)
	login(t, client, tokens)
	svc := rest.NewResidenceService(client)

	rooms, err := svc.ListRooms(context.Background(), dto.RoomFilter{}, dto.ListParams{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, rooms, 3)

	rooms, err = svc.ListRooms(context.Background(), dto.RoomFilter{BuildingID: "1"}, dto.ListParams{})
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
	for _, r := range rooms {
		assert.Equal(t, "1", r.BuildingID)
	}
}

func TestCreateOccupation_FullRoomConflicts(t *testing.T) {
	client, tokens := startBackend(t)
	login(t, client, tokens)
	svc := rest.NewResidenceService(client)

	// room 1 has capacity 2 and two active occupations
	_, err := svc.CreateOccupation(context.Background(), dto.CreateOccupationRequest{
		RoomID:    "1",
		StudentID: "5",
		StartDate: time.Now(),
		IsActive:  true,
	})
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusConflict))
}

func TestCreateOccupation_DoubleHousingConflicts(t *testing.T) {
	client, tokens := startBackend(t)
	login(t, client, tokens)
	svc := rest.NewResidenceService(client)

	// student 1 already lives in room 1; room 3 has space
	_, err := svc.CreateOccupation(context.Background(), dto.CreateOccupationRequest{
		RoomID:    "3",
		StudentID: "1",
		StartDate: time.Now(),
		IsActive:  true,
	})
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusConflict))
}

func TestCreateOccupation_AvailableRoomSucceeds(t *testing.T) {
	client, tokens := startBackend(t)
	login(t, client, tokens)
	svc := rest.NewResidenceService(client)

	occ, err := svc.CreateOccupation(context.Background(), dto.CreateOccupationRequest{
		RoomID:    "3",
		StudentID: "5",
		StartDate: time.Now(),
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, occ.ID)
	assert.True(t, occ.IsActive)
}

func TestStudentWireRoundTrip(t *testing.T) {
	client, tokens := startBackend(t)
	login(t, client, tokens)
	svc := rest.NewStudentService(client)

	student, err := svc.GetStudentByMatricule(context.Background(), "STU-2024-001")
	require.NoError(t, err)
	assert.Equal(t, "L3", student.Level)
	assert.Equal(t, "4", student.UserID)

	level := "M1"
	updated, err := svc.UpdateStudent(context.Background(), student.ID, dto.StudentPatch{Level: &level})
	require.NoError(t, err)
	assert.Equal(t, "M1", updated.Level)
	assert.Equal(t, "STU-2024-001", updated.Matricule, "unset fields keep their values")
}

func TestListStudents_LevelStudyFilter(t *testing.T) {
	client, tokens := startBackend(t)
	login(t, client, tokens)
	svc := rest.NewStudentService(client)

	students, err := svc.ListStudents(context.Background(), dto.StudentFilter{Level: "M1"}, dto.ListParams{})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "STU-2024-002", students[0].Matricule)
}

func TestSessionLifecycleAgainstBackend(t *testing.T) {
	client, tokens := startBackend(t)
	auth := rest.NewAuthService(client)
	store := session.NewMemStore()
	mgr := session.NewManager(auth, store, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, mgr.Init())
	require.NoError(t, mgr.Login(context.Background(), "marie.martin@email.com", "password123"))
	assert.True(t, mgr.State().IsAuthenticated)

	require.NoError(t, mgr.CheckAuth(context.Background()))
	assert.Equal(t, "Marie Martin", mgr.State().User.Name)

	mgr.Logout(context.Background())
	assert.False(t, mgr.State().IsAuthenticated)
	assert.Empty(t, tokens.Token())

	// the stale manager state now fails closed
	_, err := rest.NewResidenceService(client).ListQuarters(context.Background(), dto.ListParams{})
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
}

func TestAuditTrailRecordsMutations(t *testing.T) {
	client, tokens := startBackend(t)
	login(t, client, tokens)
	svc := rest.NewResidenceService(client)

	_, err := svc.CreateQuarter(context.Background(), dto.CreateQuarterRequest{
		Name: "Quartier Talangaï",
		City: "Brazzaville",
	})
	require.NoError(t, err)

	var page dto.Paginated[map[string]any]
	require.NoError(t, client.Get(context.Background(), "/audit-logs", &page))
	require.NotEmpty(t, page.Items)
	last := page.Items[len(page.Items)-1]
	assert.Equal(t, "create", last["action"])
	assert.Equal(t, "quarter", last["entity"])
	assert.Equal(t, "jean.dupont@email.com", last["userName"])
}
