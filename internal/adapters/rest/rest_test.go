package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// recordedRequest captures the last request a test server received.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// newTestServer returns an httptest server that records requests and replies
// with the given status and raw JSON body.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.RawQuery
		rec.Body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newTestClient(srv *httptest.Server) *apiclient.Client {
	return apiclient.New(srv.URL, 0, nil)
}

func TestListItems_UnwrapsEnvelope(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK,
		`{"items":[{"id":"q1","name":"Bonamoussadi"}],"total":1,"page":1,"limit":10}`)

	svc := NewResidenceService(newTestClient(srv))
	quarters, err := svc.ListQuarters(context.Background(), dto.ListParams{})

	require.NoError(t, err)
	require.Len(t, quarters, 1)
	assert.Equal(t, "q1", quarters[0].ID)
	assert.Equal(t, "Bonamoussadi", quarters[0].Name)
}

func TestListItems_NonJSONBodySurfacesError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `not json at all`)

	svc := NewResidenceService(newTestClient(srv))
	quarters, err := svc.ListQuarters(context.Background(), dto.ListParams{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response body")
	assert.Empty(t, quarters)
}

func TestListItems_MissingItemsYieldsEmptySlice(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"total":0,"page":1,"limit":10}`)

	svc := NewResidenceService(newTestClient(srv))
	quarters, err := svc.ListQuarters(context.Background(), dto.ListParams{})

	require.NoError(t, err)
	assert.Empty(t, quarters)
}

func TestListRooms_BuildsQueryString(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"items":[]}`)

	svc := NewResidenceService(newTestClient(srv))
	_, err := svc.ListRooms(context.Background(),
		dto.RoomFilter{BuildingID: "b1", Status: "available"},
		dto.ListParams{Page: 2, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, "/residence/rooms", rec.Path)
	assert.Contains(t, rec.Query, "buildingId=b1")
	assert.Contains(t, rec.Query, "status=available")
	assert.Contains(t, rec.Query, "page=2")
	assert.Contains(t, rec.Query, "limit=5")
}

func TestListRooms_EmptyFilterSendsNoQuery(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"items":[]}`)

	svc := NewResidenceService(newTestClient(srv))
	_, err := svc.ListRooms(context.Background(), dto.RoomFilter{}, dto.ListParams{})

	require.NoError(t, err)
	assert.Empty(t, rec.Query)
}

func TestOccupationsByRoom_DecodesBareArray(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK,
		`[{"id":"o1","roomId":"r1","studentId":"s1","isActive":true}]`)

	svc := NewResidenceService(newTestClient(srv))
	occs, err := svc.OccupationsByRoom(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "/residence/room-occupations/room/r1", rec.Path)
	require.Len(t, occs, 1)
	assert.True(t, occs[0].IsActive)
}

func TestActiveOccupations_SendsIsActiveTrue(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"items":[]}`)

	svc := NewResidenceService(newTestClient(srv))
	_, err := svc.ActiveOccupations(context.Background())

	require.NoError(t, err)
	assert.Contains(t, rec.Query, "isActive=true")
}

func TestCreateQuarter_ValidationFailsBeforeRequest(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{}`)

	svc := NewResidenceService(newTestClient(srv))
	_, err := svc.CreateQuarter(context.Background(), dto.CreateQuarterRequest{})

	require.Error(t, err)
	assert.Empty(t, rec.Method, "no request should have been sent")
}

func TestDeleteRoom_NoContentMeansDeleted(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusNoContent, ``)

	svc := NewResidenceService(newTestClient(srv))
	ok, err := svc.DeleteRoom(context.Background(), "r9")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/residence/rooms/r9", rec.Path)
}

func TestDeleteRoom_NotFoundSurfacesError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, `{"message":"room not found"}`)

	svc := NewResidenceService(newTestClient(srv))
	ok, err := svc.DeleteRoom(context.Background(), "missing")

	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusNotFound))
	assert.Equal(t, "room not found", err.Error())
}

func TestUpdateQuarter_SendsOnlySetFields(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"id":"q1","name":"Akwa"}`)

	name := "Akwa"
	svc := NewResidenceService(newTestClient(srv))
	q, err := svc.UpdateQuarter(context.Background(), "q1", dto.QuarterPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.Method)
	assert.JSONEq(t, `{"name":"Akwa"}`, string(rec.Body))
	assert.Equal(t, "Akwa", q.Name)
}

func TestListQuery_MergesPagination(t *testing.T) {
	params := listQuery(dto.ListParams{Page: 3, Limit: 20, Sort: "-createdAt"})
	q := params.Encode()
	assert.Contains(t, q, "page=3")
	assert.Contains(t, q, "limit=20")
	assert.Contains(t, q, "sort=-createdAt")
}

func decodeBody(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}
