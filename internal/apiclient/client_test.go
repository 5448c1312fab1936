package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Centre"}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL, time.Second, nil)
	var out struct {
		Name string `json:"name"`
	}
	err := c.Get(context.Background(), "/residence/quarters/1", &out)

	require.NoError(t, err)
	assert.Equal(t, "Centre", out.Name)
}

func TestDo_BearerHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tokens := &apiclient.TokenHolder{}
	c := apiclient.New(srv.URL, time.Second, tokens)

	require.NoError(t, c.Get(context.Background(), "/auth/profile", nil))
	assert.Empty(t, gotAuth, "no header without a token")

	tokens.Set("abc123")
	require.NoError(t, c.Get(context.Background(), "/auth/profile", nil))
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestDo_JSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not found"}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL, time.Second, nil)
	err := c.Get(context.Background(), "/students/missing", nil)

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not found", apiErr.Message)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Nil(t, apiErr.Errors)
}

func TestDo_ValidationErrorsMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"validation failed","errors":{"email":["invalid"]}}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL, time.Second, nil)
	err := c.Post(context.Background(), "/auth/register", map[string]string{}, nil)

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"invalid"}, apiErr.Errors["email"])
}

func TestDo_NonJSONErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL, time.Second, nil)
	err := c.Get(context.Background(), "/students", nil)

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP 502: Bad Gateway", apiErr.Message)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestDo_NoContentResolvesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL, time.Second, nil)
	var out map[string]any
	err := c.Delete(context.Background(), "/residence/rooms/1", &out)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDo_TransportErrorHasStatusZero(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := apiclient.New(srv.URL, time.Second, nil)
	err := c.Get(context.Background(), "/students", nil)

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestURL_NormalizesSlashes(t *testing.T) {
	c := apiclient.New("http://localhost:3000/", time.Second, nil)
	assert.Equal(t, "http://localhost:3000/students", c.URL("/students"))
	assert.Equal(t, "http://localhost:3000/students", c.URL("students"))
}

func TestParams_Encode(t *testing.T) {
	p := apiclient.Params{}.
		Set("page", "1").
		Set("limit", "10").
		Set("status", ""). // empty: omitted, not sent
		Set("buildingId", "b1")

	q := p.Encode()
	assert.Contains(t, q, "page=1")
	assert.Contains(t, q, "buildingId=b1")
	assert.NotContains(t, q, "status")
	assert.True(t, q[0] == '?')
}

func TestParams_EmptyEncodesToNothing(t *testing.T) {
	assert.Equal(t, "", apiclient.Params{}.Encode())
}
