package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/adamanr/hrdesk/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(w http.ResponseWriter, status int, data any) {
	respType := "success"
	if status >= 400 {
		respType = "error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": status, "type": respType, "data": data})
}

func newTestClient(t *testing.T, s session.Session, h http.HandlerFunc) (*Client, *session.MemoryStore) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore(s)
	return New(srv.URL, store, WithTimeout(5*time.Second)), store
}

func TestClient_LoginStoresSession(t *testing.T) {
	c, store := newTestClient(t, session.Session{}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req entity.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hr@example.com", req.Email)

		reply(w, http.StatusOK, entity.LoginResponse{AccessToken: "jwt", EmployeeID: 3, Role: "hr", Name: "Anna Smith"})
	})

	s, err := c.Login(context.Background(), "hr@example.com", "secret")
	require.NoError(t, err)

	want := session.Session{Token: "jwt", Role: "hr", UserID: "3", UserName: "Anna Smith"}
	assert.Equal(t, want, s)

	stored, _ := store.Load()
	assert.Equal(t, want, stored)
}

func TestClient_LoginRejected(t *testing.T) {
	c, store := newTestClient(t, session.Session{}, func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	})

	_, err := c.Login(context.Background(), "hr@example.com", "bad")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid email or password", apiErr.Message)

	stored, _ := store.Load()
	assert.False(t, stored.Authenticated())
}

func TestClient_BearerHeaderAndUnwrap(t *testing.T) {
	c, _ := newTestClient(t, session.Session{Token: "jwt", Role: "hr"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))
		reply(w, http.StatusOK, []entity.Department{{ID: 1, Name: "HR"}})
	})

	departments, err := c.Departments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.Department{{ID: 1, Name: "HR"}}, departments)
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	c, store := newTestClient(t, session.Session{Token: "stale", Role: "hr"}, func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	})

	_, err := c.Employees(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	stored, _ := store.Load()
	assert.Equal(t, session.Session{}, stored)
}

func TestClient_ErrorClasses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
		message string
	}{
		{
			name: "server message",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				reply(w, http.StatusBadRequest, map[string]string{"error": "start date must not be after end date"})
			},
			status:  http.StatusBadRequest,
			message: "start date must not be after end date",
		},
		{
			name: "plain text error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			},
			status:  http.StatusBadGateway,
			message: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, session.Session{Token: "jwt"}, tt.handler)

			err := c.DeleteContract(context.Background(), 4)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(srv.URL, session.NewMemoryStore(session.Session{Token: "jwt"}))
	_, err := c.Profile(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestClient_EmployeeVacations(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, session.Session{Token: "jwt"}, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/employee-vacations/9" {
			reply(w, http.StatusInternalServerError, map[string]string{"error": "Failed to get vacations"})
			return
		}
		reply(w, http.StatusOK, []entity.Vacation{{ID: 1, EmployeeID: 3, Status: entity.VacationPending}})
	})

	assert.Equal(t, []entity.Vacation{}, c.EmployeeVacations(context.Background(), ""))
	assert.Equal(t, 0, calls)

	assert.Equal(t, []entity.Vacation{}, c.EmployeeVacations(context.Background(), "9"))

	vacations := c.EmployeeVacations(context.Background(), "3")
	require.Len(t, vacations, 1)
	assert.True(t, vacations[0].IsPending())
}

func TestClient_ContractPayload(t *testing.T) {
	c, _ := newTestClient(t, session.Session{Token: "jwt"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2099-01-01", body["end_date"])
		assert.Contains(t, body, "renewal_notification_date")
		assert.Nil(t, body["renewal_notification_date"])

		reply(w, http.StatusCreated, entity.Contract{ID: 5, Status: entity.ContractActive})
	})

	employee := uint64(3)
	start := entity.NewDate(2025, time.March, 1)
	status := entity.ContractActive

	contract, err := c.AddContract(context.Background(), entity.ContractInput{
		EmployeeID: &employee,
		StartDate:  &start,
		EndDate:    &entity.PermanentEndDate,
		Status:     &status,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), contract.ID)
}

func TestClient_Logout(t *testing.T) {
	c, store := newTestClient(t, session.Session{Token: "jwt"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/logout", r.URL.Path)
		reply(w, http.StatusOK, entity.MessageResponse{Message: "Logged out successfully"})
	})

	require.NoError(t, c.Logout(context.Background()))

	stored, _ := store.Load()
	assert.False(t, stored.Authenticated())
}
