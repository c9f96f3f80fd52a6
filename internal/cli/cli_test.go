package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/adamanr/hrdesk/internal/pages"
	"github.com/adamanr/hrdesk/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hrSession       = session.Session{Token: "hr-token", Role: "hr", UserID: "1", UserName: "Anna Smith"}
	employeeSession = session.Session{Token: "emp-token", Role: "employee", UserID: "2", UserName: "Boris Ivanov"}
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

type fakeServer struct {
	*httptest.Server
	contractBody map[string]any
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, entity.LoginResponse{AccessToken: "hr-token", EmployeeID: 1, Role: "hr", Name: "Anna Smith"})
	})
	mux.HandleFunc("GET /employees", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, []entity.Employee{
			{ID: 1, FirstName: "Anna", LastName: "Smith", Email: "anna@example.com", JobName: "Recruiter", Active: "Yes"},
			{ID: 2, FirstName: "Boris", LastName: "Ivanov", Email: "boris@example.com", JobName: "Engineer", Active: "Yes"},
		})
	})
	mux.HandleFunc("GET /vacations", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, []entity.Vacation{
			{ID: 10, EmployeeID: 2, StartDate: entity.NewDate(2024, 7, 1), EndDate: entity.NewDate(2024, 7, 14), Status: entity.VacationApproved},
		})
	})
	mux.HandleFunc("POST /contracts", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&fs.contractBody)
		reply(w, http.StatusCreated, entity.Contract{ID: 7})
	})
	mux.HandleFunc("GET /contracts", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, []entity.Contract{})
	})
	mux.HandleFunc("DELETE /contracts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete contract"})
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)

	return fs
}

func run(t *testing.T, srv *fakeServer, store session.Store, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	dir := t.TempDir()

	cmd := NewRootCommand(Options{Out: &out, Err: &errOut, In: &bytes.Buffer{}, ConfigDir: dir, Store: store})
	cmd.SetArgs(append([]string{"--api-url", srv.URL}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// execute runs hrctl the way main does and returns both streams and the exit status.
func execute(t *testing.T, srv *fakeServer, store session.Store, args ...string) (string, string, int) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := NewRootCommand(Options{Out: &out, Err: &errOut, In: &bytes.Buffer{}, ConfigDir: t.TempDir(), Store: store})
	cmd.SetArgs(append([]string{"--api-url", srv.URL}, args...))

	code := Execute(context.Background(), cmd, &errOut)
	return out.String(), errOut.String(), code
}

func TestExecute_OneMessagePerFailure(t *testing.T) {
	srv := newFakeServer(t)

	tests := []struct {
		name       string
		session    session.Session
		args       []string
		wantOut    string
		wantErrOut string
		wantCode   int
	}{
		{
			name:     "failed delete is reported once",
			session:  hrSession,
			args:     []string{"contracts", "delete", "5"},
			wantOut:  "Failed to delete contract",
			wantCode: 1,
		},
		{
			name:     "invalid form is reported once",
			session:  hrSession,
			args:     []string{"contracts", "add", "--employee", "2"},
			wantOut:  "enter a start date",
			wantCode: 1,
		},
		{
			name:       "guard errors are printed by main",
			session:    session.Session{},
			args:       []string{"analytics"},
			wantErrOut: "hrctl: " + ErrNotLoggedIn.Error(),
			wantCode:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := execute(t, srv, session.NewMemoryStore(tt.session), tt.args...)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" {
				assert.Equal(t, 1, strings.Count(out, tt.wantOut))
			}
			if tt.wantErrOut == "" {
				assert.Empty(t, errOut)
			} else {
				assert.Contains(t, errOut, tt.wantErrOut)
			}
		})
	}
}

func TestGuardedCommands(t *testing.T) {
	srv := newFakeServer(t)

	tests := []struct {
		name    string
		session session.Session
		args    []string
		wantErr error
	}{
		{name: "no session", session: session.Session{}, args: []string{"employees", "list"}, wantErr: ErrNotLoggedIn},
		{name: "employee on hr page", session: employeeSession, args: []string{"employees", "list"}, wantErr: ErrForbidden},
		{name: "employee on analytics", session: employeeSession, args: []string{"analytics"}, wantErr: ErrForbidden},
		{name: "employee adding employees", session: employeeSession, args: []string{"employees", "add"}, wantErr: ErrForbidden},
		{name: "hr lists employees", session: hrSession, args: []string{"employees", "list"}},
		{name: "public whoami", session: session.Session{}, args: []string{"whoami"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, srv, session.NewMemoryStore(tt.session), tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestLogin(t *testing.T) {
	srv := newFakeServer(t)
	store := session.NewMemoryStore(session.Session{})

	out, err := run(t, srv, store, "login", "--email", "anna@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Anna Smith (HR manager).")

	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, hrSession, s)
}

func TestEmployeesListSearch(t *testing.T) {
	srv := newFakeServer(t)

	out, err := run(t, srv, session.NewMemoryStore(hrSession), "employees", "list", "--search", "boris")
	require.NoError(t, err)
	assert.Contains(t, out, "Ivanov")
	assert.NotContains(t, out, "Smith")
	assert.Contains(t, out, "1 of 2 employees")
}

func TestEmployeesListPDF(t *testing.T) {
	srv := newFakeServer(t)
	path := filepath.Join(t.TempDir(), "employees.pdf")

	out, err := run(t, srv, session.NewMemoryStore(hrSession), "employees", "list", "--pdf", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 employees")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestContractsAddPermanent(t *testing.T) {
	srv := newFakeServer(t)

	out, err := run(t, srv, session.NewMemoryStore(hrSession),
		"contracts", "add", "--employee", "2", "--start", "2024-01-01", "--end", "2024-06-01", "--renewal", "2024-05-01", "--permanent")
	require.NoError(t, err)
	assert.Contains(t, out, "Contract created.")

	require.NotNil(t, srv.contractBody)
	assert.Equal(t, "2099-01-01", srv.contractBody["end_date"])
	assert.Nil(t, srv.contractBody["renewal_notification_date"])
	assert.Equal(t, "Active", srv.contractBody["status"])
}

func TestVacationsOpenProcessed(t *testing.T) {
	srv := newFakeServer(t)

	out, errOut, code := execute(t, srv, session.NewMemoryStore(hrSession), "vacations", "open", "10")
	assert.Zero(t, code)
	assert.Empty(t, errOut)
	assert.Equal(t, 1, strings.Count(out, pages.ProcessedNotice))
	assert.NotContains(t, out, "Employee")
}

func TestMenu(t *testing.T) {
	srv := newFakeServer(t)

	out, err := run(t, srv, session.NewMemoryStore(employeeSession), "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "/profile")
	assert.NotContains(t, out, "/employees")
}

func TestParseID(t *testing.T) {
	v, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
