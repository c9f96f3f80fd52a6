package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/adamanr/hrdesk/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	callArgs := m.Called(append([]any{ctx, sql}, args...)...)
	return callArgs.Get(0).(pgconn.CommandTag), callArgs.Error(1)
}

func (m *mockExecutor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	callArgs := m.Called(append([]any{ctx, sql}, args...)...)
	return callArgs.Get(0).(pgx.Row)
}

func (m *mockExecutor) Begin(ctx context.Context) (pgx.Tx, error) {
	callArgs := m.Called(ctx)
	return callArgs.Get(0).(pgx.Tx), callArgs.Error(1)
}

type idRow struct {
	id  uint64
	err error
}

func (r idRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*uint64)) = r.id
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_b.sql":   {Data: []byte("SELECT 2")},
		"migrations/0001_a.sql":   {Data: []byte("SELECT 1")},
		"migrations/README.md":    {Data: []byte("notes")},
		"migrations/nested/x.sql": {Data: []byte("SELECT 3")},
	}

	files, err := migrationFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_a.sql", "0002_b.sql"}, files)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := migrationFiles(migrationsFS)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "0001_init.sql", files[0])
}

func TestSeedHR(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setupMocks  func(*mockExecutor)
		expectError bool
	}{
		{
			name: "seeding disabled",
		},
		{
			name:     "account already exists",
			email:    "hr@example.com",
			password: "secret",
			setupMocks: func(m *mockExecutor) {
				m.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), "hr@example.com").Return(idRow{id: 1})
			},
		},
		{
			name:     "account created",
			email:    "hr@example.com",
			password: "secret",
			setupMocks: func(m *mockExecutor) {
				m.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), "hr@example.com").Return(idRow{err: pgx.ErrNoRows})
				m.On("Exec", mock.Anything, mock.AnythingOfType("string"),
					"HR", "Administrator", "hr@example.com", "HR manager", "hr", "Yes", mock.AnythingOfType("string"),
				).Return(pgconn.NewCommandTag("INSERT 0 1"), nil)
			},
		},
		{
			name:     "lookup fails",
			email:    "hr@example.com",
			password: "secret",
			setupMocks: func(m *mockExecutor) {
				m.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), "hr@example.com").Return(idRow{err: errors.New("connection refused")})
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(mockExecutor)
			if tt.setupMocks != nil {
				tt.setupMocks(db)
			}

			cfg := &config.Config{}
			cfg.Database.SeedHREmail = tt.email
			cfg.Database.SeedHRPassword = tt.password

			err := SeedHR(context.Background(), db, cfg, testLogger())
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			db.AssertExpectations(t)
		})
	}
}

func TestConnString(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.User = "hr"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "localhost:5432"
	cfg.Database.Database = "hrdesk"

	assert.Equal(t, "postgres://hr:pw@localhost:5432/hrdesk", ConnString(cfg))
}

func TestConnString_EscapesCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.User = "hr@corp"
	cfg.Database.Password = "p@ss:w/rd?"
	cfg.Database.Host = "db.internal:5432"
	cfg.Database.Database = "hrdesk"

	poolCfg, err := pgxpool.ParseConfig(ConnString(cfg))
	require.NoError(t, err)

	assert.Equal(t, "hr@corp", poolCfg.ConnConfig.User)
	assert.Equal(t, "p@ss:w/rd?", poolCfg.ConnConfig.Password)
	assert.Equal(t, "db.internal", poolCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5432), poolCfg.ConnConfig.Port)
	assert.Equal(t, "hrdesk", poolCfg.ConnConfig.Database)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReady(t *testing.T) {
	down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = down.Close() })

	pgDown := errors.New("connection refused")

	err := Ready{Postgres: pingFunc(func(context.Context) error { return pgDown }), Redis: down}.Ping(context.Background())
	assert.ErrorIs(t, err, pgDown)
	assert.ErrorContains(t, err, "postgres")

	err = Ready{Postgres: pingFunc(func(context.Context) error { return nil }), Redis: down}.Ping(context.Background())
	assert.ErrorContains(t, err, "redis")
}
