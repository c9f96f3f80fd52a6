package controllers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"time"

	"github.com/adamanr/hrdesk/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

// MockDB represents a mock database connection.
type MockDB struct {
	mock.Mock
}

func (m *MockDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgx.Rows), callArgs.Error(1)
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgx.Row)
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := append([]interface{}{ctx, sql}, args...)
	callArgs := m.Called(mockArgs...)
	return callArgs.Get(0).(pgconn.CommandTag), callArgs.Error(1)
}

// assign copies val into the pointer dest, the way pgx would after decoding.
// Nil values zero the destination.
func assign(dest, val interface{}) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("destination %T is not a pointer", dest)
	}
	dv = dv.Elem()

	if val == nil {
		dv.Set(reflect.Zero(dv.Type()))
		return nil
	}

	vv := reflect.ValueOf(val)
	switch {
	case vv.Type().AssignableTo(dv.Type()):
		dv.Set(vv)
	case dv.Kind() == reflect.Pointer && vv.Type().AssignableTo(dv.Type().Elem()):
		p := reflect.New(dv.Type().Elem())
		p.Elem().Set(vv)
		dv.Set(p)
	case vv.Kind() == dv.Kind() && vv.Type().ConvertibleTo(dv.Type()):
		dv.Set(vv.Convert(dv.Type()))
	default:
		return fmt.Errorf("cannot scan %T into %T", val, dest)
	}

	return nil
}

func scanValues(values []interface{}, dest []interface{}) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}

	for i := range values {
		if err := assign(dest[i], values[i]); err != nil {
			return err
		}
	}

	return nil
}

// MockRow represents a mock database row.
type MockRow struct {
	data []interface{}
	err  error
}

func NewMockRow(data []interface{}, err error) *MockRow {
	return &MockRow{
		data: data,
		err:  err,
	}
}

func (m *MockRow) Scan(dest ...interface{}) error {
	if m.err != nil {
		return m.err
	}

	return scanValues(m.data, dest)
}

// MockRows represents mock database rows. Field descriptions are needed when
// the controller collects rows by name.
type MockRows struct {
	rows       [][]interface{}
	pos        int
	err        error
	fieldDescs []pgconn.FieldDescription
}

func NewMockRows(rows [][]interface{}, err error, columns ...string) *MockRows {
	fieldDescs := make([]pgconn.FieldDescription, 0, len(columns))
	for _, c := range columns {
		fieldDescs = append(fieldDescs, pgconn.FieldDescription{Name: c})
	}

	return &MockRows{
		rows:       rows,
		pos:        -1,
		err:        err,
		fieldDescs: fieldDescs,
	}
}

func (m *MockRows) FieldDescriptions() []pgconn.FieldDescription {
	return m.fieldDescs
}

func (m *MockRows) Next() bool {
	if m.err != nil {
		return false
	}

	m.pos++
	return m.pos < len(m.rows)
}

func (m *MockRows) Close() {}

func (m *MockRows) Scan(dest ...interface{}) error {
	if len(dest) == 1 {
		if rs, ok := dest[0].(pgx.RowScanner); ok {
			return rs.ScanRow(m)
		}
	}

	if m.pos < 0 || m.pos >= len(m.rows) {
		return fmt.Errorf("scan called without a current row")
	}

	return scanValues(m.rows[m.pos], dest)
}

func (m *MockRows) Err() error {
	return m.err
}

func (m *MockRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag("SELECT")
}

func (m *MockRows) Values() ([]interface{}, error) {
	if m.pos < 0 || m.pos >= len(m.rows) {
		return nil, nil
	}
	return m.rows[m.pos], nil
}

func (m *MockRows) RawValues() [][]byte {
	return nil
}

func (m *MockRows) Conn() *pgx.Conn {
	return nil
}

// MockRedis represents a mock Redis client.
type MockRedis struct {
	mock.Mock
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)

	cmd := redis.NewStatusCmd(ctx)
	if err := args.Error(0); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("OK")
	}

	return cmd
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)

	cmd := redis.NewStringCmd(ctx)
	if err := args.Error(0); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("valid")
	}

	return cmd
}

func (m *MockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)

	cmd := redis.NewIntCmd(ctx)
	if err := args.Error(0); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(int64(len(keys)))
	}

	return cmd
}

func NewMockCommandTag(op string, rowsAffected int64) pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("%s %d", op, rowsAffected))
}

func newTestDeps() (*Dependens, *MockDB, *MockRedis) {
	mockDB := new(MockDB)
	mockRedis := new(MockRedis)

	cfg := &config.Config{}
	cfg.Server.JWTSecret = testSecret
	cfg.Redis.AccessTokenTTL = time.Hour

	return &Dependens{
		DB:     mockDB,
		Redis:  mockRedis,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: cfg,
	}, mockDB, mockRedis
}

var employeeColumnNames = []string{
	"employee_id", "first_name", "last_name", "date_of_birth", "gender", "email", "phone", "salary",
	"inn", "snils", "fk_department", "job_name", "active", "role", "employment_date",
}
