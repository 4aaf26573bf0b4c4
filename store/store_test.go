package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var pgError23505 = pgconn.PgError{
	Code:    "23505",
	Message: "duplicate key value violates unique constraint",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return New(db), mock
}

var userColumns = []string{
	"user_id", "email", "given_name", "surname", "city",
	"phone_number", "profile_description", "password",
}

func userRow(id int) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).AddRow(
		id, "bella.brown@email.com", "Bella", "Brown", "Astana",
		"+77771234567", "", "password123",
	)
}

var caregiverColumns = []string{
	"caregiver_user_id", "photo", "gender", "caregiving_type", "hourly_rate",
}
