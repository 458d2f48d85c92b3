package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewUserRepository(db), mock
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := setupMockUserRepo(t)

	rows := sqlmock.NewRows([]string{"id", "username", "password", "email", "created_at"}).
		AddRow("user-1", "jdoe", "$2a$10$hash", "j@x.com", time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+)`).
		WithArgs("j@x.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("j@x.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.Equal(t, "jdoe", user.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupMockUserRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
		WithArgs("no-such-id", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "created_at"}))

	_, err := repo.FindByID("no-such-id")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_TouchesOnlyGivenColumns(t *testing.T) {
	repo, mock := setupMockUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "full_name"=(.+) WHERE id = (.+)`).
		WithArgs("Jane Doe", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows := sqlmock.NewRows([]string{"id", "username", "password", "email", "full_name", "created_at"}).
		AddRow("user-1", "jdoe", "$2a$10$hash", "j@x.com", "Jane Doe", time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
		WithArgs("user-1", 1).
		WillReturnRows(rows)

	user, err := repo.Update("user-1", map[string]interface{}{"full_name": "Jane Doe"})
	require.NoError(t, err)
	require.NotNil(t, user.FullName)
	require.Equal(t, "Jane Doe", *user.FullName)

	require.NoError(t, mock.ExpectationsWereMet())
}
