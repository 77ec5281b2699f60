package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// newMockMemberRepository creates a GormMemberRepository with a mocked SQL connection
func newMockMemberRepository(t *testing.T) (*GormMemberRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormMemberRepository(gormDB), mock, mockDB
}

func TestGormMemberRepository_FindByID(t *testing.T) {
	t.Run("finds existing member", func(t *testing.T) {
		repo, mock, mockDB := newMockMemberRepository(t)
		defer mockDB.Close()

		memberID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "status"}).
			AddRow(memberID, "Jamie Doe", "jamie@example.com", "active")

		mock.ExpectQuery(`SELECT \* FROM "members" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(memberID, 1).
			WillReturnRows(rows)

		member, err := repo.FindByID(context.Background(), memberID)

		assert.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, memberID, member.ID)
		assert.Equal(t, "jamie@example.com", member.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing member", func(t *testing.T) {
		repo, mock, mockDB := newMockMemberRepository(t)
		defer mockDB.Close()

		memberID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "members" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(memberID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		member, err := repo.FindByID(context.Background(), memberID)

		assert.Nil(t, member)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormMemberRepository_FindByEmail(t *testing.T) {
	t.Run("lowercases the lookup", func(t *testing.T) {
		repo, mock, mockDB := newMockMemberRepository(t)
		defer mockDB.Close()

		memberID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "status"}).
			AddRow(memberID, "Jamie Doe", "jamie@example.com", "active")

		mock.ExpectQuery(`SELECT \* FROM "members" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("jamie@example.com", 1).
			WillReturnRows(rows)

		member, err := repo.FindByEmail(context.Background(), "Jamie@Example.com")

		assert.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, memberID, member.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormMemberRepository_FindExpiring(t *testing.T) {
	t.Run("queries active members past the cutoff", func(t *testing.T) {
		repo, mock, mockDB := newMockMemberRepository(t)
		defer mockDB.Close()

		cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		memberID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "status"}).
			AddRow(memberID, "Jamie Doe", "jamie@example.com", "active")

		mock.ExpectQuery(`SELECT \* FROM "members" WHERE status = \$1 AND end_date IS NOT NULL AND end_date <= \$2`).
			WithArgs("active", cutoff).
			WillReturnRows(rows)

		members, err := repo.FindExpiring(context.Background(), cutoff)

		assert.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, memberID, members[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
