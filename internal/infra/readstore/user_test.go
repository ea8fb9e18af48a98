//go:build unit

package readstore

import (
	"context"
	"testing"

	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserQueries struct {
	mock.Mock
}

func (m *mockUserQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *mockUserQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestUserReadStore_FindByEmail(t *testing.T) {
	guest := builder.NewUserBuilder().
		WithEmail("guest@example.com").
		WithName("Ana", "de la Cruz").
		AsInactive().
		BuildInfra()

	tests := []struct {
		name     string
		row      sqlc.Users
		queryErr error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "inactive accounts are still returned", row: guest},
		{name: "no rows", row: sqlc.Users{}, queryErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "driver failure", row: sqlc.Users{}, queryErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(mockUserQueries)
			q.On("FindUserByEmail", mock.Anything, mock.Anything, guest.Email).Return(tt.row, tt.queryErr)

			view, hash, err := NewUserReadStore(q, nil).FindByEmail(context.Background(), guest.Email)

			if tt.queryErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.Equal(t, guest.ID, view.ID)
				assert.Equal(t, "de la Cruz", view.LastName)
				assert.False(t, view.IsActive)
				assert.Equal(t, guest.PasswordHash, hash)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserReadStore_FindByID(t *testing.T) {
	admin := builder.NewUserBuilder().AsAdmin().BuildInfra()

	t.Run("maps the row", func(t *testing.T) {
		q := new(mockUserQueries)
		q.On("FindUserByID", mock.Anything, mock.Anything, admin.ID).Return(sqlc.FindUserByIDRow{
			ID:        admin.ID,
			Email:     admin.Email,
			FirstName: admin.FirstName,
			LastName:  admin.LastName,
			Role:      admin.Role,
			IsActive:  admin.IsActive,
		}, nil)

		view, err := NewUserReadStore(q, nil).FindByID(context.Background(), admin.ID)

		require.NoError(t, err)
		assert.Equal(t, "admin", view.Role)
		assert.Equal(t, admin.Email, view.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		id := uuid.New()
		q := new(mockUserQueries)
		q.On("FindUserByID", mock.Anything, mock.Anything, id).Return(sqlc.FindUserByIDRow{}, pgx.ErrNoRows)

		_, err := NewUserReadStore(q, nil).FindByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
