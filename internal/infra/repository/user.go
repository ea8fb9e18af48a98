package repository

import (
	"context"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	UpsertGuestUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertGuestUserParams) (sqlc.UpsertGuestUserRow, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

// FindOrCreate is safe to repeat: the unique email decides which id survives.
func (r *UserRepository) FindOrCreate(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, bool, error) {
	row, err := r.queries.UpsertGuestUser(ctx, tx, sqlc.UpsertGuestUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
	})
	if err != nil {
		return uuid.Nil, false, infra.WrapRepoErr("failed to find or create user", err)
	}
	return row.ID, row.Inserted, nil
}
