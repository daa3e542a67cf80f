package repository

import (
	"context"
	"errors"
	"fmt"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var userColumns = []string{
	"id", "email", "pass_hash", "first_name", "last_name",
	"profile_image_url", "is_admin", "created_at",
}

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepo) SaveUser(ctx context.Context, user models.AdminUser) (uuid.UUID, error) {
	const op = "repository.user_repository.SaveUser"

	query, args, err := r.sb.Insert("users").
		Columns("email", "pass_hash", "first_name", "last_name", "profile_image_url", "is_admin").
		Values(
			user.Email,
			user.PassHash,
			user.FirstName,
			user.LastName,
			user.ProfileImageURL,
			user.IsAdmin,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *UserRepo) UserByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	const op = "repository.user_repository.UserByEmail"

	return r.getUser(ctx, op, sq.Eq{"email": email})
}

func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (models.AdminUser, error) {
	const op = "repository.user_repository.GetUserByID"

	return r.getUser(ctx, op, sq.Eq{"id": userID})
}

func (r *UserRepo) getUser(ctx context.Context, op string, where sq.Eq) (models.AdminUser, error) {
	query, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return models.AdminUser{}, fmt.Errorf("%s: %w", op, err)
	}

	var user models.AdminUser
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PassHash,
		&user.FirstName,
		&user.LastName,
		&user.ProfileImageURL,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.AdminUser{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.AdminUser{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (r *UserRepo) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "repository.user_repository.IsAdmin"

	query, args, err := r.sb.Select("is_admin").
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var isAdmin bool
	err = r.db.QueryRow(ctx, query, args...).Scan(&isAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return isAdmin, nil
}
