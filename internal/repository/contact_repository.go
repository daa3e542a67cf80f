package repository

import (
	"context"
	"fmt"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var contactColumns = []string{
	"id", "name", "email", "phone", "event_date", "event_type",
	"message", "status", "created_at", "updated_at",
}

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ContactRepo) SaveContact(ctx context.Context, contact models.Contact) (uuid.UUID, error) {
	const op = "repository.contact_repository.SaveContact"

	query, args, err := r.sb.Insert("contacts").
		Columns("name", "email", "phone", "event_date", "event_type", "message", "status").
		Values(
			contact.Name,
			contact.Email,
			contact.Phone,
			contact.EventDate,
			contact.EventType,
			contact.Message,
			contact.Status,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgError(op, err)
	}

	return id, nil
}

func (r *ContactRepo) UpdateContactStatus(ctx context.Context, contactID uuid.UUID, status string) error {
	const op = "repository.contact_repository.UpdateContactStatus"

	query, args, err := r.sb.Update("contacts").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": contactID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ContactRepo) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	const op = "repository.contact_repository.DeleteContact"

	query, args, err := r.sb.Delete("contacts").
		Where(sq.Eq{"id": contactID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *ContactRepo) GetContactByID(ctx context.Context, contactID uuid.UUID) (*models.Contact, error) {
	const op = "repository.contact_repository.GetContactByID"

	query, args, err := r.sb.Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"id": contactID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var contact models.Contact
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.EventDate,
		&contact.EventType,
		&contact.Message,
		&contact.Status,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &contact, nil
}

func (r *ContactRepo) GetContacts(ctx context.Context, statusFilter string) ([]models.Contact, error) {
	const op = "repository.contact_repository.GetContacts"

	queryBuilder := r.sb.Select(contactColumns...).
		From("contacts").
		OrderBy("created_at DESC")

	if statusFilter != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"status": statusFilter})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var contact models.Contact
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.EventDate,
			&contact.EventType,
			&contact.Message,
			&contact.Status,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}
