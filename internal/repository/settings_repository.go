package repository

import (
	"context"
	"fmt"
	"time"

	"nordlys_studio/internal/domain/models"
	"nordlys_studio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var (
	settingColumns   = []string{"id", "key", "value", "type", "created_at", "updated_at"}
	heroSlideColumns = []string{
		"id", "image_url", "title", "subtitle", "cta_text", "cta_link",
		"sort_order", "active", "created_at", "updated_at",
	}
)

type SettingsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertSetting inserts the key or overwrites its value and type if it
// already exists. Settings are identified by key, not id.
func (r *SettingsRepo) UpsertSetting(ctx context.Context, setting models.SiteSetting) (*models.SiteSetting, error) {
	const op = "repository.settings_repository.UpsertSetting"

	query, args, err := r.sb.Insert("site_settings").
		Columns("key", "value", "type").
		Values(setting.Key, setting.Value, setting.Type).
		Suffix(`ON CONFLICT (key) DO UPDATE
			SET value = EXCLUDED.value, type = EXCLUDED.type, updated_at = NOW()
			RETURNING ` + joinColumns(settingColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var saved models.SiteSetting
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&saved.ID,
		&saved.Key,
		&saved.Value,
		&saved.Type,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &saved, nil
}

func (r *SettingsRepo) DeleteSetting(ctx context.Context, key string) error {
	const op = "repository.settings_repository.DeleteSetting"

	query, args, err := r.sb.Delete("site_settings").
		Where(sq.Eq{"key": key}).
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

func (r *SettingsRepo) GetSettingByKey(ctx context.Context, key string) (*models.SiteSetting, error) {
	const op = "repository.settings_repository.GetSettingByKey"

	query, args, err := r.sb.Select(settingColumns...).
		From("site_settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var setting models.SiteSetting
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.Type,
		&setting.CreatedAt,
		&setting.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	return &setting, nil
}

func (r *SettingsRepo) GetSettings(ctx context.Context) ([]models.SiteSetting, error) {
	const op = "repository.settings_repository.GetSettings"

	query, args, err := r.sb.Select(settingColumns...).
		From("site_settings").
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var settings []models.SiteSetting
	for rows.Next() {
		var setting models.SiteSetting
		err := rows.Scan(
			&setting.ID,
			&setting.Key,
			&setting.Value,
			&setting.Type,
			&setting.CreatedAt,
			&setting.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

func (r *SettingsRepo) SaveHeroSlide(ctx context.Context, slide models.HeroSlide) (uuid.UUID, error) {
	const op = "repository.settings_repository.SaveHeroSlide"

	query, args, err := r.sb.Insert("hero_slides").
		Columns("image_url", "title", "subtitle", "cta_text", "cta_link", "sort_order", "active").
		Values(
			slide.ImageURL,
			slide.Title,
			slide.Subtitle,
			slide.CTAText,
			slide.CTALink,
			slide.SortOrder,
			slide.Active,
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

func (r *SettingsRepo) UpdateHeroSlideFields(ctx context.Context, slideID uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.settings_repository.UpdateHeroSlideFields"

	allowedFields := map[string]bool{
		"image_url":  true,
		"title":      true,
		"subtitle":   true,
		"cta_text":   true,
		"cta_link":   true,
		"sort_order": true,
		"active":     true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNoUpdates)
	}

	updateBuilder := r.sb.Update("hero_slides").
		Set("updated_at", time.Now())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"id": slideID}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return wrapPgError(op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *SettingsRepo) DeleteHeroSlide(ctx context.Context, slideID uuid.UUID) error {
	const op = "repository.settings_repository.DeleteHeroSlide"

	query, args, err := r.sb.Delete("hero_slides").
		Where(sq.Eq{"id": slideID}).
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

func (r *SettingsRepo) GetHeroSlides(ctx context.Context, activeOnly bool) ([]models.HeroSlide, error) {
	const op = "repository.settings_repository.GetHeroSlides"

	queryBuilder := r.sb.Select(heroSlideColumns...).
		From("hero_slides").
		OrderBy("sort_order ASC", "created_at ASC")

	if activeOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"active": true})
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

	var slides []models.HeroSlide
	for rows.Next() {
		var slide models.HeroSlide
		err := rows.Scan(
			&slide.ID,
			&slide.ImageURL,
			&slide.Title,
			&slide.Subtitle,
			&slide.CTAText,
			&slide.CTALink,
			&slide.SortOrder,
			&slide.Active,
			&slide.CreatedAt,
			&slide.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		slides = append(slides, slide)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slides, nil
}
