package repository

import (
	"context"
	"fmt"

	"nordlys_studio/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

type StatsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// DashboardStats gathers all admin counters in a single round trip.
func (r *StatsRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	const op = "repository.stats_repository.DashboardStats"

	query := `SELECT
		(SELECT COUNT(*) FROM projects),
		(SELECT COUNT(*) FROM media),
		(SELECT COUNT(*) FROM contacts WHERE status = $1),
		(SELECT COUNT(*) FROM bookings WHERE status = $2),
		(SELECT COUNT(*) FROM subscribers WHERE status = $3)`

	var stats models.DashboardStats
	err := r.db.QueryRow(ctx, query,
		models.ContactStatusNew,
		models.BookingStatusPending,
		models.SubscriberStatusActive,
	).Scan(
		&stats.Projects,
		&stats.Media,
		&stats.NewContacts,
		&stats.PendingBookings,
		&stats.ActiveSubscribers,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &stats, nil
}
