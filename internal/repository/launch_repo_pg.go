package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LaunchRepository interface {
	FindOne(ctx context.Context, filter domain.LaunchFilter) (*domain.Launch, error)
	List(ctx context.Context, skip, limit int) ([]domain.Launch, error)
	LatestFlightNumber(ctx context.Context) (int64, error)
	// Put creates or fully replaces the launch stored under its flight number.
	Put(ctx context.Context, launch *domain.Launch) error
	// Create stores a launch whose flight number must not exist yet.
	Create(ctx context.Context, launch *domain.Launch) error
	// UpdateFlags sets upcoming/success and reports how many launches changed.
	UpdateFlags(ctx context.Context, flightNumber int64, upcoming, success bool) (int64, error)
}

const launchColumns = `flight_number, mission, rocket, launch_date, target, customers, upcoming, success`

type PGLaunchRepository struct {
	db *pgxpool.Pool
}

func NewLaunchRepository(db *pgxpool.Pool) LaunchRepository {
	return &PGLaunchRepository{db: db}
}

func (r *PGLaunchRepository) FindOne(ctx context.Context, filter domain.LaunchFilter) (*domain.Launch, error) {
	var (
		conds []string
		args  []any
	)
	if filter.FlightNumber != 0 {
		args = append(args, filter.FlightNumber)
		conds = append(conds, fmt.Sprintf("flight_number=$%d", len(args)))
	}
	if filter.Rocket != "" {
		args = append(args, filter.Rocket)
		conds = append(conds, fmt.Sprintf("rocket=$%d", len(args)))
	}
	if filter.Mission != "" {
		args = append(args, filter.Mission)
		conds = append(conds, fmt.Sprintf("mission=$%d", len(args)))
	}

	query := `SELECT ` + launchColumns + ` FROM launches`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY flight_number LIMIT 1`

	l, err := scanLaunch(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLaunchNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *PGLaunchRepository) List(ctx context.Context, skip, limit int) ([]domain.Launch, error) {
	if skip < 0 {
		skip = 0
	}
	// LIMIT NULL is unbounded.
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := r.db.Query(ctx, `SELECT `+launchColumns+` FROM launches ORDER BY flight_number ASC OFFSET $1 LIMIT $2`, skip, lim)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	launches := make([]domain.Launch, 0)
	for rows.Next() {
		l, err := scanLaunch(rows)
		if err != nil {
			return nil, err
		}
		launches = append(launches, *l)
	}
	return launches, rows.Err()
}

func (r *PGLaunchRepository) LatestFlightNumber(ctx context.Context) (int64, error) {
	var latest int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(flight_number), 0) FROM launches`).Scan(&latest); err != nil {
		return 0, err
	}
	return latest, nil
}

func (r *PGLaunchRepository) Put(ctx context.Context, launch *domain.Launch) error {
	_, err := r.db.Exec(ctx, `INSERT INTO launches (`+launchColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (flight_number) DO UPDATE SET
			mission = EXCLUDED.mission,
			rocket = EXCLUDED.rocket,
			launch_date = EXCLUDED.launch_date,
			target = EXCLUDED.target,
			customers = EXCLUDED.customers,
			upcoming = EXCLUDED.upcoming,
			success = EXCLUDED.success,
			updated_at = now()`,
		launchArgs(launch)...)
	return err
}

func (r *PGLaunchRepository) Create(ctx context.Context, launch *domain.Launch) error {
	_, err := r.db.Exec(ctx, `INSERT INTO launches (`+launchColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, launchArgs(launch)...)
	if isUniqueViolation(err) {
		return domain.ErrFlightNumberTaken
	}
	return err
}

func (r *PGLaunchRepository) UpdateFlags(ctx context.Context, flightNumber int64, upcoming, success bool) (int64, error) {
	res, err := r.db.Exec(ctx, `UPDATE launches SET upcoming=$2, success=$3, updated_at=now()
		WHERE flight_number=$1 AND (upcoming IS DISTINCT FROM $2 OR success IS DISTINCT FROM $3)`,
		flightNumber, upcoming, success)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func launchArgs(l *domain.Launch) []any {
	customers := l.Customers
	if customers == nil {
		customers = []string{}
	}
	return []any{l.FlightNumber, l.Mission, l.Rocket, l.LaunchDate, l.Target, customers, l.Upcoming, l.Success}
}

func scanLaunch(row pgx.Row) (*domain.Launch, error) {
	var l domain.Launch
	if err := row.Scan(&l.FlightNumber, &l.Mission, &l.Rocket, &l.LaunchDate, &l.Target, &l.Customers, &l.Upcoming, &l.Success); err != nil {
		return nil, err
	}
	return &l, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

var _ LaunchRepository = (*PGLaunchRepository)(nil)
