package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanetRepository interface {
	GetByName(ctx context.Context, keplerName string) (*domain.Planet, error)
	List(ctx context.Context) ([]domain.Planet, error)
	Put(ctx context.Context, planet *domain.Planet) error
}

type PGPlanetRepository struct {
	db *pgxpool.Pool
}

func NewPlanetRepository(db *pgxpool.Pool) PlanetRepository {
	return &PGPlanetRepository{db: db}
}

func (r *PGPlanetRepository) GetByName(ctx context.Context, keplerName string) (*domain.Planet, error) {
	row := r.db.QueryRow(ctx, `SELECT kepler_name, disposition, insolation_flux, planet_radius FROM planets WHERE kepler_name=$1`, keplerName)
	var p domain.Planet
	if err := row.Scan(&p.KeplerName, &p.Disposition, &p.InsolationFlux, &p.PlanetRadius); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlanetNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPlanetRepository) List(ctx context.Context) ([]domain.Planet, error) {
	rows, err := r.db.Query(ctx, `SELECT kepler_name, disposition, insolation_flux, planet_radius FROM planets ORDER BY kepler_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planets := make([]domain.Planet, 0)
	for rows.Next() {
		var p domain.Planet
		if err := rows.Scan(&p.KeplerName, &p.Disposition, &p.InsolationFlux, &p.PlanetRadius); err != nil {
			return nil, err
		}
		planets = append(planets, p)
	}
	return planets, rows.Err()
}

func (r *PGPlanetRepository) Put(ctx context.Context, planet *domain.Planet) error {
	_, err := r.db.Exec(ctx, `INSERT INTO planets (kepler_name, disposition, insolation_flux, planet_radius)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (kepler_name) DO UPDATE SET
			disposition = EXCLUDED.disposition,
			insolation_flux = EXCLUDED.insolation_flux,
			planet_radius = EXCLUDED.planet_radius,
			updated_at = now()`,
		planet.KeplerName, planet.Disposition, planet.InsolationFlux, planet.PlanetRadius)
	return err
}

var _ PlanetRepository = (*PGPlanetRepository)(nil)
