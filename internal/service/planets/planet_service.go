package planets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/Domenick1991/missioncontrol/internal/repository"
)

type PlanetUseCase interface {
	List(ctx context.Context) ([]domain.Planet, error)
	GetByName(ctx context.Context, keplerName string) (*domain.Planet, error)
}

type PlanetService struct {
	repo repository.PlanetRepository
}

func NewPlanetService(repo repository.PlanetRepository) *PlanetService {
	return &PlanetService{repo: repo}
}

func (s *PlanetService) List(ctx context.Context) ([]domain.Planet, error) {
	return s.repo.List(ctx)
}

func (s *PlanetService) GetByName(ctx context.Context, keplerName string) (*domain.Planet, error) {
	return s.repo.GetByName(ctx, keplerName)
}

// LoadHabitable reads a Kepler objects-of-interest CSV export and stores every
// habitable planet in it. Lines starting with '#' are comments; the first
// remaining line is the header.
func (s *PlanetService) LoadHabitable(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header, "kepler_name", "koi_disposition", "koi_insol", "koi_prad")
	if err != nil {
		return 0, err
	}

	loaded := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return loaded, fmt.Errorf("read row: %w", err)
		}

		planet, ok := parsePlanet(record, cols)
		if !ok || !planet.Habitable() {
			continue
		}
		if err := s.repo.Put(ctx, &planet); err != nil {
			return loaded, fmt.Errorf("save planet %s: %w", planet.KeplerName, err)
		}
		loaded++
	}

	log.Printf("%d habitable planets found", loaded)
	return loaded, nil
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, name := range names {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}

func parsePlanet(record []string, cols map[string]int) (domain.Planet, bool) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("kepler_name")
	if name == "" {
		return domain.Planet{}, false
	}
	insol, err := strconv.ParseFloat(field("koi_insol"), 64)
	if err != nil {
		return domain.Planet{}, false
	}
	prad, err := strconv.ParseFloat(field("koi_prad"), 64)
	if err != nil {
		return domain.Planet{}, false
	}
	return domain.Planet{
		KeplerName:     name,
		Disposition:    field("koi_disposition"),
		InsolationFlux: insol,
		PlanetRadius:   prad,
	}, true
}

var _ PlanetUseCase = (*PlanetService)(nil)
