package domain

type Planet struct {
	KeplerName     string  `json:"keplerName"`
	Disposition    string  `json:"disposition,omitempty"`
	InsolationFlux float64 `json:"insolationFlux,omitempty"`
	PlanetRadius   float64 `json:"planetRadius,omitempty"`
}

// Habitable reports whether the planet is a confirmed exoplanet with Earth-like
// stellar flux and radius.
func (p Planet) Habitable() bool {
	return p.Disposition == "CONFIRMED" &&
		p.InsolationFlux > 0.36 && p.InsolationFlux < 1.11 &&
		p.PlanetRadius < 1.6
}
