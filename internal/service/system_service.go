package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/response"
)

const (
	maxListedCollections = 10
	maxProbeErrorLen     = 50
	probeTimeout         = 5 * time.Second
)

// StoreProbe is the part of the database store the diagnostics need.
type StoreProbe interface {
	Configured() bool
	URLSet() bool
	Name() string
	ListCollectionNames(ctx context.Context, max int) ([]string, error)
}

// Diagnostics is the body of the GET /test endpoint.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// SystemService reports backend and store health.
type SystemService struct {
	store StoreProbe
	log   zerolog.Logger
}

// NewSystemService creates a new SystemService.
func NewSystemService(store StoreProbe, log zerolog.Logger) *SystemService {
	return &SystemService{
		store: store,
		log:   log.With().Str("component", "system_service").Logger(),
	}
}

// Diagnose never fails: probe errors are reported in the Database field.
func (s *SystemService) Diagnose(ctx context.Context) Diagnostics {
	d := Diagnostics{
		Backend:          "Running",
		Database:         "Not Available",
		DatabaseURL:      "Not Set",
		DatabaseName:     "Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if s.store.URLSet() {
		d.DatabaseURL = "Set"
	}
	if name := s.store.Name(); name != "" {
		d.DatabaseName = name
	}
	if !s.store.Configured() {
		return d
	}

	d.Database = "Available"
	d.ConnectionStatus = "Connected"

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	names, err := s.store.ListCollectionNames(probeCtx, maxListedCollections)
	if err != nil {
		s.log.Warn().Err(err).Msg("Collection listing failed")
		d.Database = "Connected but Error: " + response.Truncate(err.Error(), maxProbeErrorLen)
		return d
	}
	d.Collections = names
	d.Database = "Connected & Working"
	return d
}
