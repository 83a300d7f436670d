// Package sandbox generates synthetic demo data for development and testing
// environments. It populates the practice with realistic patients and
// consultations so the dashboard and claim flows have something to show.
//
// Never enable this in production.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dencare/dencare/internal/domain/catalog"
	"github.com/dencare/dencare/internal/domain/consultation"
	"github.com/dencare/dencare/internal/domain/patient"
	"github.com/dencare/dencare/internal/platform/apperror"
)

// SeedConfig controls how much demo data gets generated. The same Seed value
// always produces the same dataset.
type SeedConfig struct {
	PatientCount            int   `json:"patient_count"`
	MaxConsultationsPerCase int   `json:"max_consultations_per_patient"`
	Seed                    int64 `json:"seed"`
}

// DefaultSeedConfig mirrors the volumes of a small established practice.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		PatientCount:            100,
		MaxConsultationsPerCase: 5,
		Seed:                    1,
	}
}

// SeedResult summarizes one seeding run.
type SeedResult struct {
	Patients      int           `json:"patients"`
	Enrollments   int           `json:"enrollments"`
	Consultations int           `json:"consultations"`
	CatalogActs   int           `json:"catalog_acts"`
	Duration      time.Duration `json:"duration_ns"`
	Seed          int64         `json:"seed"`
}

var firstNames = []string{
	"Amine", "Sami", "Mehdi", "Karim", "Youssef", "Hamza", "Walid", "Nizar",
	"Bilel", "Seifeddine", "Salma", "Ines", "Mariem", "Rania", "Nour",
	"Amira", "Syrine", "Olfa", "Hela", "Fatma",
}

var lastNames = []string{
	"Ben Ali", "Trabelsi", "Gharbi", "Jlassi", "Bouazizi", "Hammami",
	"Mejri", "Chaabane", "Dridi", "Khelifi", "Saidi", "Mansouri",
	"Baccouche", "Zouari", "Ayari", "Ferchichi",
}

var streets = []string{
	"Avenue Habib Bourguiba", "Rue de Marseille", "Avenue de la Liberté",
	"Rue Ibn Khaldoun", "Avenue Mohamed V", "Rue de Palestine",
	"Avenue Farhat Hached", "Rue du Lac Léman",
}

var cities = []struct {
	name       string
	codePostal string
}{
	{"Tunis", "1000"}, {"Ariana", "2080"}, {"Sousse", "4000"},
	{"Sfax", "3000"}, {"Nabeul", "8000"}, {"Bizerte", "7000"},
	{"Monastir", "5000"}, {"La Marsa", "2078"},
}

var consultationReasons = []string{
	"Contrôle de routine", "Détartrage", "Douleur dentaire",
	"Carie sur molaire", "Extraction dent de sagesse",
	"Pose de couronne", "Consultation initiale", "Suivi de traitement",
	"Sensibilité au froid", "Gencives qui saignent",
}

var treatmentPlans = []string{
	"", "", "Détartrage complet puis contrôle dans 6 mois",
	"Traitement de la carie, obturation composite",
	"Dévitalisation puis couronne céramique",
	"Extraction sous anesthésie locale",
}

// Act codes from the seeded fee schedule; a consultation references between
// zero and three of them.
var demoActCodes = []string{
	"DCH000010", "DCH010010", "DCH010020", "DCH020010",
	"DCH020030", "DCH030010", "DCH040010", "DCH050010",
}

// PatientCreator, ConsultationCreator and CatalogSeeder are satisfied by the
// domain services, so every generated record passes the same validation as
// user input.
type PatientCreator interface {
	CreatePatient(ctx context.Context, p *patient.Patient) error
}

type ConsultationCreator interface {
	CreateConsultation(ctx context.Context, cons *consultation.Consultation) error
}

type CatalogSeeder interface {
	Seed(ctx context.Context) (*catalog.SeedSummary, error)
}

type Seeder struct {
	patients      PatientCreator
	consultations ConsultationCreator
	catalog       CatalogSeeder
	log           zerolog.Logger
}

func NewSeeder(patients PatientCreator, consultations ConsultationCreator, cat CatalogSeeder, log zerolog.Logger) *Seeder {
	return &Seeder{
		patients:      patients,
		consultations: consultations,
		catalog:       cat,
		log:           log.With().Str("component", "sandbox").Logger(),
	}
}

// Seed generates the demo dataset. The act catalog is seeded first so that
// generated consultations can reference real act codes.
func (s *Seeder) Seed(ctx context.Context, cfg SeedConfig) (*SeedResult, error) {
	if cfg.PatientCount <= 0 {
		return nil, apperror.Validation("patient_count must be positive")
	}
	if cfg.MaxConsultationsPerCase <= 0 {
		cfg.MaxConsultationsPerCase = DefaultSeedConfig().MaxConsultationsPerCase
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeedConfig().Seed
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(cfg.Seed))

	catalogSum, err := s.catalog.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	result := &SeedResult{CatalogActs: catalogSum.Acts, Seed: cfg.Seed}

	for i := 0; i < cfg.PatientCount; i++ {
		p := s.randomPatient(rng)
		if err := s.patients.CreatePatient(ctx, p); err != nil {
			return nil, fmt.Errorf("create patient %d: %w", i, err)
		}
		result.Patients++
		if p.SocialSecurity != nil {
			result.Enrollments++
		}

		for n := rng.Intn(cfg.MaxConsultationsPerCase + 1); n > 0; n-- {
			cons := s.randomConsultation(rng, p.ID)
			if err := s.consultations.CreateConsultation(ctx, cons); err != nil {
				return nil, fmt.Errorf("create consultation for patient %s: %w", p.ID, err)
			}
			result.Consultations++
		}
	}

	result.Duration = time.Since(start)
	s.log.Info().
		Int("patients", result.Patients).
		Int("consultations", result.Consultations).
		Int64("seed", cfg.Seed).
		Dur("duration", result.Duration).
		Msg("sandbox seed complete")
	return result, nil
}

func (s *Seeder) randomPatient(rng *rand.Rand) *patient.Patient {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	city := cities[rng.Intn(len(cities))]
	address := fmt.Sprintf("%d %s, %s", 1+rng.Intn(120), streets[rng.Intn(len(streets))], city.name)

	p := &patient.Patient{
		FirstName: first,
		LastName:  last,
		Phone:     randomPhone(rng),
		DOB:       randomDate(rng, 1950, 2015),
		Address:   address,
	}

	if rng.Intn(100) < 20 {
		p.PatientHistory = "Allergie pénicilline"
	}

	// Roughly a third of the practice is CNAM-enrolled; claims need at
	// least some of these.
	if rng.Intn(100) < 35 {
		types := []string{patient.AssuranceCNSS, patient.AssuranceCNRPS, patient.AssuranceConvention}
		p.SocialSecurity = &patient.SocialSecurity{
			IDAssurance:   fmt.Sprintf("%010d", rng.Int63n(1e10)),
			FirstName:     first,
			LastName:      last,
			Address:       address,
			CodePostal:    city.codePostal,
			TypeAssurance: types[rng.Intn(len(types))],
		}
	}
	return p
}

func (s *Seeder) randomConsultation(rng *rand.Rand, patientID uuid.UUID) *consultation.Consultation {
	date := randomDate(rng, 2024, 2025)

	status := consultation.StatusCompleted
	if date.After(time.Now()) {
		status = consultation.StatusScheduled
	} else if rng.Intn(100) < 10 {
		status = consultation.StatusCancelled
	}

	var acts []string
	var price float64
	if status != consultation.StatusCancelled {
		for n := rng.Intn(4); n > 0; n-- {
			acts = append(acts, demoActCodes[rng.Intn(len(demoActCodes))])
		}
		price = float64(30 + 5*rng.Intn(55)) // 30 to 300 TND in 5 TND steps
	}

	return &consultation.Consultation{
		PatientID:     patientID,
		Date:          date,
		Time:          randomSlot(rng),
		Reason:        consultationReasons[rng.Intn(len(consultationReasons))],
		Price:         price,
		Status:        status,
		TreatmentPlan: treatmentPlans[rng.Intn(len(treatmentPlans))],
		Acts:          acts,
	}
}

// randomPhone builds an 8-digit Tunisian mobile or landline number.
func randomPhone(rng *rand.Rand) string {
	prefixes := []string{"2", "5", "9", "7"}
	return prefixes[rng.Intn(len(prefixes))] + fmt.Sprintf("%07d", rng.Intn(1e7))
}

// randomDate picks a day between Jan 1 of fromYear and Dec 31 of toYear.
func randomDate(rng *rand.Rand, fromYear, toYear int) time.Time {
	start := time.Date(fromYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(toYear+1, 1, 1, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.Intn(days))
}

// randomSlot returns an appointment time on the half hour between 09:00 and
// 16:30, the practice's working day.
func randomSlot(rng *rand.Rand) string {
	slot := rng.Intn(16) // 16 half-hour slots from 09:00
	return fmt.Sprintf("%02d:%02d", 9+slot/2, 30*(slot%2))
}

// Handler exposes seeding over HTTP for dev environments.
type Handler struct {
	seeder *Seeder
}

func NewHandler(seeder *Seeder) *Handler {
	return &Handler{seeder: seeder}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/sandbox/seed", h.SeedData)
}

func (h *Handler) SeedData(c echo.Context) error {
	cfg := DefaultSeedConfig()
	if err := c.Bind(&cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid seed config")
	}
	if cfg.PatientCount > 10000 {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_count must be at most 10000")
	}

	result, err := h.seeder.Seed(c.Request().Context(), cfg)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
