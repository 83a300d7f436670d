package sandbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dencare/dencare/internal/domain/catalog"
	"github.com/dencare/dencare/internal/domain/consultation"
	"github.com/dencare/dencare/internal/domain/patient"
	"github.com/dencare/dencare/internal/platform/apperror"
)

type patientStore struct {
	created []*patient.Patient
}

func (s *patientStore) CreatePatient(_ context.Context, p *patient.Patient) error {
	p.ID = uuid.New()
	cp := *p
	s.created = append(s.created, &cp)
	return nil
}

type consultationStore struct {
	created []*consultation.Consultation
}

func (s *consultationStore) CreateConsultation(_ context.Context, cons *consultation.Consultation) error {
	cons.ID = uuid.New()
	cp := *cons
	s.created = append(s.created, &cp)
	return nil
}

type catalogStub struct {
	calls int
}

func (s *catalogStub) Seed(context.Context) (*catalog.SeedSummary, error) {
	s.calls++
	return &catalog.SeedSummary{Chapters: 2, Sections: 10, Groups: 30, Acts: 150}, nil
}

func newTestSeeder() (*Seeder, *patientStore, *consultationStore, *catalogStub) {
	patients := &patientStore{}
	consultations := &consultationStore{}
	cat := &catalogStub{}
	return NewSeeder(patients, consultations, cat, zerolog.Nop()), patients, consultations, cat
}

func TestSeed_Volumes(t *testing.T) {
	seeder, patients, consultations, cat := newTestSeeder()

	result, err := seeder.Seed(context.Background(), DefaultSeedConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Patients != 100 || len(patients.created) != 100 {
		t.Errorf("expected 100 patients, got result=%d created=%d", result.Patients, len(patients.created))
	}
	if result.Consultations != len(consultations.created) {
		t.Errorf("result reports %d consultations, store has %d", result.Consultations, len(consultations.created))
	}
	if result.Consultations == 0 {
		t.Error("expected some consultations to be generated")
	}
	if result.Enrollments == 0 || result.Enrollments == result.Patients {
		t.Errorf("expected a mix of enrolled and non-enrolled patients, got %d/%d", result.Enrollments, result.Patients)
	}
	if result.CatalogActs != 150 {
		t.Errorf("expected catalog act count from the fee schedule, got %d", result.CatalogActs)
	}
	if cat.calls != 1 {
		t.Errorf("expected exactly one catalog seed call, got %d", cat.calls)
	}
}

func TestSeed_GeneratedRecordsAreValid(t *testing.T) {
	seeder, patients, consultations, _ := newTestSeeder()

	if _, err := seeder.Seed(context.Background(), SeedConfig{PatientCount: 50, Seed: 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range patients.created {
		if len(p.Phone) != 8 {
			t.Errorf("patient %s: phone %q is not 8 digits", p.ID, p.Phone)
		}
		if p.DOB.After(time.Now()) {
			t.Errorf("patient %s: dob %s in the future", p.ID, p.DOB)
		}
		if ss := p.SocialSecurity; ss != nil {
			if ss.IDAssurance == "" || ss.Address == "" || ss.CodePostal == "" {
				t.Errorf("patient %s: partial enrollment %+v", p.ID, ss)
			}
			if !patient.ValidAssuranceTypes[ss.TypeAssurance] {
				t.Errorf("patient %s: bad assurance type %q", p.ID, ss.TypeAssurance)
			}
		}
	}

	knownCodes := make(map[string]bool, len(demoActCodes))
	for _, code := range demoActCodes {
		knownCodes[code] = true
	}
	for _, cons := range consultations.created {
		if !consultation.ValidStatuses[cons.Status] {
			t.Errorf("consultation %s: bad status %q", cons.ID, cons.Status)
		}
		hour := cons.Time[:2]
		if hour < "09" || hour > "16" {
			t.Errorf("consultation %s: time %q outside working hours", cons.ID, cons.Time)
		}
		if y := cons.Date.Year(); y < 2024 || y > 2025 {
			t.Errorf("consultation %s: date %s outside the demo window", cons.ID, cons.Date)
		}
		if cons.Status == consultation.StatusCancelled && cons.Price != 0 {
			t.Errorf("consultation %s: cancelled but priced %v", cons.ID, cons.Price)
		}
		for _, code := range cons.Acts {
			if !knownCodes[code] {
				t.Errorf("consultation %s: unknown act code %q", cons.ID, code)
			}
		}
	}
}

func TestSeed_Deterministic(t *testing.T) {
	cfg := SeedConfig{PatientCount: 20, MaxConsultationsPerCase: 3, Seed: 42}

	first, firstPatients, firstCons, _ := newTestSeeder()
	second, secondPatients, secondCons, _ := newTestSeeder()

	r1, err := first.Seed(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := second.Seed(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r1.Consultations != r2.Consultations || r1.Enrollments != r2.Enrollments {
		t.Fatalf("same seed produced different volumes: %+v vs %+v", r1, r2)
	}
	for i := range firstPatients.created {
		a, b := firstPatients.created[i], secondPatients.created[i]
		if a.FirstName != b.FirstName || a.LastName != b.LastName || a.Phone != b.Phone {
			t.Fatalf("patient %d differs between runs: %s %s vs %s %s", i, a.FirstName, a.LastName, b.FirstName, b.LastName)
		}
	}
	for i := range firstCons.created {
		a, b := firstCons.created[i], secondCons.created[i]
		if !a.Date.Equal(b.Date) || a.Time != b.Time || a.Price != b.Price {
			t.Fatalf("consultation %d differs between runs", i)
		}
	}
}

func TestSeed_RejectsNonPositiveCount(t *testing.T) {
	seeder, _, _, _ := newTestSeeder()

	_, err := seeder.Seed(context.Background(), SeedConfig{PatientCount: 0})
	if !apperror.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSeedHandler(t *testing.T) {
	seeder, _, _, _ := newTestSeeder()
	h := NewHandler(seeder)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/sandbox/seed", strings.NewReader(`{"patient_count":5,"seed":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.SeedData(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var result SeedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.Patients != 5 {
		t.Errorf("expected 5 patients, got %d", result.Patients)
	}
}

func TestSeedHandler_CapsPatientCount(t *testing.T) {
	seeder, _, _, _ := newTestSeeder()
	h := NewHandler(seeder)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/sandbox/seed", strings.NewReader(`{"patient_count":50000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.SeedData(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
