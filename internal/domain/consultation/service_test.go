package consultation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dencare/dencare/internal/domain/catalog"
	"github.com/dencare/dencare/internal/domain/patient"
	"github.com/dencare/dencare/internal/platform/apperror"
)

type mockRepo struct {
	cons map[uuid.UUID]*Consultation
}

func newMockRepo() *mockRepo {
	return &mockRepo{cons: make(map[uuid.UUID]*Consultation)}
}

func (m *mockRepo) Create(_ context.Context, c *Consultation) error {
	c.ID = uuid.New()
	cp := *c
	m.cons[c.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Consultation, error) {
	c, ok := m.cons[id]
	if !ok {
		return nil, apperror.NotFound("consultation %s not found", id)
	}
	cp := *c
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, c *Consultation) error {
	if _, ok := m.cons[c.ID]; !ok {
		return apperror.NotFound("consultation %s not found", c.ID)
	}
	cp := *c
	m.cons[c.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.cons[id]; !ok {
		return apperror.NotFound("consultation %s not found", id)
	}
	delete(m.cons, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Consultation, int, error) {
	var out []*Consultation
	for _, c := range m.cons {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	var out []*Consultation
	for _, c := range m.cons {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) DeleteByPatient(_ context.Context, patientID uuid.UUID) (int, error) {
	n := 0
	for id, c := range m.cons {
		if c.PatientID == patientID {
			delete(m.cons, id)
			n++
		}
	}
	return n, nil
}

func (m *mockRepo) ActCodeInUse(_ context.Context, code string) (bool, error) {
	for _, c := range m.cons {
		for _, a := range c.Acts {
			if a == code {
				return true, nil
			}
		}
	}
	return false, nil
}

type mockPatients struct {
	patients map[uuid.UUID]*patient.Patient
}

func (m *mockPatients) GetPatient(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient %s not found", id)
	}
	return p, nil
}

type mockCatalog struct {
	codes map[string]bool
}

func (m *mockCatalog) ResolveAct(_ context.Context, code string) (*catalog.ActRef, error) {
	if !m.codes[code] {
		return nil, apperror.NotFound("act %s not found", code)
	}
	return &catalog.ActRef{Act: catalog.Act{Code: code, Designation: "act " + code}}, nil
}

func fixture() (*mockRepo, *mockPatients, *mockCatalog, *Service, uuid.UUID) {
	repo := newMockRepo()
	pid := uuid.New()
	patients := &mockPatients{patients: map[uuid.UUID]*patient.Patient{
		pid: {ID: pid, FirstName: "Amine", LastName: "Trabelsi"},
	}}
	cat := &mockCatalog{codes: map[string]bool{"DCH010010": true, "DCH020030": true}}
	svc := NewService(repo, patients, cat)
	return repo, patients, cat, svc, pid
}

func validConsultation(pid uuid.UUID) *Consultation {
	return &Consultation{
		PatientID: pid,
		Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:      "09:30",
		Reason:    "Douleur molaire",
		Price:     45.0,
		Status:    StatusScheduled,
		Acts:      []string{"DCH010010"},
	}
}

func TestCreateConsultation(t *testing.T) {
	_, _, _, svc, pid := fixture()

	cons := validConsultation(pid)
	if err := svc.CreateConsultation(context.Background(), cons); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cons.ID == uuid.Nil {
		t.Error("expected an id to be assigned")
	}
}

func TestCreateConsultation_UnknownPatient(t *testing.T) {
	_, _, _, svc, _ := fixture()

	cons := validConsultation(uuid.New())
	if err := svc.CreateConsultation(context.Background(), cons); !apperror.IsNotFound(err) {
		t.Errorf("expected not found for unknown patient, got %v", err)
	}
}

func TestCreateConsultation_UnknownActCode(t *testing.T) {
	_, _, _, svc, pid := fixture()

	cons := validConsultation(pid)
	cons.Acts = []string{"DCH010010", "BOGUS"}
	if err := svc.CreateConsultation(context.Background(), cons); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for unknown act code, got %v", err)
	}
}

func TestCreateConsultation_TimeFormat(t *testing.T) {
	_, _, _, svc, pid := fixture()

	for _, bad := range []string{"", "9:30", "24:00", "12:60", "12h30"} {
		cons := validConsultation(pid)
		cons.Time = bad
		if err := svc.CreateConsultation(context.Background(), cons); !apperror.IsValidation(err) {
			t.Errorf("time %q: expected validation error, got %v", bad, err)
		}
	}

	cons := validConsultation(pid)
	cons.Time = "23:59"
	if err := svc.CreateConsultation(context.Background(), cons); err != nil {
		t.Errorf("23:59 should be accepted: %v", err)
	}
}

func TestCreateConsultation_StatusDefaultsToScheduled(t *testing.T) {
	_, _, _, svc, pid := fixture()

	cons := validConsultation(pid)
	cons.Status = ""
	if err := svc.CreateConsultation(context.Background(), cons); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cons.Status != StatusScheduled {
		t.Errorf("expected default status Scheduled, got %s", cons.Status)
	}
}

func TestCreateConsultation_NegativePrice(t *testing.T) {
	_, _, _, svc, pid := fixture()

	cons := validConsultation(pid)
	cons.Price = -1
	if err := svc.CreateConsultation(context.Background(), cons); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for negative price, got %v", err)
	}
}

func TestUpdateConsultation_FreeStatusTransitions(t *testing.T) {
	_, _, _, svc, pid := fixture()
	ctx := context.Background()

	cons := validConsultation(pid)
	if err := svc.CreateConsultation(ctx, cons); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, status := range []string{StatusCompleted, StatusCancelled, StatusScheduled} {
		cons.Status = status
		if err := svc.UpdateConsultation(ctx, cons); err != nil {
			t.Errorf("transition to %s should be free: %v", status, err)
		}
	}
}

func TestUpdateConsultation_PatientPinned(t *testing.T) {
	repo, _, _, svc, pid := fixture()
	ctx := context.Background()

	cons := validConsultation(pid)
	if err := svc.CreateConsultation(ctx, cons); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cons.PatientID = uuid.New()
	if err := svc.UpdateConsultation(ctx, cons); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.GetByID(ctx, cons.ID)
	if stored.PatientID != pid {
		t.Error("patient_id must not change on update")
	}
}

func TestGetConsultationDetail_UnknownPatientName(t *testing.T) {
	_, patients, _, svc, pid := fixture()
	ctx := context.Background()

	cons := validConsultation(pid)
	if err := svc.CreateConsultation(ctx, cons); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := svc.GetConsultationDetail(ctx, cons.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.PatientName != "Trabelsi Amine" {
		t.Errorf("unexpected patient name %q", detail.PatientName)
	}

	// Simulate a dangling reference: the read degrades, never panics.
	delete(patients.patients, pid)
	detail, err = svc.GetConsultationDetail(ctx, cons.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.PatientName != "Unknown" {
		t.Errorf("expected Unknown for missing patient, got %q", detail.PatientName)
	}
}

func TestActCodeInUse(t *testing.T) {
	repo, _, _, svc, pid := fixture()
	ctx := context.Background()

	cons := validConsultation(pid)
	if err := svc.CreateConsultation(ctx, cons); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inUse, err := repo.ActCodeInUse(ctx, "DCH010010")
	if err != nil || !inUse {
		t.Errorf("expected DCH010010 in use, got %v %v", inUse, err)
	}
	inUse, _ = repo.ActCodeInUse(ctx, "DCH020030")
	if inUse {
		t.Error("DCH020030 should not be in use")
	}
}
