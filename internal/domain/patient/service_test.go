package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dencare/dencare/internal/platform/apperror"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// Snapshot-and-restore stands in for rollback.
	snapshot := make(map[uuid.UUID]*Patient, len(m.patients))
	for k, v := range m.patients {
		cp := *v
		snapshot[k] = &cp
	}
	if err := fn(ctx); err != nil {
		m.patients = snapshot
		return err
	}
	return nil
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient %s not found", id)
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	existing, ok := m.patients[p.ID]
	if !ok {
		return apperror.NotFound("patient %s not found", p.ID)
	}
	cp := *p
	cp.CreatedAt = existing.CreatedAt
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.patients[id]; !ok {
		return apperror.NotFound("patient %s not found", id)
	}
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var out []*Patient
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (m *mockRepo) Search(ctx context.Context, _ string, limit, offset int) ([]*Patient, int, error) {
	return m.List(ctx, limit, offset)
}

type mockPurger struct {
	byPatient map[uuid.UUID]int
	fail      bool
	purged    []uuid.UUID
}

func (m *mockPurger) DeleteByPatient(_ context.Context, patientID uuid.UUID) (int, error) {
	if m.fail {
		return 0, errors.New("purge consultations failed")
	}
	m.purged = append(m.purged, patientID)
	n := m.byPatient[patientID]
	delete(m.byPatient, patientID)
	return n, nil
}

func validPatient() *Patient {
	return &Patient{
		FirstName: "Amine",
		LastName:  "Trabelsi",
		Phone:     "98123456",
		DOB:       time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC),
		Address:   "12 Rue de Carthage, Tunis",
	}
}

func newTestService(repo Repository, purger ConsultationPurger) *Service {
	return NewService(repo, purger, zerolog.Nop())
}

func TestCreatePatient_StampsCreatedAt(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockPurger{})

	p := validPatient()
	before := time.Now().UTC()
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CreatedAt.Before(before) {
		t.Error("expected CreatedAt to be server-stamped")
	}
	if p.ID == uuid.Nil {
		t.Error("expected an id to be assigned")
	}
}

func TestCreatePatient_PhoneValidation(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPurger{})

	for _, phone := range []string{"", "1234567", "123456789", "98a23456", "98 12 34"} {
		p := validPatient()
		p.Phone = phone
		if err := svc.CreatePatient(context.Background(), p); !apperror.IsValidation(err) {
			t.Errorf("phone %q: expected validation error, got %v", phone, err)
		}
	}
}

func TestCreatePatient_FutureDOB(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPurger{})
	p := validPatient()
	p.DOB = time.Now().Add(24 * time.Hour)
	if err := svc.CreatePatient(context.Background(), p); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for future dob, got %v", err)
	}
}

func TestCreatePatient_SocialSecurityAllOrNothing(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPurger{})

	p := validPatient()
	p.SocialSecurity = &SocialSecurity{IDAssurance: "123456789"}
	if err := svc.CreatePatient(context.Background(), p); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for partial enrollment, got %v", err)
	}

	p = validPatient()
	p.SocialSecurity = &SocialSecurity{
		IDAssurance:   "123456789",
		FirstName:     "Amine",
		LastName:      "Trabelsi",
		Address:       "12 Rue de Carthage, Tunis",
		CodePostal:    "1002",
		TypeAssurance: "CNAM-X",
	}
	if err := svc.CreatePatient(context.Background(), p); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for unknown type_assurance, got %v", err)
	}

	p.SocialSecurity.TypeAssurance = AssuranceCNSS
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Errorf("complete enrollment should pass: %v", err)
	}
}

func TestCreatePatient_EmptySocialSecurityDropped(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockPurger{})

	p := validPatient()
	p.SocialSecurity = &SocialSecurity{}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SocialSecurity != nil {
		t.Error("expected empty enrollment to be normalized to nil")
	}
}

func TestUpdatePatient_PreservesCreatedAt(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockPurger{})
	ctx := context.Background()

	p := validPatient()
	if err := svc.CreatePatient(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := p.CreatedAt

	upd := validPatient()
	upd.ID = p.ID
	upd.Address = "Nouvelle adresse"
	upd.CreatedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := svc.UpdatePatient(ctx, upd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.GetByID(ctx, p.ID)
	if !stored.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update: %v vs %v", stored.CreatedAt, created)
	}
	if stored.Address != "Nouvelle adresse" {
		t.Errorf("update not applied: %s", stored.Address)
	}
}

func TestGetPatient_NotFoundTyped(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPurger{})
	_, err := svc.GetPatient(context.Background(), uuid.New())
	if !apperror.IsNotFound(err) {
		t.Errorf("expected typed not found, got %v", err)
	}
}

func TestDeletePatient_CascadesConsultations(t *testing.T) {
	repo := newMockRepo()
	purger := &mockPurger{byPatient: make(map[uuid.UUID]int)}
	svc := newTestService(repo, purger)
	ctx := context.Background()

	p := validPatient()
	if err := svc.CreatePatient(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	purger.byPatient[p.ID] = 3

	if err := svc.DeletePatient(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetByID(ctx, p.ID); !apperror.IsNotFound(err) {
		t.Error("patient should be gone")
	}
	if len(purger.purged) != 1 || purger.purged[0] != p.ID {
		t.Errorf("consultations not purged: %v", purger.purged)
	}
	if purger.byPatient[p.ID] != 0 {
		t.Error("expected zero consultations to remain")
	}
}

func TestDeletePatient_AtomicOnPurgeFailure(t *testing.T) {
	repo := newMockRepo()
	purger := &mockPurger{fail: true}
	svc := newTestService(repo, purger)
	ctx := context.Background()

	p := validPatient()
	if err := svc.CreatePatient(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeletePatient(ctx, p.ID); err == nil {
		t.Fatal("expected delete to fail when purge fails")
	}
	if _, err := repo.GetByID(ctx, p.ID); err != nil {
		t.Error("patient must survive a failed cascade")
	}
}
