package consultation

import (
	"context"
	"regexp"

	"github.com/google/uuid"

	"github.com/dencare/dencare/internal/domain/catalog"
	"github.com/dencare/dencare/internal/domain/patient"
	"github.com/dencare/dencare/internal/platform/apperror"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// PatientDirectory resolves patients for existence checks and display names.
type PatientDirectory interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

// ActCatalog resolves act codes referenced by a consultation.
type ActCatalog interface {
	ResolveAct(ctx context.Context, code string) (*catalog.ActRef, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	acts     ActCatalog
}

func NewService(repo Repository, patients PatientDirectory, acts ActCatalog) *Service {
	return &Service{repo: repo, patients: patients, acts: acts}
}

func (s *Service) validate(ctx context.Context, cons *Consultation) error {
	if cons.PatientID == uuid.Nil {
		return apperror.Validation("patient_id is required")
	}
	if cons.Date.IsZero() {
		return apperror.Validation("date is required")
	}
	if !timePattern.MatchString(cons.Time) {
		return apperror.Validation("time must be HH:MM in 24h format")
	}
	if cons.Price < 0 {
		return apperror.Validation("price must not be negative")
	}
	if cons.Status == "" {
		cons.Status = StatusScheduled
	}
	if !ValidStatuses[cons.Status] {
		return apperror.Validation("status must be Scheduled, Completed or Cancelled")
	}

	// Act codes are checked against the catalog only at the moment they are
	// referenced; later catalog edits do not invalidate stored consultations.
	for _, code := range cons.Acts {
		if _, err := s.acts.ResolveAct(ctx, code); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.Validation("unknown act code %s", code)
			}
			return err
		}
	}
	return nil
}

func (s *Service) CreateConsultation(ctx context.Context, cons *Consultation) error {
	if err := s.validate(ctx, cons); err != nil {
		return err
	}
	if _, err := s.patients.GetPatient(ctx, cons.PatientID); err != nil {
		return err
	}
	return s.repo.Create(ctx, cons)
}

func (s *Service) GetConsultation(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

// GetConsultationDetail resolves the patient name alongside the record. A
// missing patient degrades to "Unknown" instead of failing the read.
func (s *Service) GetConsultationDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	cons, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name := "Unknown"
	if p, err := s.patients.GetPatient(ctx, cons.PatientID); err == nil {
		name = p.FullName()
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}
	return &Detail{Consultation: *cons, PatientName: name}, nil
}

func (s *Service) UpdateConsultation(ctx context.Context, cons *Consultation) error {
	existing, err := s.repo.GetByID(ctx, cons.ID)
	if err != nil {
		return err
	}
	// The owning patient is fixed at creation.
	cons.PatientID = existing.PatientID
	if err := s.validate(ctx, cons); err != nil {
		return err
	}
	return s.repo.Update(ctx, cons)
}

func (s *Service) DeleteConsultation(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListConsultations(ctx context.Context, limit, offset int) ([]*Consultation, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListConsultationsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
