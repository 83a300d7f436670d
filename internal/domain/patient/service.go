package patient

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dencare/dencare/internal/platform/apperror"
)

var phonePattern = regexp.MustCompile(`^[0-9]{8}$`)

// ConsultationPurger removes a patient's consultations; wired to the
// consultation repository so the delete cascade runs in one transaction.
type ConsultationPurger interface {
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) (int, error)
}

type Service struct {
	repo   Repository
	purger ConsultationPurger
	log    zerolog.Logger
}

func NewService(repo Repository, purger ConsultationPurger, log zerolog.Logger) *Service {
	return &Service{repo: repo, purger: purger, log: log}
}

func (s *Service) validate(p *Patient) error {
	if p.FirstName == "" {
		return apperror.Validation("first_name is required")
	}
	if p.LastName == "" {
		return apperror.Validation("last_name is required")
	}
	if !phonePattern.MatchString(p.Phone) {
		return apperror.Validation("phone must be exactly 8 digits")
	}
	if p.DOB.IsZero() {
		return apperror.Validation("dob is required")
	}
	if p.DOB.After(time.Now()) {
		return apperror.Validation("dob cannot be in the future")
	}
	return s.validateSocialSecurity(p.SocialSecurity)
}

// validateSocialSecurity enforces the all-or-nothing enrollment contract: a
// partially filled sub-record is rejected rather than silently truncated.
func (s *Service) validateSocialSecurity(ss *SocialSecurity) error {
	if ss.Empty() {
		return nil
	}
	if ss.IDAssurance == "" {
		return apperror.Validation("social_security.id_assurance is required")
	}
	if ss.FirstName == "" || ss.LastName == "" {
		return apperror.Validation("social_security first and last name are required")
	}
	if ss.Address == "" {
		return apperror.Validation("social_security.address is required")
	}
	if ss.CodePostal == "" {
		return apperror.Validation("social_security.code_postal is required")
	}
	if !ValidAssuranceTypes[ss.TypeAssurance] {
		return apperror.Validation("social_security.type_assurance must be CNSS, CNRPS or Convention bilatérale")
	}
	return nil
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if p.SocialSecurity != nil && p.SocialSecurity.Empty() {
		p.SocialSecurity = nil
	}
	p.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdatePatient is a full replace of the mutable fields; CreatedAt is owned
// by the server and survives any payload.
func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if p.SocialSecurity != nil && p.SocialSecurity.Empty() {
		p.SocialSecurity = nil
	}
	return s.repo.Update(ctx, p)
}

// DeletePatient removes the patient and every consultation referencing them
// in a single transaction, so a failure partway leaves both intact.
func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.InTx(ctx, func(ctx context.Context) error {
		removed, err := s.purger.DeleteByPatient(ctx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		s.log.Info().
			Str("patient_id", id.String()).
			Int("consultations_removed", removed).
			Msg("patient deleted")
		return nil
	})
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) SearchPatients(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	return s.repo.Search(ctx, query, limit, offset)
}
