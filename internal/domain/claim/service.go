package claim

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dencare/dencare/internal/domain/catalog"
	"github.com/dencare/dencare/internal/domain/patient"
	"github.com/dencare/dencare/internal/platform/apperror"
)

// PatientDirectory resolves the patient to snapshot at generation time.
type PatientDirectory interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

// ActCatalog prices the referenced act codes.
type ActCatalog interface {
	ResolveAct(ctx context.Context, code string) (*catalog.ActRef, error)
}

// LineInput is a requested care line: the act code plus the per-treatment
// annotations. Designation, cotation, honoraire and section title come from
// the catalog at generation time.
type LineInput struct {
	Code string    `json:"code"`
	Dent string    `json:"dent"`
	CPS  string    `json:"cps"`
	Date time.Time `json:"date"`
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	acts     ActCatalog
	renderer *Renderer
	log      zerolog.Logger
}

func NewService(repo Repository, patients PatientDirectory, acts ActCatalog, renderer *Renderer, log zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, acts: acts, renderer: renderer, log: log}
}

// Generate snapshots the patient and flattens the requested lines into an
// immutable claim document. The snapshot decouples the document from the
// live record: later patient edits never reflow an issued bulletin.
func (s *Service) Generate(ctx context.Context, patientID uuid.UUID, inputs []LineInput, assuranceType string) (*Claim, error) {
	if len(inputs) == 0 {
		return nil, apperror.Validation("at least one care line is required")
	}

	p, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if p.SocialSecurity == nil {
		return nil, apperror.Validation("patient %s has no insurance enrollment", patientID)
	}
	if assuranceType == "" {
		assuranceType = p.SocialSecurity.TypeAssurance
	}
	if !patient.ValidAssuranceTypes[assuranceType] {
		return nil, apperror.Validation("assurance_type must be CNSS, CNRPS or Convention bilatérale")
	}

	lines := make([]Line, 0, len(inputs))
	for _, in := range inputs {
		if in.Code == "" {
			return nil, apperror.Validation("care line act code is required")
		}
		ref, err := s.acts.ResolveAct(ctx, in.Code)
		if err != nil {
			return nil, err
		}
		date := in.Date
		if date.IsZero() {
			date = time.Now().UTC()
		}
		lines = append(lines, Line{
			Code:         ref.Code,
			Designation:  ref.Designation,
			Cotation:     ref.Cotation,
			Honoraire:    ref.Honoraire,
			Dent:         in.Dent,
			CPS:          in.CPS,
			Date:         date,
			SectionTitle: ref.SectionTitle,
		})
	}

	c := &Claim{
		PatientID:      p.ID,
		Patient:        *p,
		Lines:          lines,
		AssuranceType:  assuranceType,
		GenerationDate: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("claim_id", c.ID.String()).
		Str("patient_id", p.ID.String()).
		Int("lines", len(lines)).
		Float64("total", c.Total()).
		Msg("claim generated")
	return c, nil
}

func (s *Service) GetClaim(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListClaims(ctx context.Context, limit, offset int) ([]*Claim, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListClaimsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Claim, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// RenderPDF produces the filled form for a stored claim. The truncated count
// is non-zero when the claim holds more lines than the form has rows.
func (s *Service) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, int, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.renderer.Render(c)
	if err != nil {
		return nil, 0, err
	}
	if out.Truncated > 0 {
		s.log.Warn().
			Str("claim_id", id.String()).
			Int("truncated", out.Truncated).
			Msg("claim lines exceed form capacity")
	}
	return out.PDF, out.Truncated, nil
}
