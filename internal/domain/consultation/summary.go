package consultation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dencare/dencare/internal/platform/apperror"
)

// Summary is a narrative recap of a consultation: key findings, the treatment
// plan and the follow-up actions, assembled from the record and the patient
// file.
type Summary struct {
	ConsultationID uuid.UUID `json:"consultation_id"`
	PatientName    string    `json:"patient_name"`
	GeneratedAt    time.Time `json:"generated_at"`
	Text           string    `json:"summary"`
}

// SummarizeConsultation builds the recap for a stored consultation. Empty
// sections are omitted; act codes that have since left the catalog are listed
// by code alone, matching the reference-time-only validation of Acts.
func (s *Service) SummarizeConsultation(ctx context.Context, id uuid.UUID) (*Summary, error) {
	cons, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := "Unknown"
	history := ""
	if p, err := s.patients.GetPatient(ctx, cons.PatientID); err == nil {
		name = p.FullName()
		history = p.PatientHistory
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Consultation du %s à %s — %s (%s).\n",
		cons.Date.Format("02/01/2006"), cons.Time, name, cons.Status)
	if cons.Reason != "" {
		fmt.Fprintf(&b, "Motif : %s.\n", cons.Reason)
	}
	if history != "" {
		fmt.Fprintf(&b, "Antécédents : %s.\n", history)
	}
	if len(cons.Acts) > 0 {
		fmt.Fprintf(&b, "Actes réalisés : %s.\n", strings.Join(s.describeActs(ctx, cons.Acts), " ; "))
	}
	if cons.TreatmentPlan != "" {
		fmt.Fprintf(&b, "Plan de traitement : %s.\n", cons.TreatmentPlan)
	}
	if cons.FollowUpActions != "" {
		fmt.Fprintf(&b, "Suivi : %s.\n", cons.FollowUpActions)
	}
	fmt.Fprintf(&b, "Honoraires : %.3f TND.", cons.Price)

	return &Summary{
		ConsultationID: cons.ID,
		PatientName:    name,
		GeneratedAt:    time.Now().UTC(),
		Text:           b.String(),
	}, nil
}

func (s *Service) describeActs(ctx context.Context, codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		ref, err := s.acts.ResolveAct(ctx, code)
		if err != nil || ref.Designation == "" {
			out = append(out, code)
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", ref.Designation, code))
	}
	return out
}
