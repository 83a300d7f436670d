package claim

import (
	"time"

	"github.com/google/uuid"

	"github.com/dencare/dencare/internal/domain/patient"
)

// Line is one care line on a reimbursement form: the act as it was priced at
// generation time plus the per-treatment annotations (tooth, CPS box, date).
type Line struct {
	Code         string    `json:"code"`
	Designation  string    `json:"designation"`
	Cotation     string    `json:"cotation"`
	Honoraire    *float64  `json:"honoraire"`
	Dent         string    `json:"dent"`
	CPS          string    `json:"cps"`
	Date         time.Time `json:"date"`
	SectionTitle string    `json:"section_title"`
}

// Claim is a generated CNAM bulletin de soins. The patient is a snapshot
// taken at generation time, so later edits or deletion of the patient record
// leave the document intact.
type Claim struct {
	ID             uuid.UUID       `json:"id"`
	PatientID      uuid.UUID       `json:"patient_id"`
	Patient        patient.Patient `json:"patient"`
	Lines          []Line          `json:"acts"`
	AssuranceType  string          `json:"assurance_type"`
	GenerationDate time.Time       `json:"generation_date"`
}

// Total sums the honoraires; a line without a negotiated fee counts as zero.
func (c *Claim) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		if l.Honoraire != nil {
			total += *l.Honoraire
		}
	}
	return total
}
